// Package server exposes the card pipeline over HTTP.
//
// Every card route answers 200 with an SVG body, including when the
// pipeline fails: the failure is rendered as the themed error card for its
// ErrorClass. Malformed query parameters are rejected with 400 and a
// template failure with 500, both as plain text.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/statcards/pkg/cache"
	"github.com/matzehuels/statcards/pkg/pipeline"
	"github.com/matzehuels/statcards/pkg/render/theme"
)

const shutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	// DefaultTheme applies when a request names no theme.
	DefaultTheme string

	// CacheTTL is advertised to clients in Cache-Control.
	CacheTTL time.Duration
}

// Server serves the card routes.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	opts   Options
}

// New creates a Server backed by runner.
func New(runner *pipeline.Runner, logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if opts.DefaultTheme == "" {
		opts.DefaultTheme = theme.Default
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = cache.DefaultTTL
	}
	return &Server{runner: runner, logger: logger, opts: opts}
}

// Handler returns the router with all routes and middleware mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(logRequests(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.CleanPath)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/activity/github", s.handleActivity)
		r.Get("/top-langs/github", s.handleGitHubLanguages)
		r.Get("/top-langs/wakatime", s.handleWakaTimeLanguages)
		r.Get("/pin/github", s.handleRepoPin)
		r.Get("/pin/gist", s.handleGistPin)
		r.Get("/pin/huggingface", s.handleHubPin)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. Requests in flight at cancellation keep their context and are
// drained by Shutdown.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	base := context.WithoutCancel(ctx)
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}
	addr := ln.Addr().String()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", addr)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
