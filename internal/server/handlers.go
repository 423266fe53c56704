package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/matzehuels/statcards/pkg/buildinfo"
	"github.com/matzehuels/statcards/pkg/cache"
	errs "github.com/matzehuels/statcards/pkg/errors"
	"github.com/matzehuels/statcards/pkg/pipeline"
	"github.com/matzehuels/statcards/pkg/render/card"
	"github.com/matzehuels/statcards/pkg/render/theme"
	"github.com/matzehuels/statcards/pkg/stats"
)

type healthResponse struct {
	Version string `json:"version"`
	Status  string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{Version: buildinfo.Version, Status: "ok"})
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts, ok := s.cardOptions(w, r)
	if !ok {
		return
	}
	withTitle, ok := boolParam(w, r, "with_title", true)
	if !ok {
		return
	}

	user := q.Get("username")
	cal, _, err := s.runner.Activity(r.Context(), user, pipeline.ParsePeriod(q.Get("period")))
	if err != nil {
		s.writeError(w, r, err, opts)
		return
	}
	svg, err := card.Activity(cal, user, append(opts, card.WithTitle(withTitle))...)
	s.writeCard(w, r, svg, err)
}

func (s *Server) handleGitHubLanguages(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.cardOptions(w, r)
	if !ok {
		return
	}
	langs, _, err := s.runner.GitHubLanguages(r.Context(), r.URL.Query().Get("username"))
	s.writeLanguages(w, r, langs, err, opts)
}

func (s *Server) handleWakaTimeLanguages(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.cardOptions(w, r)
	if !ok {
		return
	}
	langs, _, err := s.runner.WakaTimeLanguages(r.Context(), r.URL.Query().Get("username"))
	s.writeLanguages(w, r, langs, err, opts)
}

func (s *Server) writeLanguages(w http.ResponseWriter, r *http.Request, langs []stats.Language, err error, opts []card.Option) {
	if err != nil {
		s.writeError(w, r, err, opts)
		return
	}
	svg, err := card.Languages(langs, opts...)
	s.writeCard(w, r, svg, err)
}

func (s *Server) handleRepoPin(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts, ok := s.pinOptions(w, r)
	if !ok {
		return
	}
	repo, _, err := s.runner.Repo(r.Context(), q.Get("username"), q.Get("repo"))
	if err != nil {
		s.writeError(w, r, err, opts)
		return
	}
	svg, err := card.Repo(repo, opts...)
	s.writeCard(w, r, svg, err)
}

func (s *Server) handleGistPin(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.pinOptions(w, r)
	if !ok {
		return
	}
	gist, _, err := s.runner.Gist(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		s.writeError(w, r, err, opts)
		return
	}
	svg, err := card.Gist(gist, opts...)
	s.writeCard(w, r, svg, err)
}

func (s *Server) handleHubPin(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts, ok := s.pinOptions(w, r)
	if !ok {
		return
	}
	kind, ok := stats.ParseHubKind(q.Get("type"))
	if !ok {
		badRequest(w, "unknown repository type %q (want model, dataset or space)", q.Get("type"))
		return
	}
	hub, _, err := s.runner.Hub(r.Context(), kind, q.Get("username"), q.Get("repo"))
	if err != nil {
		s.writeError(w, r, err, opts)
		return
	}
	svg, err := card.Hub(hub, opts...)
	s.writeCard(w, r, svg, err)
}

// cardOptions resolves the theme query parameter.
func (s *Server) cardOptions(w http.ResponseWriter, r *http.Request) ([]card.Option, bool) {
	th, err := theme.Resolve(r.URL.Query().Get("theme"), s.opts.DefaultTheme)
	if err != nil {
		badRequest(w, "%v", err)
		return nil, false
	}
	return []card.Option{card.WithTheme(th), card.WithContext(r.Context())}, true
}

// pinOptions adds show_owner to the card options.
func (s *Server) pinOptions(w http.ResponseWriter, r *http.Request) ([]card.Option, bool) {
	opts, ok := s.cardOptions(w, r)
	if !ok {
		return nil, false
	}
	showOwner, ok := boolParam(w, r, "show_owner", false)
	if !ok {
		return nil, false
	}
	return append(opts, card.WithOwner(showOwner)), true
}

func boolParam(w http.ResponseWriter, r *http.Request, key string, def bool) (bool, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		badRequest(w, "invalid %s: %q", key, raw)
		return false, false
	}
	return v, true
}

// writeError renders err as the error card for its class, marked no-cache.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, opts []card.Option) {
	class := errs.ClassOf(err)
	s.logger.Warn("card failed", "path", r.URL.Path, "class", class, "error", err)

	svg, rerr := card.Error(err, opts...)
	if rerr != nil {
		renderFailed(w, rerr)
		return
	}
	w.Header().Set("Content-Type", card.ContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

// writeCard writes a data card with an ETag and the cache lifetime.
func (s *Server) writeCard(w http.ResponseWriter, r *http.Request, svg []byte, err error) {
	if err != nil {
		s.logger.Error("render failed", "path", r.URL.Path, "error", err)
		renderFailed(w, err)
		return
	}

	etag := `"` + cache.Hash(svg) + `"`
	h := w.Header()
	h.Set("Content-Type", card.ContentType)
	h.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(s.opts.CacheTTL.Seconds())))
	h.Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

func renderFailed(w http.ResponseWriter, err error) {
	http.Error(w, fmt.Sprintf("Failed to render template. Error: %v", err), http.StatusInternalServerError)
}

func badRequest(w http.ResponseWriter, format string, args ...any) {
	http.Error(w, fmt.Sprintf(format, args...), http.StatusBadRequest)
}
