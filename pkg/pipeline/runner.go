package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/statcards/pkg/cache"
	errs "github.com/matzehuels/statcards/pkg/errors"
	"github.com/matzehuels/statcards/pkg/normalize"
	"github.com/matzehuels/statcards/pkg/observability"
	"github.com/matzehuels/statcards/pkg/stats"
)

// Runner fetches normalized statistics through the result cache.
//
// The Runner holds no per-request state. Multiple goroutines can safely
// share one Runner.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger
	Sources Sources

	// Now is the clock used for calendar windows.
	Now func() time.Time
}

// NewRunner creates a runner.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger, sources Sources) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:   c,
		Keyer:   keyer,
		Logger:  logger,
		Sources: sources,
		Now:     time.Now,
	}
}

// Activity returns the user's contribution calendar for period. The bool
// reports a cache hit.
func (r *Runner) Activity(ctx context.Context, user string, period Period) (stats.Calendar, bool, error) {
	if err := errs.ValidateUsername(user); err != nil {
		return stats.Calendar{}, false, err
	}
	if r.Sources.GitHub == nil {
		return stats.Calendar{}, false, unavailable("github")
	}
	return fetch(ctx, r, "github", user, r.Keyer.ActivityKey(user, string(period)),
		func(ctx context.Context) (stats.Calendar, error) {
			from, to := period.Window(r.Now())
			return normalize.Activity(r.Sources.GitHub.Activity(ctx, user, from, to))
		})
}

// GitHubLanguages returns the user's top languages across owned repositories.
func (r *Runner) GitHubLanguages(ctx context.Context, user string) ([]stats.Language, bool, error) {
	if err := errs.ValidateUsername(user); err != nil {
		return nil, false, err
	}
	if r.Sources.GitHub == nil {
		return nil, false, unavailable("github")
	}
	return fetch(ctx, r, "github", user, r.Keyer.GitHubLanguagesKey(user),
		func(ctx context.Context) ([]stats.Language, error) {
			return normalize.GitHubLanguages(r.Sources.GitHub.Languages(ctx, user))
		})
}

// WakaTimeLanguages returns the user's top languages by coding time.
func (r *Runner) WakaTimeLanguages(ctx context.Context, user string) ([]stats.Language, bool, error) {
	if err := errs.ValidateUsername(user); err != nil {
		return nil, false, err
	}
	if r.Sources.WakaTime == nil {
		return nil, false, unavailable("wakatime")
	}
	return fetch(ctx, r, "wakatime", user, r.Keyer.WakaTimeLanguagesKey(user),
		func(ctx context.Context) ([]stats.Language, error) {
			return normalize.WakaTimeLanguages(r.Sources.WakaTime.Stats(ctx, user))
		})
}

// Repo returns the pin facts of a GitHub repository.
func (r *Runner) Repo(ctx context.Context, owner, repo string) (stats.Repo, bool, error) {
	if err := errs.ValidateRepoName(owner, repo); err != nil {
		return stats.Repo{}, false, err
	}
	if r.Sources.GitHub == nil {
		return stats.Repo{}, false, unavailable("github")
	}
	return fetch(ctx, r, "github", owner+"/"+repo, r.Keyer.RepoKey(owner, repo),
		func(ctx context.Context) (stats.Repo, error) {
			resp, err := r.Sources.GitHub.Repo(ctx, owner, repo)
			return normalize.Repo(owner, repo, resp, err)
		})
}

// Gist returns the pin facts of a gist.
func (r *Runner) Gist(ctx context.Context, id string) (stats.Gist, bool, error) {
	if err := errs.ValidateGistID(id); err != nil {
		return stats.Gist{}, false, err
	}
	if r.Sources.GitHub == nil {
		return stats.Gist{}, false, unavailable("github")
	}
	return fetch(ctx, r, "github", id, r.Keyer.GistKey(id),
		func(ctx context.Context) (stats.Gist, error) {
			resp, err := r.Sources.GitHub.Gist(ctx, id)
			return normalize.Gist(id, resp, err)
		})
}

// Hub returns the pin facts of a Hugging Face model, dataset or space.
func (r *Runner) Hub(ctx context.Context, kind stats.HubKind, owner, repo string) (stats.Hub, bool, error) {
	if err := errs.ValidateRepoName(owner, repo); err != nil {
		return stats.Hub{}, false, err
	}
	if _, ok := stats.ParseHubKind(string(kind)); !ok {
		return stats.Hub{}, false, errs.New(errs.ErrCodeUnknown, "unknown repository kind %q", kind)
	}
	if r.Sources.Hub == nil {
		return stats.Hub{}, false, unavailable("huggingface")
	}
	return fetch(ctx, r, "huggingface", owner+"/"+repo, r.Keyer.HubKey(string(kind), owner, repo),
		func(ctx context.Context) (stats.Hub, error) {
			resp, err := r.Sources.Hub.Repo(ctx, kind, owner, repo)
			return normalize.Hub(kind, owner, repo, resp, err)
		})
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// fetch serves key from the cache or runs load and caches its result.
// Failed loads are not cached. A cache write failure is logged and the
// fresh value still returned.
func fetch[T any](ctx context.Context, r *Runner, source, subject, key string, load func(context.Context) (T, error)) (T, bool, error) {
	if v, ok := cache.Load[T](ctx, r.Cache, key); ok {
		return v, true, nil
	}

	hooks := observability.Pipeline()
	hooks.OnFetchStart(ctx, source, subject)
	start := time.Now()
	v, err := load(ctx)
	hooks.OnFetchComplete(ctx, source, subject, time.Since(start), err)
	if err != nil {
		var zero T
		return zero, false, err
	}

	if err := cache.Store(ctx, r.Cache, key, v); err != nil {
		r.Logger.Warn("cache store failed", "key", key, "error", err)
	}
	return v, false, nil
}

func unavailable(source string) error {
	return errs.New(errs.ErrCodeUnknown, "%s source not configured", source)
}
