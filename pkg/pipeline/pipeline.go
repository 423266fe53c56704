// Package pipeline runs the card data pipeline shared by the server and the
// CLI.
//
// Every card request follows the same steps: validate the subject, look the
// normalized statistics up in the result cache, and on a miss fetch them
// from the upstream source, normalize and store them. Failures come back as
// coded errors carrying one of the ErrorClass codes; they are never cached.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger, pipeline.Sources{
//	    GitHub: github.NewClient(token, integrations.Options{}),
//	})
//	cal, hit, err := runner.Activity(ctx, "octocat", pipeline.Period3Months)
//	if err != nil {
//	    svg, _ := card.Error(err)
//	    ...
//	}
package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/statcards/pkg/integrations/github"
	"github.com/matzehuels/statcards/pkg/integrations/huggingface"
	"github.com/matzehuels/statcards/pkg/integrations/wakatime"
	"github.com/matzehuels/statcards/pkg/stats"
)

// Period is the contribution calendar window.
type Period string

const (
	PeriodYear    Period = "year"
	Period6Months Period = "6_months"
	Period3Months Period = "3_months"

	// DefaultPeriod applies when a request names none.
	DefaultPeriod = Period3Months
)

// ParsePeriod maps a query value to a Period. An empty value is the
// default; an unrecognized one falls back to six months.
func ParsePeriod(s string) Period {
	switch p := Period(s); p {
	case "":
		return DefaultPeriod
	case PeriodYear, Period6Months, Period3Months:
		return p
	}
	return Period6Months
}

// Days returns the window length.
func (p Period) Days() int {
	switch p {
	case PeriodYear:
		return 365
	case Period3Months:
		return 90
	}
	return 180
}

// Window returns the [from, to] range ending at now.
func (p Period) Window(now time.Time) (time.Time, time.Time) {
	return now.AddDate(0, 0, -p.Days()), now
}

// GitHubSource is the GitHub API as the pipeline consumes it.
type GitHubSource interface {
	Activity(ctx context.Context, login string, from, to time.Time) (github.Response[github.ActivityData], error)
	Languages(ctx context.Context, login string) (github.Response[github.LanguagesData], error)
	Gist(ctx context.Context, id string) (github.Response[github.GistData], error)
	Repo(ctx context.Context, owner, repo string) (github.Response[github.Repository], error)
}

// WakaTimeSource is the WakaTime API as the pipeline consumes it.
type WakaTimeSource interface {
	Stats(ctx context.Context, user string) (wakatime.Response, error)
}

// HubSource is the Hugging Face Hub API as the pipeline consumes it.
type HubSource interface {
	Repo(ctx context.Context, kind stats.HubKind, owner, name string) (huggingface.Response, error)
}

// Sources bundles the upstream clients. A nil source makes its cards fail
// with UNKNOWN.
type Sources struct {
	GitHub   GitHubSource
	WakaTime WakaTimeSource
	Hub      HubSource
}

var (
	_ GitHubSource   = (*github.Client)(nil)
	_ WakaTimeSource = (*wakatime.Client)(nil)
	_ HubSource      = (*huggingface.Client)(nil)
)
