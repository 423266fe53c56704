package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/statcards/pkg/cache"
	errs "github.com/matzehuels/statcards/pkg/errors"
	"github.com/matzehuels/statcards/pkg/integrations/github"
	"github.com/matzehuels/statcards/pkg/integrations/huggingface"
	"github.com/matzehuels/statcards/pkg/integrations/wakatime"
	"github.com/matzehuels/statcards/pkg/stats"
)

type fakeGitHub struct {
	calls    int
	from, to time.Time
	activity string
	repo     github.Response[github.Repository]
	err      error
}

func (f *fakeGitHub) Activity(_ context.Context, _ string, from, to time.Time) (github.Response[github.ActivityData], error) {
	f.calls++
	f.from, f.to = from, to
	if f.err != nil {
		return github.Response[github.ActivityData]{}, f.err
	}
	var data github.ActivityData
	if err := json.Unmarshal([]byte(f.activity), &data); err != nil {
		return github.Response[github.ActivityData]{}, err
	}
	return github.Response[github.ActivityData]{Data: &data}, nil
}

func (f *fakeGitHub) Languages(context.Context, string) (github.Response[github.LanguagesData], error) {
	f.calls++
	return github.Response[github.LanguagesData]{Failure: &github.Failure{Message: "API rate limit exceeded"}}, nil
}

func (f *fakeGitHub) Gist(context.Context, string) (github.Response[github.GistData], error) {
	f.calls++
	return github.Response[github.GistData]{Data: &github.GistData{}}, nil
}

func (f *fakeGitHub) Repo(context.Context, string, string) (github.Response[github.Repository], error) {
	f.calls++
	return f.repo, f.err
}

type fakeWakaTime struct{ resp wakatime.Response }

func (f fakeWakaTime) Stats(context.Context, string) (wakatime.Response, error) { return f.resp, nil }

type fakeHub struct{ calls int }

func (f *fakeHub) Repo(_ context.Context, kind stats.HubKind, owner, name string) (huggingface.Response, error) {
	f.calls++
	return huggingface.Response{Repo: &huggingface.Repo{ID: owner + "/" + name, Likes: 7, Downloads: 3}}, nil
}

const oneDay = `{"user":{"contributionsCollection":{"contributionCalendar":{
	"weeks":[{"contributionDays":[{"weekday":1,"date":"2024-03-04","contributionCount":2,"color":"#40c463"}]}],
	"months":[{"name":"Mar","year":2024,"firstDay":"2024-03-01","totalWeeks":1}]}}}}`

func newTestRunner(src Sources) *Runner {
	r := NewRunner(cache.NewMemoryCache(0, time.Hour), nil, log.New(io.Discard), src)
	r.Now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	return r
}

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, Period3Months, ParsePeriod(""))
	assert.Equal(t, PeriodYear, ParsePeriod("year"))
	assert.Equal(t, Period6Months, ParsePeriod("decade"))

	assert.Equal(t, 365, PeriodYear.Days())
	assert.Equal(t, 180, Period6Months.Days())
	assert.Equal(t, 90, Period3Months.Days())
}

func TestActivityCaches(t *testing.T) {
	gh := &fakeGitHub{activity: oneDay}
	r := newTestRunner(Sources{GitHub: gh})
	ctx := context.Background()

	cal, hit, err := r.Activity(ctx, "octo", PeriodYear)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 1, cal.DayCount())
	assert.Equal(t, time.Date(2023, 6, 2, 0, 0, 0, 0, time.UTC), gh.from)

	again, hit, err := r.Activity(ctx, "octo", PeriodYear)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, cal, again)
	assert.Equal(t, 1, gh.calls)

	_, hit, err = r.Activity(ctx, "octo", Period3Months)
	require.NoError(t, err)
	assert.False(t, hit, "periods are cached separately")
	assert.Equal(t, 2, gh.calls)
}

func TestFailuresAreNotCached(t *testing.T) {
	gh := &fakeGitHub{}
	r := newTestRunner(Sources{GitHub: gh})
	ctx := context.Background()

	for range 2 {
		_, _, err := r.GitHubLanguages(ctx, "octo")
		assert.True(t, errs.Is(err, errs.ErrCodeRateLimited))
	}
	assert.Equal(t, 2, gh.calls)
}

func TestTransportFailureIsUnknown(t *testing.T) {
	gh := &fakeGitHub{err: errors.New("connection refused")}
	r := newTestRunner(Sources{GitHub: gh})

	_, _, err := r.Repo(context.Background(), "octo", "cards")
	assert.Equal(t, errs.ErrCodeUnknown, errs.ClassOf(err))
}

func TestInvalidSubjectSkipsUpstream(t *testing.T) {
	gh := &fakeGitHub{}
	r := newTestRunner(Sources{GitHub: gh})
	ctx := context.Background()

	_, _, err := r.Activity(ctx, "", DefaultPeriod)
	assert.True(t, errs.Is(err, errs.ErrCodeUserNotFound))
	_, _, err = r.Repo(ctx, "octo", "")
	assert.True(t, errs.Is(err, errs.ErrCodeRepoNotFound))
	_, _, err = r.Gist(ctx, "not a gist")
	assert.True(t, errs.Is(err, errs.ErrCodeRepoNotFound))
	assert.Zero(t, gh.calls)
}

func TestGistNotFound(t *testing.T) {
	r := newTestRunner(Sources{GitHub: &fakeGitHub{}})
	_, _, err := r.Gist(context.Background(), "abc123")
	assert.True(t, errs.Is(err, errs.ErrCodeRepoNotFound))
}

func TestWakaTime(t *testing.T) {
	r := newTestRunner(Sources{WakaTime: fakeWakaTime{resp: wakatime.Response{NoData: true}}})
	_, _, err := r.WakaTimeLanguages(context.Background(), "octo")
	assert.True(t, errs.Is(err, errs.ErrCodeLanguagesUnavailable))
}

func TestHub(t *testing.T) {
	hub := &fakeHub{}
	r := newTestRunner(Sources{Hub: hub})
	ctx := context.Background()

	h, hit, err := r.Hub(ctx, stats.HubSpace, "org", "demo")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "org/demo", h.ID)
	assert.Zero(t, h.Downloads)

	_, hit, err = r.Hub(ctx, stats.HubModel, "org", "demo")
	require.NoError(t, err)
	assert.False(t, hit, "kinds are cached separately")
	assert.Equal(t, 2, hub.calls)

	_, _, err = r.Hub(ctx, stats.HubKind("collection"), "org", "demo")
	assert.Error(t, err)
}

func TestMissingSource(t *testing.T) {
	r := newTestRunner(Sources{})
	_, _, err := r.Activity(context.Background(), "octo", DefaultPeriod)
	assert.Equal(t, errs.ErrCodeUnknown, errs.GetCode(err))
}
