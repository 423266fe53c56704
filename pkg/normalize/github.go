package normalize

import (
	"cmp"
	"slices"

	errs "github.com/matzehuels/statcards/pkg/errors"
	"github.com/matzehuels/statcards/pkg/integrations/github"
	"github.com/matzehuels/statcards/pkg/languages"
	"github.com/matzehuels/statcards/pkg/stats"
)

const sourceGitHub = "github"

// restRules are the GitHub REST rows for repository queries.
var restRules = []rule{
	{equals("not found"), errs.ErrCodeRepoNotFound},
}

// graphQLTypes maps GraphQL error types. NOT_FOUND resolves to the
// not-found class of the query's subject.
var graphQLTypes = map[string]errs.Code{
	"RATE_LIMITED": errs.ErrCodeRateLimited,
	"FORBIDDEN":    errs.ErrCodeBadCredentials,
}

func githubFailure(f *github.Failure, notFound errs.Code, rows []rule) error {
	if code := classify(f.Message, rows); code != errs.ErrCodeUnknown {
		return errs.New(code, "%s: %s", sourceGitHub, f.Message)
	}
	for _, e := range f.Errors {
		if code, ok := graphQLTypes[e.Type]; ok {
			return errs.New(code, "%s: %s", sourceGitHub, e.Message)
		}
		if e.Type == "NOT_FOUND" {
			return errs.New(notFound, "%s: %s", sourceGitHub, e.Message)
		}
	}
	return errs.New(errs.ErrCodeUnknown, "%s: %s", sourceGitHub, f.Message)
}

// Activity normalizes a contribution calendar response.
func Activity(resp github.Response[github.ActivityData], err error) (stats.Calendar, error) {
	if err != nil {
		return stats.Calendar{}, transportError(sourceGitHub, err)
	}
	if resp.Failure != nil {
		return stats.Calendar{}, githubFailure(resp.Failure, errs.ErrCodeUserNotFound, nil)
	}
	if resp.Data == nil || resp.Data.User == nil {
		return stats.Calendar{}, errs.New(errs.ErrCodeUserNotFound, "github: user not found")
	}
	return groupMonths(resp.Data.User.ContributionsCollection.ContributionCalendar), nil
}

// GitHubLanguages sums language sizes over the user's repositories in
// first-seen order, keeps the six largest and expresses each as a share of
// those six.
func GitHubLanguages(resp github.Response[github.LanguagesData], err error) ([]stats.Language, error) {
	if err != nil {
		return nil, transportError(sourceGitHub, err)
	}
	if resp.Failure != nil {
		return nil, githubFailure(resp.Failure, errs.ErrCodeUserNotFound, nil)
	}
	if resp.Data == nil || resp.Data.User == nil {
		return nil, errs.New(errs.ErrCodeUserNotFound, "github: user not found")
	}

	type total struct {
		name string
		size int64
	}
	var totals []total
	index := make(map[string]int)
	for _, repo := range resp.Data.User.Repositories.Nodes {
		for _, edge := range repo.Languages.Edges {
			name := edge.Node.Name
			if name == "" {
				continue
			}
			if i, ok := index[name]; ok {
				totals[i].size += edge.Size
				continue
			}
			index[name] = len(totals)
			totals = append(totals, total{name, edge.Size})
		}
	}

	slices.SortStableFunc(totals, func(a, b total) int { return cmp.Compare(b.size, a.size) })
	totals = totals[:min(len(totals), stats.MaxLanguages)]

	var sum int64
	for _, t := range totals {
		sum += t.size
	}
	if sum <= 0 {
		return nil, errs.New(errs.ErrCodeLanguagesUnavailable, "github: no languages")
	}

	out := make([]stats.Language, len(totals))
	for i, t := range totals {
		out[i] = stats.Language{
			Name:    t.name,
			Color:   languages.Color(t.name),
			Percent: float64(t.size) / float64(sum) * 100,
		}
	}
	return out, nil
}

// Repo normalizes a REST repository response. Owner and name are the
// requested ones, which is what the pin displays.
func Repo(owner, name string, resp github.Response[github.Repository], err error) (stats.Repo, error) {
	if err != nil {
		return stats.Repo{}, transportError(sourceGitHub, err)
	}
	if resp.Failure != nil {
		return stats.Repo{}, githubFailure(resp.Failure, errs.ErrCodeRepoNotFound, restRules)
	}
	if resp.Data == nil {
		return stats.Repo{}, errs.New(errs.ErrCodeRepoNotFound, "github: repo %s/%s not found", owner, name)
	}
	r := resp.Data
	return stats.Repo{
		Owner:       owner,
		Name:        name,
		Description: deref(r.Description),
		Stars:       r.StargazersCount,
		Forks:       r.ForksCount,
		Language:    deref(r.Language),
	}, nil
}

// Gist normalizes a gist response. The largest file names the pin; on a
// size tie the later file wins.
func Gist(id string, resp github.Response[github.GistData], err error) (stats.Gist, error) {
	if err != nil {
		return stats.Gist{}, transportError(sourceGitHub, err)
	}
	if resp.Failure != nil {
		return stats.Gist{}, githubFailure(resp.Failure, errs.ErrCodeRepoNotFound, nil)
	}
	if resp.Data == nil || resp.Data.Viewer.Gist == nil {
		return stats.Gist{}, errs.New(errs.ErrCodeRepoNotFound, "github: gist %s not found", id)
	}

	g := resp.Data.Viewer.Gist
	out := stats.Gist{
		ID:          id,
		Owner:       g.Owner.Login,
		Name:        id,
		Description: deref(g.Description),
		Stars:       g.StargazerCount,
		Forks:       g.Forks.TotalCount,
	}
	var largest *github.GistFile
	for i := range g.Files {
		if largest == nil || g.Files[i].Size >= largest.Size {
			largest = &g.Files[i]
		}
	}
	if largest != nil {
		out.Name = largest.Name
		if largest.Language != nil {
			out.Language = largest.Language.Name
		}
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
