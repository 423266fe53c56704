package github

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/matzehuels/statcards/pkg/integrations"
)

const defaultBaseURL = "https://api.github.com"

// Client provides access to the GitHub GraphQL and REST APIs.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitHub API client. Pass an empty token for
// unauthenticated requests; the GraphQL endpoint rejects those, so the
// calendar, languages and gist cards need a token.
func NewClient(token string, opts integrations.Options) *Client {
	headers := map[string]string{"Accept": "application/vnd.github+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &Client{
		Client:  integrations.NewClient(headers, opts),
		baseURL: defaultBaseURL,
	}
}

// WithBaseURL points the client at another API root (tests, GitHub Enterprise).
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func (c *Client) graphQL(ctx context.Context, query string, vars map[string]any) ([]byte, error) {
	return c.PostJSON(ctx, c.baseURL+"/graphql", graphQLRequest{Query: query, Variables: vars})
}

// Activity fetches the contribution calendar of login between from and to.
// GitHub caps the span at one year.
func (c *Client) Activity(ctx context.Context, login string, from, to time.Time) (Response[ActivityData], error) {
	body, err := c.graphQL(ctx, activityQuery, map[string]any{
		"login": login,
		"from":  from.UTC().Format(time.RFC3339),
		"to":    to.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return Response[ActivityData]{}, fmt.Errorf("github activity %s: %w", login, err)
	}
	return decodeGraphQL[ActivityData](body)
}

// Languages fetches the language edges of login's own non-fork repositories.
func (c *Client) Languages(ctx context.Context, login string) (Response[LanguagesData], error) {
	body, err := c.graphQL(ctx, languagesQuery, map[string]any{"login": login})
	if err != nil {
		return Response[LanguagesData]{}, fmt.Errorf("github languages %s: %w", login, err)
	}
	return decodeGraphQL[LanguagesData](body)
}

// Gist fetches a gist of the authenticated viewer by id.
func (c *Client) Gist(ctx context.Context, id string) (Response[GistData], error) {
	body, err := c.graphQL(ctx, gistQuery, map[string]any{"name": id})
	if err != nil {
		return Response[GistData]{}, fmt.Errorf("github gist %s: %w", id, err)
	}
	return decodeGraphQL[GistData](body)
}

// Repo fetches a repository over REST.
func (c *Client) Repo(ctx context.Context, owner, repo string) (Response[Repository], error) {
	u := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, url.PathEscape(owner), url.PathEscape(repo))
	body, err := c.Get(ctx, u)
	if err != nil {
		return Response[Repository]{}, fmt.Errorf("github repo %s/%s: %w", owner, repo, err)
	}
	return decodeREST[Repository](body)
}
