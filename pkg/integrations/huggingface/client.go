// Package huggingface fetches model, dataset and space metadata from the
// Hugging Face Hub.
package huggingface

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/matzehuels/statcards/pkg/integrations"
	"github.com/matzehuels/statcards/pkg/stats"
)

const defaultBaseURL = "https://huggingface.co/api"

// paths maps a repository kind to its API collection.
var paths = map[stats.HubKind]string{
	stats.HubModel:   "models",
	stats.HubDataset: "datasets",
	stats.HubSpace:   "spaces",
}

// Client provides access to the Hugging Face Hub API.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Hub client. The token, when set, is sent as a bearer
// token and unlocks gated repositories.
func NewClient(token string, opts integrations.Options) *Client {
	headers := map[string]string{"Accept": "application/json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &Client{
		Client:  integrations.NewClient(headers, opts),
		baseURL: defaultBaseURL,
	}
}

// WithBaseURL points the client at another API root.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// Repo fetches one model, dataset or space.
func (c *Client) Repo(ctx context.Context, kind stats.HubKind, owner, name string) (Response, error) {
	collection, ok := paths[kind]
	if !ok {
		return Response{}, fmt.Errorf("huggingface: unknown repository kind %q", kind)
	}
	u := fmt.Sprintf("%s/%s/%s/%s", c.baseURL, collection, url.PathEscape(owner), url.PathEscape(name))
	body, err := c.Get(ctx, u)
	if err != nil {
		return Response{}, fmt.Errorf("huggingface %s %s/%s: %w", kind, owner, name, err)
	}
	return Decode(body)
}

// Decode tries the failure shape (a top-level error string) before the
// repository shape.
func Decode(body []byte) (Response, error) {
	var probe struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return Response{}, fmt.Errorf("%w: %v", integrations.ErrDecode, err)
	}
	if probe.Error != nil {
		return Response{Failure: *probe.Error}, nil
	}

	var repo Repo
	if err := json.Unmarshal(body, &repo); err != nil {
		return Response{}, fmt.Errorf("%w: %v", integrations.ErrDecode, err)
	}
	if repo.ID == "" {
		return Response{}, fmt.Errorf("%w: missing id", integrations.ErrDecode)
	}
	return Response{Repo: &repo}, nil
}
