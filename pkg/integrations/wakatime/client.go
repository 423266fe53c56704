// Package wakatime fetches all-time coding statistics from WakaTime.
package wakatime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/matzehuels/statcards/pkg/integrations"
)

const defaultBaseURL = "https://wakatime.com/api/v1"

// Entry is one row of a WakaTime breakdown (languages, editors, ...).
type Entry struct {
	Name         string  `json:"name"`
	TotalSeconds float64 `json:"total_seconds"`
	Percent      float64 `json:"percent"`
	Text         string  `json:"text"`
}

// Stats is the public statistics payload.
type Stats struct {
	Username               string  `json:"username"`
	Range                  string  `json:"range"`
	IsLanguageUsageVisible bool    `json:"is_language_usage_visible"`
	Languages              []Entry `json:"languages"`
}

// Response is a decoded stats payload. Exactly one of Failure, NoData or
// Stats is meaningful: Failure holds the error string, NoData marks a
// success whose languages are hidden or not yet computed.
type Response struct {
	Failure string
	NoData  bool
	Stats   *Stats
}

// Client provides access to the WakaTime API.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a WakaTime client. Public stats need no authentication.
func NewClient(opts integrations.Options) *Client {
	return &Client{
		Client:  integrations.NewClient(map[string]string{"Accept": "application/json"}, opts),
		baseURL: defaultBaseURL,
	}
}

// WithBaseURL points the client at another API root.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// Stats fetches the all-time statistics of user.
func (c *Client) Stats(ctx context.Context, user string) (Response, error) {
	u := fmt.Sprintf("%s/users/%s/stats/all_time", c.baseURL, url.PathEscape(user))
	body, err := c.Get(ctx, u)
	if err != nil {
		return Response{}, fmt.Errorf("wakatime stats %s: %w", user, err)
	}
	return Decode(body)
}

// Decode tries the failure shape, then the full stats shape, then the
// no-data shape.
func Decode(body []byte) (Response, error) {
	var env struct {
		Error  *string  `json:"error"`
		Errors []string `json:"errors"`
		Data   *struct {
			Stats
			Languages *[]Entry `json:"languages"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return Response{}, fmt.Errorf("%w: %v", integrations.ErrDecode, err)
	}
	switch {
	case env.Error != nil:
		return Response{Failure: *env.Error}, nil
	case len(env.Errors) > 0:
		return Response{Failure: env.Errors[0]}, nil
	case env.Data == nil:
		return Response{}, fmt.Errorf("%w: no data", integrations.ErrDecode)
	case env.Data.Languages == nil:
		return Response{NoData: true}, nil
	}
	stats := env.Data.Stats
	stats.Languages = *env.Data.Languages
	return Response{Stats: &stats}, nil
}
