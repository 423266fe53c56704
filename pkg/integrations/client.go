package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/matzehuels/statcards/pkg/httputil"
	"github.com/matzehuels/statcards/pkg/observability"
)

// maxBody caps how much of an upstream response is read.
const maxBody = 8 << 20

// Client provides shared HTTP functionality for all upstream API clients.
type Client struct {
	http    *http.Client
	headers map[string]string
	limiter *rate.Limiter
	retry   httputil.Policy
}

// NewClient creates a Client with the given default headers.
// Headers are applied to all requests made through this client.
func NewClient(headers map[string]string, opts Options) *Client {
	opts = opts.withDefaults()

	h := map[string]string{"User-Agent": opts.UserAgent}
	for k, v := range headers {
		h[k] = v
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = NewHTTPClient(opts.Timeout)
	}
	return &Client{
		http:    hc,
		headers: h,
		limiter: rate.NewLimiter(rate.Limit(opts.RPS), max(1, int(opts.RPS))),
		retry:   opts.Retry,
	}
}

// Get performs an HTTP GET and returns the response body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, url, nil)
}

// PostJSON JSON-encodes payload, POSTs it and returns the response body.
func (c *Client) PostJSON(ctx context.Context, url string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, http.MethodPost, url, body)
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	var out []byte
	err := httputil.Retry(ctx, c.retry, func() error {
		data, err := c.once(ctx, method, url, body)
		if err != nil {
			return err
		}
		out = data
		return nil
	})
	return out, err
}

func (c *Client) once(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, method, host, path, err)
		return nil, &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, &httputil.RetryableError{Err: fmt.Errorf("%w: read body: %v", ErrNetwork, err)}
	}
	return data, nil
}

// checkStatus accepts every status below 500: 4xx bodies carry the
// upstream's error payload and are decoded like any other.
func checkStatus(code int) error {
	if code >= 500 {
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	}
	return nil
}
