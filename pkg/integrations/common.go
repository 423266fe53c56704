package integrations

import (
	"errors"
	"net/http"
	"time"

	"github.com/matzehuels/statcards/pkg/httputil"
)

// Defaults for upstream requests.
const (
	DefaultTimeout   = 10 * time.Second
	DefaultRPS       = 10.0
	DefaultUserAgent = "statcards (+https://github.com/matzehuels/statcards)"
)

var (
	// ErrNetwork is returned for transport failures (timeouts, connection
	// errors, 5xx responses).
	ErrNetwork = errors.New("network error")

	// ErrDecode is returned when a payload matches neither the success nor
	// the failure shape.
	ErrDecode = errors.New("unexpected payload")
)

// Options configures a Client. Zero values take the defaults.
type Options struct {
	Timeout   time.Duration
	RPS       float64
	UserAgent string
	Retry     httputil.Policy

	// HTTPClient replaces the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.RPS <= 0 {
		o.RPS = DefaultRPS
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	if o.Retry.Attempts <= 0 {
		o.Retry = httputil.DefaultPolicy
	}
	return o
}

// NewHTTPClient creates an HTTP client with the given request timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
