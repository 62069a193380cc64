package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"golang.org/x/oauth2"
)

// ErrNoCredentials is returned when an authenticated client is requested without a token.
var ErrNoCredentials = errors.New("remote: no credentials for authenticated transport")

// Getter issues a GET request and returns the decoded JSON body as generic values
// (maps, slices, strings, float64, bool, nil).
type Getter interface {
	Get(ctx context.Context, path string, params map[string]string) (any, error)
}

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Client is a resty backed Getter.
type Client struct {
	rc *resty.Client
}

// Factory builds anonymous and token authenticated clients sharing one configuration.
type Factory struct {
	cfg  Config
	base *http.Client
}

// NewFactory creates a client factory. base supplies the underlying transport
// and may be nil to use http.DefaultTransport.
func NewFactory(cfg Config, base *http.Client) *Factory {
	return &Factory{cfg: cfg, base: base}
}

// Anonymous returns an unauthenticated client tagged with the configured user agent.
func (f *Factory) Anonymous() Getter {
	return NewAnonymous(f.cfg, f.base)
}

// ForToken returns a client that sends token as a bearer credential.
func (f *Factory) ForToken(token string) (Getter, error) {
	return NewAuthenticated(f.cfg, token, f.base)
}

// NewAnonymous creates a client without credentials.
func NewAnonymous(cfg Config, base *http.Client) *Client {
	hc := &http.Client{Transport: baseTransport(base)}
	return newClient(cfg, hc)
}

// NewAuthenticated creates a client whose requests carry an OAuth2 bearer token.
func NewAuthenticated(cfg Config, token string, base *http.Client) (*Client, error) {
	if token == "" {
		return nil, ErrNoCredentials
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	hc := &http.Client{Transport: &oauth2.Transport{Source: src, Base: baseTransport(base)}}
	return newClient(cfg, hc), nil
}

func newClient(cfg Config, hc *http.Client) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	rc := resty.NewWithClient(hc).
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(timeout)*time.Second).
		SetHeader("Accept", "application/json")
	if cfg.UserAgent != "" {
		rc.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &Client{rc: rc}
}

// baseTransport returns nil when base has no transport so callers fall back to
// http.DefaultTransport at request time.
func baseTransport(base *http.Client) http.RoundTripper {
	if base == nil {
		return nil
	}
	return base.Transport
}

// Get performs a GET request against path with the given query parameters.
func (c *Client) Get(ctx context.Context, path string, params map[string]string) (any, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}

	if resp.IsError() {
		return nil, &StatusError{
			Method:     http.MethodGet,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Body:       truncate(resp.String(), 256),
		}
	}

	var body any
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("GET %s: invalid JSON body: %w", path, err)
	}

	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
