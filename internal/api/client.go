package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://api.simplelogin.io"
	defaultTimeout = 30 * time.Second

	// authHeader is the credential header the SimpleLogin API expects.
	// It is "Authentication", not the standard "Authorization".
	authHeader = "Authentication"
)

// Client is the raw HTTP client for the SimpleLogin API. One Client is
// shared by all sub-clients of the public facade; it is not mutated
// after construction and is safe for concurrent use.
type Client struct {
	rc     *resty.Client
	apiKey string
}

// config collects construction-time settings before the resty client
// is built.
type config struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	userAgent  string
}

// Option configures the API client.
type Option func(*config)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *config) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets the underlying *http.Client. Tests use this to
// inject a transport double.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}

// New creates a new API client. apiKey may be empty: the auth endpoints
// work without a credential, and every authenticated endpoint fails with
// ErrAPIKeyRequired before touching the network.
func New(apiKey string, opts ...Option) *Client {
	cfg := &config{
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var rc *resty.Client
	if cfg.httpClient != nil {
		rc = resty.NewWithClient(cfg.httpClient)
	} else {
		rc = resty.New()
	}

	rc.SetBaseURL(strings.TrimRight(cfg.baseURL, "/")).
		SetTimeout(cfg.timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if cfg.userAgent != "" {
		rc.SetHeader("User-Agent", cfg.userAgent)
	}

	return &Client{rc: rc, apiKey: apiKey}
}

// HasAPIKey reports whether the client holds a credential.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// BaseURL returns the configured base address.
func (c *Client) BaseURL() string {
	return c.rc.BaseURL
}

// request returns a context-bound request without credentials, for the
// login/register/activate endpoints.
func (c *Client) request(ctx context.Context) *resty.Request {
	return c.rc.R().SetContext(ctx)
}

// authedRequest returns a context-bound request carrying the API key.
// It fails before any network activity when the client has no key.
func (c *Client) authedRequest(ctx context.Context) (*resty.Request, error) {
	if c.apiKey == "" {
		return nil, ErrAPIKeyRequired
	}
	return c.request(ctx).SetHeader(authHeader, c.apiKey), nil
}

// apiError builds an *APIError from a non-success response, carrying
// the response body text where available.
func apiError(resp *resty.Response) *APIError {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: body}
}

// netError wraps a transport-level failure (connection refused, DNS,
// context cancellation) together with the endpoint path.
func netError(err error, path string) error {
	return &NetworkError{Err: err, URL: path}
}

// decode unmarshals a success body into v. A body the server claims is
// JSON but is not parseable surfaces as a wrapped error, distinct from
// the status-code branch.
func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
