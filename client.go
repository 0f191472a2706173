package simplelogin

import (
	"github.com/vkram2711/vault-go/internal/api"
)

// Client is the facade over the SimpleLogin API. The four sub-clients
// share one transport handle and one base address; none of them retains
// per-call state beyond the credential the client was constructed with.
type Client struct {
	Auth      *AuthClient
	User      *UserClient
	Aliases   *AliasClient
	Mailboxes *MailboxClient

	apiClient *api.Client
}

// New creates a new SimpleLogin client. apiKey may be empty: the auth
// endpoints work without a credential, and every authenticated call
// fails with ErrAPIKeyRequired before issuing a network request.
// Re-construction is the way to switch credentials, e.g. after a login
// yields an API key.
func New(apiKey string, opts ...Option) *Client {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var apiOpts []api.Option
	if cfg.baseURL != "" {
		apiOpts = append(apiOpts, api.WithBaseURL(cfg.baseURL))
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.userAgent != "" {
		apiOpts = append(apiOpts, api.WithUserAgent(cfg.userAgent))
	}

	apiClient := api.New(apiKey, apiOpts...)

	return &Client{
		Auth:      &AuthClient{api: apiClient},
		User:      &UserClient{api: apiClient},
		Aliases:   &AliasClient{api: apiClient},
		Mailboxes: &MailboxClient{api: apiClient},
		apiClient: apiClient,
	}
}

// HasAPIKey reports whether the client was constructed with a credential.
func (c *Client) HasAPIKey() bool {
	return c.apiClient.HasAPIKey()
}

// BaseURL returns the API base address the client talks to.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}
