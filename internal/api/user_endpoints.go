package api

import (
	"context"
	"net/http"
)

// GetUserInfo retrieves the account snapshot for the configured API key.
func (c *Client) GetUserInfo(ctx context.Context) (*UserInfo, error) {
	const path = "/api/user_info"
	req, err := c.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, netError(err, path)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		var info UserInfo
		if err := decode(resp, &info); err != nil {
			return nil, err
		}
		return &info, nil
	case http.StatusUnauthorized:
		return nil, ErrInvalidAPIKey
	default:
		return nil, apiError(resp)
	}
}

// CreateAPIKey issues a new API key for the given device label. It
// authenticates with loginAPIKey, the key obtained from a login, rather
// than the key the client was constructed with.
func (c *Client) CreateAPIKey(ctx context.Context, loginAPIKey, device string) (string, error) {
	const path = "/api/api_key"
	if loginAPIKey == "" {
		return "", ErrAPIKeyRequired
	}

	resp, err := c.request(ctx).
		SetHeader(authHeader, loginAPIKey).
		SetBody(&apiKeyRequest{Device: device}).
		Post(path)
	if err != nil {
		return "", netError(err, path)
	}

	switch resp.StatusCode() {
	case http.StatusCreated:
		var result apiKeyResponse
		if err := decode(resp, &result); err != nil {
			return "", err
		}
		return result.APIKey, nil
	case http.StatusUnauthorized:
		return "", ErrInvalidAPIKey
	default:
		return "", apiError(resp)
	}
}
