package api

import (
	"context"
	"net/http"
)

// Login authenticates with email and password and returns the session.
// Accounts protected by FIDO refuse password logins with 403, surfaced
// as ErrFIDOEnabled.
func (c *Client) Login(ctx context.Context, email, password, device string) (*Session, error) {
	const path = "/api/auth/login"
	resp, err := c.request(ctx).
		SetBody(&loginRequest{Email: email, Password: password, Device: device}).
		Post(path)
	if err != nil {
		return nil, netError(err, path)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		var session Session
		if err := decode(resp, &session); err != nil {
			return nil, err
		}
		return &session, nil
	case http.StatusForbidden:
		return nil, ErrFIDOEnabled
	default:
		return nil, apiError(resp)
	}
}

// Register creates a new account. The account must be activated with the
// emailed code before it can log in.
func (c *Client) Register(ctx context.Context, email, password string) error {
	const path = "/api/auth/register"
	resp, err := c.request(ctx).
		SetBody(&registerRequest{Email: email, Password: password}).
		Post(path)
	if err != nil {
		return netError(err, path)
	}

	if !resp.IsSuccess() {
		return apiError(resp)
	}
	return nil
}

// Activate confirms a registration with the code sent by email.
func (c *Client) Activate(ctx context.Context, email, code string) error {
	const path = "/api/auth/activate"
	resp, err := c.request(ctx).
		SetBody(&activateRequest{Email: email, Code: code}).
		Post(path)
	if err != nil {
		return netError(err, path)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		return ErrWrongActivationCode
	case http.StatusGone:
		return ErrReactivationRequired
	default:
		return apiError(resp)
	}
}
