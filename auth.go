package simplelogin

import (
	"context"

	"github.com/vkram2711/vault-go/internal/api"
)

// Session is the result of a successful login. It is consumed
// immediately by the caller to obtain an API key; the SDK never stores
// it.
type Session = api.Session

// AuthClient groups the account endpoints that work without an API key.
type AuthClient struct {
	api *api.Client
}

// Login authenticates with email and password. When the account has MFA
// enabled the session carries an MFA key instead of an API key; the OTP
// exchange itself is out of scope for this SDK. Accounts protected by
// FIDO refuse password logins entirely, surfaced as ErrFIDOEnabled.
func (a *AuthClient) Login(ctx context.Context, email, password, device string) (*Session, error) {
	session, err := a.api.Login(ctx, email, password, device)
	if err != nil {
		return nil, wrapError(err)
	}
	return session, nil
}

// Register creates a new account. The account must be activated with
// the code sent by email before it can log in.
func (a *AuthClient) Register(ctx context.Context, email, password string) error {
	return wrapError(a.api.Register(ctx, email, password))
}

// Activate confirms a registration. A wrong code is reported as
// ErrWrongActivationCode; after too many failures the server requires a
// fresh code, reported as ErrReactivationRequired.
func (a *AuthClient) Activate(ctx context.Context, email, code string) error {
	return wrapError(a.api.Activate(ctx, email, code))
}
