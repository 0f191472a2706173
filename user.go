package simplelogin

import (
	"context"

	"github.com/vkram2711/vault-go/internal/api"
)

// UserInfo is a read-only snapshot of the account.
type UserInfo = api.UserInfo

// UserClient groups the account-info endpoints.
type UserClient struct {
	api *api.Client
}

// GetUserInfo retrieves the account snapshot for the configured API key.
func (u *UserClient) GetUserInfo(ctx context.Context) (*UserInfo, error) {
	info, err := u.api.GetUserInfo(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return info, nil
}

// CreateAPIKey issues a new API key for the given device label,
// authenticating with the key obtained from a login.
func (u *UserClient) CreateAPIKey(ctx context.Context, loginAPIKey, device string) (string, error) {
	key, err := u.api.CreateAPIKey(ctx, loginAPIKey, device)
	if err != nil {
		return "", wrapError(err)
	}
	return key, nil
}
