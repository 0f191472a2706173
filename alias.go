package simplelogin

import (
	"context"

	"github.com/vkram2711/vault-go/internal/api"
)

// Alias is a forwarding address the service routes to one or more
// mailboxes. Name and Note are nil when unset on the server.
type Alias = api.Alias

// AliasMailbox is the abbreviated mailbox record embedded in an Alias.
type AliasMailbox = api.AliasMailbox

// AliasMode selects how the server names a random alias.
type AliasMode = api.AliasMode

// Alias naming modes for CreateRandom.
const (
	AliasModeUUID = api.AliasModeUUID
	AliasModeWord = api.AliasModeWord
)

// CreateAliasRequest are the parameters for creating a custom alias.
type CreateAliasRequest = api.CreateAliasParams

// RandomAliasOptions are the optional parameters for CreateRandom.
// Zero values are omitted from the request.
type RandomAliasOptions = api.RandomAliasParams

// AliasClient groups the alias CRUD endpoints. Every read is a fresh
// remote query; nothing is cached locally.
type AliasClient struct {
	api *api.Client
}

// List returns one page of the account's aliases. pageID is the raw
// page cursor the API expects, starting at 0.
func (a *AliasClient) List(ctx context.Context, pageID int) ([]Alias, error) {
	aliases, err := a.api.ListAliases(ctx, pageID)
	if err != nil {
		return nil, wrapError(err)
	}
	return aliases, nil
}

// Create creates a custom alias from a prefix and a server-issued
// signed suffix, attached to the given mailboxes.
func (a *AliasClient) Create(ctx context.Context, req CreateAliasRequest) (*Alias, error) {
	alias, err := a.api.CreateAlias(ctx, &req)
	if err != nil {
		return nil, wrapError(err)
	}
	return alias, nil
}

// CreateRandom lets the server pick the alias address, optionally tied
// to a hostname and naming mode.
func (a *AliasClient) CreateRandom(ctx context.Context, opts RandomAliasOptions) (*Alias, error) {
	alias, err := a.api.CreateRandomAlias(ctx, &opts)
	if err != nil {
		return nil, wrapError(err)
	}
	return alias, nil
}

// Delete deletes an alias by ID and reports whether the server
// confirmed the deletion.
func (a *AliasClient) Delete(ctx context.Context, id int) (bool, error) {
	ok, err := a.api.DeleteAlias(ctx, id)
	if err != nil {
		return false, wrapError(err)
	}
	return ok, nil
}
