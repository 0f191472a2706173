package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// The alias endpoints span several base-path revisions (/api/v2,
// /api/v3, /api/alias, /api/aliases). The mix mirrors the live service;
// do not normalize.

// ListAliases returns one page of the account's aliases.
func (c *Client) ListAliases(ctx context.Context, pageID int) ([]Alias, error) {
	const path = "/api/v2/aliases"
	req, err := c.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetQueryParam("page_id", strconv.Itoa(pageID)).
		Get(path)
	if err != nil {
		return nil, netError(err, path)
	}

	if !resp.IsSuccess() {
		return nil, apiError(resp)
	}

	var result aliasesResponse
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	return result.Aliases, nil
}

// CreateAlias creates a custom alias from a prefix and a server-issued
// signed suffix.
func (c *Client) CreateAlias(ctx context.Context, params *CreateAliasParams) (*Alias, error) {
	const path = "/api/v3/alias/custom/new"
	req, err := c.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.SetBody(params).Post(path)
	if err != nil {
		return nil, netError(err, path)
	}

	if resp.StatusCode() != http.StatusCreated {
		return nil, apiError(resp)
	}

	var alias Alias
	if err := decode(resp, &alias); err != nil {
		return nil, err
	}
	return &alias, nil
}

// CreateRandomAlias lets the server pick the alias address. Hostname,
// mode and note are all optional; unset values are omitted from the
// request entirely.
func (c *Client) CreateRandomAlias(ctx context.Context, params *RandomAliasParams) (*Alias, error) {
	const path = "/api/alias/random/new"
	req, err := c.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	if params.Hostname != "" {
		req.SetQueryParam("hostname", params.Hostname)
	}
	if params.Mode != "" {
		req.SetQueryParam("mode", string(params.Mode))
	}

	resp, err := req.
		SetBody(&randomAliasRequest{Note: params.Note}).
		Post(path)
	if err != nil {
		return nil, netError(err, path)
	}

	if resp.StatusCode() != http.StatusCreated {
		return nil, apiError(resp)
	}

	var alias Alias
	if err := decode(resp, &alias); err != nil {
		return nil, err
	}
	return &alias, nil
}

// DeleteAlias deletes an alias by ID and reports whether the server
// confirmed the deletion.
func (c *Client) DeleteAlias(ctx context.Context, id int) (bool, error) {
	path := fmt.Sprintf("/api/aliases/%d", id)
	req, err := c.authedRequest(ctx)
	if err != nil {
		return false, err
	}

	resp, err := req.Delete(path)
	if err != nil {
		return false, netError(err, path)
	}

	if resp.StatusCode() != http.StatusOK {
		return false, apiError(resp)
	}
	return true, nil
}
