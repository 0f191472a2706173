package api

import "context"

// ListMailboxes returns all mailboxes on the account.
func (c *Client) ListMailboxes(ctx context.Context) ([]Mailbox, error) {
	const path = "/api/v2/mailboxes"
	req, err := c.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, netError(err, path)
	}

	if !resp.IsSuccess() {
		return nil, apiError(resp)
	}

	var result mailboxesResponse
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	return result.Mailboxes, nil
}
