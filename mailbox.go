package simplelogin

import (
	"context"

	"github.com/vkram2711/vault-go/internal/api"
)

// Mailbox is a real destination address on the account. Read-only;
// owned by the remote service.
type Mailbox = api.Mailbox

// MailboxClient groups the mailbox endpoints.
type MailboxClient struct {
	api *api.Client
}

// List returns all mailboxes on the account.
func (m *MailboxClient) List(ctx context.Context) ([]Mailbox, error) {
	mailboxes, err := m.api.ListMailboxes(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return mailboxes, nil
}
