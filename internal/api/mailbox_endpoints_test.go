package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListMailboxes_Success(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/mailboxes" {
			t.Errorf("path = %s, want /api/v2/mailboxes", r.URL.Path)
		}
		if r.Header.Get(authHeader) != "test-key" {
			t.Errorf("Authentication = %s, want test-key", r.Header.Get(authHeader))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"mailboxes": []map[string]any{
				{
					"id":                 1,
					"email":              "me@mailbox.test",
					"default":            true,
					"creation_timestamp": 1581468075,
					"nb_alias":           5,
					"verified":           true,
				},
			},
		})
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))
	mailboxes, err := client.ListMailboxes(context.Background())
	if err != nil {
		t.Fatalf("ListMailboxes() error = %v", err)
	}

	if len(mailboxes) != 1 {
		t.Fatalf("len(mailboxes) = %d, want 1", len(mailboxes))
	}
	mb := mailboxes[0]
	if mb.ID != 1 || mb.Email != "me@mailbox.test" || !mb.Default || !mb.Verified {
		t.Errorf("mailbox = %+v", mb)
	}
	if mb.CreationTimestamp != 1581468075 || mb.NbAlias != 5 {
		t.Errorf("mailbox = %+v", mb)
	}
}

func TestListMailboxes_Error(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New("test-key", WithBaseURL(server.URL))
	if _, err := client.ListMailboxes(context.Background()); err == nil {
		t.Fatal("ListMailboxes() should return error for 500 response")
	}
}
