package simplelogin

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vkram2711/vault-go/internal/api"
)

func TestWrapError_Sentinels(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   error
		want error
	}{
		{api.ErrAPIKeyRequired, ErrAPIKeyRequired},
		{api.ErrInvalidAPIKey, ErrInvalidAPIKey},
		{api.ErrFIDOEnabled, ErrFIDOEnabled},
		{api.ErrWrongActivationCode, ErrWrongActivationCode},
		{api.ErrReactivationRequired, ErrReactivationRequired},
	}

	for _, tt := range tests {
		if got := wrapError(tt.in); !errors.Is(got, tt.want) {
			t.Errorf("wrapError(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWrapError_APIError(t *testing.T) {
	t.Parallel()
	in := &api.APIError{StatusCode: 400, Message: "bad request"}
	got := wrapError(in)

	var apiErr *APIError
	if !errors.As(got, &apiErr) {
		t.Fatalf("wrapError() = %T, want *APIError", got)
	}
	if apiErr.StatusCode != 400 || apiErr.Message != "bad request" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestWrapError_Unauthorized(t *testing.T) {
	t.Parallel()
	// A 401 from the server collapses to the invalid-credential sentinel.
	in := &api.APIError{StatusCode: 401, Message: "Wrong api key"}
	if got := wrapError(in); !errors.Is(got, ErrInvalidAPIKey) {
		t.Errorf("wrapError(401) = %v, want ErrInvalidAPIKey", got)
	}
}

func TestWrapError_NetworkError(t *testing.T) {
	t.Parallel()
	inner := errors.New("connection refused")
	in := &api.NetworkError{Err: inner, URL: "/api/v2/aliases"}
	got := wrapError(in)

	var netErr *NetworkError
	if !errors.As(got, &netErr) {
		t.Fatalf("wrapError() = %T, want *NetworkError", got)
	}
	if !errors.Is(got, inner) {
		t.Error("wrapped NetworkError should unwrap to the inner error")
	}
	if netErr.URL != "/api/v2/aliases" {
		t.Errorf("URL = %s", netErr.URL)
	}
}

func TestWrapError_Passthrough(t *testing.T) {
	t.Parallel()
	if got := wrapError(nil); got != nil {
		t.Errorf("wrapError(nil) = %v, want nil", got)
	}

	plain := fmt.Errorf("decode response: %w", errors.New("unexpected EOF"))
	if got := wrapError(plain); got != plain {
		t.Errorf("wrapError(plain) = %v, want unchanged", got)
	}
}

func TestAPIError_IsUnauthorized(t *testing.T) {
	t.Parallel()
	err := &APIError{StatusCode: 401, Message: "nope"}
	if !errors.Is(err, ErrInvalidAPIKey) {
		t.Error("401 APIError should match ErrInvalidAPIKey")
	}
}
