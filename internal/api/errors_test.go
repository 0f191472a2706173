package api

import (
	"errors"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()
	err := &APIError{StatusCode: 400, Message: "bad request"}
	if got := err.Error(); got != "API error 400: bad request" {
		t.Errorf("Error() = %q", got)
	}

	err = &APIError{StatusCode: 500}
	if got := err.Error(); got != "API error 500" {
		t.Errorf("Error() = %q", got)
	}
}

func TestAPIError_Is(t *testing.T) {
	t.Parallel()
	err := &APIError{StatusCode: 401, Message: "nope"}
	if !errors.Is(err, ErrInvalidAPIKey) {
		t.Error("401 APIError should match ErrInvalidAPIKey")
	}

	err = &APIError{StatusCode: 404}
	if errors.Is(err, ErrInvalidAPIKey) {
		t.Error("404 APIError should not match ErrInvalidAPIKey")
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	t.Parallel()
	inner := errors.New("connection refused")
	err := &NetworkError{Err: inner, URL: "/api/user_info"}

	if !errors.Is(err, inner) {
		t.Error("NetworkError should unwrap to the inner error")
	}
}
