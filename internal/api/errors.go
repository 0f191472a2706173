package api

import (
	"errors"
	"fmt"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrAPIKeyRequired indicates an authenticated endpoint was called
	// on a client constructed without an API key.
	ErrAPIKeyRequired = errors.New("API key not set")
	// ErrInvalidAPIKey indicates the server rejected the credential.
	ErrInvalidAPIKey = errors.New("invalid API key")
	// ErrFIDOEnabled indicates password login is refused because the
	// account uses FIDO; an API key must be used instead.
	ErrFIDOEnabled = errors.New("FIDO enabled, use API key instead")
	// ErrWrongActivationCode indicates the activation email or code is wrong.
	ErrWrongActivationCode = errors.New("wrong email or code")
	// ErrReactivationRequired indicates too many failed activation
	// attempts; a new code must be requested.
	ErrReactivationRequired = errors.New("too many failed attempts, request reactivation")
)

// APIError represents a non-success HTTP status from the SimpleLogin API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrInvalidAPIKey
	}
	return false
}

// NetworkError represents a transport-level failure.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
