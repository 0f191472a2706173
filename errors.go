package simplelogin

import (
	"errors"
	"fmt"

	"github.com/vkram2711/vault-go/internal/api"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrAPIKeyRequired is returned when an authenticated call is made
	// on a client constructed without an API key. No network request is
	// issued in that case.
	ErrAPIKeyRequired = errors.New("API key not set")

	// ErrInvalidAPIKey is returned when the server rejects the credential.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrFIDOEnabled is returned by Login when the account uses FIDO
	// and password login is refused; use an API key instead.
	ErrFIDOEnabled = errors.New("FIDO enabled, use API key instead")

	// ErrWrongActivationCode is returned by Activate when the email or
	// code is wrong.
	ErrWrongActivationCode = errors.New("wrong email or code")

	// ErrReactivationRequired is returned by Activate after too many
	// failed attempts; a new code must be requested.
	ErrReactivationRequired = errors.New("too many failed attempts, request reactivation")
)

// APIError represents a non-success HTTP status from the SimpleLogin
// API. Message carries the response body text where available.
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

// NetworkError represents a transport-level failure: connection errors,
// timeouts, or a response body that could not be read.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// wrapError converts internal API errors to public errors so that
// errors.Is() checks work against the package sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, api.ErrAPIKeyRequired):
		return ErrAPIKeyRequired
	case errors.Is(err, api.ErrInvalidAPIKey):
		return ErrInvalidAPIKey
	case errors.Is(err, api.ErrFIDOEnabled):
		return ErrFIDOEnabled
	case errors.Is(err, api.ErrWrongActivationCode):
		return ErrWrongActivationCode
	case errors.Is(err, api.ErrReactivationRequired):
		return ErrReactivationRequired
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{Err: netErr.Err, URL: netErr.URL}
	}

	return err
}
