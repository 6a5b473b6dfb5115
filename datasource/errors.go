package datasource

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. Every failure surfaced by a provider or a lookup matches exactly one of
// these with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNetwork      = errors.New("network error")

	ErrGeolocationDenied      = errors.New("geolocation permission denied")
	ErrGeolocationUnavailable = errors.New("geolocation unavailable")
	ErrGeolocationTimeout     = errors.New("geolocation timed out")
	ErrUnsupportedEnvironment = errors.New("geolocation not supported")
)

// APIError is a non-success response from a provider
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
	Kind       error
}

// NewAPIError classifies a provider status code
func NewAPIError(provider string, status int, message string) *APIError {
	return &APIError{
		Provider:   provider,
		StatusCode: status,
		Message:    message,
		Kind:       KindForStatus(status),
	}
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s API returned status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s API returned status %d: %s", e.Provider, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Kind
}

// KindForStatus maps an HTTP status to an error kind
func KindForStatus(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrNetwork
	}
}

// NetworkError wraps a transport or decoding failure. The cause stays reachable, so a
// cancelled context still matches context.Canceled.
func NetworkError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrNetwork, op, err)
}
