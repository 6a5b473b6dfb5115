package datasource

import (
	"errors"
	"net/http"
	"testing"
)

func TestAPIErrorKinds(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrNetwork},
		{http.StatusTooManyRequests, ErrNetwork},
	}

	for _, tt := range tests {
		err := error(NewAPIError("OpenWeatherMap", tt.status, "boom"))
		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: expected %v, got %v", tt.status, tt.want, err)
		}
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != tt.status {
			t.Errorf("status %d: expected *APIError carrying the status, got %v", tt.status, err)
		}
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := NewAPIError("Nominatim", http.StatusBadGateway, "")
	if got, want := err.Error(), "Nominatim API returned status 502"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	err = NewAPIError("OpenWeatherMap", http.StatusUnauthorized, "Invalid API key")
	if got, want := err.Error(), "OpenWeatherMap API returned status 401: Invalid API key"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := NetworkError("decode forecast", cause)
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to stay reachable, got %v", err)
	}
	if got, want := err.Error(), "network error: decode forecast: unexpected EOF"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
