// Package nominatim reverse-geocodes coordinates with OpenStreetMap Nominatim.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"weather-lookup/datasource"
	"weather-lookup/models"
	"weather-lookup/observability"
)

const (
	providerName     = "Nominatim"
	defaultBaseURL   = "https://nominatim.openstreetmap.org"
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "weather-lookup/1.0"

	reverseEndpoint = "/reverse"
)

// Provider implements datasource.ReverseGeocoder
type Provider struct {
	client *resty.Client
	email  string
}

var _ datasource.ReverseGeocoder = (*Provider)(nil)

// New creates a provider. Nominatim's usage policy asks clients to identify themselves,
// so email (may be empty) is sent with every request next to the User-Agent.
func New(email string) *Provider {
	client := resty.New().
		SetBaseURL(defaultBaseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", defaultUserAgent).
		SetTimeout(defaultTimeout).
		SetRetryCount(0)

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		slog.Debug("nominatim response",
			"path", resp.Request.RawRequest.URL.Path,
			"status", resp.StatusCode(),
			"duration", resp.Time())
		return nil
	})

	return &Provider{client: client, email: email}
}

// SetBaseURL points the provider at another host (useful for testing)
func (p *Provider) SetBaseURL(baseURL string) *Provider {
	p.client.SetBaseURL(baseURL)
	return p
}

// SetTimeout bounds every request; zero disables the timeout
func (p *Provider) SetTimeout(timeout time.Duration) *Provider {
	p.client.SetTimeout(timeout)
	return p
}

// SetUserAgent overrides the User-Agent header
func (p *Provider) SetUserAgent(userAgent string) *Provider {
	if userAgent != "" {
		p.client.SetHeader("User-Agent", userAgent)
	}
	return p
}

// Name returns the provider name
func (p *Provider) Name() string {
	return providerName
}

// ReverseGeocode looks up the address at coords with full address details
func (p *Provider) ReverseGeocode(ctx context.Context, coords models.Coordinates) (models.ReverseGeocodeResult, error) {
	params := map[string]string{
		"format":         "json",
		"lat":            fmt.Sprintf("%f", coords.Lat),
		"lon":            fmt.Sprintf("%f", coords.Lon),
		"zoom":           "18",
		"addressdetails": "1",
	}
	if p.email != "" {
		params["email"] = p.email
	}

	start := time.Now()
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(reverseEndpoint)
	if err != nil {
		observability.ObserveUpstream(providerName, "reverse", 0, time.Since(start))
		return models.ReverseGeocodeResult{}, datasource.NetworkError("reverse request", err)
	}
	observability.ObserveUpstream(providerName, "reverse", resp.StatusCode(), resp.Time())

	if !resp.IsSuccess() {
		return models.ReverseGeocodeResult{}, datasource.NewAPIError(providerName, resp.StatusCode(), "")
	}

	var response struct {
		Address     *models.AddressComponents `json:"address"`
		DisplayName string                    `json:"display_name"`
		Error       string                    `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		return models.ReverseGeocodeResult{}, datasource.NetworkError("decode reverse response", err)
	}
	// Nominatim answers 200 with {"error":"Unable to geocode"} for open sea and the like.
	// That is an answer without an address, not a failed request.
	if response.Error != "" && response.Address == nil {
		slog.Debug("nominatim returned no address", "error", response.Error)
		return models.ReverseGeocodeResult{}, nil
	}

	return models.ReverseGeocodeResult{
		Address:     response.Address,
		DisplayName: response.DisplayName,
	}, nil
}
