package openweathermap

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
	providerName   = "OpenWeatherMap"
	defaultBaseURL = "https://api.openweathermap.org"
	defaultTimeout = 10 * time.Second

	geocodeEndpoint  = "/geo/1.0/direct"
	currentEndpoint  = "/data/2.5/weather"
	forecastEndpoint = "/data/2.5/forecast"
)

// Provider talks to the OpenWeatherMap geocoding, current weather and 5 day / 3 hour
// forecast APIs. It implements datasource.Geocoder and datasource.WeatherProvider.
type Provider struct {
	apiKey string
	client *resty.Client
}

// Ensure Provider implements the datasource interfaces
var (
	_ datasource.Geocoder        = (*Provider)(nil)
	_ datasource.WeatherProvider = (*Provider)(nil)
)

// New creates a provider authenticating with apiKey
func New(apiKey string) *Provider {
	client := resty.New().
		SetBaseURL(defaultBaseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(defaultTimeout).
		SetRetryCount(0)

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		// the query string carries the api key, log the path only
		slog.Debug("openweathermap response",
			"path", resp.Request.RawRequest.URL.Path,
			"status", resp.StatusCode(),
			"duration", resp.Time(),
			"bytes", len(resp.Body()))
		return nil
	})

	return &Provider{apiKey: apiKey, client: client}
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

// Name returns the provider name
func (p *Provider) Name() string {
	return providerName
}

// Geocode resolves a free-text place name
func (p *Provider) Geocode(ctx context.Context, query string, limit int) ([]models.Location, error) {
	var results []struct {
		Name    string  `json:"name"`
		Country string  `json:"country"`
		State   string  `json:"state"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
	}

	params := map[string]string{
		"q":     query,
		"limit": fmt.Sprintf("%d", limit),
	}
	if err := p.get(ctx, "geocode", geocodeEndpoint, params, &results); err != nil {
		return nil, err
	}

	locations := make([]models.Location, len(results))
	for i, r := range results {
		locations[i] = models.Location{
			Name:        r.Name,
			Country:     r.Country,
			State:       r.State,
			Coordinates: models.Coordinates{Lat: r.Lat, Lon: r.Lon},
		}
	}
	return locations, nil
}

// CurrentConditions fetches the current weather in metric units
func (p *Provider) CurrentConditions(ctx context.Context, coords models.Coordinates) (models.CurrentConditions, error) {
	var response struct {
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			TempMin   float64 `json:"temp_min"`
			TempMax   float64 `json:"temp_max"`
			Humidity  int     `json:"humidity"`
			Pressure  int     `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Visibility int   `json:"visibility"`
		Dt         int64 `json:"dt"`
	}

	if err := p.get(ctx, "weather", currentEndpoint, coordParams(coords), &response); err != nil {
		return models.CurrentConditions{}, err
	}

	current := models.CurrentConditions{
		Temp:       response.Main.Temp,
		FeelsLike:  response.Main.FeelsLike,
		TempMin:    response.Main.TempMin,
		TempMax:    response.Main.TempMax,
		Humidity:   response.Main.Humidity,
		Pressure:   response.Main.Pressure,
		WindSpeed:  response.Wind.Speed,
		Visibility: response.Visibility,
		ObservedAt: time.Unix(response.Dt, 0),
	}
	if len(response.Weather) > 0 {
		current.Description = response.Weather[0].Description
		current.Icon = response.Weather[0].Icon
	}
	return current, nil
}

func coordParams(coords models.Coordinates) map[string]string {
	return map[string]string{
		"lat":   fmt.Sprintf("%f", coords.Lat),
		"lon":   fmt.Sprintf("%f", coords.Lon),
		"units": "metric",
	}
}

// get performs one request and decodes a successful body into out
func (p *Provider) get(ctx context.Context, endpoint, path string, params map[string]string, out any) error {
	params["appid"] = p.apiKey

	start := time.Now()
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		observability.ObserveUpstream(providerName, endpoint, 0, time.Since(start))
		return datasource.NetworkError(endpoint+" request", err)
	}
	observability.ObserveUpstream(providerName, endpoint, resp.StatusCode(), resp.Time())

	if !resp.IsSuccess() {
		return parseError(resp)
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return datasource.NetworkError("decode "+endpoint+" response", err)
	}
	return nil
}

// parseError builds an APIError from an error body such as {"cod":401,"message":"..."}
func parseError(resp *resty.Response) error {
	var apiError struct {
		Cod     any    `json:"cod"` // int or string depending on endpoint
		Message string `json:"message"`
	}
	_ = json.Unmarshal(resp.Body(), &apiError)
	return datasource.NewAPIError(providerName, resp.StatusCode(), apiError.Message)
}
