package datasource

import (
	"context"

	"weather-lookup/models"
)

// Geocoder resolves free-text place names into coordinates
type Geocoder interface {
	// Geocode returns at most limit matches for query, best first
	Geocode(ctx context.Context, query string, limit int) ([]models.Location, error)

	// Name returns the provider's name
	Name() string
}

// ReverseGeocoder turns coordinates into an address
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, coords models.Coordinates) (models.ReverseGeocodeResult, error)
	Name() string
}

// WeatherProvider fetches current conditions and the 3-hour forecast feed for a position
type WeatherProvider interface {
	// CurrentConditions fetches the weather right now
	CurrentConditions(ctx context.Context, coords models.Coordinates) (models.CurrentConditions, error)

	// Forecast fetches the forecast samples in provider order
	Forecast(ctx context.Context, coords models.Coordinates) ([]models.ForecastSample, error)

	// Name returns the provider's name
	Name() string
}
