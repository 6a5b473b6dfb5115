// Package app builds the weather client and logger from configuration for the programs
// under this module.
package app

import (
	"io"
	"log/slog"
	"strings"

	"weather-lookup/datasource"
	"weather-lookup/lookup"
	"weather-lookup/models"
	"weather-lookup/providers/nominatim"
	"weather-lookup/providers/openweathermap"
)

// SetupLogger installs a text slog handler writing to w at the named level as the
// default logger
func SetupLogger(w io.Writer, level string) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps debug, info, warn and error to slog levels; anything else is info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewClient wires the providers named in cfg into a weather client. locator may be nil.
func NewClient(cfg *datasource.Config, locator lookup.Locator) (*lookup.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	owm := openweathermap.New(cfg.OpenWeather.APIKey).
		SetBaseURL(cfg.OpenWeather.BaseURL).
		SetTimeout(cfg.HTTP.Timeout)
	osm := nominatim.New(cfg.Nominatim.Email).
		SetBaseURL(cfg.Nominatim.BaseURL).
		SetTimeout(cfg.HTTP.Timeout).
		SetUserAgent(cfg.Nominatim.UserAgent)

	slog.Info("weather client configured",
		"geocoder", owm.Name(),
		"reverse_geocoder", osm.Name(),
		"timezone", loc.String(),
		"device_locator", locator != nil)

	return lookup.NewClient(owm, osm, owm, lookup.Options{
		Locator:       locator,
		LocateTimeout: cfg.Geolocation.Timeout,
		Location:      loc,
	}), nil
}

// ConfiguredLocator returns a fixed locator for the configured device position, or nil
// when none is set
func ConfiguredLocator(cfg *datasource.Config) lookup.Locator {
	if !cfg.Geolocation.Fixed {
		return nil
	}
	return lookup.FixedLocator{Coords: models.Coordinates{Lat: cfg.Geolocation.Lat, Lon: cfg.Geolocation.Lon}}
}
