package app

import (
	"errors"
	"log/slog"
	"testing"

	"weather-lookup/datasource"
	"weather-lookup/lookup"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	var cfg datasource.Config
	if _, err := NewClient(&cfg, nil); !errors.Is(err, datasource.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}

	cfg.OpenWeather.APIKey = "test-key"
	cfg.Timezone = "Europe/Berlin"
	if _, err := NewClient(&cfg, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfiguredLocator(t *testing.T) {
	var cfg datasource.Config
	if ConfiguredLocator(&cfg) != nil {
		t.Error("expected no locator without a configured position")
	}

	cfg.Geolocation.Fixed = true
	cfg.Geolocation.Lat, cfg.Geolocation.Lon = 59.91, 10.75
	loc, ok := ConfiguredLocator(&cfg).(lookup.FixedLocator)
	if !ok {
		t.Fatalf("expected a FixedLocator")
	}
	if loc.Coords.Lat != 59.91 || loc.Coords.Lon != 10.75 {
		t.Errorf("unexpected coordinates %+v", loc.Coords)
	}
}
