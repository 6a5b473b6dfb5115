package main

import (
	"io"
	"testing"

	"weather-lookup/datasource"
)

func TestFlagsOverrideOnlyWhenGiven(t *testing.T) {
	var cfg datasource.Config
	cfg.Log.Level = "debug"
	cfg.Geolocation.Lat, cfg.Geolocation.Lon, cfg.Geolocation.Fixed = 47.5, 19.04, true

	opts, err := parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts.apply(&cfg)
	if cfg.Log.Level != "debug" {
		t.Errorf("expected configured log level to survive, got %q", cfg.Log.Level)
	}
	if !cfg.Geolocation.Fixed || cfg.Geolocation.Lat != 47.5 {
		t.Errorf("expected configured position to survive, got %+v", cfg.Geolocation)
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	var cfg datasource.Config
	cfg.Log.Level = "info"

	opts, err := parseFlags([]string{"-log-level", "error", "-lat", "0", "-lon", "0"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts.apply(&cfg)
	if cfg.Log.Level != "error" {
		t.Errorf("expected log level from flag, got %q", cfg.Log.Level)
	}
	if !cfg.Geolocation.Fixed || cfg.Geolocation.Lat != 0 || cfg.Geolocation.Lon != 0 {
		t.Errorf("expected fixed position at 0,0, got %+v", cfg.Geolocation)
	}
}

func TestFlagsRequireBothCoordinates(t *testing.T) {
	if _, err := parseFlags([]string{"-lat", "10"}, io.Discard); err == nil {
		t.Fatal("expected error for -lat without -lon")
	}
}
