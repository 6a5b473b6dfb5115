package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"weather-lookup/datasource"
	"weather-lookup/display"
	"weather-lookup/lookup"
	"weather-lookup/models"
)

type stubLookup struct {
	cities []string
}

func (s *stubLookup) ByCity(_ context.Context, city string) (models.WeatherReport, error) {
	s.cities = append(s.cities, city)
	if city == "Atlantis" {
		return models.WeatherReport{}, &lookup.OpError{Op: lookup.OpResolveCity, Err: datasource.ErrNotFound}
	}
	return models.WeatherReport{Name: city}, nil
}

func (s *stubLookup) ByCoordinates(_ context.Context, coords models.Coordinates) (models.WeatherReport, error) {
	return models.WeatherReport{Name: "Your Location", Coordinates: coords}, nil
}

func (s *stubLookup) ByDeviceLocation(context.Context) (models.WeatherReport, error) {
	return models.WeatherReport{}, &lookup.OpError{Op: lookup.OpLocate, Err: datasource.ErrUnsupportedEnvironment}
}

func runScript(t *testing.T, l lookup.Lookup, script string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	newREPL(lookup.NewSession(l), &out, &errOut).run(context.Background(), strings.NewReader(script))
	return out.String(), errOut.String()
}

func TestREPLCityLookup(t *testing.T) {
	l := &stubLookup{}
	out, errOut := runScript(t, l, "London\n")

	if !strings.Contains(out, "London") || !strings.Contains(out, display.NoForecastMessage) {
		t.Errorf("expected rendered London report, got:\n%s", out)
	}
	if errOut != "" {
		t.Errorf("unexpected error output %q", errOut)
	}
	if !strings.HasSuffix(out, "Bye!\n") {
		t.Errorf("expected goodbye on EOF, got:\n%s", out)
	}
}

func TestREPLCityCommand(t *testing.T) {
	l := &stubLookup{}
	runScript(t, l, "city   Here Bay \nquit\n")
	if len(l.cities) != 1 || l.cities[0] != "Here Bay" {
		t.Errorf("expected lookup for %q, got %v", "Here Bay", l.cities)
	}
}

func TestREPLErrorsUseUserMessages(t *testing.T) {
	_, errOut := runScript(t, &stubLookup{}, "Atlantis\n")
	if !strings.Contains(errOut, display.MsgCityNotFound) {
		t.Errorf("expected city-not-found message, got %q", errOut)
	}

	_, errOut = runScript(t, &stubLookup{}, "here\n")
	if !strings.Contains(errOut, display.MsgUnsupported) {
		t.Errorf("expected unsupported message, got %q", errOut)
	}
}

func TestREPLCoordinates(t *testing.T) {
	out, _ := runScript(t, &stubLookup{}, "at 51.5 -0.12\n")
	if !strings.Contains(out, "Your Location") {
		t.Errorf("expected coordinate report, got:\n%s", out)
	}

	_, errOut := runScript(t, &stubLookup{}, "at 95 0\n")
	if !strings.Contains(errOut, "invalid latitude") {
		t.Errorf("expected latitude error, got %q", errOut)
	}
}

func TestREPLQuitStopsReading(t *testing.T) {
	l := &stubLookup{}
	out, _ := runScript(t, l, "quit\nLondon\n")
	if len(l.cities) != 0 {
		t.Errorf("expected no lookups after quit, got %v", l.cities)
	}
	if !strings.Contains(out, "Bye!") {
		t.Errorf("expected goodbye, got:\n%s", out)
	}
}

func TestRenderDropsSuperseded(t *testing.T) {
	var out, errOut bytes.Buffer
	r := newREPL(lookup.NewSession(&stubLookup{}), &out, &errOut)
	r.render(models.WeatherReport{Name: "Paris"}, lookup.ErrSuperseded)
	if out.Len() != 0 || errOut.Len() != 0 {
		t.Errorf("expected nothing rendered, got %q / %q", out.String(), errOut.String())
	}
}
