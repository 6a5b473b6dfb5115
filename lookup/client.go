// Package lookup orchestrates geocoding, reverse geocoding and weather requests into
// render-ready reports.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"weather-lookup/datasource"
	"weather-lookup/forecast"
	"weather-lookup/models"
	"weather-lookup/observability"
	"weather-lookup/placename"
)

const (
	// DefaultLocateTimeout bounds how long the device locator may take
	DefaultLocateTimeout = 10 * time.Second

	// WarnReverseGeocode is attached to a report whose place name could not be looked up
	WarnReverseGeocode = "Failed to get detailed location name. Check network or Nominatim usage policy."
)

const (
	modeCity        = "city"
	modeCoordinates = "coordinates"
	modeDevice      = "device"
)

// Lookup is the set of operations a presentation layer drives
type Lookup interface {
	ByCity(ctx context.Context, city string) (models.WeatherReport, error)
	ByCoordinates(ctx context.Context, coords models.Coordinates) (models.WeatherReport, error)
	ByDeviceLocation(ctx context.Context) (models.WeatherReport, error)
}

// Weather is the raw result of one weather fetch
type Weather struct {
	Current  models.CurrentConditions
	Forecast []models.ForecastSample
}

// Options tune a Client. The zero value is usable.
type Options struct {
	// Locator provides the device position; nil means the environment has none
	Locator Locator

	// LocateTimeout defaults to DefaultLocateTimeout
	LocateTimeout time.Duration

	// Location is the timezone forecast days are split in; defaults to time.Local
	Location *time.Location

	// Now defaults to time.Now
	Now func() time.Time
}

// Client is the weather client. It is safe for concurrent use; every call works on its
// own local state.
type Client struct {
	geocoder      datasource.Geocoder
	reverse       datasource.ReverseGeocoder
	weather       datasource.WeatherProvider
	locator       Locator
	locateTimeout time.Duration
	location      *time.Location
	now           func() time.Time
}

var _ Lookup = (*Client)(nil)

// NewClient wires the providers together. reverse may be nil, in which case coordinate
// lookups are named FallbackName.
func NewClient(geocoder datasource.Geocoder, reverse datasource.ReverseGeocoder, weather datasource.WeatherProvider, opts Options) *Client {
	c := &Client{
		geocoder:      geocoder,
		reverse:       reverse,
		weather:       weather,
		locator:       opts.Locator,
		locateTimeout: opts.LocateTimeout,
		location:      opts.Location,
		now:           opts.Now,
	}
	if c.locateTimeout <= 0 {
		c.locateTimeout = DefaultLocateTimeout
	}
	if c.location == nil {
		c.location = time.Local
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// ResolveByCityName returns the best geocoding match for city
func (c *Client) ResolveByCityName(ctx context.Context, city string) (models.Location, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return models.Location{}, ErrEmptyQuery
	}

	matches, err := c.geocoder.Geocode(ctx, city, 1)
	if err != nil {
		return models.Location{}, &OpError{Op: OpResolveCity, Err: err}
	}
	if len(matches) == 0 {
		return models.Location{}, &OpError{
			Op:  OpResolveCity,
			Err: fmt.Errorf("%w: no match for %q", datasource.ErrNotFound, city),
		}
	}
	return matches[0], nil
}

// FetchWeather requests current conditions and the forecast concurrently and waits for
// both. When both fail the current-conditions error is the one reported.
func (c *Client) FetchWeather(ctx context.Context, coords models.Coordinates) (Weather, error) {
	var (
		w                       Weather
		currentErr, forecastErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		w.Current, currentErr = c.weather.CurrentConditions(ctx, coords)
		return currentErr
	})
	g.Go(func() error {
		w.Forecast, forecastErr = c.weather.Forecast(ctx, coords)
		return forecastErr
	})
	_ = g.Wait()

	if currentErr != nil {
		return Weather{}, &OpError{Op: OpFetchWeather, Err: currentErr}
	}
	if forecastErr != nil {
		return Weather{}, &OpError{Op: OpFetchWeather, Err: forecastErr}
	}
	return w, nil
}

// PlaceName reverse geocodes coords into a display name. It never fails: any error
// yields FallbackName and is returned alongside for the caller to report.
func (c *Client) PlaceName(ctx context.Context, coords models.Coordinates) (string, error) {
	if c.reverse == nil {
		return placename.FallbackName, nil
	}
	res, err := c.reverse.ReverseGeocode(ctx, coords)
	if err != nil {
		return placename.FallbackName, err
	}
	return placename.FromReverse(res), nil
}

// ByCity resolves city and fetches its weather
func (c *Client) ByCity(ctx context.Context, city string) (models.WeatherReport, error) {
	id, start := uuid.NewString(), time.Now()

	loc, err := c.ResolveByCityName(ctx, city)
	if err != nil {
		c.finish(id, modeCity, start, err)
		return models.WeatherReport{}, err
	}

	w, err := c.FetchWeather(ctx, loc.Coordinates)
	if err != nil {
		c.finish(id, modeCity, start, err)
		return models.WeatherReport{}, err
	}

	report := c.buildReport(id, loc.Name, loc.Coordinates, w, nil)
	c.finish(id, modeCity, start, nil)
	return report, nil
}

// ByCoordinates names the position and fetches its weather. A failed reverse lookup
// only degrades the name.
func (c *Client) ByCoordinates(ctx context.Context, coords models.Coordinates) (models.WeatherReport, error) {
	id, start := uuid.NewString(), time.Now()
	report, err := c.byCoordinates(ctx, id, coords)
	c.finish(id, modeCoordinates, start, err)
	return report, err
}

// ByDeviceLocation asks the locator for the current position, then behaves like
// ByCoordinates
func (c *Client) ByDeviceLocation(ctx context.Context) (models.WeatherReport, error) {
	id, start := uuid.NewString(), time.Now()

	coords, err := c.locate(ctx)
	if err != nil {
		c.finish(id, modeDevice, start, err)
		return models.WeatherReport{}, err
	}

	report, err := c.byCoordinates(ctx, id, coords)
	c.finish(id, modeDevice, start, err)
	return report, err
}

func (c *Client) byCoordinates(ctx context.Context, id string, coords models.Coordinates) (models.WeatherReport, error) {
	var (
		name       string
		reverseErr error
		w          Weather
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		name, reverseErr = c.PlaceName(gctx, coords)
		return nil
	})
	g.Go(func() error {
		var err error
		w, err = c.FetchWeather(gctx, coords)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.WeatherReport{}, err
	}

	var warnings []string
	if reverseErr != nil {
		slog.Warn("reverse geocoding failed", "id", id, "error", reverseErr)
		warnings = append(warnings, WarnReverseGeocode)
	}
	return c.buildReport(id, name, coords, w, warnings), nil
}

func (c *Client) locate(ctx context.Context) (models.Coordinates, error) {
	if c.locator == nil {
		return models.Coordinates{}, &OpError{Op: OpLocate, Err: datasource.ErrUnsupportedEnvironment}
	}

	lctx, cancel := context.WithTimeout(ctx, c.locateTimeout)
	defer cancel()

	coords, err := c.locator.Locate(lctx)
	if err == nil {
		return coords, nil
	}

	switch {
	case errors.Is(err, datasource.ErrGeolocationDenied),
		errors.Is(err, datasource.ErrGeolocationUnavailable),
		errors.Is(err, datasource.ErrGeolocationTimeout),
		errors.Is(err, datasource.ErrUnsupportedEnvironment):
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		err = fmt.Errorf("%w after %s", datasource.ErrGeolocationTimeout, c.locateTimeout)
	default:
		err = fmt.Errorf("%w: %w", datasource.ErrGeolocationUnavailable, err)
	}
	return models.Coordinates{}, &OpError{Op: OpLocate, Err: err}
}

func (c *Client) buildReport(id, name string, coords models.Coordinates, w Weather, warnings []string) models.WeatherReport {
	now := c.now().In(c.location)
	return models.WeatherReport{
		ID:          id,
		Name:        name,
		Coordinates: coords,
		Current:     w.Current,
		Days:        forecast.SelectDays(w.Forecast, now),
		Warnings:    warnings,
		FetchedAt:   now,
	}
}

func (c *Client) finish(id, mode string, start time.Time, err error) {
	outcome := Outcome(err)
	observability.ObserveLookup(mode, outcome)
	if err != nil {
		slog.Warn("lookup failed", "id", id, "mode", mode, "outcome", outcome, "duration", time.Since(start), "error", err)
		return
	}
	slog.Info("lookup complete", "id", id, "mode", mode, "duration", time.Since(start))
}

// Outcome is a short label for the kind of err, "ok" for nil
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrEmptyQuery):
		return "empty_query"
	case errors.Is(err, ErrSuperseded):
		return "superseded"
	case errors.Is(err, datasource.ErrNotFound):
		return "not_found"
	case errors.Is(err, datasource.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, datasource.ErrGeolocationDenied),
		errors.Is(err, datasource.ErrGeolocationUnavailable),
		errors.Is(err, datasource.ErrGeolocationTimeout),
		errors.Is(err, datasource.ErrUnsupportedEnvironment):
		return "geolocation"
	default:
		return "network"
	}
}
