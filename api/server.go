package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"weather-lookup/datasource"
	"weather-lookup/display"
	"weather-lookup/lookup"
	"weather-lookup/models"
)

// Service is what the handlers need from the weather client
type Service interface {
	ByCity(ctx context.Context, city string) (models.WeatherReport, error)
	ByCoordinates(ctx context.Context, coords models.Coordinates) (models.WeatherReport, error)
	ResolveByCityName(ctx context.Context, city string) (models.Location, error)
	PlaceName(ctx context.Context, coords models.Coordinates) (string, error)
}

var errBadCoordinates = errors.New("invalid coordinates")

// Server exposes lookups over JSON
type Server struct {
	weather Service
}

// NewServer creates a new API server
func NewServer(weather Service) *Server {
	return &Server{weather: weather}
}

// RegisterRoutes mounts the handlers on r, normally under /api
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/health", s.handleHealthCheck)
	r.Get("/weather", s.handleWeather)
	r.Get("/geocode", s.handleGeocode)
	r.Get("/reverse", s.handleReverse)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := display.Message(err)
	if errors.Is(err, errBadCoordinates) {
		msg = err.Error()
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusFor maps a lookup error to the response status
func statusFor(err error) int {
	switch {
	case errors.Is(err, lookup.ErrEmptyQuery), errors.Is(err, errBadCoordinates):
		return http.StatusBadRequest
	case errors.Is(err, datasource.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, datasource.ErrGeolocationDenied),
		errors.Is(err, datasource.ErrGeolocationUnavailable),
		errors.Is(err, datasource.ErrGeolocationTimeout),
		errors.Is(err, datasource.ErrUnsupportedEnvironment):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// parseCoordinates reads lat and lon from the query string
func parseCoordinates(r *http.Request) (models.Coordinates, error) {
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr == "" || lonStr == "" {
		return models.Coordinates{}, fmt.Errorf("%w: lat and lon parameters are required", errBadCoordinates)
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		return models.Coordinates{}, fmt.Errorf("%w: invalid lat parameter", errBadCoordinates)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil || lon < -180 || lon > 180 {
		return models.Coordinates{}, fmt.Errorf("%w: invalid lon parameter", errBadCoordinates)
	}
	return models.Coordinates{Lat: lat, Lon: lon}, nil
}

// handleWeather serves ?lat=&lon= when either is given, ?city= otherwise
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		report models.WeatherReport
		err    error
	)
	if q.Has("lat") || q.Has("lon") {
		var coords models.Coordinates
		if coords, err = parseCoordinates(r); err == nil {
			report, err = s.weather.ByCoordinates(r.Context(), coords)
		}
	} else {
		report, err = s.weather.ByCity(r.Context(), q.Get("city"))
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, display.Build(report))
}

func (s *Server) handleGeocode(w http.ResponseWriter, r *http.Request) {
	loc, err := s.weather.ResolveByCityName(r.Context(), strings.TrimSpace(r.URL.Query().Get("q")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

// handleReverse always answers with a name; a failed lookup only adds a warning
func (s *Server) handleReverse(w http.ResponseWriter, r *http.Request) {
	coords, err := parseCoordinates(r)
	if err != nil {
		writeError(w, err)
		return
	}

	name, err := s.weather.PlaceName(r.Context(), coords)
	resp := map[string]any{"name": name}
	if err != nil {
		slog.Warn("reverse geocoding failed", "lat", coords.Lat, "lon", coords.Lon, "error", err)
		resp["warnings"] = []string{lookup.WarnReverseGeocode}
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
