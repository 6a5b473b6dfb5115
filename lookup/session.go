package lookup

import (
	"context"
	"sync"

	"weather-lookup/models"
)

// Session serializes what a single user sees. Starting a lookup cancels the one in
// flight, and a lookup that finishes after a newer one started reports ErrSuperseded
// instead of its result, so a stale response never overwrites a fresh one.
type Session struct {
	lookup Lookup

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// NewSession creates a session over l
func NewSession(l Lookup) *Session {
	return &Session{lookup: l}
}

// ByCity runs Lookup.ByCity as the session's newest lookup
func (s *Session) ByCity(ctx context.Context, city string) (models.WeatherReport, error) {
	return s.run(ctx, func(ctx context.Context) (models.WeatherReport, error) {
		return s.lookup.ByCity(ctx, city)
	})
}

// ByCoordinates runs Lookup.ByCoordinates as the session's newest lookup
func (s *Session) ByCoordinates(ctx context.Context, coords models.Coordinates) (models.WeatherReport, error) {
	return s.run(ctx, func(ctx context.Context) (models.WeatherReport, error) {
		return s.lookup.ByCoordinates(ctx, coords)
	})
}

// ByDeviceLocation runs Lookup.ByDeviceLocation as the session's newest lookup
func (s *Session) ByDeviceLocation(ctx context.Context) (models.WeatherReport, error) {
	return s.run(ctx, func(ctx context.Context) (models.WeatherReport, error) {
		return s.lookup.ByDeviceLocation(ctx)
	})
}

// Generation returns the number of lookups started so far
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

func (s *Session) run(ctx context.Context, fn func(context.Context) (models.WeatherReport, error)) (models.WeatherReport, error) {
	rctx, gen := s.begin(ctx)
	report, err := fn(rctx)
	if !s.end(gen) {
		return models.WeatherReport{}, ErrSuperseded
	}
	return report, err
}

func (s *Session) begin(ctx context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	rctx, cancel := context.WithCancel(ctx)
	s.gen++
	s.cancel = cancel
	return rctx, s.gen
}

// end reports whether gen is still the newest lookup and releases its context
func (s *Session) end(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	s.cancel()
	s.cancel = nil
	return true
}
