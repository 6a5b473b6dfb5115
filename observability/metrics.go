// Package observability holds the Prometheus collectors shared by providers and lookups.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_lookup_upstream_requests_total",
			Help: "Requests sent to weather and geocoding providers by provider, endpoint and status code.",
		},
		[]string{"provider", "endpoint", "code"},
	)

	UpstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weather_lookup_upstream_request_duration_seconds",
			Help:    "Latency of provider requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "endpoint"},
	)

	Lookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_lookup_lookups_total",
			Help: "Completed lookups by mode (city, coordinates, device) and outcome.",
		},
		[]string{"mode", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(UpstreamRequests, UpstreamDuration, Lookups)
}

// ObserveUpstream records one provider round trip. code is 0 for transport failures.
func ObserveUpstream(provider, endpoint string, code int, elapsed time.Duration) {
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	UpstreamRequests.WithLabelValues(provider, endpoint, label).Inc()
	UpstreamDuration.WithLabelValues(provider, endpoint).Observe(elapsed.Seconds())
}

// ObserveLookup records a finished lookup
func ObserveLookup(mode, outcome string) {
	Lookups.WithLabelValues(mode, outcome).Inc()
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
