// Package metrics exposes prometheus collectors of the HTTP surface.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCount counts served HTTP requests.
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustd_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	// RequestDuration tracks request latency.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trustd_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	// BlockHeight reports the current logical block height.
	BlockHeight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "trustd_block_height",
			Help: "Current logical block height.",
		},
	)
)

// Register registers all collectors on the registry.
func Register(registry *prometheus.Registry) {
	registry.MustRegister(RequestCount, RequestDuration, BlockHeight)
}

// Handler returns an exposition handler for the registry.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
