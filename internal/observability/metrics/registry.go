package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	// Shuffle work is capped, so the buckets stay in the sub-second range.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path", "status"},
	)

	// HTTPResponseSize measures HTTP response body size in bytes
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(16, 4, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPRequestsInFlight tracks the current number of HTTP requests being processed
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

// Business metrics track shuffle operations
var (
	// ShuffleTotal counts shuffle operations by result
	ShuffleTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "anagram_shuffle_total",
			Help: "Total number of shuffle operations",
		},
		[]string{"operation", "result"}, // operation: count, sample; result: ok, invalid
	)

	// InputLength measures the rune length of accepted inputs
	InputLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "anagram_input_length",
			Help:    "Rune length of accepted shuffle inputs",
			Buckets: []float64{1, 2, 4, 5, 8, 16, 32, 64, 128, 256},
		},
	)

	// PageSize measures how many arrangements were returned per sample
	PageSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "anagram_page_size",
			Help:    "Number of arrangements returned per sample",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 25},
		},
	)

	// ShuffleDuration measures time spent in the counting and sampling core
	ShuffleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "anagram_shuffle_duration_seconds",
			Help:    "Time spent counting and sampling arrangements",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		},
		[]string{"operation"},
	)
)

// RecordHTTPRequest records an HTTP request with its metadata
func RecordHTTPRequest(method, path, status string, duration time.Duration, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
	HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
}
