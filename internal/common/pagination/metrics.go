package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts parsed page size requests.
	// Labels: limit_range (0, 1-4, 5-10, 11-25)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shuffle_limit_requests_total",
			Help: "Total number of shuffle requests by effective page size",
		},
		[]string{"limit_range"},
	)

	// ErrorsTotal counts rejected shuffle requests by reason.
	// Labels: type (missing_input, invalid_limit, invalid_input)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shuffle_limit_errors_total",
			Help: "Total number of rejected shuffle requests",
		},
		[]string{"type"},
	)
)

// RecordRequest records the effective (clamped) page size of a request.
func RecordRequest(limit int) {
	RequestsTotal.WithLabelValues(getLimitRangeBucket(limit)).Inc()
}

// RecordError records a rejected request of the given type.
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

// getLimitRangeBucket returns the bucket label for a page size.
func getLimitRangeBucket(limit int) string {
	switch {
	case limit <= 0:
		return "0"
	case limit <= 4:
		return "1-4"
	case limit <= 10:
		return "5-10"
	default:
		return "11-25"
	}
}
