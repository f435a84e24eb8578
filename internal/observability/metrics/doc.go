// Package metrics provides centralized Prometheus metrics for the application.
//
// Metrics are registered on the default registry via promauto and exposed by
// the metrics listener through promhttp.
//
// Metric families:
//   - http_*: request counts, latency, sizes and in-flight requests
//   - anagram_*: shuffle outcomes, input lengths and page sizes
//
// Example usage:
//
//	import "anagram-shuffle/internal/observability/metrics"
//
//	metrics.RecordShuffle(metrics.ResultOK, len(input), len(page))
package metrics
