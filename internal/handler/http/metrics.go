package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"anagram-shuffle/internal/handler/http/pathutil"
	"anagram-shuffle/internal/handler/http/responsewriter"
	"anagram-shuffle/internal/observability/metrics"
)

// MetricsMiddleware records request count, latency, response size and
// in-flight requests. Paths are reduced to known routes so unknown URLs
// share the "other" label.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		path := pathutil.NormalizePath(r.URL.Path)
		rw := responsewriter.Wrap(w)

		start := time.Now()
		next.ServeHTTP(rw, r)

		metrics.RecordHTTPRequest(r.Method, path, strconv.Itoa(rw.StatusCode()), time.Since(start), rw.BytesWritten())
	})
}

// MetricsHandler serves the Prometheus registry. It is mounted on the
// metrics listener, not the API mux.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
