// Package tracing provides OpenTelemetry tracing integration.
//
// Init installs an SDK tracer provider and the W3C trace-context
// propagator. Middleware opens one server span per HTTP request, and
// StartSpan opens child spans for use case work. Trace IDs are also picked
// up by the request logger so log lines can be joined to traces.
//
// Example usage:
//
//	func main() {
//	    shutdown := tracing.Init("anagram-shuffle")
//	    defer func() { _ = shutdown(context.Background()) }()
//	}
//
//	func (s *Service) Shuffle(ctx context.Context, p string, limit int) {
//	    ctx, span := tracing.StartSpan(ctx, "shuffle.Shuffle")
//	    defer span.End()
//	}
package tracing
