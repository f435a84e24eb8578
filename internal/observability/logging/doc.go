// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON and text output formats
//   - LOG_LEVEL parsing (debug, info, warn, error)
//   - Request ID propagation
//   - Context-aware logging
//
// Example usage:
//
//	import "anagram-shuffle/internal/observability/logging"
//
//	func main() {
//	    logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))
//	    logger.Info("server starting", slog.String("addr", cfg.Addr))
//	}
//
//	func handleRequest(ctx context.Context) {
//	    logger := logging.WithRequestID(ctx, slog.Default())
//	    logger.Info("processing request")
//	}
package logging
