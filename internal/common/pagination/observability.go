package pagination

import (
	"log/slog"
	"time"
)

// LogRequest logs a shuffle request with its effective page size.
func LogRequest(logger *slog.Logger, requestID string, inputLen, limit int) {
	logger.Info("Shuffle request",
		"request_id", requestID,
		"input_length", inputLen,
		"limit", limit)
}

// LogResponse logs a shuffle response with duration and status.
func LogResponse(logger *slog.Logger, requestID string, limit, returnedCount int, duration time.Duration, statusCode int) {
	logger.Info("Shuffle response",
		"request_id", requestID,
		"limit", limit,
		"returned_count", returnedCount,
		"duration_ms", duration.Milliseconds(),
		"status", statusCode)
}

// LogError logs a rejected shuffle request.
func LogError(logger *slog.Logger, requestID string, err error, errorType string) {
	logger.Warn("Shuffle request rejected",
		"request_id", requestID,
		"error", err.Error(),
		"error_type", errorType)
}
