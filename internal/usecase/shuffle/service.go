// Package shuffle provides the arrangement counting and sampling use cases
// behind the CLI and the /shuffle endpoint. It validates input through the
// anagram domain package, traces each call and records business metrics.
package shuffle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"anagram-shuffle/internal/domain/anagram"
	"anagram-shuffle/internal/observability/logging"
	"anagram-shuffle/internal/observability/metrics"
	"anagram-shuffle/internal/observability/tracing"
)

// Result is the outcome of one shuffle request. Each call builds its own.
type Result struct {
	Input string
	Total *big.Int
	Page  []string
}

// MarshalJSON writes the result as {"p":...,"total":...,"page":[...]}.
// Total is a JSON number with every digit kept and Page is never null.
func (r Result) MarshalJSON() ([]byte, error) {
	page := r.Page
	if page == nil {
		page = []string{}
	}
	return json.Marshal(struct {
		P     string   `json:"p"`
		Total *big.Int `json:"total"`
		Page  []string `json:"page"`
	}{r.Input, r.Total, page})
}

// Service provides shuffle use cases.
// Logger is optional; when nil the logger stored in the context (or
// slog.Default) is used as is, since HTTP middleware already scopes it.
type Service struct {
	Logger *slog.Logger
}

// Count returns the number of distinct arrangements of input.
// Invalid input is reported as an error wrapping anagram.ErrInvalidInput.
func (s *Service) Count(ctx context.Context, input string) (*big.Int, error) {
	ctx, span := tracing.StartSpan(ctx, "shuffle.Count")
	defer span.End()
	span.SetAttributes(attribute.Int("anagram.length", utf8.RuneCountInString(input)))

	start := time.Now()
	total, err := anagram.Count(input)
	metrics.RecordShuffleDuration(metrics.OperationCount, time.Since(start))
	if err != nil {
		span.SetStatus(codes.Error, "invalid input")
		metrics.RecordShuffle(metrics.OperationCount, metrics.ResultInvalid, 0, 0)
		s.logger(ctx).Debug("count rejected", slog.Any("error", err))
		return nil, fmt.Errorf("count: %w", err)
	}

	metrics.RecordShuffle(metrics.OperationCount, metrics.ResultOK, utf8.RuneCountInString(input), 0)
	return total, nil
}

// Shuffle returns the arrangement count of input and up to limit distinct
// arrangements. The caller is responsible for clamping limit.
func (s *Service) Shuffle(ctx context.Context, input string, limit int) (*Result, error) {
	ctx, span := tracing.StartSpan(ctx, "shuffle.Shuffle")
	defer span.End()

	length := utf8.RuneCountInString(input)
	span.SetAttributes(
		attribute.Int("anagram.length", length),
		attribute.Int("anagram.limit", limit),
	)

	start := time.Now()
	total, page, err := anagram.Sample(input, limit)
	elapsed := time.Since(start)
	metrics.RecordShuffleDuration(metrics.OperationSample, elapsed)
	if err != nil {
		span.SetStatus(codes.Error, "invalid input")
		metrics.RecordShuffle(metrics.OperationSample, metrics.ResultInvalid, 0, 0)
		s.logger(ctx).Debug("shuffle rejected",
			slog.Int("length", length),
			slog.Any("error", err))
		return nil, fmt.Errorf("shuffle: %w", err)
	}

	span.SetAttributes(attribute.Int("anagram.page_size", len(page)))
	metrics.RecordShuffle(metrics.OperationSample, metrics.ResultOK, length, len(page))
	s.logger(ctx).Debug("shuffle computed",
		slog.Int("length", length),
		slog.Int("limit", limit),
		slog.Int("page_size", len(page)),
		slog.Int("total_digits", len(total.String())),
		slog.Duration("duration", elapsed))

	return &Result{Input: input, Total: total, Page: page}, nil
}

func (s *Service) logger(ctx context.Context) *slog.Logger {
	if s.Logger != nil {
		return logging.WithRequestID(ctx, s.Logger)
	}
	return logging.FromContext(ctx)
}
