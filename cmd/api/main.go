// Package main runs the anagram HTTP API.
//
// Routes: GET /shuffle, /status, /ping and /secret on the API listener, and
// GET /metrics on a separate metrics listener.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"anagram-shuffle/internal/config"
	hhttp "anagram-shuffle/internal/handler/http"
	"anagram-shuffle/internal/handler/http/requestid"
	hshuffle "anagram-shuffle/internal/handler/http/shuffle"
	"anagram-shuffle/internal/observability/logging"
	"anagram-shuffle/internal/observability/tracing"
	shuffleUC "anagram-shuffle/internal/usecase/shuffle"
	envconfig "anagram-shuffle/pkg/config"
)

const serviceName = "anagram-shuffle"

func main() {
	os.Exit(serve())
}

// serve loads configuration, runs the listeners and returns the exit code.
func serve() int {
	cfg, err := config.LoadServerConfig(envconfig.GetEnvString(config.ConfigPathEnv, ""))
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		return 1
	}

	logger := initLogger(cfg.LogLevel)

	if cfg.Tracing.Enabled {
		shutdownTracing := tracing.Init(serviceName)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := shutdownTracing(ctx); err != nil {
				logger.Error("failed to shut down tracer provider", slog.Any("error", err))
			}
		}()
	} else {
		logger.Info("tracing disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, cfg); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		return 1
	}
	logger.Info("server stopped")
	return 0
}

// initLogger installs a JSON logger on stdout as the default logger.
func initLogger(level string) *slog.Logger {
	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(level))
	slog.SetDefault(logger)
	return logger
}

// newHandler builds the API handler with its middleware chain.
//
// Order, outermost first:
//  1. Request ID (every later layer can log it)
//  2. Recover (catch panics from everything below)
//  3. Tracing, when enabled (so the access log carries the trace ID)
//  4. Logging
//  5. Metrics
//  6. Request counter (counts every request before routing)
//  7. Rate limit, when enabled
//  8. URL size limits
//  9. Timeout
func newHandler(logger *slog.Logger, cfg *config.ServerConfig, stats *hhttp.Stats) http.Handler {
	mux := hhttp.NewRouter(hhttp.RouterDeps{
		Stats:      stats,
		SecretPath: cfg.Secret.Path,
	})
	hshuffle.Register(mux, &shuffleUC.Service{}, cfg.Pagination())

	mws := []hhttp.Middleware{
		requestid.Middleware,
		hhttp.Recover(logger),
	}
	if cfg.Tracing.Enabled {
		mws = append(mws, tracing.Middleware)
	}
	mws = append(mws,
		hhttp.Logging(logger),
		hhttp.MetricsMiddleware,
		stats.CountRequests,
	)
	if cfg.RateLimitEnabled() {
		mws = append(mws, hhttp.RateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)))
		logger.Info("rate limiting enabled",
			slog.Float64("rps", cfg.RateLimit.RPS),
			slog.Int("burst", cfg.RateLimit.Burst))
	}
	mws = append(mws,
		hhttp.InputValidation(),
		hhttp.Timeout(cfg.Server.RequestTimeout),
	)

	return hhttp.Chain(mux, mws...)
}

// run serves the API and metrics listeners until ctx is canceled or either
// listener fails, then shuts both down within the configured timeout.
func run(ctx context.Context, logger *slog.Logger, cfg *config.ServerConfig) error {
	stats := &hhttp.Stats{}

	api := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           newHandler(logger, cfg, stats),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       baseContext(ctx),
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("GET /metrics", hhttp.MetricsHandler())
	metricsSrv := &http.Server{
		Addr:              cfg.Server.MetricsAddr,
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", slog.String("addr", api.Addr))
		if err := api.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("metrics server starting", slog.String("addr", metricsSrv.Addr))
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return errors.Join(
			api.Shutdown(shutdownCtx),
			metricsSrv.Shutdown(shutdownCtx),
		)
	})

	return g.Wait()
}

// baseContext hands requests the values of ctx without its cancellation, so
// a shutdown signal lets Shutdown drain in-flight requests instead of
// aborting them.
func baseContext(ctx context.Context) func(net.Listener) context.Context {
	base := context.WithoutCancel(ctx)
	return func(net.Listener) context.Context { return base }
}
