// Package config loads the API server configuration.
//
// Values come from built-in defaults, then an optional YAML file, then
// environment variables, with later sources winning.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"anagram-shuffle/internal/common/pagination"
	envconfig "anagram-shuffle/pkg/config"
)

// ConfigPathEnv names the environment variable holding the YAML file path.
const ConfigPathEnv = "ANAGRAM_CONFIG"

// MaxRequestTimeout bounds server.request_timeout.
const MaxRequestTimeout = 10 * time.Minute

// ServerConfig represents the API server configuration.
type ServerConfig struct {
	Server    ListenConfig    `yaml:"server"`
	Secret    SecretConfig    `yaml:"secret"`
	Shuffle   ShuffleConfig   `yaml:"shuffle"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Tracing   TracingConfig   `yaml:"tracing"`
	LogLevel  string          `yaml:"log_level"`
}

// ListenConfig holds listener addresses and timeouts.
type ListenConfig struct {
	Addr            string        `yaml:"addr"`
	MetricsAddr     string        `yaml:"metrics_addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
}

// SecretConfig locates the file served by /secret.
type SecretConfig struct {
	Path string `yaml:"path"`
}

// ShuffleConfig bounds the page size of /shuffle.
type ShuffleConfig struct {
	DefaultLimit int `yaml:"default_limit"`
	MaxLimit     int `yaml:"max_limit"`
}

// RateLimitConfig configures the token bucket in front of the API.
// RPS of zero disables rate limiting.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// TracingConfig toggles the OpenTelemetry tracer provider.
type TracingConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultServerConfig returns the configuration used when nothing is set.
func DefaultServerConfig() *ServerConfig {
	page := pagination.DefaultConfig()
	return &ServerConfig{
		Server: ListenConfig{
			Addr:            "localhost:8088",
			MetricsAddr:     ":9090",
			ShutdownTimeout: 5 * time.Second,
			RequestTimeout:  10 * time.Second,
		},
		Secret: SecretConfig{Path: "/tmp/secret.key"},
		Shuffle: ShuffleConfig{
			DefaultLimit: page.DefaultLimit,
			MaxLimit:     page.MaxLimit,
		},
		RateLimit: RateLimitConfig{RPS: 0, Burst: 20},
		Tracing:   TracingConfig{Enabled: true},
		LogLevel:  "info",
	}
}

// LoadServerConfig builds the configuration from defaults, the YAML file at
// path (skipped when path is empty) and environment overrides, then validates it.
// The path is expected to come from a trusted source (flag or environment).
func LoadServerConfig(path string) (*ServerConfig, error) {
	cfg := DefaultServerConfig()

	if path != "" {
		// #nosec G304 -- path is provided by the operator, not by request input
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// applyEnv overrides fields with environment variables when they are set.
func (c *ServerConfig) applyEnv() {
	c.Server.Addr = envconfig.GetEnvString("ANAGRAM_ADDR", c.Server.Addr)
	c.Server.MetricsAddr = envconfig.GetEnvString("ANAGRAM_METRICS_ADDR", c.Server.MetricsAddr)
	c.Server.ShutdownTimeout = envconfig.GetEnvDuration("ANAGRAM_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
	c.Server.RequestTimeout = envconfig.GetEnvDuration("ANAGRAM_REQUEST_TIMEOUT", c.Server.RequestTimeout)
	c.Secret.Path = envconfig.GetEnvString("ANAGRAM_SECRET_PATH", c.Secret.Path)
	page := pagination.ApplyEnv(c.Pagination())
	c.Shuffle.DefaultLimit = page.DefaultLimit
	c.Shuffle.MaxLimit = page.MaxLimit
	c.RateLimit.RPS = envconfig.GetEnvFloat("ANAGRAM_RATE_LIMIT_RPS", c.RateLimit.RPS)
	c.RateLimit.Burst = envconfig.GetEnvInt("ANAGRAM_RATE_LIMIT_BURST", c.RateLimit.Burst)
	c.Tracing.Enabled = envconfig.GetEnvBool("ANAGRAM_TRACING_ENABLED", c.Tracing.Enabled)
	c.LogLevel = envconfig.GetEnvString("LOG_LEVEL", c.LogLevel)
}

// Validate checks the loaded configuration.
func (c *ServerConfig) Validate() error {
	var errs []error

	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server addr is required"))
	}
	if c.Server.MetricsAddr == "" {
		errs = append(errs, errors.New("server metrics_addr is required"))
	}
	if err := envconfig.ValidatePositiveDuration(c.Server.ShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("server shutdown_timeout: %w", err))
	}
	if err := envconfig.ValidateDurationRange(c.Server.RequestTimeout, time.Millisecond, MaxRequestTimeout); err != nil {
		errs = append(errs, fmt.Errorf("server request_timeout: %w", err))
	}
	if c.Secret.Path == "" {
		errs = append(errs, errors.New("secret path is required"))
	}
	if err := c.Pagination().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("shuffle: %w", err))
	}
	if c.RateLimit.RPS < 0 {
		errs = append(errs, fmt.Errorf("rate_limit rps must be non-negative, got %v", c.RateLimit.RPS))
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("rate_limit burst must be at least 1 when enabled, got %d", c.RateLimit.Burst))
	}

	return errors.Join(errs...)
}

// Pagination returns the page size settings for /shuffle.
func (c *ServerConfig) Pagination() pagination.Config {
	return pagination.Config{
		DefaultLimit: c.Shuffle.DefaultLimit,
		MaxLimit:     c.Shuffle.MaxLimit,
	}
}

// RateLimitEnabled reports whether the API should be rate limited.
func (c *ServerConfig) RateLimitEnabled() bool {
	return c.RateLimit.RPS > 0
}
