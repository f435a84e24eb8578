// Package pagination parses and bounds the page size of sampled results.
//
// A page is the list of arrangements returned by /shuffle. Its size comes
// from the optional limit query parameter, falls back to a default, and is
// clamped to [0, MaxLimit] so sampling work stays bounded.
package pagination

import (
	"anagram-shuffle/pkg/config"
)

// Config holds page size settings.
type Config struct {
	DefaultLimit int // Page size when limit is absent (4)
	MaxLimit     int // Upper clamp for limit (25)
}

// DefaultConfig returns the default page size configuration.
// Default values: limit=4, max=25
func DefaultConfig() Config {
	return Config{
		DefaultLimit: 4,
		MaxLimit:     25,
	}
}

// ApplyEnv overrides base with environment variables.
// Supported environment variables:
//   - SHUFFLE_DEFAULT_LIMIT: Page size when limit is absent
//   - SHUFFLE_MAX_LIMIT: Upper clamp for limit
//
// Unset or unparsable variables keep the value from base.
func ApplyEnv(base Config) Config {
	return Config{
		DefaultLimit: config.GetEnvInt("SHUFFLE_DEFAULT_LIMIT", base.DefaultLimit),
		MaxLimit:     config.GetEnvInt("SHUFFLE_MAX_LIMIT", base.MaxLimit),
	}
}
