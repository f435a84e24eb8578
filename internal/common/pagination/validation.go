package pagination

import "fmt"

// Validate reports configuration values that cannot produce a usable page.
func (c Config) Validate() error {
	if c.MaxLimit < 0 {
		return fmt.Errorf("max limit must be non-negative, got %d", c.MaxLimit)
	}
	if c.DefaultLimit < 0 {
		return fmt.Errorf("default limit must be non-negative, got %d", c.DefaultLimit)
	}
	return nil
}

// Clamp bounds limit to the inclusive range [0, c.MaxLimit].
func (c Config) Clamp(limit int) int {
	if limit < 0 {
		return 0
	}
	if limit > c.MaxLimit {
		return c.MaxLimit
	}
	return limit
}
