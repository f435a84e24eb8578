package pagination

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrInvalidLimit is returned when the limit query parameter is present but
// is not a non-negative integer.
var ErrInvalidLimit = errors.New("invalid query parameter: limit must be a non-negative integer")

// ParseLimit reads the limit query parameter from r.
//
// Rules:
//   - absent: config.DefaultLimit (clamped)
//   - present and made only of ASCII digits: parsed, then clamped to [0, MaxLimit]
//   - anything else, including an empty value or a sign: ErrInvalidLimit
//
// Digit strings too large for int clamp to MaxLimit instead of failing.
func ParseLimit(r *http.Request, config Config) (int, error) {
	values, ok := r.URL.Query()["limit"]
	if !ok || len(values) == 0 {
		return config.Clamp(config.DefaultLimit), nil
	}
	return ParseLimitValue(values[0], config)
}

// ParseLimitValue applies the ParseLimit rules to a raw value.
func ParseLimitValue(raw string, config Config) (int, error) {
	if !isDigits(raw) {
		return 0, ErrInvalidLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		// only digits, so the value overflowed int
		return config.MaxLimit, nil
	}
	return config.Clamp(limit), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
