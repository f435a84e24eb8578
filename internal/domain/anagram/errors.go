package anagram

import (
	"errors"
	"fmt"
)

// Sentinel errors for arrangement operations.
var (
	// ErrInvalidInput indicates the input is empty or contains a non-letter rune.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyInput indicates the input is the empty string.
	// It wraps ErrInvalidInput so errors.Is(err, ErrInvalidInput) also holds.
	ErrEmptyInput = fmt.Errorf("%w: empty string", ErrInvalidInput)
)

// Validate reports whether s is a usable input: non-empty and letters only.
func Validate(s string) error {
	if s == "" {
		return ErrEmptyInput
	}
	for i, r := range s {
		if !isLetter(r) {
			return fmt.Errorf("%w: non-letter %q at byte %d", ErrInvalidInput, r, i)
		}
	}
	return nil
}
