// Package anagram implements the arrangement counting and sampling rules.
//
// Count returns the number of distinct letter arrangements of a string
// (the multinomial coefficient over its case-insensitive letter
// multiplicities). Sample returns that count together with a bounded,
// deterministic, deduplicated page of arrangements.
//
// Everything in this package is pure: no I/O, no shared state, safe for
// concurrent use.
//
// Example usage:
//
//	total, page, err := anagram.Sample("stop", 4)
//	if errors.Is(err, anagram.ErrInvalidInput) {
//	    // reject the request
//	}
package anagram
