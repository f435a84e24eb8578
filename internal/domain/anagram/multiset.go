package anagram

import (
	"math/big"
	"slices"
	"unicode"
)

// Multiset maps a lowercased rune to its number of occurrences.
type Multiset map[rune]int

// NewMultiset counts the runes of s case-insensitively.
// The sum of all counts equals the rune length of s.
func NewMultiset(s string) Multiset {
	m := make(Multiset)
	for _, r := range s {
		m[unicode.ToLower(r)]++
	}
	return m
}

// Len returns the total number of runes counted.
func (m Multiset) Len() int {
	n := 0
	for _, c := range m {
		n += c
	}
	return n
}

// Multiplicities returns the counts ordered by rune so callers never
// depend on map iteration order.
func (m Multiset) Multiplicities() []int {
	keys := make([]rune, 0, len(m))
	for r := range m {
		keys = append(keys, r)
	}
	slices.Sort(keys)

	counts := make([]int, len(keys))
	for i, r := range keys {
		counts[i] = m[r]
	}
	return counts
}

// Factorial returns n! as an arbitrary-precision integer. Factorial(0) is 1.
func Factorial(n int) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(1, int64(n))
}
