package anagram

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DedupKey returns the identity of an arrangement: two arrangements are the
// same result when their uppercase forms are equal. Full case mapping is
// used, so "ß" and "SS" share a key.
func DedupKey(s string) string {
	return cases.Upper(language.Und).String(s)
}

// SortKey returns the Unicode case-folded form of s. Pages are ordered by
// comparing sort keys byte-wise.
func SortKey(s string) string {
	// cases.Caser is stateful and not safe for concurrent use.
	return cases.Fold().String(s)
}

// compareFolded orders two strings by their case-folded forms.
func compareFolded(a, b string) int {
	return strings.Compare(SortKey(a), SortKey(b))
}

// sortedRunes returns the runes of s stable-sorted by case-folded value,
// so letters equal under folding keep their original relative order.
func sortedRunes(s string) []rune {
	runes := []rune(s)
	slices.SortStableFunc(runes, func(a, b rune) int {
		return compareFolded(string(a), string(b))
	})
	return runes
}

// sortFolded stable-sorts arrangements by their case-folded forms.
func sortFolded(page []string) {
	slices.SortStableFunc(page, compareFolded)
}

// dedup keeps the first arrangement seen for each DedupKey, stopping once
// max arrangements are kept. A negative max means no bound.
func dedup(candidates []string, max int) []string {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if max >= 0 && len(out) == max {
			break
		}
		key := DedupKey(c)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}
