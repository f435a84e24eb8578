package anagram

import "math/big"

// SuffixLen is the number of trailing sorted letters permuted for long
// inputs. The leading letters stay frozen, which caps generation at
// SuffixLen! candidates.
const SuffixLen = 5

// Sample returns the arrangement count of s and up to limit distinct
// arrangements, sorted case-insensitively. Output is deterministic for a
// given (s, limit). A negative limit is treated as zero.
//
// Inputs of SuffixLen letters or more only permute their last SuffixLen
// sorted letters and deduplicate while collecting, stopping at limit.
// Shorter inputs permute every letter and cut the raw candidate list at
// limit before deduplicating, so their page can hold fewer than limit
// entries even when more distinct arrangements exist.
func Sample(s string, limit int) (*big.Int, []string, error) {
	total, err := Count(s)
	if err != nil {
		return nil, nil, err
	}
	if total.IsInt64() && total.Int64() == 1 {
		return total, []string{s}, nil
	}
	if limit < 0 {
		limit = 0
	}

	runes := sortedRunes(s)

	var page []string
	if len(runes) >= SuffixLen {
		page = sampleSuffix(runes, limit)
	} else {
		page = sampleAll(runes, limit)
	}
	sortFolded(page)

	return total, page, nil
}

// sampleSuffix permutes the trailing SuffixLen runes behind a frozen prefix.
func sampleSuffix(runes []rune, limit int) []string {
	split := len(runes) - SuffixLen
	prefix := string(runes[:split])

	candidates := make([]string, 0, 120)
	for p := range Permutations(runes[split:]) {
		candidates = append(candidates, prefix+string(p))
	}
	return dedup(candidates, limit)
}

// sampleAll permutes every rune, truncating before deduplication.
func sampleAll(runes []rune, limit int) []string {
	candidates := make([]string, 0, limit)
	for p := range Permutations(runes) {
		if len(candidates) == limit {
			break
		}
		candidates = append(candidates, string(p))
	}
	return dedup(candidates, -1)
}
