package anagram_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anagram-shuffle/internal/domain/anagram"
)

func TestSample_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		limit     int
		wantTotal string
		wantPage  []string
	}{
		{name: "two letters", input: "ab", limit: 4, wantTotal: "2", wantPage: []string{"ab", "ba"}},
		{name: "case retained", input: "aAb", limit: 10, wantTotal: "3", wantPage: []string{"aAb", "abA", "baA"}},
		{name: "single arrangement", input: "aaaa", limit: 4, wantTotal: "1", wantPage: []string{"aaaa"}},
		{name: "single arrangement ignores zero limit", input: "Zz", limit: 0, wantTotal: "1", wantPage: []string{"Zz"}},
		{name: "zero limit", input: "abc", limit: 0, wantTotal: "6", wantPage: []string{}},
		{name: "negative limit", input: "abc", limit: -3, wantTotal: "6", wantPage: []string{}},
		{
			name:      "short input truncates before dedup",
			input:     "aab",
			limit:     3,
			wantTotal: "3",
			wantPage:  []string{"aab", "aba"},
		},
		{
			name:      "short input sorted case-insensitively",
			input:     "dcba",
			limit:     4,
			wantTotal: "24",
			wantPage:  []string{"abcd", "abdc", "acbd", "acdb"},
		},
		{
			name:      "five letters permutes everything",
			input:     "edcba",
			limit:     3,
			wantTotal: "120",
			wantPage:  []string{"abcde", "abced", "abdce"},
		},
		{
			name:      "long input dedups while collecting",
			input:     "aaaaab",
			limit:     10,
			wantTotal: "6",
			wantPage:  []string{"aaaaab", "aaaaba", "aaabaa", "aabaaa", "abaaaa"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			total, page, err := anagram.Sample(tt.input, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total.String())
			if diff := cmp.Diff(tt.wantPage, page); diff != "" {
				t.Errorf("page mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSample_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "!", "abc1", "a b"} {
		total, page, err := anagram.Sample(in, 4)
		assert.ErrorIs(t, err, anagram.ErrInvalidInput, "input %q", in)
		assert.Nil(t, total)
		assert.Nil(t, page)
	}
}

func TestSample_FullPageWhenLimitCoversAllPermutations(t *testing.T) {
	t.Parallel()

	// Short inputs whose raw permutation list fits in the limit return
	// every distinct arrangement.
	inputs := []string{"ab", "abc", "aAb", "abcd", "aabb", "AaBb", "xyZ"}
	for _, in := range inputs {
		n := len([]rune(in))
		limit := int(anagram.Factorial(n).Int64())

		total, page, err := anagram.Sample(in, limit)
		require.NoError(t, err)
		require.True(t, total.IsInt64())
		assert.Len(t, page, int(total.Int64()), "input %q", in)

		want := distinctUpper(in)
		got := make([]string, 0, len(page))
		for _, p := range page {
			got = append(got, strings.ToUpper(p))
		}
		slices.Sort(got)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("input %q arrangements mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestSample_EntriesArePermutationsAndDistinct(t *testing.T) {
	t.Parallel()

	inputs := []string{"ab", "aAb", "Banana", "stop", "Mississippi", "abcdefgh", "ZyXwVuT", "aaaaab"}
	for _, in := range inputs {
		for _, limit := range []int{0, 1, 4, 10, 25} {
			_, page, err := anagram.Sample(in, limit)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(page), max(limit, 1))

			seen := make(map[string]bool)
			for _, p := range page {
				assert.Equal(t, sortedLetters(in), sortedLetters(p), "%q is not a permutation of %q", p, in)
				key := anagram.DedupKey(p)
				assert.False(t, seen[key], "duplicate %q in page for %q", p, in)
				seen[key] = true
			}

			sorted := slices.IsSortedFunc(page, func(a, b string) int {
				return strings.Compare(anagram.SortKey(a), anagram.SortKey(b))
			})
			assert.True(t, sorted, "page for %q not sorted: %v", in, page)
		}
	}
}

func TestDedupKey_FullCaseMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "abc", want: "ABC"},
		{in: "ß", want: "SS"},
		{in: "Straße", want: "STRASSE"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, anagram.DedupKey(tt.in), "DedupKey(%q)", tt.in)
	}
	assert.Equal(t, anagram.DedupKey("aerSßt"), anagram.DedupKey("aerßSt"))
}

func TestSample_SharpSMergesWithS(t *testing.T) {
	t.Parallel()

	total, page, err := anagram.Sample("Straße", 10)
	require.NoError(t, err)
	assert.Equal(t, "720", total.String())
	assert.Len(t, page, 10)
	assert.Contains(t, page, "aerSßt")
	assert.NotContains(t, page, "aerßSt")

	seen := make(map[string]string)
	for _, p := range page {
		key := anagram.DedupKey(p)
		if prev, ok := seen[key]; ok {
			t.Errorf("%q and %q share key %q", prev, p, key)
		}
		seen[key] = p
	}
}

func TestSample_Deterministic(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"aAb", "Shuffle", "abcdefghij", "mIsSiSsIpPi"} {
		_, first, err := anagram.Sample(in, 25)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			_, again, err := anagram.Sample(in, 25)
			require.NoError(t, err)
			if diff := cmp.Diff(first, again); diff != "" {
				t.Fatalf("Sample(%q) not deterministic (-first +again):\n%s", in, diff)
			}
		}
	}
}

func TestSample_LongInputKeepsFrozenPrefix(t *testing.T) {
	t.Parallel()

	total, page, err := anagram.Sample("fedcba", 10)
	require.NoError(t, err)
	assert.Equal(t, "720", total.String())
	assert.Len(t, page, 10)
	for _, p := range page {
		assert.True(t, strings.HasPrefix(p, "a"), "%q lost the frozen prefix", p)
	}

	_, page, err = anagram.Sample("hgFEdcBA", 25)
	require.NoError(t, err)
	require.NotEmpty(t, page)
	for _, p := range page {
		assert.Equal(t, "ABc", p[:3], "%q lost the frozen prefix", p)
	}
}

func TestSample_CapsCandidateWork(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("abcdefghijklmnopqrstu", 8) + "vwxyz"
	total, page, err := anagram.Sample(long, 25)
	require.NoError(t, err)
	assert.Greater(t, len(total.String()), 100)
	assert.Len(t, page, 25)
}

func sortedLetters(s string) string {
	r := []rune(strings.ToLower(s))
	slices.Sort(r)
	return string(r)
}

// distinctUpper brute-forces every distinct uppercase arrangement of s.
func distinctUpper(s string) []string {
	set := make(map[string]struct{})
	for p := range anagram.Permutations([]rune(strings.ToUpper(s))) {
		set[string(p)] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
