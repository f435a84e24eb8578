package anagram_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anagram-shuffle/internal/domain/anagram"
)

func TestCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "distinct letters", input: "abc", want: "6"},
		{name: "one repeated letter", input: "aab", want: "3"},
		{name: "all identical", input: "aaaa", want: "1"},
		{name: "single letter", input: "z", want: "1"},
		{name: "case insensitive", input: "aAb", want: "3"},
		{name: "mixed case identical", input: "AaAa", want: "1"},
		{name: "mississippi", input: "mississippi", want: "34650"},
		{name: "non-ascii letters", input: "éÉa", want: "3"},
		{
			name:  "exceeds uint64",
			input: "abcdefghijklmnopqrstuvwxyz",
			want:  "403291461126605635584000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := anagram.Count(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestCount_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantEmpty bool
	}{
		{name: "empty string", input: "", wantEmpty: true},
		{name: "digit", input: "abc1"},
		{name: "space", input: "ab c"},
		{name: "punctuation", input: "!"},
		{name: "hyphen", input: "well-known"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := anagram.Count(tt.input)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, anagram.ErrInvalidInput))
			assert.Equal(t, tt.wantEmpty, errors.Is(err, anagram.ErrEmptyInput))
		})
	}
}

func TestCount_LongInputIsExact(t *testing.T) {
	t.Parallel()

	// 30 distinct-ish letters: 30! / (2!^4) must be computed without overflow.
	input := "abcdefghijklmnopqrstuvwxyzabcd"
	got, err := anagram.Count(input)
	require.NoError(t, err)

	want := new(big.Int).Quo(anagram.Factorial(30), big.NewInt(16))
	assert.Equal(t, 0, want.Cmp(got), "got %s want %s", got, want)
}

func TestFactorial(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1", anagram.Factorial(0).String())
	assert.Equal(t, "1", anagram.Factorial(1).String())
	assert.Equal(t, "120", anagram.Factorial(5).String())
	assert.Equal(t, "2432902008176640000", anagram.Factorial(20).String())
	assert.Equal(t, "51090942171709440000", anagram.Factorial(21).String())
}

func TestMultiset(t *testing.T) {
	t.Parallel()

	m := anagram.NewMultiset("BaNaNa")
	assert.Equal(t, anagram.Multiset{'a': 3, 'b': 1, 'n': 2}, m)
	assert.Equal(t, 6, m.Len())
	assert.Equal(t, []int{3, 1, 2}, m.Multiplicities())
	assert.Equal(t, "60", m.Arrangements().String())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, anagram.Validate("Hello"))
	assert.NoError(t, anagram.Validate("Ωμέγα"))
	assert.ErrorIs(t, anagram.Validate(""), anagram.ErrEmptyInput)
	assert.ErrorIs(t, anagram.Validate("a b"), anagram.ErrInvalidInput)
	assert.NotErrorIs(t, anagram.Validate("a b"), anagram.ErrEmptyInput)
}
