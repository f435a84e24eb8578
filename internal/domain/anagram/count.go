package anagram

import "math/big"

// Count returns the number of distinct arrangements of the letters of s,
// ignoring case: len(s)! divided by the product of each letter's
// multiplicity factorial.
//
// It returns ErrEmptyInput for "" and ErrInvalidInput when s contains a
// rune that is not a letter.
func Count(s string) (*big.Int, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	return NewMultiset(s).Arrangements(), nil
}

// Arrangements returns the multinomial coefficient of the multiset.
// The division is always exact.
func (m Multiset) Arrangements() *big.Int {
	denom := big.NewInt(1)
	for _, c := range m.Multiplicities() {
		denom.Mul(denom, Factorial(c))
	}
	return new(big.Int).Quo(Factorial(m.Len()), denom)
}
