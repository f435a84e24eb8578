package anagram

import "iter"

// Permutations yields every positional permutation of items in
// lexicographic order of the index tuples. Repeated items are not
// collapsed, so n items always produce n! permutations. Each yielded slice
// is a fresh copy the caller may keep.
func Permutations[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		idx := make([]int, len(items))
		for i := range idx {
			idx[i] = i
		}

		for {
			p := make([]T, len(items))
			for o, v := range idx {
				p[o] = items[v]
			}
			if !yield(p) {
				return
			}
			if !nextPermutation(idx) {
				return
			}
		}
	}
}

// nextPermutation advances idx to the next permutation in lexicographic
// order and reports false once idx is the last one.
func nextPermutation(idx []int) bool {
	i := len(idx) - 2
	for i >= 0 && idx[i] >= idx[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	j := len(idx) - 1
	for idx[j] <= idx[i] {
		j--
	}
	idx[i], idx[j] = idx[j], idx[i]

	for l, r := i+1, len(idx)-1; l < r; l, r = l+1, r-1 {
		idx[l], idx[r] = idx[r], idx[l]
	}
	return true
}
