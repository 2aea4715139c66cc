package sais

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Verify checks sa against seq by direct comparison: sa must be a
// permutation of the positions of seq and every suffix must be strictly
// smaller than the next one. It takes quadratic time in the worst case and
// is meant for testing and diagnostics.
func Verify(seq []int, sa []int) error {
	if len(sa) != len(seq) {
		return fmt.Errorf("%w: %d entries for %d positions", ErrNotPermutation, len(sa), len(seq))
	}
	seen := make([]bool, len(seq))
	for i, p := range sa {
		if p < 0 || p >= len(seq) || seen[p] {
			return fmt.Errorf("%w: position %d at index %d", ErrNotPermutation, p, i)
		}
		seen[p] = true
	}
	for i := 0; i+1 < len(sa); i++ {
		if slices.Compare(seq[sa[i]:], seq[sa[i+1]:]) >= 0 {
			return fmt.Errorf("%w: index %d", ErrOutOfOrder, i)
		}
	}
	return nil
}
