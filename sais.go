// Package sais builds suffix arrays in linear time by induced sorting and
// answers exact substring queries over them.
//
// The core works on sequences of small non-negative integers terminated by
// a single sentinel symbol 0 that is smaller than every other symbol. The
// Alphabet helpers map arbitrary ordered symbols into that form.
package sais

import "fmt"

// SuffixArray returns the start positions of all suffixes of seq in
// ascending lexicographic order.
//
// Every symbol of seq must lie in [0, alphabetSize) and the last symbol must
// be the sentinel 0, occurring nowhere else. The result has len(seq)
// entries and its first entry is always len(seq)-1. An empty seq yields an
// empty array.
func SuffixArray(seq []int, alphabetSize int) (sa []int, err error) {
	if err := validate(seq, alphabetSize); err != nil {
		return nil, err
	}
	defer errRecover(&err)
	return construct(seq, alphabetSize), nil
}

// BuildSuffixArray returns the suffix array of text with a sentinel
// appended. The array has len(text)+1 entries; the first one is len(text),
// the empty suffix.
func BuildSuffixArray(text []byte) ([]int, error) {
	seq, size := EncodeBytes(text)
	return SuffixArray(seq, size)
}

func validate(seq []int, alphabetSize int) error {
	if alphabetSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrAlphabetSize, alphabetSize)
	}
	last := len(seq) - 1
	for i, c := range seq {
		if c < 0 || c >= alphabetSize {
			return fmt.Errorf("%w: symbol %d at position %d, alphabet size %d", ErrSymbolRange, c, i, alphabetSize)
		}
		if (c == 0) != (i == last) {
			return fmt.Errorf("%w: symbol %d at position %d of %d", ErrSentinel, c, i, len(seq))
		}
	}
	return nil
}
