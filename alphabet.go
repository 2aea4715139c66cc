package sais

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Alphabet maps ordered symbols to the dense integers 1..k, preserving
// their order. The value 0 is reserved for the sentinel.
type Alphabet[T constraints.Ordered] struct {
	symbols []T
}

// NewAlphabet returns the alphabet of the distinct values in sample.
func NewAlphabet[T constraints.Ordered](sample []T) *Alphabet[T] {
	symbols := slices.Clone(sample)
	slices.Sort(symbols)
	return &Alphabet[T]{symbols: slices.Compact(symbols)}
}

// Size is the number of symbols including the sentinel.
func (a *Alphabet[T]) Size() int {
	return len(a.symbols) + 1
}

// Symbol returns the dense symbol of v.
func (a *Alphabet[T]) Symbol(v T) (int, bool) {
	i, ok := slices.BinarySearch(a.symbols, v)
	if !ok {
		return 0, false
	}
	return i + 1, true
}

// Decode returns the value of a dense symbol. The sentinel has no value.
func (a *Alphabet[T]) Decode(sym int) (v T, ok bool) {
	if sym < 1 || sym > len(a.symbols) {
		return v, false
	}
	return a.symbols[sym-1], true
}

// Encode returns values as dense symbols with the sentinel appended.
func (a *Alphabet[T]) Encode(values []T) ([]int, error) {
	seq := make([]int, len(values)+1)
	for i, v := range values {
		sym, ok := a.Symbol(v)
		if !ok {
			return nil, fmt.Errorf("%w: %v at position %d", ErrUnknownSymbol, v, i)
		}
		seq[i] = sym
	}
	return seq, nil
}

// Encode builds the alphabet of values and encodes them with it.
func Encode[T constraints.Ordered](values []T) (seq []int, alphabetSize int) {
	a := NewAlphabet(values)
	seq, err := a.Encode(values)
	if err != nil {
		// Every value is in its own alphabet.
		panic(err)
	}
	return seq, a.Size()
}

// EncodeBytes is Encode specialised for bytes.
func EncodeBytes(text []byte) (seq []int, alphabetSize int) {
	var rank [256]int
	for _, b := range text {
		rank[b] = 1
	}
	k := 0
	for c := range rank {
		if rank[c] != 0 {
			k++
			rank[c] = k
		}
	}
	seq = make([]int, len(text)+1)
	for i, b := range text {
		seq[i] = rank[b]
	}
	return seq, k + 1
}

// EncodeString encodes the runes of s.
func EncodeString(s string) (seq []int, alphabetSize int) {
	return Encode([]rune(s))
}
