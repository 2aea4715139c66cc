package sais

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	a := NewAlphabet([]string{"pear", "apple", "fig", "apple"})
	assert.Equal(t, 4, a.Size())

	sym, ok := a.Symbol("fig")
	require.True(t, ok)
	assert.Equal(t, 2, sym)
	_, ok = a.Symbol("kiwi")
	assert.False(t, ok)

	v, ok := a.Decode(3)
	require.True(t, ok)
	assert.Equal(t, "pear", v)
	_, ok = a.Decode(0)
	assert.False(t, ok, "sentinel has no value")

	seq, err := a.Encode([]string{"pear", "fig", "apple"})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0}, seq)

	_, err = a.Encode([]string{"kiwi"})
	assert.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestEncodeKeepsOrder(t *testing.T) {
	seq, size := Encode([]int{-5, 100, 7, 7, -5})
	assert.Equal(t, []int{1, 3, 2, 2, 1, 0}, seq)
	assert.Equal(t, 4, size)

	sa, err := SuffixArray(seq, size)
	require.NoError(t, err)
	assert.NoError(t, Verify(seq, sa))
}

func TestEncodeBytes(t *testing.T) {
	seq, size := EncodeBytes([]byte("banana"))
	assert.Equal(t, []int{2, 1, 3, 1, 3, 1, 0}, seq)
	assert.Equal(t, 4, size)

	seq, size = EncodeBytes(nil)
	assert.Equal(t, []int{0}, seq)
	assert.Equal(t, 1, size)

	seq, size = EncodeBytes([]byte{0, 255})
	assert.Equal(t, []int{1, 2, 0}, seq)
	assert.Equal(t, 3, size)
}

func TestEncodeString(t *testing.T) {
	seq, size := EncodeString("ñaña")
	assert.Equal(t, []int{2, 1, 2, 1, 0}, seq)
	assert.Equal(t, 3, size)
}
