package sais

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayFile(t *testing.T) {
	sa, err := BuildSuffixArray([]byte("mississippi mississippi"))
	require.NoError(t, err)

	for _, codec := range []Codec{CodecNone, CodecZstd, CodecXZ} {
		t.Run(codec.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteArray(&buf, sa, codec))
			assert.Equal(t, "SAIS", buf.String()[:4])
			assert.Equal(t, byte(codec), buf.Bytes()[5])

			got, err := ReadArray(&buf)
			require.NoError(t, err)
			assert.Equal(t, sa, got)
		})
	}
}

func TestArrayFileEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteArray(&buf, nil, CodecZstd))
	got, err := ReadArray(&buf)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadArrayCorrupt(t *testing.T) {
	var good bytes.Buffer
	require.NoError(t, WriteArray(&good, []int{3, 2, 1, 0}, CodecNone))

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrCorruptArray},
		{"magic", []byte("SAIX\x01\x00\x00"), ErrCorruptArray},
		{"version", []byte("SAIS\x09\x00\x00"), ErrCorruptArray},
		{"codec", []byte("SAIS\x01\x07\x00"), ErrUnknownCodec},
		{"truncated", good.Bytes()[:good.Len()-1], ErrCorruptArray},
		{"position out of range", []byte("SAIS\x01\x00\x02\x00\x05"), ErrCorruptArray},
		{"duplicate position", []byte("SAIS\x01\x00\x03\x00\x00\x00"), ErrCorruptArray},
		{"trailing data", []byte("SAIS\x01\x00\x01\x00\x00"), ErrCorruptArray},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadArray(bytes.NewReader(tc.data))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := ReadArray(bytes.NewReader(good.Bytes()[:good.Len()-1]))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestParseCodec(t *testing.T) {
	for _, codec := range []Codec{CodecNone, CodecZstd, CodecXZ} {
		got, err := ParseCodec(codec.String())
		require.NoError(t, err)
		assert.Equal(t, codec, got)
	}
	_, err := ParseCodec("gzip")
	assert.ErrorIs(t, err, ErrUnknownCodec)
}

func TestReadArrayTruncated(t *testing.T) {
	sa, err := BuildSuffixArray([]byte("abracadabra"))
	require.NoError(t, err)

	for _, codec := range []Codec{CodecNone, CodecZstd, CodecXZ} {
		t.Run(codec.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteArray(&buf, sa, codec))
			data := buf.Bytes()
			for i := 0; i < len(data); i++ {
				_, err := ReadArray(bytes.NewReader(data[:i]))
				assert.ErrorIs(t, err, ErrCorruptArray, "cut at %d of %d", i, len(data))
			}
			got, err := ReadArray(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, sa, got)
		})
	}
}
