package sais

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Codec selects the compression of an array file body.
type Codec byte

const (
	CodecNone Codec = iota
	CodecZstd
	CodecXZ
)

const (
	arrayMagic   = "SAIS"
	arrayVersion = 1
)

func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecZstd:
		return "zstd"
	case CodecXZ:
		return "xz"
	default:
		return fmt.Sprintf("Codec(%d)", byte(c))
	}
}

// ParseCodec returns the codec named s.
func ParseCodec(s string) (Codec, error) {
	for _, c := range []Codec{CodecNone, CodecZstd, CodecXZ} {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCodec, s)
}

// WriteArray stores sa in w. The file starts with a magic string, a
// version and the codec, followed by the compressed body: the number of
// entries and the entries themselves, all as unsigned varints.
func WriteArray(w io.Writer, sa []int, codec Codec) error {
	hdr := append([]byte(arrayMagic), arrayVersion, byte(codec))
	if _, err := w.Write(hdr); err != nil {
		return err
	}

	var body io.WriteCloser
	switch codec {
	case CodecNone:
		body = nopCloser{w}
	case CodecZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		body = zw
	case CodecXZ:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return err
		}
		body = xw
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCodec, byte(codec))
	}

	bw := bufio.NewWriter(body)
	var buf [binary.MaxVarintLen64]byte
	put := func(v uint64) error {
		_, err := bw.Write(buf[:binary.PutUvarint(buf[:], v)])
		return err
	}
	if err := put(uint64(len(sa))); err != nil {
		return err
	}
	for _, p := range sa {
		if err := put(uint64(p)); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return body.Close()
}

// ReadArray loads an array written by WriteArray.
func ReadArray(r io.Reader) ([]int, error) {
	hdr := make([]byte, len(arrayMagic)+2)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, corrupt(err)
	}
	if string(hdr[:len(arrayMagic)]) != arrayMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrCorruptArray)
	}
	if v := hdr[len(arrayMagic)]; v != arrayVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptArray, v)
	}

	var body io.Reader
	switch codec := Codec(hdr[len(arrayMagic)+1]); codec {
	case CodecNone:
		body = r
	case CodecZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, corrupt(err)
		}
		defer zr.Close()
		body = zr
	case CodecXZ:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, corrupt(err)
		}
		body = xr
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCodec, byte(codec))
	}

	br := bufio.NewReader(body)
	n, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, corrupt(err)
	}
	sa := make([]int, 0, min(n, 1<<20))
	for i := uint64(0); i < n; i++ {
		p, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, corrupt(err)
		}
		if p >= n {
			return nil, fmt.Errorf("%w: position %d out of range at %d", ErrCorruptArray, p, i)
		}
		sa = append(sa, int(p))
	}
	seen := make([]bool, len(sa))
	for i, p := range sa {
		if seen[p] {
			return nil, fmt.Errorf("%w: duplicate position %d at %d", ErrCorruptArray, p, i)
		}
		seen[p] = true
	}

	// Reading to the end lets the decompressors verify their trailers.
	switch _, err := br.ReadByte(); err {
	case io.EOF:
		return sa, nil
	case nil:
		return nil, fmt.Errorf("%w: trailing data", ErrCorruptArray)
	default:
		return nil, corrupt(err)
	}
}

func corrupt(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("%w: %w", ErrCorruptArray, err)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
