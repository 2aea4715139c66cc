package sais

import "runtime"

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "sais: " + string(e) }

var (
	// ErrBucketOverflow reports that a bucket received more positions than
	// its capacity. It always indicates miscounted buckets and is never
	// caused by the input.
	ErrBucketOverflow error = Error("bucket capacity exceeded")

	ErrAlphabetSize  error = Error("alphabet size must be positive")
	ErrSymbolRange   error = Error("symbol outside of alphabet")
	ErrSentinel      error = Error("sequence must end with a single sentinel 0")
	ErrUnknownSymbol error = Error("symbol not in alphabet")

	ErrNotPermutation error = Error("array is not a permutation of positions")
	ErrOutOfOrder     error = Error("suffixes out of order")

	ErrInvalidUTF8  error = Error("invalid UTF-8 encoding in input documents")
	ErrCorruptArray error = Error("array file is corrupted")
	ErrUnknownCodec error = Error("unknown array codec")
)

// errRecover turns a panic carrying an Error into a returned error.
// Runtime errors and foreign panics propagate.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case Error:
		*err = ex
	default:
		panic(ex)
	}
}
