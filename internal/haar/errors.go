package haar

import (
	"errors"

	m "github.com/cwbudde/algo-dwt/internal/math"
)

// Sentinel errors returned by Haar operations.
var (
	// ErrInvalidLength is returned when a buffer that cannot be padded
	// does not have a power-of-two length.
	ErrInvalidLength = errors.New("algodwt: invalid transform length")

	// ErrNilSlice is returned when a nil destination is passed for a non-empty source.
	ErrNilSlice = errors.New("algodwt: nil slice")

	// ErrLengthMismatch is returned when the destination is shorter than the source.
	ErrLengthMismatch = errors.New("algodwt: slice length mismatch")
)

// ValidLength reports whether n is an acceptable transform length:
// zero (the empty signal) or a power of two.
func ValidLength(n int) bool {
	return n == 0 || m.IsPowerOf2(n)
}

func validatePair(dst, src []float64) error {
	if !ValidLength(len(src)) {
		return ErrInvalidLength
	}

	if len(src) == 0 {
		return nil
	}

	if dst == nil {
		return ErrNilSlice
	}

	if len(dst) < len(src) {
		return ErrLengthMismatch
	}

	return nil
}
