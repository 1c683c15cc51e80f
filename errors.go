package algodwt

import (
	"errors"

	"github.com/cwbudde/algo-dwt/internal/haar"
)

// Sentinel errors returned by wavelet operations.
var (
	// ErrInvalidLength is returned when a transform that cannot pad its input
	// (in-place transforms, inverses, wrapped coefficients) receives a length
	// that is not a power of two. The input is left untouched.
	ErrInvalidLength = haar.ErrInvalidLength

	// ErrNilSlice is returned when a nil destination is passed for a non-empty source.
	ErrNilSlice = haar.ErrNilSlice

	// ErrLengthMismatch is returned when a destination slice is shorter than its source.
	ErrLengthMismatch = haar.ErrLengthMismatch

	// ErrConsumed is returned by a Transform whose coefficients were handed
	// out by InvertInPlace.
	ErrConsumed = errors.New("algodwt: transform consumed by in-place inversion")

	// ErrInvalidLevel is returned when a band or decomposition level index is out of range.
	ErrInvalidLevel = errors.New("algodwt: invalid level")
)
