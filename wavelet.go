package algodwt

import "github.com/cwbudde/algo-dwt/internal/haar"

// Wavelet is a discrete wavelet family.
//
// Coefficient buffers use the cascade band layout: index 0 holds the
// coarsest average and [2^(j-1), 2^j) holds the level-j details, coarsest
// first. Lengths are powers of two (or zero); implementations return
// ErrInvalidLength otherwise, before writing anything.
type Wavelet interface {
	// Name identifies the family, e.g. "haar".
	Name() string

	// Forward writes the transform of src into dst. dst may alias src;
	// otherwise src is left unchanged.
	Forward(dst, src []float64) error

	// ForwardInPlace replaces data with its transform without allocating
	// a buffer of comparable size.
	ForwardInPlace(data []float64) error

	// Inverse writes the reconstruction of the coefficients src into dst.
	// dst may alias src; otherwise src is left unchanged.
	Inverse(dst, src []float64) error

	// InverseInPlace replaces the coefficients in data with the reconstructed
	// signal. In-place inversion usually costs more CPU than Inverse.
	InverseInPlace(data []float64) error
}

// Haar is the orthonormal Haar wavelet: pairwise sums and differences
// scaled by 1/√2.
//
// The zero value is ready to use and follows the package-wide kernel strategy.
type Haar struct {
	// Strategy overrides the package-wide kernel strategy when not KernelAuto.
	Strategy KernelStrategy
}

var _ Wavelet = Haar{}

// NewHaar returns a Haar wavelet that follows the package-wide kernel strategy.
func NewHaar() Haar {
	return Haar{}
}

// Name returns "haar".
func (Haar) Name() string {
	return "haar"
}

// Forward computes the multi-level Haar transform of src into dst.
// dst must hold at least len(src) elements and may alias src.
//
// Returns ErrInvalidLength if len(src) is not a power of two.
// Returns ErrNilSlice if dst is nil and src is not empty.
// Returns ErrLengthMismatch if dst is shorter than src.
func (h Haar) Forward(dst, src []float64) error {
	return haar.Forward(haar.KernelsFor(len(src), h.Strategy), dst, src)
}

// ForwardInPlace computes the Haar transform of data in place.
// Each level is a sum/difference pass followed by an in-place partition of
// the sums to the front, so only O(1) extra memory is used.
//
// Returns ErrInvalidLength if len(data) is not a power of two; data is not modified.
func (h Haar) ForwardInPlace(data []float64) error {
	return haar.ForwardInPlace(haar.KernelsFor(len(data), h.Strategy), data)
}

// Inverse reconstructs the signal for the Haar coefficients in src into dst.
// dst must hold at least len(src) elements and may alias src.
func (h Haar) Inverse(dst, src []float64) error {
	return haar.Inverse(haar.KernelsFor(len(src), h.Strategy), dst, src)
}

// InverseInPlace reconstructs the signal for the Haar coefficients in data,
// overwriting them. Averages are brought next to their detail terms by
// recursive block rotation, which needs no scratch buffer but does
// O(N log N) extra moves.
//
// Returns ErrInvalidLength if len(data) is not a power of two; data is not modified.
func (Haar) InverseInPlace(data []float64) error {
	return haar.InverseInPlace(data)
}
