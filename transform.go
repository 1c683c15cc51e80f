package algodwt

import (
	"math"

	m "github.com/cwbudde/algo-dwt/internal/math"
)

// Transform holds the coefficients of a discrete wavelet transform in the
// cascade band layout and owns their backing buffer.
//
// A Transform is not safe for concurrent use. After InvertInPlace hands the
// buffer to the caller, every method reports ErrConsumed or a zero value.
type Transform struct {
	wavelet  Wavelet
	coeffs   []float64
	consumed bool
}

// DWT computes the Haar transform of data without modifying it.
// Inputs whose length is not a power of two are zero-padded first (see Pad).
//
// Example:
//
//	t, _ := algodwt.DWT([]int{1, 3, 5, 11, 12, 13, 0, 1})
//	signal, _ := t.Invert()
func DWT[T Real](data []T) (*Transform, error) {
	return DWTWith(NewHaar(), data)
}

// DWTWith is DWT for an arbitrary wavelet family.
func DWTWith[T Real](w Wavelet, data []T) (*Transform, error) {
	if w == nil {
		w = NewHaar()
	}

	padded := Pad(data)
	if err := w.Forward(padded, padded); err != nil {
		return nil, err
	}

	return &Transform{wavelet: w, coeffs: padded}, nil
}

// DWTInPlace computes the Haar transform of data in place and takes
// ownership of data: the caller must not use the slice afterwards.
// This trades CPU for memory; prefer DWT when memory is not a concern.
//
// Returns ErrInvalidLength if len(data) is not a power of two. Nothing is
// padded and data is left unmodified in that case.
func DWTInPlace(data []float64) (*Transform, error) {
	return DWTInPlaceWith(NewHaar(), data)
}

// DWTInPlaceWith is DWTInPlace for an arbitrary wavelet family.
func DWTInPlaceWith(w Wavelet, data []float64) (*Transform, error) {
	if w == nil {
		w = NewHaar()
	}

	if !validLength(len(data)) {
		return nil, ErrInvalidLength
	}

	if err := w.ForwardInPlace(data); err != nil {
		return nil, err
	}

	return &Transform{wavelet: w, coeffs: data}, nil
}

// FromCoefficients wraps Haar coefficients in the cascade band layout, for
// example ones produced elsewhere or edited by hand. The Transform takes
// ownership of coeffs.
//
// Returns ErrInvalidLength if len(coeffs) is not a power of two.
func FromCoefficients(coeffs []float64) (*Transform, error) {
	return FromCoefficientsWith(NewHaar(), coeffs)
}

// FromCoefficientsWith is FromCoefficients for an arbitrary wavelet family.
func FromCoefficientsWith(w Wavelet, coeffs []float64) (*Transform, error) {
	if w == nil {
		w = NewHaar()
	}

	if !validLength(len(coeffs)) {
		return nil, ErrInvalidLength
	}

	if coeffs == nil {
		coeffs = []float64{}
	}

	return &Transform{wavelet: w, coeffs: coeffs}, nil
}

func validLength(n int) bool {
	return n == 0 || m.IsPowerOf2(n)
}

// Wavelet returns the family that produced the coefficients.
func (t *Transform) Wavelet() Wavelet {
	return t.wavelet
}

// Len returns the number of coefficients, 0 once consumed.
func (t *Transform) Len() int {
	return len(t.coeffs)
}

// Levels returns the number of detail bands, log2(Len()).
func (t *Transform) Levels() int {
	return m.Log2(len(t.coeffs))
}

// Consumed reports whether InvertInPlace has taken the coefficients.
func (t *Transform) Consumed() bool {
	return t.consumed
}

// Coefficients returns a copy of the coefficients in band layout.
func (t *Transform) Coefficients() []float64 {
	if t.consumed {
		return nil
	}

	out := make([]float64, len(t.coeffs))
	copy(out, t.coeffs)

	return out
}

// Average returns the coarsest average, coefficient 0.
func (t *Transform) Average() (float64, error) {
	if t.consumed {
		return 0, ErrConsumed
	}

	if len(t.coeffs) == 0 {
		return 0, ErrInvalidLevel
	}

	return t.coeffs[0], nil
}

// Band returns the detail coefficients of level j, 1 <= j <= Levels(), as a
// view into the Transform: [2^(j-1), 2^j). Level 1 is the coarsest band (one
// coefficient), level Levels() the finest (the back half).
// Writing through the view edits the Transform.
func (t *Transform) Band(j int) ([]float64, error) {
	if t.consumed {
		return nil, ErrConsumed
	}

	if j < 1 || j > t.Levels() {
		return nil, ErrInvalidLevel
	}

	lo, hi := 1<<uint(j-1), 1<<uint(j)

	return t.coeffs[lo:hi:hi], nil
}

// Invert reconstructs the signal into a new slice. The Transform is unchanged.
func (t *Transform) Invert() ([]float64, error) {
	if t.consumed {
		return nil, ErrConsumed
	}

	out := make([]float64, len(t.coeffs))
	if err := t.wavelet.Inverse(out, t.coeffs); err != nil {
		return nil, err
	}

	return out, nil
}

// InvertInPlace reconstructs the signal in the Transform's own buffer and
// returns that buffer. The Transform is consumed: later calls report
// ErrConsumed. In-place inversion is typically slower than Invert; use it
// when memory is the scarcer resource.
func (t *Transform) InvertInPlace() ([]float64, error) {
	if t.consumed {
		return nil, ErrConsumed
	}

	if err := t.wavelet.InverseInPlace(t.coeffs); err != nil {
		return nil, err
	}

	out := t.coeffs
	t.coeffs = nil
	t.consumed = true

	return out, nil
}

// Threshold zeroes every detail coefficient whose magnitude is below
// threshold (hard thresholding) and returns how many were zeroed.
// The average is never touched.
func (t *Transform) Threshold(threshold float64) int {
	if t.consumed {
		return 0
	}

	zeroed := 0

	for i := 1; i < len(t.coeffs); i++ {
		if t.coeffs[i] != 0 && math.Abs(t.coeffs[i]) < threshold {
			t.coeffs[i] = 0
			zeroed++
		}
	}

	return zeroed
}

// SparseSize returns the number of non-zero coefficients.
func (t *Transform) SparseSize() int {
	count := 0

	for _, v := range t.coeffs {
		if v != 0 {
			count++
		}
	}

	return count
}

// Energy returns the sum of squared coefficients. For an orthonormal
// family it equals the energy of the signal.
func (t *Transform) Energy() float64 {
	var sum float64
	for _, v := range t.coeffs {
		sum += v * v
	}

	return sum
}
