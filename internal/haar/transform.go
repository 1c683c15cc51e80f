package haar

import (
	m "github.com/cwbudde/algo-dwt/internal/math"
	"github.com/cwbudde/algo-dwt/internal/permute"
)

// Forward computes the full Haar cascade of src into dst without touching src.
//
// Each level writes its detail coefficients straight to their final band
// [split, 2*split) of dst, so no permutation is needed. dst may alias src.
func Forward(k Kernels, dst, src []float64) error {
	if err := validatePair(dst, src); err != nil {
		return err
	}

	n := len(src)
	if n == 0 {
		return nil
	}

	work := make([]float64, n)
	copy(work, src)

	for split := n / 2; split >= 1; split /= 2 {
		k.Analyze(work[:split], dst[split:2*split], work[:2*split])
	}

	dst[0] = work[0]

	return nil
}

// Inverse reconstructs the signal whose Haar cascade is src into dst.
//
// Level j doubles the reconstructed prefix using the band [2^(j-1), 2^j) of
// src. dst is written only after the last level, so it may alias src.
func Inverse(k Kernels, dst, src []float64) error {
	if err := validatePair(dst, src); err != nil {
		return err
	}

	n := len(src)
	switch n {
	case 0:
		return nil
	case 1:
		dst[0] = src[0]
		return nil
	}

	prev := make([]float64, n)
	next := make([]float64, n)
	prev[0] = src[0]

	for half := 1; half < n; half *= 2 {
		k.Synthesize(next[:2*half], prev[:half], src[half:2*half])
		prev, next = next, prev
	}

	copy(dst[:n], prev)

	return nil
}

// ForwardInPlace computes the Haar cascade of data, overwriting it.
//
// Every level runs a sum/difference pass over the active prefix and then
// partitions it so sums lead and differences trail, which reproduces the
// band layout of Forward with O(1) extra space. The length is validated
// before anything is written.
func ForwardInPlace(k Kernels, data []float64) error {
	if !ValidLength(len(data)) {
		return ErrInvalidLength
	}

	for size := len(data); size > 1; size /= 2 {
		k.SumDiff(data[:size])
		permute.PartitionEvens(data[:size])
	}

	return nil
}

// InverseInPlace reconstructs the signal whose Haar cascade is data,
// overwriting it. The length is validated before anything is written.
//
// Level j works on the prefix of length 2^j, which reads
// [a1..am | w1..wm]. Each average must meet its own detail term, so the
// prefix is reordered recursively (see synthesizeBlock) until they are
// adjacent. This costs O(N log N) with no scratch buffer.
func InverseInPlace(data []float64) error {
	if !ValidLength(len(data)) {
		return ErrInvalidLength
	}

	for size := 2; size <= len(data); size *= 2 {
		synthesizeBlock(data[:size])
	}

	return nil
}

// synthesizeBlock inverts one Haar level of f = [averages | details] in place.
// len(f) is a power of two >= 2.
func synthesizeBlock(f []float64) {
	const h = m.InvSqrt2

	switch len(f) {
	case 2:
		a, w := f[0], f[1]
		f[0] = h*a + h*w
		f[1] = h*a - h*w
	case 4:
		a1, a2, w1, w2 := f[0], f[1], f[2], f[3]
		f[0] = h*a1 + h*w1
		f[1] = h*a1 - h*w1
		f[2] = h*a2 + h*w2
		f[3] = h*a2 - h*w2
	default:
		// Q1|Q2|Q3|Q4: the details of Q1 live in Q3 and those of Q2 in Q4.
		// Rotating the middle gives Q1|Q3|Q2|Q4, two independent blocks.
		mid := len(f) / 2
		quarter := mid / 2

		permute.RotateRight(f[quarter:mid+quarter], quarter)

		synthesizeBlock(f[:mid])
		synthesizeBlock(f[mid:])
	}
}
