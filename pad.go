package algodwt

import m "github.com/cwbudde/algo-dwt/internal/math"

// Pad converts data to float64 and zero-extends it to the next power of two.
// The result is always a new slice; an empty input gives an empty, non-nil
// result.
func Pad[T Real](data []T) []float64 {
	if len(data) == 0 {
		return []float64{}
	}

	out := make([]float64, m.NextPowerOf2(len(data)))
	for i, v := range data {
		out[i] = float64(v)
	}

	return out
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return m.IsPowerOf2(n)
}

// NextPowerOf2 returns the smallest power of two that is >= n.
func NextPowerOf2(n int) int {
	return m.NextPowerOf2(n)
}
