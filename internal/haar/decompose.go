package haar

import m "github.com/cwbudde/algo-dwt/internal/math"

// Decompose returns every level of the Haar multiresolution analysis of
// data, finest first. Level j has length len(data)/2^j and holds
// [averages | differences] of the averages half of level j-1 (of data for
// level 0). len(data) must be a power of two; lengths below 2 yield no levels.
//
// Unlike Forward, nothing is discarded between levels.
func Decompose(k Kernels, data []float64) ([][]float64, error) {
	if !ValidLength(len(data)) {
		return nil, ErrInvalidLength
	}

	levels := make([][]float64, 0, m.Log2(len(data)))
	src := data

	for size := len(data); size >= 2; size /= 2 {
		level := make([]float64, size)
		half := size / 2

		k.Analyze(level[:half], level[half:], src[:size])

		levels = append(levels, level)
		src = level[:half]
	}

	return levels, nil
}

// Collapse folds a multiresolution analysis of an n-point signal into the
// cascade layout produced by Forward: the coarsest average at index 0 and
// the differences of level j in [n/2^(j+1), n/2^j).
func Collapse(levels [][]float64) []float64 {
	if len(levels) == 0 {
		return []float64{}
	}

	n := len(levels[0])
	out := make([]float64, n)

	for _, level := range levels {
		half := len(level) / 2
		copy(out[half:2*half], level[half:])
	}

	out[0] = levels[len(levels)-1][0]

	return out
}
