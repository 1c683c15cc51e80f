package haar

import (
	"math"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

var scenario = []float64{1, 3, 5, 11, 12, 13, 0, 1}

func randomSignal(rnd *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rnd.Float64()*2 - 1
	}

	return out
}

func assertSlicesApprox(t *testing.T, got, want []float64, tol float64, format string, args ...any) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf(format+": length %d, want %d", append(args, len(got), len(want))...)
	}

	for i := range want {
		if diff := math.Abs(got[i] - want[i]); diff > tol {
			t.Fatalf(format+": element %d: got %v want %v (diff=%v)", append(args, i, got[i], want[i], diff)...)
		}
	}
}

var allKernels = map[string]Kernels{
	"generic":  genericKernels,
	"unrolled": unrolledKernels,
}
