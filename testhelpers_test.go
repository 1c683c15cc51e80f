package algodwt

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
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

func assertApproxSlice(t *testing.T, want, got []float64, tol float64, format string, args ...any) {
	t.Helper()

	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf(format+" (-want +got):\n%s", append(args, diff)...)
	}
}
