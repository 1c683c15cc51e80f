package haar

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// The unrolled kernels must agree with the generic ones, including the tail
// handling for lengths that are not a multiple of the group size. Analysis is
// bit-identical; synthesis may differ in the last bit where multiply-adds fuse.
func TestKernels_UnrolledMatchesGeneric(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(11))

	for pairs := 0; pairs <= 37; pairs++ {
		src := randomSignal(rnd, 2*pairs)

		avgG, detG := make([]float64, pairs), make([]float64, pairs)
		avgU, detU := make([]float64, pairs), make([]float64, pairs)

		analyzeGeneric(avgG, detG, src)
		analyzeUnrolled(avgU, detU, src)

		if diff := cmp.Diff(avgG, avgU); diff != "" {
			t.Fatalf("pairs=%d: Analyze avg mismatch (-generic +unrolled):\n%s", pairs, diff)
		}

		if diff := cmp.Diff(detG, detU); diff != "" {
			t.Fatalf("pairs=%d: Analyze det mismatch (-generic +unrolled):\n%s", pairs, diff)
		}

		sdG, sdU := slices.Clone(src), slices.Clone(src)
		sumDiffGeneric(sdG)
		sumDiffUnrolled(sdU)

		if diff := cmp.Diff(sdG, sdU); diff != "" {
			t.Fatalf("pairs=%d: SumDiff mismatch (-generic +unrolled):\n%s", pairs, diff)
		}

		outG, outU := make([]float64, 2*pairs), make([]float64, 2*pairs)
		synthesizeGeneric(outG, avgG, detG)
		synthesizeUnrolled(outU, avgG, detG)

		if diff := cmp.Diff(outG, outU, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
			t.Fatalf("pairs=%d: Synthesize mismatch (-generic +unrolled):\n%s", pairs, diff)
		}
	}
}

func TestKernels_AnalyzeAliasedAverages(t *testing.T) {
	t.Parallel()

	src := randomSignal(rand.New(rand.NewSource(5)), 64)

	for name, k := range allKernels {
		wantAvg, wantDet := make([]float64, 32), make([]float64, 32)
		k.Analyze(wantAvg, wantDet, src)

		buf := slices.Clone(src)
		det := make([]float64, 32)
		k.Analyze(buf[:32], det, buf)

		if diff := cmp.Diff(wantAvg, buf[:32]); diff != "" {
			t.Errorf("%s: aliased averages differ:\n%s", name, diff)
		}

		if diff := cmp.Diff(wantDet, det); diff != "" {
			t.Errorf("%s: details differ with aliased averages:\n%s", name, diff)
		}
	}
}

func TestKernels_SumDiffMatchesAnalyze(t *testing.T) {
	t.Parallel()

	src := randomSignal(rand.New(rand.NewSource(9)), 24)

	avg, det := make([]float64, 12), make([]float64, 12)
	analyzeGeneric(avg, det, src)

	data := slices.Clone(src)
	sumDiffGeneric(data)

	for k := range avg {
		if data[2*k] != avg[k] || data[2*k+1] != det[k] {
			t.Fatalf("pair %d: SumDiff (%v, %v), Analyze (%v, %v)", k, data[2*k], data[2*k+1], avg[k], det[k])
		}
	}
}
