package haar

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"
)

func TestForward_Scenario(t *testing.T) {
	t.Parallel()

	s := math.Sqrt2
	// Sums cascade [4,16,25,1]/√2 -> [10,13] -> 23/√2; details in band order.
	want := []float64{
		23 / s,
		-3 / s,
		-12 / 2.0, 24 / 2.0,
		-2 / s, -6 / s, -1 / s, -1 / s,
	}

	for name, k := range allKernels {
		dst := make([]float64, len(scenario))
		if err := Forward(k, dst, scenario); err != nil {
			t.Fatalf("%s: Forward error: %v", name, err)
		}

		assertSlicesApprox(t, dst, want, 1e-13, "%s: Forward(scenario)", name)
	}
}

func TestRoundTrip_Scenario(t *testing.T) {
	t.Parallel()

	for name, k := range allKernels {
		coeffs := make([]float64, len(scenario))
		if err := Forward(k, coeffs, scenario); err != nil {
			t.Fatal(err)
		}

		got := make([]float64, len(scenario))
		if err := Inverse(k, got, coeffs); err != nil {
			t.Fatal(err)
		}

		assertSlicesApprox(t, got, scenario, 1e-14, "%s: copy round trip", name)

		data := slices.Clone(scenario)
		if err := ForwardInPlace(k, data); err != nil {
			t.Fatal(err)
		}

		if err := InverseInPlace(data); err != nil {
			t.Fatal(err)
		}

		assertSlicesApprox(t, data, scenario, 1e-14, "%s: in-place round trip", name)
	}
}

func TestRoundTrip_PowersOfTwo(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(1))

	for bits := 0; bits <= 12; bits++ {
		n := 1 << bits
		src := randomSignal(rnd, n)

		for name, k := range allKernels {
			coeffs := make([]float64, n)
			if err := Forward(k, coeffs, src); err != nil {
				t.Fatalf("%s n=%d: Forward: %v", name, n, err)
			}

			back := make([]float64, n)
			if err := Inverse(k, back, coeffs); err != nil {
				t.Fatalf("%s n=%d: Inverse: %v", name, n, err)
			}

			assertSlicesApprox(t, back, src, 1e-14, "%s n=%d copy", name, n)

			data := slices.Clone(src)
			if err := ForwardInPlace(k, data); err != nil {
				t.Fatalf("%s n=%d: ForwardInPlace: %v", name, n, err)
			}

			// Same arithmetic in the same order: the layouts must match exactly.
			if !slices.Equal(data, coeffs) {
				t.Fatalf("%s n=%d: ForwardInPlace differs from Forward", name, n)
			}

			if err := InverseInPlace(data); err != nil {
				t.Fatalf("%s n=%d: InverseInPlace: %v", name, n, err)
			}

			assertSlicesApprox(t, data, src, 1e-14, "%s n=%d in place", name, n)
		}
	}
}

func TestInverseInPlace_MatchesInverse(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(7))

	for _, n := range []int{2, 4, 8, 16, 64, 512} {
		coeffs := randomSignal(rnd, n)

		want := make([]float64, n)
		if err := Inverse(genericKernels, want, coeffs); err != nil {
			t.Fatal(err)
		}

		got := slices.Clone(coeffs)
		if err := InverseInPlace(got); err != nil {
			t.Fatal(err)
		}

		assertSlicesApprox(t, got, want, 1e-12, "n=%d", n)
	}
}

func TestParseval(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(3))

	for _, n := range []int{2, 8, 128, 4096} {
		src := randomSignal(rnd, n)

		coeffs := make([]float64, n)
		if err := Forward(genericKernels, coeffs, src); err != nil {
			t.Fatal(err)
		}

		var es, ec float64
		for i := range src {
			es += src[i] * src[i]
			ec += coeffs[i] * coeffs[i]
		}

		if rel := math.Abs(es-ec) / es; rel > 1e-12 {
			t.Errorf("n=%d: energy %v vs %v (rel %v)", n, es, ec, rel)
		}
	}
}

func TestForward_Aliasing(t *testing.T) {
	t.Parallel()

	want := make([]float64, len(scenario))
	if err := Forward(genericKernels, want, scenario); err != nil {
		t.Fatal(err)
	}

	buf := slices.Clone(scenario)
	if err := Forward(genericKernels, buf, buf); err != nil {
		t.Fatal(err)
	}

	assertSlicesApprox(t, buf, want, 0, "aliased Forward")

	if err := Inverse(genericKernels, buf, buf); err != nil {
		t.Fatal(err)
	}

	assertSlicesApprox(t, buf, scenario, 1e-14, "aliased Inverse")
}

func TestForward_DoesNotMutateSource(t *testing.T) {
	t.Parallel()

	src := slices.Clone(scenario)
	dst := make([]float64, len(src))

	if err := Forward(unrolledKernels, dst, src); err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(src, scenario) {
		t.Errorf("Forward mutated src: %v", src)
	}

	coeffs := slices.Clone(dst)
	back := make([]float64, len(src))

	if err := Inverse(unrolledKernels, back, dst); err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(coeffs, dst) {
		t.Errorf("Inverse mutated src: %v", dst)
	}
}

func TestDegenerateLengths(t *testing.T) {
	t.Parallel()

	if err := Forward(genericKernels, nil, nil); err != nil {
		t.Errorf("Forward(nil, nil) = %v, want nil", err)
	}

	if err := Inverse(genericKernels, nil, []float64{}); err != nil {
		t.Errorf("Inverse(empty) = %v, want nil", err)
	}

	if err := ForwardInPlace(genericKernels, nil); err != nil {
		t.Errorf("ForwardInPlace(nil) = %v, want nil", err)
	}

	if err := InverseInPlace(nil); err != nil {
		t.Errorf("InverseInPlace(nil) = %v, want nil", err)
	}

	one := []float64{42}
	dst := make([]float64, 1)

	if err := Forward(genericKernels, dst, one); err != nil || dst[0] != 42 {
		t.Errorf("Forward([42]) = %v, %v", dst, err)
	}

	if err := Inverse(genericKernels, dst, one); err != nil || dst[0] != 42 {
		t.Errorf("Inverse([42]) = %v, %v", dst, err)
	}

	if err := ForwardInPlace(genericKernels, one); err != nil || one[0] != 42 {
		t.Errorf("ForwardInPlace([42]) = %v, %v", one, err)
	}

	if err := InverseInPlace(one); err != nil || one[0] != 42 {
		t.Errorf("InverseInPlace([42]) = %v, %v", one, err)
	}
}

func TestInvalidLength_NoMutation(t *testing.T) {
	t.Parallel()

	orig := []float64{1, 2, 3, 4, 5, 6}

	data := slices.Clone(orig)
	if err := ForwardInPlace(genericKernels, data); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("ForwardInPlace(len 6) = %v, want ErrInvalidLength", err)
	}

	if !slices.Equal(data, orig) {
		t.Errorf("ForwardInPlace mutated rejected input: %v", data)
	}

	if err := InverseInPlace(data); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("InverseInPlace(len 6) = %v, want ErrInvalidLength", err)
	}

	if !slices.Equal(data, orig) {
		t.Errorf("InverseInPlace mutated rejected input: %v", data)
	}

	dst := make([]float64, 8)
	if err := Forward(genericKernels, dst, data); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("Forward(len 6) = %v, want ErrInvalidLength", err)
	}

	if err := Inverse(genericKernels, dst, data); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("Inverse(len 6) = %v, want ErrInvalidLength", err)
	}
}

func TestDestinationErrors(t *testing.T) {
	t.Parallel()

	if err := Forward(genericKernels, nil, scenario); !errors.Is(err, ErrNilSlice) {
		t.Errorf("Forward(nil dst) = %v, want ErrNilSlice", err)
	}

	if err := Inverse(genericKernels, make([]float64, 4), scenario); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Inverse(short dst) = %v, want ErrLengthMismatch", err)
	}
}

func BenchmarkForward(b *testing.B) {
	src := randomSignal(rand.New(rand.NewSource(1)), 1<<14)
	dst := make([]float64, len(src))

	for name, k := range allKernels {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()

			for b.Loop() {
				_ = Forward(k, dst, src)
			}
		})
	}
}

func BenchmarkForwardInPlace(b *testing.B) {
	src := randomSignal(rand.New(rand.NewSource(1)), 1<<14)
	data := make([]float64, len(src))

	b.ReportAllocs()

	for b.Loop() {
		copy(data, src)
		_ = ForwardInPlace(genericKernels, data)
	}
}

func BenchmarkInverseInPlace(b *testing.B) {
	src := randomSignal(rand.New(rand.NewSource(1)), 1<<14)
	data := make([]float64, len(src))

	b.ReportAllocs()

	for b.Loop() {
		copy(data, src)
		_ = InverseInPlace(data)
	}
}
