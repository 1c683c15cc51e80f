package haar

import m "github.com/cwbudde/algo-dwt/internal/math"

// Kernels groups the pair kernels one Haar level is built from.
type Kernels struct {
	// Analyze writes the scaled sum of each src pair to avg and the scaled
	// difference to det. len(det) pairs are processed. avg may alias the
	// front of src; det must not overlap src.
	Analyze func(avg, det, src []float64)

	// SumDiff replaces every (data[2k], data[2k+1]) with its scaled sum and
	// difference, in place.
	SumDiff func(data []float64)

	// Synthesize writes h*a+h*w and h*a-h*w for each (avg[k], det[k]) to
	// dst[2k] and dst[2k+1]. dst must not overlap avg or det.
	Synthesize func(dst, avg, det []float64)
}

var genericKernels = Kernels{
	Analyze:    analyzeGeneric,
	SumDiff:    sumDiffGeneric,
	Synthesize: synthesizeGeneric,
}

var unrolledKernels = Kernels{
	Analyze:    analyzeUnrolled,
	SumDiff:    sumDiffUnrolled,
	Synthesize: synthesizeUnrolled,
}

func analyzeGeneric(avg, det, src []float64) {
	for k := range det {
		x, y := src[2*k], src[2*k+1]
		avg[k] = (x + y) / m.Sqrt2
		det[k] = (x - y) / m.Sqrt2
	}
}

func sumDiffGeneric(data []float64) {
	for pos := 0; pos+1 < len(data); pos += 2 {
		x, y := data[pos], data[pos+1]
		data[pos] = (x + y) / m.Sqrt2
		data[pos+1] = (x - y) / m.Sqrt2
	}
}

func synthesizeGeneric(dst, avg, det []float64) {
	const h = m.InvSqrt2

	for k := range avg {
		a, w := avg[k], det[k]
		dst[2*k] = h*a + h*w
		dst[2*k+1] = h*a - h*w
	}
}

// The unrolled kernels load a full group before storing, so avg may alias
// the front of src within a group.

func analyzeUnrolled(avg, det, src []float64) {
	n := len(det)
	k := 0

	for ; k+4 <= n; k += 4 {
		s := src[2*k : 2*k+8 : 2*k+8]
		x0, y0, x1, y1 := s[0], s[1], s[2], s[3]
		x2, y2, x3, y3 := s[4], s[5], s[6], s[7]

		a := avg[k : k+4 : k+4]
		a[0] = (x0 + y0) / m.Sqrt2
		a[1] = (x1 + y1) / m.Sqrt2
		a[2] = (x2 + y2) / m.Sqrt2
		a[3] = (x3 + y3) / m.Sqrt2

		d := det[k : k+4 : k+4]
		d[0] = (x0 - y0) / m.Sqrt2
		d[1] = (x1 - y1) / m.Sqrt2
		d[2] = (x2 - y2) / m.Sqrt2
		d[3] = (x3 - y3) / m.Sqrt2
	}

	analyzeGeneric(avg[k:], det[k:n], src[2*k:])
}

func sumDiffUnrolled(data []float64) {
	n := len(data)
	pos := 0

	for ; pos+8 <= n; pos += 8 {
		s := data[pos : pos+8 : pos+8]
		x0, y0, x1, y1 := s[0], s[1], s[2], s[3]
		x2, y2, x3, y3 := s[4], s[5], s[6], s[7]

		s[0], s[1] = (x0+y0)/m.Sqrt2, (x0-y0)/m.Sqrt2
		s[2], s[3] = (x1+y1)/m.Sqrt2, (x1-y1)/m.Sqrt2
		s[4], s[5] = (x2+y2)/m.Sqrt2, (x2-y2)/m.Sqrt2
		s[6], s[7] = (x3+y3)/m.Sqrt2, (x3-y3)/m.Sqrt2
	}

	sumDiffGeneric(data[pos:])
}

func synthesizeUnrolled(dst, avg, det []float64) {
	const h = m.InvSqrt2

	n := len(avg)
	k := 0

	for ; k+4 <= n; k += 4 {
		a := avg[k : k+4 : k+4]
		w := det[k : k+4 : k+4]
		d := dst[2*k : 2*k+8 : 2*k+8]

		d[0], d[1] = h*a[0]+h*w[0], h*a[0]-h*w[0]
		d[2], d[3] = h*a[1]+h*w[1], h*a[1]-h*w[1]
		d[4], d[5] = h*a[2]+h*w[2], h*a[2]-h*w[2]
		d[6], d[7] = h*a[3]+h*w[3], h*a[3]-h*w[3]
	}

	synthesizeGeneric(dst[2*k:], avg[k:], det[k:n])
}
