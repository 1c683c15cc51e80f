package algodwt

import "github.com/cwbudde/algo-dwt/internal/haar"

// Decomposition is a Haar multiresolution analysis: every level of the
// cascade, not just the collapsed coefficients.
//
// Level j (0-based, finest first) has length N/2^j; its first half holds
// the pairwise averages and its second half the differences of level j-1's
// averages (of the padded signal for level 0).
type Decomposition struct {
	levels [][]float64
	signal []float64 // kept only when there are no levels (N <= 1)
}

// Decompose computes the multiresolution analysis of data, zero-padding it
// to a power of two first. An N-point signal yields log2(N) levels and the
// last level has two elements.
func Decompose[T Real](data []T) (*Decomposition, error) {
	padded := Pad(data)

	levels, err := haar.Decompose(haar.KernelsFor(len(padded), KernelAuto), padded)
	if err != nil {
		return nil, err
	}

	d := &Decomposition{levels: levels}
	if len(levels) == 0 {
		d.signal = padded
	}

	return d, nil
}

// Levels returns the number of levels.
func (d *Decomposition) Levels() int {
	return len(d.levels)
}

// Level returns level j as a view into the decomposition.
func (d *Decomposition) Level(j int) ([]float64, error) {
	if j < 0 || j >= len(d.levels) {
		return nil, ErrInvalidLevel
	}

	return d.levels[j], nil
}

// Averages returns the averages half of level j.
func (d *Decomposition) Averages(j int) ([]float64, error) {
	level, err := d.Level(j)
	if err != nil {
		return nil, err
	}

	return level[:len(level)/2], nil
}

// Details returns the differences half of level j.
func (d *Decomposition) Details(j int) ([]float64, error) {
	level, err := d.Level(j)
	if err != nil {
		return nil, err
	}

	return level[len(level)/2:], nil
}

// Transform collapses the decomposition into Haar coefficients in the
// cascade band layout. The result equals DWT of the same input.
func (d *Decomposition) Transform() *Transform {
	var coeffs []float64
	if len(d.levels) == 0 {
		coeffs = make([]float64, len(d.signal))
		copy(coeffs, d.signal)
	} else {
		coeffs = haar.Collapse(d.levels)
	}

	return &Transform{wavelet: NewHaar(), coeffs: coeffs}
}
