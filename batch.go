package algodwt

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchOptions configures ForwardBatch and InverseBatch.
type BatchOptions struct {
	// Wavelet is the family to use; nil means Haar.
	Wavelet Wavelet

	// Workers bounds the number of concurrent transforms;
	// values < 1 mean runtime.GOMAXPROCS(0).
	Workers int

	// InPlace selects the in-place variants. ForwardBatch then consumes the
	// input slices and requires power-of-two lengths; InverseBatch consumes
	// the transforms.
	InPlace bool
}

func (o BatchOptions) wavelet() Wavelet {
	if o.Wavelet == nil {
		return NewHaar()
	}

	return o.Wavelet
}

func (o BatchOptions) limit() int {
	if o.Workers < 1 {
		return runtime.GOMAXPROCS(0)
	}

	return o.Workers
}

// ForwardBatch transforms independent signals concurrently. Result i
// belongs to signals[i]. The first failure cancels the remaining work and
// is returned wrapped with the index of the failing signal.
func ForwardBatch(ctx context.Context, signals [][]float64, opts BatchOptions) ([]*Transform, error) {
	results := make([]*Transform, len(signals))
	w := opts.wavelet()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.limit())

	for i, signal := range signals {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var (
				t   *Transform
				err error
			)

			if opts.InPlace {
				t, err = DWTInPlaceWith(w, signal)
			} else {
				t, err = DWTWith(w, signal)
			}

			if err != nil {
				return fmt.Errorf("signal %d: %w", i, err)
			}

			results[i] = t

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// InverseBatch inverts independent transforms concurrently. Result i
// belongs to transforms[i]. BatchOptions.Wavelet is ignored: each Transform
// remembers its own family.
func InverseBatch(ctx context.Context, transforms []*Transform, opts BatchOptions) ([][]float64, error) {
	results := make([][]float64, len(transforms))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.limit())

	for i, t := range transforms {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			var (
				signal []float64
				err    error
			)

			if opts.InPlace {
				signal, err = t.InvertInPlace()
			} else {
				signal, err = t.Invert()
			}

			if err != nil {
				return fmt.Errorf("transform %d: %w", i, err)
			}

			results[i] = signal

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
