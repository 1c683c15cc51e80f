package haar

import (
	"sync/atomic"

	"github.com/cwbudde/algo-dwt/internal/cpu"
	"github.com/cwbudde/algo-dwt/internal/dwtypes"
)

// KernelStrategy is re-declared here so callers need a single import.
type KernelStrategy = dwtypes.KernelStrategy

const (
	KernelAuto     = dwtypes.KernelAuto
	KernelGeneric  = dwtypes.KernelGeneric
	KernelUnrolled = dwtypes.KernelUnrolled
)

// unrolledMinSize is the smallest transform for which KernelAuto picks the
// unrolled kernels without wisdom. Below it the tail loop dominates.
const unrolledMinSize = 16

var kernelStrategy atomic.Uint32

// SetKernelStrategy sets the package-wide strategy used when a transform
// has no strategy of its own. KernelAuto restores automatic selection.
func SetKernelStrategy(strategy KernelStrategy) {
	kernelStrategy.Store(uint32(strategy))
}

// GetKernelStrategy returns the package-wide strategy.
func GetKernelStrategy() KernelStrategy {
	return KernelStrategy(kernelStrategy.Load())
}

// ResolveStrategy returns the concrete strategy for an n-point transform.
//
// Precedence: the explicit override, the package-wide strategy, recorded
// wisdom for (n, CPU features), then a CPU-feature heuristic.
func ResolveStrategy(n int, override KernelStrategy, features cpu.Features) KernelStrategy {
	strategy := override
	if strategy == KernelAuto {
		strategy = GetKernelStrategy()
	}

	if strategy != KernelAuto {
		return strategy
	}

	if features.ForceGeneric {
		return KernelGeneric
	}

	if recorded, ok := DefaultWisdom.LookupStrategy(n, features.Mask()); ok {
		return recorded
	}

	if n >= unrolledMinSize && features.WideIssue() {
		return KernelUnrolled
	}

	return KernelGeneric
}

// SelectKernels returns the kernels for a concrete strategy.
// KernelAuto and unknown values fall back to the generic kernels.
func SelectKernels(strategy KernelStrategy) Kernels {
	if strategy == KernelUnrolled {
		return unrolledKernels
	}

	return genericKernels
}

// KernelsFor resolves and selects kernels for an n-point transform on the
// current CPU.
func KernelsFor(n int, override KernelStrategy) Kernels {
	return SelectKernels(ResolveStrategy(n, override, cpu.DetectFeatures()))
}
