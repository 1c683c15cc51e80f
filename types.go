package algodwt

import "github.com/cwbudde/algo-dwt/internal/dwtypes"

// Real is a type constraint for sample types accepted by the padding
// transforms. The canonical definition is in internal/dwtypes.
type Real = dwtypes.Real

// KernelStrategy controls which pair kernels Haar transforms run.
// The canonical definition is in internal/dwtypes.
type KernelStrategy = dwtypes.KernelStrategy

const (
	// KernelAuto picks kernels from wisdom, then from CPU features.
	KernelAuto = dwtypes.KernelAuto
	// KernelGeneric processes one pair per loop iteration.
	KernelGeneric = dwtypes.KernelGeneric
	// KernelUnrolled processes four pairs per loop iteration.
	KernelUnrolled = dwtypes.KernelUnrolled
)
