package dwtypes

// KernelStrategy controls which pair kernels a Haar transform runs.
type KernelStrategy uint32

const (
	KernelAuto     KernelStrategy = iota
	KernelGeneric                 // One pair per loop iteration
	KernelUnrolled                // Four pairs per loop iteration
)

// String returns a human-readable name for the strategy.
func (s KernelStrategy) String() string {
	switch s {
	case KernelAuto:
		return "auto"
	case KernelGeneric:
		return "generic"
	case KernelUnrolled:
		return "unrolled"
	default:
		return "unknown"
	}
}

// ParseKernelStrategy is the inverse of String.
func ParseKernelStrategy(name string) (KernelStrategy, bool) {
	switch name {
	case "auto":
		return KernelAuto, true
	case "generic":
		return KernelGeneric, true
	case "unrolled":
		return KernelUnrolled, true
	default:
		return KernelAuto, false
	}
}
