package algodwt

import "github.com/cwbudde/algo-dwt/internal/haar"

// SetKernelStrategy sets the package-wide kernel strategy used by every Haar
// value whose own Strategy is KernelAuto. Pass KernelAuto to restore
// automatic selection.
func SetKernelStrategy(strategy KernelStrategy) {
	haar.SetKernelStrategy(strategy)
}

// GetKernelStrategy returns the package-wide kernel strategy.
func GetKernelStrategy() KernelStrategy {
	return haar.GetKernelStrategy()
}
