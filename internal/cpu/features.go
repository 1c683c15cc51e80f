package cpu

import (
	"runtime"
	"sync"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to Haar kernel selection.
type Features struct {
	HasSSE2      bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	ForceGeneric bool
	Architecture string
}

var detectOnce = sync.OnceValue(detectFeaturesImpl)

// DetectFeatures reports the available CPU features for the current process.
// Detection runs once; later calls return the cached result.
func DetectFeatures() Features {
	return detectOnce()
}

func detectFeaturesImpl() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// WideIssue reports whether the core is a 64-bit out-of-order design that
// benefits from unrolled scalar loops. SSE2 and NEON are baseline on such cores.
func (f Features) WideIssue() bool {
	if f.ForceGeneric {
		return false
	}

	switch f.Architecture {
	case "amd64":
		return f.HasSSE2
	case "arm64":
		return f.HasNEON
	default:
		return false
	}
}

// Mask packs the feature flags into a stable bit mask for wisdom keys.
func (f Features) Mask() uint64 {
	var mask uint64

	if f.HasSSE2 {
		mask |= 1 << 0
	}

	if f.HasAVX2 {
		mask |= 1 << 1
	}

	if f.HasAVX512 {
		mask |= 1 << 2
	}

	if f.HasNEON {
		mask |= 1 << 3
	}

	return mask
}
