//go:build amd64

package pulse

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL:
		currentLevel = DispatchAVX512
		currentWidth = 64
		currentName = "avx512"
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
	default:
		// SSE2 is baseline for all amd64 CPUs.
		currentLevel = DispatchSSE2
		currentWidth = 16
		currentName = "sse2"
	}
}
