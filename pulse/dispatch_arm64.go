//go:build arm64

package pulse

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available; it is part of the
	// ARMv8-A base architecture. We still consult the cpu package so that
	// wider SVE lane geometry can slot in here later.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
		currentName = "neon"
	} else {
		setScalarMode()
	}
}
