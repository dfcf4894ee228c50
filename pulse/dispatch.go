package pulse

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the instruction set the kernels assume.
type DispatchLevel int

const (
	// DispatchScalar indicates pure Go with no unrolled fast paths.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates 128-bit lanes (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates 256-bit lanes.
	DispatchAVX2

	// DispatchAVX512 indicates 512-bit lanes.
	DispatchAVX512

	// DispatchNEON indicates ARM NEON 128-bit lanes.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the lane register width in bytes for the current level.
var currentWidth int

// currentName is the human-readable name of the current level.
var currentName string

// CurrentLevel returns the instruction set level the kernels assume.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the lane register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks if the PULSE_NO_SIMD environment variable is set.
// When set, the kernels use their scalar reference paths regardless of
// CPU capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("PULSE_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of lanes for type T at the current width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - int16: 32/2 = 16 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // keep 16-byte lane geometry even in scalar mode
	currentName = "scalar"
}
