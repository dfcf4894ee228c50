// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

// Package fastmath provides scalar fast-math kernels: Newton-Raphson
// square roots for float32 and restoring square roots for fixed-point
// values.
package fastmath

import "github.com/pulsedsp/go-pulse/pulse"

// newtonIters is the fixed iteration count of the reciprocal-sqrt
// refinement. Not adaptive: the original kernel ran exactly this many
// rounds regardless of input.
const newtonIters = 15

// Sqrt32 computes the square root of x by Newton-Raphson iteration on
// the reciprocal square root, seeded with 1/(2x), followed by a multiply
// with x. Non-positive input returns 0.
//
// The fixed seed targets inputs that are roughly unit-scale; accuracy
// degrades for very small or very large magnitudes, which callers are
// expected to pre-scale away.
func Sqrt32(x float32) float32 {
	if x <= 0 {
		return 0
	}

	y := 1 / (2 * x)
	half := x / 2
	for iter := 0; iter < newtonIters; iter++ {
		y = y * (1.5 - y*y*half)
	}
	return y * x
}

// Rsqrt32 computes 1/sqrt(x) with the same iteration as Sqrt32 but
// without the final multiply. Non-positive input returns 0.
func Rsqrt32(x float32) float32 {
	if x <= 0 {
		return 0
	}

	y := 1 / (2 * x)
	half := x / 2
	for iter := 0; iter < newtonIters; iter++ {
		y = y * (1.5 - y*y*half)
	}
	return y
}

// SqrtQ32 computes the square root of a Q-format fixed-point value with
// fracBits fractional bits, returning a value in the same format.
// Non-positive input returns 0.
func SqrtQ32(x int32, fracBits uint) int32 {
	if x <= 0 {
		return 0
	}
	return int32(isqrt(uint64(x) << fracBits))
}

// SqrtQ16 is SqrtQ32 for 16-bit fixed-point values.
func SqrtQ16(x int16, fracBits uint) int16 {
	if x <= 0 {
		return 0
	}
	return int16(isqrt(uint64(x) << fracBits))
}

// isqrt is the bitwise restoring integer square root.
func isqrt(v uint64) uint64 {
	var res uint64
	bit := uint64(1) << 62
	for bit > v {
		bit >>= 2
	}
	for bit != 0 {
		if v >= res+bit {
			v -= res + bit
			res = (res >> 1) + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	return res
}

// SqrtTransform writes the exact square root of every src element to
// dst, one vector strip at a time. Unlike Sqrt32 this is not an
// approximation; it is the bulk entry point for code that wants
// whole-slice throughput rather than the scalar fast path.
// Slices of different lengths use the minimum length.
func SqrtTransform(src, dst []float32) {
	n := min(len(src), len(dst))
	if n == 0 {
		return
	}

	lanes := pulse.MaxLanes[float32]()

	i := 0
	for ; i+lanes <= n; i += lanes {
		v := pulse.Load(src[i:])
		pulse.Store(pulse.Sqrt(v), dst[i:])
	}

	// Tail via a lane-sized buffer
	if remaining := n - i; remaining > 0 {
		buf := make([]float32, lanes)
		copy(buf, src[i:n])
		v := pulse.Load(buf)
		pulse.Store(pulse.Sqrt(v), buf)
		copy(dst[i:n], buf[:remaining])
	}
}
