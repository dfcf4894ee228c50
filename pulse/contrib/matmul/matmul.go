// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import "github.com/pulsedsp/go-pulse/pulse"

// MatMul computes C = A * B where:
//   - A is M x K (row-major)
//   - B is K x N (row-major)
//   - C is M x N (row-major)
//
// Uses register-blocked accumulators: the J dimension is tiled into
// groups of four vector widths, with accumulators held across the full
// K loop. This eliminates K-1 redundant loads and stores of C per
// element.
func MatMul[T pulse.Floats](a, b, c []T, m, n, k int) {
	if m <= 0 || n <= 0 || k <= 0 {
		return
	}
	if len(a) < m*k {
		panic("matmul: A slice too short")
	}
	if len(b) < k*n {
		panic("matmul: B slice too short")
	}
	if len(c) < m*n {
		panic("matmul: C slice too short")
	}

	lanes := pulse.MaxLanes[T]()
	tileJ := 4 * lanes

	// For each row i of C
	for i := 0; i < m; i++ {
		cRow := c[i*n : (i+1)*n]

		// Tiled J loop, four accumulators live across the full K loop
		var j int
		for j = 0; j+tileJ <= n; j += tileJ {
			acc0 := pulse.Zero[T]()
			acc1 := pulse.Zero[T]()
			acc2 := pulse.Zero[T]()
			acc3 := pulse.Zero[T]()
			for p := 0; p < k; p++ {
				vA := pulse.Set(a[i*k+p])
				bRow := b[p*n:]
				acc0 = pulse.MulAdd(vA, pulse.Load(bRow[j:]), acc0)
				acc1 = pulse.MulAdd(vA, pulse.Load(bRow[j+lanes:]), acc1)
				acc2 = pulse.MulAdd(vA, pulse.Load(bRow[j+2*lanes:]), acc2)
				acc3 = pulse.MulAdd(vA, pulse.Load(bRow[j+3*lanes:]), acc3)
			}
			pulse.Store(acc0, cRow[j:])
			pulse.Store(acc1, cRow[j+lanes:])
			pulse.Store(acc2, cRow[j+2*lanes:])
			pulse.Store(acc3, cRow[j+3*lanes:])
		}

		// Remainder: single accumulator per remaining vector strip
		for ; j+lanes <= n; j += lanes {
			acc := pulse.Zero[T]()
			for p := 0; p < k; p++ {
				vA := pulse.Set(a[i*k+p])
				acc = pulse.MulAdd(vA, pulse.Load(b[p*n+j:]), acc)
			}
			pulse.Store(acc, cRow[j:])
		}

		// Scalar tail
		for ; j < n; j++ {
			var sum T
			for p := 0; p < k; p++ {
				sum += a[i*k+p] * b[p*n+j]
			}
			cRow[j] = sum
		}
	}
}

// MatMulInt16 computes C = A * B for int16 inputs with an int32
// accumulator and int32 output. A is M x K, B is K x N, C is M x N.
func MatMulInt16(a, b []int16, c []int32, m, n, k int) {
	matMulWiden(a, b, c, m, n, k)
}

// MatMulInt8 computes C = A * B for int8 inputs with an int32 accumulator
// and int32 output.
func MatMulInt8(a, b []int8, c []int32, m, n, k int) {
	matMulWiden(a, b, c, m, n, k)
}

func matMulWiden[T dotInts](a, b []T, c []int32, m, n, k int) {
	if m <= 0 || n <= 0 || k <= 0 {
		return
	}
	if len(a) < m*k {
		panic("matmul: A slice too short")
	}
	if len(b) < k*n {
		panic("matmul: B slice too short")
	}
	if len(c) < m*n {
		panic("matmul: C slice too short")
	}

	for i := range c[:m*n] {
		c[i] = 0
	}

	// i-p-j loop order keeps the B row walk contiguous.
	for i := 0; i < m; i++ {
		for p := 0; p < k; p++ {
			aip := int32(a[i*k+p])
			bRow := b[p*n:]
			cRow := c[i*n:]
			for j := 0; j < n; j++ {
				cRow[j] += aip * int32(bRow[j])
			}
		}
	}
}
