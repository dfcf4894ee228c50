// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import "github.com/pulsedsp/go-pulse/pulse"

// dotInts are the element widths with a widening int32 accumulator.
type dotInts interface {
	~int8 | ~int16 | ~int32
}

// MatMulTrans computes C = A * Bᵀ where:
//   - A is M x N (row-major)
//   - B is O x N (row-major, i.e. already transposed)
//   - C is M x O (row-major)
//
// C[i,j] = Σ A[i,p] * B[j,p] for p in 0..N-1.
func MatMulTrans[T pulse.Floats](a, b, c []T, m, n, o int) {
	if m <= 0 || n <= 0 || o <= 0 {
		return
	}
	checkMulTrans(len(a), len(b), len(c), m, n, o)

	if pulse.CurrentLevel() == pulse.DispatchScalar {
		matMulTransScalar(a, b, c, m, n, o)
		return
	}
	baseMatMulTrans(a, b, c, m, n, o)
}

// matMulTransScalar is the pure reference implementation. It is also the
// shape the unrolled kernel must agree with in tests.
func matMulTransScalar[T pulse.Floats](a, b, c []T, m, n, o int) {
	for i := 0; i < m; i++ {
		for j := 0; j < o; j++ {
			var sum T
			for p := 0; p < n; p++ {
				sum += a[i*n+p] * b[j*n+p]
			}
			c[i*o+j] = sum
		}
	}
}

// baseMatMulTrans is the 2x2-blocked kernel: two rows of A against two
// rows of B with four accumulators live across the full inner loop, which
// halves the loads per multiply relative to the scalar version.
func baseMatMulTrans[T pulse.Floats](a, b, c []T, m, n, o int) {
	var i int
	for i = 0; i+2 <= m; i += 2 {
		a0 := a[i*n:]
		a1 := a[(i+1)*n:]

		var j int
		for j = 0; j+2 <= o; j += 2 {
			b0 := b[j*n:]
			b1 := b[(j+1)*n:]

			var s00, s01, s10, s11 T
			for p := 0; p < n; p++ {
				x0, x1 := a0[p], a1[p]
				y0, y1 := b0[p], b1[p]
				s00 += x0 * y0
				s01 += x0 * y1
				s10 += x1 * y0
				s11 += x1 * y1
			}
			c[i*o+j] = s00
			c[i*o+j+1] = s01
			c[(i+1)*o+j] = s10
			c[(i+1)*o+j+1] = s11
		}

		// Remainder column
		if j < o {
			bj := b[j*n:]
			var s0, s1 T
			for p := 0; p < n; p++ {
				s0 += a0[p] * bj[p]
				s1 += a1[p] * bj[p]
			}
			c[i*o+j] = s0
			c[(i+1)*o+j] = s1
		}
	}

	// Remainder row
	if i < m {
		ai := a[i*n:]
		for j := 0; j < o; j++ {
			bj := b[j*n:]
			var sum T
			for p := 0; p < n; p++ {
				sum += ai[p] * bj[p]
			}
			c[i*o+j] = sum
		}
	}
}

// matMulTransWiden is the integer kernel: elements of width T multiply
// into an int32 accumulator, 2x2-blocked like the float version.
func matMulTransWiden[T dotInts](a, b []T, c []int32, m, n, o int) {
	var i int
	for i = 0; i+2 <= m; i += 2 {
		a0 := a[i*n:]
		a1 := a[(i+1)*n:]

		var j int
		for j = 0; j+2 <= o; j += 2 {
			b0 := b[j*n:]
			b1 := b[(j+1)*n:]

			var s00, s01, s10, s11 int32
			for p := 0; p < n; p++ {
				x0, x1 := int32(a0[p]), int32(a1[p])
				y0, y1 := int32(b0[p]), int32(b1[p])
				s00 += x0 * y0
				s01 += x0 * y1
				s10 += x1 * y0
				s11 += x1 * y1
			}
			c[i*o+j] = s00
			c[i*o+j+1] = s01
			c[(i+1)*o+j] = s10
			c[(i+1)*o+j+1] = s11
		}

		if j < o {
			bj := b[j*n:]
			var s0, s1 int32
			for p := 0; p < n; p++ {
				s0 += int32(a0[p]) * int32(bj[p])
				s1 += int32(a1[p]) * int32(bj[p])
			}
			c[i*o+j] = s0
			c[(i+1)*o+j] = s1
		}
	}

	if i < m {
		ai := a[i*n:]
		for j := 0; j < o; j++ {
			bj := b[j*n:]
			var sum int32
			for p := 0; p < n; p++ {
				sum += int32(ai[p]) * int32(bj[p])
			}
			c[i*o+j] = sum
		}
	}
}

// MatMulTransInt8 computes C = A * Bᵀ for int8 inputs with an int32
// accumulator and int32 output.
func MatMulTransInt8(a, b []int8, c []int32, m, n, o int) {
	if m <= 0 || n <= 0 || o <= 0 {
		return
	}
	checkMulTrans(len(a), len(b), len(c), m, n, o)
	matMulTransWiden(a, b, c, m, n, o)
}

// MatMulTransInt16 computes C = A * Bᵀ for int16 inputs with an int32
// accumulator and int32 output.
func MatMulTransInt16(a, b []int16, c []int32, m, n, o int) {
	if m <= 0 || n <= 0 || o <= 0 {
		return
	}
	checkMulTrans(len(a), len(b), len(c), m, n, o)
	matMulTransWiden(a, b, c, m, n, o)
}

// MatMulTransInt32 computes C = A * Bᵀ for int32 inputs. The accumulator
// is also int32, so large products wrap.
func MatMulTransInt32(a, b, c []int32, m, n, o int) {
	if m <= 0 || n <= 0 || o <= 0 {
		return
	}
	checkMulTrans(len(a), len(b), len(c), m, n, o)
	matMulTransWiden(a, b, c, m, n, o)
}

func checkMulTrans(lenA, lenB, lenC, m, n, o int) {
	if lenA < m*n {
		panic("matmul: A slice too short")
	}
	if lenB < o*n {
		panic("matmul: B slice too short")
	}
	if lenC < m*o {
		panic("matmul: C slice too short")
	}
}
