// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

package matstride

import "github.com/pulsedsp/go-pulse/pulse"

// AddStride computes dst[m,n] = a[m,n] + b[m,n] for an m x n matrix where
// each operand has its own row stride. Panics if any slice is too short
// or any stride is smaller than n. Zero m or n is a no-op.
func AddStride[T pulse.Lanes](a, b, dst []T, m, n, strideA, strideB, strideDst int) {
	if m <= 0 || n <= 0 {
		return
	}
	checkStrided("a", a, m, n, strideA)
	checkStrided("b", b, m, n, strideB)
	checkStrided("dst", dst, m, n, strideDst)

	if !unrolled() {
		for r := 0; r < m; r++ {
			addRowScalar(a[r*strideA:], b[r*strideB:], dst[r*strideDst:], n)
		}
		return
	}
	for r := 0; r < m; r++ {
		addRow(a[r*strideA:], b[r*strideB:], dst[r*strideDst:], n)
	}
}

// addRow is the unrolled row body: four elements per iteration, then a
// two-element block, then a single remainder element.
func addRow[T pulse.Lanes](a, b, dst []T, n int) {
	nIter := n >> 2
	nBlk := n & 0b10
	nRem := n & 0b01

	i := 0
	for loopi := 0; loopi < nIter; loopi++ {
		a0, a1, a2, a3 := a[i], a[i+1], a[i+2], a[i+3]
		b0, b1, b2, b3 := b[i], b[i+1], b[i+2], b[i+3]
		dst[i] = a0 + b0
		dst[i+1] = a1 + b1
		dst[i+2] = a2 + b2
		dst[i+3] = a3 + b3
		i += 4
	}
	if nBlk != 0 {
		dst[i] = a[i] + b[i]
		dst[i+1] = a[i+1] + b[i+1]
		i += 2
	}
	if nRem != 0 {
		dst[i] = a[i] + b[i]
	}
}

func addRowScalar[T pulse.Lanes](a, b, dst []T, n int) {
	for i := 0; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}
