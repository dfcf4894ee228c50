// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

package matstride

import "github.com/pulsedsp/go-pulse/pulse"

// FillStride sets every element of a strided m x n matrix to value.
// Row padding is left untouched. Panics if the slice is too short or the
// stride is smaller than n. Zero m or n is a no-op.
func FillStride[T pulse.Lanes](dst []T, m, n, stride int, value T) {
	if m <= 0 || n <= 0 {
		return
	}
	checkStrided("dst", dst, m, n, stride)

	for r := 0; r < m; r++ {
		row := dst[r*stride : r*stride+n]
		for i := range row {
			row[i] = value
		}
	}
}

// IdentityStride writes an n x n identity matrix into a strided buffer:
// zeros everywhere, ones on the diagonal. Panics if the slice is too
// short or the stride is smaller than n.
func IdentityStride[T pulse.Lanes](dst []T, n, stride int) {
	identityStride(dst, n, stride, T(1))
}

// IdentityStrideQ writes an n x n fixed-point identity matrix into a
// strided buffer. The diagonal elements are 1 << fracBits, the unit value
// of a Q-format number with fracBits fractional bits.
func IdentityStrideQ[T pulse.SignedInts](dst []T, n, stride, fracBits int) {
	identityStride(dst, n, stride, T(1)<<fracBits)
}

func identityStride[T pulse.Lanes](dst []T, n, stride int, one T) {
	if n <= 0 {
		return
	}
	checkStrided("dst", dst, n, n, stride)

	for r := 0; r < n; r++ {
		row := dst[r*stride : r*stride+n]
		for i := range row {
			row[i] = 0
		}
		row[r] = one
	}
}
