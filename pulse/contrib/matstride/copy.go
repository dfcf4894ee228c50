// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

package matstride

import "github.com/pulsedsp/go-pulse/pulse"

// CopyStride copies an m x n matrix from src to dst, each with its own
// row stride. Row padding in dst is left untouched. Panics if a slice is
// too short or a stride is smaller than n. Zero m or n is a no-op.
//
// The row body is the builtin copy: the Go runtime's memmove already
// covers what the hand-unrolled load/store pairs did in the original
// kernels.
func CopyStride[T pulse.Lanes](src, dst []T, m, n, strideSrc, strideDst int) {
	if m <= 0 || n <= 0 {
		return
	}
	checkStrided("src", src, m, n, strideSrc)
	checkStrided("dst", dst, m, n, strideDst)

	for r := 0; r < m; r++ {
		copy(dst[r*strideDst:r*strideDst+n], src[r*strideSrc:r*strideSrc+n])
	}
}
