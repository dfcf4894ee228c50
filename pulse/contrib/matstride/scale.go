// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

package matstride

import "github.com/pulsedsp/go-pulse/pulse"

// ScaleStride computes dst[m,n] = src[m,n] * factor for a strided
// floating-point matrix. Panics if a slice is too short or a stride is
// smaller than n. Zero m or n is a no-op.
func ScaleStride[T pulse.Floats](src, dst []T, m, n, strideSrc, strideDst int, factor T) {
	if m <= 0 || n <= 0 {
		return
	}
	checkStrided("src", src, m, n, strideSrc)
	checkStrided("dst", dst, m, n, strideDst)

	if !unrolled() {
		for r := 0; r < m; r++ {
			s, d := src[r*strideSrc:], dst[r*strideDst:]
			for i := 0; i < n; i++ {
				d[i] = s[i] * factor
			}
		}
		return
	}
	for r := 0; r < m; r++ {
		scaleRow(src[r*strideSrc:], dst[r*strideDst:], n, factor)
	}
}

// ScaleStrideQ computes dst[m,n] = (src[m,n] * factor) >> shift for a
// strided fixed-point matrix. The product is taken at the element width,
// matching the original kernels; callers pick shift so the result stays
// in range. Panics if a slice is too short or a stride is smaller than n.
func ScaleStrideQ[T pulse.SignedInts](src, dst []T, m, n, strideSrc, strideDst int, factor T, shift uint) {
	if m <= 0 || n <= 0 {
		return
	}
	checkStrided("src", src, m, n, strideSrc)
	checkStrided("dst", dst, m, n, strideDst)

	for r := 0; r < m; r++ {
		s, d := src[r*strideSrc:], dst[r*strideDst:]
		i := 0
		for ; i+2 <= n; i += 2 {
			d[i] = (s[i] * factor) >> shift
			d[i+1] = (s[i+1] * factor) >> shift
		}
		if i < n {
			d[i] = (s[i] * factor) >> shift
		}
	}
}

func scaleRow[T pulse.Floats](src, dst []T, n int, factor T) {
	nIter := n >> 2
	nBlk := n & 0b10
	nRem := n & 0b01

	i := 0
	for loopi := 0; loopi < nIter; loopi++ {
		s0, s1, s2, s3 := src[i], src[i+1], src[i+2], src[i+3]
		dst[i] = s0 * factor
		dst[i+1] = s1 * factor
		dst[i+2] = s2 * factor
		dst[i+3] = s3 * factor
		i += 4
	}
	if nBlk != 0 {
		dst[i] = src[i] * factor
		dst[i+1] = src[i+1] * factor
		i += 2
	}
	if nRem != 0 {
		dst[i] = src[i] * factor
	}
}
