// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

package matstride

import (
	"github.com/pulsedsp/go-pulse/pulse"
	"github.com/pulsedsp/go-pulse/pulse/contrib/workerpool"
)

// MinParallelElems is the matrix size below which the parallel variants
// run serially. Forking a team costs more than a small matrix is worth.
const MinParallelElems = 64 * 64

// ParallelAddStride is AddStride with rows partitioned across nPE cores
// of the pool: core c processes rows c, c+nPE, c+2nPE, and so on. A nil
// pool, nPE <= 1, or a matrix below MinParallelElems runs serially.
func ParallelAddStride[T pulse.Lanes](pool *workerpool.Pool, a, b, dst []T, m, n, strideA, strideB, strideDst, nPE int) {
	if m <= 0 || n <= 0 {
		return
	}
	checkStrided("a", a, m, n, strideA)
	checkStrided("b", b, m, n, strideB)
	checkStrided("dst", dst, m, n, strideDst)

	if pool == nil || nPE <= 1 || m*n < MinParallelElems {
		AddStride(a, b, dst, m, n, strideA, strideB, strideDst)
		return
	}

	useUnrolled := unrolled()
	pool.Fork(nPE, func(core int) {
		for r := core; r < m; r += nPE {
			if useUnrolled {
				addRow(a[r*strideA:], b[r*strideB:], dst[r*strideDst:], n)
			} else {
				addRowScalar(a[r*strideA:], b[r*strideB:], dst[r*strideDst:], n)
			}
		}
	})
}

// ParallelSubStride is SubStride with the interleaved row partition.
func ParallelSubStride[T pulse.Lanes](pool *workerpool.Pool, a, b, dst []T, m, n, strideA, strideB, strideDst, nPE int) {
	if m <= 0 || n <= 0 {
		return
	}
	checkStrided("a", a, m, n, strideA)
	checkStrided("b", b, m, n, strideB)
	checkStrided("dst", dst, m, n, strideDst)

	if pool == nil || nPE <= 1 || m*n < MinParallelElems {
		SubStride(a, b, dst, m, n, strideA, strideB, strideDst)
		return
	}

	useUnrolled := unrolled()
	pool.Fork(nPE, func(core int) {
		for r := core; r < m; r += nPE {
			if useUnrolled {
				subRow(a[r*strideA:], b[r*strideB:], dst[r*strideDst:], n)
			} else {
				subRowScalar(a[r*strideA:], b[r*strideB:], dst[r*strideDst:], n)
			}
		}
	})
}

// ParallelCopyStride is CopyStride with the interleaved row partition.
func ParallelCopyStride[T pulse.Lanes](pool *workerpool.Pool, src, dst []T, m, n, strideSrc, strideDst, nPE int) {
	if m <= 0 || n <= 0 {
		return
	}
	checkStrided("src", src, m, n, strideSrc)
	checkStrided("dst", dst, m, n, strideDst)

	if pool == nil || nPE <= 1 || m*n < MinParallelElems {
		CopyStride(src, dst, m, n, strideSrc, strideDst)
		return
	}

	pool.Fork(nPE, func(core int) {
		for r := core; r < m; r += nPE {
			copy(dst[r*strideDst:r*strideDst+n], src[r*strideSrc:r*strideSrc+n])
		}
	})
}

// ParallelFillStride is FillStride with the interleaved row partition.
func ParallelFillStride[T pulse.Lanes](pool *workerpool.Pool, dst []T, m, n, stride int, value T, nPE int) {
	if m <= 0 || n <= 0 {
		return
	}
	checkStrided("dst", dst, m, n, stride)

	if pool == nil || nPE <= 1 || m*n < MinParallelElems {
		FillStride(dst, m, n, stride, value)
		return
	}

	pool.Fork(nPE, func(core int) {
		for r := core; r < m; r += nPE {
			row := dst[r*stride : r*stride+n]
			for i := range row {
				row[i] = value
			}
		}
	})
}

// ParallelIdentityStrideQ is IdentityStrideQ with the interleaved row
// partition.
func ParallelIdentityStrideQ[T pulse.SignedInts](pool *workerpool.Pool, dst []T, n, stride, fracBits, nPE int) {
	if n <= 0 {
		return
	}
	checkStrided("dst", dst, n, n, stride)

	if pool == nil || nPE <= 1 || n*n < MinParallelElems {
		IdentityStrideQ[T](dst, n, stride, fracBits)
		return
	}

	one := T(1) << fracBits
	pool.Fork(nPE, func(core int) {
		for r := core; r < n; r += nPE {
			row := dst[r*stride : r*stride+n]
			for i := range row {
				row[i] = 0
			}
			row[r] = one
		}
	})
}
