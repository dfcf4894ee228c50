// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import (
	"github.com/pulsedsp/go-pulse/pulse"
	"github.com/pulsedsp/go-pulse/pulse/contrib/workerpool"
)

// Parallel tuning parameters
const (
	// MinParallelOps is the minimum number of multiply-accumulates before
	// parallelizing.
	MinParallelOps = 64 * 64 * 64

	// RowsPerStrip defines how many rows each worker processes at a time
	// in the strip-partitioned variants.
	RowsPerStrip = 64
)

// ParallelMatMulTrans computes C = A * Bᵀ with rows of A partitioned
// across nPE cores of the pool using the interleaved scheme: core c
// handles rows c, c+nPE, c+2nPE, ... A nil pool, nPE <= 1, or a problem
// below MinParallelOps runs serially.
func ParallelMatMulTrans[T pulse.Floats](pool *workerpool.Pool, a, b, c []T, m, n, o, nPE int) {
	if m <= 0 || n <= 0 || o <= 0 {
		return
	}
	checkMulTrans(len(a), len(b), len(c), m, n, o)

	if pool == nil || nPE <= 1 || m*n*o < MinParallelOps {
		MatMulTrans(a, b, c, m, n, o)
		return
	}

	pool.Fork(nPE, func(core int) {
		for i := core; i < m; i += nPE {
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
	})
}

// ParallelMatMulTransInt16 is the int16 variant of ParallelMatMulTrans,
// accumulating into int32.
func ParallelMatMulTransInt16(pool *workerpool.Pool, a, b []int16, c []int32, m, n, o, nPE int) {
	if m <= 0 || n <= 0 || o <= 0 {
		return
	}
	checkMulTrans(len(a), len(b), len(c), m, n, o)

	if pool == nil || nPE <= 1 || m*n*o < MinParallelOps {
		matMulTransWiden(a, b, c, m, n, o)
		return
	}

	pool.Fork(nPE, func(core int) {
		for i := core; i < m; i += nPE {
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
	})
}

// ParallelMatMul computes C = A * B using the pool. Rows are handed out
// in strips of RowsPerStrip via the pool's batched atomic counter, so a
// worker stuck on a slow strip does not hold up the rest; each strip runs
// the blocked MatMul kernel.
func ParallelMatMul[T pulse.Floats](pool *workerpool.Pool, a, b, c []T, m, n, k int) {
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

	if pool == nil || m*n*k < MinParallelOps {
		MatMul(a, b, c, m, n, k)
		return
	}

	pool.ParallelForAtomicBatched(m, RowsPerStrip, func(rowStart, rowEnd int) {
		aStrip := a[rowStart*k : rowEnd*k]
		cStrip := c[rowStart*n : rowEnd*n]
		MatMul(aStrip, b, cStrip, rowEnd-rowStart, n, k)
	})
}
