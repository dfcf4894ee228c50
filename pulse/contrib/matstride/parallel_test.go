// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

package matstride

import (
	"math/rand"
	"testing"

	"github.com/pulsedsp/go-pulse/pulse/contrib/workerpool"
)

// Parallel variants must agree with the serial kernels for every nPE,
// including nPE larger than the row count.

func TestParallelAddStride(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	// Above MinParallelElems so the Fork path actually runs.
	const m, n = 96, 96
	r := rand.New(rand.NewSource(10))
	a := randInts(m*n, r)
	b := randInts(m*n, r)

	want := make([]int32, m*n)
	AddStride(a, b, want, m, n, n, n, n)

	for _, nPE := range []int{1, 2, 3, 4, 8, 100} {
		got := make([]int32, m*n)
		ParallelAddStride(pool, a, b, got, m, n, n, n, n, nPE)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("nPE=%d: got[%d] = %d, want %d", nPE, i, got[i], want[i])
			}
		}
	}
}

func TestParallelSubStride(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	const m, n = 96, 96
	r := rand.New(rand.NewSource(11))
	a := randFloats(m*n, r)
	b := randFloats(m*n, r)

	want := make([]float32, m*n)
	SubStride(a, b, want, m, n, n, n, n)

	got := make([]float32, m*n)
	ParallelSubStride(pool, a, b, got, m, n, n, n, n, 4)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParallelCopyStride(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	const m, n, ss, sd = 96, 90, 96, 93
	r := rand.New(rand.NewSource(12))
	src := randInts(m*ss, r)

	got := make([]int32, m*sd)
	ParallelCopyStride(pool, src, got, m, n, ss, sd, 4)

	for rr := 0; rr < m; rr++ {
		for c := 0; c < n; c++ {
			if got[rr*sd+c] != src[rr*ss+c] {
				t.Fatalf("got[%d,%d] = %d, want %d", rr, c, got[rr*sd+c], src[rr*ss+c])
			}
		}
	}
}

func TestParallelFillStride(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	const m, n, stride = 96, 70, 72
	got := make([]int32, m*stride)
	ParallelFillStride(pool, got, m, n, stride, 5, 4)

	for rr := 0; rr < m; rr++ {
		for c := 0; c < n; c++ {
			if got[rr*stride+c] != 5 {
				t.Fatalf("got[%d,%d] = %d, want 5", rr, c, got[rr*stride+c])
			}
		}
	}
}

func TestParallelIdentityStrideQ(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	const n, stride, fracBits = 96, 100, 8
	got := make([]int32, n*stride)
	for i := range got {
		got[i] = -3
	}
	ParallelIdentityStrideQ(pool, got, n, stride, fracBits, 4)

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			var want int32
			if r == c {
				want = 1 << fracBits
			}
			if got[r*stride+c] != want {
				t.Fatalf("got[%d,%d] = %d, want %d", r, c, got[r*stride+c], want)
			}
		}
	}
}

func TestParallelSmallFallsBackSerial(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	// Below MinParallelElems: result must still be correct.
	a := []int32{1, 2, 3, 4}
	b := []int32{5, 6, 7, 8}
	got := make([]int32, 4)
	ParallelAddStride(pool, a, b, got, 2, 2, 2, 2, 2, 4)

	want := []int32{6, 8, 10, 12}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestParallelNilPool(t *testing.T) {
	const m, n = 96, 96
	r := rand.New(rand.NewSource(13))
	a := randInts(m*n, r)
	b := randInts(m*n, r)

	want := make([]int32, m*n)
	AddStride(a, b, want, m, n, n, n, n)

	got := make([]int32, m*n)
	ParallelAddStride(nil, a, b, got, m, n, n, n, n, 4)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
