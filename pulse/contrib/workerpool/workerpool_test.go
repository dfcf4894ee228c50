// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestFork(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	nPE := 4
	seen := make([]atomic.Int32, nPE)

	pool.Fork(nPE, func(core int) {
		seen[core].Add(1)
	})

	for core := 0; core < nPE; core++ {
		if got := seen[core].Load(); got != 1 {
			t.Errorf("core %d ran %d times, want 1", core, got)
		}
	}
}

func TestForkInterleavedPartition(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	// The kernels rely on every row being covered exactly once by the
	// core-id striding scheme.
	const m, nPE = 37, 4
	covered := make([]atomic.Int32, m)

	pool.Fork(nPE, func(core int) {
		for r := core; r < m; r += nPE {
			covered[r].Add(1)
		}
	})

	for r := 0; r < m; r++ {
		if got := covered[r].Load(); got != 1 {
			t.Errorf("row %d covered %d times, want 1", r, got)
		}
	}
}

func TestForkMoreCoresThanWorkers(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	nPE := 9
	var count atomic.Int32
	pool.Fork(nPE, func(core int) {
		count.Add(1)
	})

	if count.Load() != int32(nPE) {
		t.Errorf("count = %d, want %d", count.Load(), nPE)
	}
}

func TestForkSingleCore(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var ran bool
	pool.Fork(1, func(core int) {
		if core != 0 {
			t.Errorf("core = %d, want 0", core)
		}
		ran = true
	})
	if !ran {
		t.Error("Fork(1) did not run")
	}
}

func TestForkZero(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	pool.Fork(0, func(core int) {
		t.Error("Fork(0) should not call fn")
	})
}

func TestForkClosedPool(t *testing.T) {
	pool := New(2)
	pool.Close()

	var count atomic.Int32
	pool.Fork(3, func(core int) {
		count.Add(1)
	})
	if count.Load() != 3 {
		t.Errorf("count = %d, want 3 (sequential fallback)", count.Load())
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// n smaller than workers
	n := 3
	var count atomic.Int32

	pool.ParallelFor(n, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})

	if called {
		t.Error("ParallelFor with n=0 should not call fn")
	}
}

func TestParallelForAtomicBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	// Batch count not a multiple of workers, last batch short.
	const n, batchSize = 103, 10
	covered := make([]atomic.Int32, n)

	pool.ParallelForAtomicBatched(n, batchSize, func(start, end int) {
		if end-start > batchSize {
			t.Errorf("batch [%d,%d) longer than %d", start, end, batchSize)
		}
		for i := start; i < end; i++ {
			covered[i].Add(1)
		}
	})

	for i := 0; i < n; i++ {
		if got := covered[i].Load(); got != 1 {
			t.Errorf("index %d covered %d times, want 1", i, got)
		}
	}
}

func TestParallelForAtomicBatchedBatchSizes(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	const n = 57
	for _, batchSize := range []int{0, 1, 7, n, n * 2} {
		var count atomic.Int32
		pool.ParallelForAtomicBatched(n, batchSize, func(start, end int) {
			count.Add(int32(end - start))
		})
		if count.Load() != n {
			t.Errorf("batchSize=%d: covered %d indices, want %d", batchSize, count.Load(), n)
		}
	}
}

func TestParallelForAtomicBatchedClosedPool(t *testing.T) {
	pool := New(2)
	pool.Close()

	var count atomic.Int32
	pool.ParallelForAtomicBatched(20, 4, func(start, end int) {
		count.Add(int32(end - start))
	})
	if count.Load() != 20 {
		t.Errorf("count = %d, want 20 (sequential fallback)", count.Load())
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()
}
