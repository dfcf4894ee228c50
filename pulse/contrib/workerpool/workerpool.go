// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for the
// parallel kernel variants. Unlike per-call goroutine spawning, a Pool is
// created once and reused across many operations, eliminating allocation
// and spawn overhead.
//
// The Pool plays the role of the fixed core cluster in the hardware this
// library descends from: Fork runs a kernel body once per core id, and the
// parallel kernels partition rows with the interleaved core-id scheme.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.Fork(4, func(core int) {
//	    // rows core, core+4, core+8, ...
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single parallel operation to execute.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	// Spawn persistent workers
	for w := 0; w < numWorkers; w++ {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe. Close must not race in-flight
// Fork or ParallelFor calls: wait for outstanding operations to return
// before closing.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Fork runs fn once for every core id in [0, nPE) and blocks until all
// invocations return. It is the software analogue of a team fork followed
// by a barrier: each invocation sees a stable core id and nPE, and the
// kernels derive their row partition from those two numbers.
//
// If nPE <= 1 or the pool is closed, fn runs sequentially on the caller.
func (p *Pool) Fork(nPE int, fn func(core int)) {
	if nPE <= 0 {
		return
	}

	if nPE == 1 || p.closed.Load() {
		for core := 0; core < nPE; core++ {
			fn(core)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(nPE)

	for core := 0; core < nPE; core++ {
		core := core
		p.workC <- workItem{
			fn: func() {
				fn(core)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each worker processes a contiguous range of indices.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		fn(0, n)
		return
	}

	// Don't use more workers than items
	workers := min(p.numWorkers, n)

	// For very small n, just run sequentially
	if workers == 1 {
		fn(0, n)
		return
	}

	// Calculate chunk size (ensure all items are covered)
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			// No work for this worker
			wg.Done()
			continue
		}

		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelForAtomicBatched executes fn over [0, n) in batches of batchSize
// indices handed out by an atomic counter. Workers that finish early grab
// the next batch, so uneven batches balance themselves, while the batch
// granularity keeps the atomic traffic low.
//
// fn receives (start, end) and processes [start, end). Blocks until all
// work completes. A closed pool runs fn(0, n) on the caller.
func (p *Pool) ParallelForAtomicBatched(n int, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if batchSize <= 0 {
		batchSize = 1
	}

	if p.closed.Load() {
		fn(0, n)
		return
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)

	if workers == 1 {
		fn(0, n)
		return
	}

	var nextBatch atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		p.workC <- workItem{
			fn: func() {
				for {
					batch := int(nextBatch.Add(1)) - 1
					start := batch * batchSize
					if start >= n {
						return
					}
					end := min(start+batchSize, n)
					fn(start, end)
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
