// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import (
	"math/rand"
	"testing"

	"github.com/pulsedsp/go-pulse/pulse/contrib/workerpool"
)

func TestParallelMatMulTrans(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	// 80^3 ops is above MinParallelOps, so the Fork path runs.
	const m, n, o = 80, 80, 80
	r := rand.New(rand.NewSource(30))
	a := make([]float32, m*n)
	b := make([]float32, o*n)
	for i := range a {
		a[i] = r.Float32()*2 - 1
	}
	for i := range b {
		b[i] = r.Float32()*2 - 1
	}

	want := make([]float32, m*o)
	matMulTransScalar(a, b, want, m, n, o)

	for _, nPE := range []int{2, 4, 7, 100} {
		got := make([]float32, m*o)
		ParallelMatMulTrans(pool, a, b, got, m, n, o, nPE)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("nPE=%d: c[%d] = %v, want %v", nPE, i, got[i], want[i])
			}
		}
	}
}

func TestParallelMatMulTransInt16(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	const m, n, o = 80, 80, 80
	r := rand.New(rand.NewSource(31))
	a := make([]int16, m*n)
	b := make([]int16, o*n)
	for i := range a {
		a[i] = int16(r.Intn(2001) - 1000)
	}
	for i := range b {
		b[i] = int16(r.Intn(2001) - 1000)
	}

	want := make([]int32, m*o)
	matMulTransWiden(a, b, want, m, n, o)

	got := make([]int32, m*o)
	ParallelMatMulTransInt16(pool, a, b, got, m, n, o, 4)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("c[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestParallelMatMulTransSmallSerial(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	// Below MinParallelOps: still correct via the serial path.
	a := []float32{1, 2, 3, 4}
	b := []float32{5, 6, 7, 8}
	got := make([]float32, 4)
	ParallelMatMulTrans(pool, a, b, got, 2, 2, 2, 4)

	want := []float32{17, 23, 39, 53}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("c[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParallelMatMul(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	const m, n, k = 80, 80, 80
	r := rand.New(rand.NewSource(32))
	a := make([]float32, m*k)
	b := make([]float32, k*n)
	for i := range a {
		a[i] = r.Float32()*2 - 1
	}
	for i := range b {
		b[i] = r.Float32()*2 - 1
	}

	want := make([]float32, m*n)
	MatMul(a, b, want, m, n, k)

	got := make([]float32, m*n)
	ParallelMatMul(pool, a, b, got, m, n, k)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("c[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParallelMatMulNilPool(t *testing.T) {
	const m, n, k = 70, 70, 70
	r := rand.New(rand.NewSource(33))
	a := make([]float32, m*k)
	b := make([]float32, k*n)
	for i := range a {
		a[i] = r.Float32()
	}
	for i := range b {
		b[i] = r.Float32()
	}

	want := make([]float32, m*n)
	MatMul(a, b, want, m, n, k)

	got := make([]float32, m*n)
	ParallelMatMul(nil, a, b, got, m, n, k)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("c[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
