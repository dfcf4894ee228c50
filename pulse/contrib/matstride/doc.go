// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

// Package matstride provides strided element-wise matrix kernels.
//
// All kernels operate on flat slices holding an M x N matrix whose rows
// start every stride elements. A stride is the width of the underlying
// allocation, so a kernel over a submatrix of a larger matrix is just a
// call with stride > N. The strided addition, for example, is an
// optimized version of:
//
//	for m := 0; m < M; m++ {
//	    for n := 0; n < N; n++ {
//	        dst[m*strideDst+n] = a[m*strideA+n] + b[m*strideB+n]
//	    }
//	}
//
// Every operation has three layers:
//
//   - a scalar reference row body, used when pulse.CurrentLevel() is
//     DispatchScalar (or PULSE_NO_SIMD is set),
//   - an unrolled row body processing four elements per iteration with a
//     two-element block and a single-element remainder,
//   - a Parallel* variant that partitions rows across a workerpool.Pool
//     with the interleaved core-id scheme: core c handles rows c, c+nPE,
//     c+2nPE, ...
//
// Typed non-generic exports (AddStrideInt8 and friends) are generated by
// cmd/pulsegen into z_typed.go.
package matstride

//go:generate go run ../../../cmd/pulsegen -output z_typed.go
