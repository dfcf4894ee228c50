// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

// Package matmul provides matrix multiplication kernels.
//
// Two layouts are supported:
//
//   - MatMulTrans: C = A * Bᵀ with B stored row-major as O x N, so both
//     the A row and the B row are walked contiguously. This is the layout
//     the original transposed-multiply kernels used, and it is the cheap
//     one for dot-product style inner loops.
//   - MatMul: plain C = A * B with B stored K x N, register-blocked over
//     the J dimension.
//
// Integer kernels accumulate into int32 regardless of the element width,
// matching the original widening-accumulator semantics; overflow behavior
// for int32 inputs is two's-complement wraparound.
//
// Parallel variants partition rows of A: MatMulTrans uses the interleaved
// core-id scheme (core c handles rows c, c+nPE, ...), MatMul hands
// contiguous strips to the pool.
package matmul
