// Copyright 2026 The go-pulse Authors. SPDX-License-Identifier: Apache-2.0

package pulse

// Mat is a single-channel 2D array with lane-aligned rows. Each row is
// padded to a multiple of the current vector width, so the strided kernels
// can run their unrolled bodies without special row-boundary handling.
//
// A Mat is a convenience wrapper: the kernels in pulse/contrib take flat
// slices plus explicit (rows, cols, stride) arguments, and a Mat simply
// produces those arguments. Views share the parent's buffer and therefore
// carry the parent's stride, which is where non-trivial strides come from.
type Mat[T Lanes] struct {
	data   []T
	rows   int
	cols   int
	stride int // elements per row (includes padding)
}

// NewMat creates a matrix with the specified dimensions.
// Rows are aligned to the current vector width.
func NewMat[T Lanes](rows, cols int) *Mat[T] {
	if rows <= 0 || cols <= 0 {
		return &Mat[T]{}
	}

	lanes := MaxLanes[T]()
	if lanes < 1 {
		lanes = 1
	}

	// Stride rounded up to the vector width.
	stride := ((cols + lanes - 1) / lanes) * lanes

	return &Mat[T]{
		data:   make([]T, stride*rows),
		rows:   rows,
		cols:   cols,
		stride: stride,
	}
}

// MatFromSlice wraps an existing flat buffer as a matrix. The buffer must
// hold at least (rows-1)*stride+cols elements; stride must be >= cols.
func MatFromSlice[T Lanes](data []T, rows, cols, stride int) *Mat[T] {
	if rows <= 0 || cols <= 0 {
		return &Mat[T]{}
	}
	if stride < cols {
		panic("pulse: stride smaller than cols")
	}
	if len(data) < (rows-1)*stride+cols {
		panic("pulse: buffer too short for matrix")
	}
	return &Mat[T]{data: data, rows: rows, cols: cols, stride: stride}
}

// Rows returns the number of rows.
func (m *Mat[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Mat[T]) Cols() int {
	return m.cols
}

// Stride returns the number of elements per row (including padding).
func (m *Mat[T]) Stride() int {
	return m.stride
}

// Data returns the underlying flat buffer.
func (m *Mat[T]) Data() []T {
	return m.data
}

// Row returns a mutable slice for the specified row, including padding.
func (m *Mat[T]) Row(r int) []T {
	if r < 0 || r >= m.rows || m.data == nil {
		return nil
	}
	start := r * m.stride
	end := start + m.stride
	if end > len(m.data) {
		end = len(m.data)
	}
	return m.data[start:end]
}

// RowSlice returns a mutable slice for the specified row,
// limited to the actual width (excluding padding).
func (m *Mat[T]) RowSlice(r int) []T {
	if r < 0 || r >= m.rows || m.data == nil {
		return nil
	}
	start := r * m.stride
	return m.data[start : start+m.cols]
}

// At returns the value at row r, column c.
func (m *Mat[T]) At(r, c int) T {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols || m.data == nil {
		var zero T
		return zero
	}
	return m.data[r*m.stride+c]
}

// Set sets the value at row r, column c.
func (m *Mat[T]) Set(r, c int, value T) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols || m.data == nil {
		return
	}
	m.data[r*m.stride+c] = value
}

// View returns a rows x cols submatrix starting at (r0, c0). The view
// shares the parent's buffer and keeps the parent's stride.
func (m *Mat[T]) View(r0, c0, rows, cols int) *Mat[T] {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 ||
		r0+rows > m.rows || c0+cols > m.cols {
		panic("pulse: view out of range")
	}
	start := r0*m.stride + c0
	return &Mat[T]{
		data:   m.data[start:],
		rows:   rows,
		cols:   cols,
		stride: m.stride,
	}
}
