// Package pulse provides portable strided DSP kernels with runtime CPU dispatch.
//
// The package is the common core for the kernel families under
// pulse/contrib: type constraints, the slice-backed vector used by the
// unrolled kernel bodies, dispatch state, and the lane-aligned Mat
// container. Kernels operate on flat buffers parameterized by dimensions
// and row strides, the same calling convention as the DSP libraries this
// package descends from:
//
//	// dst[m*strideDst+n] = a[m*strideA+n] + b[m*strideB+n]
//	matstride.AddStride(a, b, dst, m, n, strideA, strideB, strideDst)
//
// The unrolled variants process several elements per iteration and fall
// back to a scalar remainder; the parallel variants partition rows across
// a worker pool with an interleaved core-id scheme.
package pulse

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle. It wraps a slice of lane values; the
// unrolled kernels use it together with manual 2x/4x unrolling to express
// the packed-register structure of the original hand-written kernels.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in hot paths.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the pulse.Store function.
func (v Vec[T]) Store(dst []T) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}
