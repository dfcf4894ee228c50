package pulse

import "math"

// This file provides the pure Go lane operations used by the kernel
// packages. They are deliberately small: the kernels in pulse/contrib do
// their own unrolling and stride bookkeeping and reach for these helpers
// only where a whole-vector formulation is clearer than scalar code.

// Load creates a vector by loading data from a slice.
func Load[T Lanes](src []T) Vec[T] {
	n := MaxLanes[T]()
	if len(src) < n {
		n = len(src)
	}
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := len(v.data)
	if len(dst) < n {
		n = len(dst)
	}
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	return Vec[T]{data: data}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// MulAdd returns a*b + c per lane.
func MulAdd[T Lanes](a, b, c Vec[T]) Vec[T] {
	n := len(a.data)
	if len(b.data) < n {
		n = len(b.data)
	}
	if len(c.data) < n {
		n = len(c.data)
	}
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return Vec[T]{data: result}
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for i := 0; i < len(v.data); i++ {
		sum += v.data[i]
	}
	return sum
}

// Sqrt computes the square root of each lane.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i := 0; i < len(v.data); i++ {
		result[i] = T(math.Sqrt(float64(v.data[i])))
	}
	return Vec[T]{data: result}
}
