// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Provide the arithmetic surface (scalar and vector element-wise ops, dot product).
//   - Route every loop through two private kernels (ewScalar, ewBinary) so each
//     public operation is a one-liner with a single, tested loop behind it.
//
// Determinism & Performance:
//   - Fixed loop order 0..n-1 over the physical buffer.
//   - Exactly one allocation (the output) per element-wise call; Dot allocates nothing.
//   - Operands are never mutated; results keep the receiver's start index.

package vector

import "fmt"

const (
	ctxAdd = "Add"
	ctxSub = "Sub"
	ctxDot = "Dot"
)

// binaryErrorf tags a binary-operation failure with both operand sizes.
func binaryErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Vector.%s(%d,%d): %w", method, a, b, err)
}

// ewScalar returns out[i] = f(v[i]).
func ewScalar[T Element](v *Vector[T], f func(T) T) *Vector[T] {
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = f(x)
	}

	return &Vector[T]{start: v.start, data: out}
}

// ewBinary returns out[i] = f(a[i], b[i]) after validating b and the sizes.
func ewBinary[T Element](method string, a, b *Vector[T], f func(T, T) T) (*Vector[T], error) {
	if b == nil {
		return nil, fmt.Errorf("Vector.%s: %w", method, ErrNilVector)
	}
	if err := ValidateSameSize(len(a.data), len(b.data)); err != nil {
		return nil, binaryErrorf(method, len(a.data), len(b.data), err)
	}
	out := make([]T, len(a.data))
	for i := range a.data {
		out[i] = f(a.data[i], b.data[i])
	}

	return &Vector[T]{start: a.start, data: out}, nil
}

// AddScalar returns a new Vector with x added to every element.
func (v *Vector[T]) AddScalar(x T) *Vector[T] {
	return ewScalar(v, func(e T) T { return e + x })
}

// SubScalar returns a new Vector with x subtracted from every element.
func (v *Vector[T]) SubScalar(x T) *Vector[T] {
	return ewScalar(v, func(e T) T { return e - x })
}

// MulScalar returns a new Vector with every element multiplied by x.
func (v *Vector[T]) MulScalar(x T) *Vector[T] {
	return ewScalar(v, func(e T) T { return e * x })
}

// Add returns the element-wise sum v + other.
//
// Errors:
//   - ErrSizeMismatch when Size() differs.
//   - ErrNilVector when other is nil.
func (v *Vector[T]) Add(other *Vector[T]) (*Vector[T], error) {
	return ewBinary(ctxAdd, v, other, func(a, b T) T { return a + b })
}

// Sub returns the element-wise difference v - other.
//
// Errors:
//   - ErrSizeMismatch when Size() differs.
//   - ErrNilVector when other is nil.
func (v *Vector[T]) Sub(other *Vector[T]) (*Vector[T], error) {
	return ewBinary(ctxSub, v, other, func(a, b T) T { return a - b })
}

// Dot returns sum_i v[i]*other[i].
// Start indices are not compared; elements are paired by position.
//
// Errors:
//   - ErrSizeMismatch when Size() differs.
//   - ErrNilVector when other is nil.
func (v *Vector[T]) Dot(other *Vector[T]) (T, error) {
	var sum T
	if other == nil {
		return sum, fmt.Errorf("Vector.%s: %w", ctxDot, ErrNilVector)
	}
	if err := ValidateSameSize(len(v.data), len(other.data)); err != nil {
		return sum, binaryErrorf(ctxDot, len(v.data), len(other.data), err)
	}
	for i := range v.data {
		sum += v.data[i] * other.data[i]
	}

	return sum, nil
}
