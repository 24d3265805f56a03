// SPDX-License-Identifier: MIT

// Package vector - owning storage & safe accessors.
//
// Purpose:
//   - Own a contiguous 0-based buffer and expose it through a logical window
//     [start, start+size) that may begin at any non-negative index.
//   - Guarantee safety at the public surface: Index/At/Set return errors instead of panicking.
//   - Guarantee value semantics: every copy (Clone, Assign, FromSlice) allocates.
//
// Complexity quicksheet:
//   - New: O(n) zero-init; Index/At/Set: O(1); Clone/Assign/Values: O(n); Equal: O(n).

package vector

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxFromSlice = "FromSlice"
	ctxIndex     = "Index"
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxAssign    = "Assign"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// vectorErrorf wraps a sentinel with a uniform Vector context and the offending argument.
func vectorErrorf(method string, arg int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, arg, err)
}

// Vector is an owning 1-D container of Size() elements of T.
//   - start is the first logical index (>= 0).
//   - data is the physical buffer; len(data) is the size (> 0 for any constructed Vector).
//
// The zero value is not usable; construct with New or FromSlice.
type Vector[T Element] struct {
	start int // first valid logical index
	data  []T // exclusively owned storage, len == size
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[int])(nil)

// New creates a Vector of size zero-valued elements.
//
// Implementation:
//   - Stage 1: resolve options (start index, size ceiling).
//   - Stage 2: validate size in (0, max] and start >= 0.
//   - Stage 3: allocate zero-filled storage.
//
// Errors:
//   - ErrInvalidSize when size <= 0 or size > max (MaxVectorSize unless lowered by WithMaxSize).
//   - ErrInvalidStartIndex when WithStartIndex supplied a negative index.
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T Element](size int, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts...)
	if err := ValidateSize(size, o.maxSize); err != nil {
		return nil, vectorErrorf(ctxNew, size, err)
	}
	if err := ValidateStartIndex(o.startIndex); err != nil {
		return nil, vectorErrorf(ctxNew, o.startIndex, err)
	}

	// make() zero-fills deterministically.
	return &Vector[T]{start: o.startIndex, data: make([]T, size)}, nil
}

// FromSlice creates a Vector holding a copy of values; the caller keeps ownership of values.
// The same size and start-index rules as New apply.
func FromSlice[T Element](values []T, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts...)
	if err := ValidateSize(len(values), o.maxSize); err != nil {
		return nil, vectorErrorf(ctxFromSlice, len(values), err)
	}
	if err := ValidateStartIndex(o.startIndex); err != nil {
		return nil, vectorErrorf(ctxFromSlice, o.startIndex, err)
	}
	buf := make([]T, len(values))
	copy(buf, values)

	return &Vector[T]{start: o.startIndex, data: buf}, nil
}

// Size returns the number of elements.
func (v *Vector[T]) Size() int {
	return len(v.data)
}

// StartIndex returns the first valid logical index.
func (v *Vector[T]) StartIndex() int {
	return v.start
}

// Index returns a pointer to the element at logical index k.
// Writes through the pointer mutate the Vector in place; the pointer stays
// valid until the next Assign on this Vector.
//
// Errors:
//   - ErrIndexOutOfRange when k < StartIndex() or k >= StartIndex()+Size().
func (v *Vector[T]) Index(k int) (*T, error) {
	off, err := ValidateIndex(k, v.start, len(v.data))
	if err != nil {
		return nil, vectorErrorf(ctxIndex, k, err)
	}

	return &v.data[off], nil
}

// At returns the element at logical index k.
func (v *Vector[T]) At(k int) (T, error) {
	off, err := ValidateIndex(k, v.start, len(v.data))
	if err != nil {
		var zero T
		return zero, vectorErrorf(ctxAt, k, err)
	}

	return v.data[off], nil
}

// Set stores x at logical index k.
func (v *Vector[T]) Set(k int, x T) error {
	off, err := ValidateIndex(k, v.start, len(v.data))
	if err != nil {
		return vectorErrorf(ctxSet, k, err)
	}
	v.data[off] = x

	return nil
}

// Clone returns a deep copy sharing no storage with v.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	buf := make([]T, len(v.data))
	copy(buf, v.data)

	return &Vector[T]{start: v.start, data: buf}
}

// Assign replaces v's size, start index and contents with an independent copy of other.
//
// Behavior highlights:
//   - Self-assignment is a no-op.
//   - The previous buffer is dropped; pointers obtained from Index before the call
//     no longer refer to v.
//
// Errors:
//   - ErrNilVector when other is nil (v is left unchanged).
func (v *Vector[T]) Assign(other *Vector[T]) error {
	if other == nil {
		return fmt.Errorf("Vector.%s: %w", ctxAssign, ErrNilVector)
	}
	if v == other {
		return nil
	}
	buf := make([]T, len(other.data))
	copy(buf, other.data)
	v.start, v.data = other.start, buf

	return nil
}

// Equal reports whether v and other have the same size, start index and elements.
// A Vector always equals itself; a nil Vector equals only nil.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if v == other {
		return true
	}
	if v == nil || other == nil {
		return false
	}
	if len(v.data) != len(other.data) || v.start != other.start {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (v *Vector[T]) NotEqual(other *Vector[T]) bool {
	return !v.Equal(other)
}

// Values returns a copy of the elements in logical order.
func (v *Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// String implements fmt.Stringer, e.g. "[0, 1, 2]".
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
