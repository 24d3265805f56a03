// Package matrix provides Matrix[T], a square upper-triangular matrix stored
// as jagged rows.
//
// Layout:
//
//	row 0: Vector(size,   start 0)   columns 0 .. size-1
//	row 1: Vector(size-1, start 1)   columns 1 .. size-1
//	...
//	row i: Vector(size-i, start i)   columns i .. size-1
//
// Only cells on or above the diagonal are represented. Every matrix operation
// is a loop over rows forwarding to the matching vector.Vector operation, so
// storage, copying and column bounds are all owned by package vector.
//
// Access:
//
//	row, _ := m.Row(i)   // live row; row.Index(j) for i <= j < size
//	x, _ := m.At(i, j)   // convenience
//	_ = m.Set(i, j, x)
//
// Row indices outside [0, size) fail with ErrIndexOutOfRange; columns outside
// [i, size) fail with the same sentinel, reported by the row.
//
// Arithmetic (Add, Sub) returns a new Matrix and fails with ErrSizeMismatch
// when sizes differ. Multiplication, inversion and decompositions are not
// provided.
package matrix
