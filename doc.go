// Package utmatrix is a small generic numeric container library: a bounded,
// index-offsettable vector and a square upper-triangular matrix built on it.
//
// Everything lives in two subpackages:
//
//	vector/ — Vector[T]: owning 1-D storage, logical start index, bounds-checked
//	          access, scalar and element-wise arithmetic, dot product
//	matrix/ — Matrix[T]: size×size upper triangle stored as jagged rows, row i a
//	          Vector of size-i elements starting at column i; element-wise add/sub
//
// Both types have value semantics: Clone and Assign always deep-copy, Equal
// compares structure and contents. Element types are the built-in integer,
// float and complex kinds (vector.Element).
//
// Quick ASCII example (size 3):
//
//	[a00 a01 a02]
//	    [a11 a12]
//	        [a22]
//
// Errors are package sentinels (ErrInvalidSize, ErrIndexOutOfRange,
// ErrSizeMismatch, ...) matched with errors.Is; the matrix sentinels alias the
// vector ones so a column error reported by a row matches either name.
//
//	go get github.com/katalvlaran/utmatrix
package utmatrix
