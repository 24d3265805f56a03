// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for New.
// Option / Options mirror package vector: unexported state, documented
// defaults and a gatherOptions helper. WithX constructors panic only on
// nonsensical values (programmer error).
package matrix

// MaxMatrixSize is the hard upper bound on the row/column count of a Matrix.
const MaxMatrixSize = 10000

// DefaultMaxSize is the construction ceiling applied when WithMaxSize is absent.
const DefaultMaxSize = MaxMatrixSize

const panicMaxSizeInvalid = "matrix: WithMaxSize: max must be in (0, MaxMatrixSize]"

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxSize int // DefaultMaxSize
}

// WithMaxSize lowers the construction ceiling below MaxMatrixSize.
// A size×size triangle holds size*(size+1)/2 elements, so callers that accept
// sizes from untrusted input use this to bound memory.
//
// Panics with a stable message when max <= 0 or max > MaxMatrixSize.
func WithMaxSize(max int) Option {
	if max <= 0 || max > MaxMatrixSize {
		panic(panicMaxSizeInvalid)
	}

	return func(o *Options) { o.maxSize = max }
}

func gatherOptions(user ...Option) Options {
	o := Options{maxSize: DefaultMaxSize}
	for _, set := range user {
		set(&o)
	}

	return o
}
