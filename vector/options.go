// SPDX-License-Identifier: MIT

// Package vector: functional configuration for constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - WithStartIndex does not validate; New reports a negative start index as
//     ErrInvalidStartIndex so callers can handle it like any other bad input.
//   - WithMaxSize panics on nonsensical ceilings (programmer error).
package vector

// MaxVectorSize is the hard upper bound on the number of elements a Vector may hold.
const MaxVectorSize = 100000000

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStartIndex is the first logical index of a new Vector.
	DefaultStartIndex = 0

	// DefaultMaxSize is the construction ceiling applied when WithMaxSize is absent.
	DefaultMaxSize = MaxVectorSize
)

const panicMaxSizeInvalid = "vector: WithMaxSize: max must be in (0, MaxVectorSize]"

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	startIndex int // DefaultStartIndex
	maxSize    int // DefaultMaxSize
}

// WithStartIndex sets the first logical index of the constructed Vector.
// Negative values are rejected by the constructor with ErrInvalidStartIndex.
func WithStartIndex(start int) Option {
	return func(o *Options) { o.startIndex = start }
}

// WithMaxSize lowers the construction ceiling below MaxVectorSize.
//
// Behavior highlights:
//   - Panics with a stable message when max <= 0 or max > MaxVectorSize.
//   - Affects only the constructor it is passed to; Assign adopts any valid source size.
func WithMaxSize(max int) Option {
	if max <= 0 || max > MaxVectorSize {
		panic(panicMaxSizeInvalid)
	}

	return func(o *Options) { o.maxSize = max }
}

// gatherOptions applies user setters over the defaults in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		startIndex: DefaultStartIndex,
		maxSize:    DefaultMaxSize,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
