// Package coset: options and sentinel errors for the enumerator.

package coset

import "errors"

// DefaultMaxCosets caps table growth (live plus dead rows) before
// enumeration aborts with ErrTableFull. The polytope groups in this
// module close within a few thousand cosets; the default leaves three
// orders of magnitude of headroom for star presentations.
const DefaultMaxCosets = 1 << 20

var (
	// ErrNoGenerators is returned when a table is requested with no generators.
	ErrNoGenerators = errors.New("coset: generator count must be positive")

	// ErrOddPairing is returned in paired-inverse mode when the generator
	// count is odd, so generators cannot form (g, g⁻¹) pairs.
	ErrOddPairing = errors.New("coset: paired-inverse mode needs an even generator count")

	// ErrGeneratorRange is returned when a relator or subgroup-generator
	// word references a generator outside [0, ngens).
	ErrGeneratorRange = errors.New("coset: word references unknown generator")

	// ErrEmptyWord is returned when a relator or subgroup-generator word is empty.
	ErrEmptyWord = errors.New("coset: empty word")

	// ErrTableFull is returned when enumeration exceeds the MaxCosets cap,
	// which usually means the presentation/subgroup pair has infinite index.
	ErrTableFull = errors.New("coset: coset table exceeded MaxCosets")

	// ErrNotRun is returned when results are requested before Run completed.
	ErrNotRun = errors.New("coset: enumeration has not been run")

	// ErrCosetRange is returned by Act for a coset index outside the closed table.
	ErrCosetRange = errors.New("coset: coset index out of range")

	// ErrBadOption is returned when an option carries a nonsensical value.
	ErrBadOption = errors.New("coset: invalid option value")
)

// Options configures a Table.
//
// Fields:
//   - MaxCosets      — growth cap for the coset table, counting dead rows;
//     exceeding it aborts Run with ErrTableFull.
//   - PairedInverses — false (default) treats every generator as an
//     involution (Coxeter mode); true pairs generator 2i with its formal
//     inverse 2i+1 (rotation-subgroup mode).
type Options struct {
	MaxCosets      int
	PairedInverses bool

	err error // first option error, surfaced by NewTable
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{MaxCosets: DefaultMaxCosets}
}

// Option mutates Options; invalid values are recorded and surfaced by
// NewTable rather than panicking.
type Option func(*Options)

// WithMaxCosets caps table growth at n cosets. n must be positive.
func WithMaxCosets(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = ErrBadOption

			return
		}
		o.MaxCosets = n
	}
}

// WithPairedInverses switches the table to rotation-subgroup mode:
// generator 2i+1 acts as the formal inverse of generator 2i, and no
// generator is assumed to be an involution.
func WithPairedInverses() Option {
	return func(o *Options) { o.PairedInverses = true }
}
