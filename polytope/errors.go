// Package polytope: sentinel error set. Construction and build errors
// are returned eagerly; no partial aggregate is ever exposed.

package polytope

import "errors"

var (
	// ErrDimension is returned when the diagram or distance vector length
	// does not match the polytope family (3/3 for polyhedra, 6/4 for
	// polychora, 10/5 for the 5D family).
	ErrDimension = errors.New("polytope: diagram/distance length mismatch for this family")

	// ErrBadRelation is returned when an extra relation references a
	// generator outside the symmetry generator set.
	ErrBadRelation = errors.New("polytope: relation references unknown generator")

	// ErrNotFiveDimensional is returned when stereographic projection is
	// requested on an aggregate whose coordinates are not 5-dimensional.
	ErrNotFiveDimensional = errors.New("polytope: projection requires 5D coordinates")

	// ErrPoleTooClose is returned when the projection pole coincides with
	// a vertex's last coordinate, which would divide by (almost) zero.
	ErrPoleTooClose = errors.New("polytope: projection pole too close to a vertex")

	// ErrBadOption is returned when an option carries a nonsensical value.
	ErrBadOption = errors.New("polytope: invalid option value")
)
