package polytope

import "github.com/katalvlaran/wythoff/coxeter"

// NewPolyhedron builds a rank-3 Coxeter-group polytope from a 3-label
// diagram and a 3-entry mirror distance vector. Extra relations turn the
// presentation into that of a star polyhedron (e.g. (ρ0ρ1ρ2ρ1)ⁿ = 1 for
// an n-sided hole). Returns ErrDimension on length mismatch.
func NewPolyhedron(diagram coxeter.Diagram, dist []float64, extra [][]int, opts ...Option) (*Builder, error) {
	if len(diagram) != 3 || len(dist) != 3 {
		return nil, ErrDimension
	}

	return newSymmetry(diagram, dist, extra, opts)
}

// NewPolychoron builds a rank-4 Coxeter-group polytope from a 6-label
// diagram and a 4-entry distance vector. Returns ErrDimension on length
// mismatch.
func NewPolychoron(diagram coxeter.Diagram, dist []float64, extra [][]int, opts ...Option) (*Builder, error) {
	if len(diagram) != 6 || len(dist) != 4 {
		return nil, ErrDimension
	}

	return newSymmetry(diagram, dist, extra, opts)
}

// NewPolytope5D builds a rank-5 Coxeter-group polytope from a 10-label
// diagram and a 5-entry distance vector; both lengths are checked
// independently. The built aggregate supports Project4D for
// stereographic projection.
func NewPolytope5D(diagram coxeter.Diagram, dist []float64, extra [][]int, opts ...Option) (*Builder, error) {
	if len(diagram) != 10 || len(dist) != 5 {
		return nil, ErrDimension
	}

	return newSymmetry(diagram, dist, extra, opts)
}
