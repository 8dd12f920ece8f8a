package polytope

import "github.com/katalvlaran/wythoff/coxeter"

// Catalog of canonical uniform polytopes: each helper pre-fills the
// diagram and distance vector of a well-known shape and returns the
// configured builder. Geometry still comes from Build, so callers can
// pass build options as usual.

// Tetrahedron returns the regular tetrahedron {3,3} (vertex-first
// Wythoff construction on the A3 diagram).
func Tetrahedron(opts ...Option) (*Builder, error) {
	return NewPolyhedron(coxeter.Diagram{3, 2, 3}, []float64{1, 0, 0}, nil, opts...)
}

// Octahedron returns the regular octahedron {3,4}.
func Octahedron(opts ...Option) (*Builder, error) {
	return NewPolyhedron(coxeter.Diagram{4, 2, 3}, []float64{0, 0, 1}, nil, opts...)
}

// Cube returns the cube {4,3}.
func Cube(opts ...Option) (*Builder, error) {
	return NewPolyhedron(coxeter.Diagram{4, 2, 3}, []float64{1, 0, 0}, nil, opts...)
}

// Icosahedron returns the regular icosahedron {3,5}.
func Icosahedron(opts ...Option) (*Builder, error) {
	return NewPolyhedron(coxeter.Diagram{5, 2, 3}, []float64{0, 0, 1}, nil, opts...)
}

// Dodecahedron returns the regular dodecahedron {5,3}.
func Dodecahedron(opts ...Option) (*Builder, error) {
	return NewPolyhedron(coxeter.Diagram{5, 2, 3}, []float64{1, 0, 0}, nil, opts...)
}

// Cuboctahedron returns the cuboctahedron (rectified cube).
func Cuboctahedron(opts ...Option) (*Builder, error) {
	return NewPolyhedron(coxeter.Diagram{4, 2, 3}, []float64{0, 1, 0}, nil, opts...)
}

// TruncatedCube returns the truncated cube.
func TruncatedCube(opts ...Option) (*Builder, error) {
	return NewPolyhedron(coxeter.Diagram{4, 2, 3}, []float64{1, 1, 0}, nil, opts...)
}

// SnubCube returns the snub cube, generated by the rotation subgroup of
// the cube's symmetry group.
func SnubCube(opts ...Option) (*Builder, error) {
	return NewSnub(coxeter.Diagram{4, 2, 3}, []float64{1, 1, 1}, opts...)
}

// SnubDodecahedron returns the snub dodecahedron.
func SnubDodecahedron(opts ...Option) (*Builder, error) {
	return NewSnub(coxeter.Diagram{5, 2, 3}, []float64{1, 1, 1}, opts...)
}

// GreatDodecahedron returns the star polyhedron {5, 5/2}. The fractional
// branch makes the naive presentation infinite; the extra relation
// (ρ0ρ1ρ2ρ1)³ = 1 cuts it back down to the icosahedral group.
func GreatDodecahedron(opts ...Option) (*Builder, error) {
	extra := [][]int{repeatWord([]int{0, 1, 2, 1}, 3)}

	return NewPolyhedron(coxeter.Diagram{5, 2, 2.5}, []float64{1, 0, 0}, extra, opts...)
}

// SmallStellatedDodecahedron returns the star polyhedron {5/2, 5}, the
// dual construction to GreatDodecahedron.
func SmallStellatedDodecahedron(opts ...Option) (*Builder, error) {
	extra := [][]int{repeatWord([]int{0, 1, 2, 1}, 3)}

	return NewPolyhedron(coxeter.Diagram{2.5, 2, 5}, []float64{1, 0, 0}, extra, opts...)
}

// Tesseract returns the 8-cell {4,3,3}.
func Tesseract(opts ...Option) (*Builder, error) {
	return NewPolychoron(coxeter.Diagram{4, 2, 2, 3, 2, 3}, []float64{1, 0, 0, 0}, nil, opts...)
}

// Cell16 returns the 16-cell {3,3,4}, the tesseract's dual.
func Cell16(opts ...Option) (*Builder, error) {
	return NewPolychoron(coxeter.Diagram{4, 2, 2, 3, 2, 3}, []float64{0, 0, 0, 1}, nil, opts...)
}

// Cell24 returns the 24-cell {3,4,3}.
func Cell24(opts ...Option) (*Builder, error) {
	return NewPolychoron(coxeter.Diagram{3, 2, 2, 4, 2, 3}, []float64{1, 0, 0, 0}, nil, opts...)
}

// Cell600 returns the 600-cell {3,3,5}.
func Cell600(opts ...Option) (*Builder, error) {
	return NewPolychoron(coxeter.Diagram{3, 2, 2, 3, 2, 5}, []float64{1, 0, 0, 0}, nil, opts...)
}

// Simplex5D returns the regular 5-simplex {3,3,3,3}.
func Simplex5D(opts ...Option) (*Builder, error) {
	return NewPolytope5D(
		coxeter.Diagram{3, 2, 2, 2, 3, 2, 2, 3, 2, 3},
		[]float64{1, 0, 0, 0, 0}, nil, opts...)
}

// Penteract5D returns the 5-cube {4,3,3,3}.
func Penteract5D(opts ...Option) (*Builder, error) {
	return NewPolytope5D(
		coxeter.Diagram{4, 2, 2, 2, 3, 2, 2, 3, 2, 3},
		[]float64{1, 0, 0, 0, 0}, nil, opts...)
}
