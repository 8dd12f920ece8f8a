package polytope

import "github.com/katalvlaran/wythoff/coxeter"

// NewSnub24Cell builds the snub 24-cell, the 4D analogue of the snub
// polyhedra. It is generated by the rotation subgroup of the
// demitesseract group [3^(1,1,1)], presented as
//
//	<r, s, t | r³ = s³ = t³ = (rs)² = (rt)² = (s⁻¹t)² = 1>
//
// with r = ρ0ρ1, s = ρ1ρ2, t = ρ1ρ3. The construction is fixed: diagram
// (3,2,2,3,3,2) with all four mirrors active.
func NewSnub24Cell(opts ...Option) (*Builder, error) {
	diagram := coxeter.Diagram{3, 2, 2, 3, 3, 2}
	dist := []float64{1, 1, 1, 1}
	b, err := newSymmetry(diagram, dist, nil, opts)
	if err != nil {
		return nil, err
	}

	// Generators in order: r, r⁻¹, s, s⁻¹, t, t⁻¹.
	b.paired = true
	b.ngens = 6
	b.rels = [][]int{
		{0, 0, 0},    // r³
		{2, 2, 2},    // s³
		{4, 4, 4},    // t³
		{0, 2, 0, 2}, // (rs)²
		{0, 4, 0, 4}, // (rt)²
		{3, 4, 3, 4}, // (s⁻¹t)²
		{0, 1},       // r·r⁻¹
		{2, 3},       // s·s⁻¹
		{4, 5},       // t·t⁻¹
	}
	b.rotations = []rotation{
		{word: []int{0}, order: 3},    // r
		{word: []int{2}, order: 3},    // s
		{word: []int{4}, order: 3},    // t
		{word: []int{0, 2}, order: 2}, // rs
		{word: []int{0, 4}, order: 2}, // rt
		{word: []int{3, 4}, order: 2}, // s⁻¹t
	}
	// Triangles fixed by group identities; each one's edges lie in three
	// different orbits, so every stabilizer is trivial:
	//   (v0, v0·s,  v0·rs)
	//   (v0, v0·t,  v0·rt)
	//   (v0, v0·s,  v0·t⁻¹s)
	//   (v0, v0·rs, v0·t⁻¹s)
	b.triangles = [][][]int{
		{{}, {2}, {0, 2}},
		{{}, {4}, {0, 4}},
		{{}, {2}, {5, 2}},
		{{}, {0, 2}, {5, 2}},
	}
	b.expand = func(g int) []int {
		switch g {
		case 0:
			return []int{0, 1} // r = ρ0ρ1
		case 2:
			return []int{1, 2} // s = ρ1ρ2
		default:
			return []int{1, 3} // t = ρ1ρ3
		}
	}

	return b, nil
}
