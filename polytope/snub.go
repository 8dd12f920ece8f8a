package polytope

import "github.com/katalvlaran/wythoff/coxeter"

// NewSnub builds a snub polyhedron: the polytope generated by the
// pure-rotation subgroup of the rank-3 reflection group, presented as
//
//	<r, s | r^p = s^q = (rs)^h = 1>
//
// with r = ρ0ρ1, s = ρ1ρ2, p = matrix[0][1], q = matrix[1][2],
// h = matrix[0][2] (h is 2 for the classical snubs). The enumerator runs
// in paired-inverse mode with generators (r, r⁻¹, s, s⁻¹).
//
// The distance vector chooses the initial vertex inside the fundamental
// domain; (1, 1, 1) gives the uniform snub. Returns ErrDimension unless
// the diagram has length 3 and dist length 3.
func NewSnub(diagram coxeter.Diagram, dist []float64, opts ...Option) (*Builder, error) {
	if len(diagram) != 3 || len(dist) != 3 {
		return nil, ErrDimension
	}
	b, err := newSymmetry(diagram, dist, nil, opts)
	if err != nil {
		return nil, err
	}

	p, q, h := b.matrix[0][1], b.matrix[1][2], b.matrix[0][2]

	// The presentation is not a Coxeter presentation: overwrite the
	// generators and relations with the rotation subgroup's.
	b.paired = true
	b.ngens = 4
	b.rels = [][]int{
		repeatWord([]int{0}, p),    // r^p
		repeatWord([]int{2}, q),    // s^q
		repeatWord([]int{0, 2}, h), // (rs)^h
		{0, 1},                     // r·r⁻¹
		{2, 3},                     // s·s⁻¹
	}
	b.rotations = []rotation{
		{word: []int{0}, order: p},
		{word: []int{2}, order: q},
		{word: []int{0, 2}, order: h},
	}
	// rs = r·s, so (v0, v0·s, v0·rs) closes a triangle whose three edges
	// lie in three different edge orbits; its stabilizer is trivial.
	b.triangles = [][][]int{
		{{}, {2}, {0, 2}},
	}
	b.expand = func(g int) []int {
		if g == 0 {
			return []int{0, 1} // r = ρ0ρ1
		}

		return []int{1, 2} // s = ρ1ρ2
	}

	return b, nil
}

// buildSnubEdges enumerates one edge orbit per fundamental rotation. A
// rotation of order two is the product of two commuting reflections, so
// it stabilizes its base edge and the stabilizer is the cyclic group it
// generates; any higher order leaves a trivial stabilizer, and the
// vertex word list doubles as the edge word list.
func (b *Builder) buildSnubEdges() error {
	for _, rot := range b.rotations {
		var words [][]int
		if rot.order == 2 {
			etab, err := b.newTable([][]int{rot.word})
			if err != nil {
				return err
			}
			if err = etab.Run(); err != nil {
				return err
			}
			if words, err = etab.Words(); err != nil {
				return err
			}
		} else {
			words = b.vwords
		}

		end, err := b.move(0, rot.word)
		if err != nil {
			return err
		}
		base := [2]int{0, end}

		elist := make([]Edge, 0, len(words))
		for _, w := range words {
			v1, err := b.move(base[0], w)
			if err != nil {
				return err
			}
			v2, err := b.move(base[1], w)
			if err != nil {
				return err
			}
			elist = append(elist, Edge{v1, v2})
		}
		b.edges = append(b.edges, elist)
	}

	return nil
}

// buildSnubFaces enumerates the face orbits of a rotation-subgroup
// variant. Each fundamental rotation of order above two rotates the
// initial vertex into a face cycle stabilized by the cyclic group it
// generates; order-two rotations only reproduce edges. The fixed
// triangle orbits (from group identities such as r·s = rs) always carry
// a trivial stabilizer, so the vertex word list enumerates them.
func (b *Builder) buildSnubFaces() error {
	for _, rot := range b.rotations {
		if rot.order <= 2 {
			continue
		}

		base := make([]int, rot.order)
		for k := range base {
			v, err := b.move(0, repeatWord(rot.word, k))
			if err != nil {
				return err
			}
			base[k] = v
		}

		ftab, err := b.newTable([][]int{rot.word})
		if err != nil {
			return err
		}
		if err = ftab.Run(); err != nil {
			return err
		}
		words, err := ftab.Words()
		if err != nil {
			return err
		}

		flist := make([]Face, 0, len(words))
		for _, w := range words {
			f, err := b.moveFace(base, w)
			if err != nil {
				return err
			}
			flist = append(flist, f)
		}
		b.faces = append(b.faces, flist)
	}

	for _, tri := range b.triangles {
		base := make([]int, len(tri))
		for k, w := range tri {
			v, err := b.move(0, w)
			if err != nil {
				return err
			}
			base[k] = v
		}

		flist := make([]Face, 0, len(b.vwords))
		for _, w := range b.vwords {
			f, err := b.moveFace(base, w)
			if err != nil {
				return err
			}
			flist = append(flist, f)
		}
		b.faces = append(b.faces, flist)
	}

	return nil
}
