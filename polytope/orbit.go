package polytope

import "fmt"

// Build runs vertex, edge and face enumeration in that fixed order —
// edge and face base elements are expressed through the vertex action
// table — and returns the immutable aggregate. Each orbit type gets its
// own coset enumeration; an error in any phase aborts the build with no
// partial result.
func (b *Builder) Build() (*Polytope, error) {
	b.vtab, b.vwords, b.verts = nil, nil, nil
	b.edges, b.faces = nil, nil

	if err := b.buildVertices(); err != nil {
		return nil, fmt.Errorf("polytope: vertices: %w", err)
	}
	if err := b.buildEdges(); err != nil {
		return nil, fmt.Errorf("polytope: edges: %w", err)
	}
	if err := b.buildFaces(); err != nil {
		return nil, fmt.Errorf("polytope: faces: %w", err)
	}

	return &Polytope{
		Dim:         b.dim,
		Vertices:    b.verts,
		VertexWords: b.vwords,
		Edges:       b.edges,
		Faces:       b.faces,
	}, nil
}

// buildVertices enumerates the vertex orbit: cosets of the stabilizer of
// the initial vertex. In the Coxeter case the stabilizer is the standard
// parabolic subgroup of the inactive mirrors; in the snub cases it is
// trivial. Words are applied to the initial point to materialize
// coordinates.
func (b *Builder) buildVertices() error {
	var subgens [][]int
	if !b.paired {
		for i, a := range b.active {
			if !a {
				subgens = append(subgens, []int{i})
			}
		}
	}

	vtab, err := b.newTable(subgens)
	if err != nil {
		return err
	}
	if err = vtab.Run(); err != nil {
		return err
	}
	words, err := vtab.Words()
	if err != nil {
		return err
	}

	verts := make([][]float64, len(words))
	for i, w := range words {
		if verts[i], err = b.transform(b.initPoint, w); err != nil {
			return err
		}
	}

	b.vtab = vtab
	b.vwords = words
	b.verts = verts

	return nil
}

func (b *Builder) buildEdges() error {
	if b.paired {
		return b.buildSnubEdges()
	}

	return b.buildCoxeterEdges()
}

func (b *Builder) buildFaces() error {
	if b.paired {
		return b.buildSnubFaces()
	}

	return b.buildCoxeterFaces()
}

// buildCoxeterEdges enumerates one edge orbit per active mirror i. An
// inactive mirror fixes the initial vertex and generates no edges. The
// stabilizer of the base edge (v0, ρi·v0) is generated by ρi plus the
// orthogonal stabilizing mirrors of {i}; each coset word w yields the
// edge (w·v0, (i·w)·v0) through the vertex action table.
func (b *Builder) buildCoxeterEdges() error {
	for i, a := range b.active {
		if !a {
			continue
		}
		egens := append([][]int{{i}}, b.orthogonalStabilizers([]int{i})...)
		etab, err := b.newTable(egens)
		if err != nil {
			return err
		}
		if err = etab.Run(); err != nil {
			return err
		}
		words, err := etab.Words()
		if err != nil {
			return err
		}

		elist := make([]Edge, 0, len(words))
		for _, w := range words {
			v1, err := b.move(0, w)
			if err != nil {
				return err
			}
			v2, err := b.move(0, prepend(i, w))
			if err != nil {
				return err
			}
			elist = append(elist, Edge{v1, v2})
		}
		b.edges = append(b.edges, elist)
	}

	return nil
}

// buildCoxeterFaces enumerates one face orbit per generating mirror
// pair (i, j) with m = matrix[i][j]:
//
//   - both mirrors active: the base face is the 2m-cycle built by
//     alternately applying the (i,j) rotation and one extra j reflection;
//   - exactly one active and m > 2: the base face is the m-cycle of the
//     rotation orbit of v0 (perpendicular mirror pairs only translate the
//     base edge, so m == 2 degenerates);
//   - otherwise the pair generates no face.
//
// The stabilizer is generated by ρi, ρj and the orthogonal stabilizing
// mirrors of {i, j}.
func (b *Builder) buildCoxeterFaces() error {
	for i := 0; i < b.ngens; i++ {
		for j := i + 1; j < b.ngens; j++ {
			m := b.matrix[i][j]

			var base []int
			switch {
			case b.active[i] && b.active[j]:
				for k := 0; k < m; k++ {
					w := repeatPair(i, j, k)
					u, err := b.move(0, w)
					if err != nil {
						return err
					}
					v, err := b.move(0, prepend(j, w))
					if err != nil {
						return err
					}
					base = append(base, u, v)
				}
			case (b.active[i] || b.active[j]) && m > 2:
				for k := 0; k < m; k++ {
					u, err := b.move(0, repeatPair(i, j, k))
					if err != nil {
						return err
					}
					base = append(base, u)
				}
			default:
				continue
			}

			fgens := append([][]int{{i}, {j}}, b.orthogonalStabilizers([]int{i, j})...)
			ftab, err := b.newTable(fgens)
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
	}

	return nil
}

// moveFace applies a word to every vertex of a base cycle.
func (b *Builder) moveFace(base []int, word []int) (Face, error) {
	f := make(Face, len(base))
	for k, v := range base {
		moved, err := b.move(v, word)
		if err != nil {
			return nil, err
		}
		f[k] = moved
	}

	return f, nil
}

// prepend returns the word (g) + w without mutating w.
func prepend(g int, w []int) []int {
	out := make([]int, 0, len(w)+1)
	out = append(out, g)

	return append(out, w...)
}

// repeatPair returns the word (i,j) repeated k times.
func repeatPair(i, j, k int) []int {
	out := make([]int, 0, 2*k)
	for n := 0; n < k; n++ {
		out = append(out, i, j)
	}

	return out
}

// repeatWord returns w repeated k times.
func repeatWord(w []int, k int) []int {
	out := make([]int, 0, len(w)*k)
	for n := 0; n < k; n++ {
		out = append(out, w...)
	}

	return out
}
