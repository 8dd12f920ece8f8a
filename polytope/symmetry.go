package polytope

import (
	"fmt"

	"github.com/katalvlaran/wythoff/coset"
	"github.com/katalvlaran/wythoff/coxeter"
	"github.com/katalvlaran/wythoff/linalg"
)

// rotation is one fundamental rotation of a snub presentation: the word
// naming it in the snub generator alphabet and its order in the group.
type rotation struct {
	word  []int
	order int
}

// Builder carries the symmetry model of one polytope variant and runs
// the orbit enumeration. Construct it through NewPolyhedron,
// NewPolychoron, NewPolytope5D, NewSnub or NewSnub24Cell, then call
// Build. A Builder is not safe for concurrent use; each Build call
// produces a fresh aggregate.
type Builder struct {
	dim         int
	matrix      coxeter.Matrix
	mirrors     *linalg.Dense
	reflections []*linalg.Dense
	initPoint   []float64
	active      []bool

	// presentation handed to the coset enumerator
	ngens  int
	rels   [][]int
	paired bool // rotation-subgroup presentation (snub variants)

	// expand maps a generator letter to the reflection sequence realizing
	// it geometrically. The Coxeter case is the identity expansion; snub
	// cases expand each rotation letter to its two reflections.
	expand func(g int) []int

	// snub bookkeeping: fundamental rotations in fixed order, plus the
	// always-present triangle orbits given as triples of words applied to
	// vertex 0.
	rotations []rotation
	triangles [][][]int

	opts Options

	// per-build state
	vtab   *coset.Table
	vwords [][]int
	verts  [][]float64
	edges  [][]Edge
	faces  [][]Face
}

// newSymmetry builds the shared symmetry model: Coxeter matrix, mirrors,
// reflections, initial point, active flags and the default Coxeter
// relations (i,j) repeated matrix[i][j] times for every unordered pair,
// concatenated with any validated extra relations.
func newSymmetry(diagram coxeter.Diagram, dist []float64, extra [][]int, opts []Option) (*Builder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	matrix, err := coxeter.MatrixFromDiagram(diagram)
	if err != nil {
		return nil, err
	}
	mirrors, err := coxeter.Mirrors(diagram)
	if err != nil {
		return nil, err
	}
	rank := mirrors.Rows()

	reflections := make([]*linalg.Dense, rank)
	for i := 0; i < rank; i++ {
		row, err := mirrors.Row(i)
		if err != nil {
			return nil, err
		}
		if reflections[i], err = coxeter.Reflection(row); err != nil {
			return nil, err
		}
	}

	initPoint, err := coxeter.InitialPoint(mirrors, dist)
	if err != nil {
		return nil, err
	}

	active := make([]bool, rank)
	for i, d := range dist {
		active[i] = d != 0
	}

	var rels [][]int
	for i := 0; i < rank; i++ {
		for j := i + 1; j < rank; j++ {
			w := make([]int, 0, 2*matrix[i][j])
			for k := 0; k < matrix[i][j]; k++ {
				w = append(w, i, j)
			}
			rels = append(rels, w)
		}
	}
	for n, w := range extra {
		if len(w) == 0 {
			return nil, fmt.Errorf("extra relation %d: %w", n, ErrBadRelation)
		}
		cp := make([]int, len(w))
		for k, g := range w {
			if g < 0 || g >= rank {
				return nil, fmt.Errorf("extra relation %d letter %d: %w", n, g, ErrBadRelation)
			}
			cp[k] = g
		}
		rels = append(rels, cp)
	}

	return &Builder{
		dim:         rank,
		matrix:      matrix,
		mirrors:     mirrors,
		reflections: reflections,
		initPoint:   initPoint,
		active:      active,
		ngens:       rank,
		rels:        rels,
		expand:      func(g int) []int { return []int{g} },
		opts:        o,
	}, nil
}

// newTable constructs a coset table for the builder's presentation with
// the given subgroup generators.
func (b *Builder) newTable(subgens [][]int) (*coset.Table, error) {
	copts := []coset.Option{coset.WithMaxCosets(b.opts.MaxCosets)}
	if b.paired {
		copts = append(copts, coset.WithPairedInverses())
	}

	return coset.NewTable(b.ngens, b.rels, subgens, copts...)
}

// transform applies a word to a coordinate vector: each letter expands
// to its reflection sequence, applied in word order as row-vector
// products. Pure function of the symmetry model.
func (b *Builder) transform(point []float64, word []int) ([]float64, error) {
	if len(word) == 0 {
		out := make([]float64, len(point))
		copy(out, point)

		return out, nil
	}
	v := point
	for _, g := range word {
		for _, m := range b.expand(g) {
			next, err := linalg.VecMul(v, b.reflections[m])
			if err != nil {
				return nil, err
			}
			v = next
		}
	}

	return v, nil
}

// move applies a word to a vertex index through the vertex action table.
func (b *Builder) move(vertex int, word []int) (int, error) {
	for _, g := range word {
		next, err := b.vtab.Act(vertex, g)
		if err != nil {
			return 0, err
		}
		vertex = next
	}

	return vertex, nil
}

// orthogonalStabilizers returns, as single-letter words, every generator
// s that commutes with all members of subgens (matrix[x][s] == 2) and is
// inactive, so its reflection fixes the base element pointwise without
// displacing the initial vertex.
func (b *Builder) orthogonalStabilizers(subgens []int) [][]int {
	var result [][]int
	for s := 0; s < len(b.matrix); s++ {
		if b.active[s] {
			continue
		}
		commutes := true
		for _, x := range subgens {
			if b.matrix[x][s] != 2 {
				commutes = false

				break
			}
		}
		if commutes {
			result = append(result, []int{s})
		}
	}

	return result
}
