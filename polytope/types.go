// Package polytope: aggregate types and build options.

package polytope

import "github.com/katalvlaran/wythoff/coset"

// Edge is an ordered pair of vertex indices.
type Edge [2]int

// Face is an ordered cycle of vertex indices (a closed polygon).
type Face []int

// Polytope is the immutable result of a build: vertex coordinates and
// words plus edge and face indices grouped by orbit type. It is the
// entire surface downstream rendering/formatting collaborators need.
//
// The only sanctioned mutation is Project4D on a 5D aggregate, which
// rewrites the vertex coordinates in place.
type Polytope struct {
	// Dim is the ambient dimension of the vertex coordinates.
	Dim int

	// Vertices holds one coordinate vector per vertex, indexed by the
	// coset number assigned during enumeration.
	Vertices [][]float64

	// VertexWords holds the canonical word of each vertex, aligned with
	// Vertices; useful for symbolic and labeling output.
	VertexWords [][]int

	// Edges groups edge index pairs by orbit type (one entry per active
	// mirror, or per fundamental rotation for snub variants).
	Edges [][]Edge

	// Faces groups face index cycles by orbit type (one entry per
	// face-generating mirror pair or rotation).
	Faces [][]Face
}

// NumVertices returns the vertex count.
func (p *Polytope) NumVertices() int { return len(p.Vertices) }

// NumEdges returns the edge count summed over all orbit types.
func (p *Polytope) NumEdges() int {
	n := 0
	for _, group := range p.Edges {
		n += len(group)
	}

	return n
}

// NumFaces returns the face count summed over all orbit types.
func (p *Polytope) NumFaces() int {
	n := 0
	for _, group := range p.Faces {
		n += len(group)
	}

	return n
}

// Project4D stereographically projects a 5D aggregate to 4D: each vertex
// v becomes v[0:4] / (pole − v[4]). Coordinates are rewritten in place
// and the aggregate is returned for chaining. Returns
// ErrNotFiveDimensional for non-5D coordinates and ErrPoleTooClose when
// the pole (numerically) touches a vertex.
func (p *Polytope) Project4D(pole float64) (*Polytope, error) {
	if p.Dim != 5 {
		return nil, ErrNotFiveDimensional
	}
	const poleEps = 1e-9
	for _, v := range p.Vertices {
		if d := pole - v[4]; d < poleEps && d > -poleEps {
			return nil, ErrPoleTooClose
		}
	}
	for i, v := range p.Vertices {
		d := pole - v[4]
		p.Vertices[i] = []float64{v[0] / d, v[1] / d, v[2] / d, v[3] / d}
	}
	p.Dim = 4

	return p, nil
}

// Options configures a build.
//
// Fields:
//   - MaxCosets — growth cap forwarded to every coset enumeration run
//     during the build; exceeding it surfaces coset.ErrTableFull.
type Options struct {
	MaxCosets int

	err error // first option error, surfaced by the constructors
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{MaxCosets: coset.DefaultMaxCosets}
}

// Option mutates Options; invalid values surface from the constructor.
type Option func(*Options)

// WithMaxCosets caps every enumeration run at n cosets. n must be positive.
func WithMaxCosets(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = ErrBadOption

			return
		}
		o.MaxCosets = n
	}
}
