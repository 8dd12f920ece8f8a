package coxeter

import (
	"math"

	"github.com/katalvlaran/wythoff/linalg"
)

// Mirrors computes the unit normal vectors of the reflection mirrors,
// one row per mirror, in the ambient dimension equal to the rank.
//
// The normals must realize the pairwise dihedral angles of the diagram:
// ni·nj = -cos(π·q/p) for branch label p/q. That Gram matrix is
// symmetric positive definite exactly when the diagram is of finite
// type, so the rows of its lower Cholesky factor are one valid mirror
// arrangement (mirror 0 along the first axis, each next mirror adding
// one coordinate). Infinite or degenerate diagrams surface as
// linalg.ErrNotPositiveDefinite.
func Mirrors(d Diagram) (*linalg.Dense, error) {
	rank, err := d.Rank()
	if err != nil {
		return nil, err
	}

	g, err := linalg.NewDense(rank, rank)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rank; i++ {
		if err = g.Set(i, i, 1); err != nil {
			return nil, err
		}
	}
	k := 0
	for i := 0; i < rank; i++ {
		for j := i + 1; j < rank; j++ {
			p, q, err := rationalize(d[k])
			if err != nil {
				return nil, err
			}
			cos := -math.Cos(math.Pi * float64(q) / float64(p))
			if err = g.Set(i, j, cos); err != nil {
				return nil, err
			}
			if err = g.Set(j, i, cos); err != nil {
				return nil, err
			}
			k++
		}
	}

	return linalg.CholeskyLower(g)
}

// Reflection builds the reflection matrix I - 2vvᵀ for a unit normal v.
// The result is a symmetric involution: applying it twice is the
// identity.
func Reflection(v []float64) (*linalg.Dense, error) {
	n := len(v)
	m, err := linalg.NewIdentity(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cur, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			if err = m.Set(i, j, cur-2*v[i]*v[j]); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// InitialPoint solves for the point whose signed distance to mirror i is
// proportional to dist[i], normalized to unit length. This is the seed
// vertex of the Wythoff construction; a zero entry in dist puts the
// point on that mirror.
func InitialPoint(mirrors *linalg.Dense, dist []float64) ([]float64, error) {
	if len(dist) != mirrors.Rows() {
		return nil, ErrDimensionMismatch
	}
	p, err := linalg.Solve(mirrors, dist)
	if err != nil {
		return nil, err
	}

	return linalg.Normalize(p)
}
