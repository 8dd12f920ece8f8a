// Package linalg: computational kernels shared by the coxeter and
// polytope packages. All kernels validate strictly, allocate fresh
// outputs and never mutate their operands.

package linalg

import "math"

// PivotEps is the smallest pivot magnitude accepted by Solve and
// CholeskyLower before the input is declared singular / not positive
// definite. Coxeter Gram matrices of finite type stay far above it.
const PivotEps = 1e-12

// VecMul computes the row-vector product v·M.
// len(v) must equal m.Rows(); the result has length m.Cols().
// This matches the reflection convention used by the orbit engine:
// points are row vectors, transforms multiply on the right.
// Complexity: O(r*c).
func VecMul(v []float64, m *Dense) ([]float64, error) {
	if len(v) != m.r {
		return nil, ErrDimensionMismatch
	}
	out := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		vi := v[i]
		if vi == 0 {
			continue
		}
		row := m.data[i*m.c : (i+1)*m.c]
		for j, x := range row {
			out[j] += vi * x
		}
	}

	return out, nil
}

// Solve returns x with M·x = b using Gaussian elimination with partial
// pivoting. M must be square with m.Rows() == len(b).
// Returns ErrNonSquare, ErrDimensionMismatch or ErrSingular.
// Complexity: O(n^3) — n is at most 5 here.
func Solve(m *Dense, b []float64) ([]float64, error) {
	if m.r != m.c {
		return nil, ErrNonSquare
	}
	if len(b) != m.r {
		return nil, ErrDimensionMismatch
	}
	n := m.r

	// Work on copies; operands stay immutable.
	a := m.Clone()
	x := make([]float64, n)
	copy(x, b)

	for col := 0; col < n; col++ {
		// Partial pivoting: pick the largest remaining pivot in this column.
		pivot := col
		best := math.Abs(a.data[col*n+col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(a.data[r*n+col]); v > best {
				pivot, best = r, v
			}
		}
		if best < PivotEps {
			return nil, ErrSingular
		}
		if pivot != col {
			for j := 0; j < n; j++ {
				a.data[col*n+j], a.data[pivot*n+j] = a.data[pivot*n+j], a.data[col*n+j]
			}
			x[col], x[pivot] = x[pivot], x[col]
		}

		// Eliminate below the pivot.
		inv := 1 / a.data[col*n+col]
		for r := col + 1; r < n; r++ {
			f := a.data[r*n+col] * inv
			if f == 0 {
				continue
			}
			for j := col; j < n; j++ {
				a.data[r*n+j] -= f * a.data[col*n+j]
			}
			x[r] -= f * x[col]
		}
	}

	// Back substitution.
	for r := n - 1; r >= 0; r-- {
		sum := x[r]
		for j := r + 1; j < n; j++ {
			sum -= a.data[r*n+j] * x[j]
		}
		x[r] = sum / a.data[r*n+r]
	}

	return x, nil
}

// CholeskyLower returns the lower-triangular factor L with L·Lᵀ = G.
// G must be square and symmetric positive definite; symmetry is assumed
// (callers construct G symmetric by design), positive definiteness is
// checked through the pivots. Returns ErrNonSquare or
// ErrNotPositiveDefinite.
// Complexity: O(n^3).
func CholeskyLower(g *Dense) (*Dense, error) {
	if g.r != g.c {
		return nil, ErrNonSquare
	}
	n := g.r
	l, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := g.data[i*n+j]
			for k := 0; k < j; k++ {
				sum -= l.data[i*n+k] * l.data[j*n+k]
			}
			if i == j {
				if sum < PivotEps {
					return nil, ErrNotPositiveDefinite
				}
				l.data[i*n+i] = math.Sqrt(sum)
			} else {
				l.data[i*n+j] = sum / l.data[j*n+j]
			}
		}
	}

	return l, nil
}
