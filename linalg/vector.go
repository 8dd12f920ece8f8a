package linalg

import "math"

// Dot returns the dot product of a and b.
// Returns ErrDimensionMismatch when the lengths differ.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	for i, x := range a {
		sum += x * b[i]
	}

	return sum, nil
}

// Norm returns the Euclidean norm of v.
func Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// Normalize returns v scaled to unit length as a fresh slice.
// Returns ErrZeroVector when the norm falls below PivotEps.
func Normalize(v []float64) ([]float64, error) {
	n := Norm(v)
	if n < PivotEps {
		return nil, ErrZeroVector
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / n
	}

	return out, nil
}
