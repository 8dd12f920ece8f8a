// Package linalg: sentinel error set.
// All kernels return these sentinels (optionally wrapped with operation
// context via %w) and tests match them with errors.Is.

package linalg

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows or cols <= 0).
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. VecMul where len(v) != m.Rows().
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrSingular signals that elimination met a pivot smaller than the
	// numeric tolerance, so the system has no stable unique solution.
	ErrSingular = errors.New("linalg: matrix is singular")

	// ErrNotPositiveDefinite signals that a Cholesky pivot was non-positive.
	// For Coxeter Gram matrices this means the diagram is not of finite type.
	ErrNotPositiveDefinite = errors.New("linalg: matrix is not positive definite")

	// ErrZeroVector signals an attempt to normalize a (numerically) zero vector.
	ErrZeroVector = errors.New("linalg: zero vector")
)
