// Package linalg provides the small dense linear algebra kernels used by
// the Wythoff construction: row-major float64 matrices, row-vector
// products, square-system solving and Cholesky factorization.
//
// The ambient dimension is tiny (3, 4 or 5), so every kernel favors
// clarity and strict fail-fast validation over asymptotic tricks:
//
//   - Dense         — row-major flat-slice matrix with bounds-checked access
//   - VecMul        — row-vector × matrix product (v·M), the reflection
//     application convention used throughout the module
//   - Solve         — Gaussian elimination with partial pivoting
//   - CholeskyLower — lower factor L with L·Lᵀ = G for a symmetric
//     positive-definite Gram matrix (mirror construction)
//   - Dot / Norm / Normalize — vector helpers
//
// All user-triggered failures return package sentinel errors matched via
// errors.Is; panics are never used for input validation.
package linalg
