// Package coxeter turns a Coxeter diagram into the presentation data the
// orbit engine consumes: the symmetric integer Coxeter matrix, unit
// mirror normals, reflection matrices and the initial vertex of the
// Wythoff construction.
//
// A diagram is the ordered list of branch labels for every unordered
// generator pair (i, j), i < j, in lexicographic order, so its length
// determines the rank: 3 labels → rank 3, 6 → rank 4, 10 → rank 5.
// Labels are usually small integers (the order of the dihedral rotation
// generated by the two mirrors); star polytopes use fractional labels
// such as 5/2, in which case the Coxeter matrix entry is the numerator
// while the dihedral angle uses the full fraction.
//
// Mirror normals are the rows of the lower Cholesky factor of the Gram
// matrix G[i][i] = 1, G[i][j] = -cos(π·q/p); the factorization fails for
// diagrams that are not of finite type. The initial point is the
// unit-norm solution of mirrors·x = dist, so dist[i] is (up to a common
// scale) the signed distance from the initial vertex to mirror i.
//
// All functions are pure and stateless.
package coxeter
