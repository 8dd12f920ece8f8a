// Package wythoff builds the vertex, edge and face structure of uniform
// polytopes in 3, 4 and 5 dimensions from a Coxeter diagram and a set of
// mirror distances, using Wythoff's kaleidoscopic construction.
//
// 🚀 What is wythoff?
//
//	A pure-Go library that turns an abstract reflection group into
//	concrete geometry:
//		• Coxeter data: diagram → Coxeter matrix, mirror normals,
//		  reflection matrices, initial vertex
//		• Coset enumeration: a self-contained Todd–Coxeter procedure
//		  producing canonical words and a generator action table
//		• Orbit engine: stabilizer derivation plus orbit materialization
//		  for vertices, edges and faces
//		• Variants: convex and star polyhedra/polychora, snub polyhedra,
//		  the snub 24-cell and 5D polytopes with stereographic projection
//
// ✨ Why choose wythoff?
//
//   - Deterministic – insertion-ordered cosets, stable orbit-type order
//   - Fail-fast – every invalid diagram, distance vector or relation is
//     rejected at construction with a sentinel error
//   - Pure Go – no cgo, no hidden deps
//   - Inspectable – vertex words are retained for symbolic output
//
// Everything is organized under four packages:
//
//	linalg/   — small dense matrices and vector kernels (3–5 dims)
//	coxeter/  — Coxeter diagram → matrix, mirrors, reflections, initial point
//	coset/    — Todd–Coxeter coset enumeration (words + action table)
//	polytope/ — symmetry model, orbit engine, polytope variants, catalog
//
// Quick example:
//
//	b, _ := polytope.NewPolyhedron(coxeter.Diagram{4, 2, 3}, []float64{1, 0, 0})
//	p, _ := b.Build()
//	// p.NumVertices() == 8, p.NumEdges() == 12, p.NumFaces() == 6 — a cube.
//
// Dive into the package docs for the group-theoretic details behind each
// enumeration step.
//
//	go get github.com/katalvlaran/wythoff
package wythoff
