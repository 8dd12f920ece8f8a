// Package polytope materializes uniform polytopes from their symmetry
// data: Wythoff's construction turns a Coxeter diagram plus a vector of
// mirror distances into vertex coordinates, edge index pairs and face
// index cycles.
//
// 🚀 How the orbit engine works
//
//	Every geometric element is an orbit of a base element under the
//	symmetry group, in bijection with the right cosets of the element's
//	stabilizer subgroup. For each orbit type the engine
//	  1. derives the stabilizer generators (group-theoretic case analysis),
//	  2. runs a fresh Todd–Coxeter enumeration (package coset),
//	  3. applies the returned coset words to the base element — as
//	     reflection products for coordinates, as action-table lookups for
//	     vertex indices.
//
// Vertex stabilizers are the parabolic subgroups of the inactive
// mirrors; edge stabilizers add the orthogonal stabilizing mirrors of
// the generating reflection; face stabilizers do the same for the
// generating pair. Snub variants replace the presentation with that of
// the pure-rotation subgroup and derive edges and faces from the
// fundamental rotations instead of mirror pairs.
//
// Variants:
//
//   - NewPolyhedron / NewPolychoron / NewPolytope5D — Coxeter-group
//     polytopes in 3/4/5 dimensions, with optional extra relations for
//     star polytopes; 5D aggregates support stereographic Project4D
//   - NewSnub — snub polyhedra from the rotation subgroup <r, s>
//   - NewSnub24Cell — the hard-coded 4D snub case <r, s, t>
//   - Catalog helpers (Tetrahedron, Cube, SnubCube, Cell24, ...) with
//     the canonical diagrams and distance vectors pre-filled
//
// Typical use:
//
//	b, err := polytope.Tetrahedron()
//	if err != nil { ... }
//	p, err := b.Build()
//	if err != nil { ... }
//	// p.Vertices, p.Edges, p.Faces, p.VertexWords
//
// Build is deterministic: vertex indices equal coset numbers, orbit
// types come out in a fixed documented order, and repeated builds yield
// identical aggregates.
package polytope
