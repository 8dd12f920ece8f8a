// Package coset enumerates the right cosets of a subgroup inside a
// finitely presented group (the Todd–Coxeter procedure), producing a
// canonical representative word for every coset and the action table
// mapping (coset, generator) → coset.
//
// 🚀 What is coset enumeration?
//
//	Given generators, relator words (products equal to the identity) and
//	subgroup generator words, the procedure systematically defines coset
//	numbers, scans every relator at every live coset, and merges cosets
//	proven equal (coincidences) until the table closes. The number of
//	rows of the closed table is the index of the subgroup.
//
// The implementation uses the HLT strategy (scan-and-fill with immediate
// definitions) plus queue-based coincidence handling over a union-find
// forest, then compresses the table to live cosets in definition order,
// so results are fully deterministic.
//
// Two generator conventions are supported:
//
//   - involution mode (default): every generator is its own inverse, the
//     natural setting for Coxeter reflection groups;
//   - paired mode (WithPairedInverses): generator 2i+1 is the formal
//     inverse of generator 2i, the setting for rotation (snub) subgroups
//     whose presentations are not Coxeter presentations.
//
// Enumeration of an infinite-index subgroup cannot terminate; the table
// growth cap (WithMaxCosets) turns that into ErrTableFull instead of an
// unbounded loop.
//
// Typical use:
//
//	tab, err := coset.NewTable(3, relators, subgens)
//	if err != nil { ... }
//	if err = tab.Run(); err != nil { ... }
//	words, _ := tab.Words()        // one canonical word per coset
//	next, _ := tab.Act(0, 1)       // action of generator 1 on coset 0
package coset
