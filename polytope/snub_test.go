package polytope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wythoff/coxeter"
	"github.com/katalvlaran/wythoff/polytope"
)

// TestSnubCube pins the snub cube: 24 vertices, 60 edges and exactly
// 38 faces — 6 squares (order-4 rotation r), 8 triangles (order-3
// rotation s) and 24 free triangles from the r·s = rs identity.
func TestSnubCube(t *testing.T) {
	b, err := polytope.SnubCube()
	p := build(t, b, err)

	assert.Equal(t, 24, p.NumVertices())
	assert.Equal(t, 60, p.NumEdges())
	assert.Equal(t, 38, p.NumFaces())

	// Edge orbits in rotation order r, s, rs: the order-2 rotation rs
	// stabilizes its base edge, halving that orbit.
	require.Len(t, p.Edges, 3)
	assert.Len(t, p.Edges[0], 24)
	assert.Len(t, p.Edges[1], 24)
	assert.Len(t, p.Edges[2], 12)

	// Face orbits: squares, triangles, then the fixed triangle type.
	require.Len(t, p.Faces, 3)
	assert.Len(t, p.Faces[0], 6)
	assert.Len(t, p.Faces[0][0], 4)
	assert.Len(t, p.Faces[1], 8)
	assert.Len(t, p.Faces[1][0], 3)
	assert.Len(t, p.Faces[2], 24)
	assert.Len(t, p.Faces[2][0], 3)

	checkIncidence(t, p)
}

// TestSnubDodecahedron checks the second classical snub: 60 vertices,
// 150 edges, 92 faces (12 pentagons + 20 triangles + 60 free triangles).
func TestSnubDodecahedron(t *testing.T) {
	b, err := polytope.SnubDodecahedron()
	p := build(t, b, err)

	assert.Equal(t, 60, p.NumVertices())
	assert.Equal(t, 150, p.NumEdges())
	assert.Equal(t, 92, p.NumFaces())

	require.Len(t, p.Faces, 3)
	assert.Len(t, p.Faces[0], 12, "pentagons from the order-5 rotation")
	assert.Len(t, p.Faces[0][0], 5)
	assert.Len(t, p.Faces[1], 20, "triangles from the order-3 rotation")
	assert.Len(t, p.Faces[2], 60, "free triangles")

	checkIncidence(t, p)
}

// TestSnub_DimensionValidation rejects mismatched snub inputs.
func TestSnub_DimensionValidation(t *testing.T) {
	_, err := polytope.NewSnub(coxeter.Diagram{4, 2, 3, 3, 2, 3}, []float64{1, 1, 1})
	assert.ErrorIs(t, err, polytope.ErrDimension)

	_, err = polytope.NewSnub(coxeter.Diagram{4, 2, 3}, []float64{1, 1})
	assert.ErrorIs(t, err, polytope.ErrDimension)
}

// TestSnub24Cell pins the hard-coded 4D snub case: 96 vertices, 432
// edges and 480 faces — 3×32 triangles from the order-3 rotations plus
// 4×96 from the fixed triangle types.
func TestSnub24Cell(t *testing.T) {
	b, err := polytope.NewSnub24Cell()
	p := build(t, b, err)

	assert.Equal(t, 96, p.NumVertices())
	assert.Equal(t, 432, p.NumEdges())
	assert.Equal(t, 480, p.NumFaces())
	assert.Equal(t, 4, p.Dim)

	// Edge orbits in rotation order r, s, t, rs, rt, s⁻¹t.
	require.Len(t, p.Edges, 6)
	for i, want := range []int{96, 96, 96, 48, 48, 48} {
		assert.Len(t, p.Edges[i], want, "edge orbit %d", i)
	}

	// Face orbits: three rotation types then four triangle types.
	require.Len(t, p.Faces, 7)
	for i, want := range []int{32, 32, 32, 96, 96, 96, 96} {
		assert.Len(t, p.Faces[i], want, "face orbit %d", i)
		assert.Len(t, p.Faces[i][0], 3, "snub 24-cell faces are all triangles")
	}

	checkIncidence(t, p)
}
