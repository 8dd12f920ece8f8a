package polytope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wythoff/coxeter"
	"github.com/katalvlaran/wythoff/polytope"
)

// TestTesseract pins the 8-cell: 16 vertices, 32 edges, 24 square faces.
func TestTesseract(t *testing.T) {
	b, err := polytope.Tesseract()
	p := build(t, b, err)

	assert.Equal(t, 16, p.NumVertices())
	assert.Equal(t, 32, p.NumEdges())
	assert.Equal(t, 24, p.NumFaces())
	assert.Equal(t, 4, p.Dim)
	checkIncidence(t, p)
}

// TestCell16 pins the 16-cell, the dual ringing of the same diagram.
func TestCell16(t *testing.T) {
	b, err := polytope.Cell16()
	p := build(t, b, err)

	assert.Equal(t, 8, p.NumVertices())
	assert.Equal(t, 24, p.NumEdges())
	assert.Equal(t, 32, p.NumFaces())
	checkIncidence(t, p)
}

// TestCell24 pins the 24-cell: 24 vertices, 96 edges, 96 triangles.
func TestCell24(t *testing.T) {
	b, err := polytope.Cell24()
	p := build(t, b, err)

	assert.Equal(t, 24, p.NumVertices())
	assert.Equal(t, 96, p.NumEdges())
	assert.Equal(t, 96, p.NumFaces())
	checkIncidence(t, p)
}

// TestCell600 pins the largest 4D case: 120 vertices, 720 edges, 1200
// triangles under the full H4 symmetry.
func TestCell600(t *testing.T) {
	b, err := polytope.Cell600()
	p := build(t, b, err)

	assert.Equal(t, 120, p.NumVertices())
	assert.Equal(t, 720, p.NumEdges())
	assert.Equal(t, 1200, p.NumFaces())
	checkIncidence(t, p)
}

// TestSimplex5D pins the 5-simplex and exercises the 5D family end to
// end: 6 vertices, 15 edges, 20 triangles.
func TestSimplex5D(t *testing.T) {
	b, err := polytope.Simplex5D()
	p := build(t, b, err)

	assert.Equal(t, 6, p.NumVertices())
	assert.Equal(t, 15, p.NumEdges())
	assert.Equal(t, 20, p.NumFaces())
	assert.Equal(t, 5, p.Dim)
	checkIncidence(t, p)
}

// TestPenteract_Projects builds the 5-cube and projects it to 4D.
func TestPenteract_Projects(t *testing.T) {
	b, err := polytope.Penteract5D()
	p := build(t, b, err)

	assert.Equal(t, 32, p.NumVertices())
	assert.Equal(t, 80, p.NumEdges())
	assert.Equal(t, 80, p.NumFaces())
	assert.Equal(t, 5, p.Dim)

	q, err := p.Project4D(1.3)
	require.NoError(t, err)
	assert.Same(t, p, q, "projection must return the receiver for chaining")
	assert.Equal(t, 4, p.Dim)
	for _, v := range p.Vertices {
		assert.Len(t, v, 4)
	}
}

// TestProject4D_Errors covers the projection preconditions.
func TestProject4D_Errors(t *testing.T) {
	b, err := polytope.Cube()
	p := build(t, b, err)
	_, err = p.Project4D(1.3)
	assert.ErrorIs(t, err, polytope.ErrNotFiveDimensional)

	b, err = polytope.Penteract5D()
	p = build(t, b, err)
	// A pole sitting exactly on a vertex's last coordinate must fail.
	_, err = p.Project4D(p.Vertices[0][4])
	assert.ErrorIs(t, err, polytope.ErrPoleTooClose)
}

// TestPolytope5D_LengthChecks verifies that each length is validated on
// its own, not only when both are wrong.
func TestPolytope5D_LengthChecks(t *testing.T) {
	good := coxeter.Diagram{3, 2, 2, 2, 3, 2, 2, 3, 2, 3}

	_, err := polytope.NewPolytope5D(good, []float64{1, 0, 0, 0}, nil)
	assert.ErrorIs(t, err, polytope.ErrDimension, "short distance vector alone must fail")

	_, err = polytope.NewPolytope5D(coxeter.Diagram{3, 2, 3}, []float64{1, 0, 0, 0, 0}, nil)
	assert.ErrorIs(t, err, polytope.ErrDimension, "short diagram alone must fail")
}
