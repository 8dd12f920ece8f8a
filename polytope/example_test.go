package polytope_test

import (
	"fmt"

	"github.com/katalvlaran/wythoff/coxeter"
	"github.com/katalvlaran/wythoff/polytope"
)

// ExampleBuilder_Build constructs a cube from its Coxeter data and
// reports the face vector.
func ExampleBuilder_Build() {
	b, err := polytope.NewPolyhedron(coxeter.Diagram{4, 2, 3}, []float64{1, 0, 0}, nil)
	if err != nil {
		fmt.Println("construct:", err)

		return
	}
	p, err := b.Build()
	if err != nil {
		fmt.Println("build:", err)

		return
	}
	fmt.Println(p.NumVertices(), p.NumEdges(), p.NumFaces())
	// Output: 8 12 6
}

// ExampleSnubCube shows a rotation-subgroup variant: the snub cube has
// three face orbit types (squares, triangles and the free triangles).
func ExampleSnubCube() {
	b, err := polytope.SnubCube()
	if err != nil {
		fmt.Println("construct:", err)

		return
	}
	p, err := b.Build()
	if err != nil {
		fmt.Println("build:", err)

		return
	}
	fmt.Println(p.NumVertices(), p.NumEdges(), p.NumFaces())
	fmt.Println(len(p.Faces[0]), len(p.Faces[1]), len(p.Faces[2]))
	// Output:
	// 24 60 38
	// 6 8 24
}

// ExamplePolytope_Project4D projects the 5-cube down to 4D coordinates.
func ExamplePolytope_Project4D() {
	b, err := polytope.Penteract5D()
	if err != nil {
		fmt.Println("construct:", err)

		return
	}
	p, err := b.Build()
	if err != nil {
		fmt.Println("build:", err)

		return
	}
	if _, err = p.Project4D(1.3); err != nil {
		fmt.Println("project:", err)

		return
	}
	fmt.Println(p.Dim, len(p.Vertices[0]))
	// Output: 4 4
}
