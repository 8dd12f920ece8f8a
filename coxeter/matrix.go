package coxeter

// Matrix is a symmetric integer Coxeter matrix: diagonal entries are 1,
// entry (i, j) is the order of the rotation generated by mirrors i and j.
type Matrix [][]int

// MatrixFromDiagram builds the Coxeter matrix of a diagram.
// Fractional labels p/q contribute their numerator p, which is the order
// of the group element ρiρj for a star polytope branch.
func MatrixFromDiagram(d Diagram) (Matrix, error) {
	rank, err := d.Rank()
	if err != nil {
		return nil, err
	}

	m := make(Matrix, rank)
	for i := range m {
		m[i] = make([]int, rank)
		m[i][i] = 1
	}

	k := 0
	for i := 0; i < rank; i++ {
		for j := i + 1; j < rank; j++ {
			p, _, err := rationalize(d[k])
			if err != nil {
				return nil, err
			}
			m[i][j] = p
			m[j][i] = p
			k++
		}
	}

	return m, nil
}
