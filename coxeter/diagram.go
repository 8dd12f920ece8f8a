package coxeter

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDiagramLength is returned when the diagram length is not 3, 6 or 10
	// (the pair counts for ranks 3, 4 and 5).
	ErrDiagramLength = errors.New("coxeter: diagram length must be 3, 6 or 10")

	// ErrBadLabel is returned when a branch label cannot be read as a
	// rational p/q with p >= 2 and a small denominator.
	ErrBadLabel = errors.New("coxeter: invalid branch label")

	// ErrDimensionMismatch is returned when a distance vector length does
	// not match the diagram rank.
	ErrDimensionMismatch = errors.New("coxeter: distance vector length does not match rank")
)

// labelEps is the tolerance for rationalizing a branch label.
const labelEps = 1e-8

// maxLabelDenominator bounds the denominator search when rationalizing a
// fractional branch label. Star polytope labels in practice are p/2 or
// p/3; 12 leaves comfortable headroom.
const maxLabelDenominator = 12

// Diagram is a Coxeter diagram given as branch labels for the unordered
// generator pairs (0,1), (0,2), ..., in lexicographic order.
type Diagram []float64

// Rank returns the number of mirrors encoded by the diagram.
// Only ranks 3, 4 and 5 are modeled; any other diagram length returns
// ErrDiagramLength.
func (d Diagram) Rank() (int, error) {
	switch len(d) {
	case 3:
		return 3, nil
	case 6:
		return 4, nil
	case 10:
		return 5, nil
	default:
		return 0, fmt.Errorf("len %d: %w", len(d), ErrDiagramLength)
	}
}

// rationalize reads a branch label as a fraction p/q in lowest terms.
// Integer labels come back as (label, 1); 2.5 comes back as (5, 2).
func rationalize(label float64) (p, q int, err error) {
	if math.IsNaN(label) || math.IsInf(label, 0) || label < 2-labelEps {
		return 0, 0, fmt.Errorf("label %v: %w", label, ErrBadLabel)
	}
	for den := 1; den <= maxLabelDenominator; den++ {
		num := math.Round(label * float64(den))
		if math.Abs(label*float64(den)-num) < labelEps*float64(den) {
			p, q = int(num), den
			if gcd := gcdInt(p, q); gcd > 1 {
				p, q = p/gcd, q/gcd
			}
			if p < 2 {
				return 0, 0, fmt.Errorf("label %v: %w", label, ErrBadLabel)
			}

			return p, q, nil
		}
	}

	return 0, 0, fmt.Errorf("label %v: %w", label, ErrBadLabel)
}

func gcdInt(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
