package mlpoly

import (
	"fmt"

	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/internal/common"
)

// SparsePolyEntry is one nonzero coordinate of a sparse multilinear
// polynomial: the value Val at boolean index Idx.
type SparsePolyEntry struct {
	Idx int
	Val curve.Scalar
}

// SparsePolynomial is a multilinear polynomial over {0,1}^NumVars given by
// its (typically few) nonzero evaluation-table entries. It is used to
// evaluate the public-input tail of z without materializing a dense
// evaluation table for it.
type SparsePolynomial struct {
	NumVars int
	Entries []SparsePolyEntry
}

// Evaluate computes the polynomial at r by summing each entry's
// contribution Val*eq(bits(Idx), r), the sparse analogue of
// DensePolynomial.Evaluate's full table dot product.
func (p *SparsePolynomial) Evaluate(r []curve.Scalar) (curve.Scalar, error) {
	if len(r) != p.NumVars {
		return curve.Scalar{}, fmt.Errorf("mlpoly: sparse polynomial expected %d coordinates, got %d: %w", p.NumVars, len(r), common.ErrInvalidInput)
	}
	var sum curve.Scalar
	one := curve.ScalarFromUint64(1)
	for _, e := range p.Entries {
		chi := curve.ScalarFromUint64(1)
		for i := 0; i < p.NumVars; i++ {
			bit := (e.Idx >> (p.NumVars - 1 - i)) & 1
			if bit == 1 {
				chi.Mul(&chi, &r[i])
			} else {
				var oneMinusR curve.Scalar
				oneMinusR.Sub(&one, &r[i])
				chi.Mul(&chi, &oneMinusR)
			}
		}
		var term curve.Scalar
		term.Mul(&chi, &e.Val)
		sum.Add(&sum, &term)
	}
	return sum, nil
}
