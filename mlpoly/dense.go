// Package mlpoly implements multilinear polynomials in their dense
// evaluation-table representation, the eq-polynomial expansion used to turn
// a point into evaluation weights, a Hyrax-style row/column commitment to a
// dense polynomial, and the sparse polynomial used to evaluate R1CS's public
// input tail. This supporting machinery is outside the original distillation
// boundary but is required to make the sum-check and R1CS arguments of §4.5
// and §4.6 concrete; it is grounded on the call shape of
// original_source/src/r1csproof.rs (DensePolynomial::new/bound_poly_var_top/
// evaluate/commit, EqPolynomial::new(...).evals(), SparsePolynomial::new/
// evaluate) since dense_mlpoly.rs and sparse_mlpoly.rs themselves were not
// part of the retrieval pack.
package mlpoly

import (
	"fmt"

	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/internal/common"
)

// DensePolynomial represents a multilinear polynomial over {0,1}^ell by its
// table of 2^ell evaluations, indexed so that bit i of the index (MSB first)
// selects the value bound to variable i.
type DensePolynomial struct {
	Z []curve.Scalar
}

// New wraps an evaluation table. len(z) must be a power of two.
func New(z []curve.Scalar) (*DensePolynomial, error) {
	n := len(z)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("mlpoly: table length %d is not a power of two: %w", n, common.ErrInvalidInput)
	}
	return &DensePolynomial{Z: z}, nil
}

// Len returns the current table length (2^(remaining number of variables)).
func (p *DensePolynomial) Len() int { return len(p.Z) }

// NumVars returns the number of unbound variables.
func (p *DensePolynomial) NumVars() int { return log2(len(p.Z)) }

// BoundPolyVarTop binds the first (most significant) remaining variable to
// r, halving the table: new[i] = low[i] + r*(high[i]-low[i]).
func (p *DensePolynomial) BoundPolyVarTop(r curve.Scalar) {
	half := len(p.Z) / 2
	p.Z = curve.FoldScalars(p.Z[:half], p.Z[half:], r)
}

// Evaluate computes p(r) = <Z, eq(r)> via the eq-polynomial expansion.
func (p *DensePolynomial) Evaluate(r []curve.Scalar) (curve.Scalar, error) {
	if len(r) != p.NumVars() {
		return curve.Scalar{}, fmt.Errorf("mlpoly: expected %d evaluation coordinates, got %d: %w", p.NumVars(), len(r), common.ErrInvalidInput)
	}
	evals := (&EqPolynomial{R: r}).Evals()
	return curve.InnerProduct(p.Z, evals)
}

func log2(n int) int {
	r := 0
	for n > 1 {
		n >>= 1
		r++
	}
	return r
}
