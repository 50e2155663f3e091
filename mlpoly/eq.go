package mlpoly

import "github.com/anupsv/spartan-core/curve"

// EqPolynomial represents eq(R, .), the multilinear extension of the
// equality function: eq(R,x) = Π_i (R_i*x_i + (1-R_i)*(1-x_i)).
type EqPolynomial struct {
	R []curve.Scalar
}

// Evals returns the length-2^len(R) table of eq(R,x) for every x in
// {0,1}^len(R), built by iteratively splitting each entry into its
// R_i-weighted and (1-R_i)-weighted halves. R is processed last-to-first so
// that R[0] ends up controlling the most-significant bit of the table index,
// matching DensePolynomial.BoundPolyVarTop's variable order (the first,
// top-level BoundPolyVarTop call binds the MSB-indexed half of the table).
func (eq *EqPolynomial) Evals() []curve.Scalar {
	ell := len(eq.R)
	size := 1 << ell
	evals := make([]curve.Scalar, size)
	evals[0] = curve.ScalarFromUint64(1)

	one := curve.ScalarFromUint64(1)
	for i := 0; i < ell; i++ {
		ri := eq.R[ell-1-i]
		half := 1 << i
		var oneMinusR curve.Scalar
		oneMinusR.Sub(&one, &ri)
		for j := half - 1; j >= 0; j-- {
			var left, right curve.Scalar
			left.Mul(&evals[j], &oneMinusR)
			right.Mul(&evals[j], &ri)
			evals[j] = left
			evals[half+j] = right
		}
	}
	return evals
}
