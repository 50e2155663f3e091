package mlpoly

import (
	"testing"

	"github.com/anupsv/spartan-core/curve"
)

func TestSparsePolynomialMatchesDenseEquivalent(t *testing.T) {
	numVars := 3
	z := make([]curve.Scalar, 1<<numVars)
	z[3] = curve.ScalarFromUint64(5)
	z[6] = curve.ScalarFromUint64(9)

	dense, err := New(z)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	sparse := &SparsePolynomial{
		NumVars: numVars,
		Entries: []SparsePolyEntry{
			{Idx: 3, Val: curve.ScalarFromUint64(5)},
			{Idx: 6, Val: curve.ScalarFromUint64(9)},
		},
	}

	r := []curve.Scalar{curve.RandomScalar(), curve.RandomScalar(), curve.RandomScalar()}

	wantEval, err := dense.Evaluate(r)
	if err != nil {
		t.Fatalf("dense Evaluate: %v", err)
	}
	gotEval, err := sparse.Evaluate(r)
	if err != nil {
		t.Fatalf("sparse Evaluate: %v", err)
	}

	if !gotEval.Equal(&wantEval) {
		t.Fatalf("sparse Evaluate = %v, want %v (matching dense table)", gotEval, wantEval)
	}
}

func TestSparsePolynomialRejectsWrongPointLength(t *testing.T) {
	p := &SparsePolynomial{NumVars: 3}
	if _, err := p.Evaluate([]curve.Scalar{curve.RandomScalar()}); err == nil {
		t.Fatalf("expected error evaluating with too few coordinates")
	}
}
