package mlpoly

import (
	"testing"

	"github.com/anupsv/spartan-core/curve"
)

func TestEvalsSumToOne(t *testing.T) {
	r := []curve.Scalar{curve.RandomScalar(), curve.RandomScalar(), curve.RandomScalar()}
	evals := (&EqPolynomial{R: r}).Evals()
	var sum curve.Scalar
	for _, e := range evals {
		sum.Add(&sum, &e)
	}
	one := curve.ScalarFromUint64(1)
	if !sum.Equal(&one) {
		t.Fatalf("eq(R,.) table did not sum to 1: got %v", sum)
	}
}

func TestEvalsMatchesBooleanIndicator(t *testing.T) {
	// At a Boolean point R, eq(R,x) must be 1 exactly at x=R and 0
	// everywhere else on the hypercube.
	r := []curve.Scalar{curve.ScalarFromUint64(1), curve.ScalarFromUint64(0), curve.ScalarFromUint64(1)}
	evals := (&EqPolynomial{R: r}).Evals()
	// R=(1,0,1), MSB-first, is index 0b101 = 5.
	one := curve.ScalarFromUint64(1)
	for idx, v := range evals {
		if idx == 5 {
			if !v.Equal(&one) {
				t.Fatalf("eq(R,.)[%d] = %v, want 1", idx, v)
			}
		} else if !v.IsZero() {
			t.Fatalf("eq(R,.)[%d] = %v, want 0", idx, v)
		}
	}
}

// TestEvalsConsistentWithBoundPolyVarTop locks in the bit order agreement
// between EqPolynomial.Evals and DensePolynomial.BoundPolyVarTop: binding
// variables one at a time via BoundPolyVarTop must equal a single
// Evaluate() call using the eq-polynomial expansion, for the same r in the
// same order.
func TestEvalsConsistentWithBoundPolyVarTop(t *testing.T) {
	z := make([]curve.Scalar, 8)
	for i := range z {
		z[i] = curve.RandomScalar()
	}
	r := []curve.Scalar{curve.RandomScalar(), curve.RandomScalar(), curve.RandomScalar()}

	p, err := New(append([]curve.Scalar(nil), z...))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	viaEval, err := p.Evaluate(r)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	q, err := New(append([]curve.Scalar(nil), z...))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, ri := range r {
		q.BoundPolyVarTop(ri)
	}
	if q.Len() != 1 {
		t.Fatalf("fully bound polynomial should have length 1, got %d", q.Len())
	}

	if !q.Z[0].Equal(&viaEval) {
		t.Fatalf("sequential BoundPolyVarTop disagrees with Evaluate: %v != %v", q.Z[0], viaEval)
	}
}
