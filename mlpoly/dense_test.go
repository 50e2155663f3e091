package mlpoly

import (
	"testing"

	"github.com/anupsv/spartan-core/curve"
)

func TestNewRejectsNonPowerOfTwo(t *testing.T) {
	if _, err := New([]curve.Scalar{curve.RandomScalar(), curve.RandomScalar(), curve.RandomScalar()}); err == nil {
		t.Fatalf("expected error constructing a dense polynomial of length 3")
	}
}

func TestNumVars(t *testing.T) {
	p, err := New(make([]curve.Scalar, 8))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.NumVars() != 3 {
		t.Fatalf("NumVars() = %d, want 3", p.NumVars())
	}
}

// TestEvaluateAtBooleanPointReturnsEntry checks that evaluating the
// multilinear extension at a vertex of the hypercube returns exactly the
// table entry stored there, the defining property of a multilinear
// extension of a function on the Boolean hypercube.
func TestEvaluateAtBooleanPointReturnsEntry(t *testing.T) {
	z := make([]curve.Scalar, 8)
	for i := range z {
		z[i] = curve.ScalarFromUint64(uint64(i + 1))
	}
	p, err := New(z)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for idx := 0; idx < 8; idx++ {
		r := make([]curve.Scalar, 3)
		for bit := 0; bit < 3; bit++ {
			if (idx>>(2-bit))&1 == 1 {
				r[bit] = curve.ScalarFromUint64(1)
			}
		}
		got, err := p.Evaluate(r)
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		if !got.Equal(&z[idx]) {
			t.Fatalf("Evaluate at hypercube vertex %d = %v, want %v", idx, got, z[idx])
		}
	}
}

func TestBoundPolyVarTopHalvesLength(t *testing.T) {
	z := make([]curve.Scalar, 8)
	for i := range z {
		z[i] = curve.RandomScalar()
	}
	p, err := New(z)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p.BoundPolyVarTop(curve.RandomScalar())
	if p.Len() != 4 {
		t.Fatalf("BoundPolyVarTop halved length = %d, want 4", p.Len())
	}
}

// TestBoundPolyVarTopConsistentWithEvaluate checks that binding the top
// variable to r and then evaluating the rest at a random point agrees with
// evaluating the whole polynomial at (r, rest) directly — BoundPolyVarTop
// must use the same variable order Evaluate (via EqPolynomial) assumes.
func TestBoundPolyVarTopConsistentWithEvaluate(t *testing.T) {
	z := make([]curve.Scalar, 8)
	for i := range z {
		z[i] = curve.RandomScalar()
	}
	p, err := New(z)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r0 := curve.RandomScalar()
	rest := []curve.Scalar{curve.RandomScalar(), curve.RandomScalar()}
	full := append([]curve.Scalar{r0}, rest...)

	// Evaluate the original table directly at (r0, rest) before mutating it.
	viaFull, err := p.Evaluate(full)
	if err != nil {
		t.Fatalf("Evaluate on full polynomial: %v", err)
	}

	p.BoundPolyVarTop(r0)
	viaBound, err := p.Evaluate(rest)
	if err != nil {
		t.Fatalf("Evaluate on bound polynomial: %v", err)
	}

	if !viaBound.Equal(&viaFull) {
		t.Fatalf("BoundPolyVarTop then Evaluate disagrees with direct Evaluate: %v != %v", viaBound, viaFull)
	}
}
