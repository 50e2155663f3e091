package mlpoly

import (
	"testing"

	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/randtape"
	"github.com/anupsv/spartan-core/transcript"
)

func TestPolyCommitEvalRoundTrip(t *testing.T) {
	numVars := 4 // 16 entries, split 2x2 row/col variables
	gens := NewPolyCommitmentGens(numVars, []byte("polycommit-test"))

	z := make([]curve.Scalar, 1<<numVars)
	for i := range z {
		z[i] = curve.RandomScalar()
	}
	poly, err := New(z)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tape := randtape.New([]byte("tape"))
	comm, blinds, err := Commit(poly, gens, tape)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if len(comm.RowComms) != gens.numRows() {
		t.Fatalf("commitment has %d rows, want %d", len(comm.RowComms), gens.numRows())
	}

	r := make([]curve.Scalar, numVars)
	for i := range r {
		r[i] = curve.RandomScalar()
	}
	eval, err := poly.Evaluate(r)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	blindEval := curve.RandomScalar()

	proverT := transcript.New([]byte("test"))
	proverTape := randtape.New([]byte("prove-tape"))
	proof, commEval, err := Prove(poly, blinds, r, eval, blindEval, gens, proverT, proverTape)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	verifierT := transcript.New([]byte("test"))
	if err := proof.Verify(gens, verifierT, r, commEval, comm); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestPolyCommitEvalRejectsWrongEval(t *testing.T) {
	numVars := 4
	gens := NewPolyCommitmentGens(numVars, []byte("polycommit-test"))

	z := make([]curve.Scalar, 1<<numVars)
	for i := range z {
		z[i] = curve.RandomScalar()
	}
	poly, err := New(z)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tape := randtape.New([]byte("tape"))
	comm, blinds, err := Commit(poly, gens, tape)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	r := make([]curve.Scalar, numVars)
	for i := range r {
		r[i] = curve.RandomScalar()
	}
	wrongEval := curve.RandomScalar() // not poly(r)
	blindEval := curve.RandomScalar()

	proverT := transcript.New([]byte("test"))
	proverTape := randtape.New([]byte("prove-tape"))
	proof, commEval, err := Prove(poly, blinds, r, wrongEval, blindEval, gens, proverT, proverTape)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	verifierT := transcript.New([]byte("test"))
	if err := proof.Verify(gens, verifierT, r, commEval, comm); err == nil {
		t.Fatalf("expected verification failure for a claimed evaluation that doesn't match the polynomial")
	}
}

func TestCommitRejectsMismatchedShape(t *testing.T) {
	gens := NewPolyCommitmentGens(4, []byte("polycommit-test"))
	poly, err := New(make([]curve.Scalar, 4)) // too short for a 4-var (16-entry) table
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tape := randtape.New([]byte("tape"))
	if _, _, err := Commit(poly, gens, tape); err == nil {
		t.Fatalf("expected error committing a polynomial whose length doesn't match the generator shape")
	}
}
