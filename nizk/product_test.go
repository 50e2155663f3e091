package nizk

import (
	"testing"

	"github.com/anupsv/spartan-core/commitments"
	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/randtape"
	"github.com/anupsv/spartan-core/transcript"
)

func TestProductProofRoundTrip(t *testing.T) {
	gens := commitments.NewMultiCommitGens(1, []byte("product-test"))
	x := curve.RandomScalar()
	y := curve.RandomScalar()
	var z curve.Scalar
	z.Mul(&x, &y)
	rX := curve.RandomScalar()
	rY := curve.RandomScalar()
	rZ := curve.RandomScalar()

	proverT := transcript.New([]byte("test"))
	proverTape := randtape.New([]byte("tape"))
	proof, X, Y, Z, err := ProveProduct(gens, proverT, proverTape, x, rX, y, rY, z, rZ)
	if err != nil {
		t.Fatalf("ProveProduct: %v", err)
	}

	verifierT := transcript.New([]byte("test"))
	if err := proof.Verify(gens, verifierT, X, Y, Z); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestProductProofRejectsWrongProduct(t *testing.T) {
	gens := commitments.NewMultiCommitGens(1, []byte("product-test"))
	x := curve.RandomScalar()
	y := curve.RandomScalar()
	z := curve.RandomScalar() // not x*y
	rX := curve.RandomScalar()
	rY := curve.RandomScalar()
	rZ := curve.RandomScalar()

	proverT := transcript.New([]byte("test"))
	proverTape := randtape.New([]byte("tape"))
	proof, X, Y, Z, err := ProveProduct(gens, proverT, proverTape, x, rX, y, rY, z, rZ)
	if err != nil {
		t.Fatalf("ProveProduct: %v", err)
	}

	verifierT := transcript.New([]byte("test"))
	if err := proof.Verify(gens, verifierT, X, Y, Z); err == nil {
		t.Fatalf("expected verification failure when Z does not commit to x*y")
	}
}
