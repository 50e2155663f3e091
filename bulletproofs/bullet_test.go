package bulletproofs

import (
	"testing"

	"github.com/anupsv/spartan-core/commitments"
	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/transcript"
)

func TestProveVerifyRoundTrip(t *testing.T) {
	const n = 8
	gens := commitments.NewMultiCommitGens(n+1, []byte("bullet-test"))
	gVec, gens1 := gens.SplitAt(n)
	uBase := gens1.G[0]
	hBase := gVec.H

	x := make([]curve.Scalar, n)
	a := make([]curve.Scalar, n)
	for i := range x {
		x[i] = curve.RandomScalar()
		a[i] = curve.RandomScalar()
	}
	dot, err := curve.InnerProduct(x, a)
	if err != nil {
		t.Fatalf("InnerProduct: %v", err)
	}

	blindGamma := curve.RandomScalar()
	gamma, err := commitGamma(gVec.G, x, uBase, dot, hBase, blindGamma)
	if err != nil {
		t.Fatalf("commitGamma: %v", err)
	}

	blinds := make([]Blinds, Log2(n))
	for i := range blinds {
		blinds[i] = Blinds{SL: curve.RandomScalar(), SR: curve.RandomScalar()}
	}

	proverT := transcript.New([]byte("test"))
	proof, xHat, aHat, gHat, rHatGamma, err := Prove(proverT, uBase, gVec.G, hBase, x, a, blindGamma, blinds)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	var xHatATimesAHat curve.Scalar
	xHatATimesAHat.Mul(&xHat, &aHat)
	lhs := curve.Add(curve.ScalarMul(gHat, xHat), curve.ScalarMul(uBase, xHatATimesAHat))
	lhs = curve.Add(lhs, curve.ScalarMul(hBase, rHatGamma))

	verifierT := transcript.New([]byte("test"))
	gHatV, gammaHatV, aHatV, err := Verify(proof, n, a, verifierT, gamma, gVec.G)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if !curve.Equal(gHatV, gHat) {
		t.Fatalf("verifier's folded generator disagrees with the prover's")
	}
	if !aHatV.Equal(&aHat) {
		t.Fatalf("verifier's folded public scalar disagrees with the prover's")
	}
	if !curve.Equal(lhs, gammaHatV) {
		t.Fatalf("final opening check failed: folded commitment does not match the folded opening")
	}
}

func TestProveRejectsNonPowerOfTwo(t *testing.T) {
	gens := commitments.NewMultiCommitGens(4, []byte("bullet-test"))
	x := []curve.Scalar{curve.RandomScalar(), curve.RandomScalar(), curve.RandomScalar()}
	a := []curve.Scalar{curve.RandomScalar(), curve.RandomScalar(), curve.RandomScalar()}
	tr := transcript.New([]byte("test"))
	_, _, _, _, _, err := Prove(tr, gens.G[0], gens.G[:3], gens.H, x, a, curve.RandomScalar(), nil)
	if err == nil {
		t.Fatalf("expected error proving over a non-power-of-two vector length")
	}
}

func TestVerifyRejectsWrongRoundCount(t *testing.T) {
	const n = 4
	gens := commitments.NewMultiCommitGens(n+1, []byte("bullet-test"))
	gVec, _ := gens.SplitAt(n)
	a := make([]curve.Scalar, n)
	for i := range a {
		a[i] = curve.RandomScalar()
	}
	proof := &Proof{L: []curve.Point{curve.Generator()}, R: []curve.Point{curve.Generator()}}
	tr := transcript.New([]byte("test"))
	if _, _, _, err := Verify(proof, n, a, tr, curve.Identity(), gVec.G); err == nil {
		t.Fatalf("expected error verifying a proof with the wrong number of rounds for n=%d", n)
	}
}

// commitGamma builds Gamma = <x,g> + <x,a>*u + blindGamma*h, the relation
// Prove/Verify collapse via the inner-product reduction.
func commitGamma(g []curve.Point, x []curve.Scalar, u curve.Point, dot curve.Scalar, h curve.Point, blind curve.Scalar) (curve.Point, error) {
	bases := make([]curve.Point, 0, len(g)+2)
	bases = append(bases, g...)
	bases = append(bases, u, h)
	scalars := make([]curve.Scalar, 0, len(x)+2)
	scalars = append(scalars, x...)
	scalars = append(scalars, dot, blind)
	return curve.MultiScalarMul(bases, scalars)
}
