package nizk

import (
	"fmt"

	"github.com/anupsv/spartan-core/commitments"
	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/internal/common"
	"github.com/anupsv/spartan-core/randtape"
	"github.com/anupsv/spartan-core/transcript"
)

// DotProductProof is the linear-size proof that y = <a, x> for a committed
// vector x (committed under gensN) and public vector a, with the result y
// itself committed under gens1. Proof size is O(n); DotProductProofLog
// replaces the vector response z with an O(log n) Bulletproofs reduction.
type DotProductProof struct {
	Delta  curve.Point
	Beta   curve.Point
	Z      []curve.Scalar
	ZDelta curve.Scalar
	ZBeta  curve.Scalar
}

func dotProductProtocolName() []byte { return []byte("dot product proof") }

// ProveDotProduct proves y=<a,x> given blinds blindX, blindY, returning the
// proof and the commitments Cx=Commit(x;blindX,gensN), Cy=Commit(y;blindY,gens1).
func ProveDotProduct(gens *commitments.DotProductProofGens, t *transcript.Transcript, tape *randtape.Tape, xVec []curve.Scalar, blindX curve.Scalar, aVec []curve.Scalar, y curve.Scalar, blindY curve.Scalar) (*DotProductProof, curve.Point, curve.Point, error) {
	n := len(xVec)
	if len(aVec) != n || gens.N != n {
		return nil, curve.Point{}, curve.Point{}, fmt.Errorf("nizk: dot product proof: mismatched lengths: %w", common.ErrInvalidInput)
	}

	t.AppendProtocolName(dotProductProtocolName())

	Cx, err := commitments.CommitVector(xVec, blindX, gens.GensN)
	if err != nil {
		return nil, curve.Point{}, curve.Point{}, err
	}
	t.AppendPoint([]byte("Cx"), Cx)

	Cy, err := commitments.Commit(y, blindY, gens.Gens1)
	if err != nil {
		return nil, curve.Point{}, curve.Point{}, err
	}
	t.AppendPoint([]byte("Cy"), Cy)
	t.AppendScalars([]byte("a"), aVec)

	dVec := tape.RandomVector([]byte("d_vec"), n)
	rDelta := tape.RandomScalar([]byte("r_delta"))
	rBeta := tape.RandomScalar([]byte("r_beta"))

	delta, err := commitments.CommitVector(dVec, rDelta, gens.GensN)
	if err != nil {
		return nil, curve.Point{}, curve.Point{}, err
	}
	t.AppendPoint([]byte("delta"), delta)

	dotAD, err := curve.InnerProduct(aVec, dVec)
	if err != nil {
		return nil, curve.Point{}, curve.Point{}, err
	}
	beta, err := commitments.Commit(dotAD, rBeta, gens.Gens1)
	if err != nil {
		return nil, curve.Point{}, curve.Point{}, err
	}
	t.AppendPoint([]byte("beta"), beta)

	c := t.ChallengeScalar([]byte("c"))

	z := make([]curve.Scalar, n)
	for i := range z {
		var tmp curve.Scalar
		tmp.Mul(&c, &xVec[i])
		z[i].Add(&tmp, &dVec[i])
	}

	var zDelta, zBeta, tmp curve.Scalar
	tmp.Mul(&c, &blindX)
	zDelta.Add(&tmp, &rDelta)
	tmp.Mul(&c, &blindY)
	zBeta.Add(&tmp, &rBeta)

	proof := &DotProductProof{Delta: delta, Beta: beta, Z: z, ZDelta: zDelta, ZBeta: zBeta}
	return proof, Cx, Cy, nil
}

// Verify checks the proof against public vector a and commitments Cx, Cy.
func (p *DotProductProof) Verify(gens *commitments.DotProductProofGens, t *transcript.Transcript, aVec []curve.Scalar, Cx, Cy curve.Point) error {
	n := gens.N
	if len(aVec) != n || len(p.Z) != n {
		return fmt.Errorf("nizk: dot product proof: mismatched lengths: %w", common.ErrInvalidInput)
	}

	t.AppendProtocolName(dotProductProtocolName())
	t.AppendPoint([]byte("Cx"), Cx)
	t.AppendPoint([]byte("Cy"), Cy)
	t.AppendScalars([]byte("a"), aVec)
	t.AppendPoint([]byte("delta"), p.Delta)
	t.AppendPoint([]byte("beta"), p.Beta)

	c := t.ChallengeScalar([]byte("c"))

	lhs1, err := commitments.CommitVector(p.Z, p.ZDelta, gens.GensN)
	if err != nil {
		return err
	}
	rhs1 := curve.Add(p.Delta, curve.ScalarMul(Cx, c))
	ok1 := curve.Equal(lhs1, rhs1)

	dotAZ, err := curve.InnerProduct(aVec, p.Z)
	if err != nil {
		return err
	}
	lhs2, err := commitments.Commit(dotAZ, p.ZBeta, gens.Gens1)
	if err != nil {
		return err
	}
	rhs2 := curve.Add(p.Beta, curve.ScalarMul(Cy, c))
	ok2 := curve.Equal(lhs2, rhs2)

	if !(ok1 && ok2) {
		return fmt.Errorf("nizk: dot product proof: %w", common.ErrVerificationFailed)
	}
	return nil
}
