// Package nizk implements the Σ-protocols of §4.3: KnowledgeProof,
// EqualityProof, ProductProof, DotProductProof, and DotProductProofLog.
// Every prove/verify pair is grounded line-for-line on
// original_source/src/nizk/mod.rs.
package nizk

import (
	"fmt"

	"github.com/anupsv/spartan-core/commitments"
	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/internal/common"
	"github.com/anupsv/spartan-core/randtape"
	"github.com/anupsv/spartan-core/transcript"
)

// KnowledgeProof proves knowledge of (x, r) such that C = x*G + r*h.
type KnowledgeProof struct {
	Alpha  curve.Point
	Z1, Z2 curve.Scalar
}

func knowledgeProtocolName() []byte { return []byte("knowledge proof") }

// ProveKnowledge runs the prover side and returns the proof together with
// the commitment C it is attesting to.
func ProveKnowledge(gens *commitments.MultiCommitGens, t *transcript.Transcript, tape *randtape.Tape, x, r curve.Scalar) (*KnowledgeProof, curve.Point, error) {
	t.AppendProtocolName(knowledgeProtocolName())

	t1 := tape.RandomScalar([]byte("t1"))
	t2 := tape.RandomScalar([]byte("t2"))

	C, err := commitments.Commit(x, r, gens)
	if err != nil {
		return nil, curve.Point{}, err
	}
	t.AppendPoint([]byte("C"), C)

	alpha, err := commitments.Commit(t1, t2, gens)
	if err != nil {
		return nil, curve.Point{}, err
	}
	t.AppendPoint([]byte("alpha"), alpha)

	c := t.ChallengeScalar([]byte("c"))

	var z1, z2, tmp curve.Scalar
	tmp.Mul(&c, &x)
	z1.Add(&tmp, &t1)
	tmp.Mul(&c, &r)
	z2.Add(&tmp, &t2)

	return &KnowledgeProof{Alpha: alpha, Z1: z1, Z2: z2}, C, nil
}

// Verify checks the proof against commitment C.
func (p *KnowledgeProof) Verify(gens *commitments.MultiCommitGens, t *transcript.Transcript, C curve.Point) error {
	t.AppendProtocolName(knowledgeProtocolName())
	t.AppendPoint([]byte("C"), C)
	t.AppendPoint([]byte("alpha"), p.Alpha)

	c := t.ChallengeScalar([]byte("c"))

	lhs, err := commitments.Commit(p.Z1, p.Z2, gens)
	if err != nil {
		return err
	}
	rhs := curve.Add(curve.ScalarMul(C, c), p.Alpha)

	if !curve.Equal(lhs, rhs) {
		return fmt.Errorf("nizk: knowledge proof: %w", common.ErrVerificationFailed)
	}
	return nil
}
