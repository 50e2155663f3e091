package nizk

import (
	"fmt"

	"github.com/anupsv/spartan-core/commitments"
	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/internal/common"
	"github.com/anupsv/spartan-core/randtape"
	"github.com/anupsv/spartan-core/transcript"
)

// EqualityProof proves that two commitments (with independent blinds) open
// to the same value.
type EqualityProof struct {
	Alpha curve.Point
	Z     curve.Scalar
}

func equalityProtocolName() []byte { return []byte("equality proof") }

// ProveEquality proves v1=v2 given independent blinds s1, s2, returning the
// proof and both commitments.
func ProveEquality(gens *commitments.MultiCommitGens, t *transcript.Transcript, tape *randtape.Tape, v1, s1, v2, s2 curve.Scalar) (*EqualityProof, curve.Point, curve.Point, error) {
	t.AppendProtocolName(equalityProtocolName())

	r := tape.RandomScalar([]byte("r"))

	C1, err := commitments.Commit(v1, s1, gens)
	if err != nil {
		return nil, curve.Point{}, curve.Point{}, err
	}
	t.AppendPoint([]byte("C1"), C1)

	C2, err := commitments.Commit(v2, s2, gens)
	if err != nil {
		return nil, curve.Point{}, curve.Point{}, err
	}
	t.AppendPoint([]byte("C2"), C2)

	alpha := curve.ScalarMul(gens.H, r)
	t.AppendPoint([]byte("alpha"), alpha)

	c := t.ChallengeScalar([]byte("c"))

	var diff, z curve.Scalar
	diff.Sub(&s1, &s2)
	z.Mul(&c, &diff)
	z.Add(&z, &r)

	return &EqualityProof{Alpha: alpha, Z: z}, C1, C2, nil
}

// Verify checks that C1 and C2 commit to the same value.
func (p *EqualityProof) Verify(gens *commitments.MultiCommitGens, t *transcript.Transcript, C1, C2 curve.Point) error {
	t.AppendProtocolName(equalityProtocolName())
	t.AppendPoint([]byte("C1"), C1)
	t.AppendPoint([]byte("C2"), C2)
	t.AppendPoint([]byte("alpha"), p.Alpha)

	c := t.ChallengeScalar([]byte("c"))

	diff := curve.Sub(C1, C2)
	rhs := curve.Add(curve.ScalarMul(diff, c), p.Alpha)
	lhs := curve.ScalarMul(gens.H, p.Z)

	if !curve.Equal(lhs, rhs) {
		return fmt.Errorf("nizk: equality proof: %w", common.ErrVerificationFailed)
	}
	return nil
}
