package nizk

import (
	"fmt"

	"github.com/anupsv/spartan-core/commitments"
	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/internal/common"
	"github.com/anupsv/spartan-core/randtape"
	"github.com/anupsv/spartan-core/transcript"
)

// ProductProof proves that Z commits to x*y, given commitments X, Y, Z to
// x, y, and x*y. The delta commitment binds the claim via a base-change: it
// is computed under a length-1 generator set whose sole generator is the
// committed point X itself, not the shared G.
type ProductProof struct {
	Alpha, Beta, Delta curve.Point
	Z                  [5]curve.Scalar
}

func productProtocolName() []byte { return []byte("product proof") }

// ProveProduct proves z=x*y given blinds rX, rY, rZ, returning the proof and
// the three commitments X, Y, Z.
func ProveProduct(gens *commitments.MultiCommitGens, t *transcript.Transcript, tape *randtape.Tape, x, rX, y, rY, z, rZ curve.Scalar) (*ProductProof, curve.Point, curve.Point, curve.Point, error) {
	t.AppendProtocolName(productProtocolName())

	b1 := tape.RandomScalar([]byte("b1"))
	b2 := tape.RandomScalar([]byte("b2"))
	b3 := tape.RandomScalar([]byte("b3"))
	b4 := tape.RandomScalar([]byte("b4"))
	b5 := tape.RandomScalar([]byte("b5"))

	X, err := commitments.Commit(x, rX, gens)
	if err != nil {
		return nil, curve.Point{}, curve.Point{}, curve.Point{}, err
	}
	t.AppendPoint([]byte("X"), X)

	Y, err := commitments.Commit(y, rY, gens)
	if err != nil {
		return nil, curve.Point{}, curve.Point{}, curve.Point{}, err
	}
	t.AppendPoint([]byte("Y"), Y)

	Z, err := commitments.Commit(z, rZ, gens)
	if err != nil {
		return nil, curve.Point{}, curve.Point{}, curve.Point{}, err
	}
	t.AppendPoint([]byte("Z"), Z)

	alpha, err := commitments.Commit(b1, b2, gens)
	if err != nil {
		return nil, curve.Point{}, curve.Point{}, curve.Point{}, err
	}
	t.AppendPoint([]byte("alpha"), alpha)

	beta, err := commitments.Commit(b3, b4, gens)
	if err != nil {
		return nil, curve.Point{}, curve.Point{}, curve.Point{}, err
	}
	t.AppendPoint([]byte("beta"), beta)

	gensX := &commitments.MultiCommitGens{N: 1, G: []curve.Point{X}, H: gens.H}
	delta, err := commitments.Commit(b3, b5, gensX)
	if err != nil {
		return nil, curve.Point{}, curve.Point{}, curve.Point{}, err
	}
	t.AppendPoint([]byte("delta"), delta)

	c := t.ChallengeScalar([]byte("c"))

	var z1, z2, z3, z4, z5, tmp curve.Scalar
	tmp.Mul(&c, &x)
	z1.Add(&b1, &tmp)
	tmp.Mul(&c, &rX)
	z2.Add(&b2, &tmp)
	tmp.Mul(&c, &y)
	z3.Add(&b3, &tmp)
	tmp.Mul(&c, &rY)
	z4.Add(&b4, &tmp)
	var rxy curve.Scalar
	rxy.Mul(&rX, &y)
	tmp.Sub(&rZ, &rxy)
	tmp.Mul(&c, &tmp)
	z5.Add(&b5, &tmp)

	proof := &ProductProof{
		Alpha: alpha,
		Beta:  beta,
		Delta: delta,
		Z:     [5]curve.Scalar{z1, z2, z3, z4, z5},
	}
	return proof, X, Y, Z, nil
}

func checkEquality(P, X curve.Point, c curve.Scalar, gens *commitments.MultiCommitGens, z1, z2 curve.Scalar) (bool, error) {
	lhs := curve.Add(P, curve.ScalarMul(X, c))
	rhs, err := commitments.Commit(z1, z2, gens)
	if err != nil {
		return false, err
	}
	return curve.Equal(lhs, rhs), nil
}

// Verify checks the proof against commitments X, Y, Z.
func (p *ProductProof) Verify(gens *commitments.MultiCommitGens, t *transcript.Transcript, X, Y, Z curve.Point) error {
	t.AppendProtocolName(productProtocolName())
	t.AppendPoint([]byte("X"), X)
	t.AppendPoint([]byte("Y"), Y)
	t.AppendPoint([]byte("Z"), Z)
	t.AppendPoint([]byte("alpha"), p.Alpha)
	t.AppendPoint([]byte("beta"), p.Beta)
	t.AppendPoint([]byte("delta"), p.Delta)

	z1, z2, z3, z4, z5 := p.Z[0], p.Z[1], p.Z[2], p.Z[3], p.Z[4]

	c := t.ChallengeScalar([]byte("c"))

	okAlpha, err := checkEquality(p.Alpha, X, c, gens, z1, z2)
	if err != nil {
		return err
	}
	okBeta, err := checkEquality(p.Beta, Y, c, gens, z3, z4)
	if err != nil {
		return err
	}
	gensX := &commitments.MultiCommitGens{N: 1, G: []curve.Point{X}, H: gens.H}
	okDelta, err := checkEquality(p.Delta, Z, c, gensX, z3, z5)
	if err != nil {
		return err
	}

	if !(okAlpha && okBeta && okDelta) {
		return fmt.Errorf("nizk: product proof: %w", common.ErrVerificationFailed)
	}
	return nil
}
