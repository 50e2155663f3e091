// Package sumcheck implements the zero-knowledge sum-check protocol of
// §4.6: a prover convinces a verifier that Σ_{x in {0,1}^ell} g(x) equals a
// committed claim, one variable at a time, without revealing g. Each
// round's consistency check (round poly sums to the running claim) and its
// evaluation-binding check (round poly opens correctly at the verifier's
// challenge) are themselves small Pedersen dot-product arguments from the
// nizk package, so no round ever reveals the hidden polynomial's
// coefficients directly — only point commitments to them.
//
// prove_phase_one/prove_phase_two in original_source/src/r1csproof.rs call
// ZKSumcheckInstanceProof::prove_cubic_with_additive_term and ::prove_quad
// against a degree-3 and a degree-2 combination function respectively; the
// round-polynomial extrapolation (evaluating the bound variable's linear
// interpolant at 2 and 3 from its values at 0 and 1) follows the standard
// sum-check folding identity, since sumcheck.rs itself was not part of the
// retrieval pack.
package sumcheck

import (
	"fmt"

	"github.com/anupsv/spartan-core/commitments"
	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/internal/common"
	"github.com/anupsv/spartan-core/mlpoly"
	"github.com/anupsv/spartan-core/nizk"
	"github.com/anupsv/spartan-core/randtape"
	"github.com/anupsv/spartan-core/transcript"
)

// ZKSumcheckInstanceProof is the transcript of a complete sum-check: one
// round polynomial commitment, one claimed-next-value commitment, and the
// pair of dot-product proofs binding them, per round.
type ZKSumcheckInstanceProof struct {
	CommPolys  []curve.Point
	CommEvals  []curve.Point
	SumProofs  []*nizk.DotProductProof
	EvalProofs []*nizk.DotProductProof
}

func sumcheckProtocolName() []byte { return []byte("sum-check proof") }

// CubicCombFunc combines a tau-weight with the three R1CS evaluation
// vectors: f(tau,a,b,c) = tau*(a*b-c).
type CubicCombFunc func(tau, a, b, c curve.Scalar) curve.Scalar

// QuadCombFunc combines two evaluation vectors: f(a,b) = a*b.
type QuadCombFunc func(a, b curve.Scalar) curve.Scalar

// ProveCubicWithAdditiveTerm proves Σ_x comb(tau(x),A(x),B(x),C(x)) = claim
// over numRounds variables, binding each polynomial's top variable to the
// round challenge in lockstep. It returns the proof, the challenge vector,
// the four polynomials' final single-element evaluations, and the blind
// carried forward for the caller's next commitment.
func ProveCubicWithAdditiveTerm(
	claim, blindClaim curve.Scalar,
	numRounds int,
	polyTau, polyA, polyB, polyC *mlpoly.DensePolynomial,
	comb CubicCombFunc,
	gens1, gens4 *commitments.MultiCommitGens,
	t *transcript.Transcript,
	tape *randtape.Tape,
) (*ZKSumcheckInstanceProof, []curve.Scalar, []curve.Scalar, curve.Scalar, error) {
	t.AppendProtocolName(sumcheckProtocolName())

	if gens4.N != 4 {
		return nil, nil, nil, curve.Scalar{}, fmt.Errorf("sumcheck: cubic round generator set must have N=4, got %d: %w", gens4.N, common.ErrInvalidInput)
	}

	dpGens := &commitments.DotProductProofGens{N: 4, GensN: gens4, Gens1: gens1}
	sumWeights := oneHot(4, 0, 1)

	claimPerRound := claim
	blindPerRound := blindClaim

	r := make([]curve.Scalar, numRounds)
	proof := &ZKSumcheckInstanceProof{
		CommPolys:  make([]curve.Point, numRounds),
		CommEvals:  make([]curve.Point, numRounds),
		SumProofs:  make([]*nizk.DotProductProof, numRounds),
		EvalProofs: make([]*nizk.DotProductProof, numRounds),
	}

	for round := 0; round < numRounds; round++ {
		half := polyTau.Len() / 2

		var evalPoint0, evalPoint2, evalPoint3 curve.Scalar
		for i := 0; i < half; i++ {
			evalPoint0.Add(&evalPoint0, ptr(comb(polyTau.Z[i], polyA.Z[i], polyB.Z[i], polyC.Z[i])))

			tau2 := extrapolate(polyTau.Z[i], polyTau.Z[half+i])
			a2 := extrapolate(polyA.Z[i], polyA.Z[half+i])
			b2 := extrapolate(polyB.Z[i], polyB.Z[half+i])
			c2 := extrapolate(polyC.Z[i], polyC.Z[half+i])
			evalPoint2.Add(&evalPoint2, ptr(comb(tau2, a2, b2, c2)))

			tau3 := extrapolate(polyTau.Z[half+i], tau2)
			a3 := extrapolate(polyA.Z[half+i], a2)
			b3 := extrapolate(polyB.Z[half+i], b2)
			c3 := extrapolate(polyC.Z[half+i], c2)
			evalPoint3.Add(&evalPoint3, ptr(comb(tau3, a3, b3, c3)))
		}

		var evalPoint1 curve.Scalar
		evalPoint1.Sub(&claimPerRound, &evalPoint0)
		evals := []curve.Scalar{evalPoint0, evalPoint1, evalPoint2, evalPoint3}

		blindPoly := tape.RandomScalar([]byte(fmt.Sprintf("sumcheck_poly_blind_%d", round)))
		commPoly, err := commitments.CommitVector(evals, blindPoly, gens4)
		if err != nil {
			return nil, nil, nil, curve.Scalar{}, err
		}
		t.AppendPoint([]byte("comm_poly"), commPoly)

		sumProof, _, _, err := nizk.ProveDotProduct(dpGens, t, tape, evals, blindPoly, sumWeights, claimPerRound, blindPerRound)
		if err != nil {
			return nil, nil, nil, curve.Scalar{}, err
		}

		rJ := t.ChallengeScalar([]byte("challenge_nextround"))
		r[round] = rJ

		lag := lagrangeWeights(4, rJ)
		nextEval, err := curve.InnerProduct(evals, lag)
		if err != nil {
			return nil, nil, nil, curve.Scalar{}, err
		}
		blindEval := tape.RandomScalar([]byte(fmt.Sprintf("sumcheck_eval_blind_%d", round)))
		commEval, err := commitments.Commit(nextEval, blindEval, gens1)
		if err != nil {
			return nil, nil, nil, curve.Scalar{}, err
		}
		t.AppendPoint([]byte("comm_eval"), commEval)

		evalProof, _, _, err := nizk.ProveDotProduct(dpGens, t, tape, evals, blindPoly, lag, nextEval, blindEval)
		if err != nil {
			return nil, nil, nil, curve.Scalar{}, err
		}

		proof.CommPolys[round] = commPoly
		proof.CommEvals[round] = commEval
		proof.SumProofs[round] = sumProof
		proof.EvalProofs[round] = evalProof

		polyTau.BoundPolyVarTop(rJ)
		polyA.BoundPolyVarTop(rJ)
		polyB.BoundPolyVarTop(rJ)
		polyC.BoundPolyVarTop(rJ)

		claimPerRound = nextEval
		blindPerRound = blindEval
	}

	finalClaims := []curve.Scalar{polyTau.Z[0], polyA.Z[0], polyB.Z[0], polyC.Z[0]}
	return proof, r, finalClaims, blindPerRound, nil
}

// ProveQuad proves Σ_x comb(A(x),B(x)) = claim over numRounds variables,
// the phase-2 analogue of ProveCubicWithAdditiveTerm for a degree-2 round
// polynomial.
func ProveQuad(
	claim, blindClaim curve.Scalar,
	numRounds int,
	polyA, polyB *mlpoly.DensePolynomial,
	comb QuadCombFunc,
	gens1, gens3 *commitments.MultiCommitGens,
	t *transcript.Transcript,
	tape *randtape.Tape,
) (*ZKSumcheckInstanceProof, []curve.Scalar, []curve.Scalar, curve.Scalar, error) {
	t.AppendProtocolName(sumcheckProtocolName())

	if gens3.N != 3 {
		return nil, nil, nil, curve.Scalar{}, fmt.Errorf("sumcheck: quad round generator set must have N=3, got %d: %w", gens3.N, common.ErrInvalidInput)
	}

	dpGens := &commitments.DotProductProofGens{N: 3, GensN: gens3, Gens1: gens1}
	sumWeights := oneHot(3, 0, 1)

	claimPerRound := claim
	blindPerRound := blindClaim

	r := make([]curve.Scalar, numRounds)
	proof := &ZKSumcheckInstanceProof{
		CommPolys:  make([]curve.Point, numRounds),
		CommEvals:  make([]curve.Point, numRounds),
		SumProofs:  make([]*nizk.DotProductProof, numRounds),
		EvalProofs: make([]*nizk.DotProductProof, numRounds),
	}

	for round := 0; round < numRounds; round++ {
		half := polyA.Len() / 2

		var evalPoint0, evalPoint2 curve.Scalar
		for i := 0; i < half; i++ {
			evalPoint0.Add(&evalPoint0, ptr(comb(polyA.Z[i], polyB.Z[i])))

			a2 := extrapolate(polyA.Z[i], polyA.Z[half+i])
			b2 := extrapolate(polyB.Z[i], polyB.Z[half+i])
			evalPoint2.Add(&evalPoint2, ptr(comb(a2, b2)))
		}

		var evalPoint1 curve.Scalar
		evalPoint1.Sub(&claimPerRound, &evalPoint0)
		evals := []curve.Scalar{evalPoint0, evalPoint1, evalPoint2}

		blindPoly := tape.RandomScalar([]byte(fmt.Sprintf("sumcheck_poly_blind_q_%d", round)))
		commPoly, err := commitments.CommitVector(evals, blindPoly, gens3)
		if err != nil {
			return nil, nil, nil, curve.Scalar{}, err
		}
		t.AppendPoint([]byte("comm_poly"), commPoly)

		sumProof, _, _, err := nizk.ProveDotProduct(dpGens, t, tape, evals, blindPoly, sumWeights, claimPerRound, blindPerRound)
		if err != nil {
			return nil, nil, nil, curve.Scalar{}, err
		}

		rJ := t.ChallengeScalar([]byte("challenge_nextround"))
		r[round] = rJ

		lag := lagrangeWeights(3, rJ)
		nextEval, err := curve.InnerProduct(evals, lag)
		if err != nil {
			return nil, nil, nil, curve.Scalar{}, err
		}
		blindEval := tape.RandomScalar([]byte(fmt.Sprintf("sumcheck_eval_blind_q_%d", round)))
		commEval, err := commitments.Commit(nextEval, blindEval, gens1)
		if err != nil {
			return nil, nil, nil, curve.Scalar{}, err
		}
		t.AppendPoint([]byte("comm_eval"), commEval)

		evalProof, _, _, err := nizk.ProveDotProduct(dpGens, t, tape, evals, blindPoly, lag, nextEval, blindEval)
		if err != nil {
			return nil, nil, nil, curve.Scalar{}, err
		}

		proof.CommPolys[round] = commPoly
		proof.CommEvals[round] = commEval
		proof.SumProofs[round] = sumProof
		proof.EvalProofs[round] = evalProof

		polyA.BoundPolyVarTop(rJ)
		polyB.BoundPolyVarTop(rJ)

		claimPerRound = nextEval
		blindPerRound = blindEval
	}

	finalClaims := []curve.Scalar{polyA.Z[0], polyB.Z[0]}
	return proof, r, finalClaims, blindPerRound, nil
}

// Verify checks a sum-check transcript of the given degree bound (3 for a
// cubic-with-additive-term instance, 2 for a quad instance) against a
// commitment to the initial claim, returning a commitment to the final
// per-round claim and the challenge vector for the caller to continue
// verification with.
func (p *ZKSumcheckInstanceProof) Verify(
	commClaim curve.Point,
	numRounds, degreeBound int,
	gens1, gensN *commitments.MultiCommitGens,
	t *transcript.Transcript,
) (curve.Point, []curve.Scalar, error) {
	t.AppendProtocolName(sumcheckProtocolName())

	n := degreeBound + 1
	if gensN.N != n {
		return curve.Point{}, nil, fmt.Errorf("sumcheck: round generator set must have N=%d, got %d: %w", n, gensN.N, common.ErrInvalidInput)
	}
	if len(p.CommPolys) != numRounds || len(p.CommEvals) != numRounds || len(p.SumProofs) != numRounds || len(p.EvalProofs) != numRounds {
		return curve.Point{}, nil, fmt.Errorf("sumcheck: proof has the wrong number of rounds: %w", common.ErrVerificationFailed)
	}

	dpGens := &commitments.DotProductProofGens{N: n, GensN: gensN, Gens1: gens1}
	sumWeights := oneHot(n, 0, 1)

	commClaimPerRound := commClaim
	r := make([]curve.Scalar, numRounds)

	for round := 0; round < numRounds; round++ {
		commPoly := p.CommPolys[round]
		t.AppendPoint([]byte("comm_poly"), commPoly)

		if err := p.SumProofs[round].Verify(dpGens, t, sumWeights, commPoly, commClaimPerRound); err != nil {
			return curve.Point{}, nil, err
		}

		rJ := t.ChallengeScalar([]byte("challenge_nextround"))
		r[round] = rJ

		commEval := p.CommEvals[round]
		t.AppendPoint([]byte("comm_eval"), commEval)

		lag := lagrangeWeights(n, rJ)
		if err := p.EvalProofs[round].Verify(dpGens, t, lag, commPoly, commEval); err != nil {
			return curve.Point{}, nil, err
		}

		commClaimPerRound = commEval
	}

	return commClaimPerRound, r, nil
}

// extrapolate returns 2*high-low, the value at x=2 of the line through
// (0,low) and (1,high); chaining it again (extrapolate(high, v2), i.e.
// 2*v2-high) gives the value at x=3.
func extrapolate(low, high curve.Scalar) curve.Scalar {
	var doubled, out curve.Scalar
	doubled.Add(&high, &high)
	out.Sub(&doubled, &low)
	return out
}

// oneHot returns a length-n vector that is 1 at positions i0 and i1 and 0
// elsewhere: the public weight vector that picks out g(0)+g(1) from a
// round's evaluation vector.
func oneHot(n, i0, i1 int) []curve.Scalar {
	w := make([]curve.Scalar, n)
	one := curve.ScalarFromUint64(1)
	w[i0] = one
	w[i1] = one
	return w
}

// lagrangeWeights returns, for nodes 0..n-1, the barycentric weights
// w_i = Π_{j!=i} (x-j)/(i-j), so that <w, evals> = the unique degree-(n-1)
// polynomial through (i, evals[i]) evaluated at x.
func lagrangeWeights(n int, x curve.Scalar) []curve.Scalar {
	w := make([]curve.Scalar, n)
	for i := 0; i < n; i++ {
		wi := curve.ScalarFromUint64(1)
		xi := curve.ScalarFromUint64(uint64(i))
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			xj := curve.ScalarFromUint64(uint64(j))
			var num, den, inv curve.Scalar
			num.Sub(&x, &xj)
			den.Sub(&xi, &xj)
			inv.Inverse(&den)
			num.Mul(&num, &inv)
			wi.Mul(&wi, &num)
		}
		w[i] = wi
	}
	return w
}

func ptr(s curve.Scalar) *curve.Scalar { return &s }
