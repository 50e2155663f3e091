package r1cs

import (
	"fmt"

	"github.com/anupsv/spartan-core/commitments"
	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/internal/common"
	"github.com/anupsv/spartan-core/mlpoly"
	"github.com/anupsv/spartan-core/nizk"
	"github.com/anupsv/spartan-core/randtape"
	"github.com/anupsv/spartan-core/sumcheck"
	"github.com/anupsv/spartan-core/transcript"
)

// SumcheckGens bundles the three small generator sets the two sum-check
// phases need: length-1 for scalar commitments, length-3 for phase 2's
// quadratic round polynomial, length-4 for phase 1's cubic-with-additive-
// term round polynomial. Grounded on R1CSSumcheckGens in
// original_source/src/r1csproof.rs.
type SumcheckGens struct {
	Gens1 *commitments.MultiCommitGens
	Gens3 *commitments.MultiCommitGens
	Gens4 *commitments.MultiCommitGens
}

// NewSumcheckGens derives Gens3 and Gens4 fresh under label, reusing the
// caller-supplied gens1 so every protocol sharing this R1CS argument binds
// scalar commitments under the same length-1 base.
func NewSumcheckGens(label []byte, gens1 *commitments.MultiCommitGens) *SumcheckGens {
	return &SumcheckGens{
		Gens1: gens1,
		Gens3: commitments.NewMultiCommitGens(3, label),
		Gens4: commitments.NewMultiCommitGens(4, label),
	}
}

// Gens is the full generator set an R1CSProof is produced and checked
// against: the sum-check generators plus the dense-polynomial commitment
// generators for the variable assignment.
type Gens struct {
	SC *SumcheckGens
	PC *mlpoly.PolyCommitmentGens
}

// NewGens derives the generator set for an instance with the given number
// of variables (num_cons does not affect generator sizing, matching
// R1CSGens::new's unused _num_cons parameter).
func NewGens(label []byte, numVars int) *Gens {
	numPolyVars := log2(numVars)
	pc := mlpoly.NewPolyCommitmentGens(numPolyVars, label)
	sc := NewSumcheckGens(label, pc.Gens.Gens1)
	return &Gens{SC: sc, PC: pc}
}

// Proof is a complete zero-knowledge argument that a committed variable
// assignment satisfies an R1CS instance, following R1CSProof::prove/verify
// field-for-field.
type Proof struct {
	CommVars          *mlpoly.PolyCommitment
	ScProofPhase1     *sumcheck.ZKSumcheckInstanceProof
	CommAzClaim       curve.Point
	CommBzClaim       curve.Point
	CommCzClaim       curve.Point
	CommProdAzBzClaim curve.Point
	PokCzClaim        *nizk.KnowledgeProof
	ProofProd         *nizk.ProductProof
	ProofEqScPhase1   *nizk.EqualityProof
	ScProofPhase2     *sumcheck.ZKSumcheckInstanceProof
	CommVarsAtRy      curve.Point
	ProofEvalVarsAtRy *mlpoly.PolyEvalProof
	ProofEqScPhase2   *nizk.EqualityProof
}

func protocolName() []byte { return []byte("R1CS proof") }

// cubicComb implements tau*(a*b-c), the combination function phase 1 sums
// over: a,b,c are Az,Bz,Cz and tau is the eq(tau,.) weight (§4.5).
func cubicComb(tau, a, b, c curve.Scalar) curve.Scalar {
	var bc, bcMinusC, out curve.Scalar
	bc.Mul(&a, &b)
	bcMinusC.Sub(&bc, &c)
	out.Mul(&tau, &bcMinusC)
	return out
}

func quadComb(a, b curve.Scalar) curve.Scalar {
	var out curve.Scalar
	out.Mul(&a, &b)
	return out
}

// Prove builds a complete R1CS satisfiability argument for (vars, input)
// against inst.
func Prove(inst *Instance, vars []curve.Scalar, input []curve.Scalar, gens *Gens, t *transcript.Transcript, tape *randtape.Tape) (*Proof, []curve.Scalar, []curve.Scalar, error) {
	t.AppendProtocolName(protocolName())

	if !(len(input) < len(vars)) {
		return nil, nil, nil, fmt.Errorf("r1cs: len(input) must be less than len(vars): %w", common.ErrInvalidInput)
	}
	t.AppendScalars([]byte("input"), input)

	polyVars, err := mlpoly.New(append([]curve.Scalar(nil), vars...))
	if err != nil {
		return nil, nil, nil, err
	}
	commVars, blindsVars, err := mlpoly.Commit(polyVars, gens.PC, tape)
	if err != nil {
		return nil, nil, nil, err
	}
	commVars.AppendToTranscript([]byte("poly_commitment"), t)

	z, err := inst.BuildZ(vars, input)
	if err != nil {
		return nil, nil, nil, err
	}

	numRoundsX := log2(inst.NumCons)
	numRoundsY := log2(len(z))

	tau := t.ChallengeVector([]byte("challenge_tau"), numRoundsX)
	polyTau, err := mlpoly.New((&mlpoly.EqPolynomial{R: tau}).Evals())
	if err != nil {
		return nil, nil, nil, err
	}
	polyAz, polyBz, polyCz, err := inst.MultiplyVec(inst.NumCons, len(z), z)
	if err != nil {
		return nil, nil, nil, err
	}

	scProofPhase1, rx, claimsPhase1, blindClaimPostSc1, err := sumcheck.ProveCubicWithAdditiveTerm(
		curve.Scalar{}, curve.Scalar{}, numRoundsX, polyTau, polyAz, polyBz, polyCz, cubicComb,
		gens.SC.Gens1, gens.SC.Gens4, t, tape,
	)
	if err != nil {
		return nil, nil, nil, err
	}

	tauClaim, azClaim, bzClaim, czClaim := claimsPhase1[0], claimsPhase1[1], claimsPhase1[2], claimsPhase1[3]
	azBlind := tape.RandomScalar([]byte("Az_blind"))
	bzBlind := tape.RandomScalar([]byte("Bz_blind"))
	czBlind := tape.RandomScalar([]byte("Cz_blind"))
	prodAzBzBlind := tape.RandomScalar([]byte("prod_Az_Bz_blind"))

	pokCzClaim, commCzClaim, err := nizk.ProveKnowledge(gens.SC.Gens1, t, tape, czClaim, czBlind)
	if err != nil {
		return nil, nil, nil, err
	}

	var prod curve.Scalar
	prod.Mul(&azClaim, &bzClaim)
	proofProd, commAzClaim, commBzClaim, commProdAzBzClaim, err := nizk.ProveProduct(
		gens.SC.Gens1, t, tape, azClaim, azBlind, bzClaim, bzBlind, prod, prodAzBzBlind,
	)
	if err != nil {
		return nil, nil, nil, err
	}

	t.AppendPoint([]byte("comm_Az_claim"), commAzClaim)
	t.AppendPoint([]byte("comm_Bz_claim"), commBzClaim)
	t.AppendPoint([]byte("comm_Cz_claim"), commCzClaim)
	t.AppendPoint([]byte("comm_prod_Az_Bz_claims"), commProdAzBzClaim)

	tausBoundRx := tauClaim
	var blindExpectedClaimPostSc1, blindDiff curve.Scalar
	blindDiff.Sub(&prodAzBzBlind, &czBlind)
	blindExpectedClaimPostSc1.Mul(&tausBoundRx, &blindDiff)

	var claimPostPhase1, abDiff curve.Scalar
	var ab curve.Scalar
	ab.Mul(&azClaim, &bzClaim)
	abDiff.Sub(&ab, &czClaim)
	claimPostPhase1.Mul(&abDiff, &tausBoundRx)

	proofEqScPhase1, _, _, err := nizk.ProveEquality(
		gens.SC.Gens1, t, tape, claimPostPhase1, blindExpectedClaimPostSc1, claimPostPhase1, blindClaimPostSc1,
	)
	if err != nil {
		return nil, nil, nil, err
	}

	rA := t.ChallengeScalar([]byte("challenege_Az"))
	rB := t.ChallengeScalar([]byte("challenege_Bz"))
	rC := t.ChallengeScalar([]byte("challenege_Cz"))

	var claimPhase2, blindClaimPhase2, tmp curve.Scalar
	tmp.Mul(&rA, &azClaim)
	claimPhase2.Add(&claimPhase2, &tmp)
	tmp.Mul(&rB, &bzClaim)
	claimPhase2.Add(&claimPhase2, &tmp)
	tmp.Mul(&rC, &czClaim)
	claimPhase2.Add(&claimPhase2, &tmp)

	tmp.Mul(&rA, &azBlind)
	blindClaimPhase2.Add(&blindClaimPhase2, &tmp)
	tmp.Mul(&rB, &bzBlind)
	blindClaimPhase2.Add(&blindClaimPhase2, &tmp)
	tmp.Mul(&rC, &czBlind)
	blindClaimPhase2.Add(&blindClaimPhase2, &tmp)

	evalsRx := (&mlpoly.EqPolynomial{R: rx}).Evals()
	evalsA, evalsB, evalsC, err := inst.ComputeEvalTableSparse(inst.NumCons, len(z), evalsRx)
	if err != nil {
		return nil, nil, nil, err
	}
	evalsABC := make([]curve.Scalar, len(evalsA))
	for i := range evalsABC {
		var t1, t2, t3 curve.Scalar
		t1.Mul(&rA, &evalsA[i])
		t2.Mul(&rB, &evalsB[i])
		t3.Mul(&rC, &evalsC[i])
		evalsABC[i].Add(&t1, &t2)
		evalsABC[i].Add(&evalsABC[i], &t3)
	}

	polyZ, err := mlpoly.New(z)
	if err != nil {
		return nil, nil, nil, err
	}
	polyABC, err := mlpoly.New(evalsABC)
	if err != nil {
		return nil, nil, nil, err
	}

	scProofPhase2, ry, claimsPhase2, blindClaimPostSc2, err := sumcheck.ProveQuad(
		claimPhase2, blindClaimPhase2, numRoundsY, polyZ, polyABC, quadComb, gens.SC.Gens1, gens.SC.Gens3, t, tape,
	)
	if err != nil {
		return nil, nil, nil, err
	}

	evalVarsAtRy, err := polyVars.Evaluate(ry[1:])
	if err != nil {
		return nil, nil, nil, err
	}
	blindEval := tape.RandomScalar([]byte("blind_eval"))
	proofEvalVarsAtRy, commVarsAtRy, err := mlpoly.Prove(polyVars, blindsVars, ry[1:], evalVarsAtRy, blindEval, gens.PC, t, tape)
	if err != nil {
		return nil, nil, nil, err
	}

	one := curve.ScalarFromUint64(1)
	var oneMinusRy0, blindEvalZAtRy curve.Scalar
	oneMinusRy0.Sub(&one, &ry[0])
	blindEvalZAtRy.Mul(&oneMinusRy0, &blindEval)

	var blindExpectedClaimPostSc2, claimPostPhase2 curve.Scalar
	blindExpectedClaimPostSc2.Mul(&claimsPhase2[1], &blindEvalZAtRy)
	claimPostPhase2.Mul(&claimsPhase2[0], &claimsPhase2[1])

	proofEqScPhase2, _, _, err := nizk.ProveEquality(
		gens.PC.Gens.Gens1, t, tape, claimPostPhase2, blindExpectedClaimPostSc2, claimPostPhase2, blindClaimPostSc2,
	)
	if err != nil {
		return nil, nil, nil, err
	}

	proof := &Proof{
		CommVars:          commVars,
		ScProofPhase1:     scProofPhase1,
		CommAzClaim:       commAzClaim,
		CommBzClaim:       commBzClaim,
		CommCzClaim:       commCzClaim,
		CommProdAzBzClaim: commProdAzBzClaim,
		PokCzClaim:        pokCzClaim,
		ProofProd:         proofProd,
		ProofEqScPhase1:   proofEqScPhase1,
		ScProofPhase2:     scProofPhase2,
		CommVarsAtRy:      commVarsAtRy,
		ProofEvalVarsAtRy: proofEvalVarsAtRy,
		ProofEqScPhase2:   proofEqScPhase2,
	}
	return proof, rx, ry, nil
}

// Verify checks a Proof against an instance's shape (numVars, numCons),
// public input, and out-of-band matrix evaluations at the point the
// argument itself settles on.
func (p *Proof) Verify(numVars, numCons int, input []curve.Scalar, evalA, evalB, evalC curve.Scalar, t *transcript.Transcript, gens *Gens) ([]curve.Scalar, []curve.Scalar, error) {
	t.AppendProtocolName(protocolName())
	t.AppendScalars([]byte("input"), input)
	p.CommVars.AppendToTranscript([]byte("poly_commitment"), t)

	numRoundsX := log2(numCons)
	numRoundsY := log2(2 * numVars)

	tau := t.ChallengeVector([]byte("challenge_tau"), numRoundsX)

	claimPhase1, err := commitments.Commit(curve.Scalar{}, curve.Scalar{}, gens.SC.Gens1)
	if err != nil {
		return nil, nil, err
	}

	commClaimPostPhase1, rx, err := p.ScProofPhase1.Verify(claimPhase1, numRoundsX, 3, gens.SC.Gens1, gens.SC.Gens4, t)
	if err != nil {
		return nil, nil, err
	}

	if err := p.PokCzClaim.Verify(gens.SC.Gens1, t, p.CommCzClaim); err != nil {
		return nil, nil, err
	}
	if err := p.ProofProd.Verify(gens.SC.Gens1, t, p.CommAzClaim, p.CommBzClaim, p.CommProdAzBzClaim); err != nil {
		return nil, nil, err
	}

	t.AppendPoint([]byte("comm_Az_claim"), p.CommAzClaim)
	t.AppendPoint([]byte("comm_Bz_claim"), p.CommBzClaim)
	t.AppendPoint([]byte("comm_Cz_claim"), p.CommCzClaim)
	t.AppendPoint([]byte("comm_prod_Az_Bz_claims"), p.CommProdAzBzClaim)

	one := curve.ScalarFromUint64(1)
	tausBoundRx := curve.ScalarFromUint64(1)
	for i := range rx {
		var term1, term2, oneMinusRx, oneMinusTau curve.Scalar
		term1.Mul(&rx[i], &tau[i])
		oneMinusRx.Sub(&one, &rx[i])
		oneMinusTau.Sub(&one, &tau[i])
		term2.Mul(&oneMinusRx, &oneMinusTau)
		var sum curve.Scalar
		sum.Add(&term1, &term2)
		tausBoundRx.Mul(&tausBoundRx, &sum)
	}

	diff := curve.Sub(p.CommProdAzBzClaim, p.CommCzClaim)
	expectedClaimPostPhase1 := curve.ScalarMul(diff, tausBoundRx)

	if err := p.ProofEqScPhase1.Verify(gens.SC.Gens1, t, expectedClaimPostPhase1, commClaimPostPhase1); err != nil {
		return nil, nil, err
	}

	rA := t.ChallengeScalar([]byte("challenege_Az"))
	rB := t.ChallengeScalar([]byte("challenege_Bz"))
	rC := t.ChallengeScalar([]byte("challenege_Cz"))

	commClaimPhase2, err := curve.MultiScalarMul(
		[]curve.Point{p.CommAzClaim, p.CommBzClaim, p.CommCzClaim},
		[]curve.Scalar{rA, rB, rC},
	)
	if err != nil {
		return nil, nil, err
	}

	commClaimPostPhase2, ry, err := p.ScProofPhase2.Verify(commClaimPhase2, numRoundsY, 2, gens.SC.Gens1, gens.SC.Gens3, t)
	if err != nil {
		return nil, nil, err
	}

	if err := p.ProofEvalVarsAtRy.Verify(gens.PC, t, ry[1:], p.CommVarsAtRy, p.CommVars); err != nil {
		return nil, nil, err
	}

	inputEntries := make([]mlpoly.SparsePolyEntry, 0, len(input)+1)
	inputEntries = append(inputEntries, mlpoly.SparsePolyEntry{Idx: 0, Val: one})
	for i, v := range input {
		inputEntries = append(inputEntries, mlpoly.SparsePolyEntry{Idx: i + 1, Val: v})
	}
	inputPoly := &mlpoly.SparsePolynomial{NumVars: log2(numVars), Entries: inputEntries}
	polyInputEval, err := inputPoly.Evaluate(ry[1:])
	if err != nil {
		return nil, nil, err
	}

	var oneMinusRy0 curve.Scalar
	oneMinusRy0.Sub(&one, &ry[0])

	commInputEval, err := commitments.Commit(polyInputEval, curve.Scalar{}, gens.PC.Gens.Gens1)
	if err != nil {
		return nil, nil, err
	}

	commEvalZAtRy, err := curve.MultiScalarMul(
		[]curve.Point{p.CommVarsAtRy, commInputEval},
		[]curve.Scalar{oneMinusRy0, ry[0]},
	)
	if err != nil {
		return nil, nil, err
	}

	var combinedEval, t1, t2, t3 curve.Scalar
	t1.Mul(&rA, &evalA)
	t2.Mul(&rB, &evalB)
	t3.Mul(&rC, &evalC)
	combinedEval.Add(&t1, &t2)
	combinedEval.Add(&combinedEval, &t3)

	expectedClaimPostPhase2 := curve.ScalarMul(commEvalZAtRy, combinedEval)

	if err := p.ProofEqScPhase2.Verify(gens.SC.Gens1, t, expectedClaimPostPhase2, commClaimPostPhase2); err != nil {
		return nil, nil, err
	}

	return rx, ry, nil
}
