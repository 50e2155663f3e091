package mlpoly

import (
	"fmt"

	"github.com/anupsv/spartan-core/commitments"
	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/internal/common"
	"github.com/anupsv/spartan-core/nizk"
	"github.com/anupsv/spartan-core/randtape"
	"github.com/anupsv/spartan-core/transcript"
)

// PolyCommitmentGens fixes the row/column split of a Hyrax-style dense
// polynomial commitment: a length-2^ell evaluation table is laid out as a
// 2^rowVars x 2^colVars matrix, each row committed independently under a
// shared length-2^colVars generator set, trading an O(2^ell) commitment for
// one of O(2^rowVars) points plus an O(colVars)-round opening proof.
type PolyCommitmentGens struct {
	RowVars int
	ColVars int
	Gens    *commitments.DotProductProofGens
}

// NewPolyCommitmentGens derives the generator set for an ell-variable dense
// polynomial, splitting variables as evenly as possible between rows and
// columns (colVars >= rowVars keeps the per-row vector commitment, not the
// row count, as the dominant proof-size term).
func NewPolyCommitmentGens(numVars int, label []byte) *PolyCommitmentGens {
	rowVars := numVars / 2
	colVars := numVars - rowVars
	gens := commitments.NewDotProductProofGens(1<<colVars, label)
	return &PolyCommitmentGens{RowVars: rowVars, ColVars: colVars, Gens: gens}
}

func (g *PolyCommitmentGens) numRows() int { return 1 << g.RowVars }
func (g *PolyCommitmentGens) numCols() int { return 1 << g.ColVars }

// PolyCommitment is the public commitment to a dense polynomial: one vector
// commitment per row.
type PolyCommitment struct {
	RowComms []curve.Point
}

// AppendToTranscript absorbs every row commitment under label, each tagged
// with its row index so the framing stays unambiguous across row counts.
func (pc *PolyCommitment) AppendToTranscript(label []byte, t *transcript.Transcript) {
	for i, c := range pc.RowComms {
		t.AppendPoint([]byte(fmt.Sprintf("%s_%d", label, i)), c)
	}
}

// Commit commits poly under gens, returning the public commitment and the
// per-row blinds the prover must retain to open it later.
func Commit(poly *DensePolynomial, gens *PolyCommitmentGens, tape *randtape.Tape) (*PolyCommitment, []curve.Scalar, error) {
	numRows, numCols := gens.numRows(), gens.numCols()
	if len(poly.Z) != numRows*numCols {
		return nil, nil, fmt.Errorf("mlpoly: polynomial of length %d does not match %dx%d commitment shape: %w", len(poly.Z), numRows, numCols, common.ErrInvalidInput)
	}

	blinds := make([]curve.Scalar, numRows)
	rowComms := make([]curve.Point, numRows)
	for row := 0; row < numRows; row++ {
		label := []byte(fmt.Sprintf("poly_commitment_blind_%d", row))
		blinds[row] = tape.RandomScalar(label)
		rowVec := poly.Z[row*numCols : (row+1)*numCols]
		comm, err := commitments.CommitVector(rowVec, blinds[row], gens.Gens.GensN)
		if err != nil {
			return nil, nil, err
		}
		rowComms[row] = comm
	}
	return &PolyCommitment{RowComms: rowComms}, blinds, nil
}

// PolyEvalProof proves that a committed dense polynomial evaluates to a
// claimed (itself committed) value at a point r, without revealing the
// polynomial: the row dimension collapses via a public linear combination
// the verifier can recompute directly from the public row commitments, and
// the column dimension collapses via DotProductProofLog.
type PolyEvalProof struct {
	Inner *nizk.DotProductProofLog
}

// Prove proves poly(r) = eval for the given blinds (poly's per-row blinds
// and eval's own blind), returning the proof and a commitment to eval.
func Prove(poly *DensePolynomial, blinds []curve.Scalar, r []curve.Scalar, eval curve.Scalar, blindEval curve.Scalar, gens *PolyCommitmentGens, t *transcript.Transcript, tape *randtape.Tape) (*PolyEvalProof, curve.Point, error) {
	numRows, numCols := gens.numRows(), gens.numCols()
	if len(r) != gens.RowVars+gens.ColVars {
		return nil, curve.Point{}, fmt.Errorf("mlpoly: evaluation point has %d coordinates, expected %d: %w", len(r), gens.RowVars+gens.ColVars, common.ErrInvalidInput)
	}

	rRow, rCol := r[:gens.RowVars], r[gens.RowVars:]
	L := (&EqPolynomial{R: rRow}).Evals()
	R := (&EqPolynomial{R: rCol}).Evals()

	lz := make([]curve.Scalar, numCols)
	for row := 0; row < numRows; row++ {
		rowVec := poly.Z[row*numCols : (row+1)*numCols]
		for col := 0; col < numCols; col++ {
			var term curve.Scalar
			term.Mul(&L[row], &rowVec[col])
			lz[col].Add(&lz[col], &term)
		}
	}

	var blindLZ curve.Scalar
	for row := 0; row < numRows; row++ {
		var term curve.Scalar
		term.Mul(&L[row], &blinds[row])
		blindLZ.Add(&blindLZ, &term)
	}

	proof, _, Cy, err := nizk.ProveDotProductLog(gens.Gens, t, tape, lz, blindLZ, R, eval, blindEval)
	if err != nil {
		return nil, curve.Point{}, err
	}
	return &PolyEvalProof{Inner: proof}, Cy, nil
}

// Verify checks that polyComm opens, at point r, to the value committed in
// commEval.
func (p *PolyEvalProof) Verify(gens *PolyCommitmentGens, t *transcript.Transcript, r []curve.Scalar, commEval curve.Point, polyComm *PolyCommitment) error {
	if len(r) != gens.RowVars+gens.ColVars {
		return fmt.Errorf("mlpoly: evaluation point has %d coordinates, expected %d: %w", len(r), gens.RowVars+gens.ColVars, common.ErrInvalidInput)
	}
	if len(polyComm.RowComms) != gens.numRows() {
		return fmt.Errorf("mlpoly: commitment has %d rows, expected %d: %w", len(polyComm.RowComms), gens.numRows(), common.ErrInvalidInput)
	}

	rRow, rCol := r[:gens.RowVars], r[gens.RowVars:]
	L := (&EqPolynomial{R: rRow}).Evals()
	R := (&EqPolynomial{R: rCol}).Evals()

	Cx, err := curve.MultiScalarMul(polyComm.RowComms, L)
	if err != nil {
		return err
	}
	return p.Inner.Verify(gens.Gens, t, R, Cx, commEval)
}
