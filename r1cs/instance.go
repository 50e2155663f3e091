// Package r1cs implements R1CS satisfiability instances and the full
// zero-knowledge argument that a committed assignment satisfies one,
// grounded on original_source/src/r1csproof.rs's R1CSProof::prove/verify
// and the tiny/synthetic fixtures in its #[cfg(test)] module.
package r1cs

import (
	"fmt"

	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/internal/common"
	"github.com/anupsv/spartan-core/mlpoly"
)

// Entry is one nonzero coefficient of an R1CS constraint matrix: Val at
// (Row, Col).
type Entry struct {
	Row, Col int
	Val      curve.Scalar
}

// Instance is an R1CS instance (A,B,C) over z = (vars, 1, input, 0-pad),
// stored as three sparse coefficient lists. NumCons and 2*NumVars must both
// be powers of two: the sum-check argument binds one round per bit of each.
type Instance struct {
	NumCons   int
	NumVars   int
	NumInputs int
	A, B, C   []Entry
}

// New validates shape and wraps the three constraint matrices.
func New(numCons, numVars, numInputs int, a, b, c []Entry) (*Instance, error) {
	if numCons == 0 || numCons&(numCons-1) != 0 {
		return nil, fmt.Errorf("r1cs: num_cons=%d is not a power of two: %w", numCons, common.ErrInvalidInput)
	}
	if numVars == 0 || numVars&(numVars-1) != 0 {
		return nil, fmt.Errorf("r1cs: num_vars=%d is not a power of two: %w", numVars, common.ErrInvalidInput)
	}
	if numInputs+1 >= numVars {
		return nil, fmt.Errorf("r1cs: num_inputs+1 (%d) must be less than num_vars (%d): %w", numInputs+1, numVars, common.ErrInvalidInput)
	}
	return &Instance{NumCons: numCons, NumVars: numVars, NumInputs: numInputs, A: a, B: b, C: c}, nil
}

// zLen is the length of the combined z=(vars,1,input,0-pad) vector: always
// 2*NumVars, since vars contributes NumVars and the constant/input/padding
// suffix is built to fill out the other NumVars slots (§4.5).
func (inst *Instance) zLen() int { return 2 * inst.NumVars }

// BuildZ assembles z = vars || [1] || input || 0-pad from a witness and
// public input.
func (inst *Instance) BuildZ(vars, input []curve.Scalar) ([]curve.Scalar, error) {
	if len(vars) != inst.NumVars {
		return nil, fmt.Errorf("r1cs: expected %d variables, got %d: %w", inst.NumVars, len(vars), common.ErrInvalidInput)
	}
	if len(input) != inst.NumInputs {
		return nil, fmt.Errorf("r1cs: expected %d inputs, got %d: %w", inst.NumInputs, len(input), common.ErrInvalidInput)
	}
	z := make([]curve.Scalar, inst.zLen())
	copy(z, vars)
	z[inst.NumVars] = curve.ScalarFromUint64(1)
	copy(z[inst.NumVars+1:], input)
	return z, nil
}

func multiplyRow(entries []Entry, z []curve.Scalar, numCons int) []curve.Scalar {
	out := make([]curve.Scalar, numCons)
	for _, e := range entries {
		var term curve.Scalar
		term.Mul(&e.Val, &z[e.Col])
		out[e.Row].Add(&out[e.Row], &term)
	}
	return out
}

// MultiplyVec computes (Az, Bz, Cz) as dense multilinear polynomials over
// {0,1}^log2(numCons), matching inst.multiply_vec(num_cons, z.len(), &z) in
// original_source/src/r1csproof.rs.
func (inst *Instance) MultiplyVec(numCons, zLen int, z []curve.Scalar) (*mlpoly.DensePolynomial, *mlpoly.DensePolynomial, *mlpoly.DensePolynomial, error) {
	if zLen != len(z) {
		return nil, nil, nil, fmt.Errorf("r1cs: zLen mismatch: %w", common.ErrInvalidInput)
	}
	az, err := mlpoly.New(multiplyRow(inst.A, z, numCons))
	if err != nil {
		return nil, nil, nil, err
	}
	bz, err := mlpoly.New(multiplyRow(inst.B, z, numCons))
	if err != nil {
		return nil, nil, nil, err
	}
	cz, err := mlpoly.New(multiplyRow(inst.C, z, numCons))
	if err != nil {
		return nil, nil, nil, err
	}
	return az, bz, cz, nil
}

// ComputeEvalTableSparse computes, for each matrix M in {A,B,C}, the
// length-zLen table col -> Σ_row M[row,col]*evalsRx[row], matching
// inst.compute_eval_table_sparse(num_cons, z.len(), &evals_rx).
func (inst *Instance) ComputeEvalTableSparse(numCons, zLen int, evalsRx []curve.Scalar) ([]curve.Scalar, []curve.Scalar, []curve.Scalar, error) {
	if len(evalsRx) != numCons {
		return nil, nil, nil, fmt.Errorf("r1cs: evalsRx length %d does not match num_cons %d: %w", len(evalsRx), numCons, common.ErrInvalidInput)
	}
	evalTable := func(entries []Entry) []curve.Scalar {
		out := make([]curve.Scalar, zLen)
		for _, e := range entries {
			var term curve.Scalar
			term.Mul(&e.Val, &evalsRx[e.Row])
			out[e.Col].Add(&out[e.Col], &term)
		}
		return out
	}
	return evalTable(inst.A), evalTable(inst.B), evalTable(inst.C), nil
}

// Evaluate computes (A(rx,ry), B(rx,ry), C(rx,ry)), each matrix's
// multilinear extension at the combined point (rx,ry). This is the ground
// truth the verifier is handed out of band as Proof.Verify's evalA, evalB
// and evalC arguments (§4.5's explicit
// scope boundary: committing to, and opening, the constraint matrices
// themselves is not part of this argument).
func (inst *Instance) Evaluate(rx, ry []curve.Scalar) (curve.Scalar, curve.Scalar, curve.Scalar, error) {
	if len(rx) != log2(inst.NumCons) {
		return curve.Scalar{}, curve.Scalar{}, curve.Scalar{}, fmt.Errorf("r1cs: rx has %d coordinates, expected %d: %w", len(rx), log2(inst.NumCons), common.ErrInvalidInput)
	}
	if len(ry) != log2(inst.zLen()) {
		return curve.Scalar{}, curve.Scalar{}, curve.Scalar{}, fmt.Errorf("r1cs: ry has %d coordinates, expected %d: %w", len(ry), log2(inst.zLen()), common.ErrInvalidInput)
	}
	rxEvals := (&mlpoly.EqPolynomial{R: rx}).Evals()
	ryEvals := (&mlpoly.EqPolynomial{R: ry}).Evals()

	evalMatrix := func(entries []Entry) curve.Scalar {
		var sum curve.Scalar
		for _, e := range entries {
			var term curve.Scalar
			term.Mul(&e.Val, &rxEvals[e.Row])
			term.Mul(&term, &ryEvals[e.Col])
			sum.Add(&sum, &term)
		}
		return sum
	}
	return evalMatrix(inst.A), evalMatrix(inst.B), evalMatrix(inst.C), nil
}

// IsSat reports whether (vars,input) satisfies every constraint: Az⊙Bz=Cz.
func (inst *Instance) IsSat(vars, input []curve.Scalar) (bool, error) {
	z, err := inst.BuildZ(vars, input)
	if err != nil {
		return false, err
	}
	az := multiplyRow(inst.A, z, inst.NumCons)
	bz := multiplyRow(inst.B, z, inst.NumCons)
	cz := multiplyRow(inst.C, z, inst.NumCons)
	for i := 0; i < inst.NumCons; i++ {
		var prod, diff curve.Scalar
		prod.Mul(&az[i], &bz[i])
		diff.Sub(&prod, &cz[i])
		if !diff.IsZero() {
			return false, nil
		}
	}
	return true, nil
}

func log2(n int) int {
	r := 0
	for n > 1 {
		n >>= 1
		r++
	}
	return r
}
