package r1cs

import (
	"bytes"
	"fmt"

	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/mlpoly"
	"github.com/anupsv/spartan-core/nizk"
	"github.com/anupsv/spartan-core/sumcheck"
)

// MarshalBinary encodes the proof as the concatenation, in
// struct-declaration order, of its fields' canonical encodings (§6 wire
// format): every point field is a fixed-size canonical encoding, every
// sub-proof field is length-prefixed around its own MarshalBinary output.
func (p *Proof) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)

	if err := marshalInto(buf, p.CommVars); err != nil {
		return nil, err
	}
	if err := marshalInto(buf, p.ScProofPhase1); err != nil {
		return nil, err
	}
	curve.WritePoint(buf, p.CommAzClaim)
	curve.WritePoint(buf, p.CommBzClaim)
	curve.WritePoint(buf, p.CommCzClaim)
	curve.WritePoint(buf, p.CommProdAzBzClaim)
	if err := marshalInto(buf, p.PokCzClaim); err != nil {
		return nil, err
	}
	if err := marshalInto(buf, p.ProofProd); err != nil {
		return nil, err
	}
	if err := marshalInto(buf, p.ProofEqScPhase1); err != nil {
		return nil, err
	}
	if err := marshalInto(buf, p.ScProofPhase2); err != nil {
		return nil, err
	}
	curve.WritePoint(buf, p.CommVarsAtRy)
	if err := marshalInto(buf, p.ProofEvalVarsAtRy); err != nil {
		return nil, err
	}
	if err := marshalInto(buf, p.ProofEqScPhase2); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a proof produced by MarshalBinary.
func (p *Proof) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	var err error

	p.CommVars = new(mlpoly.PolyCommitment)
	if err = unmarshalFrom(r, p.CommVars); err != nil {
		return fmt.Errorf("r1cs: unmarshal proof: %w", err)
	}
	p.ScProofPhase1 = new(sumcheck.ZKSumcheckInstanceProof)
	if err = unmarshalFrom(r, p.ScProofPhase1); err != nil {
		return fmt.Errorf("r1cs: unmarshal proof: %w", err)
	}
	if p.CommAzClaim, err = curve.ReadPoint(r); err != nil {
		return fmt.Errorf("r1cs: unmarshal proof: %w", err)
	}
	if p.CommBzClaim, err = curve.ReadPoint(r); err != nil {
		return fmt.Errorf("r1cs: unmarshal proof: %w", err)
	}
	if p.CommCzClaim, err = curve.ReadPoint(r); err != nil {
		return fmt.Errorf("r1cs: unmarshal proof: %w", err)
	}
	if p.CommProdAzBzClaim, err = curve.ReadPoint(r); err != nil {
		return fmt.Errorf("r1cs: unmarshal proof: %w", err)
	}
	p.PokCzClaim = new(nizk.KnowledgeProof)
	if err = unmarshalFrom(r, p.PokCzClaim); err != nil {
		return fmt.Errorf("r1cs: unmarshal proof: %w", err)
	}
	p.ProofProd = new(nizk.ProductProof)
	if err = unmarshalFrom(r, p.ProofProd); err != nil {
		return fmt.Errorf("r1cs: unmarshal proof: %w", err)
	}
	p.ProofEqScPhase1 = new(nizk.EqualityProof)
	if err = unmarshalFrom(r, p.ProofEqScPhase1); err != nil {
		return fmt.Errorf("r1cs: unmarshal proof: %w", err)
	}
	p.ScProofPhase2 = new(sumcheck.ZKSumcheckInstanceProof)
	if err = unmarshalFrom(r, p.ScProofPhase2); err != nil {
		return fmt.Errorf("r1cs: unmarshal proof: %w", err)
	}
	if p.CommVarsAtRy, err = curve.ReadPoint(r); err != nil {
		return fmt.Errorf("r1cs: unmarshal proof: %w", err)
	}
	p.ProofEvalVarsAtRy = new(mlpoly.PolyEvalProof)
	if err = unmarshalFrom(r, p.ProofEvalVarsAtRy); err != nil {
		return fmt.Errorf("r1cs: unmarshal proof: %w", err)
	}
	p.ProofEqScPhase2 = new(nizk.EqualityProof)
	if err = unmarshalFrom(r, p.ProofEqScPhase2); err != nil {
		return fmt.Errorf("r1cs: unmarshal proof: %w", err)
	}

	return nil
}

type binaryMarshaler interface {
	MarshalBinary() ([]byte, error)
}

type binaryUnmarshaler interface {
	UnmarshalBinary([]byte) error
}

func marshalInto(buf *bytes.Buffer, v binaryMarshaler) error {
	b, err := v.MarshalBinary()
	if err != nil {
		return err
	}
	return curve.WriteBytes(buf, b)
}

func unmarshalFrom(r *bytes.Reader, v binaryUnmarshaler) error {
	b, err := curve.ReadBytes(r)
	if err != nil {
		return err
	}
	return v.UnmarshalBinary(b)
}
