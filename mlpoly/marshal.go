package mlpoly

import (
	"bytes"
	"fmt"

	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/nizk"
)

// MarshalBinary encodes the commitment as a length-prefixed point vector
// (§6 wire format).
func (pc *PolyCommitment) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := curve.WritePointVector(buf, pc.RowComms); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a commitment produced by MarshalBinary.
func (pc *PolyCommitment) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	var err error
	if pc.RowComms, err = curve.ReadPointVector(r); err != nil {
		return fmt.Errorf("mlpoly: unmarshal poly commitment: %w", err)
	}
	return nil
}

// MarshalBinary encodes the proof per §6: its sole field, Inner, marshaled
// via DotProductProofLog.MarshalBinary.
func (p *PolyEvalProof) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	innerBytes, err := p.Inner.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if err := curve.WriteBytes(buf, innerBytes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a proof produced by MarshalBinary.
func (p *PolyEvalProof) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	innerBytes, err := curve.ReadBytes(r)
	if err != nil {
		return fmt.Errorf("mlpoly: unmarshal poly eval proof: %w", err)
	}
	p.Inner = new(nizk.DotProductProofLog)
	if err := p.Inner.UnmarshalBinary(innerBytes); err != nil {
		return fmt.Errorf("mlpoly: unmarshal poly eval proof: %w", err)
	}
	return nil
}
