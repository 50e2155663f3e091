package nizk

import (
	"bytes"
	"fmt"

	"github.com/anupsv/spartan-core/bulletproofs"
	"github.com/anupsv/spartan-core/curve"
)

// MarshalBinary encodes the proof as the concatenation, in struct-declaration
// order, of its fields' canonical encodings (§6 wire format).
func (p *KnowledgeProof) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	curve.WritePoint(buf, p.Alpha)
	curve.WriteScalar(buf, p.Z1)
	curve.WriteScalar(buf, p.Z2)
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a proof produced by MarshalBinary.
func (p *KnowledgeProof) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	var err error
	if p.Alpha, err = curve.ReadPoint(r); err != nil {
		return fmt.Errorf("nizk: unmarshal knowledge proof: %w", err)
	}
	if p.Z1, err = curve.ReadScalar(r); err != nil {
		return fmt.Errorf("nizk: unmarshal knowledge proof: %w", err)
	}
	if p.Z2, err = curve.ReadScalar(r); err != nil {
		return fmt.Errorf("nizk: unmarshal knowledge proof: %w", err)
	}
	return nil
}

// MarshalBinary encodes the proof per §6.
func (p *EqualityProof) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	curve.WritePoint(buf, p.Alpha)
	curve.WriteScalar(buf, p.Z)
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a proof produced by MarshalBinary.
func (p *EqualityProof) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	var err error
	if p.Alpha, err = curve.ReadPoint(r); err != nil {
		return fmt.Errorf("nizk: unmarshal equality proof: %w", err)
	}
	if p.Z, err = curve.ReadScalar(r); err != nil {
		return fmt.Errorf("nizk: unmarshal equality proof: %w", err)
	}
	return nil
}

// MarshalBinary encodes the proof per §6.
func (p *ProductProof) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	curve.WritePoint(buf, p.Alpha)
	curve.WritePoint(buf, p.Beta)
	curve.WritePoint(buf, p.Delta)
	for _, z := range p.Z {
		curve.WriteScalar(buf, z)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a proof produced by MarshalBinary.
func (p *ProductProof) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	var err error
	if p.Alpha, err = curve.ReadPoint(r); err != nil {
		return fmt.Errorf("nizk: unmarshal product proof: %w", err)
	}
	if p.Beta, err = curve.ReadPoint(r); err != nil {
		return fmt.Errorf("nizk: unmarshal product proof: %w", err)
	}
	if p.Delta, err = curve.ReadPoint(r); err != nil {
		return fmt.Errorf("nizk: unmarshal product proof: %w", err)
	}
	for i := range p.Z {
		if p.Z[i], err = curve.ReadScalar(r); err != nil {
			return fmt.Errorf("nizk: unmarshal product proof: %w", err)
		}
	}
	return nil
}

// MarshalBinary encodes the proof per §6.
func (p *DotProductProof) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	curve.WritePoint(buf, p.Delta)
	curve.WritePoint(buf, p.Beta)
	if err := curve.WriteScalarVector(buf, p.Z); err != nil {
		return nil, err
	}
	curve.WriteScalar(buf, p.ZDelta)
	curve.WriteScalar(buf, p.ZBeta)
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a proof produced by MarshalBinary.
func (p *DotProductProof) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	var err error
	if p.Delta, err = curve.ReadPoint(r); err != nil {
		return fmt.Errorf("nizk: unmarshal dot product proof: %w", err)
	}
	if p.Beta, err = curve.ReadPoint(r); err != nil {
		return fmt.Errorf("nizk: unmarshal dot product proof: %w", err)
	}
	if p.Z, err = curve.ReadScalarVector(r); err != nil {
		return fmt.Errorf("nizk: unmarshal dot product proof: %w", err)
	}
	if p.ZDelta, err = curve.ReadScalar(r); err != nil {
		return fmt.Errorf("nizk: unmarshal dot product proof: %w", err)
	}
	if p.ZBeta, err = curve.ReadScalar(r); err != nil {
		return fmt.Errorf("nizk: unmarshal dot product proof: %w", err)
	}
	return nil
}

// MarshalBinary encodes the proof per §6 (the nested Bullet reduction proof
// is encoded inline via its own MarshalBinary, length-prefixed like any
// other vector field so UnmarshalBinary can carve it back out).
func (p *DotProductProofLog) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	bulletBytes, err := p.Bullet.MarshalBinary()
	if err != nil {
		return nil, err
	}
	if err := curve.WriteBytes(buf, bulletBytes); err != nil {
		return nil, err
	}
	curve.WritePoint(buf, p.Delta)
	curve.WritePoint(buf, p.Beta)
	curve.WriteScalar(buf, p.Z1)
	curve.WriteScalar(buf, p.Z2)
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a proof produced by MarshalBinary.
func (p *DotProductProofLog) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	bulletBytes, err := curve.ReadBytes(r)
	if err != nil {
		return fmt.Errorf("nizk: unmarshal dot product proof (log): %w", err)
	}
	p.Bullet = new(bulletproofs.Proof)
	if err := p.Bullet.UnmarshalBinary(bulletBytes); err != nil {
		return fmt.Errorf("nizk: unmarshal dot product proof (log): %w", err)
	}
	if p.Delta, err = curve.ReadPoint(r); err != nil {
		return fmt.Errorf("nizk: unmarshal dot product proof (log): %w", err)
	}
	if p.Beta, err = curve.ReadPoint(r); err != nil {
		return fmt.Errorf("nizk: unmarshal dot product proof (log): %w", err)
	}
	if p.Z1, err = curve.ReadScalar(r); err != nil {
		return fmt.Errorf("nizk: unmarshal dot product proof (log): %w", err)
	}
	if p.Z2, err = curve.ReadScalar(r); err != nil {
		return fmt.Errorf("nizk: unmarshal dot product proof (log): %w", err)
	}
	return nil
}
