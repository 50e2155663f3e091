package bulletproofs

import (
	"bytes"
	"fmt"

	"github.com/anupsv/spartan-core/curve"
)

// MarshalBinary encodes the proof as the concatenation, in
// struct-declaration order, of its fields' canonical encodings (§6 wire
// format): L then R, each a length-prefixed point vector.
func (p *Proof) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := curve.WritePointVector(buf, p.L); err != nil {
		return nil, err
	}
	if err := curve.WritePointVector(buf, p.R); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a proof produced by MarshalBinary.
func (p *Proof) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	var err error
	if p.L, err = curve.ReadPointVector(r); err != nil {
		return fmt.Errorf("bulletproofs: unmarshal proof: %w", err)
	}
	if p.R, err = curve.ReadPointVector(r); err != nil {
		return fmt.Errorf("bulletproofs: unmarshal proof: %w", err)
	}
	if len(p.L) != len(p.R) {
		return fmt.Errorf("bulletproofs: unmarshal proof: L/R round count mismatch (%d != %d)", len(p.L), len(p.R))
	}
	return nil
}
