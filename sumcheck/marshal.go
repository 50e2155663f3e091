package sumcheck

import (
	"bytes"
	"fmt"

	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/nizk"
)

// MarshalBinary encodes the proof as the concatenation, in
// struct-declaration order, of its fields' canonical encodings (§6 wire
// format). The two DotProductProof slices are each a length-prefixed vector
// of length-prefixed, individually-marshaled sub-proofs.
func (p *ZKSumcheckInstanceProof) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := curve.WritePointVector(buf, p.CommPolys); err != nil {
		return nil, err
	}
	if err := curve.WritePointVector(buf, p.CommEvals); err != nil {
		return nil, err
	}
	if err := writeDotProductProofs(buf, p.SumProofs); err != nil {
		return nil, err
	}
	if err := writeDotProductProofs(buf, p.EvalProofs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a proof produced by MarshalBinary.
func (p *ZKSumcheckInstanceProof) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	var err error
	if p.CommPolys, err = curve.ReadPointVector(r); err != nil {
		return fmt.Errorf("sumcheck: unmarshal proof: %w", err)
	}
	if p.CommEvals, err = curve.ReadPointVector(r); err != nil {
		return fmt.Errorf("sumcheck: unmarshal proof: %w", err)
	}
	if p.SumProofs, err = readDotProductProofs(r); err != nil {
		return fmt.Errorf("sumcheck: unmarshal proof: %w", err)
	}
	if p.EvalProofs, err = readDotProductProofs(r); err != nil {
		return fmt.Errorf("sumcheck: unmarshal proof: %w", err)
	}
	return nil
}

func writeDotProductProofs(buf *bytes.Buffer, proofs []*nizk.DotProductProof) error {
	if err := curve.WriteCount(buf, len(proofs)); err != nil {
		return err
	}
	for _, dp := range proofs {
		b, err := dp.MarshalBinary()
		if err != nil {
			return err
		}
		if err := curve.WriteBytes(buf, b); err != nil {
			return err
		}
	}
	return nil
}

func readDotProductProofs(r *bytes.Reader) ([]*nizk.DotProductProof, error) {
	n, err := curve.ReadCount(r)
	if err != nil {
		return nil, err
	}
	out := make([]*nizk.DotProductProof, n)
	for i := range out {
		b, err := curve.ReadBytes(r)
		if err != nil {
			return nil, err
		}
		dp := new(nizk.DotProductProof)
		if err := dp.UnmarshalBinary(b); err != nil {
			return nil, err
		}
		out[i] = dp
	}
	return out, nil
}
