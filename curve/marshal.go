package curve

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// scalarSize and pointSize are the fixed byte lengths of this backend's
// canonical scalar and point encodings (32 and 48 bytes respectively for
// BLS12-381's Fr and compressed G1). Computed once from the encoders
// themselves rather than hardcoded, so a backend swap can't silently
// desync these from ScalarBytes/PointBytes.
var (
	scalarSize = len(ScalarBytes(Scalar{}))
	pointSize  = len(PointBytes(Generator()))
)

// WriteScalar appends s's canonical fixed-size encoding to buf. Every proof
// type's MarshalBinary uses this (and WritePoint/WriteScalarVector/
// WritePointVector below) to assemble its wire form as the concatenation,
// in struct-declaration order, of its fields' canonical encodings.
func WriteScalar(buf *bytes.Buffer, s Scalar) {
	buf.Write(ScalarBytes(s))
}

// ReadScalar reads one canonical scalar encoding from r.
func ReadScalar(r *bytes.Reader) (Scalar, error) {
	b := make([]byte, scalarSize)
	if _, err := io.ReadFull(r, b); err != nil {
		return Scalar{}, fmt.Errorf("curve: read scalar: %w", err)
	}
	return ScalarFromBytes(b), nil
}

// WritePoint appends p's canonical fixed-size encoding to buf.
func WritePoint(buf *bytes.Buffer, p Point) {
	buf.Write(PointBytes(p))
}

// ReadPoint reads one canonical point encoding from r.
func ReadPoint(r *bytes.Reader) (Point, error) {
	b := make([]byte, pointSize)
	if _, err := io.ReadFull(r, b); err != nil {
		return Point{}, fmt.Errorf("curve: read point: %w", err)
	}
	return PointFromBytes(b)
}

// WriteScalarVector appends a uint32 length prefix followed by each
// scalar's canonical encoding.
func WriteScalarVector(buf *bytes.Buffer, v []Scalar) error {
	if err := binary.Write(buf, binary.BigEndian, uint32(len(v))); err != nil {
		return err
	}
	for _, s := range v {
		WriteScalar(buf, s)
	}
	return nil
}

// ReadScalarVector reads a length-prefixed scalar vector from r.
func ReadScalarVector(r *bytes.Reader) ([]Scalar, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, fmt.Errorf("curve: read scalar vector length: %w", err)
	}
	out := make([]Scalar, n)
	for i := range out {
		s, err := ReadScalar(r)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// WriteCount appends a uint32-encoded count, for vectors of sub-proofs
// whose elements are marshaled (and length-prefixed) individually rather
// than via WriteScalarVector/WritePointVector.
func WriteCount(buf *bytes.Buffer, n int) error {
	return binary.Write(buf, binary.BigEndian, uint32(n))
}

// ReadCount reads a uint32-encoded count written by WriteCount.
func ReadCount(r *bytes.Reader) (int, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return 0, fmt.Errorf("curve: read count: %w", err)
	}
	return int(n), nil
}

// WriteBytes appends a uint32 length prefix followed by b — used to nest one
// proof object's already-marshaled bytes inside another's, e.g.
// DotProductProofLog embedding its bulletproofs.Proof.
func WriteBytes(buf *bytes.Buffer, b []byte) error {
	if err := binary.Write(buf, binary.BigEndian, uint32(len(b))); err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// ReadBytes reads a length-prefixed byte slice from r.
func ReadBytes(r *bytes.Reader) ([]byte, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, fmt.Errorf("curve: read byte slice length: %w", err)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("curve: read byte slice: %w", err)
	}
	return b, nil
}

// WritePointVector appends a uint32 length prefix followed by each point's
// canonical encoding.
func WritePointVector(buf *bytes.Buffer, v []Point) error {
	if err := binary.Write(buf, binary.BigEndian, uint32(len(v))); err != nil {
		return err
	}
	for _, p := range v {
		WritePoint(buf, p)
	}
	return nil
}

// ReadPointVector reads a length-prefixed point vector from r.
func ReadPointVector(r *bytes.Reader) ([]Point, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, fmt.Errorf("curve: read point vector length: %w", err)
	}
	out := make([]Point, n)
	for i := range out {
		p, err := ReadPoint(r)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
