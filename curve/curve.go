// Package curve fixes the scalar field F and group G the rest of this
// module is generic over: BLS12-381's scalar field and G1, from
// github.com/consensys/gnark-crypto. Per the design notes, the core is
// monomorphized onto this single backend rather than carrying a second
// type-parameter layer that nothing else ever plugs in.
package curve

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Scalar is an element of F.
type Scalar = fr.Element

// Point is a group element of G, held in affine form at rest (the canonical
// form for serialization and equality checks); Jacobian coordinates are used
// internally for accumulation.
type Point = bls12381.G1Affine

// Jac is the Jacobian (projective) representation used for accumulation
// during multi-scalar multiplication and point addition chains.
type Jac = bls12381.G1Jac

// Generator returns BLS12-381's fixed G1 prime-subgroup generator in affine
// form.
func Generator() Point {
	_, _, g1, _ := bls12381.Generators()
	return g1
}

// Identity returns the group identity (point at infinity) in affine form;
// gnark-crypto represents it as the zero-valued G1Affine.
func Identity() Point {
	return Point{}
}

// RandomScalar draws a uniform element of F using crypto/rand.
func RandomScalar() Scalar {
	var s Scalar
	if _, err := s.SetRandom(); err != nil {
		// crypto/rand failure is not a condition this module can recover from.
		panic(fmt.Sprintf("curve: failed to draw random scalar: %v", err))
	}
	return s
}

// ScalarFromUint64 lifts a small integer into F.
func ScalarFromUint64(v uint64) Scalar {
	var s Scalar
	s.SetUint64(v)
	return s
}

// Add returns a+b in affine form via Jacobian accumulation.
func Add(a, b Point) Point {
	var ja, jb, jr Jac
	ja.FromAffine(&a)
	jb.FromAffine(&b)
	jr.Set(&ja)
	jr.AddAssign(&jb)
	var out Point
	out.FromJacobian(&jr)
	return out
}

// Sub returns a-b in affine form.
func Sub(a, b Point) Point {
	var jb Jac
	jb.FromAffine(&b)
	jb.Neg(&jb)
	var ja, jr Jac
	ja.FromAffine(&a)
	jr.Set(&ja)
	jr.AddAssign(&jb)
	var out Point
	out.FromJacobian(&jr)
	return out
}

// Neg returns -a in affine form.
func Neg(a Point) Point {
	var ja Jac
	ja.FromAffine(&a)
	ja.Neg(&ja)
	var out Point
	out.FromJacobian(&ja)
	return out
}

// ScalarMul returns s*p in affine form.
func ScalarMul(p Point, s Scalar) Point {
	var sb big.Int
	s.BigInt(&sb)
	var jp, jr Jac
	jp.FromAffine(&p)
	jr.ScalarMultiplication(&jp, &sb)
	var out Point
	out.FromJacobian(&jr)
	return out
}

// Equal reports whether two affine points represent the same group element.
func Equal(a, b Point) bool {
	return a.Equal(&b)
}

// InnerProduct computes sum(a[i]*b[i]) over F.
func InnerProduct(a, b []Scalar) (Scalar, error) {
	if len(a) != len(b) {
		return Scalar{}, fmt.Errorf("curve: mismatched vector lengths %d != %d", len(a), len(b))
	}
	var sum, term Scalar
	for i := range a {
		term.Mul(&a[i], &b[i])
		sum.Add(&sum, &term)
	}
	return sum, nil
}

// ScalarBytes returns the canonical big-endian encoding of s.
func ScalarBytes(s Scalar) []byte {
	b := s.Bytes()
	return b[:]
}

// ScalarFromBytes decodes a canonical big-endian scalar encoding, reducing
// modulo |F| the way transcript challenge-squeezing does.
func ScalarFromBytes(b []byte) Scalar {
	var s Scalar
	s.SetBytes(b)
	return s
}

// PointBytes returns the canonical compressed encoding of p.
func PointBytes(p Point) []byte {
	b := p.Bytes()
	return b[:]
}

// PointFromBytes decodes a canonical compressed point encoding.
func PointFromBytes(b []byte) (Point, error) {
	var p Point
	if _, err := p.SetBytes(b); err != nil {
		return Point{}, fmt.Errorf("curve: invalid point encoding: %w", err)
	}
	return p, nil
}

// HashToG1 maps an arbitrary message to a G1 point using BLS12-381's
// standardized SSWU hash-to-curve construction under the given domain
// separation tag. Unlike scalar-multiplying a known base point, this gives
// no one — prover or verifier — a known discrete log of the resulting point.
func HashToG1(msg []byte, dst string) (Point, error) {
	p, err := bls12381.HashToG1(msg, []byte(dst))
	if err != nil {
		return Point{}, fmt.Errorf("curve: hash-to-curve failed: %w", err)
	}
	return p, nil
}
