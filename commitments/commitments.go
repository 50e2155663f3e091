// Package commitments implements Pedersen-style vector commitments and
// their deterministic generator derivation. Grounded on
// original_source/src/commitments.rs (MultiCommitGens::new, split_at, the
// Commitments trait) with one deliberate correctness fix noted below and in
// DESIGN.md.
package commitments

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/anupsv/spartan-core/curve"
	"github.com/anupsv/spartan-core/internal/common"
)

// MultiCommitGens is an ordered sequence G[0..n) of independent group
// generators plus a distinguished blinding base H. All n+1 elements must
// have unknown discrete-log relations to one another and to the group's
// canonical generator (§4.2).
type MultiCommitGens struct {
	N int
	G []curve.Point
	H curve.Point
}

// NewMultiCommitGens derives n+1 generators deterministic in label and the
// group's canonical generator: a 256-bit seed is drawn from a SHAKE256 XOF
// of (label, canonical generator bytes), then each of the n+1 generators is
// produced by hashing (seed, index) to a curve point via BLS12-381's
// standardized SSWU hash-to-curve map.
//
// This departs from the original's ChaCha20Rng-seeded G::rand(&mut rng)
// sampling (gnark-crypto's public API exposes no "uniform group element
// from a seeded PRNG" primitive the way arkworks does) but preserves both
// properties the spec requires: XOF-derived determinism, and unknown
// discrete-log relations between G[i] and H. It also avoids the teacher's
// own GenerateGenerators bug (bbs/utils.go), which derives "generators" as
// scalar multiples of a known base point — a construction whose discrete
// logs relative to that base are known to whoever computed the scalar,
// which is exactly the relation this invariant forbids.
func NewMultiCommitGens(n int, label []byte) *MultiCommitGens {
	seed := deriveSeed(label)

	gens := make([]curve.Point, n+1)
	for i := range gens {
		msg := make([]byte, len(seed)+4)
		copy(msg, seed)
		binary.BigEndian.PutUint32(msg[len(seed):], uint32(i))
		p, err := curve.HashToG1(msg, common.DST_G1)
		if err != nil {
			panic(fmt.Sprintf("commitments: hash-to-curve failed deriving generator %d: %v", i, err))
		}
		gens[i] = p
	}

	return &MultiCommitGens{
		N: n,
		G: gens[:n],
		H: gens[n],
	}
}

func deriveSeed(label []byte) []byte {
	xof := sha3.NewShake256()
	xof.Write(label)
	gen := curve.Generator()
	xof.Write(curve.PointBytes(gen))
	seed := make([]byte, 32)
	if _, err := xof.Read(seed); err != nil {
		panic("commitments: XOF read failed: " + err.Error())
	}
	return seed
}

// SplitAt partitions G into a prefix of length mid and a suffix of length
// N-mid, both sharing H — a structural invariant (§9) that lets
// commitments built under the two halves be linearly combined.
func (g *MultiCommitGens) SplitAt(mid int) (*MultiCommitGens, *MultiCommitGens) {
	prefix := &MultiCommitGens{N: mid, G: g.G[:mid], H: g.H}
	suffix := &MultiCommitGens{N: g.N - mid, G: g.G[mid:], H: g.H}
	return prefix, suffix
}

// Clone returns a shallow copy: the generator slice is shared with g, not
// copied.
func (g *MultiCommitGens) Clone() *MultiCommitGens {
	return &MultiCommitGens{N: g.N, G: g.G, H: g.H}
}

// Commit computes Com(x; blind) = x*gens.G[0] + blind*H for a length-1
// generator set.
func Commit(x, blind curve.Scalar, gens *MultiCommitGens) (curve.Point, error) {
	if gens.N != 1 {
		return curve.Point{}, fmt.Errorf("commitments: Commit requires a length-1 generator set, got %d: %w", gens.N, common.ErrInvalidInput)
	}
	return curve.MultiScalarMul([]curve.Point{gens.G[0], gens.H}, []curve.Scalar{x, blind})
}

// CommitVector computes Com(v; blind) = sum(v[i]*gens.G[i]) + blind*H.
func CommitVector(v []curve.Scalar, blind curve.Scalar, gens *MultiCommitGens) (curve.Point, error) {
	if gens.N != len(v) {
		return curve.Point{}, fmt.Errorf("commitments: CommitVector requires gens.N == len(v) (%d != %d): %w", gens.N, len(v), common.ErrInvalidInput)
	}
	bases := make([]curve.Point, len(v)+1)
	copy(bases, gens.G)
	bases[len(v)] = gens.H
	scalars := make([]curve.Scalar, len(v)+1)
	copy(scalars, v)
	scalars[len(v)] = blind
	return curve.MultiScalarMul(bases, scalars)
}

// DotProductProofGens derives the paired (length-n, length-1) generator
// sets DotProductProof and its log variant share: MultiCommitGens(n+1)
// split at n.
type DotProductProofGens struct {
	N     int
	GensN *MultiCommitGens
	Gens1 *MultiCommitGens
}

// NewDotProductProofGens constructs the derived generator pair.
func NewDotProductProofGens(n int, label []byte) *DotProductProofGens {
	full := NewMultiCommitGens(n+1, label)
	gensN, gens1 := full.SplitAt(n)
	return &DotProductProofGens{N: n, GensN: gensN, Gens1: gens1}
}
