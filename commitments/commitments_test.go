package commitments

import (
	"testing"

	"github.com/anupsv/spartan-core/curve"
)

func TestNewMultiCommitGensDeterministic(t *testing.T) {
	g1 := NewMultiCommitGens(4, []byte("label"))
	g2 := NewMultiCommitGens(4, []byte("label"))

	for i := 0; i < 4; i++ {
		if !curve.Equal(g1.G[i], g2.G[i]) {
			t.Fatalf("generator %d differs across identical derivations", i)
		}
	}
	if !curve.Equal(g1.H, g2.H) {
		t.Fatalf("H differs across identical derivations")
	}
}

func TestNewMultiCommitGensDistinctLabels(t *testing.T) {
	g1 := NewMultiCommitGens(4, []byte("label-a"))
	g2 := NewMultiCommitGens(4, []byte("label-b"))
	if curve.Equal(g1.G[0], g2.G[0]) {
		t.Fatalf("distinct labels produced the same first generator")
	}
}

func TestGeneratorsAreDistinct(t *testing.T) {
	g := NewMultiCommitGens(8, []byte("label"))
	seen := make(map[curve.Point]bool)
	seen[g.H] = true
	for i, p := range g.G {
		if seen[p] {
			t.Fatalf("generator %d collides with an earlier generator or H", i)
		}
		seen[p] = true
	}
}

func TestSplitAtSharesH(t *testing.T) {
	g := NewMultiCommitGens(10, []byte("label"))
	prefix, suffix := g.SplitAt(4)
	if prefix.N != 4 || suffix.N != 6 {
		t.Fatalf("SplitAt(4) on N=10 gave N=%d,%d, want 4,6", prefix.N, suffix.N)
	}
	if !curve.Equal(prefix.H, g.H) || !curve.Equal(suffix.H, g.H) {
		t.Fatalf("SplitAt halves must share H")
	}
	for i := 0; i < 4; i++ {
		if !curve.Equal(prefix.G[i], g.G[i]) {
			t.Fatalf("prefix.G[%d] does not match original", i)
		}
	}
	for i := 0; i < 6; i++ {
		if !curve.Equal(suffix.G[i], g.G[4+i]) {
			t.Fatalf("suffix.G[%d] does not match original", i)
		}
	}
}

func TestCommitHomomorphic(t *testing.T) {
	gens := NewMultiCommitGens(1, []byte("label"))
	x1, r1 := curve.RandomScalar(), curve.RandomScalar()
	x2, r2 := curve.RandomScalar(), curve.RandomScalar()

	c1, err := Commit(x1, r1, gens)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	c2, err := Commit(x2, r2, gens)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	var xSum, rSum curve.Scalar
	xSum.Add(&x1, &x2)
	rSum.Add(&r1, &r2)
	cSum, err := Commit(xSum, rSum, gens)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if !curve.Equal(curve.Add(c1, c2), cSum) {
		t.Fatalf("Commit(x1+x2, r1+r2) != Commit(x1,r1)+Commit(x2,r2)")
	}
}

func TestCommitRejectsWrongGensLength(t *testing.T) {
	gens := NewMultiCommitGens(2, []byte("label"))
	if _, err := Commit(curve.RandomScalar(), curve.RandomScalar(), gens); err == nil {
		t.Fatalf("expected error committing a scalar under a length-2 generator set")
	}
}

func TestCommitVectorMatchesScalarCommitForLengthOne(t *testing.T) {
	gens := NewMultiCommitGens(1, []byte("label"))
	x := curve.RandomScalar()
	r := curve.RandomScalar()

	single, err := Commit(x, r, gens)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	vec, err := CommitVector([]curve.Scalar{x}, r, gens)
	if err != nil {
		t.Fatalf("CommitVector: %v", err)
	}
	if !curve.Equal(single, vec) {
		t.Fatalf("CommitVector of a length-1 vector must match Commit")
	}
}

func TestCommitVectorRejectsMismatchedLength(t *testing.T) {
	gens := NewMultiCommitGens(3, []byte("label"))
	if _, err := CommitVector([]curve.Scalar{curve.RandomScalar()}, curve.RandomScalar(), gens); err == nil {
		t.Fatalf("expected error committing a length-1 vector under a length-3 generator set")
	}
}

func TestNewDotProductProofGensShape(t *testing.T) {
	gens := NewDotProductProofGens(8, []byte("label"))
	if gens.GensN.N != 8 {
		t.Fatalf("GensN.N = %d, want 8", gens.GensN.N)
	}
	if gens.Gens1.N != 1 {
		t.Fatalf("Gens1.N = %d, want 1", gens.Gens1.N)
	}
	if !curve.Equal(gens.GensN.H, gens.Gens1.H) {
		t.Fatalf("GensN and Gens1 must share H")
	}
}
