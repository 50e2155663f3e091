package randtape

import "testing"

func TestDistinctTapesDiverge(t *testing.T) {
	t1 := New([]byte("tape"))
	t2 := New([]byte("tape"))

	s1 := t1.RandomScalar([]byte("label"))
	s2 := t2.RandomScalar([]byte("label"))

	if s1.Equal(&s2) {
		t.Fatalf("two tapes built with the same name produced the same scalar (New should seed with fresh entropy)")
	}
}

func TestRandomVectorLength(t *testing.T) {
	tape := New([]byte("tape"))
	vec := tape.RandomVector([]byte("v"), 6)
	if len(vec) != 6 {
		t.Fatalf("RandomVector returned %d scalars, want 6", len(vec))
	}
}

func TestLabelsDoNotCollideWithinOneTape(t *testing.T) {
	tape := New([]byte("tape"))
	a := tape.RandomScalar([]byte("a"))
	b := tape.RandomScalar([]byte("b"))
	if a.Equal(&b) {
		t.Fatalf("distinct labels on the same tape produced the same scalar")
	}
}
