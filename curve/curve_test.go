package curve

import "testing"

func TestAddSubNegIdentities(t *testing.T) {
	g := Generator()
	two := ScalarMul(g, ScalarFromUint64(2))

	if !Equal(Add(g, g), two) {
		t.Fatalf("g+g != 2*g")
	}
	if !Equal(Sub(two, g), g) {
		t.Fatalf("2g-g != g")
	}
	if !Equal(Add(g, Neg(g)), Identity()) {
		t.Fatalf("g+(-g) != identity")
	}
	if !Equal(Add(g, Identity()), g) {
		t.Fatalf("g+identity != g")
	}
}

func TestScalarMulDistributesOverAdd(t *testing.T) {
	g := Generator()
	a := RandomScalar()
	b := RandomScalar()
	var sum Scalar
	sum.Add(&a, &b)

	lhs := ScalarMul(g, sum)
	rhs := Add(ScalarMul(g, a), ScalarMul(g, b))
	if !Equal(lhs, rhs) {
		t.Fatalf("(a+b)*g != a*g+b*g")
	}
}

func TestInnerProduct(t *testing.T) {
	a := []Scalar{ScalarFromUint64(1), ScalarFromUint64(2), ScalarFromUint64(3)}
	b := []Scalar{ScalarFromUint64(4), ScalarFromUint64(5), ScalarFromUint64(6)}
	got, err := InnerProduct(a, b)
	if err != nil {
		t.Fatalf("InnerProduct: %v", err)
	}
	want := ScalarFromUint64(1*4 + 2*5 + 3*6)
	if !got.Equal(&want) {
		t.Fatalf("InnerProduct = %v, want %v", got, want)
	}

	if _, err := InnerProduct(a, b[:2]); err == nil {
		t.Fatalf("expected error on mismatched lengths")
	}
}

func TestScalarPointRoundTrip(t *testing.T) {
	s := RandomScalar()
	s2 := ScalarFromBytes(ScalarBytes(s))
	if !s.Equal(&s2) {
		t.Fatalf("scalar round trip mismatch")
	}

	p := Generator()
	p2, err := PointFromBytes(PointBytes(p))
	if err != nil {
		t.Fatalf("PointFromBytes: %v", err)
	}
	if !Equal(p, p2) {
		t.Fatalf("point round trip mismatch")
	}
}

func TestHashToG1Deterministic(t *testing.T) {
	p1, err := HashToG1([]byte("hello"), "test-dst")
	if err != nil {
		t.Fatalf("HashToG1: %v", err)
	}
	p2, err := HashToG1([]byte("hello"), "test-dst")
	if err != nil {
		t.Fatalf("HashToG1: %v", err)
	}
	if !Equal(p1, p2) {
		t.Fatalf("HashToG1 not deterministic for identical input")
	}

	p3, err := HashToG1([]byte("world"), "test-dst")
	if err != nil {
		t.Fatalf("HashToG1: %v", err)
	}
	if Equal(p1, p3) {
		t.Fatalf("HashToG1 collided across distinct messages")
	}
}

func TestFoldScalars(t *testing.T) {
	n := 8
	left := make([]Scalar, n)
	right := make([]Scalar, n)
	for i := 0; i < n; i++ {
		left[i] = ScalarFromUint64(uint64(i))
		right[i] = ScalarFromUint64(uint64(i + 100))
	}
	r := ScalarFromUint64(3)
	out := FoldScalars(left, right, r)
	for i := 0; i < n; i++ {
		var diff, term, want Scalar
		diff.Sub(&right[i], &left[i])
		term.Mul(&r, &diff)
		want.Add(&left[i], &term)
		if !out[i].Equal(&want) {
			t.Fatalf("FoldScalars[%d] = %v, want %v", i, out[i], want)
		}
	}
}

func TestFoldScalarsLargeMatchesSmall(t *testing.T) {
	n := 512
	left := make([]Scalar, n)
	right := make([]Scalar, n)
	for i := 0; i < n; i++ {
		left[i] = RandomScalar()
		right[i] = RandomScalar()
	}
	r := RandomScalar()
	out := FoldScalars(left, right, r)
	for i := 0; i < n; i++ {
		var diff, term, want Scalar
		diff.Sub(&right[i], &left[i])
		term.Mul(&r, &diff)
		want.Add(&left[i], &term)
		if !out[i].Equal(&want) {
			t.Fatalf("FoldScalars[%d] mismatch in parallel path", i)
		}
	}
}

func TestMultiScalarMulMatchesDirectSum(t *testing.T) {
	n := 40 // exceeds the 16-point batched-path threshold
	points := make([]Point, n)
	scalars := make([]Scalar, n)
	for i := 0; i < n; i++ {
		points[i] = ScalarMul(Generator(), RandomScalar())
		scalars[i] = RandomScalar()
	}

	got, err := MultiScalarMul(points, scalars)
	if err != nil {
		t.Fatalf("MultiScalarMul: %v", err)
	}

	want := Identity()
	for i := 0; i < n; i++ {
		want = Add(want, ScalarMul(points[i], scalars[i]))
	}
	if !Equal(got, want) {
		t.Fatalf("batched MSM disagrees with direct accumulation")
	}
}

func TestMultiScalarMulEmpty(t *testing.T) {
	got, err := MultiScalarMul(nil, nil)
	if err != nil {
		t.Fatalf("MultiScalarMul: %v", err)
	}
	if !Equal(got, Identity()) {
		t.Fatalf("empty MSM should be identity")
	}
}

func TestMultiScalarMulMismatchedLengths(t *testing.T) {
	if _, err := MultiScalarMul([]Point{Generator()}, nil); err == nil {
		t.Fatalf("expected error on mismatched lengths")
	}
}
