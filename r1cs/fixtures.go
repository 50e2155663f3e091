package r1cs

import "github.com/anupsv/spartan-core/curve"

// ProduceTinyR1CS builds the five-variable, two-input, three-constraint
// instance from original_source/src/r1csproof.rs's produce_tiny_r1cs,
// padded to num_cons=128, num_vars=256 as the original does, together with
// a satisfying witness:
//
//	constraint 0: (Z1+Z2)*I0 - Z3 = 0
//	constraint 1: (Z1+I1)*Z3 - Z4 = 0
//	constraint 2: Z5*1 - 0 = 0
func ProduceTinyR1CS() (*Instance, []curve.Scalar, []curve.Scalar, error) {
	const numCons = 128
	const numVars = 256
	const numInputs = 2

	one := curve.ScalarFromUint64(1)

	a := []Entry{
		{Row: 0, Col: 0, Val: one},
		{Row: 0, Col: 1, Val: one},
		{Row: 1, Col: 0, Val: one},
		{Row: 1, Col: numVars + 2, Val: one},
		{Row: 2, Col: 4, Val: one},
	}
	b := []Entry{
		{Row: 0, Col: numVars + 1, Val: one},
		{Row: 1, Col: 2, Val: one},
		{Row: 2, Col: numVars, Val: one},
	}
	c := []Entry{
		{Row: 0, Col: 2, Val: one},
		{Row: 1, Col: 3, Val: one},
	}

	inst, err := New(numCons, numVars, numInputs, a, b, c)
	if err != nil {
		return nil, nil, nil, err
	}

	i0 := curve.RandomScalar()
	i1 := curve.RandomScalar()
	z1 := curve.RandomScalar()
	z2 := curve.RandomScalar()

	var z3, z4, tmp curve.Scalar
	tmp.Add(&z1, &z2)
	z3.Mul(&tmp, &i0)
	tmp.Add(&z1, &i1)
	z4.Mul(&tmp, &z3)
	z5 := curve.Scalar{}

	vars := make([]curve.Scalar, numVars)
	vars[0], vars[1], vars[2], vars[3], vars[4] = z1, z2, z3, z4, z5

	input := []curve.Scalar{i0, i1}

	return inst, vars, input, nil
}

// ProduceSyntheticR1CS builds a satisfiable instance with numCons
// constraints over numVars variables and numInputs inputs: constraint i
// enforces vars[i]*vars[i+1] = vars[i+2], a chain that, given two random
// seed values, is satisfied by construction. numVars must exceed
// numCons+2. This is not a port of any single original fixture (the
// original's produce_synthetic_r1cs was not part of the retrieval pack) but
// follows the same chained-product shape as ProduceTinyR1CS's constraints 0
// and 1, scaled up to an arbitrary size.
func ProduceSyntheticR1CS(numCons, numVars, numInputs int) (*Instance, []curve.Scalar, []curve.Scalar, error) {
	a := make([]Entry, 0, numCons)
	b := make([]Entry, 0, numCons)
	c := make([]Entry, 0, numCons)
	one := curve.ScalarFromUint64(1)

	vars := make([]curve.Scalar, numVars)
	vars[0] = curve.RandomScalar()
	vars[1] = curve.RandomScalar()

	for i := 0; i < numCons; i++ {
		a = append(a, Entry{Row: i, Col: i, Val: one})
		b = append(b, Entry{Row: i, Col: i + 1, Val: one})
		c = append(c, Entry{Row: i, Col: i + 2, Val: one})
		var prod curve.Scalar
		prod.Mul(&vars[i], &vars[i+1])
		vars[i+2] = prod
	}
	for i := numCons + 2; i < numVars; i++ {
		vars[i] = curve.RandomScalar()
	}

	inst, err := New(numCons, numVars, numInputs, a, b, c)
	if err != nil {
		return nil, nil, nil, err
	}

	input := make([]curve.Scalar, numInputs)
	for i := range input {
		input[i] = curve.RandomScalar()
	}

	return inst, vars, input, nil
}
