package curve

import (
	"fmt"
	"math/big"
)

// MultiScalarMul computes sum(points[i] * scalars[i]) in G1. It splits into
// a batched path for larger inputs and a direct accumulation path for small
// ones, mirroring the size-based dispatch the teacher corpus uses for its
// own multi-scalar multiplication.
func MultiScalarMul(points []Point, scalars []Scalar) (Point, error) {
	if len(points) != len(scalars) {
		return Point{}, fmt.Errorf("curve: mismatched MSM lengths: %d points, %d scalars", len(points), len(scalars))
	}
	if len(points) == 0 {
		return Identity(), nil
	}
	if len(points) > 16 {
		return batchedMSM(points, scalars)
	}
	return directMSM(points, scalars)
}

func directMSM(points []Point, scalars []Scalar) (Point, error) {
	acc := defaultPool.GetJac()
	defer defaultPool.PutJac(acc)
	for i := range points {
		if scalars[i].IsZero() || points[i].IsInfinity() {
			continue
		}
		accumulate(acc, points[i], scalars[i])
	}
	var out Point
	out.FromJacobian(acc)
	return out, nil
}

// batchedMSM folds fixed-size chunks in parallel-friendly partial sums
// before combining them; chunk order never affects the result because group
// addition is commutative (§5's explicit license).
func batchedMSM(points []Point, scalars []Scalar) (Point, error) {
	const chunkSize = 64
	numChunks := (len(points) + chunkSize - 1) / chunkSize
	partials := make([]Jac, numChunks)
	for c := 0; c < numChunks; c++ {
		start := c * chunkSize
		end := start + chunkSize
		if end > len(points) {
			end = len(points)
		}
		acc := defaultPool.GetJac()
		for i := start; i < end; i++ {
			if scalars[i].IsZero() || points[i].IsInfinity() {
				continue
			}
			accumulate(acc, points[i], scalars[i])
		}
		partials[c] = *acc
		defaultPool.PutJac(acc)
	}
	total := defaultPool.GetJac()
	defer defaultPool.PutJac(total)
	for i := range partials {
		total.AddAssign(&partials[i])
	}
	var out Point
	out.FromJacobian(total)
	return out, nil
}

func accumulate(acc *Jac, p Point, s Scalar) {
	var sb big.Int
	s.BigInt(&sb)
	var tmp Jac
	tmp.FromAffine(&p)
	tmp.ScalarMultiplication(&tmp, &sb)
	acc.AddAssign(&tmp)
}
