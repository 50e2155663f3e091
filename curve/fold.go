package curve

import (
	"runtime"
	"sync"
)

// FoldScalars computes, for each index i, left[i] + r*(right[i]-left[i]) —
// the "bind first free variable to r" step behind
// DensePolynomial.BoundPolyVarTop, which the ZK sum-check uses for its table
// folds. Work is split across goroutines per §5's data-parallel,
// order-independent license; the result does not depend on how work is
// chunked.
func FoldScalars(left, right []Scalar, r Scalar) []Scalar {
	n := len(left)
	out := make([]Scalar, n)
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 || n < 256 {
		foldRange(out, left, right, r, 0, n)
		return out
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			foldRange(out, left, right, r, start, end)
		}(start, end)
	}
	wg.Wait()
	return out
}

func foldRange(out, left, right []Scalar, r Scalar, start, end int) {
	var diff, term Scalar
	for i := start; i < end; i++ {
		diff.Sub(&right[i], &left[i])
		term.Mul(&r, &diff)
		out[i].Add(&left[i], &term)
	}
}
