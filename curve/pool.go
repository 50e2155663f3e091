package curve

import "sync"

// ObjectPool recycles the Jacobian accumulators used on the MSM paths and
// also offers point- and scalar-slice pools, the same per-type sync.Pool
// idiom the teacher corpus uses for its own group-element churn. The
// table-fold path (FoldScalars) does not draw from it.
type ObjectPool struct {
	jacPool       sync.Pool
	affineSlice   sync.Pool
	scalarSlice   sync.Pool
}

// NewObjectPool constructs an empty pool.
func NewObjectPool() *ObjectPool {
	return &ObjectPool{
		jacPool: sync.Pool{
			New: func() any { return new(Jac) },
		},
		affineSlice: sync.Pool{
			New: func() any { return make([]Point, 0, 16) },
		},
		scalarSlice: sync.Pool{
			New: func() any { return make([]Scalar, 0, 16) },
		},
	}
}

// GetJac returns a zero-valued Jacobian accumulator from the pool.
func (p *ObjectPool) GetJac() *Jac {
	j := p.jacPool.Get().(*Jac)
	*j = Jac{}
	return j
}

// PutJac returns a Jacobian accumulator to the pool.
func (p *ObjectPool) PutJac(j *Jac) {
	p.jacPool.Put(j)
}

// GetPointSlice returns a zero-length point slice with spare capacity.
func (p *ObjectPool) GetPointSlice() []Point {
	s := p.affineSlice.Get().([]Point)
	return s[:0]
}

// PutPointSlice returns a point slice to the pool.
func (p *ObjectPool) PutPointSlice(s []Point) {
	p.affineSlice.Put(s)
}

// GetScalarSlice returns a zero-length scalar slice with spare capacity.
func (p *ObjectPool) GetScalarSlice() []Scalar {
	s := p.scalarSlice.Get().([]Scalar)
	return s[:0]
}

// PutScalarSlice returns a scalar slice to the pool.
func (p *ObjectPool) PutScalarSlice(s []Scalar) {
	p.scalarSlice.Put(s)
}

// defaultPool is the package-level pool whose Jacobian accumulators
// MultiScalarMul's direct and batched paths use; callers needing isolation (e.g. concurrent benchmarks) can
// construct their own with NewObjectPool.
var defaultPool = NewObjectPool()
