package expr

import "gonum.org/v1/gonum/mat"

// JacobianMap holds one Jacobian per variable. It is sparse by omission: a
// variable appears only if the value actually depends on it. The matrix
// stored under key k has shape dim(output) x dim(k).
type JacobianMap map[Key]*mat.Dense

// Augmented pairs a value with its Jacobians with respect to every variable
// it depends on. An empty JacobianMap means the value is constant.
//
// Augmented values are transient: one is created per evaluation call and
// discarded once the caller has read the value and Jacobians.
type Augmented[T Manifold] struct {
	value     T
	jacobians JacobianMap
}

// newAugmented returns an Augmented for t with no dependencies yet.
func newAugmented[T Manifold](t T) Augmented[T] {
	return Augmented[T]{value: t, jacobians: make(JacobianMap)}
}

// newLeafAugmented returns an Augmented for t that depends on the single
// variable k, seeded with the identity self-derivative.
func newLeafAugmented[T Manifold](t T, k Key) Augmented[T] {
	n := t.Dim()
	return Augmented[T]{value: t, jacobians: JacobianMap{k: identity(n)}}
}

// Value returns the evaluated value.
func (a Augmented[T]) Value() T {
	return a.value
}

// Jacobians returns the per-variable Jacobians.
func (a Augmented[T]) Jacobians() JacobianMap {
	return a.jacobians
}

// Constant reports whether the value depends on no variable.
func (a Augmented[T]) Constant() bool {
	return len(a.jacobians) == 0
}

// merge applies the chain rule for one child: every Jacobian in terms is
// pre-multiplied by the local Jacobian h and accumulated into a. A variable
// already present in a gains the new contribution additively, so merging
// several children, in any order, yields the summed sensitivity for shared
// dependencies.
func (a *Augmented[T]) merge(h *mat.Dense, terms JacobianMap) error {
	if h == nil || len(terms) == 0 {
		return nil
	}
	hr, hc := h.Dims()
	for k, m := range terms {
		mr, mc := m.Dims()
		if hc != mr {
			return &DimensionError{
				Context:  "chain-rule product",
				Rows:     mr,
				Cols:     mc,
				WantRows: hc,
				WantCols: mc,
			}
		}
		prod := mat.NewDense(hr, mc, nil)
		prod.Mul(h, m)
		if dst, ok := a.jacobians[k]; ok {
			dst.Add(dst, prod)
		} else {
			a.jacobians[k] = prod
		}
	}
	return nil
}

// checkLocal validates the shape of a local Jacobian returned by a primitive
// before it enters the chain rule. A nil matrix where one was requested is a
// primitive bug and reported the same way.
func checkLocal(h *mat.Dense, wantRows, wantCols int) error {
	var rows, cols int
	if h != nil {
		rows, cols = h.Dims()
	}
	if rows != wantRows || cols != wantCols {
		return &DimensionError{
			Context:  "local jacobian",
			Rows:     rows,
			Cols:     cols,
			WantRows: wantRows,
			WantCols: wantCols,
		}
	}
	return nil
}

// identity returns the n x n identity matrix.
func identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
