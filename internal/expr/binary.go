package expr

import "gonum.org/v1/gonum/mat"

// BinaryFunc is a differentiable primitive of two arguments. It computes
// t = f(a1, a2) and returns the requested local Jacobians dt/da1 and
// dt/da2; a false flag means the corresponding derivative may be skipped
// and returned nil.
type BinaryFunc[T, A1, A2 Manifold] func(a1 A1, a2 A2, jac1, jac2 bool) (T, *mat.Dense, *mat.Dense)

// binaryNode applies a binary primitive to two child expressions. The two
// children may share sub-expressions, or be the same expression entirely;
// their contributions to any shared variable are summed during the merge.
type binaryNode[T, A1, A2 Manifold] struct {
	f    BinaryFunc[T, A1, A2]
	arg1 node[A1]
	arg2 node[A2]
}

func (n *binaryNode[T, A1, A2]) keys(into keySet) {
	n.arg1.keys(into)
	n.arg2.keys(into)
}

func (n *binaryNode[T, A1, A2]) value(b Bindings) (T, error) {
	var zero T
	a1, err := n.arg1.value(b)
	if err != nil {
		return zero, err
	}
	a2, err := n.arg2.value(b)
	if err != nil {
		return zero, err
	}
	t, _, _ := n.f(a1, a2, false, false)
	return t, nil
}

func (n *binaryNode[T, A1, A2]) augmented(b Bindings) (Augmented[T], error) {
	arg1, err := n.arg1.augmented(b)
	if err != nil {
		return Augmented[T]{}, err
	}
	arg2, err := n.arg2.augmented(b)
	if err != nil {
		return Augmented[T]{}, err
	}

	t, h1, h2 := n.f(arg1.value, arg2.value, !arg1.Constant(), !arg2.Constant())
	out := newAugmented(t)
	if !arg1.Constant() {
		if err := checkLocal(h1, t.Dim(), arg1.value.Dim()); err != nil {
			return Augmented[T]{}, err
		}
		if err := out.merge(h1, arg1.jacobians); err != nil {
			return Augmented[T]{}, err
		}
	}
	if !arg2.Constant() {
		if err := checkLocal(h2, t.Dim(), arg2.value.Dim()); err != nil {
			return Augmented[T]{}, err
		}
		if err := out.merge(h2, arg2.jacobians); err != nil {
			return Augmented[T]{}, err
		}
	}
	return out, nil
}
