package expr

import "gonum.org/v1/gonum/mat"

// TernaryFunc is a differentiable primitive of three arguments, the
// three-argument analogue of BinaryFunc.
type TernaryFunc[T, A1, A2, A3 Manifold] func(a1 A1, a2 A2, a3 A3, jac1, jac2, jac3 bool) (T, *mat.Dense, *mat.Dense, *mat.Dense)

// ternaryNode applies a ternary primitive to three child expressions.
// All three children's derivative maps participate in the merge; a result
// that is sensitive to only the first two arguments would silently corrupt
// any estimate involving the third.
type ternaryNode[T, A1, A2, A3 Manifold] struct {
	f    TernaryFunc[T, A1, A2, A3]
	arg1 node[A1]
	arg2 node[A2]
	arg3 node[A3]
}

func (n *ternaryNode[T, A1, A2, A3]) keys(into keySet) {
	n.arg1.keys(into)
	n.arg2.keys(into)
	n.arg3.keys(into)
}

func (n *ternaryNode[T, A1, A2, A3]) value(b Bindings) (T, error) {
	var zero T
	a1, err := n.arg1.value(b)
	if err != nil {
		return zero, err
	}
	a2, err := n.arg2.value(b)
	if err != nil {
		return zero, err
	}
	a3, err := n.arg3.value(b)
	if err != nil {
		return zero, err
	}
	t, _, _, _ := n.f(a1, a2, a3, false, false, false)
	return t, nil
}

func (n *ternaryNode[T, A1, A2, A3]) augmented(b Bindings) (Augmented[T], error) {
	arg1, err := n.arg1.augmented(b)
	if err != nil {
		return Augmented[T]{}, err
	}
	arg2, err := n.arg2.augmented(b)
	if err != nil {
		return Augmented[T]{}, err
	}
	arg3, err := n.arg3.augmented(b)
	if err != nil {
		return Augmented[T]{}, err
	}

	t, h1, h2, h3 := n.f(arg1.value, arg2.value, arg3.value,
		!arg1.Constant(), !arg2.Constant(), !arg3.Constant())
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
	if !arg3.Constant() {
		if err := checkLocal(h3, t.Dim(), arg3.value.Dim()); err != nil {
			return Augmented[T]{}, err
		}
		if err := out.merge(h3, arg3.jacobians); err != nil {
			return Augmented[T]{}, err
		}
	}
	return out, nil
}
