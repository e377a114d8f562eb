package expr

import "gonum.org/v1/gonum/mat"

// UnaryFunc is a differentiable primitive of one argument. It computes
// t = f(a) and, when jac is true, also returns df/da as a
// dim(t) x dim(a) matrix evaluated at a. When jac is false the primitive
// may skip the derivative entirely and return nil.
type UnaryFunc[T, A Manifold] func(a A, jac bool) (T, *mat.Dense)

// unaryNode applies a unary primitive to one child expression.
type unaryNode[T, A Manifold] struct {
	f   UnaryFunc[T, A]
	arg node[A]
}

func (n *unaryNode[T, A]) keys(into keySet) {
	n.arg.keys(into)
}

func (n *unaryNode[T, A]) value(b Bindings) (T, error) {
	a, err := n.arg.value(b)
	if err != nil {
		var zero T
		return zero, err
	}
	t, _ := n.f(a, false)
	return t, nil
}

func (n *unaryNode[T, A]) augmented(b Bindings) (Augmented[T], error) {
	arg, err := n.arg.augmented(b)
	if err != nil {
		return Augmented[T]{}, err
	}

	// Constant subgraphs skip derivative work in the primitive.
	t, h := n.f(arg.value, !arg.Constant())
	out := newAugmented(t)
	if !arg.Constant() {
		if err := checkLocal(h, t.Dim(), arg.value.Dim()); err != nil {
			return Augmented[T]{}, err
		}
		if err := out.merge(h, arg.jacobians); err != nil {
			return Augmented[T]{}, err
		}
	}
	return out, nil
}
