package expr

// constantNode wraps a fixed value. It depends on no variable: its key set
// is empty and its Augmented carries an empty JacobianMap.
type constantNode[T Manifold] struct {
	constant T
}

func (n *constantNode[T]) keys(keySet) {}

func (n *constantNode[T]) value(Bindings) (T, error) {
	return n.constant, nil
}

func (n *constantNode[T]) augmented(Bindings) (Augmented[T], error) {
	return newAugmented(n.constant), nil
}
