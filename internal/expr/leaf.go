package expr

import "fmt"

// leafNode wraps a single variable. Evaluation looks the variable up in the
// bindings; its Augmented seeds the identity self-derivative.
type leafNode[T Manifold] struct {
	key Key
}

func (n *leafNode[T]) keys(into keySet) {
	into.add(n.key)
}

func (n *leafNode[T]) value(b Bindings) (T, error) {
	var zero T
	m, ok := b.At(n.key)
	if !ok {
		return zero, &UnboundVariableError{Key: n.key}
	}
	t, ok := m.(T)
	if !ok {
		return zero, &WrongTypeError{Key: n.key, Have: fmt.Sprintf("%T", m)}
	}
	return t, nil
}

func (n *leafNode[T]) augmented(b Bindings) (Augmented[T], error) {
	t, err := n.value(b)
	if err != nil {
		return Augmented[T]{}, err
	}
	return newLeafAugmented(t, n.key), nil
}
