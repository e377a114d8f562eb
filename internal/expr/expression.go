package expr

// Expression is a handle to the root of an immutable expression graph.
// Expressions are small values: copying one shares, never duplicates, the
// underlying nodes. The same Expression may be passed to any number of
// combinator calls, including twice to the same call, yielding a DAG; the
// evaluator recomputes a shared subgraph once per traversal path reaching
// it and sums its contributions.
type Expression[T Manifold] struct {
	root node[T]
}

// Constant builds an expression for a fixed value. Its key set is empty and
// its Jacobians are always empty.
func Constant[T Manifold](value T) Expression[T] {
	return Expression[T]{root: &constantNode[T]{constant: value}}
}

// Leaf builds an expression for the single unknown k. Evaluating it looks k
// up in the bindings and seeds the identity self-derivative.
func Leaf[T Manifold](k Key) Expression[T] {
	return Expression[T]{root: &leafNode[T]{key: k}}
}

// Compose1 builds an expression applying the unary primitive f to e.
func Compose1[T, A Manifold](f UnaryFunc[T, A], e Expression[A]) Expression[T] {
	return Expression[T]{root: &unaryNode[T, A]{f: f, arg: e.root}}
}

// Compose2 builds an expression applying the binary primitive f to e1 and e2.
func Compose2[T, A1, A2 Manifold](f BinaryFunc[T, A1, A2], e1 Expression[A1], e2 Expression[A2]) Expression[T] {
	return Expression[T]{root: &binaryNode[T, A1, A2]{f: f, arg1: e1.root, arg2: e2.root}}
}

// Compose3 builds an expression applying the ternary primitive f to e1, e2
// and e3.
func Compose3[T, A1, A2, A3 Manifold](f TernaryFunc[T, A1, A2, A3], e1 Expression[A1], e2 Expression[A2], e3 Expression[A3]) Expression[T] {
	return Expression[T]{root: &ternaryNode[T, A1, A2, A3]{f: f, arg1: e1.root, arg2: e2.root, arg3: e3.root}}
}

// Keys returns the variables the expression depends on, in ascending order
// and without duplicates. The set is static: it does not depend on any
// bindings, so callers can pre-size linear-algebra structures before
// evaluating.
func (e Expression[T]) Keys() []Key {
	set := make(keySet)
	e.root.keys(set)
	return set.sorted()
}

// Value evaluates the expression against the bindings, skipping all
// derivative computation. Use it for residual-only evaluation.
func (e Expression[T]) Value(b Bindings) (T, error) {
	return e.root.value(b)
}

// ValueAndJacobians evaluates the expression and the Jacobian of its result
// with respect to every variable it depends on. For each returned key k the
// matrix has shape dim(T) x dim(k). On error no value and no partial
// Jacobians are returned.
func (e Expression[T]) ValueAndJacobians(b Bindings) (T, JacobianMap, error) {
	aug, err := e.root.augmented(b)
	if err != nil {
		var zero T
		return zero, nil, err
	}
	return aug.value, aug.jacobians, nil
}
