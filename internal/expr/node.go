package expr

// node is the internal expression-graph node. There are exactly five
// implementations: constantNode, leafNode, unaryNode, binaryNode and
// ternaryNode; the variant set is closed.
//
// Nodes are immutable once built and may be referenced by any number of
// parent expressions, forming a DAG. Acyclicity is structural: combinators
// only ever wrap already-built expressions.
type node[T Manifold] interface {
	// keys adds every variable reachable from this node to the set.
	keys(into keySet)

	// value evaluates the node against the bindings, skipping all
	// derivative work.
	value(b Bindings) (T, error)

	// augmented evaluates the node and its Jacobians with respect to every
	// reachable variable.
	augmented(b Bindings) (Augmented[T], error)
}
