// Package expr implements compositional forward-mode automatic
// differentiation over expression graphs of manifold-valued functions.
//
// An Expression is an immutable DAG of nodes built from five variants:
//   - Constant: a fixed value with no variable dependencies
//   - Leaf: a single unknown, looked up in the Bindings at evaluation time
//   - Unary/Binary/Ternary: a primitive function applied to 1-3 sub-expressions
//
// Primitives supply their own local partial derivatives on request; the
// evaluator composes them bottom-up with the chain rule, accumulating one
// sparse Jacobian per reachable variable. Contributions that reach the same
// variable through different paths are summed.
//
// Expressions are built once and evaluated repeatedly against varying
// bindings. Nodes carry no evaluation-time state, so a graph may be shared
// and evaluated concurrently from multiple goroutines.
//
// Example:
//
//	bearing := expr.Leaf[geometry.Rot2](1)
//	predicted := expr.Compose1(unrotateDir, bearing)
//
//	values := expr.Values{1: geometry.NewRot2(-0.1)}
//	v, jacobians, err := predicted.ValueAndJacobians(values)
package expr
