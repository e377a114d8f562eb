// Copyright 2026 Kestrel Robotics. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package expr is the public API for building and evaluating differentiable
// measurement expressions.
//
// Expressions are immutable DAGs assembled from constants, leaves (unknown
// variables) and compositions of differentiable primitives. Evaluating one
// against a set of variable bindings yields the composed value and, on
// request, the Jacobian of that value with respect to every variable it
// depends on, via sparse forward accumulation of the chain rule.
//
// Example:
//
//	import (
//	    "github.com/kestrel-robotics/kestrel/expr"
//	)
//
//	func main() {
//	    bearing := expr.Leaf[Rot2](1)
//	    predicted := expr.Compose1(unrotateField, bearing)
//
//	    values := expr.Values{1: NewRot2(-0.1)}
//	    v, jacobians, err := predicted.ValueAndJacobians(values)
//	    ...
//	}
package expr

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kestrel-robotics/kestrel/internal/expr"
)

// Key identifies an unknown variable. Keys are unique and totally ordered.
type Key = expr.Key

// Manifold is the contract every expression value type satisfies.
type Manifold = expr.Manifold

// Bindings supplies the current value of each variable during evaluation.
type Bindings = expr.Bindings

// Values is a map-backed Bindings implementation.
type Values = expr.Values

// JacobianMap holds one Jacobian per variable the value depends on.
type JacobianMap = expr.JacobianMap

// Expression is a handle to an immutable expression graph.
type Expression[T Manifold] = expr.Expression[T]

// Augmented pairs a value with its per-variable Jacobians.
type Augmented[T Manifold] = expr.Augmented[T]

// Primitive function contracts, by arity. When a jac flag is false the
// primitive may skip that derivative and return nil for it.
type (
	UnaryFunc[T, A Manifold]            = expr.UnaryFunc[T, A]
	BinaryFunc[T, A1, A2 Manifold]      = expr.BinaryFunc[T, A1, A2]
	TernaryFunc[T, A1, A2, A3 Manifold] = expr.TernaryFunc[T, A1, A2, A3]
)

// Evaluation errors.
var (
	ErrUnboundVariable   = expr.ErrUnboundVariable
	ErrWrongType         = expr.ErrWrongType
	ErrDimensionMismatch = expr.ErrDimensionMismatch
)

// Constant builds an expression for a fixed value.
func Constant[T Manifold](value T) Expression[T] {
	return expr.Constant(value)
}

// Leaf builds an expression for the single unknown k.
func Leaf[T Manifold](k Key) Expression[T] {
	return expr.Leaf[T](k)
}

// Compose1 applies a unary primitive to a sub-expression.
func Compose1[T, A Manifold](f UnaryFunc[T, A], e Expression[A]) Expression[T] {
	return expr.Compose1(f, e)
}

// Compose2 applies a binary primitive to two sub-expressions.
func Compose2[T, A1, A2 Manifold](f BinaryFunc[T, A1, A2], e1 Expression[A1], e2 Expression[A2]) Expression[T] {
	return expr.Compose2(f, e1, e2)
}

// Compose3 applies a ternary primitive to three sub-expressions.
func Compose3[T, A1, A2, A3 Manifold](f TernaryFunc[T, A1, A2, A3], e1 Expression[A1], e2 Expression[A2], e3 Expression[A3]) Expression[T] {
	return expr.Compose3(f, e1, e2, e3)
}

// Identity returns the n x n identity matrix, the self-derivative a leaf
// seeds for an n-dimensional value.
func Identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
