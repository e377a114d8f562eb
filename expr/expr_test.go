// Copyright 2026 Kestrel Robotics. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/kestrel-robotics/kestrel/expr"
	"github.com/kestrel-robotics/kestrel/internal/geometry"
)

// TestPublicAPI builds and evaluates a small expression through the public
// surface only.
func TestPublicAPI(t *testing.T) {
	const k expr.Key = 1

	double := func(v geometry.Vec, jac bool) (geometry.Vec, *mat.Dense) {
		out, _, h := geometry.Scale(geometry.Scalar(2), v, false, jac)
		return out, h
	}

	e := expr.Compose1(double, expr.Leaf[geometry.Vec](k))
	values := expr.Values{k: geometry.NewVec(1, 2)}

	assert.Equal(t, []expr.Key{k}, e.Keys())

	v, err := e.Value(values)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v.At(1))

	v, jacobians, err := e.ValueAndJacobians(values)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v.At(0))
	require.Contains(t, jacobians, k)
	assert.True(t, mat.EqualApprox(
		mat.NewDense(2, 2, []float64{2, 0, 0, 2}),
		jacobians[k], 1e-12))

	_, err = e.Value(expr.Values{})
	assert.ErrorIs(t, err, expr.ErrUnboundVariable)

	assert.True(t, mat.Equal(expr.Identity(2), mat.NewDense(2, 2, []float64{1, 0, 0, 1})))
}
