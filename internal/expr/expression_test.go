package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/kestrel-robotics/kestrel/internal/expr"
	"github.com/kestrel-robotics/kestrel/internal/geometry"
	"github.com/kestrel-robotics/kestrel/internal/numderiv"
)

const (
	keyBearing expr.Key = 1
	keyPoint   expr.Key = 2
	keyOther   expr.Key = 3
)

// assertMatInDelta checks two matrices element-wise within tol.
func assertMatInDelta(t *testing.T, want, got mat.Matrix, tol float64) {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Dims()
	require.Equal(t, wr, gr, "row count")
	require.Equal(t, wc, gc, "column count")
	for r := 0; r < wr; r++ {
		for c := 0; c < wc; c++ {
			assert.InDelta(t, want.At(r, c), got.At(r, c), tol, "entry (%d,%d)", r, c)
		}
	}
}

// vecNorm is a unary primitive: the Euclidean norm of a vector as a
// 1-dimensional value, with Jacobian v^T/|v|.
func vecNorm(v geometry.Vec, jac bool) (geometry.Vec, *mat.Dense) {
	n := v.Norm()
	var h *mat.Dense
	if jac {
		h = mat.NewDense(1, v.Dim(), nil)
		for i := 0; i < v.Dim(); i++ {
			h.Set(0, i, v.At(i)/n)
		}
	}
	return geometry.Scalar(n), h
}

// TestConstant_EmptyJacobians checks that a constant expression has no keys
// and an empty JacobianMap under any bindings.
func TestConstant_EmptyJacobians(t *testing.T) {
	e := expr.Constant(geometry.NewVec(1, 2, 3))

	assert.Empty(t, e.Keys())

	bindings := []expr.Bindings{
		expr.Values{},
		expr.Values{keyPoint: geometry.NewVec(9, 9, 9)},
	}
	for _, b := range bindings {
		v, jacobians, err := e.ValueAndJacobians(b)
		require.NoError(t, err)
		assert.Empty(t, jacobians)
		assert.Equal(t, 2.0, v.At(1))
	}
}

// TestLeaf_IdentityJacobian checks the identity self-derivative seed.
func TestLeaf_IdentityJacobian(t *testing.T) {
	e := expr.Leaf[geometry.Vec](keyPoint)
	values := expr.Values{keyPoint: geometry.NewVec(4, 5, 6)}

	v, jacobians, err := e.ValueAndJacobians(values)
	require.NoError(t, err)

	assert.Equal(t, []expr.Key{keyPoint}, e.Keys())
	assert.Equal(t, 4.0, v.At(0))
	require.Len(t, jacobians, 1)

	want := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	assertMatInDelta(t, want, jacobians[keyPoint], 0)
}

// TestCompose1_ChainRule validates a unary composition against numerical
// differentiation.
func TestCompose1_ChainRule(t *testing.T) {
	e := expr.Compose1(vecNorm, expr.Leaf[geometry.Vec](keyPoint))
	point := geometry.NewVec(1, -2, 2)
	values := expr.Values{keyPoint: point}

	v, jacobians, err := e.ValueAndJacobians(values)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v.At(0), 1e-5)

	require.Contains(t, jacobians, keyPoint)
	numerical := numderiv.Jacobian11(func(p geometry.Vec) geometry.Vec {
		n, _ := vecNorm(p, false)
		return n
	}, point, numderiv.DefaultStep)
	assertMatInDelta(t, numerical, jacobians[keyPoint], 1e-7)
}

// TestCompose1_ConstantChildSkipsDerivative checks that a primitive over a
// constant subgraph is never asked for its local Jacobian.
func TestCompose1_ConstantChildSkipsDerivative(t *testing.T) {
	requested := false
	f := func(v geometry.Vec, jac bool) (geometry.Vec, *mat.Dense) {
		requested = requested || jac
		return v, nil
	}

	e := expr.Compose1(f, expr.Constant(geometry.NewVec(1, 2, 3)))
	_, jacobians, err := e.ValueAndJacobians(expr.Values{})
	require.NoError(t, err)
	assert.Empty(t, jacobians)
	assert.False(t, requested, "local jacobian requested for a constant subgraph")
}

// TestCompose2_SharedSubexpression checks that both uses of the same
// sub-expression contribute to its variables' Jacobians.
func TestCompose2_SharedSubexpression(t *testing.T) {
	leaf := expr.Leaf[geometry.Vec](keyPoint)
	doubled := expr.Compose2(geometry.Add, leaf, leaf)

	values := expr.Values{keyPoint: geometry.NewVec(1, 2, 3)}
	v, jacobians, err := doubled.ValueAndJacobians(values)
	require.NoError(t, err)

	assert.Equal(t, []expr.Key{keyPoint}, doubled.Keys())
	assert.InDelta(t, 4.0, v.At(1), 1e-12)

	// Each branch contributes the identity, so the sum is 2I.
	want := mat.NewDense(3, 3, []float64{2, 0, 0, 0, 2, 0, 0, 0, 2})
	require.Contains(t, jacobians, keyPoint)
	assertMatInDelta(t, want, jacobians[keyPoint], 1e-12)
}

// TestKeys_UnionOfReachableLeaves checks that Keys is the exact deduplicated
// union over the DAG, independent of how often a leaf is revisited.
func TestKeys_UnionOfReachableLeaves(t *testing.T) {
	a := expr.Leaf[geometry.Vec](keyOther)
	b := expr.Leaf[geometry.Vec](keyPoint)

	sum := expr.Compose2(geometry.Add, a, b)
	// Revisits a through two paths and b through three.
	root := expr.Compose3(sum3, sum, sum, b)

	assert.Equal(t, []expr.Key{keyPoint, keyOther}, root.Keys())
}

// TestValue_UnboundVariable checks the lookup-miss failure mode.
func TestValue_UnboundVariable(t *testing.T) {
	e := expr.Compose2(geometry.Add,
		expr.Leaf[geometry.Vec](keyPoint),
		expr.Leaf[geometry.Vec](keyOther))

	values := expr.Values{keyPoint: geometry.NewVec(1, 2, 3)}

	_, err := e.Value(values)
	require.Error(t, err)
	assert.ErrorIs(t, err, expr.ErrUnboundVariable)

	var unbound *expr.UnboundVariableError
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, keyOther, unbound.Key)

	_, jacobians, err := e.ValueAndJacobians(values)
	assert.ErrorIs(t, err, expr.ErrUnboundVariable)
	assert.Nil(t, jacobians, "no partial result on error")
}

// TestLeaf_WrongType checks that a binding of the wrong concrete type is
// rejected.
func TestLeaf_WrongType(t *testing.T) {
	e := expr.Leaf[geometry.Rot2](keyBearing)
	values := expr.Values{keyBearing: geometry.NewVec(1)}

	_, err := e.Value(values)
	assert.ErrorIs(t, err, expr.ErrWrongType)
}
