package numderiv_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-robotics/kestrel/internal/geometry"
	"github.com/kestrel-robotics/kestrel/internal/numderiv"
)

// TestJacobian11_Linear checks that a linear map is differentiated exactly
// up to roundoff.
func TestJacobian11_Linear(t *testing.T) {
	f := func(v geometry.Vec) geometry.Vec {
		return geometry.NewVec(2*v.At(0)+v.At(1), -v.At(0))
	}
	j := numderiv.Jacobian11(f, geometry.NewVec(1, 2), numderiv.DefaultStep)

	r, c := j.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	assert.InDelta(t, 2, j.At(0, 0), 1e-9)
	assert.InDelta(t, 1, j.At(0, 1), 1e-9)
	assert.InDelta(t, -1, j.At(1, 0), 1e-9)
	assert.InDelta(t, 0, j.At(1, 1), 1e-9)
}

// TestJacobian11_Sine checks a smooth nonlinear function against its
// analytic derivative.
func TestJacobian11_Sine(t *testing.T) {
	f := func(v geometry.Vec) geometry.Vec {
		return geometry.Scalar(math.Sin(v.At(0)))
	}
	x := geometry.Scalar(0.3)
	j := numderiv.Jacobian11(f, x, numderiv.DefaultStep)
	assert.InDelta(t, math.Cos(0.3), j.At(0, 0), 1e-9)
}

// TestJacobian11_Rot2Chart differentiates through the rotation chart.
func TestJacobian11_Rot2Chart(t *testing.T) {
	p := geometry.NewVec(1, 2, 3)
	f := func(r geometry.Rot2) geometry.Vec {
		q, _, _ := geometry.Rotate(r, p, false, false)
		return q
	}
	r := geometry.NewRot2(0.5)
	j := numderiv.Jacobian11(f, r, numderiv.DefaultStep)

	_, hr, _ := geometry.Rotate(r, p, true, false)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, hr.At(i, 0), j.At(i, 0), 1e-7)
	}
}

// TestPartials checks the two- and three-argument wrappers against the
// one-argument base case.
func TestPartials(t *testing.T) {
	f2 := func(a, b geometry.Vec) geometry.Vec {
		sum, _, _ := geometry.Add(a, b, false, false)
		return sum
	}
	a := geometry.NewVec(1, 2)
	b := geometry.NewVec(3, 4)

	j1 := numderiv.Jacobian21(f2, a, b, numderiv.DefaultStep)
	j2 := numderiv.Jacobian22(f2, a, b, numderiv.DefaultStep)
	assert.InDelta(t, 1, j1.At(0, 0), 1e-9)
	assert.InDelta(t, 1, j2.At(1, 1), 1e-9)
	assert.InDelta(t, 0, j1.At(1, 0), 1e-9)

	f3 := func(s, v, o geometry.Vec) geometry.Vec {
		scaled, _, _ := geometry.Scale(s, v, false, false)
		sum, _, _ := geometry.Add(scaled, o, false, false)
		return sum
	}
	s := geometry.Scalar(2)
	offset := geometry.NewVec(1, 1)
	v := geometry.NewVec(5, -5)

	js := numderiv.Jacobian31(f3, s, v, offset, numderiv.DefaultStep)
	jv := numderiv.Jacobian32(f3, s, v, offset, numderiv.DefaultStep)
	jo := numderiv.Jacobian33(f3, s, v, offset, numderiv.DefaultStep)

	assert.InDelta(t, 5, js.At(0, 0), 1e-8)
	assert.InDelta(t, -5, js.At(1, 0), 1e-8)
	assert.InDelta(t, 2, jv.At(0, 0), 1e-8)
	assert.InDelta(t, 1, jo.At(1, 1), 1e-9)
}
