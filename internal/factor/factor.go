// Package factor turns measurement expressions into weighted least-squares
// residuals. A Factor pairs a prediction expression with a measured value
// and a noise model; Linearize produces the whitened residual and Jacobians
// a sparse solver consumes.
package factor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/kestrel-robotics/kestrel/internal/expr"
)

// Measurement is the value contract a factor needs beyond expr.Manifold:
// local coordinates of the prediction relative to the measured value. For
// Euclidean types this is plain subtraction.
//
// The residual chart at the measurement must agree with the chart the
// expression's Jacobians are taken in, which holds for all value types in
// this repository.
type Measurement[T any] interface {
	expr.Manifold
	Local(other T) []float64
}

// Factor is a single weighted least-squares contribution
// || h(x) - z ||^2 / sigma^2 over the variables of the expression h.
type Factor[T Measurement[T]] struct {
	expression expr.Expression[T]
	measured   T
	noise      NoiseModel
}

// New builds a factor from a prediction expression, the measured value and
// a noise model of matching dimension.
func New[T Measurement[T]](e expr.Expression[T], measured T, noise NoiseModel) *Factor[T] {
	return &Factor[T]{expression: e, measured: measured, noise: noise}
}

// Keys returns the variables this factor constrains, sorted.
func (f *Factor[T]) Keys() []expr.Key {
	return f.expression.Keys()
}

// Error evaluates the whitened residual at the given bindings, skipping all
// derivative work.
func (f *Factor[T]) Error(b expr.Bindings) (*mat.VecDense, error) {
	v, err := f.expression.Value(b)
	if err != nil {
		return nil, err
	}
	return f.noise.Whiten(f.residual(v)), nil
}

// Linearize evaluates the whitened residual and the whitened Jacobian for
// every variable the factor constrains.
func (f *Factor[T]) Linearize(b expr.Bindings) (*mat.VecDense, expr.JacobianMap, error) {
	v, jacobians, err := f.expression.ValueAndJacobians(b)
	if err != nil {
		return nil, nil, err
	}
	whitened := make(expr.JacobianMap, len(jacobians))
	for k, h := range jacobians {
		whitened[k] = f.noise.WhitenJacobian(h)
	}
	return f.noise.Whiten(f.residual(v)), whitened, nil
}

// residual is the prediction error h(x) - z in the chart at the measurement.
func (f *Factor[T]) residual(v T) *mat.VecDense {
	local := f.measured.Local(v)
	return mat.NewVecDense(len(local), local)
}
