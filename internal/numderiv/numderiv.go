// Package numderiv computes Jacobians of manifold-valued functions by
// central differences in tangent space. It is the oracle that analytic
// derivatives are validated against in tests; it is far too slow to use
// inside an optimization loop.
package numderiv

import "gonum.org/v1/gonum/mat"

// Chart is the manifold contract numerical differentiation needs: a
// tangent dimension plus a retract/local chart around each point.
type Chart[S any] interface {
	Dim() int
	// Retract moves away from the point along the tangent vector delta.
	Retract(delta []float64) S
	// Local returns the tangent coordinates of other in the chart at the
	// point.
	Local(other S) []float64
}

// DefaultStep is a reasonable central-difference step for double precision:
// large enough to dominate roundoff, small enough for ~1e-10 truncation
// error on well-scaled functions.
const DefaultStep = 1e-5

// Jacobian11 computes the dim(T) x dim(A) Jacobian of f at x. Each column
// is the central difference of f along one tangent coordinate of x, read in
// the chart at f(x).
func Jacobian11[T Chart[T], A Chart[A]](f func(A) T, x A, step float64) *mat.Dense {
	fx := f(x)
	rows, cols := fx.Dim(), x.Dim()
	j := mat.NewDense(rows, cols, nil)
	delta := make([]float64, cols)
	for c := 0; c < cols; c++ {
		delta[c] = step
		plus := fx.Local(f(x.Retract(delta)))
		delta[c] = -step
		minus := fx.Local(f(x.Retract(delta)))
		delta[c] = 0
		for r := 0; r < rows; r++ {
			j.Set(r, c, (plus[r]-minus[r])/(2*step))
		}
	}
	return j
}

// Jacobian21 computes the Jacobian of f with respect to its first argument.
func Jacobian21[T Chart[T], A1 Chart[A1], A2 any](f func(A1, A2) T, x1 A1, x2 A2, step float64) *mat.Dense {
	return Jacobian11(func(a A1) T { return f(a, x2) }, x1, step)
}

// Jacobian22 computes the Jacobian of f with respect to its second argument.
func Jacobian22[T Chart[T], A1 any, A2 Chart[A2]](f func(A1, A2) T, x1 A1, x2 A2, step float64) *mat.Dense {
	return Jacobian11(func(a A2) T { return f(x1, a) }, x2, step)
}

// Jacobian31 computes the Jacobian of f with respect to its first argument.
func Jacobian31[T Chart[T], A1 Chart[A1], A2, A3 any](f func(A1, A2, A3) T, x1 A1, x2 A2, x3 A3, step float64) *mat.Dense {
	return Jacobian11(func(a A1) T { return f(a, x2, x3) }, x1, step)
}

// Jacobian32 computes the Jacobian of f with respect to its second argument.
func Jacobian32[T Chart[T], A1 any, A2 Chart[A2], A3 any](f func(A1, A2, A3) T, x1 A1, x2 A2, x3 A3, step float64) *mat.Dense {
	return Jacobian11(func(a A2) T { return f(x1, a, x3) }, x2, step)
}

// Jacobian33 computes the Jacobian of f with respect to its third argument.
func Jacobian33[T Chart[T], A1, A2 any, A3 Chart[A3]](f func(A1, A2, A3) T, x1 A1, x2 A2, x3 A3, step float64) *mat.Dense {
	return Jacobian11(func(a A3) T { return f(x1, x2, a) }, x3, step)
}
