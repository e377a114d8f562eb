package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Vec is a point in R^n. The space is Euclidean, so the tangent space is
// R^n itself: Retract is addition and Local is subtraction.
//
// Vec values are immutable; operations return new vectors.
type Vec struct {
	data *mat.VecDense
}

// NewVec builds a vector from its components.
func NewVec(elems ...float64) Vec {
	d := make([]float64, len(elems))
	copy(d, elems)
	return Vec{data: mat.NewVecDense(len(d), d)}
}

// Scalar builds a 1-dimensional vector, convenient for scalar unknowns.
func Scalar(x float64) Vec {
	return NewVec(x)
}

// Dim returns the tangent-space dimension, which equals the length.
func (v Vec) Dim() int {
	return v.data.Len()
}

// At returns the i-th component.
func (v Vec) At(i int) float64 {
	return v.data.AtVec(i)
}

// Raw returns the underlying gonum vector. Callers must treat it as
// read-only.
func (v Vec) Raw() *mat.VecDense {
	return v.data
}

// Norm returns the Euclidean norm.
func (v Vec) Norm() float64 {
	return mat.Norm(v.data, 2)
}

// Normalized returns v scaled to unit length.
func (v Vec) Normalized() Vec {
	out := mat.NewVecDense(v.data.Len(), nil)
	out.ScaleVec(1/v.Norm(), v.data)
	return Vec{data: out}
}

// Retract moves away from v along the tangent vector delta.
func (v Vec) Retract(delta []float64) Vec {
	if len(delta) != v.Dim() {
		panic(fmt.Sprintf("geometry: retract delta has length %d, want %d", len(delta), v.Dim()))
	}
	out := mat.NewVecDense(v.data.Len(), nil)
	out.AddVec(v.data, mat.NewVecDense(len(delta), delta))
	return Vec{data: out}
}

// Local returns the tangent coordinates of other in the chart at v.
func (v Vec) Local(other Vec) []float64 {
	if other.Dim() != v.Dim() {
		panic(fmt.Sprintf("geometry: local coordinates between R^%d and R^%d", v.Dim(), other.Dim()))
	}
	out := make([]float64, v.Dim())
	for i := range out {
		out[i] = other.data.AtVec(i) - v.data.AtVec(i)
	}
	return out
}

// Add is a binary expression primitive: t = a + b. Both local Jacobians are
// the identity.
func Add(a, b Vec, ja, jb bool) (Vec, *mat.Dense, *mat.Dense) {
	if a.Dim() != b.Dim() {
		panic(fmt.Sprintf("geometry: adding R^%d and R^%d vectors", a.Dim(), b.Dim()))
	}
	out := mat.NewVecDense(a.data.Len(), nil)
	out.AddVec(a.data, b.data)

	var h1, h2 *mat.Dense
	if ja {
		h1 = identity(a.Dim())
	}
	if jb {
		h2 = identity(b.Dim())
	}
	return Vec{data: out}, h1, h2
}

// Scale is a binary expression primitive: t = s*v with a scalar (1-dim)
// s. The Jacobian in s is v as a column; the Jacobian in v is s times the
// identity.
func Scale(s, v Vec, js, jv bool) (Vec, *mat.Dense, *mat.Dense) {
	if s.Dim() != 1 {
		panic(fmt.Sprintf("geometry: scale factor must be 1-dimensional, got R^%d", s.Dim()))
	}
	factor := s.At(0)
	n := v.Dim()
	out := mat.NewVecDense(n, nil)
	out.ScaleVec(factor, v.data)

	var h1, h2 *mat.Dense
	if js {
		h1 = mat.NewDense(n, 1, nil)
		for i := 0; i < n; i++ {
			h1.Set(i, 0, v.At(i))
		}
	}
	if jv {
		h2 = mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			h2.Set(i, i, factor)
		}
	}
	return Vec{data: out}, h1, h2
}

func identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
