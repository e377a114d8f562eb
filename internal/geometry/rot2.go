package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Rot2 is a planar rotation, stored as cosine and sine to keep composition
// cheap and normalization exact. Its tangent space is 1-dimensional: the
// rotation angle.
type Rot2 struct {
	c, s float64
}

// NewRot2 builds a rotation by theta radians.
func NewRot2(theta float64) Rot2 {
	return Rot2{c: math.Cos(theta), s: math.Sin(theta)}
}

// Theta returns the rotation angle in (-pi, pi].
func (r Rot2) Theta() float64 {
	return math.Atan2(r.s, r.c)
}

// Dim returns the tangent-space dimension, 1.
func (r Rot2) Dim() int {
	return 1
}

// Compose returns the rotation r then o.
func (r Rot2) Compose(o Rot2) Rot2 {
	return Rot2{c: r.c*o.c - r.s*o.s, s: r.s*o.c + r.c*o.s}
}

// Inverse returns the opposite rotation.
func (r Rot2) Inverse() Rot2 {
	return Rot2{c: r.c, s: -r.s}
}

// Retract moves away from r by the angle delta[0].
func (r Rot2) Retract(delta []float64) Rot2 {
	if len(delta) != 1 {
		panic(fmt.Sprintf("geometry: Rot2 retract delta has length %d, want 1", len(delta)))
	}
	return r.Compose(NewRot2(delta[0]))
}

// Local returns the angle from r to other, wrapped to (-pi, pi].
func (r Rot2) Local(other Rot2) []float64 {
	return []float64{r.Inverse().Compose(other).Theta()}
}

// Rotate is a binary expression primitive taking a 3-vector in the body
// frame of the yaw rotation r into the world frame: q = Rz(r) * p.
// The Jacobian in r is the 3x1 derivative of q with respect to the yaw
// angle; the Jacobian in p is Rz(r).
func Rotate(r Rot2, p Vec, jr, jp bool) (Vec, *mat.Dense, *mat.Dense) {
	x, y, z := check3(p)
	c, s := r.c, r.s
	q := NewVec(c*x-s*y, s*x+c*y, z)

	var hr, hp *mat.Dense
	if jr {
		hr = mat.NewDense(3, 1, []float64{
			-s*x - c*y,
			c*x - s*y,
			0,
		})
	}
	if jp {
		hp = mat.NewDense(3, 3, []float64{
			c, -s, 0,
			s, c, 0,
			0, 0, 1,
		})
	}
	return q, hr, hp
}

// Unrotate is a binary expression primitive expressing the world-frame
// 3-vector p in the body frame of the yaw rotation r: q = Rz(r)^T * p.
// The Jacobian in r is the 3x1 derivative of q with respect to the yaw
// angle; the Jacobian in p is Rz(r)^T.
func Unrotate(r Rot2, p Vec, jr, jp bool) (Vec, *mat.Dense, *mat.Dense) {
	x, y, z := check3(p)
	c, s := r.c, r.s
	q := NewVec(c*x+s*y, -s*x+c*y, z)

	var hr, hp *mat.Dense
	if jr {
		hr = mat.NewDense(3, 1, []float64{
			-s*x + c*y,
			-c*x - s*y,
			0,
		})
	}
	if jp {
		hp = mat.NewDense(3, 3, []float64{
			c, s, 0,
			-s, c, 0,
			0, 0, 1,
		})
	}
	return q, hr, hp
}

func check3(p Vec) (x, y, z float64) {
	if p.Dim() != 3 {
		panic(fmt.Sprintf("geometry: rotating an R^%d vector, want R^3", p.Dim()))
	}
	return p.At(0), p.At(1), p.At(2)
}
