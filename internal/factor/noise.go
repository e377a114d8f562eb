package factor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// NoiseModel whitens residuals and Jacobians so that the weighted
// least-squares objective becomes an ordinary sum of squares in whitened
// coordinates.
type NoiseModel interface {
	// Dim returns the residual dimension the model applies to.
	Dim() int
	// Whiten returns the residual scaled into unit-covariance coordinates.
	Whiten(e *mat.VecDense) *mat.VecDense
	// WhitenJacobian returns the Jacobian with its rows scaled the same way.
	WhitenJacobian(h *mat.Dense) *mat.Dense
}

// diagonal is a noise model with independent per-coordinate sigmas.
type diagonal struct {
	invSigmas []float64
}

// Diagonal builds a noise model from per-coordinate standard deviations.
func Diagonal(sigmas ...float64) NoiseModel {
	inv := make([]float64, len(sigmas))
	for i, s := range sigmas {
		if s <= 0 {
			panic(fmt.Sprintf("factor: sigma %d is %g, must be positive", i, s))
		}
		inv[i] = 1 / s
	}
	return &diagonal{invSigmas: inv}
}

// Isotropic builds a noise model with the same standard deviation on every
// coordinate.
func Isotropic(dim int, sigma float64) NoiseModel {
	sigmas := make([]float64, dim)
	for i := range sigmas {
		sigmas[i] = sigma
	}
	return Diagonal(sigmas...)
}

// Unit builds a noise model that leaves residuals unchanged.
func Unit(dim int) NoiseModel {
	return Isotropic(dim, 1)
}

func (d *diagonal) Dim() int {
	return len(d.invSigmas)
}

func (d *diagonal) Whiten(e *mat.VecDense) *mat.VecDense {
	if e.Len() != len(d.invSigmas) {
		panic(fmt.Sprintf("factor: whitening a %d-dim residual with a %d-dim noise model", e.Len(), len(d.invSigmas)))
	}
	out := mat.NewVecDense(e.Len(), nil)
	for i := 0; i < e.Len(); i++ {
		out.SetVec(i, d.invSigmas[i]*e.AtVec(i))
	}
	return out
}

func (d *diagonal) WhitenJacobian(h *mat.Dense) *mat.Dense {
	rows, cols := h.Dims()
	if rows != len(d.invSigmas) {
		panic(fmt.Sprintf("factor: whitening a %dx%d jacobian with a %d-dim noise model", rows, cols, len(d.invSigmas)))
	}
	out := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.Set(r, c, d.invSigmas[r]*h.At(r, c))
		}
	}
	return out
}
