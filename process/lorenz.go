// Package process generates synthetic multivariate time series with known
// structure: the Lorenz-63 system, the standard benchmark for dynamical
// components analysis, and a stationary linear-Gaussian state-space process
// whose covariance is available in closed form. Both exist so that the
// covariance and predictive-information estimators can be checked against
// ground truth.
package process

import (
	"gonum.org/v1/gonum/mat"

	"github.com/isabella232/DAPC/ode"
)

// Classical Lorenz-63 parameters.
const (
	lorenzSigma = 10.
	lorenzRho   = 28.
	lorenzBeta  = 8. / 3.
)

// Lorenz returns n samples of the Lorenz-63 system started at x0, taken at
// intervals of dt and integrated with RK4. Rows are timesteps, columns are
// the three state coordinates.
func Lorenz(n int, dt float64, x0 [3]float64) *mat.Dense {
	if n < 1 {
		return nil
	}
	rk := ode.NewRK4()
	f := func(_ float64, state mat.Vector) mat.Vector {
		x, y, z := state.AtVec(0), state.AtVec(1), state.AtVec(2)
		return mat.NewVecDense(3, []float64{
			lorenzSigma * (y - x),
			x*(lorenzRho-z) - y,
			x*y - lorenzBeta*z,
		})
	}
	return rk.Integrate(f, 0., dt, mat.NewVecDense(3, x0[:]), n-1)
}
