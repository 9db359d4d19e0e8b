package process

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/isabella232/DAPC/matutil"
)

// ErrUnstable is returned when the state matrix has spectral radius >= 1,
// so no stationary covariance exists.
var ErrUnstable = errors.New("process: state matrix is not strictly stable")

// LinearGaussian is the stationary vector autoregression
//
// x(t+1) = A x(t) + w(t),  w(t) ~ N(0, Q)
//
// For a strictly stable A its stationary covariance S solves the discrete
// Lyapunov equation S = A S Aᵀ + Q, and the cross-covariance at lag k is
// Aᵏ S, which makes the process a convenient ground truth for covariance
// estimators.
type LinearGaussian struct {
	// State transition matrix, spectral radius < 1.
	A *mat.Dense
	// Process noise covariance.
	Q *mat.SymDense
}

// Sample draws n consecutive observations after discarding burn steps,
// starting from the zero state. Rows are timesteps.
func (p *LinearGaussian) Sample(n, burn int, src rand.Source) (*mat.Dense, error) {
	d, _ := p.A.Dims()
	noise, ok := distmv.NewNormal(make([]float64, d), p.Q, src)
	if !ok {
		return nil, errors.New("process: noise covariance is not positive definite")
	}
	out := mat.NewDense(n, d, nil)
	state := mat.NewVecDense(d, nil)
	next := mat.NewVecDense(d, nil)
	for step := 0; step < burn+n; step++ {
		next.MulVec(p.A, state)
		next.AddVec(next, mat.NewVecDense(d, noise.Rand(nil)))
		state.CopyVec(next)
		if step >= burn {
			for col := 0; col < d; col++ {
				out.Set(step-burn, col, state.AtVec(col))
			}
		}
	}
	return out, nil
}

// StationaryCov solves S = A S Aᵀ + Q by fixed-point iteration, which
// converges geometrically for strictly stable A.
func (p *LinearGaussian) StationaryCov() (*mat.SymDense, error) {
	const (
		maxIterations = 100000
		tolerance     = 1e-13
	)
	d, _ := p.A.Dims()
	sigma := mat.NewDense(d, d, nil)
	sigma.Copy(p.Q)
	var tmp, next mat.Dense
	for iteration := 0; iteration < maxIterations; iteration++ {
		tmp.Mul(p.A, sigma)
		next.Mul(&tmp, p.A.T())
		next.Add(&next, p.Q)
		var diff mat.Dense
		diff.Sub(&next, sigma)
		sigma.Copy(&next)
		delta := mat.Norm(&diff, 2)
		if delta <= tolerance {
			return matutil.SymFromMatrix(sigma), nil
		}
		if matutil.AnyNaNOrInf(sigma) {
			return nil, ErrUnstable
		}
	}
	return nil, ErrUnstable
}

// LagCov returns the stationary cross-covariance E[x(t+k) x(t)ᵀ] = Aᵏ S for
// k >= 0.
func (p *LinearGaussian) LagCov(k int) (*mat.Dense, error) {
	if k < 0 {
		return nil, fmt.Errorf("process: negative lag %d", k)
	}
	stationary, err := p.StationaryCov()
	if err != nil {
		return nil, err
	}
	d, _ := p.A.Dims()
	res := mat.NewDense(d, d, nil)
	res.Copy(stationary)
	var tmp mat.Dense
	for i := 0; i < k; i++ {
		tmp.Mul(p.A, res)
		res.Copy(&tmp)
	}
	return res, nil
}
