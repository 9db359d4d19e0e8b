// Package ode implements fixed-step Runge-Kutta integration,
// https://en.wikipedia.org/wiki/Runge–Kutta_methods, for the autonomous
// systems the process generators sample from.
package ode

import (
	"gonum.org/v1/gonum/mat"
)

// Derivative is the right-hand side of the system x'(t) = f(t, x(t)).
type Derivative func(t float64, state mat.Vector) mat.Vector

// RungeKutta holds the butcherTableau which describes the Runge Kutta method.
type RungeKutta struct {
	Description butcherTableau
}

// Step advances state from time t to t+h and returns the new state.
func (rk RungeKutta) Step(f Derivative, t, h float64, state mat.Vector) mat.Vector {
	m := state.Len()
	// The precomputed derivative points
	k := make([]mat.Vector, rk.Description.stages)
	var tmp mat.VecDense
	for index := range k {
		tmp.CloneFromVec(state)
		// Combine previously computed derivative points according to the
		// Butcher tableau.
		for index2, a := range rk.Description.rungeKuttaMatrix[index] {
			tmp.AddScaledVec(&tmp, h*a, k[index2])
		}
		k[index] = f(t+h*rk.Description.nodes[index], &tmp)
	}
	res := mat.NewVecDense(m, nil)
	res.CloneFromVec(state)
	for index, ki := range k {
		res.AddScaledVec(res, h*rk.Description.weights[index], ki)
	}
	return res
}

// Integrate takes n fixed steps of length h from (t0, state) and returns
// the n+1 visited states, the initial one included, as rows of a matrix.
func (rk RungeKutta) Integrate(f Derivative, t0, h float64, state mat.Vector, n int) *mat.Dense {
	m := state.Len()
	res := mat.NewDense(n+1, m, nil)
	current := state
	for step := 0; step <= n; step++ {
		for col := 0; col < m; col++ {
			res.Set(step, col, current.AtVec(col))
		}
		if step < n {
			current = rk.Step(f, t0+float64(step)*h, h, current)
		}
	}
	return res
}

// NewRK4 function returns a forth order Runge-Kutta object
func NewRK4() *RungeKutta {
	var temp butcherTableau
	temp.stages = 4
	temp.nodes = []float64{0, 1. / 2., 1. / 2., 1}
	temp.weights = []float64{1. / 6., 1. / 3., 1. / 3., 1. / 6.}
	temp.rungeKuttaMatrix = [][]float64{
		nil,
		{1. / 2.},
		{0, 1. / 2.},
		{0, 0, 1.},
	}
	rk := RungeKutta{temp}
	return &rk
}

// NewEulerMethod returns a pointer to a Runge-Kutta that does the Euler method.
func NewEulerMethod() *RungeKutta {
	var temp butcherTableau
	temp.stages = 1
	temp.nodes = []float64{0}
	temp.weights = []float64{1}
	temp.rungeKuttaMatrix = [][]float64{nil}
	rk := RungeKutta{temp}
	return &rk
}

// butcherTableau which describes the approximate solution, see https://en.wikipedia.org/wiki/Runge–Kutta_methods.
type butcherTableau struct {
	stages           int
	weights          []float64
	nodes            []float64
	rungeKuttaMatrix [][]float64
}
