// Package matutil collects small helpers on top of gonum/mat that the
// covariance code reaches for repeatedly.
package matutil

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Ones returns a (m by n) matrix filled with ones.
func Ones(m, n int) *mat.Dense {
	return Full(m, n, 1.)
}

// Full returns a (m by n) matrix filled with value.
func Full(m, n int, value float64) *mat.Dense {
	data := make([]float64, m*n)
	for index := range data {
		data[index] = value
	}
	return mat.NewDense(m, n, data)
}

// Eye returns the n by n identity matrix.
func Eye(n int) *mat.Dense {
	res := mat.NewDense(n, n, nil)
	for index := 0; index < n; index++ {
		res.Set(index, index, 1.)
	}
	return res
}

// AnyNaNOrInf reports whether matrix contains any NaN or Inf entry.
func AnyNaNOrInf(matrix mat.Matrix) bool {
	m, n := matrix.Dims()
	for row := 0; row < m; row++ {
		for col := 0; col < n; col++ {
			if math.IsNaN(matrix.At(row, col)) || math.IsInf(matrix.At(row, col), 0) {
				return true
			}
		}
	}
	return false
}

// Symmetrize returns (a + aᵀ)/2. The input must be square.
func Symmetrize(a mat.Matrix) *mat.Dense {
	n, _ := a.Dims()
	res := mat.NewDense(n, n, nil)
	res.Add(a, a.T())
	res.Scale(0.5, res)
	return res
}

// SymFromMatrix copies the symmetric part of a square matrix a into a
// SymDense, so that it can be handed to gonum's symmetric factorizations.
func SymFromMatrix(a mat.Matrix) *mat.SymDense {
	n, _ := a.Dims()
	res := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			res.SetSym(i, j, (a.At(i, j)+a.At(j, i))/2.)
		}
	}
	return res
}

// AddToDiag adds value to every diagonal entry of a in place.
func AddToDiag(a *mat.Dense, value float64) {
	n, _ := a.Dims()
	for index := 0; index < n; index++ {
		a.Set(index, index, a.At(index, index)+value)
	}
}
