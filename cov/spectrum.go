package cov

import (
	"errors"
	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"

	"github.com/isabella232/DAPC/matutil"
)

// RectifySpectrum returns a copy of the symmetric matrix c whose spectrum
// has been floored: when the minimum eigenvalue is strictly negative,
// (−minEig + ε)·I is added, which shifts every eigenvalue equally and
// leaves the new minimum at exactly ε. The boolean reports whether a
// correction was applied.
//
// A matrix whose minimum eigenvalue already lies in [0, ε) is returned
// unchanged; only strictly negative spectra trigger the shift.
func RectifySpectrum(c mat.Matrix, opts ...SpectrumOption) (*mat.Dense, bool, error) {
	o := defaultSpectrumOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.epsilon <= 0 {
		return nil, false, fmt.Errorf("cov: epsilon %v must be positive", o.epsilon)
	}
	rows, cols := c.Dims()
	if rows != cols {
		return nil, false, fmt.Errorf("matrix is %d by %d, want square: %w", rows, cols, ErrShape)
	}

	var eig mat.EigenSym
	if !eig.Factorize(matutil.SymFromMatrix(c), false) {
		return nil, false, errors.New("cov: eigendecomposition failed")
	}
	values := eig.Values(nil)
	minEig := values[0]
	for _, value := range values[1:] {
		if value < minEig {
			minEig = value
		}
	}

	res := mat.NewDense(rows, cols, nil)
	res.Copy(c)
	if minEig >= 0 {
		return res, false, nil
	}
	matutil.AddToDiag(res, -minEig+o.epsilon)
	if o.verbose {
		log.Printf("cov: non-PSD matrix (min eigenvalue %v), shifting spectrum up to %v", minEig, o.epsilon)
	}
	return res, true, nil
}
