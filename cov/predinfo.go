package cov

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/isabella232/DAPC/matutil"
	"github.com/isabella232/DAPC/window"
)

// PredictiveInformation computes the mutual information, in nats, between
// the past and future halves of a jointly Gaussian window with covariance
// c. For c of size 2n×2n covering variables {1,…,n} and {n+1,…,2n},
//
//	PI = logdet c[:n,:n] − ½ logdet c
//
// using that both marginal blocks of a time-lag covariance share the same
// determinant. c must be positive definite (rectify it first if needed);
// non-PD input returns ErrNotPositiveDefinite rather than NaN.
func PredictiveInformation(c mat.Matrix) (float64, error) {
	rows, cols := c.Dims()
	if rows != cols || rows == 0 || rows%2 != 0 {
		return 0, fmt.Errorf("matrix is %d by %d, want square with even size: %w", rows, cols, ErrShape)
	}
	half := rows / 2

	full := matutil.SymFromMatrix(c)
	past := mat.NewSymDense(half, nil)
	for i := 0; i < half; i++ {
		for j := i; j < half; j++ {
			past.SetSym(i, j, full.At(i, j))
		}
	}

	logDetPast, err := logDetPD(past)
	if err != nil {
		return 0, fmt.Errorf("past block: %w", err)
	}
	logDetFull, err := logDetPD(full)
	if err != nil {
		return 0, fmt.Errorf("full matrix: %w", err)
	}
	return logDetPast - 0.5*logDetFull, nil
}

// PredictiveInformationFromData runs the whole pipeline: estimate the
// doubled-window covariance over 2T lags, floor its spectrum, and compute
// the predictive information between the T-step past and future.
func PredictiveInformationFromData(b *window.Batch, T int, opts ...Option) (float64, error) {
	est, err := FromData(b, 2*T, opts...)
	if err != nil {
		return 0, err
	}
	rectified, _, err := RectifySpectrum(est)
	if err != nil {
		return 0, err
	}
	return PredictiveInformation(rectified)
}

// logDetPD computes the log-determinant through a Cholesky factorization,
// which doubles as the positive-definiteness check.
func logDetPD(s *mat.SymDense) (float64, error) {
	var chol mat.Cholesky
	if !chol.Factorize(s) {
		return 0, ErrNotPositiveDefinite
	}
	return chol.LogDet(), nil
}
