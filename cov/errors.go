package cov

import "errors"

// Sentinel errors returned by the covariance routines. Callers match them
// with errors.Is; messages carrying context wrap these with fmt.Errorf.
var (
	// ErrShape indicates matrix or batch dimensions that do not agree with
	// the requested block structure (T blocks of size d).
	ErrShape = errors.New("cov: shape mismatch")

	// ErrBadLag indicates a non-positive lag window T.
	ErrBadLag = errors.New("cov: lag window must be positive")

	// ErrSeriesTooShort indicates that the shortest valid sequence in a
	// batch does not exceed the lag window T.
	ErrSeriesTooShort = errors.New("cov: time series too short for lag window")

	// ErrNotPositiveDefinite indicates a log-determinant was requested for
	// a matrix that is not positive definite.
	ErrNotPositiveDefinite = errors.New("cov: matrix is not positive definite")
)
