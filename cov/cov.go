// Package cov estimates time-lagged cross-covariance matrices from padded
// multivariate time series and derives Gaussian predictive information from
// them. The pipeline is: FromData builds a (T·d)×(T·d) covariance over
// length-T windows (optionally projected onto block-Toeplitz structure and
// ridge-regularized), RectifySpectrum floors its eigenvalues, and
// PredictiveInformation turns a doubled-window covariance into the mutual
// information, in nats, between past and future.
package cov

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/isabella232/DAPC/window"
)

// partial holds the sufficient statistics of one sequence: the sum of its
// valid lagged vectors, the sum of their outer products, and their count.
type partial struct {
	sum   *mat.VecDense
	outer *mat.SymDense
	count float64
}

// FromData estimates the (T·d)×(T·d) cross-covariance of all length-T
// windows of the batch. A window contributes only when every timestep it
// covers is valid per the batch mask. The estimate is the second moment of
// the valid lagged vectors around their mean, so cov[t1·d:, t2·d:] blocks
// hold the cross-covariance between X(t1) and X(t2).
//
// By default the result is projected onto block-Toeplitz structure; see
// WithToeplitz and WithRegularization.
func FromData(b *window.Batch, T int, opts ...Option) (*mat.Dense, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if T < 1 {
		return nil, fmt.Errorf("T = %d: %w", T, ErrBadLag)
	}
	if o.reg < 0 {
		return nil, fmt.Errorf("cov: negative regularization %v", o.reg)
	}
	if shortest := b.MinValidLen(); shortest <= T {
		return nil, fmt.Errorf("T = %d but the shortest valid sequence has "+
			"%d steps; T must be shorter than the length of the shortest time "+
			"series, and when estimating predictive information 2*T must be: %w",
			T, shortest, ErrSeriesTooShort)
	}

	d := b.Dim()
	n := T * d

	// Per-sequence sufficient statistics are independent, so fan out one
	// goroutine per sequence and merge in index order.
	parts := make([]partial, b.Len())
	var wg sync.WaitGroup
	wg.Add(b.Len())
	for i := 0; i < b.Len(); i++ {
		go func(i int) {
			defer wg.Done()
			seq, mask := b.Seq(i)
			parts[i] = accumulate(seq, mask, T)
		}(i)
	}
	wg.Wait()

	sum := mat.NewVecDense(n, nil)
	outer := mat.NewSymDense(n, nil)
	count := 0.
	for _, part := range parts {
		if part.count == 0 {
			continue
		}
		sum.AddVec(sum, part.sum)
		outer.AddSym(outer, part.outer)
		count += part.count
	}

	// A fragmented mask can pass the length check yet leave no run of T
	// consecutive valid timesteps anywhere.
	if count == 0 {
		return nil, fmt.Errorf("no window of %d consecutive valid timesteps: %w", T, ErrSeriesTooShort)
	}

	// E[w wᵀ] − mean meanᵀ over the valid windows.
	mean := mat.NewVecDense(n, nil)
	mean.ScaleVec(1./count, sum)
	var meanOuter mat.Dense
	meanOuter.Outer(1., mean, mean)
	est := mat.NewDense(n, n, nil)
	est.Scale(1./count, outer)
	est.Sub(est, &meanOuter)

	if o.toeplitzify {
		var err error
		est, err = Toeplitzify(est, T, d)
		if err != nil {
			return nil, err
		}
	}
	if o.reg > 0 {
		for index := 0; index < n; index++ {
			est.Set(index, index, est.At(index, index)+o.reg)
		}
	}
	return est, nil
}

// accumulate reduces one sequence to its window statistics. Sequences
// shorter than the lag window contribute nothing.
func accumulate(seq *mat.Dense, mask []bool, T int) partial {
	lagged, valid := window.Lagged(seq, mask, T)
	if lagged == nil {
		return partial{}
	}
	_, n := lagged.Dims()
	part := partial{
		sum:   mat.NewVecDense(n, nil),
		outer: mat.NewSymDense(n, nil),
	}
	for row, ok := range valid {
		if !ok {
			continue
		}
		w := lagged.RowView(row)
		part.sum.AddVec(part.sum, w)
		part.outer.SymRankOne(part.outer, 1., w)
		part.count++
	}
	return part
}
