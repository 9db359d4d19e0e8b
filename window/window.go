// Package window holds the padded time-series batch model and the
// time-lagged embedding used by the covariance estimator. A batch is a set
// of d-dimensional sequences padded to arbitrary lengths, with a boolean
// validity mask marking which timesteps carry real data.
package window

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrShape is returned when the sequences and masks of a batch disagree on
// their dimensions.
var ErrShape = errors.New("window: inconsistent batch shape")

// Batch is a collection of padded multivariate time series. Every sequence
// is an L×d matrix (rows are timesteps) with a companion mask of length L;
// mask[t] is true where row t is real data rather than padding. Sequences
// may have different lengths but must share the feature dimension d.
type Batch struct {
	seqs  []*mat.Dense
	masks [][]bool
	dim   int
}

// NewBatch validates and wraps a set of sequences and their masks. A nil
// mask entry marks the whole sequence as valid.
func NewBatch(seqs []*mat.Dense, masks [][]bool) (*Batch, error) {
	if len(seqs) == 0 {
		return nil, fmt.Errorf("empty batch: %w", ErrShape)
	}
	if masks != nil && len(masks) != len(seqs) {
		return nil, fmt.Errorf("%d sequences but %d masks: %w", len(seqs), len(masks), ErrShape)
	}
	_, d := seqs[0].Dims()
	checked := make([][]bool, len(seqs))
	for i, seq := range seqs {
		l, di := seq.Dims()
		if di != d {
			return nil, fmt.Errorf("sequence %d has dimension %d, want %d: %w", i, di, d, ErrShape)
		}
		if masks == nil || masks[i] == nil {
			checked[i] = fullMask(l)
			continue
		}
		if len(masks[i]) != l {
			return nil, fmt.Errorf("sequence %d has %d timesteps but mask has %d: %w", i, l, len(masks[i]), ErrShape)
		}
		checked[i] = masks[i]
	}
	return &Batch{seqs: seqs, masks: checked, dim: d}, nil
}

// NewFullBatch wraps sequences that contain no padding.
func NewFullBatch(seqs []*mat.Dense) (*Batch, error) {
	return NewBatch(seqs, nil)
}

// Len returns the number of sequences in the batch.
func (b *Batch) Len() int { return len(b.seqs) }

// Dim returns the feature dimension d shared by all sequences.
func (b *Batch) Dim() int { return b.dim }

// Seq returns the i-th sequence and its validity mask.
func (b *Batch) Seq(i int) (*mat.Dense, []bool) { return b.seqs[i], b.masks[i] }

// ValidLen returns the number of valid timesteps of sequence i.
func (b *Batch) ValidLen(i int) int {
	count := 0
	for _, ok := range b.masks[i] {
		if ok {
			count++
		}
	}
	return count
}

// MinValidLen returns the smallest valid length across the batch.
func (b *Batch) MinValidLen() int {
	min := b.ValidLen(0)
	for i := 1; i < b.Len(); i++ {
		if l := b.ValidLen(i); l < min {
			min = l
		}
	}
	return min
}

// Lagged builds the time-lagged embedding of a single sequence: every run
// of T consecutive timesteps becomes one row [x_t ; x_{t+1} ; … ; x_{t+T−1}]
// of length T·d. The returned slice marks which windows are valid, meaning
// every timestep they cover is valid per the mask. Windows that touch
// padding are still materialized so that shapes stay uniform; callers must
// exclude them from any statistics. Returns nil when the sequence is
// shorter than T. A nil mask counts every timestep as valid.
func Lagged(seq *mat.Dense, mask []bool, T int) (*mat.Dense, []bool) {
	l, d := seq.Dims()
	numWin := l - T + 1
	if T < 1 || numWin <= 0 {
		return nil, nil
	}
	if mask == nil {
		mask = fullMask(l)
	}
	lagged := mat.NewDense(numWin, T*d, nil)
	valid := make([]bool, numWin)
	for start := 0; start < numWin; start++ {
		ok := true
		for t := 0; t < T; t++ {
			if !mask[start+t] {
				ok = false
			}
			for col := 0; col < d; col++ {
				lagged.Set(start, t*d+col, seq.At(start+t, col))
			}
		}
		valid[start] = ok
	}
	return lagged, valid
}

func fullMask(l int) []bool {
	mask := make([]bool, l)
	for index := range mask {
		mask[index] = true
	}
	return mask
}
