package process

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/isabella232/DAPC/matutil"
)

func TestLorenzStaysOnAttractor(t *testing.T) {
	n := 5000
	series := Lorenz(n, 1e-2, [3]float64{1., 1., 28.})
	rows, cols := series.Dims()
	require.Equal(t, n, rows)
	require.Equal(t, 3, cols)
	assert.False(t, matutil.AnyNaNOrInf(series))

	// The attractor is bounded; generous box.
	for step := 0; step < n; step++ {
		for col := 0; col < 3; col++ {
			value := series.At(step, col)
			assert.Less(t, value, 100., "step %d col %d", step, col)
			assert.Greater(t, value, -100., "step %d col %d", step, col)
		}
	}
	fmt.Printf("final state %v\n", mat.Formatted(series.RowView(n-1).T()))
}

func TestLorenzEmpty(t *testing.T) {
	assert.Nil(t, Lorenz(0, 1e-2, [3]float64{1, 1, 1}))
}

func stableProcess() *LinearGaussian {
	return &LinearGaussian{
		A: mat.NewDense(2, 2, []float64{0.5, 0.1, -0.2, 0.6}),
		Q: mat.NewSymDense(2, []float64{0.3, 0.05, 0.05, 0.2}),
	}
}

func TestStationaryCovSolvesLyapunov(t *testing.T) {
	proc := stableProcess()
	stationary, err := proc.StationaryCov()
	require.NoError(t, err)

	// S must satisfy S = A S Aᵀ + Q.
	var tmp, rhs mat.Dense
	tmp.Mul(proc.A, stationary)
	rhs.Mul(&tmp, proc.A.T())
	rhs.Add(&rhs, proc.Q)
	var diff mat.Dense
	diff.Sub(stationary, &rhs)
	assert.InDelta(t, 0., mat.Norm(&diff, 2), 1e-11)
}

func TestStationaryCovUnstable(t *testing.T) {
	proc := &LinearGaussian{
		A: mat.NewDense(1, 1, []float64{1.5}),
		Q: mat.NewSymDense(1, []float64{1.}),
	}
	_, err := proc.StationaryCov()
	assert.ErrorIs(t, err, ErrUnstable)
}

func TestLagCov(t *testing.T) {
	proc := stableProcess()
	stationary, err := proc.StationaryCov()
	require.NoError(t, err)

	lag0, err := proc.LagCov(0)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(lag0, stationary, 1e-12))

	lag2, err := proc.LagCov(2)
	require.NoError(t, err)
	var want, tmp mat.Dense
	tmp.Mul(proc.A, stationary)
	want.Mul(proc.A, &tmp)
	assert.True(t, mat.EqualApprox(lag2, &want, 1e-12))

	_, err = proc.LagCov(-1)
	assert.Error(t, err)
}

func TestSampleMatchesStationaryCov(t *testing.T) {
	proc := stableProcess()
	sample, err := proc.Sample(80000, 1000, rand.NewSource(31))
	require.NoError(t, err)

	rows, cols := sample.Dims()
	require.Equal(t, 80000, rows)
	require.Equal(t, 2, cols)

	// Empirical second moment vs the Lyapunov fixed point.
	empirical := mat.NewDense(2, 2, nil)
	for step := 0; step < rows; step++ {
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				empirical.Set(i, j, empirical.At(i, j)+
					sample.At(step, i)*sample.At(step, j)/float64(rows))
			}
		}
	}
	stationary, err := proc.StationaryCov()
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.InDelta(t, stationary.At(i, j), empirical.At(i, j), 0.02,
				"entry (%d, %d)", i, j)
		}
	}
}
