package cov

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/isabella232/DAPC/matutil"
)

func minEigenvalue(t *testing.T, a mat.Matrix) float64 {
	t.Helper()
	var eig mat.EigenSym
	require.True(t, eig.Factorize(matutil.SymFromMatrix(a), false))
	values := eig.Values(nil)
	min := values[0]
	for _, value := range values[1:] {
		if value < min {
			min = value
		}
	}
	return min
}

func TestRectifySpectrumShiftsNegativeSpectrum(t *testing.T) {
	// Symmetric with eigenvalues 3 and -1.
	in := mat.NewDense(2, 2, []float64{1, 2, 2, 1})
	res, corrected, err := RectifySpectrum(in)
	require.NoError(t, err)
	assert.True(t, corrected)
	assert.InDelta(t, DefaultEpsilon, minEigenvalue(t, res), 1e-12)
	// The input is untouched.
	assert.True(t, mat.Equal(in, mat.NewDense(2, 2, []float64{1, 2, 2, 1})))
}

func TestRectifySpectrumLeavesPSDUntouched(t *testing.T) {
	in := mat.NewDense(2, 2, []float64{2, 1, 1, 2})
	res, corrected, err := RectifySpectrum(in)
	require.NoError(t, err)
	assert.False(t, corrected)
	assert.True(t, mat.Equal(res, in))
}

// A minimum eigenvalue inside [0, epsilon) does not trigger a correction;
// only strictly negative spectra do. Pinned deliberately.
func TestRectifySpectrumBoundaryBelowEpsilon(t *testing.T) {
	tiny := DefaultEpsilon / 10.
	in := mat.NewDense(2, 2, []float64{tiny, 0, 0, 1})
	res, corrected, err := RectifySpectrum(in)
	require.NoError(t, err)
	assert.False(t, corrected)
	assert.True(t, mat.Equal(res, in))
}

func TestRectifySpectrumCustomEpsilon(t *testing.T) {
	in := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	res, corrected, err := RectifySpectrum(in, WithEpsilon(1e-3), WithVerbose(true))
	require.NoError(t, err)
	assert.True(t, corrected)
	assert.InDelta(t, 1e-3, minEigenvalue(t, res), 1e-12)
}

func TestRectifySpectrumBadInput(t *testing.T) {
	_, _, err := RectifySpectrum(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, ErrShape)

	_, _, err = RectifySpectrum(mat.NewDense(2, 2, nil), WithEpsilon(0))
	assert.Error(t, err)
}
