package cov

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/isabella232/DAPC/matutil"
)

// Toeplitzify projects a (T·d)×(T·d) matrix, read as T×T blocks of size
// d×d, onto the nearest block-Toeplitz matrix: the input is symmetrized,
// all blocks at equal lag offset t2−t1 are averaged into one representative
// block per lag, and the output block (t1, t2) is that representative (its
// transpose for negative lags), so the result is both block-Toeplitz and
// symmetric. Symmetrizing first folds each forward lag together with its
// transposed backward counterpart, which keeps blocks (i, j) and (j, i)
// consistent transposes across the whole matrix.
func Toeplitzify(c mat.Matrix, T, d int) (*mat.Dense, error) {
	rows, cols := c.Dims()
	if T < 1 || d < 1 || rows != cols || rows != T*d {
		return nil, fmt.Errorf("matrix is %d by %d, want %d blocks of size %d: %w",
			rows, cols, T, d, ErrShape)
	}
	sym := matutil.Symmetrize(c)

	// Representative block per lag k: the mean of the T−k blocks (t, t+k).
	// The count T−k is at least one for every k in range.
	rep := make([]*mat.Dense, T)
	for k := 0; k < T; k++ {
		blk := mat.NewDense(d, d, nil)
		for t := 0; t+k < T; t++ {
			blk.Add(blk, sym.Slice(t*d, (t+1)*d, (t+k)*d, (t+k+1)*d))
		}
		blk.Scale(1./float64(T-k), blk)
		rep[k] = blk
	}
	// The lag-0 representative averages the diagonal blocks of a symmetric
	// matrix, so it is symmetric already; resymmetrize to kill rounding.
	rep[0] = matutil.Symmetrize(rep[0])

	res := mat.NewDense(T*d, T*d, nil)
	for t1 := 0; t1 < T; t1++ {
		for t2 := 0; t2 < T; t2++ {
			dst := res.Slice(t1*d, (t1+1)*d, t2*d, (t2+1)*d).(*mat.Dense)
			switch k := t2 - t1; {
			case k >= 0:
				dst.Copy(rep[k])
			default:
				dst.Copy(rep[-k].T())
			}
		}
	}
	return res, nil
}
