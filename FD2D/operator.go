package FD2D

import (
	"fmt"

	"github.com/notargets/fdm2d/utils"
)

// SecondDifference builds the 1D second-order differentiation matrix of size
// (N+1)x(N+1), scaled by 1/h^2. Interior rows carry the [1,-2,1] stencil,
// rows 0 and N the one-sided stencils of the boundary policy. The result is
// a pure function of (N, h, policy) and is reused unchanged across every
// time step of a solve.
func SecondDifference(N int, h float64, bc BoundaryPolicy) (D2 utils.CSR, err error) {
	if N < 4 {
		err = fmt.Errorf("N = %d: %w", N, ErrInvalidResolution)
		return
	}
	var (
		scale = 1. / (h * h)
		D     = utils.NewDOK(N+1, N+1)
	)
	for i := 1; i < N; i++ {
		D.Set(i, i-1, scale)
		D.Set(i, i, -2*scale)
		D.Set(i, i+1, scale)
	}
	bc.BoundaryRows(D, N, scale)
	D2 = D.ToCSR()
	return
}

// ApplyLaplacian computes W = D2*U + U*D2^T, the 2D Laplacian of U applied
// along both mesh axes by tensor contraction with the 1D operator. Forming
// the Kronecker-sum matrix is deliberately avoided here: per step this is
// O(nnz*N) work against O(N^4) for a materialized 2D operator.
func ApplyLaplacian(D2 utils.CSR, U, W utils.Matrix) {
	var (
		nr, nc = U.Dims()
		uD     = U.Data()
		wD     = W.Data()
	)
	W.Zero()
	D2.DoNonZero(func(i, k int, v float64) {
		// Rows: W[i,:] += v * U[k,:]
		var (
			wRow = wD[i*nc : (i+1)*nc]
			uRow = uD[k*nc : (k+1)*nc]
		)
		for j, val := range uRow {
			wRow[j] += v * val
		}
		// Columns: (U*D2^T)[r,i] = sum_k U[r,k]*D2[i,k]
		for r := 0; r < nr; r++ {
			wD[r*nc+i] += v * uD[r*nc+k]
		}
	})
}
