package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandedLU(t *testing.T) {
	// Tridiagonal 1D Laplacian with Dirichlet identity rows, solved against
	// the dense inverse
	{
		n := 8
		B := NewBanded(n, 1)
		D := NewMatrix(n, n)
		for i := 0; i < n; i++ {
			if i == 0 || i == n-1 {
				B.Set(i, i, 1)
				D.Set(i, i, 1)
				continue
			}
			B.Set(i, i-1, 1)
			B.Set(i, i, -2)
			B.Set(i, i+1, 1)
			D.Set(i, i-1, 1)
			D.Set(i, i, -2)
			D.Set(i, i+1, 1)
		}
		require.NoError(t, B.Factorize())

		rhs := make([]float64, n)
		for i := range rhs {
			rhs[i] = float64(i + 1)
		}
		want := make([]float64, n)
		Dinv, err := D.Inverse()
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				want[i] += Dinv.At(i, j) * float64(j+1)
			}
		}
		got := B.Solve(rhs)
		for i := range got {
			assert.InDelta(t, want[i], got[i], 1.e-12)
		}
	}
	// Wider band, same cross-check
	{
		n, kd := 12, 3
		B := NewBanded(n, kd)
		D := NewMatrix(n, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if j < i-kd || j > i+kd {
					continue
				}
				v := 1. / (1. + float64((i-j)*(i-j)))
				if i == j {
					v = 4
				}
				B.Set(i, j, v)
				D.Set(i, j, v)
			}
		}
		require.NoError(t, B.Factorize())
		rhs := make([]float64, n)
		rhs[0], rhs[n-1] = 1, -1
		got := B.Solve(append([]float64{}, rhs...))
		// Residual check D*got == rhs
		for i := 0; i < n; i++ {
			var sum float64
			for j := 0; j < n; j++ {
				sum += D.At(i, j) * got[j]
			}
			assert.InDelta(t, rhs[i], sum, 1.e-12)
		}
	}
	// Structurally singular
	{
		B := NewBanded(4, 1)
		B.Set(0, 0, 1)
		B.Set(1, 1, 1)
		// Row 2 left zero
		B.Set(3, 3, 1)
		assert.Error(t, B.Factorize())
	}
	// Out of band writes panic
	{
		B := NewBanded(4, 1)
		assert.Panics(t, func() { B.Set(0, 3, 1) })
	}
}

func TestSparseWrappers(t *testing.T) {
	D := NewDOK(3, 3)
	D.Set(0, 0, 2)
	D.Accumulate(0, 0, -1)
	D.Set(1, 2, 5)
	A := D.ToCSR()
	assert.Equal(t, 2, A.NNZ())
	assert.Equal(t, 1., A.At(0, 0))
	assert.Equal(t, 5., A.At(1, 2))
	var nnz int
	A.DoNonZero(func(i, j int, v float64) {
		nnz++
		assert.Equal(t, v, A.At(i, j))
	})
	assert.Equal(t, 2, nnz)
	assert.NotNil(t, A.RawMatrix())
}
