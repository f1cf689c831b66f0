package utils

import (
	"fmt"
	"math"
)

// Banded is a square matrix with equal lower and upper bandwidth KD, stored
// row-major with row i holding columns [i-KD, i+KD]. It exists to factor the
// replaced-row Poisson Laplacian, whose bandwidth is the 1D grid size: the
// full system is far too large for dense LU, and LU of a banded matrix fills
// in only within the band.
type Banded struct {
	N, KD int
	data  []float64
}

func NewBanded(n, kd int) (B Banded) {
	B = Banded{
		N:    n,
		KD:   kd,
		data: make([]float64, n*(2*kd+1)),
	}
	return
}

func (b Banded) index(i, j int) int {
	return i*(2*b.KD+1) + (j - i + b.KD)
}

func (b Banded) At(i, j int) float64 {
	if j < i-b.KD || j > i+b.KD {
		return 0
	}
	return b.data[b.index(i, j)]
}

func (b Banded) Set(i, j int, val float64) {
	if j < i-b.KD || j > i+b.KD {
		err := fmt.Errorf("entry (%d,%d) outside bandwidth %d", i, j, b.KD)
		panic(err)
	}
	b.data[b.index(i, j)] = val
}

// Factorize computes the in-place LU factorization without pivoting. The
// caller is responsible for supplying a matrix for which this is stable, such
// as a diagonally dominant M-matrix; a vanishing pivot is reported as an
// error rather than silently producing Inf/NaN.
func (b Banded) Factorize() (err error) {
	var (
		n, kd = b.N, b.KD
		w     = 2*kd + 1
		data  = b.data
	)
	for k := 0; k < n; k++ {
		piv := data[k*w+kd]
		if math.Abs(piv) < 1.e-300 {
			err = fmt.Errorf("zero pivot at row %d", k)
			return
		}
		iMax := k + kd
		if iMax > n-1 {
			iMax = n - 1
		}
		for i := k + 1; i <= iMax; i++ {
			l := data[i*w+(k-i+kd)] / piv
			data[i*w+(k-i+kd)] = l
			if l == 0 {
				continue
			}
			// Row k's in-band columns right of the pivot
			for j := k + 1; j <= iMax; j++ {
				data[i*w+(j-i+kd)] -= l * data[k*w+(j-k+kd)]
			}
		}
	}
	return
}

// Solve performs forward and back substitution using a factorization from
// Factorize. The rhs is overwritten with the solution and returned.
func (b Banded) Solve(rhs []float64) []float64 {
	var (
		n, kd = b.N, b.KD
		w     = 2*kd + 1
		data  = b.data
	)
	if len(rhs) != n {
		err := fmt.Errorf("rhs length %d does not match system size %d", len(rhs), n)
		panic(err)
	}
	// Ly = rhs
	for i := 1; i < n; i++ {
		jMin := i - kd
		if jMin < 0 {
			jMin = 0
		}
		sum := rhs[i]
		for j := jMin; j < i; j++ {
			sum -= data[i*w+(j-i+kd)] * rhs[j]
		}
		rhs[i] = sum
	}
	// Ux = y
	for i := n - 1; i >= 0; i-- {
		jMax := i + kd
		if jMax > n-1 {
			jMax = n - 1
		}
		sum := rhs[i]
		for j := i + 1; j <= jMax; j++ {
			sum -= data[i*w+(j-i+kd)] * rhs[j]
		}
		rhs[i] = sum / data[i*w+kd]
	}
	return rhs
}
