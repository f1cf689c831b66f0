package FD2D

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticSolver reports E = C*h^p exactly, so the estimated orders must
// come back as p to machine precision.
type syntheticSolver struct {
	c, p  float64
	failN int
}

func (s syntheticSolver) Solve(N int) (h, l2 float64, err error) {
	if s.failN != 0 && N == s.failN {
		err = fmt.Errorf("resolution %d: %w", N, ErrSingularSystem)
		return
	}
	h = 1. / float64(N)
	l2 = s.c * math.Pow(h, s.p)
	return
}

func TestConvergenceRates(t *testing.T) {
	{
		r, E, h, err := ConvergenceRates(syntheticSolver{c: 3, p: 2}, 4, 8)
		require.NoError(t, err)
		assert.Len(t, r, 3)
		assert.Len(t, E, 4)
		assert.Equal(t, []float64{1. / 8, 1. / 16, 1. / 32, 1. / 64}, h)
		for _, ri := range r {
			assert.InDelta(t, 2, ri, 1.e-12)
		}
		for i := 1; i < len(E); i++ {
			assert.Less(t, E[i], E[i-1])
		}
	}
	// First-order synthetic data
	{
		r, _, _, err := ConvergenceRates(syntheticSolver{c: 1, p: 1}, 3, 8)
		require.NoError(t, err)
		for _, ri := range r {
			assert.InDelta(t, 1, ri, 1.e-12)
		}
	}
	// A failing level aborts the sweep and names the resolution
	{
		_, _, _, err := ConvergenceRates(syntheticSolver{c: 1, p: 2, failN: 32}, 4, 8)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSingularSystem))
		assert.True(t, strings.Contains(err.Error(), "N = 32"))
	}
}
