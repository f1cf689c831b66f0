package FD2D

import (
	"fmt"
	"math"
)

// RefinementSolver is one solve at a given resolution, returning the mesh
// spacing and the final L2 error. Wave and Poisson solvers both provide
// adapters; the wave adapter also scales its step count so the CFL number
// and final time stay fixed under refinement.
type RefinementSolver interface {
	Solve(N int) (h, l2 float64, err error)
}

// ConvergenceRates runs the solver at m geometrically doubling resolutions
// starting from N0 and reduces the (h, E) sequence to empirical orders
// r[i] = log(E[i]/E[i+1]) / log(h[i]/h[i+1]). The full sequences are
// returned so callers can see where floating point error flooring sets in.
// The first failing level aborts the sweep.
func ConvergenceRates(s RefinementSolver, m, N0 int) (r, E, h []float64, err error) {
	var (
		N = N0
	)
	E = make([]float64, 0, m)
	h = make([]float64, 0, m)
	for level := 0; level < m; level++ {
		var (
			hl, el float64
		)
		if hl, el, err = s.Solve(N); err != nil {
			err = fmt.Errorf("convergence sweep failed at resolution N = %d: %w", N, err)
			return
		}
		h = append(h, hl)
		E = append(E, el)
		N *= 2
	}
	r = make([]float64, m-1)
	for i := 1; i < m; i++ {
		r[i-1] = math.Log(E[i-1]/E[i]) / math.Log(h[i-1]/h[i])
	}
	return
}
