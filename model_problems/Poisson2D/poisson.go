package Poisson2D

import (
	"fmt"

	"gonum.org/v1/gonum/interp"

	"github.com/notargets/fdm2d/FD2D"
	"github.com/notargets/fdm2d/utils"
)

// Poisson2D solves nabla^2 u = f on [0,L]^2 with Dirichlet boundary data
// sampled from the manufactured solution Ue. F is the Laplacian of Ue,
// supplied analytically by the caller alongside the solution itself.
type Poisson2D struct {
	L     float64
	Ue, F FD2D.SpaceFunc
	BC    FD2D.BCType
}

func NewPoisson2D(L float64, ue, f FD2D.SpaceFunc) (p *Poisson2D) {
	p = &Poisson2D{
		L:  L,
		Ue: ue,
		F:  f,
		BC: FD2D.Dirichlet,
	}
	return
}

// Solution is the grid-sampled field of one solve, owning its mesh.
type Solution struct {
	Mesh *FD2D.Mesh
	U    utils.Matrix
}

// Solve assembles the 2D Laplacian as the Kronecker sum D2(x)I + I(x)D2,
// replaces every boundary row with an identity row whose data sits on the
// right hand side, and factors the banded system directly.
func (p *Poisson2D) Solve(N int) (sol *Solution, err error) {
	if p.BC != FD2D.Dirichlet {
		err = fmt.Errorf("poisson solver requires Dirichlet data, got %v: %w",
			p.BC, FD2D.ErrInvalidBoundaryVariant)
		return
	}
	var (
		bp, _ = FD2D.NewBoundaryPolicy(FD2D.Dirichlet)
		msh   = FD2D.NewMesh(N, p.L)
		D2    utils.CSR
	)
	if D2, err = FD2D.SecondDifference(N, msh.H, bp); err != nil {
		return
	}
	A, b := p.assemble(msh, D2)

	var (
		np = N + 1
		n  = np * np
	)
	// Lexicographic ordering gives bandwidth np; the one-sided operator rows
	// only ever land on boundary indices, where the identity row replaces
	// them, so nothing reaches past the band.
	B := utils.NewBanded(n, np)
	A.DoNonZero(func(i, j int, v float64) {
		B.Set(i, j, v)
	})
	if ferr := B.Factorize(); ferr != nil {
		err = fmt.Errorf("%v: %w", ferr, FD2D.ErrSingularSystem)
		return
	}
	x := B.Solve(b)

	sol = &Solution{
		Mesh: msh,
		U:    utils.NewMatrix(np, np, x),
	}
	return
}

// assemble builds the replaced-row system. Boundary rows are skipped while
// scattering the Kronecker terms and set to identity afterwards; the right
// hand side carries the source term on interior rows and the exact boundary
// values elsewhere.
func (p *Poisson2D) assemble(msh *FD2D.Mesh, D2 utils.CSR) (A utils.CSR, b []float64) {
	var (
		N   = msh.N
		np  = N + 1
		n   = np * np
		dok = utils.NewDOK(n, n)
	)
	onBoundary := func(i, j int) bool {
		return i == 0 || i == N || j == 0 || j == N
	}
	D2.DoNonZero(func(r, c int, v float64) {
		for k := 0; k <= N; k++ {
			// D2 (x) I row (r,k); I (x) D2 row (k,r)
			if !onBoundary(r, k) {
				dok.Accumulate(r*np+k, c*np+k, v)
			}
			if !onBoundary(k, r) {
				dok.Accumulate(k*np+r, k*np+c, v)
			}
		}
	})
	b = make([]float64, n)
	var (
		xD = msh.X.Data()
		yD = msh.Y.Data()
	)
	for ind := range b {
		b[ind] = p.F(xD[ind], yD[ind])
	}
	for _, ind := range boundaryIndices(N) {
		dok.Set(ind, ind, 1)
		b[ind] = p.Ue(xD[ind], yD[ind])
	}
	A = dok.ToCSR()
	return
}

// boundaryIndices lists the vectorized indices of the outer ring of the
// (N+1)x(N+1) grid, the rows replaced with Dirichlet data.
func boundaryIndices(N int) (I utils.Index) {
	var (
		np = N + 1
		ii int
	)
	I = utils.NewIndex(4 * N)
	for j := 0; j <= N; j++ {
		I[ii] = j // Row i = 0
		ii++
		I[ii] = N*np + j // Row i = N
		ii++
	}
	for i := 1; i < N; i++ {
		I[ii] = i * np // Column j = 0
		ii++
		I[ii] = i*np + N // Column j = N
		ii++
	}
	return
}

// L2Error measures the solve against the manufactured solution on the mesh.
func (p *Poisson2D) L2Error(sol *Solution) float64 {
	return sol.Mesh.L2Norm(sol.U, sol.Mesh.Sample(p.Ue))
}

// Eval interpolates the grid field at an arbitrary point with natural cubic
// splines along each axis, the bicubic analogue of the grid-aligned field.
func (sol *Solution) Eval(x, y float64) (val float64, err error) {
	var (
		np   = sol.Mesh.N + 1
		axis = sol.Mesh.Axis.Data()
		uD   = sol.U.Data()
		col  = make([]float64, np)
		cs   interp.NaturalCubic
	)
	if x < 0 || x > sol.Mesh.L || y < 0 || y > sol.Mesh.L {
		err = fmt.Errorf("point (%v,%v) outside domain [0,%v]^2", x, y, sol.Mesh.L)
		return
	}
	for i := 0; i < np; i++ {
		if err = cs.Fit(axis, uD[i*np:(i+1)*np]); err != nil {
			return
		}
		col[i] = cs.Predict(y)
	}
	if err = cs.Fit(axis, col); err != nil {
		return
	}
	val = cs.Predict(x)
	return
}

// Refinement adapts the problem to the convergence estimator.
type Refinement struct {
	Problem *Poisson2D
}

func (rf Refinement) Solve(N int) (h, l2 float64, err error) {
	var (
		sol *Solution
	)
	if sol, err = rf.Problem.Solve(N); err != nil {
		return
	}
	h = sol.Mesh.H
	l2 = rf.Problem.L2Error(sol)
	return
}
