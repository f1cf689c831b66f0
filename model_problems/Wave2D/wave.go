package Wave2D

import (
	"fmt"
	"math"

	"github.com/notargets/fdm2d/FD2D"
	"github.com/notargets/fdm2d/utils"
)

// stabilityTolerance admits CFL numbers sitting exactly on the 2D leapfrog
// bound 1/sqrt(2), where the scheme is still stable and recovers the
// standing wave to machine-level accuracy.
const stabilityTolerance = 1.e-12

// Config fixes the parameters of a wave solve. It is immutable once handed
// to Solve; all mutable state lives in the per-call solver.
type Config struct {
	BC         FD2D.BCType
	CFL        float64 // Time step is dt = CFL*h/C
	C          float64 // Wave speed
	Mx, My     int     // Standing wave mode numbers
	StoreEvery int     // Capture every k-th layer into Result.Snapshots, 0 disables
}

func DefaultConfig() Config {
	return Config{
		BC:  FD2D.Dirichlet,
		CFL: 0.5,
		C:   1,
		Mx:  3,
		My:  3,
	}
}

type Result struct {
	H         float64
	Dt        float64
	L2        []float64 // Per-step errors, first entry at t=dt
	Snapshots map[int]utils.Matrix
}

// solver is the transient state of one call: mesh, operator and the three
// rotating time layers. It is never shared across calls.
type solver struct {
	cfg            Config
	msh            *FD2D.Mesh
	bp             FD2D.BoundaryPolicy
	ue             FD2D.SpaceTimeFunc
	D2             utils.CSR
	dt             float64
	Unm1, Un, Unp1 utils.Matrix
	work           utils.Matrix
}

// Solve runs the explicit leapfrog scheme for the 2D wave equation on the
// unit square for Nt time layers (including the Taylor-started first one)
// and returns the per-step L2 errors against the manufactured standing wave.
func Solve(cfg Config, N, Nt int) (res *Result, err error) {
	var (
		c *solver
	)
	if c, err = newSolver(cfg, N); err != nil {
		return
	}
	c.initialize()
	res = &Result{
		H:  c.msh.H,
		Dt: c.dt,
		L2: make([]float64, 0, Nt),
	}
	if cfg.StoreEvery > 0 {
		res.Snapshots = make(map[int]utils.Matrix)
	}
	res.L2 = append(res.L2, c.l2Error(c.dt))
	for i := 1; i < Nt; i++ {
		c.step()
		res.L2 = append(res.L2, c.l2Error(float64(i+1)*c.dt))
		if cfg.StoreEvery > 0 && i%cfg.StoreEvery == 0 {
			// Post-rotation Unm1 is the layer at t = i*dt
			res.Snapshots[i] = c.Unm1.Copy()
		}
	}
	return
}

func newSolver(cfg Config, N int) (c *solver, err error) {
	if cfg.CFL <= 0 || cfg.C <= 0 {
		err = fmt.Errorf("cfl = %v, c = %v: %w", cfg.CFL, cfg.C, FD2D.ErrUnstableParameters)
		return
	}
	if cfg.CFL > (1+stabilityTolerance)/math.Sqrt2 {
		err = fmt.Errorf("cfl = %v: %w", cfg.CFL, FD2D.ErrUnstableParameters)
		return
	}
	var (
		bp FD2D.BoundaryPolicy
		D2 utils.CSR
	)
	if bp, err = FD2D.NewBoundaryPolicy(cfg.BC); err != nil {
		return
	}
	msh := FD2D.NewMesh(N, 1)
	if D2, err = FD2D.SecondDifference(N, msh.H, bp); err != nil {
		return
	}
	np := N + 1
	c = &solver{
		cfg:  cfg,
		msh:  msh,
		bp:   bp,
		ue:   bp.ExactSolution(cfg.Mx, cfg.My, cfg.C),
		D2:   D2,
		dt:   cfg.CFL * msh.H / cfg.C,
		Unm1: utils.NewMatrix(np, np),
		Un:   utils.NewMatrix(np, np),
		Unp1: utils.NewMatrix(np, np),
		work: utils.NewMatrix(np, np),
	}
	return
}

// initialize sets U(t=0) exactly and Taylor-starts U(t=dt), avoiding a
// fictitious negative time layer.
func (c *solver) initialize() {
	var (
		cdt = c.cfg.C * c.dt
		uM  = c.Unm1.Data()
		u0  = c.Un.Data()
		wD  = c.work.Data()
	)
	exact := c.msh.SampleAtTime(c.ue, 0)
	copy(uM, exact.Data())
	FD2D.ApplyLaplacian(c.D2, c.Unm1, c.work)
	for i := range u0 {
		u0[i] = uM[i] + 0.5*cdt*cdt*wD[i]
	}
}

// step advances one leapfrog update, enforces the boundary condition on the
// new layer and rotates the three layers without reallocation.
func (c *solver) step() {
	var (
		cdt2 = (c.cfg.C * c.dt) * (c.cfg.C * c.dt)
		uM   = c.Unm1.Data()
		u0   = c.Un.Data()
		uP   = c.Unp1.Data()
		wD   = c.work.Data()
	)
	FD2D.ApplyLaplacian(c.D2, c.Un, c.work)
	for i := range uP {
		uP[i] = 2*u0[i] - uM[i] + cdt2*wD[i]
	}
	c.bp.Enforce(c.Unp1)
	c.Unm1, c.Un, c.Unp1 = c.Un, c.Unp1, c.Unm1
}

func (c *solver) l2Error(t float64) float64 {
	return c.msh.L2Norm(c.Un, c.msh.SampleAtTime(c.ue, t))
}

// Refinement adapts a wave Config to the convergence estimator. The step
// count scales with N so the CFL number and the final time stay fixed as the
// mesh refines.
type Refinement struct {
	Config        Config
	BaseN, BaseNt int
}

func NewRefinement(cfg Config) Refinement {
	return Refinement{
		Config: cfg,
		BaseN:  8,
		BaseNt: 10,
	}
}

func (rf Refinement) Solve(N int) (h, l2 float64, err error) {
	var (
		Nt  = rf.BaseNt * N / rf.BaseN
		res *Result
	)
	if res, err = Solve(rf.Config, N, Nt); err != nil {
		return
	}
	h = res.H
	l2 = res.L2[len(res.L2)-1]
	return
}
