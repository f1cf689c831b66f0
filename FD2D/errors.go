package FD2D

import "errors"

// Numerical failures here are deterministic given their inputs, so none of
// these are retryable. Callers match with errors.Is after unwrapping any
// context added along the way.
var (
	// ErrInvalidResolution is returned when the grid is too coarse for the
	// 4 point one-sided boundary stencils.
	ErrInvalidResolution = errors.New("fdm2d: invalid resolution, need N >= 4")

	// ErrInvalidBoundaryVariant is returned when a solver is asked for a
	// boundary condition it does not support.
	ErrInvalidBoundaryVariant = errors.New("fdm2d: unsupported boundary variant")

	// ErrSingularSystem is returned when the assembled linear system cannot
	// be factored.
	ErrSingularSystem = errors.New("fdm2d: assembled system is singular")

	// ErrUnstableParameters is returned when the CFL number exceeds the
	// stability bound 1/sqrt(2) of the explicit 2D leapfrog scheme.
	ErrUnstableParameters = errors.New("fdm2d: CFL number exceeds stability bound 1/sqrt(2)")
)
