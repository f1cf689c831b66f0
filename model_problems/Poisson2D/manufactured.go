package Poisson2D

import (
	"math"

	"github.com/notargets/fdm2d/FD2D"
)

// ExpCosSin is the manufactured solution u = exp(cos(4*pi*x)*sin(2*pi*y)).
// It is deliberately non-zero on the boundary so the Dirichlet data path is
// exercised, not just the homogeneous case.
func ExpCosSin() (ue, f FD2D.SpaceFunc) {
	var (
		fourPi = 4 * math.Pi
		twoPi  = 2 * math.Pi
	)
	ue = func(x, y float64) float64 {
		return math.Exp(math.Cos(fourPi*x) * math.Sin(twoPi*y))
	}
	// f = laplacian(u) = u * (gx^2 + gy^2 + gxx + gyy) for u = exp(g)
	f = func(x, y float64) float64 {
		var (
			g   = math.Cos(fourPi*x) * math.Sin(twoPi*y)
			gx  = -fourPi * math.Sin(fourPi*x) * math.Sin(twoPi*y)
			gy  = twoPi * math.Cos(fourPi*x) * math.Cos(twoPi*y)
			lap = -(fourPi*fourPi + twoPi*twoPi) * g // gxx + gyy
		)
		return math.Exp(g) * (gx*gx + gy*gy + lap)
	}
	return
}

// PolyBilinear is u = x*(L-x)*y*(L-y), zero on the whole boundary, with
// laplacian f = -2*(x*(L-x) + y*(L-y)). The discrete scheme is exact for it
// up to rounding, which makes it a sharp assembly check.
func PolyBilinear(L float64) (ue, f FD2D.SpaceFunc) {
	ue = func(x, y float64) float64 {
		return x * (L - x) * y * (L - y)
	}
	f = func(x, y float64) float64 {
		return -2 * (x*(L-x) + y*(L-y))
	}
	return
}
