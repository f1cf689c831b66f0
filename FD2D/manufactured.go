package FD2D

import "math"

type SpaceFunc func(x, y float64) float64

type SpaceTimeFunc func(x, y, t float64) float64

// Omega returns the dispersion coefficient w = c*pi*sqrt(mx^2+my^2) shared by
// both standing wave families.
func Omega(mx, my int, c float64) float64 {
	return c * math.Pi * math.Hypot(float64(mx), float64(my))
}

// DirichletStandingWave is the exact standing wave vanishing on the boundary
// of the unit square.
func DirichletStandingWave(mx, my int, c float64) SpaceTimeFunc {
	var (
		kx = float64(mx) * math.Pi
		ky = float64(my) * math.Pi
		w  = Omega(mx, my, c)
	)
	return func(x, y, t float64) float64 {
		return math.Sin(kx*x) * math.Sin(ky*y) * math.Cos(w*t)
	}
}

// NeumannStandingWave is the exact standing wave with vanishing normal
// derivative on the boundary of the unit square.
func NeumannStandingWave(mx, my int, c float64) SpaceTimeFunc {
	var (
		kx = float64(mx) * math.Pi
		ky = float64(my) * math.Pi
		w  = Omega(mx, my, c)
	)
	return func(x, y, t float64) float64 {
		return math.Cos(kx*x) * math.Cos(ky*y) * math.Cos(w*t)
	}
}
