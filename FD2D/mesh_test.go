package FD2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMesh(t *testing.T) {
	{
		msh := NewMesh(8, 1)
		assert.InDelta(t, 0.125, msh.H, 1.e-15)
		assert.InDelta(t, 0.25, msh.X.At(2, 5), 1.e-15)
		assert.InDelta(t, 0.625, msh.Y.At(2, 5), 1.e-15)
		assert.InDelta(t, 1, msh.Axis.AtVec(8), 1.e-15)
		assert.Panics(t, func() { msh.X.Set(0, 0, 1) }) // Mesh is immutable
	}
	{
		msh := NewMesh(10, 2.5)
		assert.InDelta(t, 0.25, msh.H, 1.e-15)
		assert.InDelta(t, 2.5, msh.X.At(10, 0), 1.e-15)
	}
	// L2Norm of a constant difference is h*(N+1)*|d| on the unit square
	{
		N := 8
		msh := NewMesh(N, 1)
		U := msh.Sample(func(x, y float64) float64 { return 1 })
		V := msh.Sample(func(x, y float64) float64 { return 0 })
		want := msh.H * float64(N+1) // sqrt(h^2 * (N+1)^2 * 1)
		assert.InDelta(t, want, msh.L2Norm(U, V), 1.e-14)
	}
	// SampleAtTime matches the standing wave at t=0 and a quarter period
	{
		msh := NewMesh(16, 1)
		ue := DirichletStandingWave(2, 2, 1)
		U0 := msh.SampleAtTime(ue, 0)
		assert.InDelta(t, math.Sin(math.Pi)*math.Sin(math.Pi), U0.At(8, 8), 1.e-14)
		w := Omega(2, 2, 1)
		Uq := msh.SampleAtTime(ue, 0.5*math.Pi/w)
		assert.InDelta(t, 0, Uq.Max(), 1.e-12)
		assert.InDelta(t, 0, Uq.Min(), 1.e-12)
	}
}
