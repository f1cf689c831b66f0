package FD2D

import (
	"math"

	"github.com/notargets/fdm2d/utils"
)

// Mesh is a uniform Cartesian grid on [0,L]^2 with N intervals per direction.
// The coordinate matrices use ij indexing: row index is the x direction,
// column index the y direction. A Mesh is immutable once created.
type Mesh struct {
	N    int
	L, H float64
	Axis utils.Vector // The N+1 coordinates shared by both directions
	X, Y utils.Matrix
}

func NewMesh(N int, L float64) (msh *Mesh) {
	var (
		np = N + 1
		h  = L / float64(N)
	)
	msh = &Mesh{
		N:    N,
		L:    L,
		H:    h,
		Axis: utils.NewVector(np),
		X:    utils.NewMatrix(np, np),
		Y:    utils.NewMatrix(np, np),
	}
	axis := msh.Axis.Data()
	for i := range axis {
		axis[i] = float64(i) * h
	}
	var (
		xD = msh.X.Data()
		yD = msh.Y.Data()
	)
	for i := 0; i < np; i++ {
		for j := 0; j < np; j++ {
			xD[i*np+j] = axis[i]
			yD[i*np+j] = axis[j]
		}
	}
	msh.X.SetReadOnly("X")
	msh.Y.SetReadOnly("Y")
	return
}

// Sample evaluates f on every grid point.
func (msh *Mesh) Sample(f SpaceFunc) (U utils.Matrix) {
	var (
		np = msh.N + 1
		xD = msh.X.Data()
		yD = msh.Y.Data()
	)
	U = utils.NewMatrix(np, np)
	uD := U.Data()
	for ind := range uD {
		uD[ind] = f(xD[ind], yD[ind])
	}
	return
}

// SampleAtTime evaluates f on every grid point at physical time t.
func (msh *Mesh) SampleAtTime(f SpaceTimeFunc, t float64) (U utils.Matrix) {
	var (
		np = msh.N + 1
		xD = msh.X.Data()
		yD = msh.Y.Data()
	)
	U = utils.NewMatrix(np, np)
	uD := U.Data()
	for ind := range uD {
		uD[ind] = f(xD[ind], yD[ind], t)
	}
	return
}

// L2Norm returns the discrete L2 norm sqrt(h^2 * sum((U-V)^2)) used as the
// error measure against manufactured solutions.
func (msh *Mesh) L2Norm(U, V utils.Matrix) float64 {
	var (
		uD  = U.Data()
		vD  = V.Data()
		sum float64
	)
	for i, val := range uD {
		d := val - vD[i]
		sum += d * d
	}
	return math.Sqrt(msh.H * msh.H * sum)
}
