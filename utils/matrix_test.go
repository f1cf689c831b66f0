package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		mNr, mNc := M.Dims()
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, aNc, mNr)
		assert.Equal(t, aNr, mNc)
		assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, A.Data())
	}
	// Mul
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		A := NewMatrix(2, 2, []float64{
			0, 1,
			1, 0,
		})
		R := M.Mul(A)
		assert.Equal(t, []float64{2, 1, 4, 3}, R.Data())
	}
	// Add / Subtract / Scale are elementwise on the raw storage
	{
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		A := NewMatrix(2, 2, []float64{4, 3, 2, 1})
		M.Add(A)
		assert.Equal(t, []float64{5, 5, 5, 5}, M.Data())
		M.Subtract(A).Scale(2)
		assert.Equal(t, []float64{2, 4, 6, 8}, M.Data())
	}
	// Inverse
	{
		M := NewMatrix(2, 2, []float64{
			4, 7,
			2, 6,
		})
		R, err := M.Inverse()
		assert.NoError(t, err)
		P := M.Mul(R)
		assert.InDelta(t, 1, P.At(0, 0), 1.e-14)
		assert.InDelta(t, 0, P.At(0, 1), 1.e-14)
		assert.InDelta(t, 0, P.At(1, 0), 1.e-14)
		assert.InDelta(t, 1, P.At(1, 1), 1.e-14)
	}
	// Singular Inverse
	{
		M := NewMatrix(2, 2, []float64{1, 2, 2, 4})
		_, err := M.Inverse()
		assert.Error(t, err)
	}
	// Read only protection
	{
		M := NewMatrix(2, 2)
		M.SetReadOnly("M")
		assert.Panics(t, func() { M.Set(0, 0, 1) })
		M.SetWritable()
		assert.NotPanics(t, func() { M.Set(0, 0, 1) })
	}
	// Row / Col copy out
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, []float64{4, 5, 6}, M.Row(1).Data())
		assert.Equal(t, []float64{2, 5}, M.Col(1).Data())
		assert.Equal(t, 6., M.Max())
		assert.Equal(t, 1., M.Min())
	}
}

func TestVector(t *testing.T) {
	V := NewVectorConstant(4, 2)
	assert.Equal(t, 4, V.Len())
	V.Apply(func(x float64) float64 { return x * x })
	assert.Equal(t, []float64{4, 4, 4, 4}, V.Data())
	V.Scale(0.5)
	assert.InDelta(t, 2, V.Max(), 1.e-15)
	assert.InDelta(t, 2, V.Min(), 1.e-15)
	W := V.Copy()
	W.Scale(0)
	assert.Equal(t, 2., V.AtVec(0))
	assert.True(t, math.Abs(W.AtVec(0)) == 0)
}
