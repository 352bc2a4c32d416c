package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// [Basics]: construction, transpose, multiply
	{
		A := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		nr, nc := A.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 3, nc)
		At := A.Transpose()
		nr, nc = At.Dims()
		assert.Equal(t, 3, nr)
		assert.Equal(t, 2, nc)
		assert.True(t, near(At.At(2, 1), 6))

		B := A.Mul(At) // 2x2
		assert.True(t, near(B.At(0, 0), 14))
		assert.True(t, near(B.At(0, 1), 32))
		assert.True(t, near(B.At(1, 1), 77))
	}
	// [MulVec]
	{
		A := NewMatrix(2, 2, []float64{
			2, 0,
			1, 3,
		})
		v := A.MulVec(NewVector(2, []float64{1, 2}))
		assert.True(t, near(v.AtVec(0), 2))
		assert.True(t, near(v.AtVec(1), 7))
	}
	// [Kron]: row-major Kronecker product
	{
		A := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		B := NewMatrix(2, 2, []float64{
			0, 1,
			1, 0,
		})
		K := A.Kron(B)
		nr, nc := K.Dims()
		assert.Equal(t, 4, nr)
		assert.Equal(t, 4, nc)
		// K[(i*2+p)][(j*2+q)] = A[i][j]*B[p][q]
		assert.True(t, near(K.At(0, 1), 1))
		assert.True(t, near(K.At(1, 0), 1))
		assert.True(t, near(K.At(1, 2), 2))
		assert.True(t, near(K.At(2, 1), 3))
		assert.True(t, near(K.At(3, 2), 4))
		assert.True(t, near(K.At(0, 0), 0))
	}
	// [SliceCols]
	{
		A := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		S := A.SliceCols(Index{0, 2})
		nr, nc := S.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 2, nc)
		assert.True(t, near(S.At(0, 1), 3))
		assert.True(t, near(S.At(1, 0), 4))
	}
	// [Inverse]
	{
		A := NewMatrix(2, 2, []float64{
			4, 7,
			2, 6,
		})
		Ainv, err := A.Inverse()
		assert.Nil(t, err)
		assert.True(t, near(Ainv.At(0, 0), 0.6))
		assert.True(t, near(Ainv.At(0, 1), -0.7))
		assert.True(t, near(Ainv.At(1, 0), -0.2))
		assert.True(t, near(Ainv.At(1, 1), 0.4))
	}
	// [LUSolve]
	{
		A := NewMatrix(3, 3, []float64{
			2, 1, 0,
			1, 3, 1,
			0, 1, 4,
		})
		x, err := A.LUSolve(NewVector(3, []float64{3, 9, 14}))
		assert.Nil(t, err)
		// verify by substitution
		r := A.MulVec(x)
		assert.True(t, near(r.AtVec(0), 3))
		assert.True(t, near(r.AtVec(1), 9))
		assert.True(t, near(r.AtVec(2), 14))
	}
}

func TestVector(t *testing.T) {
	v := NewVector(3, []float64{1, -2, 3})
	assert.True(t, near(v.Dot(NewVector(3, []float64{1, 1, 1})), 2))
	assert.True(t, near(v.Min(), -2))
	assert.True(t, near(v.Max(), 3))
	w := v.Copy().Apply(math.Abs)
	assert.True(t, near(w.AtVec(1), 2))
	// source unchanged by the copy
	assert.True(t, near(v.AtVec(1), -2))
	c := v.Concat(NewVector(2, []float64{4, 5}))
	assert.Equal(t, 5, c.Len())
	assert.True(t, near(c.AtVec(4), 5))
}

func near(a, b float64, tolI ...float64) (l bool) {
	var (
		tol float64
	)
	if len(tolI) == 0 {
		tol = 1.e-08
	} else {
		tol = tolI[0]
	}
	bound := math.Max(tol, tol*math.Abs(a))
	if math.Abs(a-b) <= bound {
		l = true
	}
	return
}
