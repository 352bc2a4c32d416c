package spectral

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spectralmech/spectelast/utils"
)

func TestLegendre(t *testing.T) {
	// [Values]: closed forms at r = 0.5
	{
		r := 0.5
		tab := LegendreTable(r, 4, 2)
		assert.True(t, near(tab[0][0], 1))
		assert.True(t, near(tab[0][1], r))
		assert.True(t, near(tab[0][2], (3*r*r-1)/2))
		assert.True(t, near(tab[0][3], (5*r*r*r-3*r)/2))
		// first derivatives
		assert.True(t, near(tab[1][0], 0))
		assert.True(t, near(tab[1][1], 1))
		assert.True(t, near(tab[1][2], 3*r))
		assert.True(t, near(tab[1][3], (15*r*r-3)/2))
		// second derivatives
		assert.True(t, near(tab[2][2], 3))
		assert.True(t, near(tab[2][3], 15*r))
	}
	// [Endpoints]: L_k(1) = 1, L_k(-1) = (-1)^k
	{
		tab := LegendreTable(1, 6, 0)
		for k := 0; k < 6; k++ {
			assert.True(t, near(tab[0][k], 1))
		}
		tab = LegendreTable(-1, 6, 0)
		sign := 1.0
		for k := 0; k < 6; k++ {
			assert.True(t, near(tab[0][k], sign))
			sign = -sign
		}
	}
	// [Vandermonde]: matches the pointwise table
	{
		R := utils.NewVector(3, []float64{-0.7, 0.1, 0.9})
		V := LegendreVandermonde(R, 5, 1)
		for i, r := range R.DataP {
			tab := LegendreTable(r, 5, 1)
			for k := 0; k < 5; k++ {
				assert.True(t, near(V.At(i, k), tab[1][k]))
			}
		}
	}
}

func TestModalDerivative(t *testing.T) {
	// d/dr L_3 = L_0 + 5 L_2
	D := ModalDerivative(6)
	assert.True(t, near(D.At(0, 3), 1))
	assert.True(t, near(D.At(2, 3), 5))
	assert.True(t, near(D.At(1, 3), 0))
	// d/dr L_4 = 3 L_1 + 7 L_3
	assert.True(t, near(D.At(1, 4), 3))
	assert.True(t, near(D.At(3, 4), 7))
	// strictly upper triangular
	for i := 0; i < 6; i++ {
		for j := 0; j <= i; j++ {
			assert.True(t, near(D.At(i, j), 0))
		}
	}
}
