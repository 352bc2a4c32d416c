package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegendreGauss(t *testing.T) {
	// [Weights]: total weight is the interval length
	{
		for _, Q := range []int{1, 2, 5, 12} {
			_, W := LegendreGauss(Q)
			var sum float64
			for _, w := range W.DataP {
				sum += w
			}
			assert.True(t, near(sum, 2))
		}
	}
	// [Exactness]: a Q point rule integrates degree 2Q-1 exactly
	{
		X, W := LegendreGauss(5)
		integrate := func(p int) (s float64) {
			for i, x := range X.DataP {
				s += W.DataP[i] * math.Pow(x, float64(p))
			}
			return
		}
		assert.True(t, near(integrate(8), 2./9))
		assert.True(t, near(integrate(9), 0))
		assert.True(t, near(integrate(4), 2./5))
	}
	// [Symmetry]: nodes come in +- pairs
	{
		X, _ := LegendreGauss(6)
		for i := 0; i < 3; i++ {
			assert.True(t, near(X.DataP[i], -X.DataP[5-i]))
		}
	}
	// [Mapped]: affine map to a physical interval
	{
		R, Wref := LegendreGauss(4)
		X, W := MapToInterval(R, Wref, 0, 3)
		var sum, second float64
		for i, x := range X.DataP {
			sum += W.DataP[i]
			second += W.DataP[i] * x * x
		}
		assert.True(t, near(sum, 3))
		assert.True(t, near(second, 9)) // int_0^3 x^2 dx
		assert.True(t, X.Min() > 0)
		assert.True(t, X.Max() < 3)
	}
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
