package spectral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunction(t *testing.T) {
	ortho := func(N int, dom [2]float64) TensorProductSpace {
		bx, _ := NewBasis1D(N, dom, BCSpec{Kind: BCNone})
		by, _ := NewBasis1D(N, dom, BCSpec{Kind: BCNone})
		return NewTensorProductSpace(bx, by)
	}
	// [Backward]: x^2 y expressed in Legendre modes, x^2 = (2 L_2 + L_0)/3
	{
		sp := ortho(6, [2]float64{-1, 1})
		f := NewFunction(sp)
		f.Coeffs.Set(0, 1, 1./3)
		f.Coeffs.Set(2, 1, 2./3)
		U := f.Backward()
		for i, x := range sp.X[0].DataP {
			for j, y := range sp.X[1].DataP {
				assert.True(t, near(U.At(i, j), x*x*y))
			}
		}
	}
	// [ProjectDeriv]: exact modal differentiation of polynomial data
	{
		sp := ortho(6, [2]float64{-1, 1})
		f := NewFunction(sp)
		f.Coeffs.Set(0, 1, 1./3)
		f.Coeffs.Set(2, 1, 2./3)

		dx, err := f.ProjectDeriv([2]int{1, 0}, sp.GetOrthogonal())
		assert.Nil(t, err)
		U := dx.Backward()
		for i, x := range sp.X[0].DataP {
			for j, y := range sp.X[1].DataP {
				assert.True(t, near(U.At(i, j), 2*x*y))
			}
		}

		dy, err := f.ProjectDeriv([2]int{0, 1}, sp.GetOrthogonal())
		assert.Nil(t, err)
		U = dy.Backward()
		for i, x := range sp.X[0].DataP {
			for j := range sp.X[1].DataP {
				assert.True(t, near(U.At(i, j), x*x))
			}
		}

		dxx, err := f.ProjectDeriv([2]int{2, 0}, sp.GetOrthogonal())
		assert.Nil(t, err)
		U = dxx.Backward()
		for i := range sp.X[0].DataP {
			for j, y := range sp.X[1].DataP {
				assert.True(t, near(U.At(i, j), 2*y))
			}
		}
	}
	// [ChainRule]: derivative picks up the interval map factor
	{
		sp := ortho(5, [2]float64{0, 2})
		f := NewFunction(sp)
		f.Coeffs.Set(1, 0, 1) // L_1 maps to x-1 on (0,2)
		dx, err := f.ProjectDeriv([2]int{1, 0}, sp.GetOrthogonal())
		assert.Nil(t, err)
		U := dx.Backward()
		for i := range sp.X[0].DataP {
			for j := range sp.X[1].DataP {
				assert.True(t, near(U.At(i, j), 1))
			}
		}
	}
	// [ConstrainedSource]: derivative of a lifted boundary field
	{
		bx, _ := NewBasis1D(8, [2]float64{-1, 1}, BCSpec{Kind: BCDirichlet, Lo: C(0), Hi: C(1)})
		by, _ := NewBasis1D(8, [2]float64{-1, 1}, BCSpec{Kind: BCNone})
		sp := NewTensorProductSpace(bx, by)
		f := NewFunction(sp)
		assert.Nil(t, sp.SetBoundaryDofs(f.Coeffs))
		// f = (1+x)/2, slope 1/2
		dx, err := f.ProjectDeriv([2]int{1, 0}, sp.GetOrthogonal())
		assert.Nil(t, err)
		U := dx.Backward()
		for i := range sp.X[0].DataP {
			for j := range sp.X[1].DataP {
				assert.True(t, near(U.At(i, j), 0.5))
			}
		}
	}
	// [Errors]: constrained targets are rejected
	{
		bx, _ := NewBasis1D(8, [2]float64{-1, 1}, BCSpec{Kind: BCDirichlet, Lo: C(0), Hi: C(0)})
		by, _ := NewBasis1D(8, [2]float64{-1, 1}, BCSpec{Kind: BCNone})
		sp := NewTensorProductSpace(bx, by)
		f := NewFunction(sp)
		_, err := f.ProjectDeriv([2]int{1, 0}, sp)
		assert.NotNil(t, err)
	}
}
