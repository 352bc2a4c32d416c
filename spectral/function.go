package spectral

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/spectralmech/spectelast/utils"
)

// Function is a scalar spectral field: a coefficient array over the full
// (free + boundary) function set of a tensor-product space.
type Function struct {
	Sp     TensorProductSpace
	Coeffs utils.Matrix
}

func NewFunction(sp TensorProductSpace) (f Function) {
	var (
		ntx, nty = sp.TotalDims()
	)
	f = Function{
		Sp:     sp,
		Coeffs: utils.NewMatrix(ntx, nty),
	}
	return
}

func (f Function) Copy() (r Function) {
	r = Function{Sp: f.Sp, Coeffs: f.Coeffs.Copy()}
	return
}

func (f Function) Add(a Function) Function {
	f.Coeffs.Add(a.Coeffs)
	return f
}

func (f Function) Subtract(a Function) Function {
	f.Coeffs.Subtract(a.Coeffs)
	return f
}

func (f Function) Scale(s float64) Function {
	f.Coeffs.Scale(s)
	return f
}

// Backward transforms the coefficients to values on the quadrature grid.
func (f Function) Backward() (U utils.Matrix) {
	var (
		Vx = f.Sp.Bases[0].Vandermonde(f.Sp.R[0], 0)
		Vy = f.Sp.Bases[1].Vandermonde(f.Sp.R[1], 0)
	)
	U = Vx.Mul(f.Coeffs).Mul(Vy.Transpose())
	return
}

// LegendreCoeffs converts the composite coefficients to raw Legendre modal
// coefficients via the basis stencils.
func (f Function) LegendreCoeffs() (C utils.Matrix) {
	var (
		Ax = f.Sp.Bases[0].allFuncs() // ntx x Nx
		Ay = f.Sp.Bases[1].allFuncs() // nty x Ny
	)
	C = Ax.Transpose().Mul(f.Coeffs).Mul(Ay)
	return
}

// ProjectDeriv projects the mixed partial derivative of f, of the given order
// per axis, onto an unconstrained target space. The derivative is taken in
// coefficient space through the sparse modal differentiation operator, so the
// projection is exact for polynomial data.
func (f Function) ProjectDeriv(derivs [2]int, target TensorProductSpace) (r Function, err error) {
	if !target.IsOrthogonal() {
		err = fmt.Errorf("derivative projection requires an unconstrained target space")
		return
	}
	var (
		Nx = f.Sp.Bases[0].N
		Ny = f.Sp.Bases[1].N
	)
	if target.Bases[0].N < Nx || target.Bases[1].N < Ny {
		err = fmt.Errorf("target space truncation (%d,%d) cannot hold (%d,%d) modes",
			target.Bases[0].N, target.Bases[1].N, Nx, Ny)
		return
	}
	C := f.LegendreCoeffs()
	if derivs[0] > 0 {
		D := ModalDerivative(Nx)
		scale := f.Sp.Bases[0].derivScale()
		for d := 0; d < derivs[0]; d++ {
			next := mat.NewDense(Nx, Ny, nil)
			next.Mul(D, C.M)
			next.Scale(scale, next)
			C = utils.NewMatrix(Nx, Ny, next.RawMatrix().Data)
		}
	}
	if derivs[1] > 0 {
		D := ModalDerivative(Ny)
		scale := f.Sp.Bases[1].derivScale()
		for d := 0; d < derivs[1]; d++ {
			next := mat.NewDense(Nx, Ny, nil)
			next.Mul(C.M, D.T())
			next.Scale(scale, next)
			C = utils.NewMatrix(Nx, Ny, next.RawMatrix().Data)
		}
	}
	r = NewFunction(target)
	for m := 0; m < Nx; m++ {
		for n := 0; n < Ny; n++ {
			r.Coeffs.Set(m, n, C.At(m, n))
		}
	}
	return
}

// MaxAbsCoeff is a cheap magnitude check over the coefficient array.
func (f Function) MaxAbsCoeff() (m float64) {
	for _, val := range f.Coeffs.DataP {
		if val < 0 {
			val = -val
		}
		if val > m {
			m = val
		}
	}
	return
}
