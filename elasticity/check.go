package elasticity

import (
	"math"

	"github.com/spectralmech/spectelast/spectral"
	"github.com/spectralmech/spectelast/utils"
)

// gridDeriv evaluates one mixed partial of a spectral field on the quadrature
// grid of an unconstrained companion space.
func gridDeriv(u spectral.Function, derivs [2]int, ortho spectral.TensorProductSpace) (G utils.Matrix, err error) {
	var d spectral.Function
	if d, err = u.ProjectDeriv(derivs, ortho); err != nil {
		return
	}
	G = d.Backward()
	return
}

// residualCauchy measures how well a dimensionless solution satisfies the
// Lame-Navier balance mu lap(u) + (lambda+mu) grad(div(u)) + f = 0, as the
// L2 norm of the pointwise residual over all components.
func residualCauchy(m CauchyMaterial, V spectral.VectorSpace,
	u []spectral.Function, f BodyForce) (res float64, err error) {
	var total float64
	for i := 0; i < V.Dim(); i++ {
		var (
			ortho = V.Spaces[i].GetOrthogonal()
			R     = ortho.SampleGrid(f[i])
		)
		for k := 0; k < dim; k++ {
			var D utils.Matrix
			if D, err = gridDeriv(u[i], axes(k, k), ortho); err != nil {
				return
			}
			R.Add(D.Scale(m.Mu))
		}
		for j := 0; j < dim; j++ {
			var D utils.Matrix
			if D, err = gridDeriv(u[j], axes(i, j), ortho); err != nil {
				return
			}
			R.Add(D.Scale(m.Lambda + m.Mu))
		}
		total += ortho.Integrate(R.ElMul(R))
	}
	res = math.Sqrt(total)
	return
}

// residualGradient measures the balance of linear momentum of the gradient
// model, which extends the Lame-Navier residual by the fourth-order
// contributions -(c1+c4) lap(lap(u)) - (c2+c3+c5) grad(lap(div(u))).
func residualGradient(m GradientMaterial, V spectral.VectorSpace,
	u []spectral.Function, f BodyForce) (res float64, err error) {
	var (
		cBi  = m.C1 + m.C4
		cDiv = m.C2 + m.C3 + m.C5
	)
	var total float64
	for i := 0; i < V.Dim(); i++ {
		var (
			ortho = V.Spaces[i].GetOrthogonal()
			R     = ortho.SampleGrid(f[i])
		)
		for k := 0; k < dim; k++ {
			var D utils.Matrix
			if D, err = gridDeriv(u[i], axes(k, k), ortho); err != nil {
				return
			}
			R.Add(D.Scale(m.Mu))
		}
		for j := 0; j < dim; j++ {
			var D utils.Matrix
			if D, err = gridDeriv(u[j], axes(i, j), ortho); err != nil {
				return
			}
			R.Add(D.Scale(m.Lambda + m.Mu))
		}
		if cBi != 0 {
			for a := 0; a < dim; a++ {
				for b := 0; b < dim; b++ {
					d4 := [2]int{}
					d4[a] += 2
					d4[b] += 2
					var D utils.Matrix
					if D, err = gridDeriv(u[i], d4, ortho); err != nil {
						return
					}
					R.Subtract(D.Scale(cBi))
				}
			}
		}
		if cDiv != 0 {
			for j := 0; j < dim; j++ {
				for k := 0; k < dim; k++ {
					d4 := [2]int{}
					d4[i]++
					d4[j]++
					d4[k] += 2
					var D utils.Matrix
					if D, err = gridDeriv(u[j], d4, ortho); err != nil {
						return
					}
					R.Subtract(D.Scale(cDiv))
				}
			}
		}
		total += ortho.Integrate(R.ElMul(R))
	}
	res = math.Sqrt(total)
	return
}

// analyticalError is the L2 distance between a solution and a closed-form
// displacement field, both evaluated on the quadrature grid.
func analyticalError(V spectral.VectorSpace, u []spectral.Function,
	ua [2]spectral.Expr) (e float64) {
	var total float64
	for i := 0; i < V.Dim(); i++ {
		D := u[i].Backward().Subtract(V.Spaces[i].SampleGrid(ua[i]))
		total += V.Spaces[i].Integrate(D.ElMul(D))
	}
	e = math.Sqrt(total)
	return
}
