package elasticity

import (
	"fmt"

	"github.com/spectralmech/spectelast/spectral"
)

// displacementGradient projects every partial du_i/dx_j onto the
// unconstrained companion spaces of a solution.
func displacementGradient(sol Solution) (H [dim][dim]spectral.Function, err error) {
	for i := 0; i < dim; i++ {
		ortho := sol.V.Spaces[i].GetOrthogonal()
		for j := 0; j < dim; j++ {
			if H[i][j], err = sol.U[i].ProjectDeriv(axis(j), ortho); err != nil {
				return
			}
		}
	}
	return
}

// CauchyStresses evaluates the symmetric stress tensor sigma = 2 mu eps +
// lambda tr(eps) I of a displacement field, returned componentwise on the
// unconstrained companion spaces.
func CauchyStresses(m CauchyMaterial, sol Solution) (T [][]spectral.Function, err error) {
	var H [dim][dim]spectral.Function
	if H, err = displacementGradient(sol); err != nil {
		return
	}
	// tr(eps) = div(u)
	trE := H[0][0].Copy().Add(H[1][1])
	T = make([][]spectral.Function, dim)
	for i := 0; i < dim; i++ {
		T[i] = make([]spectral.Function, dim)
		for j := 0; j < dim; j++ {
			// 2 mu eps_ij = mu (du_i/dx_j + du_j/dx_i)
			T[i][j] = H[i][j].Copy().Add(H[j][i]).Scale(m.Mu)
			if i == j {
				T[i][j].Add(trE.Copy().Scale(m.Lambda))
			}
		}
	}
	return
}

// HyperStresses evaluates the rank-three hyper-stress tensor of the gradient
// model. Terms weighted by a zero material constant are skipped.
func HyperStresses(m GradientMaterial, sol Solution) (T [][][]spectral.Function, err error) {
	var (
		ortho   [dim]spectral.TensorProductSpace
		laplace [dim]spectral.Function
		gradDiv [dim]spectral.Function
	)
	for i := 0; i < dim; i++ {
		ortho[i] = sol.V.Spaces[i].GetOrthogonal()
	}
	needIso := m.C1 != 0 || m.C2 != 0 || m.C3 != 0
	if needIso {
		for k := 0; k < dim; k++ {
			laplace[k] = spectral.NewFunction(ortho[k])
			gradDiv[k] = spectral.NewFunction(ortho[k])
			for j := 0; j < dim; j++ {
				var d spectral.Function
				if d, err = sol.U[k].ProjectDeriv(axes(j, j), ortho[k]); err != nil {
					return
				}
				laplace[k].Add(d)
				if d, err = sol.U[j].ProjectDeriv(axes(k, j), ortho[k]); err != nil {
					return
				}
				gradDiv[k].Add(d)
			}
		}
	}
	T = make([][][]spectral.Function, dim)
	for i := 0; i < dim; i++ {
		T[i] = make([][]spectral.Function, dim)
		for j := 0; j < dim; j++ {
			T[i][j] = make([]spectral.Function, dim)
			for k := 0; k < dim; k++ {
				t := spectral.NewFunction(ortho[i])
				if i == j {
					if m.C2 != 0 {
						t.Add(laplace[k].Copy().Scale(0.5 * m.C2))
					}
					if m.C3 != 0 {
						t.Add(gradDiv[k].Copy().Scale(0.5 * m.C3))
					}
				}
				if i == k {
					if m.C2 != 0 {
						t.Add(laplace[j].Copy().Scale(0.5 * m.C2))
					}
					if m.C3 != 0 {
						t.Add(gradDiv[j].Copy().Scale(0.5 * m.C3))
					}
				}
				if j == k && m.C1 != 0 {
					t.Add(laplace[i].Copy().Scale(m.C1))
				}
				if m.C4 != 0 {
					var d spectral.Function
					if d, err = sol.U[i].ProjectDeriv(axes(j, k), ortho[i]); err != nil {
						return
					}
					t.Add(d.Scale(m.C4))
				}
				if m.C5 != 0 {
					var d spectral.Function
					if d, err = sol.U[j].ProjectDeriv(axes(i, k), ortho[i]); err != nil {
						return
					}
					t.Add(d.Scale(0.5 * m.C5))
					if d, err = sol.U[k].ProjectDeriv(axes(i, j), ortho[i]); err != nil {
						return
					}
					t.Add(d.Scale(0.5 * m.C5))
				}
				T[i][j][k] = t
			}
		}
	}
	return
}

// TractionVectorGradient evaluates the traction of the gradient model on a
// boundary with unit outward normal n, combining the second-order stress with
// the surface divergence contributions of the hyper-stress. Both tensors must
// live on unconstrained spaces so that derivatives stay exact.
func TractionVectorGradient(T2 [][]spectral.Function, T3 [][][]spectral.Function,
	n [2]float64) (t []spectral.Function, err error) {
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if !T2[i][j].Sp.IsOrthogonal() {
				err = fmt.Errorf("stress component (%d,%d) is not on an unconstrained space", i, j)
				return
			}
			for k := 0; k < dim; k++ {
				if !T3[i][j][k].Sp.IsOrthogonal() {
					err = fmt.Errorf("hyper-stress component (%d,%d,%d) is not on an unconstrained space", i, j, k)
					return
				}
			}
		}
	}
	t = make([]spectral.Function, dim)
	for i := 0; i < dim; i++ {
		var (
			sp = T2[i][0].Sp
		)
		ti := spectral.NewFunction(sp)
		for j := 0; j < dim; j++ {
			divT3 := spectral.NewFunction(sp)
			for k := 0; k < dim; k++ {
				var d spectral.Function
				if d, err = T3[i][j][k].ProjectDeriv(axis(k), sp); err != nil {
					return
				}
				divT3.Add(d)
			}
			divn := spectral.NewFunction(sp)
			for k := 0; k < dim; k++ {
				for l := 0; l < dim; l++ {
					var d spectral.Function
					if d, err = T3[i][j][k].ProjectDeriv(axis(l), sp); err != nil {
						return
					}
					divn.Add(d.Scale(n[k] * n[l]))
				}
			}
			// tangential part as the full divergence minus the normal part
			divt := divT3.Copy().Subtract(divn)
			term := T2[i][j].Copy().Subtract(divn).Subtract(divt.Scale(2))
			ti.Add(term.Scale(n[j]))
		}
		t[i] = ti
	}
	return
}
