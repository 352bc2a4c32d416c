package elasticity

import (
	"github.com/spectralmech/spectelast/spectral"
)

const dim = 2

// termRule pairs an activation predicate with a term generator. The rule
// lists below are the whole physics model: adding a higher-order constant
// means adding one entry, not new control flow.
type termRule struct {
	active func() bool
	terms  func() []spectral.BilinearTerm
}

func expandRules(rules []termRule) (terms []spectral.BilinearTerm) {
	for _, r := range rules {
		if r.active() {
			terms = append(terms, r.terms()...)
		}
	}
	return
}

func always() bool { return true }

func axis(a int) (e [2]int) {
	e[a] = 1
	return
}

func axes(a, b int) (e [2]int) {
	e[a]++
	e[b]++
	return
}

// gradGrad is mu * grad(u):grad(v), summed over components and axes.
func gradGrad(mu float64) (terms []spectral.BilinearTerm) {
	for i := 0; i < dim; i++ {
		for k := 0; k < dim; k++ {
			terms = append(terms, spectral.BilinearTerm{
				TestComp: i, TrialComp: i,
				TestDeriv: axis(k), TrialDeriv: axis(k),
				Coeff: mu,
			})
		}
	}
	return
}

// divDiv is coeff * div(u) div(v), coupling every component pair.
func divDiv(coeff float64) (terms []spectral.BilinearTerm) {
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			terms = append(terms, spectral.BilinearTerm{
				TestComp: j, TrialComp: i,
				TestDeriv: axis(j), TrialDeriv: axis(i),
				Coeff: coeff,
			})
		}
	}
	return
}

// crossGrad is mu * du_i/dx_j dv_j/dx_i for every ordered component pair;
// required whenever a component carries a natural (non-Dirichlet) basis.
func crossGrad(mu float64) (terms []spectral.BilinearTerm) {
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			terms = append(terms, spectral.BilinearTerm{
				TestComp: j, TrialComp: i,
				TestDeriv: axis(i), TrialDeriv: axis(j),
				Coeff: mu,
			})
		}
	}
	return
}

// cauchyRules builds the operator list for isotropic linear elasticity.
func cauchyRules(m CauchyMaterial, onlyDirichlet bool) []termRule {
	return []termRule{
		{always, func() []spectral.BilinearTerm { return gradGrad(m.Mu) }},
		{func() bool { return onlyDirichlet },
			func() []spectral.BilinearTerm { return divDiv(m.Lambda + m.Mu) }},
		{func() bool { return !onlyDirichlet },
			func() []spectral.BilinearTerm { return crossGrad(m.Mu) }},
		{func() bool { return !onlyDirichlet },
			func() []spectral.BilinearTerm { return divDiv(m.Lambda) }},
	}
}

// laplaceLaplace is c1 * lap(u).lap(v) per component.
func laplaceLaplace(c float64) (terms []spectral.BilinearTerm) {
	for i := 0; i < dim; i++ {
		for k := 0; k < dim; k++ {
			for l := 0; l < dim; l++ {
				terms = append(terms, spectral.BilinearTerm{
					TestComp: i, TrialComp: i,
					TestDeriv: axes(l, l), TrialDeriv: axes(k, k),
					Coeff: c,
				})
			}
		}
	}
	return
}

// laplaceGradDiv is c2 * lap(u).grad(div(v)).
func laplaceGradDiv(c float64) (terms []spectral.BilinearTerm) {
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			for k := 0; k < dim; k++ {
				terms = append(terms, spectral.BilinearTerm{
					TestComp: j, TrialComp: i,
					TestDeriv: axes(i, j), TrialDeriv: axes(k, k),
					Coeff: c,
				})
			}
		}
	}
	return
}

// gradDivGradDiv is c3 * grad(div(u)).grad(div(v)).
func gradDivGradDiv(c float64) (terms []spectral.BilinearTerm) {
	for m := 0; m < dim; m++ {
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				terms = append(terms, spectral.BilinearTerm{
					TestComp: j, TrialComp: i,
					TestDeriv: axes(m, j), TrialDeriv: axes(m, i),
					Coeff: c,
				})
			}
		}
	}
	return
}

// hessHess is c4 * d2u_i/dx_j dx_k . d2v_i/dx_j dx_k over every ordered triple.
func hessHess(c float64) (terms []spectral.BilinearTerm) {
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			for k := 0; k < dim; k++ {
				terms = append(terms, spectral.BilinearTerm{
					TestComp: i, TrialComp: i,
					TestDeriv: axes(j, k), TrialDeriv: axes(j, k),
					Coeff: c,
				})
			}
		}
	}
	return
}

// hessHessSwapped is c5 * d2u_j/dx_i dx_k . d2v_i/dx_j dx_k.
func hessHessSwapped(c float64) (terms []spectral.BilinearTerm) {
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			for k := 0; k < dim; k++ {
				terms = append(terms, spectral.BilinearTerm{
					TestComp: i, TrialComp: j,
					TestDeriv: axes(j, k), TrialDeriv: axes(i, k),
					Coeff: c,
				})
			}
		}
	}
	return
}

// gradientRules builds the operator list for strain-gradient elasticity.
// Zero-valued higher-order constants are skipped entirely rather than
// assembled as zero terms.
func gradientRules(m GradientMaterial, onlyDirichlet bool) []termRule {
	rules := []termRule{
		{func() bool { return m.C1 != 0 },
			func() []spectral.BilinearTerm { return laplaceLaplace(m.C1) }},
		{func() bool { return m.C2 != 0 },
			func() []spectral.BilinearTerm { return laplaceGradDiv(m.C2) }},
		{func() bool { return m.C3 != 0 },
			func() []spectral.BilinearTerm { return gradDivGradDiv(m.C3) }},
		{func() bool { return m.C4 != 0 },
			func() []spectral.BilinearTerm { return hessHess(m.C4) }},
		{func() bool { return m.C5 != 0 },
			func() []spectral.BilinearTerm { return hessHessSwapped(m.C5) }},
	}
	return append(rules, cauchyRules(m.Cauchy(), onlyDirichlet)...)
}
