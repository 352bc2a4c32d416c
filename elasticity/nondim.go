package elasticity

import (
	"github.com/spectralmech/spectelast/spectral"
)

// dimless holds the nondimensionalized problem data. The transformations are
// pure; reapplying the inverse factors to the solution recovers physical
// units exactly up to round-off.
type dimless struct {
	dom Domain
	bcs BoundaryConditions
	f   BodyForce
}

// nondimensionalize rescales domain extents, boundary data and body forces by
// the reference quantities. Boundary and body-force expressions first have
// every coordinate substituted with coordinate*L (so they remain valid on the
// rescaled domain), then are divided by U, respectively multiplied by
// L^2/(U*M).
func nondimensionalize(dom Domain, bcs BoundaryConditions, f BodyForce, s Scaling) (d dimless) {
	var (
		L = s.Length
		U = s.Disp
		M = s.Modulus
	)
	for a := 0; a < 2; a++ {
		d.dom[a][0] = dom[a][0] / L
		d.dom[a][1] = dom[a][1] / L
	}
	for i := 0; i < 2; i++ {
		for a := 0; a < 2; a++ {
			e := bcs[i][a]
			d.bcs[i][a] = BCEntry{
				Kind: e.Kind,
				Lo:   e.Lo.Stretch(L).Div(U),
				Hi:   e.Hi.Stretch(L).Div(U),
			}
		}
	}
	for i := 0; i < 2; i++ {
		d.f[i] = f[i].Stretch(L).Mul(L * L / (U * M))
	}
	return
}

// nondimCauchy rescales the Lame parameters by the reference modulus.
func nondimCauchy(m CauchyMaterial, s Scaling) CauchyMaterial {
	return CauchyMaterial{
		Lambda: m.Lambda / s.Modulus,
		Mu:     m.Mu / s.Modulus,
	}
}

// nondimGradient additionally divides the length-squared constants by L^2.
func nondimGradient(m GradientMaterial, s Scaling) GradientMaterial {
	var (
		L2 = s.Length * s.Length
		M  = s.Modulus
	)
	return GradientMaterial{
		Lambda: m.Lambda / M,
		Mu:     m.Mu / M,
		C1:     m.C1 / M / L2,
		C2:     m.C2 / M / L2,
		C3:     m.C3 / M / L2,
		C4:     m.C4 / M / L2,
		C5:     m.C5 / M / L2,
	}
}

// nondimAnalytical coordinate-rescales and normalizes a closed-form
// displacement field for error evaluation on the dimensionless domain.
func nondimAnalytical(ua [2]spectral.Expr, s Scaling) (r [2]spectral.Expr) {
	for i := 0; i < 2; i++ {
		r[i] = ua[i].Stretch(s.Length).Div(s.Disp)
	}
	return
}
