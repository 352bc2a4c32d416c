package elasticity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spectralmech/spectelast/spectral"
)

func TestNondimensionalize(t *testing.T) {
	var (
		s = Scaling{Disp: 4, Length: 2, Modulus: 5}
	)
	dom := Domain{{0, 2}, {0, 4}}
	bcs := BoundaryConditions{
		{DirichletPair(spectral.C(0), spectral.Fun(func(x ...float64) float64 { return x[0] })), FreeBC()},
		{FreeBC(), UpperDirichlet(spectral.C(8))},
	}
	f := BodyForce{spectral.C(3), spectral.C(0)}
	d := nondimensionalize(dom, bcs, f, s)

	// domain shrinks by L
	assert.True(t, near(d.dom[0][1], 1))
	assert.True(t, near(d.dom[1][1], 2))
	// boundary data: coordinates stretched by L, values divided by U; the
	// dimensionless point x=1 maps to the physical x=2
	assert.True(t, near(d.bcs[0][0].Hi.Eval(1), 0.5))
	assert.True(t, near(d.bcs[1][1].Hi.Eval(0), 2))
	// body force gains L^2/(U M)
	assert.True(t, near(d.f[0].Eval(0, 0), 3*4/(4.0*5.0)))
}

func TestNondimMaterial(t *testing.T) {
	var (
		s = Scaling{Disp: 1, Length: 3, Modulus: 2}
	)
	c := nondimCauchy(CauchyMaterial{Lambda: 8, Mu: 6}, s)
	assert.True(t, near(c.Lambda, 4))
	assert.True(t, near(c.Mu, 3))

	g := nondimGradient(GradientMaterial{Lambda: 8, Mu: 6, C1: 18, C2: 36, C5: 90}, s)
	assert.True(t, near(g.Lambda, 4))
	assert.True(t, near(g.C1, 1))
	assert.True(t, near(g.C2, 2))
	assert.True(t, near(g.C3, 0))
	assert.True(t, near(g.C5, 5))
}

func TestResolveBCs(t *testing.T) {
	// the decoupled branch needs every entry to be a full Dirichlet pair
	all := BoundaryConditions{
		{DirichletPair(spectral.C(0), spectral.C(0)), DirichletPair(spectral.C(0), spectral.C(0))},
		{DirichletPair(spectral.C(0), spectral.C(0)), DirichletPair(spectral.C(0), spectral.C(0))},
	}
	r, err := resolveBCs(all, false)
	assert.Nil(t, err)
	assert.True(t, r.onlyDirichlet)
	assert.False(t, r.nonhomogeneous)

	mixed := all
	mixed[0][1] = FreeBC()
	mixed[1][0] = UpperDirichlet(spectral.C(1))
	r, err = resolveBCs(mixed, false)
	assert.Nil(t, err)
	assert.False(t, r.onlyDirichlet)
	assert.True(t, r.nonhomogeneous)
	assert.Equal(t, spectral.BCNone, r.specs[0][1].Kind)
	assert.Equal(t, spectral.BCUpperDirichlet, r.specs[1][0].Kind)

	// for the gradient model the pure kind is the clamped basis
	r, err = resolveBCs(all, true)
	assert.Nil(t, err)
	assert.False(t, r.onlyDirichlet)

	clamped := BoundaryConditions{
		{ClampedPair(spectral.C(0), spectral.C(0)), ClampedPair(spectral.C(0), spectral.C(0))},
		{ClampedPair(spectral.C(0), spectral.C(0)), ClampedPair(spectral.C(0), spectral.C(0))},
	}
	r, err = resolveBCs(clamped, true)
	assert.Nil(t, err)
	assert.True(t, r.onlyDirichlet)

	_, err = resolveBCs(clamped, false)
	assert.NotNil(t, err)
}
