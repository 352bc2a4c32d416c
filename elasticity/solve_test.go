package elasticity

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spectralmech/spectelast/spectral"
)

func TestUniaxialTension(t *testing.T) {
	// The tension strip has a displacement field linear in both coordinates,
	// so a low-order basis must reproduce it to round-off.
	var (
		p  = DefaultUniaxialTension()
		ua = p.Analytical()
	)
	opts := Options{Scaling: p.Scaling(), Analytical: &ua}
	sol, err := SolveCauchy(12, p.Domain(), p.BoundaryConditions(), p.BodyForce(), p.Material(), opts)
	assert.Nil(t, err)
	assert.Equal(t, 12, sol.N)

	for comp := 0; comp < 2; comp++ {
		sp := sol.V.Spaces[comp]
		U := sol.Backward(comp)
		W := sp.SampleGrid(ua[comp])
		for i := 0; i < sp.Q; i++ {
			for j := 0; j < sp.Q; j++ {
				assert.True(t, near(U.At(i, j), W.At(i, j), 1.e-07))
			}
		}
	}

	// the linear field satisfies the momentum balance pointwise
	res, err := residualCauchy(p.Material(), sol.V, sol.U, p.BodyForce())
	assert.Nil(t, err)
	assert.True(t, res < 1.e-06)
}

func TestBranchConsistency(t *testing.T) {
	// Under full Dirichlet closure the decoupled operator set and the general
	// cross-term set are algebraically equivalent and must agree to round-off.
	var (
		m   = CauchyMaterial{Lambda: 2, Mu: 1}
		dom = Domain{{-1, 1}, {-1, 1}}
	)
	bcs := BoundaryConditions{
		{DirichletPair(spectral.C(0), spectral.C(0)), DirichletPair(spectral.C(0), spectral.C(0))},
		{DirichletPair(spectral.C(0), spectral.C(0)), DirichletPair(spectral.C(0), spectral.C(0))},
	}
	f := BodyForce{spectral.C(1), spectral.Fun(func(x ...float64) float64 { return x[0] * x[1] })}
	r, err := resolveBCs(bcs, false)
	assert.Nil(t, err)
	assert.True(t, r.onlyDirichlet)
	V, err := buildVectorSpace(10, dom, r.specs)
	assert.Nil(t, err)

	uFast, err := solveCoeffs(V, expandRules(cauchyRules(m, true)), f, false)
	assert.Nil(t, err)
	uFull, err := solveCoeffs(V, expandRules(cauchyRules(m, false)), f, false)
	assert.Nil(t, err)
	for comp := 0; comp < 2; comp++ {
		for k, c := range uFast[comp].Coeffs.DataP {
			assert.True(t, near(c, uFull[comp].Coeffs.DataP[k], 1.e-08))
		}
	}
}

func TestScalingInvariance(t *testing.T) {
	// The physical solution must not depend on the reference quantities.
	var (
		p = DefaultUniaxialTension()
	)
	solScaled, err := SolveCauchy(10, p.Domain(), p.BoundaryConditions(), p.BodyForce(), p.Material(),
		Options{Scaling: p.Scaling()})
	assert.Nil(t, err)
	solUnit, err := SolveCauchy(10, p.Domain(), p.BoundaryConditions(), p.BodyForce(), p.Material(),
		Options{})
	assert.Nil(t, err)
	for comp := 0; comp < 2; comp++ {
		A := solScaled.Backward(comp)
		B := solUnit.Backward(comp)
		sp := solScaled.V.Spaces[comp]
		for i := 0; i < sp.Q; i++ {
			for j := 0; j < sp.Q; j++ {
				assert.True(t, near(A.At(i, j), B.At(i, j), 1.e-07))
			}
		}
	}
}

func TestGradientReducesToCauchy(t *testing.T) {
	// With every higher-order constant zero the gradient operator collapses
	// onto the Cauchy one.
	var (
		p = DefaultUniaxialTension()
		m = p.Material()
	)
	opts := Options{Scaling: p.Scaling()}
	solC, err := SolveCauchy(10, p.Domain(), p.BoundaryConditions(), p.BodyForce(), m, opts)
	assert.Nil(t, err)
	solG, err := SolveGradient(10, p.Domain(), p.BoundaryConditions(), p.BodyForce(),
		GradientMaterial{Lambda: m.Lambda, Mu: m.Mu}, opts)
	assert.Nil(t, err)
	for comp := 0; comp < 2; comp++ {
		for k, c := range solC.U[comp].Coeffs.DataP {
			assert.True(t, near(c, solG.U[comp].Coeffs.DataP[k], 1.e-08))
		}
	}
}

func TestSpectralConvergence(t *testing.T) {
	// Manufactured solution u = (sin(pi x / 2), 0) on the unit square; the
	// error must fall sharply when the basis order doubles.
	var (
		m   = CauchyFromYoung(200, 0.3)
		k   = math.Pi / 2
		dom = Domain{{0, 1}, {0, 1}}
	)
	bcs := BoundaryConditions{
		{DirichletPair(spectral.C(0), spectral.C(1)), FreeBC()},
		{FreeBC(), DirichletPair(spectral.C(0), spectral.C(0))},
	}
	f := BodyForce{
		spectral.Fun(func(x ...float64) float64 {
			return (m.Lambda + 2*m.Mu) * k * k * math.Sin(k*x[0])
		}),
		spectral.C(0),
	}
	ua := [2]spectral.Expr{
		spectral.Fun(func(x ...float64) float64 { return math.Sin(k * x[0]) }),
		spectral.C(0),
	}
	errAt := func(N int) float64 {
		sol, err := SolveCauchy(N, dom, bcs, f, m, Options{})
		assert.Nil(t, err)
		return analyticalError(sol.V, sol.U, ua)
	}
	e8 := errAt(8)
	e16 := errAt(16)
	assert.True(t, e8 < 1.e-03)
	assert.True(t, e16 < 1.e-08)
	assert.True(t, e16 < e8/100)
}

func TestGradientClamped(t *testing.T) {
	// Clamped faces all around with a uniform downward load; the problem is
	// well posed for the fourth-order operator and the solution deflects.
	var (
		dom = Domain{{-1, 1}, {-1, 1}}
		m   = GradientMaterial{Lambda: 100, Mu: 80, C1: 1, C2: 0.5, C3: 0.5, C4: 1, C5: 0.5}
	)
	bcs := BoundaryConditions{
		{ClampedPair(spectral.C(0), spectral.C(0)), ClampedPair(spectral.C(0), spectral.C(0))},
		{ClampedPair(spectral.C(0), spectral.C(0)), ClampedPair(spectral.C(0), spectral.C(0))},
	}
	f := BodyForce{spectral.C(0), spectral.C(-1)}
	sol, err := SolveGradient(12, dom, bcs, f, m, Options{})
	assert.Nil(t, err)
	var maxU float64
	for comp := 0; comp < 2; comp++ {
		U := sol.Backward(comp)
		sp := sol.V.Spaces[comp]
		for i := 0; i < sp.Q; i++ {
			for j := 0; j < sp.Q; j++ {
				v := U.At(i, j)
				assert.False(t, math.IsNaN(v))
				if math.Abs(v) > maxU {
					maxU = math.Abs(v)
				}
			}
		}
	}
	assert.True(t, maxU > 0)

	// clamped conditions require the gradient model
	_, err = SolveCauchy(12, dom, bcs, f, CauchyMaterial{Lambda: 100, Mu: 80}, Options{})
	assert.NotNil(t, err)
}

func TestDiagnosticLogs(t *testing.T) {
	var (
		p   = DefaultUniaxialTension()
		ua  = p.Analytical()
		dir = t.TempDir()
	)
	opts := Options{
		Scaling:      p.Scaling(),
		Analytical:   &ua,
		MeasureTime:  true,
		ComputeError: true,
		Sink:         NewDiagSink(dir),
	}
	_, err := SolveCauchy(10, p.Domain(), p.BoundaryConditions(), p.BodyForce(), p.Material(), opts)
	assert.Nil(t, err)
	for _, name := range []string{TimeLog, CauchyResidualLog, AnalyticalErrorLog} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		assert.Nil(t, err)
		assert.True(t, len(data) > 0)
	}
}

func TestInputValidation(t *testing.T) {
	p := DefaultUniaxialTension()
	// empty domain interval
	_, err := SolveCauchy(10, Domain{{1, 1}, {0, 1}}, p.BoundaryConditions(), p.BodyForce(), p.Material(), Options{})
	assert.NotNil(t, err)
	// negative reference quantity
	_, err = SolveCauchy(10, p.Domain(), p.BoundaryConditions(), p.BodyForce(), p.Material(),
		Options{Scaling: Scaling{Disp: -1, Length: 1, Modulus: 1}})
	assert.NotNil(t, err)
	// basis order too small for Dirichlet pairs
	_, err = SolveCauchy(2, p.Domain(), p.BoundaryConditions(), p.BodyForce(), p.Material(), Options{})
	assert.NotNil(t, err)
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
