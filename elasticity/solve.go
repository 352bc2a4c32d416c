package elasticity

import (
	"fmt"
	"time"

	"github.com/spectralmech/spectelast/spectral"
	"github.com/spectralmech/spectelast/utils"
)

// SolveCauchy solves the isotropic linear elasticity problem at basis order N
// and returns the displacement field in physical units on the original domain.
func SolveCauchy(N int, dom Domain, bcs BoundaryConditions, f BodyForce,
	m CauchyMaterial, opts Options) (sol Solution, err error) {
	var (
		s = opts.scaling()
	)
	if err = dom.Validate(); err != nil {
		return
	}
	if err = s.Validate(); err != nil {
		return
	}
	d := nondimensionalize(dom, bcs, f, s)
	var r resolvedBCs
	if r, err = resolveBCs(d.bcs, false); err != nil {
		return
	}
	var V spectral.VectorSpace
	if V, err = buildVectorSpace(N, d.dom, r.specs); err != nil {
		return
	}
	terms := expandRules(cauchyRules(nondimCauchy(m, s), r.onlyDirichlet))

	start := time.Now()
	var u []spectral.Function
	if u, err = solveCoeffs(V, terms, d.f, r.nonhomogeneous); err != nil {
		return
	}
	elapsed := time.Since(start)

	if opts.MeasureTime {
		if err = opts.Sink.Append(TimeLog, N, elapsed.Seconds()); err != nil {
			return
		}
	}
	if opts.ComputeError {
		var res float64
		if res, err = residualCauchy(nondimCauchy(m, s), V, u, d.f); err != nil {
			return
		}
		if err = opts.Sink.Append(CauchyResidualLog, N, res); err != nil {
			return
		}
		if err = logAnalyticalError(V, u, opts, s, N); err != nil {
			return
		}
	}
	sol, err = physicalSolution(N, dom, bcs, u, s)
	return
}

// SolveGradient solves the second-gradient elasticity problem at basis order N.
// All five higher-order constants set to zero reduces the operator to the
// Cauchy one.
func SolveGradient(N int, dom Domain, bcs BoundaryConditions, f BodyForce,
	m GradientMaterial, opts Options) (sol Solution, err error) {
	var (
		s = opts.scaling()
	)
	if err = dom.Validate(); err != nil {
		return
	}
	if err = s.Validate(); err != nil {
		return
	}
	d := nondimensionalize(dom, bcs, f, s)
	var r resolvedBCs
	if r, err = resolveBCs(d.bcs, true); err != nil {
		return
	}
	var V spectral.VectorSpace
	if V, err = buildVectorSpace(N, d.dom, r.specs); err != nil {
		return
	}
	md := nondimGradient(m, s)
	terms := expandRules(gradientRules(md, r.onlyDirichlet))

	start := time.Now()
	var u []spectral.Function
	if u, err = solveCoeffs(V, terms, d.f, r.nonhomogeneous); err != nil {
		return
	}
	elapsed := time.Since(start)

	if opts.MeasureTime {
		if err = opts.Sink.Append(TimeLog, N, elapsed.Seconds()); err != nil {
			return
		}
	}
	if opts.ComputeError {
		var res float64
		if res, err = residualGradient(md, V, u, d.f); err != nil {
			return
		}
		if err = opts.Sink.Append(GradientResidualLog, N, res); err != nil {
			return
		}
		if err = logAnalyticalError(V, u, opts, s, N); err != nil {
			return
		}
	}
	sol, err = physicalSolution(N, dom, bcs, u, s)
	return
}

// buildVectorSpace constructs one tensor-product space per displacement
// component from the resolved per-axis basis requests. Every axis uses the
// same truncation, so all component spaces share one quadrature rule.
func buildVectorSpace(N int, dom Domain, specs [2][2]spectral.BCSpec) (V spectral.VectorSpace, err error) {
	spaces := make([]spectral.TensorProductSpace, dim)
	for i := 0; i < dim; i++ {
		var bases [2]spectral.Basis1D
		for a := 0; a < 2; a++ {
			if bases[a], err = spectral.NewBasis1D(N, dom[a], specs[i][a]); err != nil {
				err = fmt.Errorf("component %d axis %d: %w", i, a, err)
				return
			}
		}
		spaces[i] = spectral.NewTensorProductSpace(bases[0], bases[1])
	}
	V = spectral.NewVectorSpace(spaces...)
	return
}

// solveCoeffs assembles and solves the dimensionless Galerkin system. When
// boundary data is prescribed, the boundary coefficient part is fixed first
// and its operator action moved to the right-hand side.
func solveCoeffs(V spectral.VectorSpace, terms []spectral.BilinearTerm,
	f BodyForce, nonhomogeneous bool) (u []spectral.Function, err error) {
	F := make([]utils.Matrix, V.Dim())
	for i, sp := range V.Spaces {
		F[i] = sp.SampleGrid(f[i])
	}
	var b []utils.Vector
	if b, err = spectral.AssembleRHS(V, F); err != nil {
		return
	}
	var A, B utils.BlockMatrix
	if A, B, err = spectral.AssembleTerms(V, terms); err != nil {
		return
	}
	u = make([]spectral.Function, V.Dim())
	for i, sp := range V.Spaces {
		u[i] = spectral.NewFunction(sp)
		if err = sp.SetBoundaryDofs(u[i].Coeffs); err != nil {
			return
		}
	}
	if nonhomogeneous {
		uh := make([]utils.Vector, V.Dim())
		for i, sp := range V.Spaces {
			uh[i] = sp.FlattenBoundary(u[i].Coeffs)
		}
		var badd []utils.Vector
		if badd, err = B.MulVec(uh); err != nil {
			return
		}
		for i := range b {
			b[i].Subtract(badd[i])
		}
	}
	var x []utils.Vector
	if x, err = A.Solve(b); err != nil {
		return
	}
	for i, sp := range V.Spaces {
		sp.Unflatten(x[i], u[i].Coeffs)
	}
	return
}

// physicalSolution transfers the dimensionless coefficients onto the spaces
// built over the original domain and rescales by the reference displacement.
// The basis functions agree on the shared reference interval, so the transfer
// is a copy.
func physicalSolution(N int, dom Domain, bcs BoundaryConditions,
	u []spectral.Function, s Scaling) (sol Solution, err error) {
	gradient := false
	for i := 0; i < dim; i++ {
		for a := 0; a < 2; a++ {
			if bcs[i][a].Kind == BCClamped {
				gradient = true
			}
		}
	}
	var r resolvedBCs
	if r, err = resolveBCs(bcs, gradient); err != nil {
		return
	}
	var V spectral.VectorSpace
	if V, err = buildVectorSpace(N, dom, r.specs); err != nil {
		return
	}
	sol = Solution{
		N: N,
		V: V,
		U: make([]spectral.Function, len(u)),
	}
	for i := range u {
		sol.U[i] = spectral.Function{
			Sp:     V.Spaces[i],
			Coeffs: u[i].Coeffs.Copy(),
		}
		sol.U[i].Scale(s.Disp)
	}
	return
}

// logAnalyticalError compares the dimensionless solution against a prescribed
// closed-form field and appends the L2 distance.
func logAnalyticalError(V spectral.VectorSpace, u []spectral.Function,
	opts Options, s Scaling, N int) (err error) {
	if opts.Analytical == nil {
		return
	}
	ua := nondimAnalytical(*opts.Analytical, s)
	e := analyticalError(V, u, ua)
	err = opts.Sink.Append(AnalyticalErrorLog, N, e)
	return
}
