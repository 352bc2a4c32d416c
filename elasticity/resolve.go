package elasticity

import (
	"fmt"

	"github.com/spectralmech/spectelast/spectral"
)

// resolvedBCs carries the per-entry basis requests plus the two global flags
// driving branch selection downstream: onlyDirichlet selects the decoupled
// fast-path assembly, nonhomogeneous enables the boundary-part solve split.
type resolvedBCs struct {
	specs          [2][2]spectral.BCSpec
	onlyDirichlet  bool
	nonhomogeneous bool
}

// resolveBCs classifies every (component, axis) entry into a basis request.
// The pure-Dirichlet kind depends on the PDE order: plain Dirichlet for the
// second-order Cauchy model, biharmonic-compatible for the fourth-order
// gradient model.
func resolveBCs(bcs BoundaryConditions, gradient bool) (r resolvedBCs, err error) {
	r.onlyDirichlet = true
	for i := 0; i < 2; i++ {
		for a := 0; a < 2; a++ {
			e := bcs[i][a]
			var spec spectral.BCSpec
			switch e.Kind {
			case BCFree:
				spec = spectral.BCSpec{Kind: spectral.BCNone}
			case BCPair:
				spec = spectral.BCSpec{Kind: spectral.BCDirichlet, Lo: e.Lo, Hi: e.Hi}
			case BCUpper:
				spec = spectral.BCSpec{Kind: spectral.BCUpperDirichlet, Hi: e.Hi}
			case BCLower:
				spec = spectral.BCSpec{Kind: spectral.BCLowerDirichlet, Lo: e.Lo}
			case BCClamped:
				if !gradient {
					err = fmt.Errorf("clamped conditions on component %d axis %d require the gradient model", i, a)
					return
				}
				spec = spectral.BCSpec{Kind: spectral.BCBiharmonic, Lo: e.Lo, Hi: e.Hi}
			default:
				err = fmt.Errorf("unknown boundary condition kind %d on component %d axis %d", e.Kind, i, a)
				return
			}
			r.specs[i][a] = spec

			pureKind := spectral.BCDirichlet
			if gradient {
				pureKind = spectral.BCBiharmonic
			}
			if spec.Kind != pureKind {
				r.onlyDirichlet = false
			}
			if !spec.Lo.IsZero() || !spec.Hi.IsZero() {
				r.nonhomogeneous = true
			}
		}
	}
	return
}
