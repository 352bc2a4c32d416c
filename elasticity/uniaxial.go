package elasticity

import (
	"github.com/spectralmech/spectelast/spectral"
)

// UniaxialTension is the plane-strain tension strip: a rectangle (0,l) x
// (0,h) stretched by a prescribed end displacement u0 along x, with the
// lateral faces free and the top face held at zero vertical displacement.
type UniaxialTension struct {
	L, H  float64
	E, Nu float64
	U0    float64
}

// DefaultUniaxialTension matches the reference configuration used for
// convergence studies.
func DefaultUniaxialTension() UniaxialTension {
	return UniaxialTension{
		L:  100,
		H:  50,
		E:  400,
		Nu: 0.4,
		U0: 1,
	}
}

func (p UniaxialTension) Domain() Domain {
	return Domain{{0, p.L}, {0, p.H}}
}

func (p UniaxialTension) Material() CauchyMaterial {
	return CauchyFromYoung(p.E, p.Nu)
}

// BoundaryConditions builds the entry matrix: u_x is pinned at x=0 and pulled
// to u0 at x=l, u_y vanishes on the top face, every other face is
// traction-free.
func (p UniaxialTension) BoundaryConditions() BoundaryConditions {
	return BoundaryConditions{
		{DirichletPair(spectral.C(0), spectral.C(p.U0)), FreeBC()},
		{FreeBC(), UpperDirichlet(spectral.C(0))},
	}
}

func (p UniaxialTension) BodyForce() BodyForce {
	return BodyForce{spectral.C(0), spectral.C(0)}
}

// Analytical is the exact plane-strain solution of the strip, linear in both
// coordinates.
func (p UniaxialTension) Analytical() [2]spectral.Expr {
	var (
		l, h  = p.L, p.H
		u0    = p.U0
		ratio = p.Nu / (1 - p.Nu)
	)
	return [2]spectral.Expr{
		spectral.Fun(func(x ...float64) float64 { return u0 * x[0] / l }),
		spectral.Fun(func(x ...float64) float64 { return ratio * u0 / l * (h - x[1]) }),
	}
}

// Scaling nondimensionalizes by the prescribed displacement, the strip length
// and the Young modulus.
func (p UniaxialTension) Scaling() Scaling {
	return Scaling{Disp: p.U0, Length: p.L, Modulus: p.E}
}
