package elasticity

import (
	"fmt"

	"github.com/spectralmech/spectelast/spectral"
	"github.com/spectralmech/spectelast/utils"
)

// Domain is a rectangular 2D domain, one (min, max) interval per axis.
type Domain [2][2]float64

func (d Domain) Validate() error {
	for a := 0; a < 2; a++ {
		if d[a][0] >= d[a][1] {
			return fmt.Errorf("axis %d interval (%g,%g) is empty", a, d[a][0], d[a][1])
		}
	}
	return nil
}

// CauchyMaterial holds the two Lame parameters of isotropic linear elasticity.
type CauchyMaterial struct {
	Lambda, Mu float64
}

// CauchyFromYoung converts engineering constants to Lame parameters.
func CauchyFromYoung(E, nu float64) CauchyMaterial {
	return CauchyMaterial{
		Lambda: E * nu / ((1 + nu) * (1 - 2*nu)),
		Mu:     E / (2 * (1 + nu)),
	}
}

// GradientMaterial extends the Lame parameters with the five higher-order
// constants of second-gradient elasticity (units of modulus x length^2).
// A constant set exactly to zero omits its weak-form terms entirely.
type GradientMaterial struct {
	Lambda, Mu         float64
	C1, C2, C3, C4, C5 float64
}

func (m GradientMaterial) Cauchy() CauchyMaterial {
	return CauchyMaterial{Lambda: m.Lambda, Mu: m.Mu}
}

// BCEntryKind tags the boundary-condition variant of one (component, axis)
// entry.
type BCEntryKind int

const (
	BCFree BCEntryKind = iota
	BCPair
	BCUpper
	BCLower
	BCClamped
)

// BCEntry is one cell of the boundary-condition matrix. Lo and Hi carry the
// prescribed displacement values at the two ends of the axis; for one-sided
// kinds only the named end is read. Values may depend on the coordinate along
// the boundary.
type BCEntry struct {
	Kind   BCEntryKind
	Lo, Hi spectral.Expr
}

func FreeBC() BCEntry {
	return BCEntry{Kind: BCFree}
}

func DirichletPair(lo, hi spectral.Expr) BCEntry {
	return BCEntry{Kind: BCPair, Lo: lo, Hi: hi}
}

func UpperDirichlet(hi spectral.Expr) BCEntry {
	return BCEntry{Kind: BCUpper, Hi: hi}
}

func LowerDirichlet(lo spectral.Expr) BCEntry {
	return BCEntry{Kind: BCLower, Lo: lo}
}

// ClampedPair prescribes displacement values with zero slope at both ends,
// selecting the biharmonic-compatible basis of the gradient model.
func ClampedPair(lo, hi spectral.Expr) BCEntry {
	return BCEntry{Kind: BCClamped, Lo: lo, Hi: hi}
}

// BoundaryConditions is the components x axes matrix of entries.
type BoundaryConditions [2][2]BCEntry

// BodyForce is the per-component distributed load.
type BodyForce [2]spectral.Expr

// Scaling holds the reference displacement, length and modulus used to
// nondimensionalize the problem. All three must be strictly positive.
type Scaling struct {
	Disp, Length, Modulus float64
}

func UnitScaling() Scaling {
	return Scaling{Disp: 1, Length: 1, Modulus: 1}
}

func (s Scaling) Validate() error {
	if s.Disp <= 0 || s.Length <= 0 || s.Modulus <= 0 {
		return fmt.Errorf("scaling references must be strictly positive, have U=%g L=%g M=%g",
			s.Disp, s.Length, s.Modulus)
	}
	return nil
}

// Options controls the optional parts of a solve.
type Options struct {
	Scaling      Scaling           // zero value means unit references
	MeasureTime  bool              // log wall time per solve
	ComputeError bool              // log residual (and analytical) errors
	Analytical   *[2]spectral.Expr // closed-form displacement, physical units
	Sink         *DiagSink         // diagnostic output; nil discards
}

func (o Options) scaling() Scaling {
	if o.Scaling == (Scaling{}) {
		return UnitScaling()
	}
	return o.Scaling
}

// Solution is a displacement field in physical units on the original domain.
type Solution struct {
	N int
	V spectral.VectorSpace
	U []spectral.Function
}

// Backward returns the grid values of one displacement component.
func (s Solution) Backward(comp int) utils.Matrix {
	return s.U[comp].Backward()
}
