package spectral

import (
	"fmt"

	"github.com/spectralmech/spectelast/utils"
)

// BCKind selects the composite Legendre basis family for one axis.
type BCKind int

const (
	BCNone BCKind = iota
	BCDirichlet
	BCUpperDirichlet
	BCLowerDirichlet
	BCBiharmonic
)

func (k BCKind) String() string {
	switch k {
	case BCNone:
		return "none"
	case BCDirichlet:
		return "dirichlet"
	case BCUpperDirichlet:
		return "upperdirichlet"
	case BCLowerDirichlet:
		return "lowerdirichlet"
	case BCBiharmonic:
		return "biharmonic"
	}
	return "unknown"
}

// BCSpec is the boundary-condition request for a 1D basis. Lo and Hi are the
// prescribed values at the interval ends; for a one-sided kind only the named
// end is used. Values may depend on the companion coordinate of a tensor
// product (evaluated with a single argument).
type BCSpec struct {
	Kind   BCKind
	Lo, Hi Expr
}

// Basis1D is a composite Legendre basis of total dimension N on an interval.
// The first NFree functions satisfy the homogeneous boundary conditions; the
// trailing NBC functions lift the prescribed boundary data. Both are stored
// as stencils over the raw Legendre modes L_0..L_{N-1}.
type Basis1D struct {
	N       int
	Domain  [2]float64
	Kind    BCKind
	Stencil utils.Matrix // NFree x N
	BCFuncs utils.Matrix // NBC x N
	BCData  []Expr       // one entry per boundary function
}

// minimum total dimensions keep at least one free function per family
var minBasisDim = map[BCKind]int{
	BCNone:           1,
	BCDirichlet:      3,
	BCUpperDirichlet: 2,
	BCLowerDirichlet: 2,
	BCBiharmonic:     5,
}

func NewBasis1D(N int, domain [2]float64, bc BCSpec) (b Basis1D, err error) {
	if domain[0] >= domain[1] {
		err = fmt.Errorf("invalid interval (%g,%g): min must be < max", domain[0], domain[1])
		return
	}
	if N < minBasisDim[bc.Kind] {
		err = fmt.Errorf("basis dimension %d too small for %v conditions", N, bc.Kind)
		return
	}
	b = Basis1D{
		N:      N,
		Domain: domain,
		Kind:   bc.Kind,
	}
	switch bc.Kind {
	case BCNone:
		b.Stencil = utils.NewMatrix(N, N)
		for m := 0; m < N; m++ {
			b.Stencil.Set(m, m, 1)
		}
	case BCDirichlet:
		// Shen composite: phi_m = L_m - L_{m+2}, vanishing at both ends
		b.Stencil = utils.NewMatrix(N-2, N)
		for m := 0; m < N-2; m++ {
			b.Stencil.Set(m, m, 1)
			b.Stencil.Set(m, m+2, -1)
		}
		// lifting functions (1-x)/2 and (1+x)/2
		b.BCFuncs = utils.NewMatrix(2, N)
		b.BCFuncs.Set(0, 0, 0.5)
		b.BCFuncs.Set(0, 1, -0.5)
		b.BCFuncs.Set(1, 0, 0.5)
		b.BCFuncs.Set(1, 1, 0.5)
		b.BCData = []Expr{bc.Lo, bc.Hi}
	case BCUpperDirichlet:
		// phi_m = L_m - L_{m+1}, vanishing at +1 only
		b.Stencil = utils.NewMatrix(N-1, N)
		for m := 0; m < N-1; m++ {
			b.Stencil.Set(m, m, 1)
			b.Stencil.Set(m, m+1, -1)
		}
		b.BCFuncs = utils.NewMatrix(1, N)
		b.BCFuncs.Set(0, 0, 0.5)
		b.BCFuncs.Set(0, 1, 0.5)
		b.BCData = []Expr{bc.Hi}
	case BCLowerDirichlet:
		// phi_m = L_m + L_{m+1}, vanishing at -1 only
		b.Stencil = utils.NewMatrix(N-1, N)
		for m := 0; m < N-1; m++ {
			b.Stencil.Set(m, m, 1)
			b.Stencil.Set(m, m+1, 1)
		}
		b.BCFuncs = utils.NewMatrix(1, N)
		b.BCFuncs.Set(0, 0, 0.5)
		b.BCFuncs.Set(0, 1, -0.5)
		b.BCData = []Expr{bc.Lo}
	case BCBiharmonic:
		// Shen composite: phi_m = L_m - 2(2m+5)/(2m+7) L_{m+2} + (2m+3)/(2m+7) L_{m+4},
		// with phi(+-1) = phi'(+-1) = 0
		b.Stencil = utils.NewMatrix(N-4, N)
		for m := 0; m < N-4; m++ {
			fm := float64(m)
			b.Stencil.Set(m, m, 1)
			b.Stencil.Set(m, m+2, -2*(2*fm+5)/(2*fm+7))
			b.Stencil.Set(m, m+4, (2*fm+3)/(2*fm+7))
		}
		// Hermite lifting cubics in Legendre modes; slope data is held in the
		// reference frame and only homogeneous slopes are supported here
		b.BCFuncs = utils.NewMatrix(4, N)
		b.BCFuncs.SetRow(0, padRow([]float64{0.5, -0.6, 0, 0.1}, N))
		b.BCFuncs.SetRow(1, padRow([]float64{0.5, 0.6, 0, -0.1}, N))
		b.BCFuncs.SetRow(2, padRow([]float64{1. / 6, -0.1, -1. / 6, 0.1}, N))
		b.BCFuncs.SetRow(3, padRow([]float64{-1. / 6, -0.1, 1. / 6, 0.1}, N))
		b.BCData = []Expr{bc.Lo, bc.Hi, C(0), C(0)}
	default:
		err = fmt.Errorf("unknown boundary condition kind %d", bc.Kind)
	}
	return
}

func padRow(v []float64, N int) []float64 {
	r := make([]float64, N)
	copy(r, v)
	return r
}

func (b Basis1D) NFree() int {
	nf, _ := b.Stencil.Dims()
	return nf
}

func (b Basis1D) NBC() int {
	return len(b.BCData)
}

func (b Basis1D) NTotal() int {
	return b.NFree() + b.NBC()
}

// HasNonhomogeneousBC reports whether any prescribed boundary value is nonzero.
func (b Basis1D) HasNonhomogeneousBC() bool {
	for _, e := range b.BCData {
		if !e.IsZero() {
			return true
		}
	}
	return false
}

// derivScale is the chain-rule factor per derivative for the affine map from
// the reference interval to the basis domain.
func (b Basis1D) derivScale() float64 {
	return 2 / (b.Domain[1] - b.Domain[0])
}

// Vandermonde evaluates the deriv-th derivative of every basis function (free
// functions first, then lifting functions) at the reference nodes R, with the
// domain chain rule applied. Result is len(R) x (NFree+NBC).
func (b Basis1D) Vandermonde(R utils.Vector, deriv int) (V utils.Matrix) {
	var (
		VL    = LegendreVandermonde(R, b.N, deriv)
		scale = utils.POW(b.derivScale(), deriv)
	)
	V = VL.Mul(b.allFuncs().Transpose()).Scale(scale)
	return
}

// allFuncs stacks the free stencil over the lifting stencil.
func (b Basis1D) allFuncs() (A utils.Matrix) {
	var (
		nf = b.NFree()
		nb = b.NBC()
	)
	if nb == 0 {
		return b.Stencil
	}
	A = utils.NewMatrix(nf+nb, b.N)
	for m := 0; m < nf; m++ {
		A.SetRow(m, b.Stencil.Row(m).DataP)
	}
	for m := 0; m < nb; m++ {
		A.SetRow(nf+m, b.BCFuncs.Row(m).DataP)
	}
	return
}
