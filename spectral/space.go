package spectral

import (
	"fmt"

	"github.com/spectralmech/spectelast/utils"
)

// TensorProductSpace is the product of two 1D bases, with a shared
// Gauss-Legendre quadrature rule sized to integrate products of basis
// functions exactly.
type TensorProductSpace struct {
	Bases [2]Basis1D
	Q     int              // quadrature points per axis
	R     [2]utils.Vector  // reference nodes
	Wref  [2]utils.Vector  // reference weights
	X     [2]utils.Vector  // physical nodes per axis
	W     [2]utils.Vector  // physical weights per axis
}

func NewTensorProductSpace(bx, by Basis1D) (sp TensorProductSpace) {
	var (
		N = bx.N
	)
	if by.N > N {
		N = by.N
	}
	sp = TensorProductSpace{
		Bases: [2]Basis1D{bx, by},
		Q:     N + 2,
	}
	for a := 0; a < 2; a++ {
		R, W := LegendreGauss(sp.Q)
		sp.R[a], sp.Wref[a] = R, W
		sp.X[a], sp.W[a] = MapToInterval(R, W, sp.Bases[a].Domain[0], sp.Bases[a].Domain[1])
	}
	return
}

func (sp TensorProductSpace) IsOrthogonal() bool {
	return sp.Bases[0].Kind == BCNone && sp.Bases[1].Kind == BCNone
}

// GetOrthogonal returns the unconstrained companion space on the same domain
// with the same truncation.
func (sp TensorProductSpace) GetOrthogonal() TensorProductSpace {
	bx, _ := NewBasis1D(sp.Bases[0].N, sp.Bases[0].Domain, BCSpec{Kind: BCNone})
	by, _ := NewBasis1D(sp.Bases[1].N, sp.Bases[1].Domain, BCSpec{Kind: BCNone})
	return NewTensorProductSpace(bx, by)
}

func (sp TensorProductSpace) FreeDims() (nx, ny int) {
	return sp.Bases[0].NFree(), sp.Bases[1].NFree()
}

func (sp TensorProductSpace) TotalDims() (nx, ny int) {
	return sp.Bases[0].NTotal(), sp.Bases[1].NTotal()
}

func (sp TensorProductSpace) NFree() int {
	nx, ny := sp.FreeDims()
	return nx * ny
}

func (sp TensorProductSpace) NBoundary() int {
	nx, ny := sp.TotalDims()
	return nx*ny - sp.NFree()
}

// BoundaryIndex enumerates the (row, col) coefficient positions holding
// boundary degrees of freedom, in row-major order. The ordering is shared by
// the boundary operator columns and the flattened boundary coefficients.
func (sp TensorProductSpace) BoundaryIndex() (I [][2]int) {
	var (
		nfx, nfy = sp.FreeDims()
		ntx, nty = sp.TotalDims()
	)
	for m := 0; m < ntx; m++ {
		for n := 0; n < nty; n++ {
			if m < nfx && n < nfy {
				continue
			}
			I = append(I, [2]int{m, n})
		}
	}
	return
}

// SampleGrid evaluates a scalar field on the quadrature grid.
func (sp TensorProductSpace) SampleGrid(f Expr) (F utils.Matrix) {
	F = utils.NewMatrix(sp.Q, sp.Q)
	for i, x := range sp.X[0].DataP {
		for j, y := range sp.X[1].DataP {
			F.Set(i, j, f.Eval(x, y))
		}
	}
	return
}

// Integrate computes the quadrature-weighted integral of grid values.
func (sp TensorProductSpace) Integrate(F utils.Matrix) (s float64) {
	for i, wx := range sp.W[0].DataP {
		for j, wy := range sp.W[1].DataP {
			s += wx * wy * F.At(i, j)
		}
	}
	return
}

// projectOntoAxis expands a boundary data field in the full function set of
// one axis basis by a 1D Galerkin projection.
func (sp TensorProductSpace) projectOntoAxis(axis int, g Expr) (c []float64, err error) {
	var (
		b  = sp.Bases[axis]
		nt = b.NTotal()
		V  = b.Vandermonde(sp.R[axis], 0) // Q x nt
		w  = sp.W[axis]
	)
	VW := V.Copy()
	for i := 0; i < sp.Q; i++ {
		for j := 0; j < nt; j++ {
			VW.Set(i, j, VW.At(i, j)*w.DataP[i])
		}
	}
	A := VW.Transpose().Mul(V) // nt x nt mass matrix
	rhs := utils.NewVector(nt)
	for j := 0; j < nt; j++ {
		var s float64
		for i := 0; i < sp.Q; i++ {
			s += VW.At(i, j) * g.Eval(sp.X[axis].DataP[i])
		}
		rhs.DataP[j] = s
	}
	var x utils.Vector
	if x, err = A.LUSolve(rhs); err != nil {
		return
	}
	c = x.DataP
	return
}

// SetBoundaryDofs fills the boundary coefficient slots of C with the
// prescribed boundary data, expanding each lifting function's profile in the
// companion axis basis. When both axes carry lifting functions the corner
// coefficients are written by the first axis only. Free coefficients are left
// untouched.
func (sp TensorProductSpace) SetBoundaryDofs(C utils.Matrix) (err error) {
	var (
		nfx, nfy = sp.FreeDims()
		bx, by   = sp.Bases[0], sp.Bases[1]
	)
	for r := 0; r < bx.NBC(); r++ {
		g := bx.BCData[r]
		if g.IsZero() {
			continue
		}
		var c []float64
		if c, err = sp.projectOntoAxis(1, g); err != nil {
			return
		}
		for n, val := range c {
			C.Set(nfx+r, n, val)
		}
	}
	for s := 0; s < by.NBC(); s++ {
		h := by.BCData[s]
		if h.IsZero() {
			continue
		}
		var c []float64
		if c, err = sp.projectOntoAxis(0, h); err != nil {
			return
		}
		limit := len(c)
		if bx.NBC() > 0 {
			limit = nfx // corner slots already owned by the first axis
		}
		for m := 0; m < limit; m++ {
			C.Set(m, nfy+s, c[m])
		}
	}
	return
}

// FlattenFree extracts the free coefficients in row-major order.
func (sp TensorProductSpace) FlattenFree(C utils.Matrix) (v utils.Vector) {
	var (
		nfx, nfy = sp.FreeDims()
	)
	v = utils.NewVector(nfx * nfy)
	for m := 0; m < nfx; m++ {
		for n := 0; n < nfy; n++ {
			v.DataP[m*nfy+n] = C.At(m, n)
		}
	}
	return
}

// FlattenBoundary extracts the boundary coefficients in BoundaryIndex order.
// Returns a zero-value Vector when the space has no boundary dofs.
func (sp TensorProductSpace) FlattenBoundary(C utils.Matrix) (v utils.Vector) {
	I := sp.BoundaryIndex()
	if len(I) == 0 {
		return
	}
	v = utils.NewVector(len(I))
	for k, mn := range I {
		v.DataP[k] = C.At(mn[0], mn[1])
	}
	return
}

// Unflatten writes free coefficients back into a full coefficient array.
func (sp TensorProductSpace) Unflatten(free utils.Vector, C utils.Matrix) {
	var (
		nfx, nfy = sp.FreeDims()
	)
	for m := 0; m < nfx; m++ {
		for n := 0; n < nfy; n++ {
			C.Set(m, n, free.DataP[m*nfy+n])
		}
	}
}

// VectorSpace is a fixed-size list of tensor-product spaces, one per
// displacement component.
type VectorSpace struct {
	Spaces []TensorProductSpace
}

func NewVectorSpace(spaces ...TensorProductSpace) VectorSpace {
	return VectorSpace{Spaces: spaces}
}

func (V VectorSpace) Dim() int { return len(V.Spaces) }

func (V VectorSpace) GetOrthogonal() VectorSpace {
	spaces := make([]TensorProductSpace, V.Dim())
	for i, sp := range V.Spaces {
		spaces[i] = sp.GetOrthogonal()
	}
	return NewVectorSpace(spaces...)
}

// checkSharedQuadrature verifies all component spaces use the same rule, a
// precondition for assembling cross-component terms.
func (V VectorSpace) checkSharedQuadrature() error {
	for i := 1; i < V.Dim(); i++ {
		if V.Spaces[i].Q != V.Spaces[0].Q {
			return fmt.Errorf("component %d quadrature order %d differs from component 0 (%d)",
				i, V.Spaces[i].Q, V.Spaces[0].Q)
		}
		for a := 0; a < 2; a++ {
			if V.Spaces[i].Bases[a].Domain != V.Spaces[0].Bases[a].Domain {
				return fmt.Errorf("component %d axis %d domain differs from component 0", i, a)
			}
		}
	}
	return nil
}
