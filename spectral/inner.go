package spectral

import (
	"fmt"

	"github.com/spectralmech/spectelast/utils"
)

// BilinearTerm is one differential pairing of a trial component and a test
// component, scaled by a material coefficient: the weak-form integral
//
//	Coeff * Int D^(TrialDeriv) u_TrialComp * D^(TestDeriv) v_TestComp
//
// over the domain, with D^(p,q) the mixed partial of order p along x and q
// along y. Terms never mutate after construction.
type BilinearTerm struct {
	TestComp, TrialComp   int
	TestDeriv, TrialDeriv [2]int
	Coeff                 float64
}

// gram1D evaluates the 1D integral matrix of one axis between the free test
// functions and the full (free + boundary) trial functions.
func gram1D(test, trial Basis1D, R, W utils.Vector, testDeriv, trialDeriv int) (G utils.Matrix) {
	var (
		Vt = test.Vandermonde(R, testDeriv)   // Q x ntTest
		Vu = trial.Vandermonde(R, trialDeriv) // Q x ntTrial
		nf = test.NFree()
	)
	// weight the trial values by the quadrature rule
	for i := 0; i < W.Len(); i++ {
		w := W.DataP[i]
		for j := 0; j < trial.NTotal(); j++ {
			Vu.Set(i, j, Vu.At(i, j)*w)
		}
	}
	free := make(utils.Index, nf)
	for k := range free {
		free[k] = k
	}
	G = Vt.SliceCols(free).Transpose().Mul(Vu)
	return
}

// AssembleTerms evaluates a term list over a vector space into the block
// operator over free coefficients (A) and the block operator over
// boundary-fixed coefficients (B). Columns of each block follow row-major
// free ordering and BoundaryIndex ordering respectively.
func AssembleTerms(V VectorSpace, terms []BilinearTerm) (A, B utils.BlockMatrix, err error) {
	var (
		dim = V.Dim()
	)
	if err = V.checkSharedQuadrature(); err != nil {
		return
	}
	A = utils.NewBlockMatrix(dim, dim)
	B = utils.NewBlockMatrix(dim, dim)
	for _, t := range terms {
		if t.TestComp < 0 || t.TestComp >= dim || t.TrialComp < 0 || t.TrialComp >= dim {
			err = fmt.Errorf("term references component out of range: %+v", t)
			return
		}
		var (
			spT = V.Spaces[t.TestComp]
			spU = V.Spaces[t.TrialComp]
			Gx  = gram1D(spT.Bases[0], spU.Bases[0], spT.R[0], spT.W[0], t.TestDeriv[0], t.TrialDeriv[0])
			Gy  = gram1D(spT.Bases[1], spU.Bases[1], spT.R[1], spT.W[1], t.TestDeriv[1], t.TrialDeriv[1])
			K   = Gx.Kron(Gy).Scale(t.Coeff)
		)
		free, bdry := splitColumns(spU)
		A.AddToBlock(t.TestComp, t.TrialComp, K.SliceCols(free))
		if len(bdry) > 0 {
			B.AddToBlock(t.TestComp, t.TrialComp, K.SliceCols(bdry))
		}
	}
	return
}

// splitColumns maps the trial space's coefficient positions to flattened
// Kronecker column indices, free positions first.
func splitColumns(sp TensorProductSpace) (free, bdry utils.Index) {
	var (
		nfx, nfy = sp.FreeDims()
		_, nty   = sp.TotalDims()
	)
	for m := 0; m < nfx; m++ {
		for n := 0; n < nfy; n++ {
			free = append(free, m*nty+n)
		}
	}
	for _, mn := range sp.BoundaryIndex() {
		bdry = append(bdry, mn[0]*nty+mn[1])
	}
	return
}

// AssembleRHS computes the load functional Int v . f for grid-sampled body
// force components, returning one flattened vector per test component.
func AssembleRHS(V VectorSpace, F []utils.Matrix) (b []utils.Vector, err error) {
	if len(F) != V.Dim() {
		err = fmt.Errorf("body force has %d components, space has %d", len(F), V.Dim())
		return
	}
	if err = V.checkSharedQuadrature(); err != nil {
		return
	}
	b = make([]utils.Vector, V.Dim())
	for j, sp := range V.Spaces {
		var (
			nfx, nfy = sp.FreeDims()
			Vx       = sp.Bases[0].Vandermonde(sp.R[0], 0)
			Vy       = sp.Bases[1].Vandermonde(sp.R[1], 0)
		)
		// weight the grid samples
		FW := F[j].Copy()
		for p := 0; p < sp.Q; p++ {
			for q := 0; q < sp.Q; q++ {
				FW.Set(p, q, FW.At(p, q)*sp.W[0].DataP[p]*sp.W[1].DataP[q])
			}
		}
		freeX := make(utils.Index, nfx)
		for k := range freeX {
			freeX[k] = k
		}
		freeY := make(utils.Index, nfy)
		for k := range freeY {
			freeY[k] = k
		}
		M := Vx.SliceCols(freeX).Transpose().Mul(FW).Mul(Vy.SliceCols(freeY))
		b[j] = utils.NewVector(nfx * nfy)
		copy(b[j].DataP, M.DataP)
	}
	return
}
