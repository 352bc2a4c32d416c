package spectral

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/spectralmech/spectelast/utils"
)

// LegendreGauss computes the Q-point Gauss-Legendre rule on [-1,1] via the
// eigendecomposition of the Jacobi matrix (Golub-Welsch). Exact for
// polynomials of degree <= 2Q-1.
func LegendreGauss(Q int) (X, W utils.Vector) {
	if Q == 1 {
		X = utils.NewVector(1, []float64{0})
		W = utils.NewVector(1, []float64{2})
		return
	}
	d0 := make([]float64, Q)
	d1 := make([]float64, Q-1)
	for i := 0; i < Q-1; i++ {
		k := float64(i + 1)
		d1[i] = k / math.Sqrt(4*k*k-1)
	}
	JJ := utils.NewSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	ok := eig.Factorize(JJ, true)
	if !ok {
		panic("eigenvalue decomposition failed")
	}
	x := eig.Values(nil)
	X = utils.NewVector(Q, x)

	VVr := mat.NewDense(Q, Q, nil)
	eig.VectorsTo(VVr)
	W = utils.NewVector(Q, VVr.RawRowView(0)).POW(2).Scale(2)
	return
}

// MapToInterval maps reference nodes on [-1,1] to the interval (a,b), and
// returns the mapped nodes together with the scaled quadrature weights.
func MapToInterval(R, W utils.Vector, a, b float64) (X, Wx utils.Vector) {
	var (
		jac = (b - a) / 2
	)
	X = utils.NewVector(R.Len())
	Wx = utils.NewVector(W.Len())
	for i, r := range R.DataP {
		X.DataP[i] = a + (r+1)*jac
		Wx.DataP[i] = W.DataP[i] * jac
	}
	return
}
