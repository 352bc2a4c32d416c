package spectral

import (
	"github.com/james-bowman/sparse"

	"github.com/spectralmech/spectelast/utils"
)

// LegendreTable evaluates the first N Legendre polynomials and their
// derivatives up to order maxDeriv at a single reference point r. The result
// is indexed [deriv][mode].
func LegendreTable(r float64, N, maxDeriv int) (L [][]float64) {
	L = make([][]float64, maxDeriv+1)
	for p := range L {
		L[p] = make([]float64, N)
	}
	if N == 0 {
		return
	}
	L[0][0] = 1
	if maxDeriv >= 1 && N > 1 {
		L[1][1] = 1
	}
	if N > 1 {
		L[0][1] = r
	}
	// Differentiated three-term recurrence:
	// (k+1) L_{k+1}^(p) = (2k+1) (p L_k^(p-1) + r L_k^(p)) - k L_{k-1}^(p)
	for k := 1; k < N-1; k++ {
		fk := float64(k)
		for p := 0; p <= maxDeriv; p++ {
			var lower float64
			if p > 0 {
				lower = float64(p) * L[p-1][k]
			}
			L[p][k+1] = ((2*fk+1)*(lower+r*L[p][k]) - fk*L[p][k-1]) / (fk + 1)
		}
	}
	return
}

// LegendreVandermonde returns the (len(R) x N) matrix of the deriv-th
// derivative of the Legendre polynomials L_0..L_{N-1} at the reference nodes.
func LegendreVandermonde(R utils.Vector, N, deriv int) (V utils.Matrix) {
	V = utils.NewMatrix(R.Len(), N)
	for i, r := range R.DataP {
		tab := LegendreTable(r, N, deriv)
		V.SetRow(i, tab[deriv])
	}
	return
}

// ModalDerivative builds the sparse operator taking Legendre expansion
// coefficients to the coefficients of the derivative on the reference
// interval: d/dr L_k = sum_{j=k-1,k-3,...} (2j+1) L_j. The matrix is strictly
// upper triangular with every other diagonal empty.
func ModalDerivative(N int) (D *sparse.CSR) {
	dok := sparse.NewDOK(N, N)
	for k := 1; k < N; k++ {
		for j := k - 1; j >= 0; j -= 2 {
			dok.Set(j, k, float64(2*j+1))
		}
	}
	D = dok.ToCSR()
	return
}
