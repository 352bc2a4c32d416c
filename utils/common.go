package utils

import "gonum.org/v1/gonum/mat"

const (
	NODETOL = 1.e-12
)

func POW(x float64, pp int) (y float64) {
	p := pp
	if p < 0 {
		p = -p
	}
	y = 1
	for i := 0; i < p; i++ {
		y *= x
	}
	if pp < 0 {
		y = 1 / y
	}
	return
}

func ConstArray(val float64, N int) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// NewSymTriDiagonal builds a symmetric tridiagonal matrix from the main
// diagonal d0 and the first off-diagonal d1, len(d1) = len(d0)-1.
func NewSymTriDiagonal(d0, d1 []float64) (M *mat.SymDense) {
	var (
		N = len(d0)
	)
	M = mat.NewSymDense(N, nil)
	for i := 0; i < N; i++ {
		M.SetSym(i, i, d0[i])
		if i < N-1 {
			M.SetSym(i, i+1, d1[i])
		}
	}
	return
}
