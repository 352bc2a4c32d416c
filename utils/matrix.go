package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M     *mat.Dense
	DataP []float64
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v",
				nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		M:     m,
		DataP: m.RawMatrix().Data,
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) IsEmpty() bool { return m.M == nil }

func (m Matrix) Copy() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	copy(R.DataP, m.DataP)
	return
}

func (m Matrix) Transpose() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			R.DataP[j*nr+i] = m.DataP[i*nc+j]
		}
	}
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) {
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

// MulVec multiplies the receiver by a column vector.
func (m Matrix) MulVec(v Vector) (R Vector) {
	var (
		nr, _ = m.Dims()
	)
	R = NewVector(nr)
	R.V.MulVec(m.M, v.V)
	return
}

// Kron forms the Kronecker product of the receiver with A.
func (m Matrix) Kron(A Matrix) (R Matrix) {
	var (
		nrM, ncM = m.Dims()
		nrA, ncA = A.Dims()
	)
	R = NewMatrix(nrM*nrA, ncM*ncA)
	for i := 0; i < nrM; i++ {
		for j := 0; j < ncM; j++ {
			val := m.DataP[i*ncM+j]
			if val == 0 {
				continue
			}
			for p := 0; p < nrA; p++ {
				for q := 0; q < ncA; q++ {
					R.DataP[(i*nrA+p)*(ncM*ncA)+j*ncA+q] = val * A.DataP[p*ncA+q]
				}
			}
		}
	}
	return
}

// Chainable methods (change the receiver)
func (m Matrix) Set(i, j int, val float64) Matrix {
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetRow(i int, data []float64) Matrix {
	m.M.SetRow(i, data)
	return m
}

func (m Matrix) SetCol(j int, data []float64) Matrix {
	m.M.SetCol(j, data)
	return m
}

func (m Matrix) Add(A Matrix) Matrix {
	for i, val := range A.DataP {
		m.DataP[i] += val
	}
	return m
}

func (m Matrix) Subtract(A Matrix) Matrix {
	for i, val := range A.DataP {
		m.DataP[i] -= val
	}
	return m
}

func (m Matrix) Scale(a float64) Matrix {
	for i := range m.DataP {
		m.DataP[i] *= a
	}
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix {
	for i, val := range m.DataP {
		m.DataP[i] = f(val)
	}
	return m
}

func (m Matrix) POW(p int) Matrix {
	for i, val := range m.DataP {
		m.DataP[i] = POW(val, p)
	}
	return m
}

func (m Matrix) ElMul(A Matrix) Matrix {
	for i, val := range A.DataP {
		m.DataP[i] *= val
	}
	return m
}

// Non chainable methods
func (m Matrix) Row(i int) (V Vector) {
	var (
		_, nc = m.Dims()
	)
	V = NewVector(nc)
	copy(V.DataP, m.DataP[i*nc:(i+1)*nc])
	return
}

func (m Matrix) Col(j int) (V Vector) {
	var (
		nr, nc = m.Dims()
	)
	V = NewVector(nr)
	for i := 0; i < nr; i++ {
		V.DataP[i] = m.DataP[i*nc+j]
	}
	return
}

func (m Matrix) SliceCols(I Index) (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, len(I))
	for jNew, j := range I {
		if j > nc-1 || j < 0 {
			panic(fmt.Errorf("index out of bounds: index = %d, max_bounds = %d", j, nc-1))
		}
		for i := 0; i < nr; i++ {
			R.DataP[i*len(I)+jNew] = m.DataP[i*nc+j]
		}
	}
	return
}

func (m Matrix) Inverse() (R Matrix, err error) {
	var (
		nr, nc = m.Dims()
	)
	R = m.Copy()
	iPiv := make([]int, nr)
	if ok := lapack64.Getrf(R.RawMatrix(), iPiv); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
		return
	}
	work := make([]float64, nr*nc)
	if ok := lapack64.Getri(R.RawMatrix(), iPiv, work, nr*nc); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
	}
	return
}

// LUSolve solves m*x = b for one right hand side vector.
func (m Matrix) LUSolve(b Vector) (x Vector, err error) {
	var lu mat.LU
	lu.Factorize(m.M)
	x = NewVector(b.Len())
	if err = lu.SolveVecTo(x.V, false, b.V); err != nil {
		return
	}
	x.DataP = x.V.RawVector().Data
	return
}

func (m Matrix) Max() (max float64) {
	max = m.DataP[0]
	for _, val := range m.DataP {
		if val > max {
			max = val
		}
	}
	return
}

func (m Matrix) Min() (min float64) {
	min = m.DataP[0]
	for _, val := range m.DataP {
		if val < min {
			min = val
		}
	}
	return
}

type Index []int
