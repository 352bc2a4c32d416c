package utils

import (
	"fmt"
)

// BlockMatrix holds a grid of sub-operators, one per (test, trial) component
// pair. Cells may be empty, which is treated as a zero block. Blocks on the
// diagonal must be square; off-diagonal blocks may be rectangular as long as
// the row/column dimensions are consistent across the grid.
type BlockMatrix struct {
	M      [][]Matrix
	Nr, Nc int
}

func NewBlockMatrix(Nr, Nc int) (R BlockMatrix) {
	R = BlockMatrix{
		Nr: Nr,
		Nc: Nc,
	}
	R.M = make([][]Matrix, Nr)
	for n := range R.M {
		R.M[n] = make([]Matrix, Nc)
	}
	return
}

// AddToBlock accumulates A into cell (i, j), allocating the cell on first use.
func (bm BlockMatrix) AddToBlock(i, j int, A Matrix) {
	if bm.M[i][j].IsEmpty() {
		bm.M[i][j] = A.Copy()
		return
	}
	bm.M[i][j].Add(A)
}

// RowDims returns the row count of each block row, scanning for a non-empty cell.
func (bm BlockMatrix) RowDims() (dims []int, err error) {
	dims = make([]int, bm.Nr)
	for i := 0; i < bm.Nr; i++ {
		found := false
		for j := 0; j < bm.Nc; j++ {
			if !bm.M[i][j].IsEmpty() {
				dims[i], _ = bm.M[i][j].Dims()
				found = true
				break
			}
		}
		if !found {
			err = fmt.Errorf("block row %d is entirely empty", i)
			return
		}
	}
	return
}

func (bm BlockMatrix) ColDims() (dims []int, err error) {
	dims = make([]int, bm.Nc)
	for j := 0; j < bm.Nc; j++ {
		found := false
		for i := 0; i < bm.Nr; i++ {
			if !bm.M[i][j].IsEmpty() {
				_, dims[j] = bm.M[i][j].Dims()
				found = true
				break
			}
		}
		if !found {
			err = fmt.Errorf("block column %d is entirely empty", j)
			return
		}
	}
	return
}

// Assemble flattens the block grid into a single dense matrix.
func (bm BlockMatrix) Assemble() (R Matrix, err error) {
	var (
		rDims, cDims []int
	)
	if rDims, err = bm.RowDims(); err != nil {
		return
	}
	if cDims, err = bm.ColDims(); err != nil {
		return
	}
	var nrT, ncT int
	rOff := make([]int, bm.Nr)
	for i, d := range rDims {
		rOff[i] = nrT
		nrT += d
	}
	cOff := make([]int, bm.Nc)
	for j, d := range cDims {
		cOff[j] = ncT
		ncT += d
	}
	R = NewMatrix(nrT, ncT)
	for i := 0; i < bm.Nr; i++ {
		for j := 0; j < bm.Nc; j++ {
			if bm.M[i][j].IsEmpty() {
				continue
			}
			nr, nc := bm.M[i][j].Dims()
			if nr != rDims[i] || nc != cDims[j] {
				err = fmt.Errorf("inconsistent block dims at (%d,%d): have %dx%d, want %dx%d",
					i, j, nr, nc, rDims[i], cDims[j])
				return
			}
			for p := 0; p < nr; p++ {
				for q := 0; q < nc; q++ {
					R.DataP[(rOff[i]+p)*ncT+cOff[j]+q] = bm.M[i][j].DataP[p*nc+q]
				}
			}
		}
	}
	return
}

// MulVec applies the block operator to a block vector, one Vector per block column.
func (bm BlockMatrix) MulVec(x []Vector) (b []Vector, err error) {
	var (
		rDims []int
	)
	if len(x) != bm.Nc {
		err = fmt.Errorf("block vector has %d components, operator needs %d", len(x), bm.Nc)
		return
	}
	if rDims, err = bm.RowDims(); err != nil {
		return
	}
	b = make([]Vector, bm.Nr)
	for i := 0; i < bm.Nr; i++ {
		b[i] = NewVector(rDims[i])
		for j := 0; j < bm.Nc; j++ {
			if bm.M[i][j].IsEmpty() {
				continue
			}
			b[i].Add(bm.M[i][j].MulVec(x[j]))
		}
	}
	return
}

// Solve assembles the block operator and solves for the block vector x in
// bm*x = b by dense LU. A singular or badly conditioned operator is an error.
func (bm BlockMatrix) Solve(b []Vector) (x []Vector, err error) {
	var (
		A    Matrix
		flat Vector
	)
	if !bm.IsSquare() {
		err = fmt.Errorf("block operator must be square, have %dx%d", bm.Nr, bm.Nc)
		return
	}
	if A, err = bm.Assemble(); err != nil {
		return
	}
	nrT, ncT := A.Dims()
	if nrT != ncT {
		err = fmt.Errorf("assembled operator is %dx%d, must be square", nrT, ncT)
		return
	}
	flat = NewVector(nrT)
	var off int
	for _, bi := range b {
		copy(flat.DataP[off:], bi.DataP)
		off += bi.Len()
	}
	if off != nrT {
		err = fmt.Errorf("rhs length %d does not match operator size %d", off, nrT)
		return
	}
	var sol Vector
	if sol, err = A.LUSolve(flat); err != nil {
		return
	}
	x = make([]Vector, len(b))
	off = 0
	for i, bi := range b {
		x[i] = NewVector(bi.Len())
		copy(x[i].DataP, sol.DataP[off:off+bi.Len()])
		off += bi.Len()
	}
	return
}

func (bm BlockMatrix) IsSquare() bool { return bm.Nr == bm.Nc }
