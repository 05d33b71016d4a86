package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
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

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, m.DataP)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
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

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

// MulVec left-multiplies the column vector b by m.
func (m Matrix) MulVec(b Vector) (R Vector) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	if nc != b.Len() {
		err := fmt.Errorf("dimension mismatch in MulVec: nc = %v, len(b) = %v", nc, b.Len())
		panic(err)
	}
	R = NewVector(nr)
	R.V.MulVec(m.M, b.V)
	return
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetCol(j int, data []float64) Matrix { // Changes receiver
	m.M.SetCol(j, data)
	return m
}

func (m Matrix) SetRow(i int, data []float64) Matrix { // Changes receiver
	m.M.SetRow(i, data)
	return m
}

func (m Matrix) Row(i int) (R Vector) {
	var (
		_, nc = m.Dims()
		data  = make([]float64, nc)
	)
	copy(data, m.M.RawRowView(i))
	R = NewVector(nc, data)
	return
}

func (m Matrix) Col(j int) (R Vector) {
	var (
		nr, nc = m.Dims()
		data   = make([]float64, nr)
	)
	for i := 0; i < nr; i++ {
		data[i] = m.DataP[i*nc+j]
	}
	R = NewVector(nr, data)
	return
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	for i := range m.DataP {
		m.DataP[i] *= a
	}
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix { // Changes receiver
	for i, val := range m.DataP {
		m.DataP[i] = f(val)
	}
	return m
}

func (m Matrix) Print(msgI ...string) (o string) {
	var (
		msg = ""
	)
	if len(msgI) != 0 {
		msg = msgI[0]
	}
	formatString := "%s = \n%8.5f\n"
	o = fmt.Sprintf(formatString, msg, mat.Formatted(m.M, mat.Squeeze()))
	return
}

// NewSymTriDiagonal builds a symmetric tridiagonal matrix from the main
// diagonal d0 and the first super/sub diagonal d1.
func NewSymTriDiagonal(d0, d1 []float64) (J *mat.SymDense) {
	var (
		n = len(d0)
	)
	if len(d1) != n-1 {
		err := fmt.Errorf("diagonal size mismatch: len(d0) = %v, len(d1) = %v", n, len(d1))
		panic(err)
	}
	J = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		J.SetSym(i, i, d0[i])
		if i < n-1 {
			J.SetSym(i, i+1, d1[i])
		}
	}
	return
}
