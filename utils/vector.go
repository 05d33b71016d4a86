package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V     *mat.VecDense
	DataP []float64
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v",
				n, len(dataO[0]))
			panic(err)
		}
		v = mat.NewVecDense(n, dataO[0])
	} else {
		v = mat.NewVecDense(n, make([]float64, n))
	}
	R = Vector{
		V:     v,
		DataP: v.RawVector().Data,
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

// Chainable (extended) methods
func (v Vector) Set(val float64) Vector {
	for i := range v.DataP {
		v.DataP[i] = val
	}
	return v
}

func (v Vector) Scale(a float64) Vector {
	for i := range v.DataP {
		v.DataP[i] *= a
	}
	return v
}

func (v Vector) Add(a float64) Vector {
	for i := range v.DataP {
		v.DataP[i] += a
	}
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	for i, val := range v.DataP {
		v.DataP[i] = f(val)
	}
	return v
}

func (v Vector) POW(p int) Vector {
	for i, val := range v.DataP {
		v.DataP[i] = POW(val, p)
	}
	return v
}

func (v Vector) Copy() (R Vector) {
	data := make([]float64, v.Len())
	copy(data, v.DataP)
	R = NewVector(v.Len(), data)
	return
}

func (v Vector) Sum() (s float64) {
	for _, val := range v.DataP {
		s += val
	}
	return
}

func (v Vector) Dot(a Vector) (s float64) {
	if v.Len() != a.Len() {
		err := fmt.Errorf("dimension mismatch in Dot: %v vs %v", v.Len(), a.Len())
		panic(err)
	}
	for i, val := range v.DataP {
		s += val * a.DataP[i]
	}
	return
}

func (v Vector) Min() (min float64) {
	min = v.DataP[0]
	for _, val := range v.DataP {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	max = v.DataP[0]
	for _, val := range v.DataP {
		if val > max {
			max = val
		}
	}
	return
}

// Kron returns the Kronecker product v ⊗ a, the building block of the
// tensor grid assembly.
func (v Vector) Kron(a Vector) (R Vector) {
	var (
		nv, na = v.Len(), a.Len()
	)
	R = NewVector(nv * na)
	for i, vval := range v.DataP {
		for j, aval := range a.DataP {
			R.DataP[i*na+j] = vval * aval
		}
	}
	return
}

func (v Vector) Print(msgI ...string) (o string) {
	var (
		msg = ""
	)
	if len(msgI) != 0 {
		msg = msgI[0]
	}
	o = fmt.Sprintf("%s = \n%8.5f\n", msg, mat.Formatted(v.V, mat.Squeeze()))
	return
}
