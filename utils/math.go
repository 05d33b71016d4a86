package utils

import (
	"math"
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(p))
	return
}

// MeshGrid builds the m1*m2 point matrix covering the rectangle
// [x1min,x1max] x [x2min,x2max], row-major with the second coordinate
// varying fastest. Used for evaluating a surrogate on a plotting grid.
func MeshGrid(x1min, x1max, x2min, x2max float64, m1, m2 int) (P Matrix) {
	P = NewMatrix(m1*m2, 2)
	d1 := (x1max - x1min) / float64(m1-1)
	d2 := (x2max - x2min) / float64(m2-1)
	for i := 0; i < m1; i++ {
		for j := 0; j < m2; j++ {
			row := i*m2 + j
			P.DataP[row*2] = x1min + float64(i)*d1
			P.DataP[row*2+1] = x2min + float64(j)*d2
		}
	}
	return
}
