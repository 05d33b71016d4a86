package polynomial

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/numgrid/polychaos/utils"
)

func randomMatrix(rng *rand.Rand, n int) (M utils.Matrix) {
	M = utils.NewMatrix(n, n)
	for i := range M.DataP {
		M.DataP[i] = rng.NormFloat64()
	}
	return
}

// Brute-force oracle: materialize the full Kronecker product matrix and
// multiply directly.
func fullKronApply(Q []utils.Matrix, u []float64) (y []float64) {
	var (
		n     = make([]int, len(Q))
		total = 1
	)
	for i, Qi := range Q {
		n[i], _ = Qi.Dims()
		total *= n[i]
	}
	A := utils.NewMatrix(total, total)
	for r := 0; r < total; r++ {
		for c := 0; c < total; c++ {
			val := 1.0
			rr, cc := r, c
			// decode row-major digit pairs from the last dimension up
			for i := len(Q) - 1; i >= 0; i-- {
				ri, ci := rr%n[i], cc%n[i]
				rr /= n[i]
				cc /= n[i]
				val *= Q[i].At(ri, ci)
			}
			A.Set(r, c, val)
		}
	}
	y = make([]float64, total)
	for r := 0; r < total; r++ {
		var s float64
		for c := 0; c < total; c++ {
			s += A.At(r, c) * u[c]
		}
		y[r] = s
	}
	return
}

func TestKronMult_AgainstFullProduct(t *testing.T) {
	const tol = 1e-12
	rng := rand.New(rand.NewSource(42))
	for _, sizes := range [][]int{{3, 4}, {2, 3, 2}, {4, 4}} {
		Q := make([]utils.Matrix, len(sizes))
		total := 1
		for i, n := range sizes {
			Q[i] = randomMatrix(rng, n)
			total *= n
		}
		u := make([]float64, total)
		for i := range u {
			u[i] = rng.NormFloat64()
		}
		want := fullKronApply(Q, u)
		got := kronMult(Q, append([]float64{}, u...))
		assert.InDeltaSlicef(t, want, got, tol, "sizes %v", sizes)
	}
}

func TestKronMult_OneDimension(t *testing.T) {
	const tol = 1e-13
	A := utils.NewMatrix(3, 3, []float64{
		2, 0, 1,
		0, 1, 0,
		1, 0, 2,
	})
	u := []float64{1, 2, 3}
	got := kronMult([]utils.Matrix{A}, u)
	assert.InDeltaSlice(t, []float64{5, 2, 7}, got, tol)
}

func TestKronMult_SizeContract(t *testing.T) {
	A := utils.NewMatrix(2, 2, []float64{1, 0, 0, 1})
	assert.Panics(t, func() {
		kronMult([]utils.Matrix{A, A}, make([]float64, 5))
	})
	B := utils.NewMatrix(2, 3, []float64{1, 0, 0, 0, 1, 0})
	assert.Panics(t, func() {
		kronMult([]utils.Matrix{B}, make([]float64, 2))
	})
}
