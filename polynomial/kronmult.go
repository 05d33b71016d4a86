package polynomial

import (
	"fmt"

	"github.com/numgrid/polychaos/utils"
)

// kronMult applies (Q[0] ⊗ Q[1] ⊗ ... ⊗ Q[d-1]) to the flattened tensor
// buffer u in place, never materializing the full Kronecker matrix. The
// buffer is laid out row-major over the dimensions in the same order as
// Q, dimension 0 slowest.
//
// The sweep processes dimensions last to first. At dimension i the index
// space splits into nleft outer blocks of nright-strided subvectors of
// length n[i]; each subvector is gathered, left-multiplied by Q[i] and
// scattered back. Adapted from the classical kronmult recursion of
// Fackler/Constantine.
//
// A buffer whose length disagrees with the product of the transform sizes
// is a programming error and panics.
func kronMult(Q []utils.Matrix, u []float64) []float64 {
	var (
		d     = len(Q)
		n     = make([]int, d)
		total = 1
	)
	for i, Qi := range Q {
		nr, nc := Qi.Dims()
		if nr != nc {
			err := fmt.Errorf("kronMult: transform %d is %dx%d, want square", i, nr, nc)
			panic(err)
		}
		n[i] = nr
		total *= nr
	}
	if len(u) != total {
		err := fmt.Errorf("kronMult: buffer length %d does not match transform size %d", len(u), total)
		panic(err)
	}

	var (
		nleft  = total / n[d-1]
		nright = 1
	)
	for i := d - 1; i >= 0; i-- {
		var (
			ni   = n[i]
			qd   = Q[i].DataP
			x    = make([]float64, ni)
			y    = make([]float64, ni)
			base = 0
			jump = ni * nright
		)
		for k := 0; k < nleft; k++ {
			for j := 0; j < nright; j++ {
				idx := base + j
				for r := 0; r < ni; r++ {
					x[r] = u[idx+r*nright]
				}
				for r := 0; r < ni; r++ {
					var s float64
					for c := 0; c < ni; c++ {
						s += qd[r*ni+c] * x[c]
					}
					y[r] = s
				}
				for r := 0; r < ni; r++ {
					u[idx+r*nright] = y[r]
				}
			}
			base += jump
		}
		if i > 0 {
			nleft /= n[i-1]
		}
		nright *= ni
	}
	return u
}
