package orthopoly

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/numgrid/polychaos/utils"
)

// recurrenceCoefficients returns the first n monic three-term recurrence
// coefficients (a_k, b_k) of the parameter's orthogonal family, normalized
// to the probability measure so that b_0 = 1. The recurrence is
//
//	pi_{k+1}(x) = (x - a_k) pi_k(x) - b_k pi_{k-1}(x)
//
// and the orthonormal version divides through by sqrt(b).
func (p *Parameter) recurrenceCoefficients(n int) (a, b []float64, err error) {
	if n < 1 {
		err = fmt.Errorf("need at least one recurrence coefficient, got n = %d", n)
		return
	}
	switch p.Kind {
	case Uniform:
		if p.Upper <= p.Lower {
			err = fmt.Errorf("degenerate Uniform bounds [%v, %v]", p.Lower, p.Upper)
			return
		}
		a, b = legendreRecurrence(n)
	case Beta:
		if p.ShapeA <= 0 || p.ShapeB <= 0 {
			err = fmt.Errorf("Beta shapes must be positive, got (%v, %v)", p.ShapeA, p.ShapeB)
			return
		}
		if p.Upper <= p.Lower {
			err = fmt.Errorf("degenerate Beta bounds [%v, %v]", p.Lower, p.Upper)
			return
		}
		a, b = shiftedJacobiRecurrence(n, p.ShapeB-1, p.ShapeA-1)
	case Gaussian:
		if p.ShapeB <= 0 {
			err = fmt.Errorf("Gaussian variance must be positive, got %v", p.ShapeB)
			return
		}
		a, b = hermiteRecurrence(n)
	default:
		err = fmt.Errorf("no recurrence rule for distribution kind %v", p.Kind)
	}
	return
}

// legendreRecurrence: uniform density 1/2 on [-1,1].
func legendreRecurrence(n int) (a, b []float64) {
	a = make([]float64, n)
	b = make([]float64, n)
	b[0] = 1
	for k := 1; k < n; k++ {
		fk := float64(k)
		b[k] = fk * fk / (4*fk*fk - 1)
	}
	return
}

// shiftedJacobiRecurrence: Jacobi weight (1-x)^alpha (1+x)^beta on [-1,1],
// shifted onto [0,1]. For a Beta(shapeA, shapeB) density on [0,1],
// alpha = shapeB-1 and beta = shapeA-1.
func shiftedJacobiRecurrence(n int, alpha, beta float64) (a, b []float64) {
	a = make([]float64, n)
	b = make([]float64, n)
	ab := alpha + beta
	a[0] = (beta - alpha) / (ab + 2)
	b[0] = 1
	if n > 1 {
		a[1] = (beta*beta - alpha*alpha) / ((ab + 2) * (ab + 4))
		b[1] = 4 * (alpha + 1) * (beta + 1) / ((ab + 2) * (ab + 2) * (ab + 3))
	}
	for k := 2; k < n; k++ {
		fk := float64(k)
		h := 2*fk + ab
		a[k] = (beta*beta - alpha*alpha) / (h * (h + 2))
		b[k] = 4 * fk * (fk + alpha) * (fk + beta) * (fk + ab) /
			(h * h * (h + 1) * (h - 1))
	}
	// Affine map [-1,1] -> [0,1]: x' = (x+1)/2
	for k := 0; k < n; k++ {
		a[k] = 0.5 * (a[k] + 1)
		if k > 0 {
			b[k] *= 0.25
		}
	}
	return
}

// hermiteRecurrence: standard normal density, probabilists' Hermite.
func hermiteRecurrence(n int) (a, b []float64) {
	a = make([]float64, n)
	b = make([]float64, n)
	b[0] = 1
	for k := 1; k < n; k++ {
		b[k] = float64(k)
	}
	return
}

// jacobiMatrix assembles the symmetric tridiagonal form whose eigenvalues
// are the Gauss nodes and whose first eigenvector row squares to the Gauss
// weights.
func jacobiMatrix(a, b []float64) *mat.SymDense {
	var (
		n  = len(a)
		d1 = make([]float64, n-1)
	)
	for k := 0; k < n-1; k++ {
		d1[k] = math.Sqrt(b[k+1])
	}
	return utils.NewSymTriDiagonal(a, d1)
}
