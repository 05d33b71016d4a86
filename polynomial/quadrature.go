package polynomial

import (
	"github.com/numgrid/polychaos/orthopoly"
	"github.com/numgrid/polychaos/utils"
)

// PointsAndWeights assembles the anisotropic tensor product Gauss rule
// over all parameters as a chain of Kronecker products of the univariate
// rules, then rescales each dimension's nodes from the canonical domain
// onto the parameter's physical domain. The returned point matrix is
// m-by-d with m the product of the per-dimension orders; dimension 0
// varies slowest, matching the Kronecker weight layout.
func (p *Polynomial) PointsAndWeights(overrideOrders ...[]int) (points utils.Matrix, weights utils.Vector, err error) {
	var (
		d      = len(p.Parameters)
		orders = make([]int, d)
	)
	if len(overrideOrders) != 0 && overrideOrders[0] != nil {
		if len(overrideOrders[0]) != d {
			err = &DimensionError{What: "override orders", Got: len(overrideOrders[0]), Want: d}
			return
		}
		copy(orders, overrideOrders[0])
	} else {
		for i, param := range p.Parameters {
			orders[i] = param.Order
		}
	}

	var (
		rows = [][]float64{{}}
		ww   = utils.NewVector(1, []float64{1})
	)
	for k, param := range p.Parameters {
		X, W, qerr := param.GaussQuadrature(orders[k])
		if qerr != nil {
			err = &QuadratureError{Dimension: k, Err: qerr}
			return
		}
		ww = ww.Kron(W)
		grown := make([][]float64, len(rows)*X.Len())
		for i, row := range rows {
			for j := 0; j < X.Len(); j++ {
				r := make([]float64, k+1)
				copy(r, row)
				r[k] = X.AtVec(j)
				grown[i*X.Len()+j] = r
			}
		}
		rows = grown
	}

	points = utils.NewMatrix(len(rows), d)
	for i, row := range rows {
		for k, param := range p.Parameters {
			points.Set(i, k, rescaleNode(param, row[k]))
		}
	}
	weights = ww
	return
}

// rescaleNode maps a canonical quadrature node onto the parameter's
// physical domain. Uniform nodes live on [-1,1], Beta nodes on [0,1];
// Gaussian nodes are already physical and any other kind passes through
// untouched.
func rescaleNode(param *orthopoly.Parameter, x float64) float64 {
	switch param.Kind {
	case orthopoly.Uniform:
		return 0.5*(x+1)*(param.Upper-param.Lower) + param.Lower
	case orthopoly.Beta:
		return x*(param.Upper-param.Lower) + param.Lower
	}
	return x
}
