package polynomial

import (
	"github.com/numgrid/polychaos/indexset"
	"github.com/numgrid/polychaos/orthopoly"
	"github.com/numgrid/polychaos/utils"
)

// ModelFunc is the scalar function being approximated, evaluated once per
// quadrature point. An error return, or a non-finite value, aborts the
// coefficient computation.
type ModelFunc func(x []float64) (float64, error)

// Polynomial is a multivariate orthonormal polynomial expansion over a
// stack of independent parameters and one index set. Read-only after
// construction; basis evaluation may be run against a different index set
// than the stored one, which the sparse grid path uses internally.
type Polynomial struct {
	Parameters []*orthopoly.Parameter
	IndexSet   *indexset.IndexSet
}

// NewPolynomial builds the expansion aggregate. With no explicit index
// set, a tensor grid spanning each parameter's stored order is used.
func NewPolynomial(parameters []*orthopoly.Parameter, set ...*indexset.IndexSet) (p *Polynomial) {
	p = &Polynomial{Parameters: parameters}
	if len(set) != 0 && set[0] != nil {
		p.IndexSet = set[0]
		return
	}
	orders := make([]int, len(parameters))
	for i, param := range parameters {
		orders[i] = param.Order - 1
	}
	p.IndexSet = indexset.NewTensorGrid(orders)
	return
}

// Cardinality is the number of retained basis terms. For sparse grids the
// realized set is only known after the combination technique merge, so
// the count comes from a coefficient computation instead.
func (p *Polynomial) Cardinality() (int, error) {
	I, err := p.IndexSet.Enumerate()
	if err != nil {
		return 0, err
	}
	return I.Cardinality(), nil
}

// Expansion pairs pseudospectral coefficients with the multi-indices they
// belong to and the points the model function was sampled at. Within one
// expansion multi-indices are unique.
type Expansion struct {
	Coefficients []float64
	Indices      indexset.Indices
	Points       utils.Matrix
}
