package polynomial

import (
	"github.com/numgrid/polychaos/utils"
)

// Approximate evaluates the polynomial surrogate of f at the query
// points, computing the expansion first. The expansion is returned
// alongside so callers can reuse it through EvaluateExpansion.
func (p *Polynomial) Approximate(f ModelFunc, queryPoints utils.Matrix) (values utils.Vector, exp *Expansion, err error) {
	if exp, err = p.Coefficients(f); err != nil {
		return
	}
	values, err = p.EvaluateExpansion(exp, queryPoints)
	return
}

// EvaluateExpansion contracts a precomputed expansion against the basis
// evaluated at the query points: each query value is the inner product of
// its basis column with the coefficient vector. An empty expansion is a
// valid zero surrogate.
func (p *Polynomial) EvaluateExpansion(exp *Expansion, queryPoints utils.Matrix) (values utils.Vector, err error) {
	var (
		m, _ = queryPoints.Dims()
	)
	values = utils.NewVector(m)
	if len(exp.Coefficients) == 0 {
		return
	}
	B, _, err := p.BasisAt(queryPoints, exp.Indices)
	if err != nil {
		return
	}
	for j, c := range exp.Coefficients {
		bj := B.M.RawRowView(j)
		for q := 0; q < m; q++ {
			values.DataP[q] += c * bj[q]
		}
	}
	return
}
