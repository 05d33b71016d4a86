package polynomial

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/james-bowman/sparse"

	"github.com/numgrid/polychaos/indexset"
	"github.com/numgrid/polychaos/utils"
)

// Coefficients computes the pseudospectral expansion of f. A tensor grid
// index set yields a single full tensor solve; a sparse grid set runs the
// combination technique over its components. Any other kind falls back to
// the tensor solve.
func (p *Polynomial) Coefficients(f ModelFunc) (*Expansion, error) {
	if p.IndexSet.Kind() == indexset.SparseGrid {
		return p.sparseCoefficients(f)
	}
	return p.tensorCoefficients(f, nil)
}

// tensorCoefficients extracts the coefficients of one full tensor grid at
// the given per-dimension orders (parameter orders when nil). The sampled
// model values are scaled by the first row of the Kronecker-combined
// eigenvector transform and pushed through the multilinear sweep; the
// result aligns one-to-one with the tensor index set of degree order-1
// per dimension.
func (p *Polynomial) tensorCoefficients(f ModelFunc, overrideOrders []int) (exp *Expansion, err error) {
	var (
		d      = len(p.Parameters)
		orders = make([]int, d)
		Q      = make([]utils.Matrix, d)
		q0     = utils.NewVector(1, []float64{1})
	)
	if overrideOrders != nil {
		if len(overrideOrders) != d {
			return nil, &DimensionError{What: "override orders", Got: len(overrideOrders), Want: d}
		}
		copy(orders, overrideOrders)
	} else {
		for i, param := range p.Parameters {
			orders[i] = param.Order
		}
	}
	for i, param := range p.Parameters {
		Qi, qerr := param.JacobiEigenvectors(orders[i])
		if qerr != nil {
			return nil, &QuadratureError{Dimension: i, Err: qerr}
		}
		Q[i] = Qi
		q0 = q0.Kron(Qi.Row(0))
	}

	points, _, err := p.PointsAndWeights(orders)
	if err != nil {
		return nil, err
	}
	m := q0.Len()

	// The model evaluation loop is the dominant cost and the only place
	// user code runs.
	Uc := make([]float64, m)
	for j := 0; j < m; j++ {
		x := make([]float64, d)
		copy(x, points.M.RawRowView(j))
		val, ferr := f(x)
		if ferr != nil {
			return nil, &FunctionEvaluationError{Point: x, Err: ferr}
		}
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, &FunctionEvaluationError{Point: x, Err: fmt.Errorf("non-finite value %v", val)}
		}
		Uc[j] = q0.DataP[j] * val
	}

	K := kronMult(Q, Uc)

	correction := make([]int, d)
	for i, o := range orders {
		correction[i] = o - 1
	}
	exp = &Expansion{
		Coefficients: K,
		Indices:      indexset.TensorIndices(correction),
		Points:       points,
	}
	return
}

// sparseCoefficients runs the combination technique: every sparse grid
// component is solved as a full tensor grid at its order vector plus one,
// scaled by its combination weight, and contributions sharing a
// multi-index across components are summed into a single entry. Output
// ordering is insertion order of first occurrence.
//
// The accumulation goes through a union-index by component incidence
// matrix, assembled as a DOK and collapsed by CSR traversal. Multi-index
// matching is exact integer equality; nothing is ever merged on floating
// point closeness.
func (p *Polynomial) sparseCoefficients(f ModelFunc) (exp *Expansion, err error) {
	var (
		d = len(p.Parameters)
	)
	comps, err := p.IndexSet.Components()
	if err != nil {
		return nil, err
	}

	type contribution struct {
		row, comp int
		value     float64
	}
	var (
		keyID    = make(map[string]int)
		unionIdx indexset.Indices
		unionPts [][]float64
		contribs []contribution
	)
	for ci, comp := range comps {
		plusOne := make([]int, d)
		for k, o := range comp.Orders {
			plusOne[k] = o + 1
		}
		tensor, terr := p.tensorCoefficients(f, plusOne)
		if terr != nil {
			return nil, terr
		}
		w := float64(comp.Weight)
		for j, row := range tensor.Indices {
			key := indexKey(row)
			id, seen := keyID[key]
			if !seen {
				id = len(unionIdx)
				keyID[key] = id
				unionIdx = append(unionIdx, row)
				pt := make([]float64, d)
				copy(pt, tensor.Points.M.RawRowView(j))
				unionPts = append(unionPts, pt)
			}
			contribs = append(contribs, contribution{row: id, comp: ci, value: w * tensor.Coefficients[j]})
		}
	}

	coefficients := make([]float64, len(unionIdx))
	if len(unionIdx) > 0 {
		incidence := sparse.NewDOK(len(unionIdx), len(comps))
		for _, c := range contribs {
			incidence.Set(c.row, c.comp, c.value)
		}
		incidence.ToCSR().DoNonZero(func(i, j int, v float64) {
			coefficients[i] += v
		})
	}

	exp = &Expansion{
		Coefficients: coefficients,
		Indices:      unionIdx,
	}
	if len(unionPts) > 0 {
		exp.Points = utils.NewMatrix(len(unionPts), d)
		for i, pt := range unionPts {
			exp.Points.SetRow(i, pt)
		}
	}
	return
}

// indexKey encodes one multi-index as an exact string key for the merge.
func indexKey(row []int) string {
	var b strings.Builder
	for k, idx := range row {
		if k > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(idx))
	}
	return b.String()
}
