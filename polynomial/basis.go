package polynomial

import (
	"fmt"

	"github.com/numgrid/polychaos/indexset"
	"github.com/numgrid/polychaos/utils"
)

// BasisAt evaluates the multivariate orthonormal basis at the given
// m-by-d point matrix. B is N-by-m with one row per multi-index. When any
// parameter carries the derivative flag, derivs holds one N-by-m matrix
// per dimension with the partial derivatives of each basis term; it is
// nil otherwise.
//
// The stored index set is used unless an override is supplied; sparse
// grid sets have no single realized index table and always need the
// override (the coefficient routines pass the merged set).
func (p *Polynomial) BasisAt(points utils.Matrix, override ...indexset.Indices) (B utils.Matrix, derivs []utils.Matrix, err error) {
	var (
		d       = len(p.Parameters)
		m, cols = points.Dims()
		indices indexset.Indices
	)
	if cols != d {
		err = &DimensionError{What: "point matrix", Got: cols, Want: d}
		return
	}
	if len(override) != 0 && override[0] != nil {
		indices = override[0]
	} else {
		if indices, err = p.IndexSet.Enumerate(); err != nil {
			return
		}
	}
	if id := indices.Dimensions(); id != d {
		err = &DimensionError{What: "index set", Got: id, Want: d}
		return
	}

	wantDerivs := false
	for _, param := range p.Parameters {
		if param.DerivativeFlag {
			wantDerivs = true
		}
	}

	// Univariate fast path: no tensor combination needed.
	if d == 1 {
		return p.univariateBasis(points, indices, wantDerivs)
	}

	// Per-dimension values and derivatives up to the max degree present
	// in that dimension's column of the index set.
	var (
		N    = indices.Cardinality()
		vals = make([]utils.Matrix, d)
		ders = make([]utils.Matrix, d)
	)
	for k := 0; k < d; k++ {
		vals[k], ders[k], err = p.Parameters[k].OrthonormalPolynomials(points.Col(k), indices.MaxDegree(k))
		if err != nil {
			err = fmt.Errorf("basis evaluation in dimension %d: %w", k, err)
			return
		}
	}

	B = utils.NewMatrix(N, m)
	for i, row := range indices {
		bi := B.M.RawRowView(i)
		for q := 0; q < m; q++ {
			bi[q] = 1
		}
		for k := 0; k < d; k++ {
			pk := vals[k].M.RawRowView(row[k])
			for q := 0; q < m; q++ {
				bi[q] *= pk[q]
			}
		}
	}
	if !wantDerivs {
		return
	}

	// Product rule: in dimension j, the univariate derivative replaces
	// the univariate value; all other dimensions keep their values.
	derivs = make([]utils.Matrix, d)
	for j := 0; j < d; j++ {
		derivs[j] = utils.NewMatrix(N, m)
		for i, row := range indices {
			ci := derivs[j].M.RawRowView(i)
			dj := ders[j].M.RawRowView(row[j])
			copy(ci, dj)
			for k := 0; k < d; k++ {
				if k == j {
					continue
				}
				pk := vals[k].M.RawRowView(row[k])
				for q := 0; q < m; q++ {
					ci[q] *= pk[q]
				}
			}
		}
	}
	return
}

func (p *Polynomial) univariateBasis(points utils.Matrix, indices indexset.Indices, wantDerivs bool) (B utils.Matrix, derivs []utils.Matrix, err error) {
	var (
		m, _ = points.Dims()
		N    = indices.Cardinality()
	)
	P, D, err := p.Parameters[0].OrthonormalPolynomials(points.Col(0), indices.MaxDegree(0))
	if err != nil {
		return
	}
	B = utils.NewMatrix(N, m)
	for i, row := range indices {
		B.SetRow(i, P.M.RawRowView(row[0]))
	}
	if wantDerivs {
		derivs = []utils.Matrix{utils.NewMatrix(N, m)}
		for i, row := range indices {
			derivs[0].SetRow(i, D.M.RawRowView(row[0]))
		}
	}
	return
}
