package polynomial

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/numgrid/polychaos/orthopoly"
	"github.com/numgrid/polychaos/utils"
)

func twoUniform(order int) []*orthopoly.Parameter {
	return []*orthopoly.Parameter{
		orthopoly.NewUniform(-1, 1, order),
		orthopoly.NewUniform(-1, 1, order),
	}
}

// f(x,y) = xy lies exactly in the basis: its expansion under the
// orthonormal Legendre family on [-1,1] is (1/3) psi_1(x) psi_1(y), all
// other coefficients zero.
func TestTensorCoefficients_ExactExpansion(t *testing.T) {
	const tol = 1e-12
	poly := NewPolynomial(twoUniform(3))
	f := func(x []float64) (float64, error) { return x[0] * x[1], nil }

	exp, err := poly.Coefficients(f)
	assert.NoError(t, err)
	assert.Equal(t, 9, len(exp.Coefficients))
	nr, _ := exp.Points.Dims()
	assert.Equal(t, 9, nr)

	for j, row := range exp.Indices {
		want := 0.
		if row[0] == 1 && row[1] == 1 {
			want = 1. / 3.
		}
		assert.InDeltaf(t, want, exp.Coefficients[j], tol, "coefficient %v", row)
	}
}

func TestApproximation_ReproducesFunction(t *testing.T) {
	const tol = 1e-10
	poly := NewPolynomial(twoUniform(3))
	f := func(x []float64) (float64, error) { return x[0] * x[1], nil }

	query := utils.NewMatrix(2, 2, []float64{
		0.3, -0.7,
		1.0, 1.0,
	})
	values, exp, err := poly.Approximate(f, query)
	assert.NoError(t, err)
	assert.NotNil(t, exp)
	assert.InDelta(t, 0.3*-0.7, values.AtVec(0), tol)
	assert.InDelta(t, 1.0, values.AtVec(1), tol)
}

// A cubic on a rescaled domain, with enough points to resolve it.
func TestApproximation_RescaledDomain(t *testing.T) {
	const tol = 1e-10
	poly := NewPolynomial([]*orthopoly.Parameter{
		orthopoly.NewUniform(0, 2, 5),
		orthopoly.NewUniform(-4, -2, 5),
	})
	f := func(x []float64) (float64, error) {
		return x[0]*x[0]*x[0] - 2*x[1]*x[1] + x[0]*x[1] + 1, nil
	}
	query := utils.NewMatrix(3, 2, []float64{
		0.1, -3.9,
		1.5, -2.5,
		2.0, -2.0,
	})
	values, _, err := poly.Approximate(f, query)
	assert.NoError(t, err)
	for i := 0; i < 3; i++ {
		x, y := query.At(i, 0), query.At(i, 1)
		want, _ := f([]float64{x, y})
		assert.InDeltaf(t, want, values.AtVec(i), tol, "query %d", i)
	}
}

func TestCoefficients_GaussianParameter(t *testing.T) {
	const tol = 1e-10
	poly := NewPolynomial([]*orthopoly.Parameter{
		orthopoly.NewGaussian(0, 1, 4),
	})
	// f(x) = x^2 = psi_0 + sqrt(2) psi_2 for the normalized Hermite family
	f := func(x []float64) (float64, error) { return x[0] * x[0], nil }
	exp, err := poly.Coefficients(f)
	assert.NoError(t, err)
	for j, row := range exp.Indices {
		want := 0.
		switch row[0] {
		case 0:
			want = 1
		case 2:
			want = math.Sqrt2
		}
		assert.InDeltaf(t, want, exp.Coefficients[j], tol, "degree %d", row[0])
	}
}

func TestCoefficients_FunctionFailurePropagates(t *testing.T) {
	poly := NewPolynomial(twoUniform(3))
	boom := errors.New("model blew up")
	calls := 0
	f := func(x []float64) (float64, error) {
		calls++
		if calls == 5 {
			return 0, boom
		}
		return x[0], nil
	}
	_, err := poly.Coefficients(f)
	var ferr *FunctionEvaluationError
	assert.ErrorAs(t, err, &ferr)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, len(ferr.Point))
}

func TestCoefficients_NonFiniteValue(t *testing.T) {
	poly := NewPolynomial(twoUniform(2))
	f := func(x []float64) (float64, error) { return math.NaN(), nil }
	_, err := poly.Coefficients(f)
	var ferr *FunctionEvaluationError
	assert.ErrorAs(t, err, &ferr)

	g := func(x []float64) (float64, error) { return math.Inf(1), nil }
	_, err = poly.Coefficients(g)
	assert.ErrorAs(t, err, &ferr)
}

func TestCoefficients_QuadratureFailurePropagates(t *testing.T) {
	poly := NewPolynomial([]*orthopoly.Parameter{
		orthopoly.NewBeta(0, 1, 0, 1, 3), // invalid shape
	})
	f := func(x []float64) (float64, error) { return 1, nil }
	_, err := poly.Coefficients(f)
	var qerr *QuadratureError
	assert.ErrorAs(t, err, &qerr)
}

func TestCardinality(t *testing.T) {
	poly := NewPolynomial(twoUniform(3))
	card, err := poly.Cardinality()
	assert.NoError(t, err)
	assert.Equal(t, 9, card)
}

// Each coefficient must equal the discrete projection sum_m w_m psi_j(x_m)
// f(x_m); the Kronecker transform is just a fast path for it.
func TestTensorCoefficients_MatchDiscreteProjection(t *testing.T) {
	const tol = 1e-11
	poly := NewPolynomial(twoUniform(4))
	f := func(x []float64) (float64, error) {
		return math.Sin(x[0]) * math.Exp(x[1]), nil
	}
	exp, err := poly.Coefficients(f)
	assert.NoError(t, err)

	points, weights, err := poly.PointsAndWeights()
	assert.NoError(t, err)
	B, _, err := poly.BasisAt(points, exp.Indices)
	assert.NoError(t, err)

	m, _ := points.Dims()
	for j := range exp.Coefficients {
		var s float64
		for q := 0; q < m; q++ {
			fv, _ := f(points.M.RawRowView(q))
			s += weights.AtVec(q) * B.At(j, q) * fv
		}
		assert.InDeltaf(t, s, exp.Coefficients[j], tol,
			fmt.Sprintf("projection mismatch at %v", exp.Indices[j]))
	}
}
