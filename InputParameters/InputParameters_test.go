package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/numgrid/polychaos/indexset"
	"github.com/numgrid/polychaos/orthopoly"
)

var sampleYAML = []byte(`
Title: "product of two uniforms"
Model: product
IndexSet: "Tensor grid"
Parameters:
  - Type: Uniform
    Lower: -1
    Upper: 1
    Order: 3
  - Type: Gaussian
    ShapeA: 0
    ShapeB: 1
    Order: 4
    Derivatives: true
QueryPoints:
  - [0.3, -0.7]
  - [1.0, 1.0]
QueryGrid:
  X1Min: -1
  X1Max: 1
  X2Min: -3
  X2Max: 3
  N1: 5
  N2: 7
`)

func TestParseAndBuild(t *testing.T) {
	var ap ApproxParameters
	err := ap.Parse(sampleYAML)
	assert.NoError(t, err)
	assert.Equal(t, "product of two uniforms", ap.Title)
	assert.Equal(t, "product", ap.Model)
	assert.Equal(t, 2, len(ap.Parameters))
	assert.Equal(t, 2, len(ap.QueryPoints))
	if assert.NotNil(t, ap.QueryGrid) {
		assert.Equal(t, QueryGridDef{X1Min: -1, X1Max: 1, X2Min: -3, X2Max: 3, N1: 5, N2: 7}, *ap.QueryGrid)
	}

	params, set, err := ap.Build()
	assert.NoError(t, err)
	assert.Equal(t, 2, len(params))
	assert.Equal(t, orthopoly.Uniform, params[0].Kind)
	assert.Equal(t, orthopoly.Gaussian, params[1].Kind)
	assert.True(t, params[1].DerivativeFlag)
	assert.Equal(t, indexset.TensorGrid, set.Kind())
}

func TestBuildSparseGrid(t *testing.T) {
	ap := ApproxParameters{
		IndexSet: "Sparse grid",
		Level:    2,
		Growth:   "Exponential",
		Parameters: []ParameterDef{
			{Type: "Uniform", Lower: 0, Upper: 1, Order: 3},
			{Type: "Uniform", Lower: 0, Upper: 1, Order: 3},
		},
	}
	_, set, err := ap.Build()
	assert.NoError(t, err)
	assert.Equal(t, indexset.SparseGrid, set.Kind())
	comps, err := set.Components()
	assert.NoError(t, err)
	assert.NotEmpty(t, comps)
}

func TestBuildRejectsUnknowns(t *testing.T) {
	ap := ApproxParameters{
		Parameters: []ParameterDef{{Type: "Cauchy", Order: 3}},
	}
	_, _, err := ap.Build()
	assert.Error(t, err)

	ap = ApproxParameters{
		IndexSet:   "Magic grid",
		Parameters: []ParameterDef{{Type: "Uniform", Lower: 0, Upper: 1, Order: 3}},
	}
	_, _, err = ap.Build()
	assert.Error(t, err)

	ap = ApproxParameters{}
	_, _, err = ap.Build()
	assert.Error(t, err)
}
