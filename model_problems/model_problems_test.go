package model_problems

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	f, err := Get("Product")
	assert.NoError(t, err)
	v, err := f([]float64{2, 3, 4})
	assert.NoError(t, err)
	assert.Equal(t, 24., v)

	_, err = Get("nope")
	assert.Error(t, err)
}

func TestRosenbrock(t *testing.T) {
	f, err := Get("rosenbrock")
	assert.NoError(t, err)
	v, err := f([]float64{1, 1})
	assert.NoError(t, err)
	assert.Zero(t, v)

	_, err = f([]float64{1, 1, 1})
	assert.Error(t, err)
}

func TestGaussianPeak(t *testing.T) {
	f, _ := Get("gaussianpeak")
	v, err := f([]float64{0, 0})
	assert.NoError(t, err)
	assert.Equal(t, 1., v)
	v, _ = f([]float64{1, 1})
	assert.InDelta(t, math.Exp(-2), v, 1e-15)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "product")
	assert.Contains(t, names, "expsum")
}
