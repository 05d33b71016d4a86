// Package model_problems carries the benchmark model functions the CLI
// can approximate.
package model_problems

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/numgrid/polychaos/polynomial"
)

var models = map[string]polynomial.ModelFunc{
	"product": func(x []float64) (float64, error) {
		v := 1.0
		for _, xi := range x {
			v *= xi
		}
		return v, nil
	},
	"expsum": func(x []float64) (float64, error) {
		var s float64
		for _, xi := range x {
			s += xi
		}
		return math.Exp(s), nil
	},
	"rosenbrock": func(x []float64) (float64, error) {
		if len(x) != 2 {
			return 0, fmt.Errorf("rosenbrock is a 2D model, got %d dimensions", len(x))
		}
		a := 1 - x[0]
		b := x[1] - x[0]*x[0]
		return a*a + 100*b*b, nil
	},
	"gaussianpeak": func(x []float64) (float64, error) {
		var s float64
		for _, xi := range x {
			s += xi * xi
		}
		return math.Exp(-s), nil
	},
}

// Get resolves a model by name, case-insensitive.
func Get(name string) (polynomial.ModelFunc, error) {
	if f, ok := models[strings.ToLower(name)]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("unknown model %q, available: %s", name, strings.Join(Names(), ", "))
}

func Names() (names []string) {
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
