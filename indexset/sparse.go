package indexset

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

// Component is one tensor grid member of a sparse grid: a 0-based
// per-dimension order vector plus its integer combination technique
// weight. Weights may be negative; overlapping components are reconciled
// downstream by summing coefficients that share a multi-index.
type Component struct {
	Orders []int
	Weight int
}

// Components enumerates the combination technique for an isotropic
// Smolyak construction of the stored level L in d dimensions: level
// vectors i >= 1 with L <= |i| <= L+d-1 and weight
// (-1)^(L+d-1-|i|) * C(d-1, |i|-L).
func (s *IndexSet) Components() (comps []Component, err error) {
	if s.kind != SparseGrid {
		return nil, fmt.Errorf("index set of kind %v has no sparse components", s.kind)
	}
	if s.level < 1 || s.dims < 1 {
		return nil, fmt.Errorf("degenerate sparse grid: level %d, dimensions %d", s.level, s.dims)
	}
	var (
		L = s.level
		d = s.dims
	)
	for sum := L; sum <= L+d-1; sum++ {
		sign := 1
		if (L+d-1-sum)%2 != 0 {
			sign = -1
		}
		weight := sign * combin.Binomial(d-1, sum-L)
		for _, levels := range compositions(sum, d) {
			orders := make([]int, d)
			for k, lv := range levels {
				orders[k] = s.growth.order(lv)
			}
			comps = append(comps, Component{Orders: orders, Weight: weight})
		}
	}
	return
}

// order converts a level index (>= 1) to a 0-based polynomial order.
func (g Growth) order(level int) int {
	if g == ExponentialGrowth {
		if level == 1 {
			return 0
		}
		return 1 << uint(level-1) // 2^(level-1) intervals -> order 2^(level-1)
	}
	return level - 1
}

// compositions lists the vectors of d positive integers summing to total,
// lexicographic with the last entry varying fastest.
func compositions(total, d int) (out [][]int) {
	if d == 1 {
		return [][]int{{total}}
	}
	for first := 1; first <= total-d+1; first++ {
		for _, rest := range compositions(total-first, d-1) {
			row := append([]int{first}, rest...)
			out = append(out, row)
		}
	}
	return
}
