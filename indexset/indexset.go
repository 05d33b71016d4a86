package indexset

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

type Kind uint8

const (
	TensorGrid Kind = iota
	TotalOrder
	SparseGrid
)

func (k Kind) String() string {
	switch k {
	case TensorGrid:
		return "Tensor grid"
	case TotalOrder:
		return "Total order"
	case SparseGrid:
		return "Sparse grid"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Indices is a cardinality-by-dimension table of multi-indices. Each row
// identifies one basis term by its per-dimension polynomial degree.
type Indices [][]int

func (I Indices) Cardinality() int { return len(I) }

func (I Indices) Dimensions() int {
	if len(I) == 0 {
		return 0
	}
	return len(I[0])
}

// MaxDegree returns the largest degree appearing in column k.
func (I Indices) MaxDegree(k int) (max int) {
	for _, row := range I {
		if row[k] > max {
			max = row[k]
		}
	}
	return
}

// Growth maps a sparse grid level index to a per-dimension polynomial
// order.
type Growth uint8

const (
	LinearGrowth Growth = iota
	ExponentialGrowth
)

// IndexSet describes which multivariate basis terms are retained.
type IndexSet struct {
	kind   Kind
	orders []int  // tensor/total order: per-dimension max degree
	level  int    // sparse grid only
	dims   int    // sparse grid only
	growth Growth // sparse grid only
}

func NewTensorGrid(orders []int) *IndexSet {
	return &IndexSet{kind: TensorGrid, orders: orders}
}

func NewTotalOrder(orders []int) *IndexSet {
	return &IndexSet{kind: TotalOrder, orders: orders}
}

func NewSparseGrid(level, dims int, growth Growth) *IndexSet {
	return &IndexSet{kind: SparseGrid, level: level, dims: dims, growth: growth}
}

func (s *IndexSet) Kind() Kind { return s.kind }

func (s *IndexSet) Dimensions() int {
	if s.kind == SparseGrid {
		return s.dims
	}
	return len(s.orders)
}

// Enumerate realizes the retained multi-indices for tensor grid and total
// order sets. Sparse grids enumerate through Components instead.
func (s *IndexSet) Enumerate() (Indices, error) {
	switch s.kind {
	case TensorGrid:
		return TensorIndices(s.orders), nil
	case TotalOrder:
		return totalOrderIndices(s.orders), nil
	}
	return nil, fmt.Errorf("index set of kind %v has no direct enumeration", s.kind)
}

// TensorIndices is the full Cartesian product {0..orders[0]} x ... x
// {0..orders[d-1]}, row-major with the last dimension varying fastest.
// This ordering matches the Kronecker layout of the tensor quadrature
// assembly and of the pseudospectral coefficient buffer.
func TensorIndices(orders []int) (I Indices) {
	lens := make([]int, len(orders))
	for k, o := range orders {
		lens[k] = o + 1
	}
	return combin.Cartesian(lens)
}

// totalOrderIndices keeps the tensor rows whose degree sum is bounded by
// the largest per-dimension order; individual degrees stay capped by their
// own dimension's order.
func totalOrderIndices(orders []int) (I Indices) {
	var (
		full   = TensorIndices(orders)
		maxSum = 0
	)
	for _, o := range orders {
		if o > maxSum {
			maxSum = o
		}
	}
	for _, row := range full {
		sum := 0
		for _, idx := range row {
			sum += idx
		}
		if sum <= maxSum {
			I = append(I, row)
		}
	}
	return
}
