package polynomial

import (
	"fmt"
)

// QuadratureError reports that a parameter's quadrature rule or recurrence
// eigen-decomposition could not be produced. Not recoverable by retry.
type QuadratureError struct {
	Dimension int
	Err       error
}

func (e *QuadratureError) Error() string {
	return fmt.Sprintf("quadrature failure in dimension %d: %v", e.Dimension, e.Err)
}

func (e *QuadratureError) Unwrap() error { return e.Err }

// FunctionEvaluationError reports that the model function failed, or
// returned a non-finite value, at a specific sample point.
type FunctionEvaluationError struct {
	Point []float64
	Err   error
}

func (e *FunctionEvaluationError) Error() string {
	return fmt.Sprintf("model function evaluation failed at point %v: %v", e.Point, e.Err)
}

func (e *FunctionEvaluationError) Unwrap() error { return e.Err }

// DimensionError reports a disagreement between a matrix shape and the
// parameter stack dimensionality.
type DimensionError struct {
	What      string
	Got, Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimension mismatch: %s has %d columns, want %d", e.What, e.Got, e.Want)
}
