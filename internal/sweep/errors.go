package sweep

import "fmt"

// PointError wraps a failure with the sweep coordinates that triggered it.
type PointError struct {
	Ratio   float64
	Ng      float64
	Wrapped error
}

func (e *PointError) Error() string {
	return fmt.Sprintf("sweep: ratio %.4g (ng=%.4g): %v", e.Ratio, e.Ng, e.Wrapped)
}

func (e *PointError) Unwrap() error {
	return e.Wrapped
}
