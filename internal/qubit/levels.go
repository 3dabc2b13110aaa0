package qubit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LowestLevels returns the k smallest eigenvalues of h in ascending order.
// Degenerate eigenvalues are returned as-is; k must satisfy 2 <= k <= dim.
func LowestLevels(h *mat.SymDense, k int) ([]float64, error) {
	dim := h.SymmetricDim()
	if k < 2 {
		return nil, fmt.Errorf("qubit: need at least 2 levels, got %d: %w", k, ErrLevelCount)
	}
	if k > dim {
		return nil, fmt.Errorf("qubit: %d levels requested from a %dx%d Hamiltonian: %w", k, dim, dim, ErrLevelCount)
	}

	var eig mat.EigenSym
	if !eig.Factorize(h, false) {
		return nil, ErrEigenFailed
	}

	levels := eig.Values(nil)
	return levels[:k], nil
}
