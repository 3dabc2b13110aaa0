package qubit

import "errors"

// Domain errors for Hamiltonian diagonalization.
var (
	// ErrLevelCount indicates a requested level count outside 2..dim.
	ErrLevelCount = errors.New("qubit: level count out of range")

	// ErrEigenFailed indicates the symmetric eigendecomposition did not converge.
	ErrEigenFailed = errors.New("qubit: eigendecomposition failed to converge")
)
