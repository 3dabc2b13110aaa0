// Package qubit models a superconducting transmon in the truncated charge
// basis and extracts its low-lying energy levels by exact diagonalization.
//
// The Hamiltonian is real symmetric and tridiagonal: a charging diagonal
// 4*Ec*(n-ng)^2 over the charge states n = -N..N, and a Josephson tunneling
// term -Ej/2 on the first off-diagonals. The tunneling term is independent
// of the offset charge ng, so [Transmon.JosephsonTerm] can be built once and
// reused across an ng sweep via [Transmon.HamiltonianWith]:
//
//	tr := qubit.New(0.3, 15.0, 10)
//	j := tr.JosephsonTerm()
//	levels, err := qubit.LowestLevels(tr.HamiltonianWith(j, 0.5), 2)
//
// Truncation adequacy is the caller's responsibility: N should well exceed
// the number of populated charge states at the largest Ej/Ec of interest.
package qubit
