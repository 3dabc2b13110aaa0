package qubit

import (
	"gonum.org/v1/gonum/mat"
)

// Transmon describes a single transmon qubit in the charge basis,
// truncated to the states -N..N (2N+1 extra Cooper pairs on the island).
type Transmon struct {
	Ec float64 // charging energy, GHz
	Ej float64 // Josephson energy, GHz
	N  int     // truncation half-width
}

func New(ec, ej float64, n int) *Transmon {
	return &Transmon{Ec: ec, Ej: ej, N: n}
}

// Dim returns the dimension of the truncated charge basis.
func (t *Transmon) Dim() int {
	return 2*t.N + 1
}

// JosephsonTerm builds the tunneling part of the Hamiltonian: -Ej/2 on the
// first off-diagonals, coupling adjacent charge states. It depends only on
// Ej, so a single value can serve every offset charge at fixed Ej.
func (t *Transmon) JosephsonTerm() *mat.SymDense {
	dim := t.Dim()
	h := mat.NewSymDense(dim, nil)
	for i := 0; i < dim-1; i++ {
		h.SetSym(i, i+1, -t.Ej/2)
	}
	return h
}

// HamiltonianWith overlays the charging diagonal for offset charge ng onto a
// precomputed Josephson term. The term is copied, never mutated.
func (t *Transmon) HamiltonianWith(josephson *mat.SymDense, ng float64) *mat.SymDense {
	dim := t.Dim()
	h := mat.NewSymDense(dim, nil)
	h.CopySym(josephson)
	for i := 0; i < dim; i++ {
		n := float64(i - t.N)
		h.SetSym(i, i, 4*t.Ec*(n-ng)*(n-ng))
	}
	return h
}

// Hamiltonian builds the full charge-basis Hamiltonian at offset charge ng.
func (t *Transmon) Hamiltonian(ng float64) *mat.SymDense {
	return t.HamiltonianWith(t.JosephsonTerm(), ng)
}
