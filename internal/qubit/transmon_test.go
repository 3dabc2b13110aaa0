package qubit

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestTransmonDim(t *testing.T) {
	tests := []struct {
		n   int
		dim int
	}{
		{1, 3},
		{2, 5},
		{10, 21},
	}

	for _, tt := range tests {
		tr := New(0.3, 3.0, tt.n)
		if got := tr.Dim(); got != tt.dim {
			t.Errorf("Dim() with N=%d = %d, want %d", tt.n, got, tt.dim)
		}
	}
}

func TestHamiltonianEntries(t *testing.T) {
	tr := New(0.3, 1.0, 2)
	ng := 0.25
	h := tr.Hamiltonian(ng)

	dim := tr.Dim()
	if r := h.SymmetricDim(); r != dim {
		t.Fatalf("expected %dx%d matrix, got %d", dim, dim, r)
	}

	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			var want float64
			switch {
			case i == j:
				n := float64(i - tr.N)
				want = 4 * tr.Ec * (n - ng) * (n - ng)
			case i == j+1 || j == i+1:
				want = -tr.Ej / 2
			}
			if got := h.At(i, j); math.Abs(got-want) > 1e-15 {
				t.Errorf("H[%d][%d] = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestHamiltonianDeterministic(t *testing.T) {
	tr := New(0.3, 15.0, 10)

	a := tr.Hamiltonian(0.37)
	b := tr.Hamiltonian(0.37)

	dim := tr.Dim()
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if a.At(i, j) != b.At(i, j) {
				t.Fatalf("H[%d][%d] differs between identical builds: %v vs %v", i, j, a.At(i, j), b.At(i, j))
			}
		}
	}
}

func TestJosephsonTermReuse(t *testing.T) {
	tr := New(0.3, 4.5, 3)
	j := tr.JosephsonTerm()

	before := mat.NewSymDense(tr.Dim(), nil)
	before.CopySym(j)

	h := tr.HamiltonianWith(j, 0.5)

	if !mat.Equal(j, before) {
		t.Error("HamiltonianWith mutated the Josephson term")
	}
	if !mat.Equal(h, tr.Hamiltonian(0.5)) {
		t.Error("HamiltonianWith differs from a direct build")
	}
}

func TestJosephsonTermIndependentOfNg(t *testing.T) {
	tr := New(0.3, 4.5, 3)
	j := tr.JosephsonTerm()

	dim := tr.Dim()
	for i := 0; i < dim; i++ {
		if j.At(i, i) != 0 {
			t.Errorf("Josephson term has nonzero diagonal at %d: %v", i, j.At(i, i))
		}
		if i+1 < dim {
			if got := j.At(i, i+1); got != -tr.Ej/2 {
				t.Errorf("Josephson term off-diagonal at %d = %v, want %v", i, got, -tr.Ej/2)
			}
		}
		if i+2 < dim {
			if got := j.At(i, i+2); got != 0 {
				t.Errorf("Josephson term couples non-adjacent states at %d: %v", i, got)
			}
		}
	}
}
