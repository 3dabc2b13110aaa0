package sweep

import (
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/qsweep/internal/qubit"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{Ec: 0.3, N: 10, NgPoints: 21, Ratios: []float64{1, 10, 50}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero Ec", func(c *Config) { c.Ec = 0 }},
		{"negative Ec", func(c *Config) { c.Ec = -0.3 }},
		{"zero N", func(c *Config) { c.N = 0 }},
		{"basis too narrow", func(c *Config) { c.N = 1 }},
		{"one ng point", func(c *Config) { c.NgPoints = 1 }},
		{"empty ratios", func(c *Config) { c.Ratios = nil }},
		{"negative ratio", func(c *Config) { c.Ratios = []float64{1, -5} }},
		{"zero ratio", func(c *Config) { c.Ratios = []float64{0} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			cfg.Ratios = append([]float64(nil), valid.Ratios...)
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestResultAccessors(t *testing.T) {
	r := &Result{Points: []Point{
		{Ratio: 5, Frequency: 1.7, Anharmonicity: -1.05, Dispersion: 0.32},
		{Ratio: 50, Frequency: 5.7, Anharmonicity: -0.34, Dispersion: 1.2e-5},
	}}

	ratios := r.Ratios()
	freqs := r.Frequencies()
	alphas := r.Anharmonicities()
	disps := r.Dispersions()

	if len(ratios) != 2 || len(freqs) != 2 || len(alphas) != 2 || len(disps) != 2 {
		t.Fatalf("accessor lengths mismatch: %d %d %d %d", len(ratios), len(freqs), len(alphas), len(disps))
	}
	if ratios[1] != 50 || freqs[1] != 5.7 || alphas[0] != -1.05 || disps[1] != 1.2e-5 {
		t.Error("accessors not index-aligned with points")
	}
}

func TestPointError(t *testing.T) {
	err := &PointError{Ratio: 12.5, Ng: 0.25, Wrapped: qubit.ErrLevelCount}

	if !errors.Is(err, qubit.ErrLevelCount) {
		t.Error("PointError does not unwrap to its cause")
	}
	msg := err.Error()
	if !strings.Contains(msg, "12.5") || !strings.Contains(msg, "0.25") {
		t.Errorf("PointError message missing sweep coordinates: %q", msg)
	}
}
