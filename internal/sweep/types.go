package sweep

import (
	"fmt"
	"time"
)

// Config holds the parameters of one Ej/Ec sweep.
type Config struct {
	Ec       float64   // charging energy, GHz
	N        int       // charge-basis truncation half-width
	NgPoints int       // offset-charge samples over [0,1] per ratio
	Ratios   []float64 // Ej/Ec values, evaluated in order
	Workers  int       // parallel ratio evaluations; <=1 runs sequentially
}

func (c Config) Validate() error {
	if c.Ec <= 0 {
		return fmt.Errorf("sweep: Ec must be positive, got %f", c.Ec)
	}
	if c.N < 1 {
		return fmt.Errorf("sweep: N must be at least 1, got %d", c.N)
	}
	if dim := 2*c.N + 1; dim <= anharmonicityLevels {
		return fmt.Errorf("sweep: charge basis dimension %d must exceed the %d levels extracted per point", dim, anharmonicityLevels)
	}
	if c.NgPoints < 2 {
		return fmt.Errorf("sweep: need at least 2 ng points, got %d", c.NgPoints)
	}
	if len(c.Ratios) == 0 {
		return fmt.Errorf("sweep: empty ratio sequence")
	}
	for i, r := range c.Ratios {
		if r <= 0 {
			return fmt.Errorf("sweep: ratio %d must be positive, got %f", i, r)
		}
	}
	return nil
}

// Point is the sweep output for one Ej/Ec ratio. All energies are in GHz.
type Point struct {
	Ratio         float64
	Frequency     float64 // f01 at ng=0
	Anharmonicity float64 // f12 - f01 at ng=0
	Dispersion    float64 // peak-to-peak f01 over the ng sweep
}

// Result is the full sweep output, index-aligned with Config.Ratios.
type Result struct {
	Points  []Point
	Elapsed time.Duration
}

func (r *Result) Ratios() []float64 {
	return r.collect(func(p Point) float64 { return p.Ratio })
}

func (r *Result) Frequencies() []float64 {
	return r.collect(func(p Point) float64 { return p.Frequency })
}

func (r *Result) Anharmonicities() []float64 {
	return r.collect(func(p Point) float64 { return p.Anharmonicity })
}

func (r *Result) Dispersions() []float64 {
	return r.collect(func(p Point) float64 { return p.Dispersion })
}

func (r *Result) collect(f func(Point) float64) []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = f(p)
	}
	return out
}

// Observer receives completed sweep points. Notification order follows
// completion, not ratio order; correctness never depends on observers.
type Observer interface {
	OnPoint(p Point)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(Point)

func (f ObserverFunc) OnPoint(p Point) { f(p) }
