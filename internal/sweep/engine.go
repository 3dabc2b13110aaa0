package sweep

import (
	"context"
	"sync"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/qsweep/internal/qubit"
)

// Levels needed per diagonalization: three at ng=0 for the anharmonicity,
// two per point of the ng sweep for the dispersion.
const (
	anharmonicityLevels = 3
	dispersionLevels    = 2
)

// Engine runs Ej/Ec sweeps. Each ratio is an independent computation;
// observers are the only shared state and are guarded internally.
type Engine struct {
	mu        sync.Mutex
	observers []Observer
}

func New() *Engine {
	return &Engine{}
}

func (e *Engine) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

// Run executes the full sweep and returns one Point per configured ratio,
// index-aligned with cfg.Ratios. Any per-point failure aborts the whole
// sweep; there is no partial output.
func (e *Engine) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	ngGrid := floats.Span(make([]float64, cfg.NgPoints), 0, 1)
	points := make([]Point, len(cfg.Ratios))

	if cfg.Workers > 1 {
		if err := e.runParallel(ctx, cfg, ngGrid, points); err != nil {
			return nil, err
		}
	} else {
		for i, ratio := range cfg.Ratios {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			p, err := evaluate(cfg, ratio, ngGrid)
			if err != nil {
				return nil, err
			}
			points[i] = p
			e.notify(p)
		}
	}

	return &Result{Points: points, Elapsed: time.Since(start)}, nil
}

// evaluate computes one sweep point. The Josephson term is built once per
// ratio and reused across the whole ng sweep; only the charging diagonal
// changes with ng.
func evaluate(cfg Config, ratio float64, ngGrid []float64) (Point, error) {
	tr := qubit.New(cfg.Ec, ratio*cfg.Ec, cfg.N)
	josephson := tr.JosephsonTerm()

	levels, err := qubit.LowestLevels(tr.HamiltonianWith(josephson, 0), anharmonicityLevels)
	if err != nil {
		return Point{}, &PointError{Ratio: ratio, Wrapped: err}
	}
	f01 := levels[1] - levels[0]
	f12 := levels[2] - levels[1]

	freqs := make([]float64, len(ngGrid))
	for i, ng := range ngGrid {
		pair, err := qubit.LowestLevels(tr.HamiltonianWith(josephson, ng), dispersionLevels)
		if err != nil {
			return Point{}, &PointError{Ratio: ratio, Ng: ng, Wrapped: err}
		}
		freqs[i] = pair[1] - pair[0]
	}

	return Point{
		Ratio:         ratio,
		Frequency:     f01,
		Anharmonicity: f12 - f01,
		Dispersion:    floats.Max(freqs) - floats.Min(freqs),
	}, nil
}

func (e *Engine) notify(p Point) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, o := range e.observers {
		o.OnPoint(p)
	}
}
