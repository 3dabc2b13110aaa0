package sweep

import (
	"context"
	"sync"
)

// runParallel fans ratio indexes out to a fixed worker pool. Results and
// errors land in slices indexed by ratio position, so the output order
// matches cfg.Ratios regardless of completion order.
func (e *Engine) runParallel(ctx context.Context, cfg Config, ngGrid []float64, points []Point) error {
	workers := cfg.Workers
	if workers > len(cfg.Ratios) {
		workers = len(cfg.Ratios)
	}

	jobs := make(chan int)
	errs := make([]error, len(cfg.Ratios))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				p, err := evaluate(cfg, cfg.Ratios[i], ngGrid)
				if err != nil {
					errs[i] = err
					continue
				}
				points[i] = p
				e.notify(p)
			}
		}()
	}

feed:
	for i := range cfg.Ratios {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
