package session

import (
	"context"
	"sync"

	"github.com/san-kum/binarylab/internal/metrics"
	"github.com/san-kum/binarylab/internal/orbit"
)

// Sweep runs one headless session per mass ratio concurrently. Each session
// gets its own metrics from newMetrics. Results are in the order of ratios.
func Sweep(ctx context.Context, base orbit.Params, frame orbit.Frame, ratios []float64, dt float64, steps int, newMetrics func() []metrics.Metric) ([]*Result, error) {
	results := make([]*Result, len(ratios))
	errs := make([]error, len(ratios))

	var wg sync.WaitGroup
	for i, q := range ratios {
		wg.Add(1)
		go func(idx int, q float64) {
			defer wg.Done()

			p := base
			p.MassRatio = q

			s, err := New(p, frame, 1)
			if err != nil {
				errs[idx] = err
				return
			}
			if newMetrics != nil {
				for _, m := range newMetrics() {
					s.AddMetric(m)
				}
			}

			results[idx], errs[idx] = s.Run(ctx, dt, steps)
		}(i, q)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
