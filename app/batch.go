package app

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"esscalc/domain/core"
	"esscalc/domain/sample"
	"esscalc/internal/analysis"
)

// BatchCompleteness profiles many variables at once, bounding concurrency
// with a weighted semaphore. The underlying computation is pure and
// stateless, so variables can be profiled in parallel without coordination;
// results are returned in input order.
//
// The first error encountered aborts the batch.
func BatchCompleteness(ctx context.Context, maxConcurrent int64, vars []sample.Variable) ([]sample.Completeness, error) {
	if maxConcurrent < 1 {
		return nil, core.NewInvalidInputErrorf("max concurrent must be at least 1, got %d", maxConcurrent)
	}

	sem := semaphore.NewWeighted(maxConcurrent)
	results := make([]sample.Completeness, len(vars))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i, v := range vars {
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			break
		}

		wg.Add(1)
		go func(i int, v sample.Variable) {
			defer wg.Done()
			defer sem.Release(1)

			completeness, err := analysis.EffectiveSampleSize(v)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			results[i] = completeness
		}(i, v)
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
