package ensemble

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// AddFunc feeds realisation i into the shard e.
type AddFunc func(ctx context.Context, e *Ensemble, i int) error

// Accumulate feeds realisations 0..n-1 into independent shard Ensembles on
// up to workers goroutines (workers <= 0: GOMAXPROCS) and merges the shards
// in order. Worker w handles i = w, w+workers, ...; each shard is built with
// the same roi and opts, so the merged result equals feeding all
// realisations into one Ensemble.
//
// The first error (or ctx cancellation) stops the remaining workers and is
// returned; no partial result is returned in that case.
func Accumulate(ctx context.Context, roi []int, n, workers int, add AddFunc, opts ...Option) (*Ensemble, error) {
	out, err := New(roi, opts...)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return out, nil
	}
	if add == nil {
		return nil, fmt.Errorf("ensemble.Accumulate: nil AddFunc: %w", ErrNilField)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, n)
	log := gatherOptions(opts).logger

	shards := make([]*Ensemble, workers)
	for w := range shards {
		shards[w], _ = New(roi, opts...)
	}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w // per-iteration copy (go < 1.22 loop semantics)
		g.Go(func() error {
			start := time.Now()
			count := 0
			for i := w; i < n; i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := add(gctx, shards[w], i); err != nil {
					return fmt.Errorf("ensemble.Accumulate: realisation %d: %w", i, err)
				}
				count++
			}
			log.Debug("shard done",
				"shard", w,
				"realisations", count,
				"statistic", shards[w].Statistic().String(),
				"duration", time.Since(start))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn("accumulate aborted", "error", err)
		return nil, err
	}

	for w, s := range shards {
		if err := out.Merge(s); err != nil {
			return nil, fmt.Errorf("ensemble.Accumulate: shard %d: %w", w, err)
		}
	}
	log.Info("accumulate done", "realisations", n, "shards", workers, "statistic", out.Statistic().String())

	return out, nil
}
