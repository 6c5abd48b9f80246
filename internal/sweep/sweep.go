// Package sweep runs batches of dispersal configurations and ranks them by
// how far their particles travel.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"bomb-abm/internal/core"
	"bomb-abm/internal/report"
	"bomb-abm/internal/sims/dispersal"
)

// Result is the outcome of one configuration.
type Result struct {
	Params  dispersal.Params
	Summary report.Summary
	Stats   dispersal.Stats
}

func (r Result) String() string {
	p := r.Params
	return fmt.Sprintf("wind=%d/%d/%d/%d fall=%d/%d/%d mean=%.2f max=%d landed=%d off-grid=%d",
		p.North, p.East, p.South, p.West, p.Up, p.Down, p.NoChange,
		r.Summary.MeanDistance, r.Summary.MaxDistance, r.Stats.Landed, r.Stats.Dropped)
}

// Wind is one N/E/S/W percentage option.
type Wind [4]int

// Fall is one Up/Down/NoChange percentage option.
type Fall [3]int

// WindPresets spans calm to strongly eastward wind.
func WindPresets() []Wind {
	return []Wind{
		{25, 25, 25, 25},
		{10, 50, 20, 20},
		{5, 75, 10, 10},
		{0, 90, 5, 5},
	}
}

// FallPresets spans buoyant to heavy particles.
func FallPresets() []Fall {
	return []Fall{
		{30, 60, 10},
		{20, 70, 10},
		{10, 80, 10},
		{0, 100, 0},
	}
}

// Combine returns every wind and fall pairing.
func Combine(winds []Wind, falls []Fall) []dispersal.Params {
	sets := make([]dispersal.Params, 0, len(winds)*len(falls))
	for _, w := range winds {
		for _, f := range falls {
			sets = append(sets, dispersal.Params{
				North: w[0], East: w[1], South: w[2], West: w[3],
				Up: f[0], Down: f[1], NoChange: f[2],
			})
		}
	}
	return sets
}

// Run evaluates each parameter set against source with base's counts and
// seed, using a pool of workers. Each run uses a single particle worker so the
// pool is the only source of parallelism. Results are ordered by mean landing
// distance, farthest first.
func Run(ctx context.Context, source *core.SourceGrid, base dispersal.Config, sets []dispersal.Params, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	for _, p := range sets {
		cfg := base
		cfg.Params = p
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	jobs := make(chan dispersal.Params)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				res := runOne(source, base, params)
				select {
				case results <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, params := range sets {
			select {
			case jobs <- params:
			case <-ctx.Done():
				return
			}
		}
	}()

	all := make([]Result, 0, len(sets))
	for res := range results {
		all = append(all, res)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Summary.MeanDistance != all[j].Summary.MeanDistance {
			return all[i].Summary.MeanDistance > all[j].Summary.MeanDistance
		}
		return all[i].String() < all[j].String()
	})
	return all, nil
}

func runOne(source *core.SourceGrid, base dispersal.Config, params dispersal.Params) Result {
	cfg := base
	cfg.Params = params
	cfg.Workers = 1
	cfg.Logger = nil
	// Params were validated up front.
	sim, _ := dispersal.New(source, cfg)
	density := sim.Run()
	return Result{
		Params:  params,
		Summary: report.Summarize(density, source.Source),
		Stats:   sim.Stats(),
	}
}
