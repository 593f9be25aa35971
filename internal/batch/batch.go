// Package batch runs independent simulations in parallel.
package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"alife/internal/runner"
	"alife/internal/telemetry"
	"alife/pkg/core"
)

// Factory builds a fresh simulation for one run.
type Factory func() (core.Simulation, error)

// Options configures a batch.
type Options struct {
	Runs    int
	Workers int
	// Seed of run 0; run i uses Seed+i. Zero gives every run a random seed.
	Seed        int64
	Steps       int
	SampleEvery int
	Output      *telemetry.OutputManager
}

// SeedFor returns the seed used for run i.
func (o Options) SeedFor(i int) int64 {
	if o.Seed == 0 {
		return 0
	}
	return o.Seed + int64(i)
}

// Run executes opts.Runs simulations with at most opts.Workers in flight.
// Each simulation is built and stepped by a single goroutine. Results are
// ordered by run index. The first error cancels the remaining runs.
func Run(ctx context.Context, newSim Factory, opts Options) ([]runner.Result, error) {
	if opts.Runs < 1 {
		return nil, nil
	}
	workers := max(opts.Workers, 1)

	results := make([]runner.Result, opts.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < opts.Runs; i++ {
		g.Go(func() error {
			sim, err := newSim()
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			res, err := runner.Run(ctx, sim, runner.Options{
				Run:         i,
				Seed:        opts.SeedFor(i),
				Steps:       opts.Steps,
				SampleEvery: opts.SampleEvery,
				Output:      opts.Output,
			})
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
