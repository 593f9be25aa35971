package batch

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"alife/internal/runner"
	"alife/internal/telemetry"
	"alife/pkg/core"
	_ "alife/pkg/sims/life"
)

func lifeFactory() (core.Simulation, error) {
	return runner.New("life", map[string]string{"w": "12", "h": "12", "generations": "6"})
}

func TestRunOrdersResults(t *testing.T) {
	results, err := Run(context.Background(), lifeFactory, Options{Runs: 5, Workers: 2, Seed: 100})
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	for i, res := range results {
		if res.Run != i || res.Seed != int64(100+i) {
			t.Fatalf("result %d has run=%d seed=%d", i, res.Run, res.Seed)
		}
		if !res.Final.Complete {
			t.Fatalf("run %d did not complete", i)
		}
	}
}

func TestSeededBatchIsReproducible(t *testing.T) {
	a, err := Run(context.Background(), lifeFactory, Options{Runs: 3, Workers: 3, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(context.Background(), lifeFactory, Options{Runs: 3, Workers: 1, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if !slices.Equal(a[i].Final.Cells, b[i].Final.Cells) {
			t.Fatalf("run %d differs between worker counts", i)
		}
	}
}

func TestRunWritesSummaries(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "batch")
	om, err := telemetry.NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Run(context.Background(), lifeFactory, Options{Runs: 4, Workers: 4, Seed: 1, Output: om}); err != nil {
		t.Fatalf("batch: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}
	summaries, err := telemetry.ReadSummaries(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 4 {
		t.Fatalf("expected 4 summaries, got %d", len(summaries))
	}
}

func TestRunStopsOnFactoryError(t *testing.T) {
	errNoSim := errors.New("no sim")
	_, err := Run(context.Background(), func() (core.Simulation, error) { return nil, errNoSim }, Options{Runs: 3, Workers: 2})
	if !errors.Is(err, errNoSim) {
		t.Fatalf("expected factory error, got %v", err)
	}
}

func TestSeedFor(t *testing.T) {
	if (Options{}).SeedFor(3) != 0 {
		t.Fatalf("unseeded batch should give random seeds")
	}
	if (Options{Seed: 10}).SeedFor(3) != 13 {
		t.Fatalf("expected seed 13")
	}
}
