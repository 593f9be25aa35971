package drift

import (
	"slices"
	"testing"

	"alife/pkg/core"
	"alife/pkg/env/grid"
)

func single(t *testing.T, cfg Config) (*grid.Simulation, *Drifter) {
	t.Helper()
	cfg.Width, cfg.Height, cfg.Spacing = 5, 5, 10
	sim := NewSimulation(cfg)
	if err := sim.Initialize(1); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	ents, _ := sim.Environment().Entities()
	if len(ents) != 1 {
		t.Fatalf("expected one drifter, got %d", len(ents))
	}
	return sim, ents[0].(*Drifter)
}

func TestDrifterMovesAndPays(t *testing.T) {
	sim, d := single(t, Config{Energy: 10, Rate: 0.5, Cost: 1})
	if err := sim.RunStep(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if got := d.Energy(); got != 9.5 {
		t.Fatalf("energy %v, expected 9.5", got)
	}
	dx, dy := d.Heading().Delta()
	want := core.Point{X: (dx + 5) % 5, Y: (dy + 5) % 5}
	if at, err := sim.Environment().Locate(d); err != nil || at != want {
		t.Fatalf("drifter at %+v (%v), expected %+v", at, err, want)
	}
}

func TestExhaustedDrifterIsReaped(t *testing.T) {
	sim, _ := single(t, Config{Energy: 1, Cost: 1})
	if err := sim.RunStep(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if sim.Environment().Len() != 0 || sim.Deaths() != 1 {
		t.Fatalf("expected drifter reaped, len=%d deaths=%d", sim.Environment().Len(), sim.Deaths())
	}
}

func TestDrifterSplits(t *testing.T) {
	sim, d := single(t, Config{Energy: 10, Cost: 1, Split: 8})
	if err := sim.RunStep(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if sim.Births() != 1 || sim.Environment().Len() != 2 {
		t.Fatalf("expected one birth, births=%d len=%d", sim.Births(), sim.Environment().Len())
	}
	if got := d.Energy(); got != 4.5 {
		t.Fatalf("parent energy %v, expected 4.5", got)
	}
	ents, _ := sim.Environment().Entities()
	child := ents[1].(*Drifter)
	if child.Heading() != d.Heading().TurnRight() {
		t.Fatalf("child heading %v, expected %v", child.Heading(), d.Heading().TurnRight())
	}
}

func TestSameSeedSameRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Steps = 10
	run := func() core.State {
		sim := NewSimulation(cfg)
		if err := core.Run(sim, 11); err != nil {
			t.Fatalf("run: %v", err)
		}
		return sim.State()
	}
	a, b := run(), run()
	if a.Step != 10 || !a.Complete {
		t.Fatalf("expected a complete 10 step run, got step %d", a.Step)
	}
	if a.Population() == 0 {
		t.Fatalf("expected survivors after 10 steps")
	}
	if !slices.Equal(a.Cells, b.Cells) {
		t.Fatalf("same seed produced different runs")
	}
}

func TestLatticePopulation(t *testing.T) {
	sim := NewSimulation(DefaultConfig())
	if err := sim.Initialize(2); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if got := sim.State().Population(); got != 64 {
		t.Fatalf("expected 64 drifters on an 8x8 lattice, got %d", got)
	}
	if err := sim.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got := sim.State().Population(); got != 64 || sim.Step() != 0 {
		t.Fatalf("reset: population %d step %d", got, sim.Step())
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{"spacing": "3", "cost": "0.25", "steps": "0", "rate": "-1"})
	if cfg.Spacing != 3 || cfg.Cost != 0.25 || cfg.Steps != 0 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Rate != DefaultConfig().Rate {
		t.Fatalf("negative rate should be ignored, got %v", cfg.Rate)
	}
	params := NewSimulation(cfg).Parameters().Flatten()
	if params["spacing"] != "3" {
		t.Fatalf("parameters missing spacing: %v", params)
	}
}

func TestRegistered(t *testing.T) {
	if _, ok := core.Lookup("drift"); !ok {
		t.Fatalf("drift not registered")
	}
}
