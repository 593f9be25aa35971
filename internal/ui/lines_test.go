package ui

import (
	"slices"
	"testing"

	"alife/pkg/sims/langton"
)

func TestPanelLines(t *testing.T) {
	sim := langton.NewSimulation(10, 10)
	if err := sim.Initialize(1); err != nil {
		t.Fatal(err)
	}
	if err := sim.RunStep(); err != nil {
		t.Fatal(err)
	}
	lines := PanelLines(sim, false)
	for _, want := range []string{"Langton", "Step: 1", "Population: 1", "Agents: 1", "Status: running", "Ant (right)", "  X: 6"} {
		if !slices.Contains(lines, want) {
			t.Fatalf("missing %q in %q", want, lines)
		}
	}
	if got := PanelLines(sim, true); !slices.Contains(got, "Status: paused") {
		t.Fatalf("paused status missing: %q", got)
	}
}

func TestPanelLinesNil(t *testing.T) {
	if got := PanelLines(nil, false); len(got) != 1 {
		t.Fatalf("unexpected lines %q", got)
	}
}
