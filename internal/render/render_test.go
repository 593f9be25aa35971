package render

import (
	"slices"
	"testing"

	"alife/pkg/core"
)

func TestASCIIDrawsCellsAndAnt(t *testing.T) {
	snap := core.Snapshot{
		Size:   core.Size{W: 3, H: 2},
		Cells:  []uint8{1, 0, 0, 0, 1, 0},
		Agents: []core.Agent{{Kind: "ant", X: 2, Y: 1, Heading: core.Right, Oriented: true}},
	}
	got := ASCII(snap, '#', '.')
	want := "#..\n.#>\n"
	if got != want {
		t.Fatalf("unexpected frame:\n%q\nwant\n%q", got, want)
	}
}

func TestASCIIRejectsMismatchedCells(t *testing.T) {
	if got := ASCII(core.Snapshot{Size: core.Size{W: 2, H: 2}, Cells: []uint8{1}}, '#', '.'); got != "" {
		t.Fatalf("expected empty frame, got %q", got)
	}
}

func TestIndexedMarksOrientedAgents(t *testing.T) {
	snap := core.Snapshot{
		Size:  core.Size{W: 2, H: 2},
		Cells: []uint8{1, 0, 1, 0},
		Agents: []core.Agent{
			{Kind: "ant", X: 1, Y: 1, Oriented: true},
			{Kind: "drifter", X: 0, Y: 1},
		},
	}
	got := Indexed(snap, nil)
	want := []uint8{IndexOn, IndexOff, IndexOn, IndexAgent}
	if !slices.Equal(got, want) {
		t.Fatalf("Indexed = %v, want %v", got, want)
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{IndexOff, IndexAgent, 9}, DefaultPalette)
	agent := DefaultPalette[IndexAgent]
	if buf[4] != agent.R || buf[5] != agent.G || buf[6] != agent.B || buf[7] != agent.A {
		t.Fatalf("agent pixel = %v", buf[4:8])
	}
	// Out-of-range indices clamp to the last colour.
	if !slices.Equal(buf[8:12], buf[4:8]) {
		t.Fatalf("clamped pixel = %v", buf[8:12])
	}
}

func TestHeader(t *testing.T) {
	st := core.State{Name: "life", Step: 4, Complete: true, Snapshot: core.Snapshot{Cells: []uint8{1, 1, 0}}}
	if got := Header(st); got != "life step=4 population=2 complete" {
		t.Fatalf("unexpected header %q", got)
	}
}
