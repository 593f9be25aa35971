package langton

import (
	"errors"
	"slices"
	"testing"

	"alife/pkg/core"
)

func TestFirstStepFlipsTurnsThenMoves(t *testing.T) {
	env := New(10, 10)
	if ant := env.Ant(); ant.X != 5 || ant.Y != 5 || ant.Heading != core.Up {
		t.Fatalf("unexpected start %+v", ant)
	}

	env.Update()

	if !env.Black(5, 5) {
		t.Fatalf("expected (5,5) to be black")
	}
	ant := env.Ant()
	if ant.X != 6 || ant.Y != 5 || ant.Heading != core.Right {
		t.Fatalf("expected ant at (6,5) heading right, got %+v", ant)
	}
	if env.BlackCount() != 1 {
		t.Fatalf("expected exactly one black cell, got %d", env.BlackCount())
	}
}

func TestBlackCellTurnsLeft(t *testing.T) {
	env := New(10, 10)
	env.grid.Set(5, 5, 1)

	env.Update()

	if env.Black(5, 5) {
		t.Fatalf("expected (5,5) to turn white")
	}
	ant := env.Ant()
	if ant.X != 4 || ant.Y != 5 || ant.Heading != core.Left {
		t.Fatalf("expected ant at (4,5) heading left, got %+v", ant)
	}
}

func TestMoveWraps(t *testing.T) {
	env := New(4, 4)
	env.Place(0, 0, core.Left)
	// White cell: turn right to Up, then step off the top edge.
	env.Update()
	ant := env.Ant()
	if ant.X != 0 || ant.Y != 3 || ant.Heading != core.Up {
		t.Fatalf("expected wrap to (0,3) heading up, got %+v", ant)
	}
}

func TestFirstFourStepsCloseASquare(t *testing.T) {
	env := New(10, 10)
	for i := 0; i < 4; i++ {
		env.Update()
	}
	ant := env.Ant()
	if ant.X != 5 || ant.Y != 5 || ant.Heading != core.Up {
		t.Fatalf("expected ant back at (5,5) heading up, got %+v", ant)
	}
	for _, p := range [][2]int{{5, 5}, {6, 5}, {6, 6}, {5, 6}} {
		if !env.Black(p[0], p[1]) {
			t.Fatalf("expected (%d,%d) black", p[0], p[1])
		}
	}
}

func TestLongRunProducesHighway(t *testing.T) {
	sim := NewSimulation(100, 100)
	if err := sim.Initialize(0); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	for i := 0; i < 10000; i++ {
		if err := sim.RunStep(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if sim.IsComplete() {
			t.Fatalf("langton should never complete")
		}
	}
	if got := sim.Environment().BlackCount(); got <= 500 {
		t.Fatalf("expected more than 500 black cells, got %d", got)
	}
}

func TestResetMatchesFreshConstruction(t *testing.T) {
	sim := NewSimulation(20, 20)
	if err := sim.Initialize(0); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	for i := 0; i < 250; i++ {
		_ = sim.RunStep()
	}
	if err := sim.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if sim.Step() != 0 {
		t.Fatalf("expected step 0 after reset, got %d", sim.Step())
	}
	fresh := New(20, 20)
	got := sim.State()
	want := fresh.Snapshot()
	if !slices.Equal(got.Cells, want.Cells) || !slices.Equal(got.Agents, want.Agents) {
		t.Fatalf("reset state differs from a fresh environment")
	}
}

func TestStateIsACopy(t *testing.T) {
	env := New(5, 5)
	rows, _ := env.State()
	rows[2][2] = true
	if env.Black(2, 2) {
		t.Fatalf("mutating State rows leaked into the grid")
	}
}

func TestEntityOperationsUnsupported(t *testing.T) {
	env := New(3, 3)
	if _, err := env.Entities(); !errors.Is(err, core.ErrUnsupportedOperation) {
		t.Fatalf("Entities: expected ErrUnsupportedOperation, got %v", err)
	}
	if err := env.AddEntity(nil, 0, 0); !errors.Is(err, core.ErrUnsupportedOperation) {
		t.Fatalf("AddEntity: expected ErrUnsupportedOperation, got %v", err)
	}
	if err := env.RemoveEntity(nil); !errors.Is(err, core.ErrUnsupportedOperation) {
		t.Fatalf("RemoveEntity: expected ErrUnsupportedOperation, got %v", err)
	}
	if _, err := env.Interact(nil, core.Neighbors{}); !errors.Is(err, core.ErrUnsupportedOperation) {
		t.Fatalf("Interact: expected ErrUnsupportedOperation, got %v", err)
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Lookup("langton")
	if !ok {
		t.Fatalf("langton not registered")
	}
	sim := factory(map[string]string{"w": "12"})
	if sim.Size() != (core.Size{W: 12, H: 100}) {
		t.Fatalf("unexpected size %+v", sim.Size())
	}
}
