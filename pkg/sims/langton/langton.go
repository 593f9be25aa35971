// Package langton implements Langton's Ant on a toroidal grid.
package langton

import (
	"fmt"

	"alife/pkg/core"
)

// Ant is the single agent walking the grid.
type Ant struct {
	X, Y    int
	Heading core.Heading
}

// Advance moves the ant one cell along its heading, wrapping on a w×h torus.
func (a *Ant) Advance(w, h int) {
	dx, dy := a.Heading.Delta()
	a.X = ((a.X+dx)%w + w) % w
	a.Y = ((a.Y+dy)%h + h) % h
}

// Environment is a grid of black (1) and white (0) cells plus one ant.
type Environment struct {
	grid *core.Grid
	ant  Ant
}

// New returns an all-white grid with the ant at its centre heading Up.
func New(w, h int) *Environment {
	g := core.NewGrid(w, h)
	return &Environment{grid: g, ant: Ant{X: g.W / 2, Y: g.H / 2, Heading: core.Up}}
}

// Size returns the grid dimensions.
func (e *Environment) Size() core.Size { return e.grid.Size() }

// Ant returns a copy of the ant.
func (e *Environment) Ant() Ant { return e.ant }

// Place moves the ant to the wrapped coordinates and sets its heading.
func (e *Environment) Place(x, y int, h core.Heading) {
	x, y = e.grid.Wrap(x, y)
	e.ant = Ant{X: x, Y: y, Heading: h % 4}
}

// Black reports whether the cell at the wrapped coordinates is black.
func (e *Environment) Black(x, y int) bool { return e.grid.Get(x, y) != 0 }

// BlackCount returns the number of black cells.
func (e *Environment) BlackCount() int { return e.grid.Count() }

// Update applies one ant step. On a black cell the cell turns white and the
// ant turns left; on a white cell the cell turns black and the ant turns
// right. The ant then moves one cell along its new heading.
func (e *Environment) Update() {
	a := &e.ant
	if e.grid.Get(a.X, a.Y) != 0 {
		e.grid.Set(a.X, a.Y, 0)
		a.Heading = a.Heading.TurnLeft()
	} else {
		e.grid.Set(a.X, a.Y, 1)
		a.Heading = a.Heading.TurnRight()
	}
	a.Advance(e.grid.W, e.grid.H)
}

// State returns a [y][x] copy of the grid and the ant.
func (e *Environment) State() ([][]bool, Ant) {
	return e.grid.Rows(), e.ant
}

// Snapshot copies the cells and reports the ant as an oriented agent.
func (e *Environment) Snapshot() core.Snapshot {
	return core.Snapshot{
		Size:  e.Size(),
		Cells: e.grid.CopyCells(),
		Agents: []core.Agent{{
			Kind:     "ant",
			X:        e.ant.X,
			Y:        e.ant.Y,
			Heading:  e.ant.Heading,
			Oriented: true,
		}},
	}
}

// Entities is unsupported; the ant is not an entity.
func (e *Environment) Entities() ([]core.Entity, error) {
	return nil, fmt.Errorf("langton: entities: %w", core.ErrUnsupportedOperation)
}

// AddEntity is unsupported.
func (e *Environment) AddEntity(core.Entity, int, int) error {
	return fmt.Errorf("langton: add entity: %w", core.ErrUnsupportedOperation)
}

// RemoveEntity is unsupported.
func (e *Environment) RemoveEntity(core.Entity) error {
	return fmt.Errorf("langton: remove entity: %w", core.ErrUnsupportedOperation)
}

// Interact is unsupported.
func (e *Environment) Interact(core.Entity, core.Action) (core.Outcome, error) {
	return core.Outcome{}, fmt.Errorf("langton: interact: %w", core.ErrUnsupportedOperation)
}
