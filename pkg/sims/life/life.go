// Package life implements Conway's Game of Life on a toroidal grid.
package life

import (
	"fmt"

	"alife/pkg/core"
)

// Environment is a toroidal grid of live and dead cells.
type Environment struct {
	w, h int
	cur  []uint8
	nxt  []uint8
}

// New returns an all-dead environment with the provided dimensions.
func New(w, h int) *Environment {
	g := core.NewGrid(w, h)
	return &Environment{w: g.W, h: g.H, cur: g.Cells(), nxt: make([]uint8, len(g.Cells()))}
}

// Size returns the grid dimensions.
func (e *Environment) Size() core.Size { return core.Size{W: e.w, H: e.h} }

func (e *Environment) index(x, y int) int {
	x = (x%e.w + e.w) % e.w
	y = (y%e.h + e.h) % e.h
	return y*e.w + x
}

// Alive reports the state of the cell at the wrapped coordinates.
func (e *Environment) Alive(x, y int) bool { return e.cur[e.index(x, y)] == 1 }

// Set marks the cell at the wrapped coordinates alive or dead.
func (e *Environment) Set(x, y int, alive bool) {
	var v uint8
	if alive {
		v = 1
	}
	e.cur[e.index(x, y)] = v
}

// Load replaces the grid with rows indexed [y][x]. Rows shorter than the
// grid leave the remaining cells dead.
func (e *Environment) Load(rows [][]bool) {
	for i := range e.cur {
		e.cur[i] = 0
	}
	for y := 0; y < e.h && y < len(rows); y++ {
		for x := 0; x < e.w && x < len(rows[y]); x++ {
			e.Set(x, y, rows[y][x])
		}
	}
}

// Seed sets each cell alive independently with probability density.
func (e *Environment) Seed(rng *core.RNG, density float64) {
	core.FillBernoulli(rng.Source(), e.cur, density)
}

// State returns a [y][x] copy of the grid.
func (e *Environment) State() [][]bool {
	rows := make([][]bool, e.h)
	for y := range rows {
		row := make([]bool, e.w)
		for x := range row {
			row[x] = e.cur[y*e.w+x] == 1
		}
		rows[y] = row
	}
	return rows
}

// LiveCount returns the number of live cells.
func (e *Environment) LiveCount() int {
	n := 0
	for _, v := range e.cur {
		n += int(v)
	}
	return n
}

// Snapshot copies the cells; Game of Life has no agents.
func (e *Environment) Snapshot() core.Snapshot {
	return core.Snapshot{Size: e.Size(), Cells: append([]uint8(nil), e.cur...)}
}

// LiveNeighbors counts live cells in the toroidal Moore neighbourhood of (x, y).
func (e *Environment) LiveNeighbors(x, y int) int {
	w, h := e.w, e.h
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := ((x+dx)%w + w) % w
			ny := ((y+dy)%h + h) % h
			neighbors += int(e.cur[ny*w+nx])
		}
	}
	return neighbors
}

// Update advances the grid by one generation. Every cell is computed from the
// previous generation and the new grid replaces the old one at once.
func (e *Environment) Update() {
	w, h := e.w, e.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := e.LiveNeighbors(x, y)
			idx := y*w + x
			alive := e.cur[idx] == 1
			e.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				e.nxt[idx] = 1
			}
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
}

// Entities is unsupported; Game of Life does not model entities.
func (e *Environment) Entities() ([]core.Entity, error) {
	return nil, fmt.Errorf("life: entities: %w", core.ErrUnsupportedOperation)
}

// AddEntity is unsupported.
func (e *Environment) AddEntity(core.Entity, int, int) error {
	return fmt.Errorf("life: add entity: %w", core.ErrUnsupportedOperation)
}

// RemoveEntity is unsupported.
func (e *Environment) RemoveEntity(core.Entity) error {
	return fmt.Errorf("life: remove entity: %w", core.ErrUnsupportedOperation)
}

// Interact is unsupported.
func (e *Environment) Interact(core.Entity, core.Action) (core.Outcome, error) {
	return core.Outcome{}, fmt.Errorf("life: interact: %w", core.ErrUnsupportedOperation)
}
