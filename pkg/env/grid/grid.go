// Package grid implements a toroidal occupancy grid where each cell holds at
// most one entity.
package grid

import (
	"fmt"
	"reflect"

	"alife/pkg/core"
)

// Environment is a W×H toroidal grid of entity references plus the
// collection of placed entities. Every entity in the collection occupies
// exactly one cell and every occupied cell's entity is in the collection.
//
// Locating an entity scans the whole grid; there is no reverse index.
type Environment struct {
	w, h     int
	cells    []core.Entity
	entities []core.Entity
}

// New returns an empty grid. Non-positive dimensions are raised to 1.
func New(w, h int) *Environment {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Environment{w: w, h: h, cells: make([]core.Entity, w*h)}
}

// Size returns the grid dimensions.
func (e *Environment) Size() core.Size { return core.Size{W: e.w, H: e.h} }

func (e *Environment) wrap(x, y int) (int, int) {
	x = (x%e.w + e.w) % e.w
	y = (y%e.h + e.h) % e.h
	return x, y
}

// Occupant returns the entity at the wrapped coordinates, or nil.
func (e *Environment) Occupant(x, y int) core.Entity {
	x, y = e.wrap(x, y)
	return e.cells[y*e.w+x]
}

// State returns a [y][x] projection holding each occupant's kind, or "" for
// empty cells.
func (e *Environment) State() [][]string {
	rows := make([][]string, e.h)
	for y := range rows {
		row := make([]string, e.w)
		for x := range row {
			if ent := e.cells[y*e.w+x]; ent != nil {
				row[x] = ent.Kind()
			}
		}
		rows[y] = row
	}
	return rows
}

// Snapshot marks occupied cells with 1 and lists every entity as an agent.
func (e *Environment) Snapshot() core.Snapshot {
	snap := core.Snapshot{
		Size:   e.Size(),
		Cells:  make([]uint8, len(e.cells)),
		Agents: make([]core.Agent, 0, len(e.entities)),
	}
	for i, ent := range e.cells {
		if ent == nil {
			continue
		}
		snap.Cells[i] = 1
		snap.Agents = append(snap.Agents, core.Agent{Kind: ent.Kind(), X: i % e.w, Y: i / e.w})
	}
	return snap
}

// Update does nothing; the occupancy grid has no autonomous dynamics.
func (e *Environment) Update() {}

// Entities returns a copy of the entity collection in insertion order.
func (e *Environment) Entities() ([]core.Entity, error) {
	return e.placed(), nil
}

func (e *Environment) placed() []core.Entity {
	return append([]core.Entity(nil), e.entities...)
}

// Len returns the number of placed entities.
func (e *Environment) Len() int { return len(e.entities) }

// AddEntity places ent at the wrapped coordinates.
func (e *Environment) AddEntity(ent core.Entity, x, y int) error {
	if ent == nil {
		return fmt.Errorf("add entity: nil: %w", core.ErrInvalidEntity)
	}
	if reflect.TypeOf(ent).Kind() != reflect.Pointer {
		return fmt.Errorf("add entity: %T is not a pointer: %w", ent, core.ErrInvalidEntity)
	}
	x, y = e.wrap(x, y)
	if e.cells[y*e.w+x] != nil {
		return fmt.Errorf("add entity at (%d, %d): %w", x, y, core.ErrCellOccupied)
	}
	if e.indexOf(ent) >= 0 {
		return fmt.Errorf("add entity at (%d, %d): entity already placed", x, y)
	}
	e.cells[y*e.w+x] = ent
	e.entities = append(e.entities, ent)
	return nil
}

// RemoveEntity removes ent from the collection and clears its cell.
func (e *Environment) RemoveEntity(ent core.Entity) error {
	i := e.indexOf(ent)
	if i < 0 {
		return fmt.Errorf("remove entity: %w", core.ErrEntityNotFound)
	}
	e.entities = append(e.entities[:i], e.entities[i+1:]...)
	for idx, occupant := range e.cells {
		if occupant == ent {
			e.cells[idx] = nil
			break
		}
	}
	return nil
}

// Locate returns the cell holding ent.
func (e *Environment) Locate(ent core.Entity) (core.Point, error) {
	if ent != nil {
		for idx, occupant := range e.cells {
			if occupant == ent {
				return core.Point{X: idx % e.w, Y: idx / e.w}, nil
			}
		}
	}
	return core.Point{}, fmt.Errorf("locate entity: %w", core.ErrEntityNotFound)
}

// Move displaces ent by (dx, dy) with toroidal wrap. An occupied destination,
// including the mover's own cell, leaves the grid untouched and reports
// Success false.
func (e *Environment) Move(ent core.Entity, dx, dy int) (core.Outcome, error) {
	from, err := e.Locate(ent)
	if err != nil {
		return core.Outcome{}, fmt.Errorf("move: %w", err)
	}
	nx, ny := e.wrap(from.X+dx, from.Y+dy)
	dst := ny*e.w + nx
	if e.cells[dst] != nil {
		return core.Outcome{Success: false, Position: from, Message: "target cell is occupied"}, nil
	}
	e.cells[from.Y*e.w+from.X] = nil
	e.cells[dst] = ent
	return core.Outcome{Success: true, Position: core.Point{X: nx, Y: ny}}, nil
}

// Neighbors returns the occupants of the eight cells around (x, y) in
// core.MooreOffsets order. Empty cells are nil.
func (e *Environment) Neighbors(x, y int) [8]core.Entity {
	var out [8]core.Entity
	for i, off := range core.MooreOffsets {
		out[i] = e.Occupant(x+off.X, y+off.Y)
	}
	return out
}

// Interact dispatches a core.Move or core.Neighbors request.
func (e *Environment) Interact(ent core.Entity, a core.Action) (core.Outcome, error) {
	switch act := a.(type) {
	case core.Move:
		return e.Move(ent, act.DX, act.DY)
	case core.Neighbors:
		x, y := e.wrap(act.X, act.Y)
		n := e.Neighbors(x, y)
		return core.Outcome{Success: true, Position: core.Point{X: x, Y: y}, Neighbors: n[:]}, nil
	default:
		return core.Outcome{}, fmt.Errorf("interact %T: %w", a, core.ErrInvalidAction)
	}
}

func (e *Environment) indexOf(ent core.Entity) int {
	for i, existing := range e.entities {
		if existing == ent {
			return i
		}
	}
	return -1
}
