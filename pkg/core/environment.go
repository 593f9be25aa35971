package core

// Environment is a mutable spatial container that entities are placed into
// and that advances once per simulation step.
//
// Variants that do not model entities return ErrUnsupportedOperation from
// Entities, AddEntity, RemoveEntity and Interact.
type Environment interface {
	Size() Size
	Update()
	Snapshot() Snapshot
	Entities() ([]Entity, error)
	AddEntity(e Entity, x, y int) error
	RemoveEntity(e Entity) error
	Interact(e Entity, a Action) (Outcome, error)
}

// Action is the closed set of requests an entity can make of an environment.
type Action interface {
	action()
}

// Move asks to displace the entity by (DX, DY) with toroidal wrap.
type Move struct {
	DX, DY int
}

// Neighbors asks for the eight Moore-neighbourhood occupants of (X, Y).
type Neighbors struct {
	X, Y int
}

func (Move) action()      {}
func (Neighbors) action() {}

// Outcome is the structured result of Interact. A move into an occupied cell
// reports Success false rather than an error.
type Outcome struct {
	Success   bool
	Position  Point
	Neighbors []Entity
	Message   string
}

// MooreOffsets lists the eight neighbour offsets in the order dx -1..1,
// then dy -1..1, skipping the centre.
var MooreOffsets = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Agent is a positioned marker in a snapshot, such as an entity or the ant.
type Agent struct {
	Kind     string
	X, Y     int
	Heading  Heading
	Oriented bool
}

// Snapshot is a read-only copy of an environment's cells and agents.
type Snapshot struct {
	Size   Size
	Cells  []uint8
	Agents []Agent
}

// Population counts the non-zero cells.
func (s Snapshot) Population() int {
	n := 0
	for _, v := range s.Cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// State is a Simulation snapshot: the environment plus loop counters.
type State struct {
	Name     string
	Step     int
	Complete bool
	Snapshot
}
