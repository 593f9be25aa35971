package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is a cell coordinate.
type Point struct {
	X int
	Y int
}

// Heading is a cardinal direction. Turning right adds one, turning left
// subtracts one, both modulo four.
type Heading uint8

const (
	Up Heading = iota
	Right
	Down
	Left
)

// TurnRight returns the heading 90 degrees clockwise.
func (h Heading) TurnRight() Heading { return (h + 1) % 4 }

// TurnLeft returns the heading 90 degrees counter-clockwise.
func (h Heading) TurnLeft() Heading { return (h + 3) % 4 }

// Delta returns the unit step for the heading. Up decrements y.
func (h Heading) Delta() (dx, dy int) {
	switch h % 4 {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	default:
		return -1, 0
	}
}

func (h Heading) String() string {
	switch h % 4 {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "left"
	}
}

// Simulation drives an Environment through discrete steps.
//
// Initialize zeroes the step counter and seeds the initial state; a zero seed
// selects a fresh, non-reproducible seed where the model uses randomness.
// Reset is equivalent to rebuilding the environment and initializing again
// with the last seed. Errors from the environment propagate out of RunStep
// unchanged.
type Simulation interface {
	Name() string
	Size() Size
	Initialize(seed int64) error
	RunStep() error
	IsComplete() bool
	Reset() error
	Step() int
	State() State
}

// Factory constructs a Simulation using an optional configuration map.
type Factory func(cfg map[string]string) Simulation

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := sims[name]
	return f, ok
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
