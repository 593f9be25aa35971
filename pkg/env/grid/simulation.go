package grid

import (
	"fmt"

	"alife/pkg/core"
)

// Populator places the initial entities into a freshly built environment.
// seed is the value passed to Initialize.
type Populator func(env *Environment, seed int64) error

// Options configures a grid Simulation.
type Options struct {
	// Name identifies the simulation; defaults to "grid".
	Name string
	// MaxSteps stops the run after that many steps. Zero never completes.
	MaxSteps int
	Populate Populator
	// Params describes the model configuration; optional.
	Params func() core.ParameterSnapshot
}

// Simulation drives an Environment. Each step regenerates owned resources,
// runs entity hooks, places offspring, removes dead organisms and finally
// updates the environment.
type Simulation struct {
	core.Lifecycle

	w, h int
	opts Options
	env  *Environment

	births int
	deaths int
}

// NewSimulation returns a simulation over an empty w×h grid.
func NewSimulation(w, h int, opts Options) *Simulation {
	if opts.Name == "" {
		opts.Name = "grid"
	}
	env := New(w, h)
	return &Simulation{w: env.w, h: env.h, opts: opts, env: env}
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return s.opts.Name }

// Size returns the grid dimensions.
func (s *Simulation) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Environment exposes the current environment.
func (s *Simulation) Environment() *Environment { return s.env }

// Births returns the number of offspring placed since the last Initialize.
func (s *Simulation) Births() int { return s.births }

// Deaths returns the number of organisms removed since the last Initialize.
func (s *Simulation) Deaths() int { return s.deaths }

// Initialize rebuilds the environment and runs the populator.
func (s *Simulation) Initialize(seed int64) error {
	s.Start(seed)
	return s.rebuild()
}

// Reset rebuilds the environment with the last seed.
func (s *Simulation) Reset() error {
	s.Restart()
	return s.rebuild()
}

func (s *Simulation) rebuild() error {
	s.env = New(s.w, s.h)
	s.births, s.deaths = 0, 0
	if s.opts.Populate == nil {
		return nil
	}
	if err := s.opts.Populate(s.env, s.Seed()); err != nil {
		return fmt.Errorf("populate %s: %w", s.opts.Name, err)
	}
	return nil
}

// RunStep advances the simulation by one step.
func (s *Simulation) RunStep() error {
	entities := s.env.placed()
	for _, ent := range entities {
		if err := core.RegenerateAll(ent); err != nil {
			return fmt.Errorf("regenerate %s: %w", ent.Kind(), err)
		}
	}

	for _, ent := range entities {
		if s.env.indexOf(ent) < 0 {
			continue
		}
		org, ok := ent.(core.Organism)
		if !ok {
			if err := ent.Interact(s.env); err != nil {
				return fmt.Errorf("interact %s: %w", ent.Kind(), err)
			}
			continue
		}
		if !org.Alive() {
			continue
		}
		if err := org.Act(s.env); err != nil {
			return fmt.Errorf("act %s: %w", org.Kind(), err)
		}
		if child, ok := org.Reproduce(); ok && child != nil {
			if err := s.placeOffspring(org, child); err != nil {
				return err
			}
		}
	}

	if err := s.reap(); err != nil {
		return err
	}
	s.env.Update()
	s.Advance()
	return nil
}

// placeOffspring puts child into the first empty Moore neighbour of parent.
// Offspring with no room are dropped.
func (s *Simulation) placeOffspring(parent, child core.Organism) error {
	at, err := s.env.Locate(parent)
	if err != nil {
		return fmt.Errorf("reproduce %s: %w", parent.Kind(), err)
	}
	for _, off := range core.MooreOffsets {
		if s.env.Occupant(at.X+off.X, at.Y+off.Y) != nil {
			continue
		}
		if err := s.env.AddEntity(child, at.X+off.X, at.Y+off.Y); err != nil {
			return fmt.Errorf("reproduce %s: %w", parent.Kind(), err)
		}
		s.births++
		return nil
	}
	return nil
}

func (s *Simulation) reap() error {
	entities := s.env.placed()
	for _, ent := range entities {
		org, ok := ent.(core.Organism)
		if !ok || org.Alive() {
			continue
		}
		if err := s.env.RemoveEntity(org); err != nil {
			return fmt.Errorf("reap %s: %w", org.Kind(), err)
		}
		s.deaths++
	}
	return nil
}

// IsComplete reports whether MaxSteps has been reached.
func (s *Simulation) IsComplete() bool {
	return s.opts.MaxSteps > 0 && s.Step() >= s.opts.MaxSteps
}

// State returns the step counter and an occupancy snapshot.
func (s *Simulation) State() core.State {
	return core.State{
		Name:     s.opts.Name,
		Step:     s.Step(),
		Complete: s.IsComplete(),
		Snapshot: s.env.Snapshot(),
	}
}

// Parameters reports the model parameters from Options.Params, if any.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	if s.opts.Params == nil {
		return core.ParameterSnapshot{}
	}
	return s.opts.Params()
}
