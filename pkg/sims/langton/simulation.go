package langton

import (
	"strconv"

	"alife/pkg/core"
)

// Config holds parameters for the Langton's Ant simulation.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 100, Height: 100}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	return c
}

// Langton steps an Environment forever; callers decide when to stop.
type Langton struct {
	core.Lifecycle

	cfg Config
	env *Environment
}

// NewSimulation returns a Langton's Ant simulation on a w×h grid.
func NewSimulation(w, h int) *Langton {
	return NewWithConfig(Config{Width: w, Height: h})
}

// NewWithConfig returns a simulation configured from cfg.
func NewWithConfig(cfg Config) *Langton {
	env := New(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = env.grid.W, env.grid.H
	return &Langton{cfg: cfg, env: env}
}

// Name returns the simulation identifier.
func (l *Langton) Name() string { return "langton" }

// Size returns the grid dimensions.
func (l *Langton) Size() core.Size { return l.env.Size() }

// Environment exposes the grid being simulated.
func (l *Langton) Environment() *Environment { return l.env }

// Initialize zeroes the counter and rebuilds the environment. The model is
// deterministic so the seed is only recorded.
func (l *Langton) Initialize(seed int64) error {
	l.Start(seed)
	l.env = New(l.cfg.Width, l.cfg.Height)
	return nil
}

// Reset discards the environment and builds a fresh one of the same size.
func (l *Langton) Reset() error {
	l.Restart()
	l.env = New(l.cfg.Width, l.cfg.Height)
	return nil
}

// RunStep moves the ant once.
func (l *Langton) RunStep() error {
	l.env.Update()
	l.Advance()
	return nil
}

// IsComplete always reports false.
func (l *Langton) IsComplete() bool { return false }

// State returns the step counter, the grid and the ant.
func (l *Langton) State() core.State {
	return core.State{Name: l.Name(), Step: l.Step(), Snapshot: l.env.Snapshot()}
}

// Parameters describes the configuration.
func (l *Langton) Parameters() core.ParameterSnapshot {
	ant := l.env.Ant()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.cfg.Width),
				core.IntParam("h", "Height", l.cfg.Height),
			},
		},
		{
			Name:    "Ant",
			Summary: ant.Heading.String(),
			Params: []core.Parameter{
				core.IntParam("ant_x", "X", ant.X),
				core.IntParam("ant_y", "Y", ant.Y),
			},
		},
	}}
}

func init() {
	core.Register("langton", func(cfg map[string]string) core.Simulation {
		return NewWithConfig(FromMap(cfg))
	})
}
