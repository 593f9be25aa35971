// Package drift populates the entity grid with organisms that walk along a
// fixed heading and burn energy as they go.
package drift

import (
	"fmt"
	"strconv"

	"alife/pkg/core"
	"alife/pkg/env/grid"
	"alife/pkg/resource"
)

// Config holds parameters for the drift simulation.
type Config struct {
	Width  int
	Height int

	// Spacing is the lattice pitch used when placing the initial drifters.
	Spacing int
	// Energy is each drifter's starting energy.
	Energy float64
	// Rate is the energy regenerated per step.
	Rate float64
	// Cost is the energy spent per action.
	Cost float64
	// Split is the energy level at which a drifter divides. Zero disables
	// reproduction.
	Split float64
	// Steps ends the run after that many steps. Zero never completes.
	Steps int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 40, Height: 40, Spacing: 5, Energy: 10, Rate: 0.5, Cost: 1, Steps: 50}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	intParam := func(key string, dst *int, lowest int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= lowest {
				*dst = parsed
			}
		}
	}
	floatParam := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	intParam("w", &c.Width, 1)
	intParam("h", &c.Height, 1)
	intParam("spacing", &c.Spacing, 1)
	intParam("steps", &c.Steps, 0)
	floatParam("energy", &c.Energy)
	floatParam("rate", &c.Rate)
	floatParam("cost", &c.Cost)
	floatParam("split", &c.Split)
	return c
}

// Drifter is an organism that moves one cell along its heading every step.
type Drifter struct {
	core.Body

	heading core.Heading
	energy  *resource.Regenerating
	cost    float64
	split   float64
	rate    float64
}

// NewDrifter returns a drifter with the given heading and energy budget.
func NewDrifter(h core.Heading, energy, rate, cost, split float64) *Drifter {
	d := &Drifter{
		Body:    core.NewBody("drifter"),
		heading: h,
		energy:  resource.NewRegenerating(energy, rate),
		cost:    cost,
		split:   split,
		rate:    rate,
	}
	d.AddResource("energy", d.energy)
	return d
}

// Heading returns the drifter's direction of travel.
func (d *Drifter) Heading() core.Heading { return d.heading }

// Energy returns the current energy level.
func (d *Drifter) Energy() float64 { return d.energy.Level() }

// Act pays the action cost and asks the environment to move one cell. A
// blocked move still costs energy.
func (d *Drifter) Act(env core.Environment) error {
	cost := d.cost
	if lvl := d.energy.Level(); cost > lvl {
		cost = lvl
	}
	if err := d.energy.Consume(cost); err != nil {
		return fmt.Errorf("drifter act: %w", err)
	}
	dx, dy := d.heading.Delta()
	if _, err := env.Interact(d, core.Move{DX: dx, DY: dy}); err != nil {
		return fmt.Errorf("drifter move: %w", err)
	}
	return nil
}

// Reproduce splits the drifter in two once its energy reaches the split
// threshold. The child takes half the energy and turns right.
func (d *Drifter) Reproduce() (core.Organism, bool) {
	if d.split <= 0 || d.energy.Level() < d.split {
		return nil, false
	}
	half := d.energy.Level() / 2
	if err := d.energy.Consume(half); err != nil {
		return nil, false
	}
	return NewDrifter(d.heading.TurnRight(), half, d.rate, d.cost, d.split), true
}

// Populate places a drifter on every lattice point. Headings are drawn from
// the seed; a zero seed draws a fresh random one.
func (c Config) Populate(env *grid.Environment, seed int64) error {
	if seed == 0 {
		seed = core.RandomSeed()
	}
	rng := core.NewRNG(seed).Source()
	size := env.Size()
	step := c.Spacing
	if step <= 0 {
		step = 1
	}
	for y := 0; y < size.H; y += step {
		for x := 0; x < size.W; x += step {
			h := core.Heading(rng.IntN(4))
			d := NewDrifter(h, c.Energy, c.Rate, c.Cost, c.Split)
			if err := env.AddEntity(d, x, y); err != nil {
				return err
			}
		}
	}
	return nil
}

// NewSimulation returns a grid simulation populated with drifters.
func NewSimulation(cfg Config) *grid.Simulation {
	return grid.NewSimulation(cfg.Width, cfg.Height, grid.Options{
		Name:     "drift",
		MaxSteps: cfg.Steps,
		Populate: cfg.Populate,
		Params:   cfg.parameters,
	})
}

func (c Config) parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.Width),
				core.IntParam("h", "Height", c.Height),
				core.IntParam("spacing", "Spacing", c.Spacing),
				core.IntParam("steps", "Steps", c.Steps),
			},
		},
		{
			Name: "Energy",
			Params: []core.Parameter{
				core.FloatParam("energy", "Start", c.Energy),
				core.FloatParam("rate", "Regen rate", c.Rate),
				core.FloatParam("cost", "Move cost", c.Cost),
				core.FloatParam("split", "Split at", c.Split),
			},
		},
	}}
}

func init() {
	core.Register("drift", func(cfg map[string]string) core.Simulation {
		return NewSimulation(FromMap(cfg))
	})
}
