package life

import "alife/pkg/core"

// Life drives an Environment for a fixed number of generations.
type Life struct {
	core.Lifecycle

	cfg Config
	env *Environment
}

// NewSimulation returns a Life simulation with the provided dimensions and
// default density and generation count.
func NewSimulation(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation configured from cfg.
func NewWithConfig(cfg Config) *Life {
	env := New(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = env.w, env.h
	return &Life{cfg: cfg, env: env}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.env.Size() }

// Environment exposes the grid being simulated.
func (l *Life) Environment() *Environment { return l.env }

// Generation returns the number of generations computed since Initialize.
func (l *Life) Generation() int { return l.Step() }

// Initialize zeroes the generation counter and randomizes the board. A zero
// seed draws a fresh random seed, so the pattern is not reproducible.
func (l *Life) Initialize(seed int64) error {
	l.Start(seed)
	l.seed()
	return nil
}

// Reset zeroes the counter and re-seeds the board with the last seed.
func (l *Life) Reset() error {
	l.Restart()
	l.seed()
	return nil
}

func (l *Life) seed() {
	l.env.Seed(core.NewRNG(l.EffectiveSeed()), l.cfg.Density)
}

// RunStep computes one generation.
func (l *Life) RunStep() error {
	l.env.Update()
	l.Advance()
	return nil
}

// IsComplete reports whether the configured number of generations has run.
func (l *Life) IsComplete() bool { return l.Step() >= l.cfg.Generations }

// State returns the generation counter and a copy of the grid.
func (l *Life) State() core.State {
	return core.State{Name: l.Name(), Step: l.Step(), Complete: l.IsComplete(), Snapshot: l.env.Snapshot()}
}

// Parameters describes the configuration.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.cfg.Width),
				core.IntParam("h", "Height", l.cfg.Height),
				core.Int64Param("seed", "Seed", l.Seed()),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.FloatParam("density", "Initial density", l.cfg.Density),
				core.IntParam("generations", "Generations", l.cfg.Generations),
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Simulation {
		return NewWithConfig(FromMap(cfg))
	})
}
