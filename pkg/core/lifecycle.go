package core

// Phase is the coarse state of a simulation's run.
type Phase uint8

const (
	PhaseUninitialized Phase = iota
	PhaseRunning
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseComplete:
		return "complete"
	default:
		return "uninitialized"
	}
}

// Lifecycle is the loop bookkeeping shared by simulations: the step counter,
// the requested seed and whether Initialize has run.
type Lifecycle struct {
	step    int
	seed    int64
	started bool
}

// Start zeroes the counter and records seed.
func (l *Lifecycle) Start(seed int64) {
	l.step = 0
	l.seed = seed
	l.started = true
}

// Restart zeroes the counter and keeps the recorded seed.
func (l *Lifecycle) Restart() {
	l.Start(l.seed)
}

// Advance increments the step counter.
func (l *Lifecycle) Advance() { l.step++ }

// Step returns the number of completed steps since the last Start.
func (l *Lifecycle) Step() int { return l.step }

// Seed returns the seed recorded by Start. Zero means unseeded.
func (l *Lifecycle) Seed() int64 { return l.seed }

// EffectiveSeed returns the recorded seed, or a fresh random one when unseeded.
func (l *Lifecycle) EffectiveSeed() int64 {
	if l.seed != 0 {
		return l.seed
	}
	return RandomSeed()
}

// Started reports whether Start has been called.
func (l *Lifecycle) Started() bool { return l.started }

// PhaseOf derives the phase of sim.
func PhaseOf(sim Simulation) Phase {
	if s, ok := sim.(interface{ Started() bool }); ok && !s.Started() {
		return PhaseUninitialized
	}
	if sim.IsComplete() {
		return PhaseComplete
	}
	return PhaseRunning
}

// Run initializes sim with seed and steps it until IsComplete reports true.
// The first step error is returned unchanged. Simulations that never
// complete make Run loop forever.
func Run(sim Simulation, seed int64) error {
	if err := sim.Initialize(seed); err != nil {
		return err
	}
	for !sim.IsComplete() {
		if err := sim.RunStep(); err != nil {
			return err
		}
	}
	return nil
}
