// Package telemetry records per-step population samples and writes them, with
// run summaries, as CSV.
package telemetry

import (
	"gonum.org/v1/gonum/stat"

	"alife/pkg/core"
)

// Sample is one observation of a running simulation. Population counts the
// non-zero cells of the snapshot: live cells, black cells or occupied cells
// depending on the model.
type Sample struct {
	Sim        string `csv:"sim"`
	Run        int    `csv:"run"`
	Seed       int64  `csv:"seed"`
	Step       int    `csv:"step"`
	Population int    `csv:"population"`
	Agents     int    `csv:"agents"`
}

// Summary aggregates the population series of a single run.
type Summary struct {
	Sim      string  `csv:"sim"`
	Run      int     `csv:"run"`
	Seed     int64   `csv:"seed"`
	Steps    int     `csv:"steps"`
	Complete bool    `csv:"complete"`
	Samples  int     `csv:"samples"`
	Mean     float64 `csv:"mean_population"`
	StdDev   float64 `csv:"stddev_population"`
	Min      int     `csv:"min_population"`
	Max      int     `csv:"max_population"`
	Final    int     `csv:"final_population"`
}

// Recorder collects samples every N steps.
type Recorder struct {
	run   int
	seed  int64
	every int

	samples []Sample
	last    core.State
}

// NewRecorder returns a recorder sampling every `every` steps (minimum 1).
func NewRecorder(run int, seed int64, every int) *Recorder {
	if every < 1 {
		every = 1
	}
	return &Recorder{run: run, seed: seed, every: every}
}

// Observe records st if its step falls on the sampling interval or the run
// is complete. It reports whether a sample was taken.
func (r *Recorder) Observe(st core.State) (Sample, bool) {
	r.last = st
	if st.Step%r.every != 0 && !st.Complete {
		return Sample{}, false
	}
	if n := len(r.samples); n > 0 && r.samples[n-1].Step == st.Step {
		return Sample{}, false
	}
	s := Sample{
		Sim:        st.Name,
		Run:        r.run,
		Seed:       r.seed,
		Step:       st.Step,
		Population: st.Population(),
		Agents:     len(st.Agents),
	}
	r.samples = append(r.samples, s)
	return s, true
}

// Samples returns the recorded samples.
func (r *Recorder) Samples() []Sample { return r.samples }

// Summary aggregates the recorded samples.
func (r *Recorder) Summary() Summary {
	sum := Summary{
		Sim:      r.last.Name,
		Run:      r.run,
		Seed:     r.seed,
		Steps:    r.last.Step,
		Complete: r.last.Complete,
		Samples:  len(r.samples),
	}
	if len(r.samples) == 0 {
		return sum
	}
	pop := make([]float64, len(r.samples))
	sum.Min = r.samples[0].Population
	for i, s := range r.samples {
		pop[i] = float64(s.Population)
		sum.Min = min(sum.Min, s.Population)
		sum.Max = max(sum.Max, s.Population)
	}
	sum.Mean = stat.Mean(pop, nil)
	if len(pop) > 1 {
		sum.StdDev = stat.StdDev(pop, nil)
	}
	sum.Final = r.samples[len(r.samples)-1].Population
	return sum
}
