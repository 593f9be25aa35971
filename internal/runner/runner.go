// Package runner drives a simulation headlessly, recording telemetry and
// optionally printing ASCII frames.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"alife/internal/logger"
	"alife/internal/render"
	"alife/internal/telemetry"
	"alife/pkg/core"
)

// ErrUnknownSim is returned when no simulation is registered under a name.
var ErrUnknownSim = errors.New("unknown simulation")

// Options configures a single run.
type Options struct {
	Run int
	// Seed is passed to Initialize. Zero is replaced by a fresh random seed
	// which is reported in the result.
	Seed int64
	// Steps bounds the run. Zero runs until the simulation completes.
	Steps int

	// SampleEvery is the telemetry sampling interval.
	SampleEvery int
	Output      *telemetry.OutputManager

	// Frames receives ASCII frames every FrameEvery steps when non-nil.
	Frames     io.Writer
	FrameEvery int
	// TPS paces frame output; zero prints as fast as possible.
	TPS int
}

// Result describes a finished run.
type Result struct {
	Run     int
	Seed    int64
	Final   core.State
	Summary telemetry.Summary
	Samples []telemetry.Sample
}

// New builds the simulation registered under name.
func New(name string, params map[string]string) (core.Simulation, error) {
	factory, ok := core.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownSim)
	}
	return factory(params), nil
}

// Run initializes sim and steps it until it completes, the step bound is
// reached or ctx is cancelled. Step errors are returned unchanged.
func Run(ctx context.Context, sim core.Simulation, opts Options) (Result, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = core.RandomSeed()
	}
	log := logger.Log.WithFields(logrus.Fields{
		"sim":  sim.Name(),
		"run":  opts.Run,
		"seed": seed,
	})

	if err := sim.Initialize(seed); err != nil {
		return Result{}, fmt.Errorf("initialize %s: %w", sim.Name(), err)
	}
	log.Debug("initialized")

	rec := telemetry.NewRecorder(opts.Run, seed, opts.SampleEvery)
	frameEvery := max(opts.FrameEvery, 1)
	var timer *FixedStep
	if opts.Frames != nil && opts.TPS > 0 {
		timer = NewFixedStep(opts.TPS)
	}

	observe := func() error {
		st := sim.State()
		rec.Observe(st)
		if opts.Frames == nil || (st.Step%frameEvery != 0 && !st.Complete) {
			return nil
		}
		if timer != nil {
			if err := timer.Wait(ctx); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(opts.Frames, "%s\n%s\n", render.Header(st), render.ASCII(st.Snapshot, '#', '.'))
		return err
	}

	if err := observe(); err != nil {
		return Result{}, err
	}
	for !sim.IsComplete() && (opts.Steps == 0 || sim.Step() < opts.Steps) {
		if err := ctx.Err(); err != nil {
			log.WithField("step", sim.Step()).Warn("run cancelled")
			return Result{}, err
		}
		if err := sim.RunStep(); err != nil {
			return Result{}, err
		}
		if err := observe(); err != nil {
			return Result{}, err
		}
	}

	res := Result{
		Run:     opts.Run,
		Seed:    seed,
		Final:   sim.State(),
		Summary: rec.Summary(),
		Samples: rec.Samples(),
	}
	if err := opts.Output.WriteSamples(res.Samples); err != nil {
		return res, err
	}
	if err := opts.Output.WriteSummary(res.Summary); err != nil {
		return res, err
	}

	log.WithFields(logrus.Fields{
		"steps":      res.Final.Step,
		"complete":   res.Final.Complete,
		"population": res.Final.Population(),
		"mean":       res.Summary.Mean,
	}).Info("run finished")
	return res, nil
}
