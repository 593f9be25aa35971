// Command alife runs simulations headlessly, printing ASCII frames and
// writing CSV telemetry.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"alife/internal/batch"
	"alife/internal/config"
	"alife/internal/logger"
	"alife/internal/runner"
	"alife/internal/telemetry"
	"alife/pkg/core"
	_ "alife/pkg/sims/drift"
	_ "alife/pkg/sims/langton"
	_ "alife/pkg/sims/life"
)

func main() {
	logger.Init()
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logger.Log.Fatal(err)
	}
}

func run(args []string) error {
	var list bool
	cfg, err := config.Parse("alife", args, func(fs *flag.FlagSet) {
		fs.BoolVar(&list, "list", false, "list available simulations and exit")
	})
	if err != nil {
		return err
	}
	if list {
		for _, name := range core.Names() {
			fmt.Println(name)
		}
		return nil
	}
	if _, err := runner.New(cfg.Sim, cfg.Params); err != nil {
		return fmt.Errorf("%w (available: %v)", err, core.Names())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, err := telemetry.NewOutputManager(cfg.Telemetry.OutputDir)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		return err
	}

	log := logger.Log.WithFields(logrus.Fields{"sim": cfg.Sim, "runs": cfg.Batch.Runs})
	if cfg.Batch.Runs == 1 {
		sim, _ := runner.New(cfg.Sim, cfg.Params)
		opts := runner.Options{
			Seed:        cfg.Seed,
			Steps:       cfg.Steps,
			SampleEvery: cfg.Telemetry.Every,
			Output:      out,
		}
		if cfg.Render.ASCII {
			opts.Frames = os.Stdout
			opts.FrameEvery = cfg.Render.Every
			opts.TPS = cfg.Render.TPS
		}
		_, err := runner.Run(ctx, sim, opts)
		return err
	}

	if cfg.Render.ASCII {
		log.Warn("ASCII frames are disabled for batch runs")
	}
	results, err := batch.Run(ctx, func() (core.Simulation, error) {
		return runner.New(cfg.Sim, cfg.Params)
	}, batch.Options{
		Runs:        cfg.Batch.Runs,
		Workers:     cfg.Batch.Workers,
		Seed:        cfg.Seed,
		Steps:       cfg.Steps,
		SampleEvery: cfg.Telemetry.Every,
		Output:      out,
	})
	if err != nil {
		return err
	}
	for _, res := range results {
		s := res.Summary
		fmt.Printf("run=%d seed=%d steps=%d final=%d mean=%.2f sd=%.2f min=%d max=%d\n",
			s.Run, s.Seed, s.Steps, s.Final, s.Mean, s.StdDev, s.Min, s.Max)
	}
	if dir := out.Dir(); dir != "" {
		log.WithField("dir", dir).Info("telemetry written")
	}
	return nil
}
