//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"alife/internal/app"
	"alife/internal/config"
	"alife/internal/logger"
	"alife/internal/runner"
	"alife/pkg/core"
	_ "alife/pkg/sims/drift"
	_ "alife/pkg/sims/langton"
	_ "alife/pkg/sims/life"
)

func main() {
	logger.Init()

	cfg, err := config.Parse("ca", os.Args[1:], nil)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Log.Fatal(err)
	}

	sim, err := runner.New(cfg.Sim, cfg.Params)
	if err != nil {
		logger.Log.WithField("available", core.Names()).Fatal(err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = core.RandomSeed()
	}
	if err := sim.Initialize(seed); err != nil {
		logger.Log.Fatal(err)
	}
	logger.Log.WithFields(logrus.Fields{"sim": sim.Name(), "seed": seed}).Info("starting viewer")

	game := app.New(sim, cfg.Viewer.Scale, cfg.Viewer.TPS, seed)
	size := sim.Size()

	ebiten.SetWindowTitle("alife - " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Viewer.Scale+app.PanelWidth, size.H*cfg.Viewer.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.Fatal(err)
	}
}
