//go:build ebiten

// Package app adapts a simulation to an ebiten window.
package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"alife/internal/logger"
	"alife/internal/render"
	"alife/internal/runner"
	"alife/internal/ui"
	"alife/pkg/core"
)

// PanelWidth is the width of the status panel right of the grid.
const PanelWidth = 220

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Simulation
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *runner.FixedStep

	scale    int
	tps      int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for an initialized simulation. tps is the
// simulation step rate, independent of the window's frame rate.
func New(sim core.Simulation, scale, tps int, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(scale),
		hud:     ui.NewHUD(sim, PanelWidth),
		timer:   runner.NewFixedStep(tps),
		scale:   scale,
		tps:     tps,
		seed:    seed,
	}
}

// Reset reinitializes the simulation with the provided seed.
func (g *Game) Reset(seed int64) error {
	g.seed = seed
	g.tickOnce = false
	return g.sim.Initialize(seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.sim.Reset(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(core.RandomSeed()); err != nil {
			return err
		}
		logger.Log.WithField("seed", g.seed).Info("reseeded")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.tps *= 2
		g.timer.SetTPS(g.tps)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && g.tps > 1 {
		g.tps /= 2
		g.timer.SetTPS(g.tps)
	}

	g.overlay.Update()

	due := g.timer.ShouldStep()
	if g.sim.IsComplete() {
		g.paused = true
	}
	if shouldAdvance(g.sim.IsComplete(), g.paused, due, g.tickOnce) {
		if err := g.sim.RunStep(); err != nil {
			logger.Log.WithFields(logrus.Fields{"sim": g.sim.Name(), "step": g.sim.Step()}).WithError(err).Error("step failed")
			return err
		}
	}
	g.tickOnce = false
	g.hud.Update(g.paused)
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.sim.State().Snapshot
	g.painter.Blit(screen, snap, g.scale)
	g.overlay.Draw(screen, snap)
	g.hud.Draw(screen, snap.Size.W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
