//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"alife/pkg/core"
)

// Overlay draws optional visuals on top of the grid: heading arrows for
// oriented agents, markers for entities and cell grid lines.
type Overlay struct {
	scale       int
	showHeading bool
	showMarkers bool
	showGrid    bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for a view drawn at the given scale.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale, showHeading: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers: 1 headings, 2 entity markers, 3 grid lines.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHeading = !o.showHeading
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showMarkers = !o.showMarkers
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the enabled layers for snap.
func (o *Overlay) Draw(screen *ebiten.Image, snap core.Snapshot) {
	scale := float64(max(o.scale, 1))
	if o.showGrid && scale >= 4 {
		o.drawGrid(screen, snap.Size, scale)
	}
	for _, a := range snap.Agents {
		cx := (float64(a.X) + 0.5) * scale
		cy := (float64(a.Y) + 0.5) * scale
		switch {
		case a.Oriented && o.showHeading:
			dx, dy := a.Heading.Delta()
			length := math.Max(scale*1.5, 6)
			o.drawLine(screen, cx, cy, cx+float64(dx)*length, cy+float64(dy)*length, math.Max(scale/4, 1), color.RGBA{R: 255, G: 210, B: 60, A: 255})
		case !a.Oriented && o.showMarkers:
			o.drawPoint(screen, cx, cy, math.Max(scale/2, 1), color.RGBA{R: 64, G: 164, B: 223, A: 255})
		}
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image, size core.Size, scale float64) {
	col := color.RGBA{R: 40, G: 40, B: 48, A: 255}
	w := float64(size.W) * scale
	h := float64(size.H) * scale
	for x := 0; x <= size.W; x++ {
		fx := float64(x) * scale
		o.drawLine(screen, fx, 0, fx, h, 1, col)
	}
	for y := 0; y <= size.H; y++ {
		fy := float64(y) * scale
		o.drawLine(screen, 0, fy, w, fy, 1, col)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
