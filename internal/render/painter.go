//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"alife/pkg/core"
)

// GridPainter updates a single RGBA image from simulation snapshots.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	indexed []uint8
	palette []color.RGBA
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: DefaultPalette}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// SetPalette replaces the colours used for off, on and agent cells.
func (gp *GridPainter) SetPalette(p []color.RGBA) { gp.palette = p }

// Blit uploads the snapshot into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, snap core.Snapshot, scale int) {
	if len(snap.Cells) != gp.w*gp.h {
		return
	}
	gp.indexed = Indexed(snap, gp.indexed)
	fillPaletteRGBA(gp.buf, gp.indexed, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
