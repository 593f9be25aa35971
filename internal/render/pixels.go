// Package render turns simulation snapshots into pixels and text frames.
package render

import (
	"image/color"

	"alife/pkg/core"
)

// Palette indices produced by Indexed.
const (
	IndexOff uint8 = iota
	IndexOn
	IndexAgent
)

// DefaultPalette maps off cells to black, on cells to white and agents to red.
var DefaultPalette = []color.RGBA{
	IndexOff:   {R: 0, G: 0, B: 0, A: 255},
	IndexOn:    {R: 235, G: 235, B: 235, A: 255},
	IndexAgent: {R: 220, G: 60, B: 40, A: 255},
}

// Indexed returns palette indices for snap. Oriented agents are painted over
// their cell; unoriented agents leave the cell as is since they already mark
// it occupied.
func Indexed(snap core.Snapshot, dst []uint8) []uint8 {
	n := len(snap.Cells)
	if cap(dst) < n {
		dst = make([]uint8, n)
	}
	dst = dst[:n]
	for i, c := range snap.Cells {
		dst[i] = IndexOff
		if c != 0 {
			dst[i] = IndexOn
		}
	}
	w := snap.Size.W
	for _, a := range snap.Agents {
		if !a.Oriented {
			continue
		}
		if idx := a.Y*w + a.X; idx >= 0 && idx < n {
			dst[idx] = IndexAgent
		}
	}
	return dst
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
