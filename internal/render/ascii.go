package render

import (
	"fmt"

	"alife/pkg/core"
)

var headingGlyphs = [4]byte{core.Up: '^', core.Right: '>', core.Down: 'v', core.Left: '<'}

// ASCII draws snap as text, one line per row. Oriented agents are drawn as
// arrows pointing along their heading.
func ASCII(snap core.Snapshot, on, off byte) string {
	w, h := snap.Size.W, snap.Size.H
	if w <= 0 || h <= 0 || len(snap.Cells) != w*h {
		return ""
	}
	frame := make([]byte, 0, (w+1)*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if snap.Cells[y*w+x] != 0 {
				frame = append(frame, on)
			} else {
				frame = append(frame, off)
			}
		}
		frame = append(frame, '\n')
	}
	for _, a := range snap.Agents {
		if !a.Oriented || a.X < 0 || a.X >= w || a.Y < 0 || a.Y >= h {
			continue
		}
		frame[a.Y*(w+1)+a.X] = headingGlyphs[a.Heading%4]
	}
	return string(frame)
}

// Header formats the status line printed above an ASCII frame.
func Header(st core.State) string {
	line := fmt.Sprintf("%s step=%d population=%d", st.Name, st.Step, st.Population())
	if st.Complete {
		line += " complete"
	}
	return line
}
