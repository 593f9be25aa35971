package core

// Grid stores a 2D grid of byte-sized cell values in row-major order.
// Coordinates passed to Get and Set wrap toroidally.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a grid with the given dimensions. Non-positive
// dimensions are raised to 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// CopyCells returns a copy of the backing slice.
func (g *Grid) CopyCells() []uint8 { return append([]uint8(nil), g.data...) }

// Index returns the linear slice index for in-range coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Get returns the value at the wrapped coordinates.
func (g *Grid) Get(x, y int) uint8 {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Set stores v at the wrapped coordinates.
func (g *Grid) Set(x, y int, v uint8) {
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = v
}

// Count returns the number of non-zero cells.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, data: g.CopyCells()}
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Rows returns a [y][x] boolean copy of the grid.
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.H)
	for y := range rows {
		row := make([]bool, g.W)
		for x := range row {
			row[x] = g.data[y*g.W+x] != 0
		}
		rows[y] = row
	}
	return rows
}
