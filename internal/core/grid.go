package core

import "fmt"

// FloatGrid stores a 2D field of float64 cell values in row-major order.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a zero-filled grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Values exposes the backing slice so hot loops can read/write values directly.
func (g *FloatGrid) Values() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *FloatGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). It panics on out-of-range coordinates
// rather than silently folding them into a neighboring row.
func (g *FloatGrid) At(x, y int) float64 {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: grid access (%d,%d) outside %dx%d", x, y, g.W, g.H))
	}
	return g.data[y*g.W+x]
}

// Set writes the value at (x, y) with the same bounds policy as At.
func (g *FloatGrid) Set(x, y int, v float64) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: grid access (%d,%d) outside %dx%d", x, y, g.W, g.H))
	}
	g.data[y*g.W+x] = v
}

// Add accumulates v into the cell at (x, y).
func (g *FloatGrid) Add(x, y int, v float64) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: grid access (%d,%d) outside %dx%d", x, y, g.W, g.H))
	}
	g.data[y*g.W+x] += v
}

// Clear fills the grid with zeros.
func (g *FloatGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// CopyInto copies the cell values into dst, which must hold W*H elements.
func (g *FloatGrid) CopyInto(dst []float64) {
	copy(dst, g.data)
}
