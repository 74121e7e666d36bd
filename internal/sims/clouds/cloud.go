package clouds

import (
	"gonum.org/v1/gonum/floats"

	"cloudsim/internal/core"
)

// Cloud holds the density state of one compound inside the shared window.
// Its arrays are allocated by the system on the first tick after
// registration and are owned and mutated exclusively by the system
// afterwards; gameplay callers interact through the query methods below.
type Cloud struct {
	compound  Compound
	surfaceID string

	width    int
	height   int
	gridSize int
	offsetX  int
	offsetY  int

	density  *core.FloatGrid
	previous *core.FloatGrid

	// Point-in-time copies handed to the presentation sink.
	present []float64
	pix     []byte

	ready bool
}

// Compound returns the chemical this cloud tracks.
func (c *Cloud) Compound() Compound { return c.compound }

// SurfaceID returns the presentation surface identifier assigned at
// registration.
func (c *Cloud) SurfaceID() string { return c.surfaceID }

// Density exposes the current concentration grid. It is nil until the cloud
// has been initialized by the system.
func (c *Cloud) Density() *core.FloatGrid { return c.density }

// Window reports the cloud's copy of the shared window placement.
func (c *Cloud) Window() (offsetX, offsetY, gridSize int) {
	return c.offsetX, c.offsetY, c.gridSize
}

// Total returns the summed density over the whole window.
func (c *Cloud) Total() float64 {
	if !c.ready {
		return 0
	}
	return floats.Sum(c.density.Values())
}

// initWindow sizes the cloud to the shared window and allocates its arrays,
// zero-filled. Called exactly once per cloud.
func (c *Cloud) initWindow(width, height, gridSize, offsetX, offsetY int) {
	c.width = width
	c.height = height
	c.gridSize = gridSize
	c.offsetX = offsetX
	c.offsetY = offsetY
	c.density = core.NewFloatGrid(width, height)
	c.previous = core.NewFloatGrid(width, height)
	c.ready = true
}

// worldToCell converts world coordinates into grid-local indices using the
// cloud's current window placement. The result may be out of bounds.
func (c *Cloud) worldToCell(worldX, worldY float64) (int, int) {
	gx := int((worldX-float64(c.offsetX))/float64(c.gridSize)) + c.width/2
	gy := int((worldY-float64(c.offsetY))/float64(c.gridSize)) + c.height/2
	return gx, gy
}

// AddDensity adds amount to the cell the world coordinates fall into. It is
// a silent no-op when the position is outside the current window or the
// cloud has not been initialized yet.
func (c *Cloud) AddDensity(amount, worldX, worldY float64) {
	if !c.ready {
		return
	}
	gx, gy := c.worldToCell(worldX, worldY)
	if !c.density.InBounds(gx, gy) {
		return
	}
	c.density.Add(gx, gy, amount)
}

// TakeCompound removes floor(density)*rate from the addressed cell and
// returns the removed integer amount. A cell left below one unit is floored
// to zero. Out-of-bounds coordinates return the -1 sentinel instead of an
// error, for parity with the gameplay contract.
func (c *Cloud) TakeCompound(gridX, gridY int, rate float64) int {
	if !c.ready || !c.density.InBounds(gridX, gridY) {
		return -1
	}
	d := c.density.At(gridX, gridY)
	amount := int(float64(int(d)) * rate)
	d -= float64(amount)
	if d < 1 {
		d = 0
	}
	c.density.Set(gridX, gridY, d)
	return amount
}

// AmountAvailable computes the same amount as TakeCompound without mutating
// the cell. Out-of-bounds coordinates return -1.
func (c *Cloud) AmountAvailable(gridX, gridY int, rate float64) int {
	if !c.ready || !c.density.InBounds(gridX, gridY) {
		return -1
	}
	return int(float64(int(c.density.At(gridX, gridY))) * rate)
}
