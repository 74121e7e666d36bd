//go:build ebiten

package app

import (
	"image/color"
	"time"

	"cloudsim/internal/core"
	"cloudsim/internal/render"
	"cloudsim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Mover adjusts the tracked reference point in world units. The GUI steers
// it with the arrow keys.
type Mover interface {
	MoveBy(dx, dy float64)
}

type paletteProvider interface {
	Palette() []color.RGBA
}

type windowProvider interface {
	Window() (offsetX, offsetY, gridSize int)
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	mover   Mover
	painter *render.GridPainter
	overlay *ui.Overlay
	palette []color.RGBA
	pace    *core.FixedStep

	moveSpeed float64
	scale     int
	paused    bool
	tickOnce  bool
	seed      int64
}

// New constructs a Game for the provided simulation. The mover may be nil
// for simulations without a steerable reference point.
func New(sim core.Sim, mover Mover, scale, tps int, seed int64) *Game {
	size := sim.Size()
	g := &Game{
		sim:       sim,
		mover:     mover,
		painter:   render.NewGridPainter(size.W, size.H),
		overlay:   ui.NewOverlay(sim, scale),
		pace:      core.NewFixedStep(tps),
		moveSpeed: 1,
		scale:     scale,
		seed:      seed,
	}
	if provider, ok := sim.(paletteProvider); ok {
		g.palette = provider.Palette()
	} else {
		g.palette = grayRamp()
	}
	if provider, ok := sim.(windowProvider); ok {
		_, _, gridSize := provider.Window()
		g.moveSpeed = float64(gridSize) * 0.75
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation at the
// configured tick rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.pace.Rewind()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.moveReference()
	g.overlay.Update()

	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		return nil
	}
	if !g.paused && g.pace.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

// moveReference steers the tracked point with the arrow keys.
func (g *Game) moveReference() {
	if g.mover == nil {
		return
	}
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= 1
	}
	if dx != 0 || dy != 0 {
		g.mover.MoveBy(dx*g.moveSpeed, dy*g.moveSpeed)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

func grayRamp() []color.RGBA {
	ramp := make([]color.RGBA, 256)
	for i := range ramp {
		v := uint8(i)
		ramp[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return ramp
}
