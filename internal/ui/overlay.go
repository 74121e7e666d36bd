//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"cloudsim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type windFieldProvider interface {
	WindVectorAt(x, y float64) (float64, float64)
}

type windowProvider interface {
	Window() (offsetX, offsetY, gridSize int)
}

type trackedProvider interface {
	TrackedPosition() (x, y float64, ok bool)
}

// Overlay draws debugging visuals on top of the base simulation view: the
// velocity field, the tracked reference marker, live stats and adjustable
// parameters.
type Overlay struct {
	sim   core.Sim
	scale int

	showWind   bool
	showStats  bool
	showMarker bool

	controls []controlState
	selected int

	pixel *ebiten.Image
}

type controlState struct {
	control core.ParameterControl
	value   float64
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showMarker: true, showStats: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)

	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			o.controls = append(o.controls, controlState{control: ctrl, value: o.lookupValue(ctrl.Key)})
		}
	}
	return o
}

// lookupValue pulls the current value of a control key out of the parameter
// snapshot.
func (o *Overlay) lookupValue(key string) float64 {
	type snapshotProvider interface {
		Parameters() core.ParameterSnapshot
	}
	provider, ok := o.sim.(snapshotProvider)
	if !ok {
		return 0
	}
	for _, group := range provider.Parameters().Groups {
		for _, p := range group.Params {
			if p.Key == key {
				if v, err := strconv.ParseFloat(p.Value, 64); err == nil {
					return v
				}
			}
		}
	}
	return 0
}

// Update handles overlay key bindings.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showWind = !o.showWind
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showStats = !o.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showMarker = !o.showMarker
	}

	if len(o.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		o.selected = (o.selected + 1) % len(o.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		o.selected = (o.selected + len(o.controls) - 1) % len(o.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		o.adjustSelected(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		o.adjustSelected(-1)
	}
}

func (o *Overlay) adjustSelected(dir float64) {
	state := &o.controls[o.selected]
	ctrl := state.control
	value := state.value + dir*ctrl.Step
	if ctrl.HasMin && value < ctrl.Min {
		value = ctrl.Min
	}
	if ctrl.HasMax && value > ctrl.Max {
		value = ctrl.Max
	}

	applied := false
	switch ctrl.Type {
	case core.ParamTypeInt:
		if setter, ok := o.sim.(core.IntParameterSetter); ok {
			applied = setter.SetIntParameter(ctrl.Key, int(math.Round(value)))
		}
	default:
		if setter, ok := o.sim.(core.FloatParameterSetter); ok {
			applied = setter.SetFloatParameter(ctrl.Key, value)
		}
	}
	if applied {
		state.value = value
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}

	if o.showWind {
		if provider, ok := o.sim.(windFieldProvider); ok {
			o.drawWindField(screen, provider, size, scale)
		}
	}
	if o.showMarker {
		o.drawReferenceMarker(screen, size, scale)
	}
	if o.showStats {
		o.drawStats(screen)
	}
}

// drawWindField renders a sparse arrow per sample cell, scaled and colored
// by flow speed.
func (o *Overlay) drawWindField(screen *ebiten.Image, provider windFieldProvider, size core.Size, scale int) {
	const (
		spacing       = 8
		calmThreshold = 0.005
		speedScale    = 14.0
	)

	for cy := spacing / 2; cy < size.H; cy += spacing {
		for cx := spacing / 2; cx < size.W; cx += spacing {
			vx, vy := provider.WindVectorAt(float64(cx), float64(cy))
			speed := math.Hypot(vx, vy)
			sx := (float64(cx) + 0.5) * float64(scale)
			sy := (float64(cy) + 0.5) * float64(scale)
			if speed < calmThreshold {
				o.drawPoint(screen, sx, sy, float64(scale)*0.5, color.RGBA{R: 90, G: 130, B: 170, A: 110})
				continue
			}

			length := speed * speedScale * float64(scale)
			if max := float64(spacing*scale) * 0.65; length > max {
				length = max
			}
			nx := vx / speed
			ny := vy / speed
			tipX := sx + nx*length
			tipY := sy + ny*length

			shade := speed * 6
			if shade > 1 {
				shade = 1
			}
			col := color.RGBA{
				R: uint8(80 + 80*shade),
				G: uint8(170 + 60*shade),
				B: 230,
				A: uint8(140 + 100*shade),
			}
			o.drawLine(screen, sx, sy, tipX, tipY, float64(scale)*0.6, col)
			o.drawPoint(screen, tipX, tipY, float64(scale), col)
		}
	}
}

// drawReferenceMarker draws a crosshair at the tracked reference point,
// projected into the window.
func (o *Overlay) drawReferenceMarker(screen *ebiten.Image, size core.Size, scale int) {
	tracked, ok := o.sim.(trackedProvider)
	if !ok {
		return
	}
	windowed, ok := o.sim.(windowProvider)
	if !ok {
		return
	}
	refX, refY, ok := tracked.TrackedPosition()
	if !ok {
		return
	}
	offsetX, offsetY, gridSize := windowed.Window()

	cx := (refX-float64(offsetX))/float64(gridSize) + float64(size.W)/2
	cy := (refY-float64(offsetY))/float64(gridSize) + float64(size.H)/2
	sx := cx * float64(scale)
	sy := cy * float64(scale)

	arm := float64(scale) * 5
	col := color.RGBA{R: 250, G: 80, B: 80, A: 230}
	o.drawLine(screen, sx-arm, sy, sx+arm, sy, float64(scale)*0.5, col)
	o.drawLine(screen, sx, sy-arm, sx, sy+arm, float64(scale)*0.5, col)
}

// drawStats prints the live stat lines and the selected parameter control.
func (o *Overlay) drawStats(screen *ebiten.Image) {
	line := 0
	if provider, ok := o.sim.(core.StatsProvider); ok {
		for _, stat := range provider.Stats() {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %s", stat.Label, stat.Value), 4, 4+line*14)
			line++
		}
	}
	if len(o.controls) > 0 {
		state := o.controls[o.selected]
		msg := fmt.Sprintf("[%s] %.3g  ([/] select, -/= adjust)", state.control.Label, state.value)
		ebitenutil.DebugPrintAt(screen, msg, 4, 4+line*14)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if thickness <= 0 {
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
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
