package clouds

import (
	"github.com/aquilax/go-perlin"

	"cloudsim/internal/core"
)

// Shape of the Perlin potential the turbulence is derived from.
const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 3
)

// VelocityField holds the static turbulent flow every cloud is advected by.
// It is computed once from a noise potential and never mutated afterwards.
type VelocityField struct {
	vx *core.FloatGrid
	vy *core.FloatGrid
}

// NewVelocityField samples a Perlin potential on the z=0 plane and takes its
// rotated gradient (the 2D curl) with central differences, giving a swirling
// flow with no sinks for density to pile up in.
func NewVelocityField(w, h int, noiseScale float64, seed int64) *VelocityField {
	f := &VelocityField{
		vx: core.NewFloatGrid(w, h),
		vy: core.NewFloatGrid(w, h),
	}

	potential := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	sx := noiseScale
	sy := noiseScale * float64(w) / float64(h)

	xs := f.vx.Values()
	ys := f.vy.Values()
	for y := 0; y < h; y++ {
		y0 := float64(y-1) / float64(h) * sy
		y1 := float64(y+1) / float64(h) * sy
		yc := float64(y) / float64(h) * sy
		for x := 0; x < w; x++ {
			x0 := float64(x-1) / float64(w) * sx
			x1 := float64(x+1) / float64(w) * sx
			xc := float64(x) / float64(w) * sx

			idx := y*w + x
			xs[idx] = (potential.Noise3D(xc, y0, 0) - potential.Noise3D(xc, y1, 0)) / 2
			ys[idx] = (potential.Noise3D(x1, yc, 0) - potential.Noise3D(x0, yc, 0)) / 2
		}
	}
	return f
}

// At returns the velocity components for cell (x, y) in cells per tick.
func (f *VelocityField) At(x, y int) (float64, float64) {
	return f.vx.At(x, y), f.vy.At(x, y)
}

// Size reports the field dimensions.
func (f *VelocityField) Size() (int, int) { return f.vx.W, f.vx.H }
