package clouds

import (
	"image/color"

	"github.com/mazznoer/colorgrad"
)

var cloudPalette = buildCloudPalette()

// Palette exposes the 256-entry ramp used to render the composite display
// buffer.
func (s *System) Palette() []color.RGBA {
	return cloudPalette
}

func buildCloudPalette() []color.RGBA {
	grad := colorgrad.Viridis()
	cols := grad.Colors(256)
	palette := make([]color.RGBA, len(cols))
	for i, c := range cols {
		r, g, b, a := c.RGBA()
		palette[i] = color.RGBA{
			R: uint8(r >> 8),
			G: uint8(g >> 8),
			B: uint8(b >> 8),
			A: uint8(a >> 8),
		}
	}
	return palette
}

// rebuildDisplay folds all cloud densities into the byte display buffer,
// saturating at 255 per cell.
func (s *System) rebuildDisplay() {
	for i := range s.display {
		s.display[i] = 0
	}
	for _, c := range s.clouds {
		vals := c.density.Values()
		for i, d := range vals {
			if d <= 0 {
				continue
			}
			v := int(s.display[i]) + int(d)
			if v > 255 {
				v = 255
			}
			s.display[i] = uint8(v)
		}
	}
}
