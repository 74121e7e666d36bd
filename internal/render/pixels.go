package render

import "image/color"

// FillDensityRGBA encodes a density field as RGBA pixels: the tint supplies
// the color channels and the clamped density value becomes the alpha
// channel. This matches the layered-cloud presentation where each compound
// is a translucent tinted sheet.
func FillDensityRGBA(buf []byte, density []float64, tint color.NRGBA) {
	for i, d := range density {
		a := int(d)
		if a < 0 {
			a = 0
		}
		if a > 255 {
			a = 255
		}
		base := i * 4
		buf[base+0] = tint.R
		buf[base+1] = tint.G
		buf[base+2] = tint.B
		buf[base+3] = uint8(a)
	}
}

// FillPaletteRGBA converts cell values into RGBA pixels using a palette.
// When the palette is empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
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
