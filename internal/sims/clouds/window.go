package clouds

import "cloudsim/internal/core"

// bandStrideX is the world-space distance of one window third along X.
func (s *System) bandStrideX() int { return s.width / 3 * s.gridSize }

// bandStrideY is the world-space distance of one window third along Y.
func (s *System) bandStrideY() int { return s.height / 3 * s.gridSize }

// recenterWindow advances the shared window offset when the reference point
// has drifted past half a band from the window center. At most one band
// stride is applied per axis per tick; a reference crossing several
// thresholds in a single tick catches up on later ticks, or never if it
// keeps outrunning the window.
func (s *System) recenterWindow(refX, refY float64) {
	halfX := s.width / 3 * s.gridSize / 2
	halfY := s.height / 3 * s.gridSize / 2

	switch {
	case refX > float64(s.offsetX+halfX):
		s.offsetX += s.bandStrideX()
	case refX < float64(s.offsetX-halfX):
		s.offsetX -= s.bandStrideX()
	}
	switch {
	case refY > float64(s.offsetY+halfY):
		s.offsetY += s.bandStrideY()
	case refY < float64(s.offsetY-halfY):
		s.offsetY -= s.bandStrideY()
	}
}

// shiftBandsX scrolls the grid contents one third of its width. dir > 0
// means the window moved toward +X: each cell takes the value one band to
// its right and the rightmost band is zero-filled. dir < 0 mirrors this.
func shiftBandsX(g *core.FloatGrid, dir int) {
	w, h := g.W, g.H
	band := w / 3
	v := g.Values()
	for y := 0; y < h; y++ {
		row := y * w
		if dir > 0 {
			for x := 0; x < band; x++ {
				i := row + x
				v[i] = v[i+band]
				v[i+band] = v[i+2*band]
				v[i+2*band] = 0
			}
		} else {
			for x := 0; x < band; x++ {
				i := row + x
				v[i+2*band] = v[i+band]
				v[i+band] = v[i]
				v[i] = 0
			}
		}
	}
}

// shiftBandsY scrolls the grid contents one third of its height, with the
// same direction convention as shiftBandsX.
func shiftBandsY(g *core.FloatGrid, dir int) {
	w, h := g.W, g.H
	band := h / 3
	stride := band * w
	v := g.Values()
	for y := 0; y < band; y++ {
		row := y * w
		if dir > 0 {
			for x := 0; x < w; x++ {
				i := row + x
				v[i] = v[i+stride]
				v[i+stride] = v[i+2*stride]
				v[i+2*stride] = 0
			}
		} else {
			for x := 0; x < w; x++ {
				i := row + x
				v[i+2*stride] = v[i+stride]
				v[i+stride] = v[i]
				v[i] = 0
			}
		}
	}
}

// syncWindow walks the cloud's window placement to the shared offset one
// band at a time, shifting both density buffers so the diffusion input stays
// coherent across the move. Clouds registered mid-session at a stale offset
// catch up over any number of bands; both axes are handled, one conveyor
// step per band.
func (c *Cloud) syncWindow(offsetX, offsetY, strideX, strideY int) {
	for c.offsetX < offsetX {
		shiftBandsX(c.density, 1)
		shiftBandsX(c.previous, 1)
		c.offsetX += strideX
	}
	for c.offsetX > offsetX {
		shiftBandsX(c.density, -1)
		shiftBandsX(c.previous, -1)
		c.offsetX -= strideX
	}
	for c.offsetY < offsetY {
		shiftBandsY(c.density, 1)
		shiftBandsY(c.previous, 1)
		c.offsetY += strideY
	}
	for c.offsetY > offsetY {
		shiftBandsY(c.density, -1)
		shiftBandsY(c.previous, -1)
		c.offsetY -= strideY
	}
}
