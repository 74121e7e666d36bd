package clouds

import "cloudsim/internal/core"

// Cells holding at most this much density are treated as empty by advection.
const emptyThreshold = 1.0

// diffuse relaxes prev toward the neighbor average of the current field:
//
//	prev[x][y] = (cur[x][y] + a*(prev neighbors)) / (1 + 4a)
//
// for interior cells only; border cells are left untouched (frozen
// boundary). This is deliberately a single relaxation sweep per tick with a
// fixed unit time step, not an iterated implicit solve.
func diffuse(rate float64, prev, cur *core.FloatGrid) {
	w, h := cur.W, cur.H
	pv := prev.Values()
	cv := cur.Values()
	a := rate
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			pv[i] = (cv[i] + a*(pv[i-1]+pv[i+1]+pv[i-w]+pv[i+w])) / (1 + 4*a)
		}
	}
}

// advect rebuilds cur by pushing the diffused field one unit time step along
// the velocity field. Each interior source cell above the empty threshold is
// splat bilinearly onto the four cells around its destination; the
// destination is clamped half a cell inside the border so the whole
// footprint stays in bounds.
func advect(vel *VelocityField, prev, cur *core.FloatGrid) {
	cur.Clear()

	w, h := cur.W, cur.H
	pv := prev.Values()
	cv := cur.Values()
	xs := vel.vx.Values()
	ys := vel.vy.Values()

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			m := pv[i]
			if m <= emptyThreshold {
				continue
			}

			dx := float64(x) + xs[i]
			dy := float64(y) + ys[i]
			if dx < 0.5 {
				dx = 0.5
			}
			if dx > float64(w)-1.5 {
				dx = float64(w) - 1.5
			}
			if dy < 0.5 {
				dy = 0.5
			}
			if dy > float64(h)-1.5 {
				dy = float64(h) - 1.5
			}

			x0 := int(dx)
			y0 := int(dy)
			s1 := dx - float64(x0)
			s0 := 1 - s1
			t1 := dy - float64(y0)
			t0 := 1 - t1

			j := y0*w + x0
			cv[j] += m * s0 * t0
			cv[j+w] += m * s0 * t1
			cv[j+1] += m * s1 * t0
			cv[j+w+1] += m * s1 * t1
		}
	}
}
