package raster

import (
	"image/color"
	"math"
)

// DrawLine draws a depth-tested screen-space segment of the given pixel
// radius, interpolating depth along its length.
func DrawLine(fb *FrameBuffer, x0, y0, z0, x1, y1, z1, radius float64, c color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		stamp(fb, x0+dx*t, y0+dy*t, z0+(z1-z0)*t, radius, c)
	}
}

// stamp fills a disc centered at (cx, cy); radii under one pixel plot the
// covering pixel only.
func stamp(fb *FrameBuffer, cx, cy, z, r float64, c color.NRGBA) {
	if r < 0.75 {
		fb.Plot(int(math.Floor(cx)), int(math.Floor(cy)), z, c)
		return
	}
	r2 := r * r
	for py := int(math.Floor(cy - r)); py <= int(math.Ceil(cy+r)); py++ {
		for px := int(math.Floor(cx - r)); px <= int(math.Ceil(cx+r)); px++ {
			ddx := float64(px) + 0.5 - cx
			ddy := float64(py) + 0.5 - cy
			if ddx*ddx+ddy*ddy <= r2 {
				fb.Plot(px, py, z, c)
			}
		}
	}
}
