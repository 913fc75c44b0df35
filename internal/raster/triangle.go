package raster

import (
	"image/color"
	"math"
)

// RasterizeTriangle fills a flat-colored triangle given in screen space with
// per-pixel depth testing.
func RasterizeTriangle(fb *FrameBuffer, x, y, z [3]float64, c color.NRGBA) {
	minX := int(math.Floor(math.Min(math.Min(x[0], x[1]), x[2])))
	maxX := int(math.Ceil(math.Max(math.Max(x[0], x[1]), x[2])))
	minY := int(math.Floor(math.Min(math.Min(y[0], y[1]), y[2])))
	maxY := int(math.Ceil(math.Max(math.Max(y[0], y[1]), y[2])))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y[1]-y[2])*(x[0]-x[2]) + (x[2]-x[1])*(y[0]-y[2])
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y[1] - y[2]
	dx21 := x[2] - x[1]
	dy20 := y[2] - y[0]
	dx02 := x[0] - x[2]

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y[2]
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x[2]
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}
			fb.Plot(sx, sy, w0*z[0]+w1*z[1]+w2*z[2], c)
		}
	}
}
