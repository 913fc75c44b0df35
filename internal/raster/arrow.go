package raster

import (
	"image/color"
	"math"

	"vector3d-calc/internal/vecmath"
)

const coneSegments = 16

// drawArrow draws a shaft from origin to tip and a lit cone head of the given
// length and base radius (world units). Zero-length arrows draw nothing.
func drawArrow(fb *FrameBuffer, cam *Camera, lc *LightConfig, origin, tip vecmath.Vec3, headLen, headRadius, shaftPx float64, c color.NRGBA) {
	d := tip.Sub(origin)
	length := d.Len()
	if length == 0 {
		return
	}
	dir := d.Scale(1 / length)
	if headLen > length {
		headLen = length
	}
	base := tip.Sub(dir.Scale(headLen))

	x0, y0, z0 := cam.Project(origin)
	x1, y1, z1 := cam.Project(base)
	DrawLine(fb, x0, y0, z0, x1, y1, z1, shaftPx, c)

	u, v := basis(dir)
	ring := make([]vecmath.Vec3, coneSegments)
	for i := range ring {
		a := 2 * math.Pi * float64(i) / coneSegments
		off := u.Scale(math.Cos(a) * headRadius).Add(v.Scale(math.Sin(a) * headRadius))
		ring[i] = base.Add(off)
	}
	centroid := base.Add(dir.Scale(headLen / 4))

	for i := range ring {
		a, b := ring[i], ring[(i+1)%coneSegments]
		drawFace(fb, cam, lc, [3]vecmath.Vec3{tip, a, b}, centroid, c)
		drawFace(fb, cam, lc, [3]vecmath.Vec3{base, b, a}, centroid, c)
	}
}

// drawFace shades a world-space triangle with its normal oriented away from
// the solid's centroid.
func drawFace(fb *FrameBuffer, cam *Camera, lc *LightConfig, tri [3]vecmath.Vec3, centroid vecmath.Vec3, c color.NRGBA) {
	n := tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0])).Normalize()
	mid := vecmath.Sum(tri[0], tri[1], tri[2]).Scale(1.0 / 3)
	if n.Dot(mid.Sub(centroid)) < 0 {
		n = n.Neg()
	}
	var x, y, z [3]float64
	for i, p := range tri {
		x[i], y[i], z[i] = cam.Project(p)
	}
	RasterizeTriangle(fb, x, y, z, Shade(c, lc.ComputeShade(n)))
}

// basis returns two unit vectors orthogonal to dir and to each other.
func basis(dir vecmath.Vec3) (vecmath.Vec3, vecmath.Vec3) {
	helper := vecmath.Vec3{1, 0, 0}
	if math.Abs(dir[0]) > 0.9 {
		helper = vecmath.Vec3{0, 1, 0}
	}
	u := dir.Cross(helper).Normalize()
	return u, dir.Cross(u)
}
