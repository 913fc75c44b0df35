package raster

import (
	"math"

	"vector3d-calc/internal/vecmath"
)

// Camera maps world points to pixel coordinates and depth. It is fitted to a
// set of points so that all of them land inside the frame.
type Camera struct {
	rot         vecmath.Mat3
	perspective bool
	camDist     float64
	zCenter     float64

	center [2]float64
	scale  float64
	halfW  float64
	halfH  float64
}

// FitCamera orbits the origin at the given angles (degrees) and scales the
// view so every point fits within w×h minus margin pixels on each side.
func FitCamera(points []vecmath.Vec3, azimuth, elevation float64, perspective bool, fov float64, w, h, margin int) *Camera {
	c := &Camera{
		rot:         vecmath.Orbit(azimuth, elevation),
		perspective: perspective,
		halfW:       float64(w) / 2,
		halfH:       float64(h) / 2,
	}

	if perspective {
		zMin, zMax, xyMax := math.Inf(1), math.Inf(-1), 0.0
		for _, p := range points {
			t := c.rot.Apply(p)
			zMin = math.Min(zMin, t[2])
			zMax = math.Max(zMax, t[2])
			xyMax = math.Max(xyMax, math.Max(math.Abs(t[0]), math.Abs(t[1])))
		}
		if len(points) == 0 {
			zMin, zMax = 0, 0
		}
		if xyMax < 0.001 {
			xyMax = 0.001
		}
		c.zCenter = (zMin + zMax) / 2
		// Keep the nearest point in front of the eye.
		c.camDist = xyMax/math.Tan(vecmath.Deg2Rad(fov/2)) + (zMax - c.zCenter)
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		t := c.view(p)
		minX, maxX = math.Min(minX, t[0]), math.Max(maxX, t[0])
		minY, maxY = math.Min(minY, t[1]), math.Max(maxY, t[1])
	}
	if len(points) == 0 {
		minX, maxX, minY, maxY = -1, 1, -1, 1
	}
	c.center = [2]float64{(minX + maxX) / 2, (minY + maxY) / 2}

	spanX := math.Max(maxX-minX, 0.001)
	spanY := math.Max(maxY-minY, 0.001)
	availW := math.Max(float64(w-2*margin), 1)
	availH := math.Max(float64(h-2*margin), 1)
	c.scale = math.Min(availW/spanX, availH/spanY)
	return c
}

func (c *Camera) view(p vecmath.Vec3) vecmath.Vec3 {
	t := c.rot.Apply(p)
	if c.perspective {
		depth := math.Max(c.camDist-(t[2]-c.zCenter), 0.1)
		f := c.camDist / depth
		t[0] *= f
		t[1] *= f
	}
	return t
}

// Project returns screen x, y (y down) and view depth (larger is closer).
func (c *Camera) Project(p vecmath.Vec3) (x, y, z float64) {
	t := c.view(p)
	x = (t[0]-c.center[0])*c.scale + c.halfW
	y = -(t[1]-c.center[1])*c.scale + c.halfH
	return x, y, t[2]
}
