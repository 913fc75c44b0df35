package vecmath

import "math"

// RotX rotates about the X axis. Angle in radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY rotates about the Y axis. Angle in radians.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// Orbit builds a world-to-view rotation for a Y-up scene viewed from a camera
// at the given azimuth (around +Y, from +Z toward +X) and elevation above the
// XZ plane, both in degrees. The camera looks at the origin along -Z in view
// space, so larger view Z means closer to the camera.
func Orbit(azimuthDeg, elevationDeg float64) Mat3 {
	return RotX(Deg2Rad(elevationDeg)).Mul(RotY(-Deg2Rad(azimuthDeg)))
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
