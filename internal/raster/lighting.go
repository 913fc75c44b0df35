package raster

import (
	"image/color"
	"math"

	"vector3d-calc/internal/vecmath"
)

// LightConfig is an ambient term plus a key and a fill light, given as world
// directions toward the lights.
type LightConfig struct {
	KeyDir  vecmath.Vec3
	FillDir vecmath.Vec3
	Ambient float64
	Key     float64
	Fill    float64
}

// DefaultLightConfig mirrors the interactive viewer: ambient 0.5, a point
// light at (10,10,10) and a dimmer one at (-10,-10,-10).
func DefaultLightConfig() LightConfig {
	return LightConfig{
		KeyDir:  vecmath.Vec3{10, 10, 10}.Normalize(),
		FillDir: vecmath.Vec3{-10, -10, -10}.Normalize(),
		Ambient: 0.5,
		Key:     1.0,
		Fill:    0.3,
	}
}

// ComputeShade returns the lighting scalar for an outward unit face normal.
func (lc *LightConfig) ComputeShade(normal vecmath.Vec3) float64 {
	key := math.Max(normal.Dot(lc.KeyDir), 0)
	fill := math.Max(normal.Dot(lc.FillDir), 0)
	return lc.Ambient + key*lc.Key + fill*lc.Fill
}

// Shade scales the color channels of c, keeping alpha.
func Shade(c color.NRGBA, s float64) color.NRGBA {
	return color.NRGBA{
		R: clamp255(float64(c.R) * s),
		G: clamp255(float64(c.G) * s),
		B: clamp255(float64(c.B) * s),
		A: c.A,
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
