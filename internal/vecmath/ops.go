package vecmath

import (
	"math"

	"github.com/golang/geo/s1"
)

// Magnitude returns |v|.
func Magnitude(v Vec3) float64 {
	return v.Len()
}

// Sum folds vs left to right starting from the zero vector.
// An empty list sums to the zero vector.
func Sum(vs ...Vec3) Vec3 {
	var acc Vec3
	for _, v := range vs {
		acc = acc.Add(v)
	}
	return acc
}

// Subtract returns a - b.
func Subtract(a, b Vec3) Vec3 {
	return a.Sub(b)
}

func Dot(a, b Vec3) float64 {
	return a.Dot(b)
}

func Cross(a, b Vec3) Vec3 {
	return a.Cross(b)
}

func Normalize(v Vec3) Vec3 {
	return v.Normalize()
}

// Angle is the angle between two vectors in both units together with the
// cosine it was derived from.
type Angle struct {
	Radians  float64 `json:"radians"`
	Degrees  float64 `json:"degrees"`
	CosTheta float64 `json:"cosTheta"`
}

// AngleBetween returns the angle between a and b. If either vector has zero
// length the all-zero Angle is returned. The cosine is taken between the unit
// vectors, so large components cannot overflow, and clamped to [-1, 1]
// before acos.
func AngleBetween(a, b Vec3) Angle {
	ua, ub := a.Normalize(), b.Normalize()
	if ua.IsZero() || ub.IsZero() {
		return Angle{}
	}
	cos := clamp(ua.Dot(ub), -1, 1)
	rad := s1.Angle(math.Acos(cos))
	return Angle{
		Radians:  rad.Radians(),
		Degrees:  rad.Degrees(),
		CosTheta: cos,
	}
}

// Projection is the projection of one vector onto another.
type Projection struct {
	Scalar float64 `json:"scalar"`
	Vector Vec3    `json:"vector"`
}

// ProjectOnto projects a onto b: scalar (a·b)/|b| and vector ((a·b)/|b|²)·b,
// evaluated as a·b̂ and (a·b̂)·b̂ with b̂ = b/|b|. Projecting onto the zero
// vector yields the zero Projection.
func ProjectOnto(a, b Vec3) Projection {
	ub := b.Normalize()
	if ub.IsZero() {
		return Projection{}
	}
	s := a.Dot(ub)
	return Projection{
		Scalar: s,
		Vector: ub.Scale(s),
	}
}

// clamp limits x to [lo, hi]; NaN maps to 0.
func clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
