// Package vecmath implements the closed-form arithmetic on 3-component vectors
// behind every calculation: magnitude, sums, dot and cross products,
// normalization, angles and projections. Every function is pure; degenerate
// inputs (zero-length vectors) yield zero-valued results instead of NaN.
package vecmath

import (
	"encoding/json"
	"fmt"
	"math"
)

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 [3]float64

// V builds a Vec3 from its components.
func V(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross is the right-handed cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// LenSq is the squared magnitude.
func (v Vec3) LenSq() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Len is the Euclidean magnitude, sqrt(x²+y²+z²). When the sum of squares
// overflows or underflows, the components are rescaled by the largest one
// first, so every finite vector has a finite length and only the zero vector
// has length 0.
func (v Vec3) Len() float64 {
	sq := v.LenSq()
	if sq >= minNormal && !math.IsInf(sq, 1) {
		return math.Sqrt(sq)
	}
	m := math.Max(math.Abs(v[0]), math.Max(math.Abs(v[1]), math.Abs(v[2])))
	if m == 0 {
		return 0
	}
	u := Vec3{v[0] / m, v[1] / m, v[2] / m}
	return m * math.Sqrt(u.LenSq())
}

// minNormal is the smallest positive normal float64.
const minNormal = 0x1p-1022

// Normalize returns v/|v|, or the zero vector when |v| is exactly zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	if math.IsInf(l, 1) {
		m := math.Max(math.Abs(v[0]), math.Max(math.Abs(v[1]), math.Abs(v[2])))
		v = Vec3{v[0] / m, v[1] / m, v[2] / m}
		l = v.Len()
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

func (v Vec3) IsZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// ApproxEqual reports whether every component differs by at most eps.
func (a Vec3) ApproxEqual(b Vec3, eps float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}

// vecJSON is the wire shape used by stored calculation payloads.
type vecJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) MarshalJSON() ([]byte, error) {
	return json.Marshal(vecJSON{v[0], v[1], v[2]})
}

func (v *Vec3) UnmarshalJSON(data []byte) error {
	var w vecJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("vecmath: decode vector: %w", err)
	}
	*v = Vec3{w.X, w.Y, w.Z}
	return nil
}
