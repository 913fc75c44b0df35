package calc

import (
	"vector3d-calc/internal/vecinput"
	"vector3d-calc/internal/vecmath"
)

// NamedMagnitude is one row of the magnitude table.
type NamedMagnitude struct {
	Name      string  `json:"name"`
	Vector    Vec3    `json:"vector"`
	Magnitude float64 `json:"magnitude"`
}

// PairReport compares the first two vectors of the list.
type PairReport struct {
	A           string             `json:"a"`
	B           string             `json:"b"`
	Difference  VectorResult       `json:"difference"`
	NormalizedA VectorResult       `json:"normalizedA"`
	NormalizedB VectorResult       `json:"normalizedB"`
	Angle       vecmath.Angle      `json:"angle"`
	Projection  vecmath.Projection `json:"projection"` // A onto B
	Dot         float64            `json:"dot"`
	Cross       VectorResult       `json:"cross"`
}

// Report is everything the operations panel shows for a vector list.
type Report struct {
	Magnitudes []NamedMagnitude `json:"magnitudes"`
	Sum        *VectorResult    `json:"sum,omitempty"`
	Pair       *PairReport      `json:"pair,omitempty"`
}

// Operations evaluates the panel for list without recording anything. Sum is
// absent for an empty list; Pair needs at least two vectors.
func Operations(list []vecinput.Named) Report {
	r := Report{Magnitudes: make([]NamedMagnitude, 0, len(list))}
	for _, n := range list {
		r.Magnitudes = append(r.Magnitudes, NamedMagnitude{Name: n.Name, Vector: n.Vec, Magnitude: n.Vec.Len()})
	}
	if len(list) == 0 {
		return r
	}
	sum := vectorResult(vecmath.Sum(vecinput.Vecs(list)...))
	r.Sum = &sum
	if len(list) < 2 {
		return r
	}
	a, b := list[0].Vec, list[1].Vec
	r.Pair = &PairReport{
		A:           list[0].Name,
		B:           list[1].Name,
		Difference:  vectorResult(a.Sub(b)),
		NormalizedA: vectorResult(a.Normalize()),
		NormalizedB: vectorResult(b.Normalize()),
		Angle:       vecmath.AngleBetween(a, b),
		Projection:  vecmath.ProjectOnto(a, b),
		Dot:         a.Dot(b),
		Cross:       vectorResult(a.Cross(b)),
	}
	return r
}
