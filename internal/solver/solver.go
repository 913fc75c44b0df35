// Package solver composes vecmath primitives into the four applied problems:
// cable tension, structural torque, field analysis and robot trajectory.
// Inputs have fixed shapes, expressed as arrays so the count is checked at
// compile time.
package solver

import (
	"fmt"

	"vector3d-calc/internal/vecmath"
)

type Vec3 = vecmath.Vec3

// Default inputs offered by the problem forms.
var (
	DefaultCables    = [3]Vec3{{30, 40, 50}, {-20, 35, 45}, {15, -25, 60}}
	DefaultStructure = [2]Vec3{{5, 3, 2}, {2, -4, 1}}
	DefaultField     = Vec3{100, 0, 50}
	DefaultMoves     = [3]Vec3{{10, 5, 0}, {-5, 10, 5}, {8, -3, 10}}
)

// Assign copies src over the defaults in dst. A nil src keeps the defaults;
// otherwise it must hold exactly len(dst) vectors.
func Assign(dst, src []Vec3, name string) error {
	if src == nil {
		return nil
	}
	if len(src) != len(dst) {
		return fmt.Errorf("solver: %s needs exactly %d vectors, got %d", name, len(dst), len(src))
	}
	copy(dst, src)
	return nil
}

// CableInput is the stored input of a cable tension problem.
type CableInput struct {
	Cables [3]Vec3 `json:"cables"`
}

// CableResult is the resultant force on a node held by three cables.
type CableResult struct {
	Resultant          Vec3       `json:"resultant"`
	Magnitudes         [3]float64 `json:"magnitudes"`
	ResultantMagnitude float64    `json:"resultantMagnitude"`
}

// CableTension sums three cable tension vectors.
func CableTension(in CableInput) CableResult {
	var r CableResult
	for i, c := range in.Cables {
		r.Magnitudes[i] = c.Len()
	}
	r.Resultant = vecmath.Sum(in.Cables[:]...)
	r.ResultantMagnitude = r.Resultant.Len()
	return r
}

// TorqueInput is the stored input of a structural torque problem:
// a lever arm and the force applied at its end.
type TorqueInput struct {
	Vectors [2]Vec3 `json:"vectors"`
}

// TorqueResult holds the moment v1 × v2.
type TorqueResult struct {
	Cross           Vec3    `json:"cross"`
	TorqueMagnitude float64 `json:"torqueMagnitude"`
	Magnitude1      float64 `json:"magnitude1"`
	Magnitude2      float64 `json:"magnitude2"`
}

func StructuralTorque(in TorqueInput) TorqueResult {
	v1, v2 := in.Vectors[0], in.Vectors[1]
	cross := v1.Cross(v2)
	return TorqueResult{
		Cross:           cross,
		TorqueMagnitude: cross.Len(),
		Magnitude1:      v1.Len(),
		Magnitude2:      v2.Len(),
	}
}

// FieldInput is the stored input of a field analysis problem.
type FieldInput struct {
	Field Vec3 `json:"field"`
}

// FieldResult is the intensity and unit direction of a field vector.
// A zero field has zero intensity and the zero direction.
type FieldResult struct {
	Intensity float64 `json:"intensity"`
	Direction Vec3    `json:"direction"`
}

func FieldAnalysis(in FieldInput) FieldResult {
	return FieldResult{
		Intensity: in.Field.Len(),
		Direction: in.Field.Normalize(),
	}
}

// TrajectoryInput is the stored input of a robot trajectory problem:
// three consecutive displacement moves.
type TrajectoryInput struct {
	Moves [3]Vec3 `json:"moves"`
}

// TrajectoryResult summarises a three-move path starting at the origin.
type TrajectoryResult struct {
	FinalPosition Vec3    `json:"finalPosition"`
	TotalDistance float64 `json:"totalDistance"`
	Displacement  float64 `json:"displacement"`
	Work          float64 `json:"work"`
}

// RobotTrajectory sums the moves and their lengths. Work is approximated as
// the sum of dot products of adjacent moves only (1·2 + 2·3, never 1·3).
func RobotTrajectory(in TrajectoryInput) TrajectoryResult {
	var r TrajectoryResult
	for i, m := range in.Moves {
		r.TotalDistance += m.Len()
		if i+1 < len(in.Moves) {
			r.Work += m.Dot(in.Moves[i+1])
		}
	}
	r.FinalPosition = vecmath.Sum(in.Moves[:]...)
	r.Displacement = r.FinalPosition.Len()
	return r
}
