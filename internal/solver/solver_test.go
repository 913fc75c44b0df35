package solver

import (
	"encoding/json"
	"math"
	"testing"

	"vector3d-calc/internal/vecmath"
)

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestCableTension(t *testing.T) {
	r := CableTension(CableInput{Cables: DefaultCables})
	if r.Resultant != (Vec3{25, 50, 155}) {
		t.Fatalf("resultant=%v", r.Resultant)
	}
	want := [3]float64{70.71, 60.42, 66.71}
	for i := range want {
		if !near(r.Magnitudes[i], want[i], 0.005) {
			t.Fatalf("magnitudes[%d]=%v want ≈%v", i, r.Magnitudes[i], want[i])
		}
	}
	if !near(r.ResultantMagnitude, 164.77, 0.005) {
		t.Fatalf("resultant magnitude=%v", r.ResultantMagnitude)
	}
}

func TestStructuralTorque(t *testing.T) {
	r := StructuralTorque(TorqueInput{Vectors: DefaultStructure})
	if r.Cross != (Vec3{11, -1, -26}) {
		t.Fatalf("cross=%v", r.Cross)
	}
	if !near(r.TorqueMagnitude, 28.25, 0.005) {
		t.Fatalf("torque=%v", r.TorqueMagnitude)
	}
	if !near(r.Magnitude1, math.Sqrt(38), 1e-12) || !near(r.Magnitude2, math.Sqrt(21), 1e-12) {
		t.Fatalf("magnitudes=%v %v", r.Magnitude1, r.Magnitude2)
	}
}

func TestFieldAnalysis(t *testing.T) {
	r := FieldAnalysis(FieldInput{Field: DefaultField})
	if !near(r.Intensity, 111.80, 0.005) {
		t.Fatalf("intensity=%v", r.Intensity)
	}
	if !r.Direction.ApproxEqual(Vec3{0.894, 0, 0.447}, 0.0005) {
		t.Fatalf("direction=%v", r.Direction)
	}

	z := FieldAnalysis(FieldInput{})
	if z.Intensity != 0 || z.Direction != (Vec3{}) {
		t.Fatalf("zero field=%+v", z)
	}
}

func TestRobotTrajectory(t *testing.T) {
	r := RobotTrajectory(TrajectoryInput{Moves: DefaultMoves})
	if r.FinalPosition != (Vec3{13, 12, 15}) {
		t.Fatalf("final=%v", r.FinalPosition)
	}
	if !near(r.TotalDistance, 36.58, 0.01) {
		t.Fatalf("distance=%v", r.TotalDistance)
	}
	if !near(r.Displacement, 23.19, 0.005) {
		t.Fatalf("displacement=%v", r.Displacement)
	}
	// (10,5,0)·(-5,10,5) = 0 and (-5,10,5)·(8,-3,10) = -20
	if r.Work != -20 {
		t.Fatalf("work=%v", r.Work)
	}
}

func TestRobotTrajectoryAdjacentPairsOnly(t *testing.T) {
	moves := [3]Vec3{{1, 0, 0}, {0, 1, 0}, {1, 0, 0}}
	r := RobotTrajectory(TrajectoryInput{Moves: moves})
	// 1·3 would contribute 1; adjacent pairs are orthogonal.
	if r.Work != 0 {
		t.Fatalf("work=%v, want adjacent-pair sum 0", r.Work)
	}
	if r.TotalDistance != 3 || !near(r.Displacement, math.Sqrt(5), 1e-12) {
		t.Fatalf("r=%+v", r)
	}
}

func TestResultJSONShape(t *testing.T) {
	b, err := json.Marshal(CableTension(CableInput{Cables: DefaultCables}))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"resultant", "magnitudes", "resultantMagnitude"} {
		if _, ok := m[k]; !ok {
			t.Fatalf("missing %q in %s", k, b)
		}
	}
	var v vecmath.Vec3
	if err := json.Unmarshal(m["resultant"], &v); err != nil || v != (Vec3{25, 50, 155}) {
		t.Fatalf("resultant=%s err=%v", m["resultant"], err)
	}
}

func TestAssignChecksLength(t *testing.T) {
	in := CableInput{Cables: DefaultCables}
	if err := Assign(in.Cables[:], nil, "cables"); err != nil || in.Cables != DefaultCables {
		t.Fatalf("nil src: err=%v cables=%v", err, in.Cables)
	}
	for _, src := range [][]Vec3{{}, {{1, 2, 3}}, {{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}}} {
		if err := Assign(in.Cables[:], src, "cables"); err == nil {
			t.Fatalf("%d vectors accepted", len(src))
		}
	}
	if in.Cables != DefaultCables {
		t.Fatalf("rejected input changed defaults: %v", in.Cables)
	}
	src := []Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	if err := Assign(in.Cables[:], src, "cables"); err != nil {
		t.Fatal(err)
	}
	if in.Cables != [3]Vec3(src) {
		t.Fatalf("cables=%v", in.Cables)
	}
}
