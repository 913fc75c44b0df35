package api

import (
	"fmt"
	"net/http"

	"vector3d-calc/internal/calc"
	"vector3d-calc/internal/solver"
	"vector3d-calc/internal/vecinput"
	"vector3d-calc/internal/vecmath"
)

type vectorsBody struct {
	Vectors []vecmath.Vec3 `json:"vectors"`
}

// operations returns the whole operations panel for the posted vectors.
// Nothing is recorded.
func (s *Server) operations(w http.ResponseWriter, r *http.Request) {
	var body vectorsBody
	if err := decodeBody(r, &body); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	writeJSON(w, calc.Operations(vecinput.FromVecs(body.Vectors)))
}

// arity is the number of vectors each single operation reads; -1 means any.
var arity = map[string]int{
	"magnitude":  1,
	"normalize":  1,
	"sum":        -1,
	"difference": 2,
	"dot":        2,
	"cross":      2,
	"angle":      2,
	"projection": 2,
}

func (s *Server) operation(w http.ResponseWriter, r *http.Request) {
	op := r.PathValue("op")
	n, ok := arity[op]
	if !ok {
		http.Error(w, fmt.Sprintf("unknown operation %q", op), http.StatusNotFound)
		return
	}
	var body vectorsBody
	if err := decodeBody(r, &body); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if len(body.Vectors) < n {
		http.Error(w, fmt.Sprintf("%s needs %d vectors", op, n), http.StatusBadRequest)
		return
	}

	ctx, _ := userContext(r)
	v := body.Vectors
	var res any
	switch op {
	case "magnitude":
		res = s.calc.Magnitude(ctx, v[0])
	case "normalize":
		res = s.calc.Normalize(ctx, v[0])
	case "sum":
		res = s.calc.Sum(ctx, v)
	case "difference":
		res = s.calc.Difference(ctx, v[0], v[1])
	case "dot":
		res = s.calc.Dot(ctx, v[0], v[1])
	case "cross":
		res = s.calc.Cross(ctx, v[0], v[1])
	case "angle":
		res = s.calc.Angle(ctx, v[0], v[1])
	case "projection":
		res = s.calc.Projection(ctx, v[0], v[1])
	}
	writeJSON(w, res)
}

// solveBody mirrors the solver inputs with slices, so a list of the wrong
// length is rejected rather than truncated or zero-filled.
type solveBody struct {
	Cables  []vecmath.Vec3 `json:"cables"`
	Vectors []vecmath.Vec3 `json:"vectors"`
	Field   *vecmath.Vec3  `json:"field"`
	Moves   []vecmath.Vec3 `json:"moves"`
}

// solve runs an applied problem. Absent inputs take the defaults.
func (s *Server) solve(w http.ResponseWriter, r *http.Request) {
	problem := r.PathValue("problem")
	switch problem {
	case "cable-tension", "cable", "structure", "field", "robot":
	default:
		http.Error(w, fmt.Sprintf("unknown problem %q", problem), http.StatusNotFound)
		return
	}
	var body solveBody
	if err := decodeBody(r, &body); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	ctx, _ := userContext(r)
	var (
		res any
		err error
	)
	switch problem {
	case "cable-tension", "cable":
		in := solver.CableInput{Cables: solver.DefaultCables}
		if err = solver.Assign(in.Cables[:], body.Cables, "cables"); err == nil {
			res = s.calc.CableTension(ctx, in)
		}
	case "structure":
		in := solver.TorqueInput{Vectors: solver.DefaultStructure}
		if err = solver.Assign(in.Vectors[:], body.Vectors, "vectors"); err == nil {
			res = s.calc.StructuralTorque(ctx, in)
		}
	case "field":
		in := solver.FieldInput{Field: solver.DefaultField}
		if body.Field != nil {
			in.Field = *body.Field
		}
		res = s.calc.FieldAnalysis(ctx, in)
	case "robot":
		in := solver.TrajectoryInput{Moves: solver.DefaultMoves}
		if err = solver.Assign(in.Moves[:], body.Moves, "moves"); err == nil {
			res = s.calc.RobotTrajectory(ctx, in)
		}
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, res)
}
