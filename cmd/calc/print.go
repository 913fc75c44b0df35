package main

import (
	"fmt"
	"io"

	"vector3d-calc/internal/calc"
	"vector3d-calc/internal/history"
	"vector3d-calc/internal/solver"
	"vector3d-calc/internal/vecmath"
)

const rule = "------------------------------------------------------------"

// vec formats a vector with a fixed number of decimals.
func vec(v vecmath.Vec3, prec int) string {
	return fmt.Sprintf("(%.*f, %.*f, %.*f)", prec, v[0], prec, v[1], prec, v[2])
}

func printReport(w io.Writer, r calc.Report) {
	fmt.Fprintln(w, "Magnitudes")
	for _, m := range r.Magnitudes {
		fmt.Fprintf(w, "  |%s| = %.3f\n", m.Name, m.Magnitude)
	}
	if r.Sum != nil {
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "Sum          %s  |S| = %.3f\n", vec(r.Sum.Vector, 2), r.Sum.Magnitude)
	}
	p := r.Pair
	if p == nil {
		return
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%s - %s      %s  |D| = %.3f\n", p.A, p.B, vec(p.Difference.Vector, 2), p.Difference.Magnitude)
	fmt.Fprintf(w, "unit %s      %s\n", p.A, vec(p.NormalizedA.Vector, 3))
	fmt.Fprintf(w, "unit %s      %s\n", p.B, vec(p.NormalizedB.Vector, 3))
	fmt.Fprintf(w, "cos(θ)       %.4f\n", p.Angle.CosTheta)
	fmt.Fprintf(w, "θ            %.2f° (%.4f rad)\n", p.Angle.Degrees, p.Angle.Radians)
	fmt.Fprintf(w, "proj %s→%s   scalar %.3f  vector %s\n", p.A, p.B, p.Projection.Scalar, vec(p.Projection.Vector, 3))
	fmt.Fprintf(w, "%s · %s      %.3f\n", p.A, p.B, p.Dot)
	fmt.Fprintf(w, "%s × %s      %s  |C| = %.3f\n", p.A, p.B, vec(p.Cross.Vector, 2), p.Cross.Magnitude)
}

func printCable(w io.Writer, in solver.CableInput, r solver.CableResult) {
	fmt.Fprintln(w, "Cable tension")
	for i, c := range in.Cables {
		fmt.Fprintf(w, "  |Cable %c| = %.2f N  %s\n", 'A'+i, r.Magnitudes[i], vec(c, 2))
	}
	fmt.Fprintf(w, "R = %s N\n", vec(r.Resultant, 2))
	fmt.Fprintf(w, "|R| = %.2f N\n", r.ResultantMagnitude)
}

func printTorque(w io.Writer, in solver.TorqueInput, r solver.TorqueResult) {
	fmt.Fprintln(w, "Structural torque")
	fmt.Fprintf(w, "  |v1| = %.2f\n", r.Magnitude1)
	fmt.Fprintf(w, "  |v2| = %.2f\n", r.Magnitude2)
	fmt.Fprintf(w, "v1 × v2 = %s\n", vec(r.Cross, 2))
	fmt.Fprintf(w, "|τ| = %.2f\n", r.TorqueMagnitude)
}

func printField(w io.Writer, in solver.FieldInput, r solver.FieldResult) {
	fmt.Fprintln(w, "Field analysis")
	fmt.Fprintf(w, "  E = %s\n", vec(in.Field, 2))
	fmt.Fprintf(w, "|E| = %.2f\n", r.Intensity)
	fmt.Fprintf(w, "û = %s\n", vec(r.Direction, 3))
}

func printTrajectory(w io.Writer, in solver.TrajectoryInput, r solver.TrajectoryResult) {
	fmt.Fprintln(w, "Robot trajectory")
	fmt.Fprintf(w, "  final position  %s m\n", vec(r.FinalPosition, 2))
	fmt.Fprintf(w, "  total distance  %.2f m\n", r.TotalDistance)
	fmt.Fprintf(w, "  displacement    %.2f m\n", r.Displacement)
	fmt.Fprintf(w, "  work            %.2f J\n", r.Work)
}

func printHistory(w io.Writer, recs []history.Record) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No saved calculations.")
		return
	}
	for _, r := range recs {
		fmt.Fprintf(w, "%s  %s  %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04"), r.ID, history.Label(r.Kind))
		fmt.Fprintf(w, "    in:  %s\n", history.Summary(r.Input, 100))
		fmt.Fprintf(w, "    out: %s\n", history.Summary(r.Result, 100))
	}
}
