package calc

import (
	"context"

	"vector3d-calc/internal/history"
	"vector3d-calc/internal/solver"
)

func (c *Calculator) CableTension(ctx context.Context, in solver.CableInput) solver.CableResult {
	r := solver.CableTension(in)
	c.record(ctx, history.KindCableTension, in, r)
	return r
}

func (c *Calculator) StructuralTorque(ctx context.Context, in solver.TorqueInput) solver.TorqueResult {
	r := solver.StructuralTorque(in)
	c.record(ctx, history.KindStructureAnalysis, in, r)
	return r
}

func (c *Calculator) FieldAnalysis(ctx context.Context, in solver.FieldInput) solver.FieldResult {
	r := solver.FieldAnalysis(in)
	c.record(ctx, history.KindFieldAnalysis, in, r)
	return r
}

func (c *Calculator) RobotTrajectory(ctx context.Context, in solver.TrajectoryInput) solver.TrajectoryResult {
	r := solver.RobotTrajectory(in)
	c.record(ctx, history.KindRobotTrajectory, in, r)
	return r
}
