package calc

import (
	"context"

	"vector3d-calc/internal/history"
	"vector3d-calc/internal/vecmath"
)

type Vec3 = vecmath.Vec3

// Stored input shapes.
type (
	VectorInput struct {
		Vector Vec3 `json:"vector"`
	}
	PairInput struct {
		A Vec3 `json:"a"`
		B Vec3 `json:"b"`
	}
	ListInput struct {
		Vectors []Vec3 `json:"vectors"`
	}
)

// Result shapes. Vector-valued results carry their magnitude, as the
// operations panel shows it next to every vector.
type (
	MagnitudeResult struct {
		Magnitude float64 `json:"magnitude"`
	}
	VectorResult struct {
		Vector    Vec3    `json:"vector"`
		Magnitude float64 `json:"magnitude"`
	}
	DotResult struct {
		Dot float64 `json:"dot"`
	}
)

func vectorResult(v Vec3) VectorResult {
	return VectorResult{Vector: v, Magnitude: v.Len()}
}

func (c *Calculator) Magnitude(ctx context.Context, v Vec3) MagnitudeResult {
	r := MagnitudeResult{Magnitude: vecmath.Magnitude(v)}
	c.record(ctx, history.KindMagnitude, VectorInput{v}, r)
	return r
}

// Sum adds vs; an empty list sums to the zero vector.
func (c *Calculator) Sum(ctx context.Context, vs []Vec3) VectorResult {
	r := vectorResult(vecmath.Sum(vs...))
	c.record(ctx, history.KindSum, ListInput{vs}, r)
	return r
}

// Difference returns a - b.
func (c *Calculator) Difference(ctx context.Context, a, b Vec3) VectorResult {
	r := vectorResult(vecmath.Subtract(a, b))
	c.record(ctx, history.KindDifference, PairInput{a, b}, r)
	return r
}

func (c *Calculator) Dot(ctx context.Context, a, b Vec3) DotResult {
	r := DotResult{Dot: vecmath.Dot(a, b)}
	c.record(ctx, history.KindDotProduct, PairInput{a, b}, r)
	return r
}

func (c *Calculator) Cross(ctx context.Context, a, b Vec3) VectorResult {
	r := vectorResult(vecmath.Cross(a, b))
	c.record(ctx, history.KindCrossProduct, PairInput{a, b}, r)
	return r
}

func (c *Calculator) Normalize(ctx context.Context, v Vec3) VectorResult {
	r := vectorResult(vecmath.Normalize(v))
	c.record(ctx, history.KindNormalize, VectorInput{v}, r)
	return r
}

func (c *Calculator) Angle(ctx context.Context, a, b Vec3) vecmath.Angle {
	r := vecmath.AngleBetween(a, b)
	c.record(ctx, history.KindAngle, PairInput{a, b}, r)
	return r
}

// Projection projects a onto b.
func (c *Calculator) Projection(ctx context.Context, a, b Vec3) vecmath.Projection {
	r := vecmath.ProjectOnto(a, b)
	c.record(ctx, history.KindProjection, PairInput{a, b}, r)
	return r
}
