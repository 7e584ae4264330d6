package geom

import (
	"math"
)

// QuadBez is a quadratic Bézier segment from P0 to P2 with control point P1.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Eval evaluates the curve at t ∈ [0, 1] as (1-t)²·P0 + 2(1-t)t·P1 + t²·P2.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	return Point{
		X: mt*mt*q.P0.X + 2.0*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2.0*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// ControlBox returns the bounding box of the control polygon, which always
// encloses the curve.
func (q QuadBez) ControlBox() BBox {
	return NewBBoxFromPoints(q.P0, q.P1, q.P2)
}

// CubicBez is a cubic Bézier segment from P0 to P3 with control points P1 and
// P2.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the curve at t ∈ [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	return Point{
		X: mt*mt*mt*c.P0.X + 3.0*mt*mt*t*c.P1.X + 3.0*mt*t*t*c.P2.X + t*t*t*c.P3.X,
		Y: mt*mt*mt*c.P0.Y + 3.0*mt*mt*t*c.P1.Y + 3.0*mt*t*t*c.P2.Y + t*t*t*c.P3.Y,
	}
}

func (c CubicBez) ControlBox() BBox {
	return NewBBoxFromPoints(c.P0, c.P1, c.P2, c.P3)
}

// Arc is a circular arc. Angles are in radians, with 0 pointing along +x and
// positive angles turning towards +y. EndAngle may be smaller than StartAngle,
// in which case the arc runs the other way.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// Sweep returns EndAngle − StartAngle.
func (a Arc) Sweep() float64 {
	return a.EndAngle - a.StartAngle
}

// Angle returns the angle at t ∈ [0, 1], interpolated linearly from the start
// to the end angle.
func (a Arc) Angle(t float64) float64 {
	return a.StartAngle + (a.EndAngle-a.StartAngle)*t
}

// PointAt returns the point on the circle at angle th.
func (a Arc) PointAt(th float64) Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(th),
		Y: a.Center.Y + a.Radius*math.Sin(th),
	}
}

// Eval evaluates the arc at t ∈ [0, 1].
func (a Arc) Eval(t float64) Point {
	return a.PointAt(a.Angle(t))
}

// StartPoint returns the point at the start angle.
func (a Arc) StartPoint() Point { return a.PointAt(a.StartAngle) }

// EndPoint returns the point at the end angle.
func (a Arc) EndPoint() Point { return a.PointAt(a.EndAngle) }

// CircleBox returns the bounding box of the full circle, regardless of the
// arc's sweep.
func (a Arc) CircleBox() BBox {
	return BBox{
		X0: a.Center.X - a.Radius,
		Y0: a.Center.Y - a.Radius,
		X1: a.Center.X + a.Radius,
		Y1: a.Center.Y + a.Radius,
	}
}

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Eval evaluates the line at t ∈ [0, 1].
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}
