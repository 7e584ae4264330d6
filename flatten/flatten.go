// Package flatten converts curve segments into polylines and native drawing
// commands.
//
// Sampling is fixed-step and deterministic: quadratic Béziers are sampled at
// [QuadSteps], cubic Béziers at [CubicSteps] and arcs at [ArcSteps] steps.
// Each consumer picks the representation it needs. SVG and PNG output draw
// Béziers natively and only approximate arcs, while DXF and PDF output work on
// sampled points.
package flatten

import (
	"math"

	"github.com/eggfriedrice24/tcad/geom"
	"github.com/eggfriedrice24/tcad/pattern"
)

const (
	// QuadSteps is the number of steps a quadratic Bézier is sampled at.
	QuadSteps = 16
	// CubicSteps is the number of steps a cubic Bézier is sampled at.
	CubicSteps = 24
	// ArcResolution is the approximate angle, in radians, covered by one arc
	// step.
	ArcResolution = 0.1
	// MinArcSteps is the smallest number of steps an arc is sampled at.
	MinArcSteps = 4
	// MaxArcSteps bounds the steps of arcs sweeping more than about a
	// thousand turns.
	MaxArcSteps = 1 << 16
)

// ArcSteps returns the number of steps used to sample an arc from start to end:
// max(4, ceil(|end − start| / 0.1)), at most MaxArcSteps. A sweep that isn't
// finite gets MinArcSteps.
func ArcSteps(start, end float64) int {
	sweep := math.Abs(end - start)
	if math.IsNaN(sweep) || math.IsInf(sweep, 0) {
		return MinArcSteps
	}
	return int(min(max(math.Ceil(sweep/ArcResolution), MinArcSteps), MaxArcSteps))
}

// SampleQuad returns QuadSteps+1 points on q, starting at q.P0 and ending at
// q.P2.
func SampleQuad(q geom.QuadBez) []geom.Point {
	pts := make([]geom.Point, QuadSteps+1)
	for i := range pts {
		pts[i] = q.Eval(float64(i) / QuadSteps)
	}
	return pts
}

// SampleCubic returns CubicSteps+1 points on c, starting at c.P0 and ending at
// c.P3.
func SampleCubic(c geom.CubicBez) []geom.Point {
	pts := make([]geom.Point, CubicSteps+1)
	for i := range pts {
		pts[i] = c.Eval(float64(i) / CubicSteps)
	}
	return pts
}

// SampleArc returns steps+1 points on a, including both the start and the end
// point. The angle is interpolated linearly.
func SampleArc(a geom.Arc, steps int) []geom.Point {
	pts := make([]geom.Point, steps+1)
	for i := range pts {
		pts[i] = a.Eval(float64(i) / float64(steps))
	}
	return pts
}

// Polyline flattens an outline into a single polyline in world coordinates.
//
// The polyline starts at origin. Lines contribute their end point. Béziers
// are sampled from the current point and contribute all samples but the first,
// which duplicates the current point. Arcs contribute their samples after the
// start angle; the arc's start point itself is not emitted. The closing edge
// back to origin is not included.
func Polyline(origin geom.Point, segs []pattern.Segment) ([]geom.Point, error) {
	if err := pattern.CheckSegments(segs); err != nil {
		return nil, err
	}
	pts := []geom.Point{origin}
	cur := origin
	for _, seg := range segs {
		seg = seg.Offset(origin)
		switch seg.Kind {
		case pattern.LineKind:
			pts = append(pts, seg.End)
		case pattern.QuadKind:
			q := SampleQuad(geom.QuadBez{P0: cur, P1: seg.Control1, P2: seg.End})
			pts = append(pts, q[1:]...)
		case pattern.CubicKind:
			c := SampleCubic(geom.CubicBez{P0: cur, P1: seg.Control1, P2: seg.Control2, P3: seg.End})
			pts = append(pts, c[1:]...)
		case pattern.ArcKind:
			a := seg.ArcGeom()
			s := SampleArc(a, ArcSteps(a.StartAngle, a.EndAngle))
			pts = append(pts, s[1:]...)
		default:
			panic("unreachable")
		}
		cur = pts[len(pts)-1]
	}
	return pts, nil
}

// Path converts an outline into native drawing commands in world
// coordinates.
//
// The path moves to origin, then draws lines and Béziers natively. Arcs are
// approximated by line-to commands through all ArcSteps+1 samples, the first
// of which is the arc's start point. The path is always terminated by a
// close-path command, whether or not its last point coincides with origin.
func Path(origin geom.Point, segs []pattern.Segment) (geom.Path, error) {
	if err := pattern.CheckSegments(segs); err != nil {
		return nil, err
	}
	p := geom.Path{geom.MoveTo(origin)}
	for _, seg := range segs {
		seg = seg.Offset(origin)
		switch seg.Kind {
		case pattern.LineKind:
			p.LineTo(seg.End)
		case pattern.QuadKind:
			p.QuadTo(seg.Control1, seg.End)
		case pattern.CubicKind:
			p.CubicTo(seg.Control1, seg.Control2, seg.End)
		case pattern.ArcKind:
			a := seg.ArcGeom()
			for _, pt := range SampleArc(a, ArcSteps(a.StartAngle, a.EndAngle)) {
				p.LineTo(pt)
			}
		default:
			panic("unreachable")
		}
	}
	p.ClosePath()
	return p, nil
}
