package geom

import (
	"math"
	"testing"
)

func TestQuadBezEval(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(5, 10), Pt(10, 0)}
	diff(t, Pt(0, 0), q.Eval(0))
	diff(t, Pt(10, 0), q.Eval(1))
	diff(t, Pt(5, 5), q.Eval(0.5))
	diff(t, BBox{0, 0, 10, 10}, q.ControlBox())
}

func TestCubicBezEval(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	diff(t, Pt(0, 0), c.Eval(0))
	diff(t, Pt(10, 0), c.Eval(1))
	diff(t, Pt(5, 7.5), c.Eval(0.5))
}

func TestArc(t *testing.T) {
	const epsilon = 1e-12
	a := Arc{Center: Pt(1, 1), Radius: 2, StartAngle: 0, EndAngle: math.Pi}
	assertNear(t, a.StartPoint(), Pt(3, 1), epsilon)
	assertNear(t, a.EndPoint(), Pt(-1, 1), epsilon)
	assertNear(t, a.Eval(0.5), Pt(1, 3), epsilon)
	diff(t, BBox{-1, -1, 3, 3}, a.CircleBox())
	if a.Sweep() != math.Pi {
		t.Errorf("got sweep %g, want π", a.Sweep())
	}
}
