package geom

import (
	"math"
	"testing"
)

func TestVec2Normalize(t *testing.T) {
	if got := Vec(3, 4).Normalize(); math.Abs(got.X-0.6) > 1e-12 || math.Abs(got.Y-0.8) > 1e-12 {
		t.Errorf("got %s, want ⟨0.6, 0.8⟩", got)
	}
	for _, v := range []Vec2{{}, Vec(1e-17, 0), Vec(0, -1e-300)} {
		if got := v.Normalize(); got != (Vec2{}) {
			t.Errorf("%s: got %s, want zero vector", v, got)
		}
	}
}

func TestVec2Rotate(t *testing.T) {
	const epsilon = 1e-12
	assertNear(t, Point(Vec(1, 0).Rotate(math.Pi/2)), Pt(0, 1), epsilon)
	assertNear(t, Point(Vec(1, 0).Rotate(math.Pi)), Pt(-1, 0), epsilon)
	assertNear(t, Point(Vec(2, 3).Perp()), Pt(-3, 2), epsilon)
}

func TestVec2AngleTo(t *testing.T) {
	tt := []struct {
		a, b Vec2
		want float64
	}{
		{Vec(1, 0), Vec(0, 1), math.Pi / 2},
		{Vec(0, 1), Vec(1, 0), -math.Pi / 2},
		{Vec(1, 0), Vec(1, 0), 0},
		{Vec(1, 0), Vec(-1, 0), math.Pi},
		{Vec(1, 1), Vec(-1, 1), math.Pi / 2},
	}
	for _, tc := range tt {
		if got := tc.a.AngleTo(tc.b); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("%s.AngleTo(%s) = %g, want %g", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec(1, 2)
	b := Vec(3, -4)
	diff(t, Vec(4, -2), a.Add(b))
	diff(t, Vec(-2, 6), a.Sub(b))
	diff(t, Vec(2, 4), a.Mul(2))
	diff(t, Vec(0.5, 1), a.Div(2))
	diff(t, Vec(-1, -2), a.Negate())
	if got := a.Dot(b); got != -5 {
		t.Errorf("got dot %g, want -5", got)
	}
	if got := a.Cross(b); got != -10 {
		t.Errorf("got cross %g, want -10", got)
	}
	if got := b.Hypot(); got != 5 {
		t.Errorf("got length %g, want 5", got)
	}
}

func TestVecFromAngle(t *testing.T) {
	const epsilon = 1e-12
	assertNear(t, Point(VecFromAngle(0)), Pt(1, 0), epsilon)
	assertNear(t, Point(VecFromAngle(math.Pi/2)), Pt(0, 1), epsilon)
	assertNear(t, Point(VecFromAngle(-3*math.Pi/4)), Pt(-math.Sqrt2/2, -math.Sqrt2/2), epsilon)
	if got := VecFromAngle(1.2).Angle(); math.Abs(got-1.2) > epsilon {
		t.Errorf("got angle %g, want 1.2", got)
	}
}

func TestPointDistance(t *testing.T) {
	a, b := Pt(1, 2), Pt(4, 6)
	diff(t, Pt(2.5, 4), a.Midpoint(b))
	diff(t, a.Midpoint(b), b.Midpoint(a))
	if got := a.Distance(b); got != 5 {
		t.Errorf("got distance %g, want 5", got)
	}
	if got := b.Sub(a).Hypot2(); got != 25 {
		t.Errorf("got squared length %g, want 25", got)
	}
}
