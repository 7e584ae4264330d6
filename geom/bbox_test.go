package geom

import (
	"math"
	"testing"
)

func TestEmptyBBox(t *testing.T) {
	b := EmptyBBox()
	if !b.IsEmpty() {
		t.Fatal("expected empty box")
	}
	if b.Width() >= 0 || b.Height() >= 0 {
		t.Errorf("got size %g×%g, want negative", b.Width(), b.Height())
	}
	if !math.IsInf(b.X0, 1) || !math.IsInf(b.X1, -1) {
		t.Errorf("got %s, want +Inf/-Inf seeds", b)
	}
}

func TestBBoxExpand(t *testing.T) {
	b := EmptyBBox()
	b.ExpandPoint(Pt(1, 2))
	diff(t, BBox{1, 2, 1, 2}, b)
	b.ExpandPoint(Pt(-3, 5))
	diff(t, BBox{-3, 2, 1, 5}, b)
	if b.Width() != 4 || b.Height() != 3 {
		t.Errorf("got size %g×%g, want 4×3", b.Width(), b.Height())
	}
	diff(t, Pt(-1, 3.5), b.Center())
	diff(t, BBox{-13, -8, 11, 15}, b.Inflate(10))
	diff(t, b, NewBBoxFromPoints(Pt(1, 2), Pt(-3, 5)))
}

func TestBBoxQueries(t *testing.T) {
	a := BBox{0, 0, 10, 10}
	b := BBox{10, 5, 20, 20}
	c := BBox{11, 11, 12, 12}

	if !a.Intersects(b) || !b.Intersects(a) {
		t.Error("expected touching boxes to intersect")
	}
	if a.Intersects(c) {
		t.Error("expected disjoint boxes not to intersect")
	}
	diff(t, BBox{0, 0, 20, 20}, a.Union(b))
	diff(t, a, a.Union(EmptyBBox()))
	if !a.Contains(Pt(10, 0)) || a.Contains(Pt(10.5, 0)) {
		t.Error("unexpected Contains result")
	}
}
