package geom

import "math"

// Intersect returns the point where the segments l and o cross. It reports
// false for parallel segments and for segments whose supporting lines meet
// outside of either segment.
func (l Line) Intersect(o Line) (Point, bool) {
	d1 := l.P1.Sub(l.P0)
	d2 := o.P1.Sub(o.P0)
	cross := d1.Cross(d2)
	if math.Abs(cross) < Epsilon {
		return Point{}, false
	}

	d3 := o.P0.Sub(l.P0)
	t := d3.Cross(d2) / cross
	u := d3.Cross(d1) / cross
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return l.P0.Translate(d1.Mul(t)), true
}

// RaySegment intersects the ray starting at origin in direction dir with the
// segment seg. It returns the ray parameter t ≥ 0 of the hit, so that the hit
// point is origin + dir·t.
func RaySegment(origin Point, dir Vec2, seg Line) (float64, bool) {
	d := seg.P1.Sub(seg.P0)
	cross := dir.Cross(d)
	if math.Abs(cross) < Epsilon {
		return 0, false
	}

	d2 := seg.P0.Sub(origin)
	t := d2.Cross(d) / cross
	u := d2.Cross(dir) / cross
	if t < 0 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}

// PolygonContains reports whether pt lies inside the closed polygon poly,
// using the even-odd rule. The polygon is implicitly closed from its last
// point back to its first.
//
// A horizontal ray is cast from pt and its crossings with the polygon's edges
// are counted. The half-open comparison on y keeps vertices lying exactly on
// the ray from being counted twice.
func PolygonContains(poly []Point, pt Point) bool {
	if len(poly) < 3 {
		return false
	}
	dir := Vec(1, 0)
	inside := false
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		if (a.Y > pt.Y) == (b.Y > pt.Y) {
			continue
		}
		if _, ok := RaySegment(pt, dir, Line{a, b}); ok {
			inside = !inside
		}
	}
	return inside
}
