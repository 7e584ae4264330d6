package geom

import (
	"fmt"
	"math"
)

// BBox is an axis-aligned bounding box that doubles as an accumulator.
//
// The zero value is a degenerate box at the origin. Use [EmptyBBox] to start
// accumulating points; an empty box has negative width and height until the
// first point is added.
type BBox struct {
	X0, Y0 float64
	X1, Y1 float64
}

// EmptyBBox returns a box that contains nothing, with its minimum corner at
// +Inf and its maximum corner at -Inf.
func EmptyBBox() BBox {
	return BBox{
		X0: math.Inf(1),
		Y0: math.Inf(1),
		X1: math.Inf(-1),
		Y1: math.Inf(-1),
	}
}

// NewBBoxFromPoints returns the smallest box enclosing all points. With no
// points it returns [EmptyBBox].
func NewBBoxFromPoints(pts ...Point) BBox {
	b := EmptyBBox()
	for _, pt := range pts {
		b.ExpandPoint(pt)
	}
	return b
}

func (b BBox) String() string {
	return fmt.Sprintf("[(%g, %g), (%g, %g)]", b.X0, b.Y0, b.X1, b.Y1)
}

// ExpandPoint widens b to include pt.
func (b *BBox) ExpandPoint(pt Point) {
	b.X0 = min(b.X0, pt.X)
	b.Y0 = min(b.Y0, pt.Y)
	b.X1 = max(b.X1, pt.X)
	b.Y1 = max(b.Y1, pt.Y)
}

// Inflate returns b grown by margin on all four sides.
func (b BBox) Inflate(margin float64) BBox {
	return BBox{
		X0: b.X0 - margin,
		Y0: b.Y0 - margin,
		X1: b.X1 + margin,
		Y1: b.Y1 + margin,
	}
}

// Union returns the smallest box enclosing b and o.
func (b BBox) Union(o BBox) BBox {
	return BBox{
		X0: min(b.X0, o.X0),
		Y0: min(b.Y0, o.Y0),
		X1: max(b.X1, o.X1),
		Y1: max(b.Y1, o.Y1),
	}
}

// Intersects reports whether b and o overlap. Touching edges count as
// overlapping.
func (b BBox) Intersects(o BBox) bool {
	return b.X0 <= o.X1 &&
		b.X1 >= o.X0 &&
		b.Y0 <= o.Y1 &&
		b.Y1 >= o.Y0
}

// Contains reports whether pt lies inside b or on its boundary.
func (b BBox) Contains(pt Point) bool {
	return pt.X >= b.X0 &&
		pt.X <= b.X1 &&
		pt.Y >= b.Y0 &&
		pt.Y <= b.Y1
}

// Width returns X1 − X0. It is negative for an empty box.
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns Y1 − Y0. It is negative for an empty box.
func (b BBox) Height() float64 {
	return b.Y1 - b.Y0
}

func (b BBox) Center() Point {
	return Point{
		X: 0.5 * (b.X0 + b.X1),
		Y: 0.5 * (b.Y0 + b.Y1),
	}
}

// Min returns the minimum corner.
func (b BBox) Min() Point { return Point{X: b.X0, Y: b.Y0} }

// Max returns the maximum corner.
func (b BBox) Max() Point { return Point{X: b.X1, Y: b.Y1} }

// IsEmpty reports whether no point has been added to b.
func (b BBox) IsEmpty() bool {
	return b.X1 < b.X0 || b.Y1 < b.Y0
}
