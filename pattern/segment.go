package pattern

import (
	"encoding/json"
	"fmt"

	"github.com/eggfriedrice24/tcad"
	"github.com/eggfriedrice24/tcad/geom"
)

// SegmentKind identifies which primitive a [Segment] holds. The zero value is
// not a valid kind.
type SegmentKind int

const (
	// A straight line to End.
	LineKind SegmentKind = iota + 1
	// A quadratic Bézier through Control1 to End.
	QuadKind
	// A cubic Bézier through Control1 and Control2 to End.
	CubicKind
	// A circular arc around Center.
	ArcKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "Line"
	case QuadKind:
		return "QuadraticBezier"
	case CubicKind:
		return "CubicBezier"
	case ArcKind:
		return "Arc"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment is one curve segment of an outline. It is a tagged union of the four
// primitives; which fields are meaningful depends on Kind. All points are
// relative to the origin of the piece owning the outline.
//
// Arcs don't connect to the previous segment's end point: they start wherever
// StartAngle puts them on their circle.
type Segment struct {
	Kind SegmentKind

	// End point of lines and Béziers.
	End geom.Point
	// Control point of quadratic Béziers, first control point of cubic
	// Béziers.
	Control1 geom.Point
	// Second control point of cubic Béziers.
	Control2 geom.Point

	Center     geom.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// Line returns a straight line segment to end.
func Line(end geom.Point) Segment {
	return Segment{Kind: LineKind, End: end}
}

// Quad returns a quadratic Bézier segment.
func Quad(control, end geom.Point) Segment {
	return Segment{Kind: QuadKind, Control1: control, End: end}
}

// Cubic returns a cubic Bézier segment.
func Cubic(control1, control2, end geom.Point) Segment {
	return Segment{Kind: CubicKind, Control1: control1, Control2: control2, End: end}
}

// Arc returns an arc segment. Angles are in radians.
func Arc(center geom.Point, radius, startAngle, endAngle float64) Segment {
	return Segment{
		Kind:       ArcKind,
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	}
}

// Valid reports whether Kind is one of the four segment kinds.
func (s Segment) Valid() bool {
	switch s.Kind {
	case LineKind, QuadKind, CubicKind, ArcKind:
		return true
	default:
		return false
	}
}

// Offset returns the segment moved into world space by the piece origin.
// Fields that the kind doesn't use are left alone.
func (s Segment) Offset(origin geom.Point) Segment {
	switch s.Kind {
	case LineKind:
		s.End = s.End.Offset(origin)
	case QuadKind:
		s.Control1 = s.Control1.Offset(origin)
		s.End = s.End.Offset(origin)
	case CubicKind:
		s.Control1 = s.Control1.Offset(origin)
		s.Control2 = s.Control2.Offset(origin)
		s.End = s.End.Offset(origin)
	case ArcKind:
		s.Center = s.Center.Offset(origin)
	}
	return s
}

// ArcGeom returns the arc described by an arc segment.
func (s Segment) ArcGeom() geom.Arc {
	return geom.Arc{
		Center:     s.Center,
		Radius:     s.Radius,
		StartAngle: s.StartAngle,
		EndAngle:   s.EndAngle,
	}
}

// Finite reports whether every coordinate and number used by the segment's
// kind is neither NaN nor infinite. Segments of unknown kind are not finite.
func (s Segment) Finite() bool {
	bad := func(pts ...geom.Point) bool {
		for _, pt := range pts {
			if pt.IsNaN() || pt.IsInf() {
				return true
			}
		}
		return false
	}
	switch s.Kind {
	case LineKind:
		return !bad(s.End)
	case QuadKind:
		return !bad(s.Control1, s.End)
	case CubicKind:
		return !bad(s.Control1, s.Control2, s.End)
	case ArcKind:
		return !bad(s.Center, geom.Pt(s.Radius, 0), geom.Pt(s.StartAngle, s.EndAngle))
	default:
		return false
	}
}

// CheckSegments returns an error wrapping [tcad.ErrInvalidSegment] if any
// segment has an unknown kind or a NaN or infinite value.
func CheckSegments(segs []Segment) error {
	for i, s := range segs {
		if !s.Valid() {
			return fmt.Errorf("segment %d: %w: kind %d", i, tcad.ErrInvalidSegment, int(s.Kind))
		}
		if !s.Finite() {
			return fmt.Errorf("segment %d: %w: %s with non-finite value", i, tcad.ErrInvalidSegment, s.Kind)
		}
	}
	return nil
}

type jsonSegment struct {
	Type       string      `json:"type"`
	End        *geom.Point `json:"end,omitempty"`
	Control    *geom.Point `json:"control,omitempty"`
	Control1   *geom.Point `json:"control1,omitempty"`
	Control2   *geom.Point `json:"control2,omitempty"`
	Center     *geom.Point `json:"center,omitempty"`
	Radius     *float64    `json:"radius,omitempty"`
	StartAngle *float64    `json:"start_angle,omitempty"`
	EndAngle   *float64    `json:"end_angle,omitempty"`
}

// MarshalJSON encodes the segment as an object tagged by "type".
func (s Segment) MarshalJSON() ([]byte, error) {
	js := jsonSegment{Type: s.Kind.String()}
	switch s.Kind {
	case LineKind:
		js.End = &s.End
	case QuadKind:
		js.Control = &s.Control1
		js.End = &s.End
	case CubicKind:
		js.Control1 = &s.Control1
		js.Control2 = &s.Control2
		js.End = &s.End
	case ArcKind:
		js.Center = &s.Center
		js.Radius = &s.Radius
		js.StartAngle = &s.StartAngle
		js.EndAngle = &s.EndAngle
	default:
		return nil, fmt.Errorf("%w: kind %d", tcad.ErrInvalidSegment, int(s.Kind))
	}
	return json.Marshal(js)
}

// UnmarshalJSON decodes a segment tagged by "type". Missing fields decode as
// zero values; an unknown tag is an error.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var js jsonSegment
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}
	pt := func(p *geom.Point) geom.Point {
		if p == nil {
			return geom.Point{}
		}
		return *p
	}
	num := func(f *float64) float64 {
		if f == nil {
			return 0
		}
		return *f
	}
	switch js.Type {
	case "Line":
		*s = Line(pt(js.End))
	case "QuadraticBezier":
		*s = Quad(pt(js.Control), pt(js.End))
	case "CubicBezier":
		*s = Cubic(pt(js.Control1), pt(js.Control2), pt(js.End))
	case "Arc":
		*s = Arc(pt(js.Center), num(js.Radius), num(js.StartAngle), num(js.EndAngle))
	default:
		return fmt.Errorf("%w: unknown type %q", tcad.ErrInvalidSegment, js.Type)
	}
	return nil
}
