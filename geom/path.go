package geom

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is one native drawing command.
//
// A valid path has a MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Path is a sequence of path elements.
type Path []PathElement

func (p *Path) MoveTo(pt Point)          { *p = append(*p, MoveTo(pt)) }
func (p *Path) LineTo(pt Point)          { *p = append(*p, LineTo(pt)) }
func (p *Path) QuadTo(p0, p1 Point)      { *p = append(*p, QuadTo(p0, p1)) }
func (p *Path) CubicTo(p0, p1, p2 Point) { *p = append(*p, CubicTo(p0, p1, p2)) }
func (p *Path) ClosePath()               { *p = append(*p, ClosePath()) }

func (p Path) Transform(aff Affine) Path {
	out := make(Path, len(p))
	for i, el := range p {
		out[i] = el.Transform(aff)
	}
	return out
}

// SVG formats the path as SVG path data.
//
// See [WriteSVG] for details on the format.
func (p Path) SVG() string {
	sb := &strings.Builder{}
	WriteSVG(sb, p)
	return sb.String()
}

// FormatFloat formats n with the fewest digits that represent it exactly,
// never using an exponent. 10.0 formats as "10", 0.5 as "0.5".
func FormatFloat(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// WriteSVG writes the path as SVG path data to w.
//
// Every command letter is followed by a space and coordinate pairs are joined
// by commas, as in "M 0,0 L 10,0 Q 15,5 10,10 Z". Coordinates use
// [FormatFloat].
func WriteSVG(w io.Writer, p Path) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	f := FormatFloat
	for i, el := range p {
		if err != nil {
			return err
		}
		if i > 0 {
			writef(" ")
		}
		switch el.Kind {
		case MoveToKind:
			writef("M %s,%s", f(el.P0.X), f(el.P0.Y))
		case LineToKind:
			writef("L %s,%s", f(el.P0.X), f(el.P0.Y))
		case QuadToKind:
			writef("Q %s,%s %s,%s",
				f(el.P0.X), f(el.P0.Y),
				f(el.P1.X), f(el.P1.Y))
		case CubicToKind:
			writef("C %s,%s %s,%s %s,%s",
				f(el.P0.X), f(el.P0.Y),
				f(el.P1.X), f(el.P1.Y),
				f(el.P2.X), f(el.P2.Y))
		case ClosePathKind:
			writef("Z")
		default:
			return fmt.Errorf("geom: invalid path element kind %d", el.Kind)
		}
	}
	return err
}
