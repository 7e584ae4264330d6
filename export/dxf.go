package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/eggfriedrice24/tcad/flatten"
	"github.com/eggfriedrice24/tcad/geom"
	"github.com/eggfriedrice24/tcad/pattern"
)

const (
	dxfHeader = "0\nSECTION\n2\nENTITIES\n"
	dxfFooter = "0\nENDSEC\n0\nEOF\n"

	// DXFCloseTolerance is the largest gap, per axis, between the end of an
	// outline and its origin that is not closed with an extra line.
	DXFCloseTolerance = 0.001
)

// DXF returns pieces as a DXF document. See [WriteDXF].
func DXF(pieces []pattern.Piece, opts ...Option) (string, error) {
	sb := &strings.Builder{}
	if err := WriteDXF(sb, pieces, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteDXF writes the outlines of pieces as a minimal DXF document holding a
// single ENTITIES section.
//
// The y axis is flipped. Lines and sampled Béziers become chains of LINE
// entities, arcs become ARC entities. Each piece is drawn on a layer named
// after the piece. An outline whose end lies more than [DXFCloseTolerance]
// from its origin on either axis is closed with one more LINE. Pieces with an
// empty outline are skipped.
func WriteDXF(w io.Writer, pieces []pattern.Piece, opts ...Option) error {
	return writeDXF(w, pieces, NewOptions(opts...))
}

func writeDXF(w io.Writer, pieces []pattern.Piece, o Options) error {
	if err := pattern.CheckPieces(pieces); err != nil {
		return err
	}
	dw := &dxfWriter{w: w}
	dw.printf("%s", dxfHeader)

	for i := range pieces {
		p := &pieces[i]
		if p.IsEmpty() {
			continue
		}
		dw.layer = p.Name
		if o.SanitizeLayers {
			dw.layer = SanitizeLayer(p.Name)
		}

		cur := p.Origin
		for _, seg := range p.Outline {
			seg = seg.Offset(p.Origin)
			switch seg.Kind {
			case pattern.LineKind:
				dw.line(cur, seg.End)
				cur = seg.End
			case pattern.QuadKind:
				cur = dw.chain(flatten.SampleQuad(geom.QuadBez{P0: cur, P1: seg.Control1, P2: seg.End}))
			case pattern.CubicKind:
				cur = dw.chain(flatten.SampleCubic(geom.CubicBez{P0: cur, P1: seg.Control1, P2: seg.Control2, P3: seg.End}))
			case pattern.ArcKind:
				a := seg.ArcGeom()
				dw.arc(a)
				cur = a.EndPoint()
			default:
				panic("unreachable")
			}
		}

		if math.Abs(cur.X-p.Origin.X) > DXFCloseTolerance || math.Abs(cur.Y-p.Origin.Y) > DXFCloseTolerance {
			dw.line(cur, p.Origin)
		}
	}

	dw.printf("%s", dxfFooter)
	return dw.err
}

// dxfWriter emits entities in DXF coordinates. Points are given in world
// coordinates and flipped on output.
type dxfWriter struct {
	w     io.Writer
	layer string
	err   error
}

func (dw *dxfWriter) printf(s string, v ...any) {
	if dw.err != nil {
		return
	}
	_, dw.err = fmt.Fprintf(dw.w, s, v...)
}

func (dw *dxfWriter) line(p0, p1 geom.Point) {
	f := geom.FormatFloat
	dw.printf("0\nLINE\n8\n%s\n10\n%s\n20\n%s\n30\n0.0\n11\n%s\n21\n%s\n31\n0.0\n",
		dw.layer, f(p0.X), f(-p0.Y), f(p1.X), f(-p1.Y))
}

// chain emits a LINE between each pair of consecutive points and returns the
// last point.
func (dw *dxfWriter) chain(pts []geom.Point) geom.Point {
	for i := 1; i < len(pts); i++ {
		dw.line(pts[i-1], pts[i])
	}
	return pts[len(pts)-1]
}

// arc emits a. Flipping y reverses the sweep, so the start and end angles are
// negated and swapped.
func (dw *dxfWriter) arc(a geom.Arc) {
	f := geom.FormatFloat
	dw.printf("0\nARC\n8\n%s\n10\n%s\n20\n%s\n30\n0.0\n40\n%s\n50\n%s\n51\n%s\n",
		dw.layer, f(a.Center.X), f(-a.Center.Y), f(a.Radius),
		f(-degrees(a.EndAngle)), f(-degrees(a.StartAngle)))
}

func degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// SanitizeLayer replaces every character of name outside [A-Za-z0-9_-] with
// an underscore. An empty name becomes "0", the default DXF layer.
func SanitizeLayer(name string) string {
	if name == "" {
		return "0"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
}
