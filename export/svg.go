package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/eggfriedrice24/tcad/flatten"
	"github.com/eggfriedrice24/tcad/geom"
	"github.com/eggfriedrice24/tcad/layout"
	"github.com/eggfriedrice24/tcad/pattern"
)

// EmptySVG is the document produced for an empty set of pieces.
const EmptySVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"></svg>`

const svgArrowMarker = `  <defs>
    <marker id="arrow" viewBox="0 0 10 10" refX="10" refY="5" markerWidth="6" markerHeight="6" orient="auto-start-reverse">
      <path d="M 0,0 L 10,5 L 0,10 Z" fill="gray"/>
    </marker>
  </defs>
`

// SVG returns pieces as an SVG document. See [WriteSVG].
func SVG(pieces []pattern.Piece, opts ...Option) (string, error) {
	sb := &strings.Builder{}
	if err := WriteSVG(sb, pieces, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteSVG writes pieces as an SVG document in millimetres.
//
// The viewBox is the combined bounding box of the pieces grown by
// [layout.SVGMargin]. Each piece becomes a group keyed by its ID, holding the
// outline, dashed internal lines, the grain line, a vertical tick per notch and
// a label at the origin. Outlines always end with a close-path command.
//
// An empty set of pieces produces exactly [EmptySVG].
func WriteSVG(w io.Writer, pieces []pattern.Piece, opts ...Option) error {
	return writeSVG(w, pieces, NewOptions(opts...))
}

func writeSVG(w io.Writer, pieces []pattern.Piece, o Options) error {
	if len(pieces) == 0 {
		_, err := io.WriteString(w, EmptySVG)
		return err
	}
	box, err := layout.Bounds(pieces)
	if err != nil {
		return err
	}
	box = box.Inflate(layout.SVGMargin)

	var werr error
	writef := func(s string, v ...any) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(w, s, v...)
	}
	f := geom.FormatFloat

	writef(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%smm" height="%smm">`+"\n",
		f(box.X0), f(box.Y0), f(box.Width()), f(box.Height()),
		f(box.Width()), f(box.Height()))
	if o.ArrowMarker {
		writef("%s", svgArrowMarker)
	}

	for i := range pieces {
		p := &pieces[i]
		writef("  <g id=\"%s\">\n", html.EscapeString(p.ID))

		if !p.IsEmpty() {
			d, err := flatten.Path(p.Origin, p.Outline)
			if err != nil {
				return err
			}
			writef("    <path d=\"%s\" fill=\"none\" stroke=\"black\" stroke-width=\"0.5\"/>\n", d.SVG())
		}
		for _, line := range p.InternalLines {
			if len(line) == 0 {
				continue
			}
			d, err := flatten.Path(p.Origin, line)
			if err != nil {
				return err
			}
			writef("    <path d=\"%s\" fill=\"none\" stroke=\"black\" stroke-width=\"0.3\" stroke-dasharray=\"2,2\"/>\n", d.SVG())
		}
		if gl := p.GrainLine; gl != nil {
			s, e := gl[0].Offset(p.Origin), gl[1].Offset(p.Origin)
			writef("    <line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"gray\" stroke-width=\"0.3\" marker-end=\"url(#arrow)\"/>\n",
				f(s.X), f(s.Y), f(e.X), f(e.Y))
		}
		for _, notch := range p.Notches {
			n := notch.Offset(p.Origin)
			writef("    <line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"black\" stroke-width=\"0.5\"/>\n",
				f(n.X), f(n.Y-3), f(n.X), f(n.Y+3))
		}
		writef("    <text x=\"%s\" y=\"%s\" font-size=\"4\" text-anchor=\"middle\" fill=\"gray\">%s</text>\n",
			f(p.Origin.X), f(p.Origin.Y), html.EscapeString(p.Name))

		writef("  </g>\n")
	}
	writef("</svg>\n")
	return werr
}
