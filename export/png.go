package export

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/eggfriedrice24/tcad"
	"github.com/eggfriedrice24/tcad/flatten"
	"github.com/eggfriedrice24/tcad/geom"
	"github.com/eggfriedrice24/tcad/layout"
	"github.com/eggfriedrice24/tcad/pattern"
)

const (
	// EmptyPNGSize is the side, in pixels, of the blank preview produced for
	// an empty set of pieces.
	EmptyPNGSize = 100
	// MaxPNGSide caps the width and height of a preview. Larger patterns are
	// rendered at a lower resolution.
	MaxPNGSide = 8192
)

// WritePNG renders pieces as a PNG preview on a white background.
//
// The canvas covers the same area as the SVG viewBox at
// [Options.PixelsPerMM] pixels per millimetre. Outlines are black, internal
// lines dashed, grain lines and notches gray. An empty set of pieces renders
// a blank square of [EmptyPNGSize] pixels.
func WritePNG(w io.Writer, pieces []pattern.Piece, opts ...Option) error {
	return writePNG(w, pieces, NewOptions(opts...))
}

func writePNG(w io.Writer, pieces []pattern.Piece, o Options) error {
	if len(pieces) == 0 {
		dc := gg.NewContext(EmptyPNGSize, EmptyPNGSize)
		defer dc.Close()
		dc.ClearWithColor(gg.White)
		return dc.EncodePNG(w)
	}

	box, err := layout.Bounds(pieces)
	if err != nil {
		return err
	}
	box = box.Inflate(layout.SVGMargin)

	ppm := o.PixelsPerMM
	if ppm <= 0 {
		ppm = DefaultPixelsPerMM
	}
	if side := max(box.Width(), box.Height()) * ppm; side > MaxPNGSide {
		ppm *= MaxPNGSide / side
		tcad.Logger().Debug("export: reducing png resolution", "pixels_per_mm", ppm)
	}
	width := min(MaxPNGSide, max(1, int(math.Ceil(box.Width()*ppm))))
	height := min(MaxPNGSide, max(1, int(math.Ceil(box.Height()*ppm))))

	dc := gg.NewContext(width, height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	r := pngRenderer{
		dc:    dc,
		toPx:  geom.Translate(geom.Vec(-box.X0, -box.Y0)).ThenScale(ppm, ppm),
		scale: ppm,
	}
	for i := range pieces {
		if err := r.piece(&pieces[i]); err != nil {
			return err
		}
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("%w: %w", tcad.ErrExport, err)
	}
	return nil
}

type pngRenderer struct {
	dc    *gg.Context
	toPx  geom.Affine
	scale float64
}

func (r *pngRenderer) piece(p *pattern.Piece) error {
	dc := r.dc
	if !p.IsEmpty() {
		path, err := flatten.Path(p.Origin, p.Outline)
		if err != nil {
			return err
		}
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(0.5 * r.scale)
		dc.ClearDash()
		if err := r.stroke(path); err != nil {
			return err
		}
	}

	for _, line := range p.InternalLines {
		if len(line) == 0 {
			continue
		}
		path, err := flatten.Path(p.Origin, line)
		if err != nil {
			return err
		}
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(0.3 * r.scale)
		dc.SetDash(2*r.scale, 2*r.scale)
		if err := r.stroke(path); err != nil {
			return err
		}
	}
	dc.ClearDash()

	dc.SetRGB(0.5, 0.5, 0.5)
	if gl := p.GrainLine; gl != nil {
		dc.SetLineWidth(0.3 * r.scale)
		if err := r.line(gl[0].Offset(p.Origin), gl[1].Offset(p.Origin)); err != nil {
			return err
		}
	}
	dc.SetLineWidth(0.5 * r.scale)
	for _, notch := range p.Notches {
		n := notch.Offset(p.Origin)
		if err := r.line(geom.Pt(n.X, n.Y-3), geom.Pt(n.X, n.Y+3)); err != nil {
			return err
		}
	}
	return nil
}

func (r *pngRenderer) stroke(path geom.Path) error {
	dc := r.dc
	for _, el := range path.Transform(r.toPx) {
		switch el.Kind {
		case geom.MoveToKind:
			dc.MoveTo(el.P0.X, el.P0.Y)
		case geom.LineToKind:
			dc.LineTo(el.P0.X, el.P0.Y)
		case geom.QuadToKind:
			dc.QuadraticTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
		case geom.CubicToKind:
			dc.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case geom.ClosePathKind:
			dc.ClosePath()
		default:
			panic("unreachable")
		}
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("%w: %w", tcad.ErrExport, err)
	}
	return nil
}

func (r *pngRenderer) line(p0, p1 geom.Point) error {
	a, b := p0.Transform(r.toPx), p1.Transform(r.toPx)
	r.dc.MoveTo(a.X, a.Y)
	r.dc.LineTo(b.X, b.Y)
	if err := r.dc.Stroke(); err != nil {
		return fmt.Errorf("%w: %w", tcad.ErrExport, err)
	}
	return nil
}
