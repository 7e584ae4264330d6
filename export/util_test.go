package export

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/eggfriedrice24/tcad/geom"
	"github.com/eggfriedrice24/tcad/pattern"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func squarePiece() pattern.Piece {
	p := pattern.NewPiece("Front")
	p.ID = "p1"
	p.Outline = []pattern.Segment{
		pattern.Line(geom.Pt(10, 0)),
		pattern.Line(geom.Pt(10, 10)),
		pattern.Line(geom.Pt(0, 10)),
	}
	return p
}

func rectPiece(id string, w, h float64) pattern.Piece {
	p := pattern.NewPiece(id)
	p.ID = id
	p.Outline = []pattern.Segment{
		pattern.Line(geom.Pt(w, 0)),
		pattern.Line(geom.Pt(w, h)),
		pattern.Line(geom.Pt(0, h)),
	}
	return p
}
