package export

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/eggfriedrice24/tcad/geom"
	"github.com/eggfriedrice24/tcad/pattern"
)

func decodePNG(t *testing.T, pieces []pattern.Piece, opts ...Option) image.Image {
	t.Helper()
	var buf bytes.Buffer
	if err := WritePNG(&buf, pieces, opts...); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func isDark(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r < 0x8000 && g < 0x8000 && b < 0x8000
}

func TestPNGEmpty(t *testing.T) {
	img := decodePNG(t, nil)
	if b := img.Bounds(); b.Dx() != EmptyPNGSize || b.Dy() != EmptyPNGSize {
		t.Fatalf("got %v, want %d×%d", b, EmptyPNGSize, EmptyPNGSize)
	}
	if r, g, b, _ := img.At(50, 50).RGBA(); r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("expected a white canvas")
	}
}

func TestPNGSize(t *testing.T) {
	// The square's box grows by 10 mm per side to 30×30 mm.
	for _, tt := range []struct {
		ppm  float64
		side int
	}{
		{0, 120},
		{2, 60},
		{-1, 120},
	} {
		var opts []Option
		if tt.ppm != 0 {
			opts = append(opts, WithPixelsPerMM(tt.ppm))
		}
		img := decodePNG(t, []pattern.Piece{squarePiece()}, opts...)
		if b := img.Bounds(); b.Dx() != tt.side || b.Dy() != tt.side {
			t.Errorf("ppm %g: got %v, want %d×%d", tt.ppm, b, tt.side, tt.side)
		}
	}
}

func TestPNGDrawsOutline(t *testing.T) {
	img := decodePNG(t, []pattern.Piece{squarePiece()})
	b := img.Bounds()
	if isDark(img, b.Min.X, b.Min.Y) || isDark(img, b.Max.X-1, b.Max.Y-1) {
		t.Error("margin should stay white")
	}
	found := false
	// The top edge of the square runs along y = 40 px.
	for x := 45; x < 75 && !found; x++ {
		for y := 38; y <= 42; y++ {
			if isDark(img, x, y) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("outline not drawn")
	}
}

func TestPNGLargePatternIsCapped(t *testing.T) {
	p := rectPiece("big", 5000, 10)
	img := decodePNG(t, []pattern.Piece{p}, WithPixelsPerMM(10))
	if b := img.Bounds(); b.Dx() > MaxPNGSide || b.Dy() > MaxPNGSide {
		t.Errorf("got %v, want at most %d pixels per side", b, MaxPNGSide)
	}
}

func TestPNGDetails(t *testing.T) {
	p := squarePiece()
	p.GrainLine = &[2]geom.Point{geom.Pt(5, 1), geom.Pt(5, 9)}
	p.Notches = []geom.Point{geom.Pt(10, 5)}
	p.InternalLines = [][]pattern.Segment{{pattern.Line(geom.Pt(5, 5))}}
	p.Outline = append(p.Outline, pattern.Cubic(geom.Pt(-2, 7), geom.Pt(-2, 3), geom.Pt(0, 0)))
	decodePNG(t, []pattern.Piece{p})
}
