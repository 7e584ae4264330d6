// Package layout computes the extents of pattern pieces and divides them into
// printable tiles.
package layout

import (
	"fmt"
	"math"
	"strconv"

	"github.com/eggfriedrice24/tcad/flatten"
	"github.com/eggfriedrice24/tcad/geom"
	"github.com/eggfriedrice24/tcad/pattern"
)

const (
	// SVGMargin is the margin, in millimetres, added around the pattern to
	// form the SVG viewBox.
	SVGMargin = 10.0
	// PDFMargin is the margin, in millimetres, added around the pattern before
	// it is tiled across pages.
	PDFMargin = 5.0
)

// Bounds returns the union bounding box of pieces in world coordinates.
//
// The box is conservative: Béziers are bounded by their control points and
// arcs by their full circle, whatever their sweep. Every piece contributes its
// origin, even if its outline is empty. Grain lines count, notches don't.
//
// With no pieces the result is [geom.EmptyBBox], whose width and height are
// negative.
func Bounds(pieces []pattern.Piece) (geom.BBox, error) {
	box := geom.EmptyBBox()
	for i := range pieces {
		if err := expandPiece(&box, &pieces[i]); err != nil {
			return geom.EmptyBBox(), err
		}
	}
	return box, nil
}

// PieceBounds returns the bounding box of a single piece, computed the same
// way as [Bounds].
func PieceBounds(p *pattern.Piece) (geom.BBox, error) {
	box := geom.EmptyBBox()
	if err := expandPiece(&box, p); err != nil {
		return geom.EmptyBBox(), err
	}
	return box, nil
}

func expandPiece(box *geom.BBox, p *pattern.Piece) error {
	if err := p.Check(); err != nil {
		return err
	}
	box.ExpandPoint(p.Origin)
	expandSegments(box, p.Origin, p.Outline)
	for _, line := range p.InternalLines {
		expandSegments(box, p.Origin, line)
	}
	if p.GrainLine != nil {
		box.ExpandPoint(p.GrainLine[0].Offset(p.Origin))
		box.ExpandPoint(p.GrainLine[1].Offset(p.Origin))
	}
	return nil
}

func expandSegments(box *geom.BBox, origin geom.Point, segs []pattern.Segment) {
	for _, seg := range segs {
		seg = seg.Offset(origin)
		switch seg.Kind {
		case pattern.LineKind:
			box.ExpandPoint(seg.End)
		case pattern.QuadKind:
			box.ExpandPoint(seg.Control1)
			box.ExpandPoint(seg.End)
		case pattern.CubicKind:
			box.ExpandPoint(seg.Control1)
			box.ExpandPoint(seg.Control2)
			box.ExpandPoint(seg.End)
		case pattern.ArcKind:
			*box = box.Union(seg.ArcGeom().CircleBox())
		default:
			panic("unreachable")
		}
	}
}

// Grid is a row-major grid of equally sized print tiles.
type Grid struct {
	Cols, Rows int
	// Size of one tile's printable area, in millimetres.
	TileWidth, TileHeight float64
}

// NewGrid returns the grid of tiles of size printW×printH needed to cover box.
// A grid always has at least one row and one column, even for an empty box.
func NewGrid(box geom.BBox, printW, printH float64) Grid {
	g := Grid{Cols: 1, Rows: 1, TileWidth: printW, TileHeight: printH}
	if box.IsEmpty() {
		return g
	}
	g.Cols = max(1, int(math.Ceil(box.Width()/printW)))
	g.Rows = max(1, int(math.Ceil(box.Height()/printH)))
	return g
}

// Len returns the number of tiles.
func (g Grid) Len() int {
	return g.Cols * g.Rows
}

// Tile is one page of a tiled print.
type Tile struct {
	Row, Col int
	// Origin is the world position that maps to the top-left corner of the
	// tile's printable area.
	Origin geom.Point
	Label  string
}

// Tiles lists the tiles covering box in row-major order. box must be the box
// the grid was computed for.
func (g Grid) Tiles(box geom.BBox) []Tile {
	tiles := make([]Tile, 0, g.Len())
	for row := range g.Rows {
		for col := range g.Cols {
			tiles = append(tiles, Tile{
				Row: row,
				Col: col,
				Origin: geom.Pt(
					box.X0+float64(col)*g.TileWidth,
					box.Y0+float64(row)*g.TileHeight),
				Label: TileLabel(row, col),
			})
		}
	}
	return tiles
}

// TileLabel returns the label of the tile at row and col: a row letter
// followed by the one-based column number, such as "A1" or "B3". Rows past
// 'Z' continue through the following code points.
func TileLabel(row, col int) string {
	return string(rune('A'+row)) + strconv.Itoa(col+1)
}

// PieceAt returns the index of the topmost piece whose outline contains the
// world point pt, or -1 if there is none. Later pieces are drawn on top of
// earlier ones. Outlines are flattened as for print output and tested with the
// even-odd rule.
func PieceAt(pieces []pattern.Piece, pt geom.Point) (int, error) {
	for i := len(pieces) - 1; i >= 0; i-- {
		p := &pieces[i]
		if p.IsEmpty() {
			continue
		}
		poly, err := flatten.Polyline(p.Origin, p.Outline)
		if err != nil {
			return -1, fmt.Errorf("layout: piece %q: %w", p.ID, err)
		}
		if geom.PolygonContains(poly, pt) {
			return i, nil
		}
	}
	return -1, nil
}
