// Package tessellate triangulates closed outlines into fill meshes.
//
// An outline is first flattened into a closed polygon in world coordinates,
// then filled with the even-odd rule by libtess2. Outlines may cross
// themselves; crossings become new vertices. Both orientations are accepted
// and the emitted triangles are always counter-clockwise in a y-up frame.
package tessellate

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/go-libtess2"

	"github.com/eggfriedrice24/tcad"
	"github.com/eggfriedrice24/tcad/flatten"
	"github.com/eggfriedrice24/tcad/geom"
	"github.com/eggfriedrice24/tcad/pattern"
)

// ArcSteps is the fixed number of line steps an arc is flattened into before
// triangulation, independent of its sweep.
const ArcSteps = 32

// Points closer than this are merged before triangulation.
const mergeDistance = 1e-9

// Triangulation is a triangle mesh in world coordinates.
type Triangulation struct {
	// Vertices holds x, y, 0 triples.
	Vertices []float32
	// Indices holds three vertex indices per triangle.
	Indices []uint32
}

// VertexCount returns the number of vertices.
func (tr Triangulation) VertexCount() int {
	return len(tr.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (tr Triangulation) TriangleCount() int {
	return len(tr.Indices) / 3
}

// Vertex returns the i-th vertex.
func (tr Triangulation) Vertex(i int) geom.Point {
	return geom.Pt(float64(tr.Vertices[3*i]), float64(tr.Vertices[3*i+1]))
}

// Area returns the total unsigned area of all triangles.
func (tr Triangulation) Area() float64 {
	var area float64
	for i := 0; i+2 < len(tr.Indices); i += 3 {
		a := tr.Vertex(int(tr.Indices[i]))
		b := tr.Vertex(int(tr.Indices[i+1]))
		c := tr.Vertex(int(tr.Indices[i+2]))
		area += math.Abs(b.Sub(a).Cross(c.Sub(a))) / 2
	}
	return area
}

// Tessellator triangulates outlines. Its scratch buffers are reused across
// calls; a Tessellator must not be used concurrently.
type Tessellator struct {
	poly    []geom.Point
	contour libtess2.Contour
}

// New returns a ready to use tessellator.
func New() *Tessellator {
	return &Tessellator{}
}

// Reset clears the scratch buffers without releasing their memory.
func (ts *Tessellator) Reset() {
	ts.poly = ts.poly[:0]
	ts.contour = ts.contour[:0]
}

// Outline is a convenience wrapper around [Tessellator.Outline] that uses a
// fresh tessellator.
func Outline(origin geom.Point, segs []pattern.Segment) (Triangulation, error) {
	return New().Outline(origin, segs)
}

// Outline triangulates the closed outline that starts at origin and follows
// segs, which are relative to origin. The interior is decided by the even-odd
// rule, so the lobes of a self-crossing outline are filled and a region
// enclosed twice is not.
//
// It returns an error wrapping [tcad.ErrEmptyOutline] if segs is empty and
// one wrapping [tcad.ErrInvalidSegment] for malformed segments. Outlines
// whose points are all collinear yield an empty triangulation.
func (ts *Tessellator) Outline(origin geom.Point, segs []pattern.Segment) (Triangulation, error) {
	if len(segs) == 0 {
		return Triangulation{}, fmt.Errorf("tessellate: %w", tcad.ErrEmptyOutline)
	}
	if err := pattern.CheckSegments(segs); err != nil {
		return Triangulation{}, fmt.Errorf("tessellate: %w", err)
	}
	ts.Reset()
	ts.buildPolygon(origin, segs)

	empty := Triangulation{Vertices: []float32{}, Indices: []uint32{}}
	if collinear(ts.poly) {
		tcad.Logger().Debug("tessellate: degenerate outline", "points", len(ts.poly))
		return empty, nil
	}

	for _, pt := range ts.poly {
		ts.contour = append(ts.contour, libtess2.Vertex{X: float32(pt.X), Y: float32(pt.Y)})
	}
	elems, verts, err := libtess2.Tesselate([]libtess2.Contour{ts.contour}, libtess2.WindingRuleOdd)
	if err != nil {
		return Triangulation{}, fmt.Errorf("tessellate: %w", err)
	}
	if len(elems) == 0 {
		tcad.Logger().Debug("tessellate: outline encloses no area", "points", len(ts.poly))
		return empty, nil
	}

	tr := Triangulation{
		Vertices: make([]float32, 0, 3*len(verts)),
		Indices:  make([]uint32, 0, len(elems)),
	}
	for _, v := range verts {
		tr.Vertices = append(tr.Vertices, v.X, v.Y, 0)
	}
	for i := 0; i+2 < len(elems); i += 3 {
		a, b, c := elems[i], elems[i+1], elems[i+2]
		if a < 0 || b < 0 || c < 0 {
			continue
		}
		pa, pb, pc := tr.Vertex(a), tr.Vertex(b), tr.Vertex(c)
		if pb.Sub(pa).Cross(pc.Sub(pa)) < 0 {
			b, c = c, b
		}
		tr.Indices = append(tr.Indices, uint32(a), uint32(b), uint32(c))
	}
	return tr, nil
}

// buildPolygon flattens the outline into ts.poly, merging consecutive
// duplicates and a closing duplicate of the first point.
func (ts *Tessellator) buildPolygon(origin geom.Point, segs []pattern.Segment) {
	add := func(pt geom.Point) {
		if len(ts.poly) > 0 && ts.poly[len(ts.poly)-1].Distance(pt) < mergeDistance {
			return
		}
		ts.poly = append(ts.poly, pt)
	}

	add(origin)
	cur := origin
	for _, seg := range segs {
		seg = seg.Offset(origin)
		switch seg.Kind {
		case pattern.LineKind:
			add(seg.End)
			cur = seg.End
		case pattern.QuadKind:
			pts := flatten.SampleQuad(geom.QuadBez{P0: cur, P1: seg.Control1, P2: seg.End})
			for _, pt := range pts[1:] {
				add(pt)
			}
			cur = pts[len(pts)-1]
		case pattern.CubicKind:
			pts := flatten.SampleCubic(geom.CubicBez{P0: cur, P1: seg.Control1, P2: seg.Control2, P3: seg.End})
			for _, pt := range pts[1:] {
				add(pt)
			}
			cur = pts[len(pts)-1]
		case pattern.ArcKind:
			a := seg.ArcGeom()
			for i := 1; i <= ArcSteps; i++ {
				cur = a.Eval(float64(i) / ArcSteps)
				add(cur)
			}
		default:
			panic("unreachable")
		}
	}

	for len(ts.poly) > 1 && ts.poly[len(ts.poly)-1].Distance(ts.poly[0]) < mergeDistance {
		ts.poly = ts.poly[:len(ts.poly)-1]
	}
}

// collinear reports whether poly has fewer than three points or all of its
// points lie on one line.
func collinear(poly []geom.Point) bool {
	if len(poly) < 3 {
		return true
	}
	a := poly[0]
	far, dist2 := a, 0.0
	for _, p := range poly[1:] {
		if d := p.Sub(a).Hypot2(); d > dist2 {
			far, dist2 = p, d
		}
	}
	dist := math.Sqrt(dist2)
	if dist < mergeDistance {
		return true
	}
	dir := far.Sub(a)
	for _, p := range poly[1:] {
		if math.Abs(dir.Cross(p.Sub(a)))/dist > mergeDistance {
			return false
		}
	}
	return true
}
