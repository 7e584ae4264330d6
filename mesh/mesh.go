// Package mesh assembles the fill meshes of many pieces into one indexed
// buffer for 3D preview.
package mesh

import (
	"fmt"

	"github.com/eggfriedrice24/tcad"
	"github.com/eggfriedrice24/tcad/pattern"
	"github.com/eggfriedrice24/tcad/tessellate"
)

// Buffer is an indexed triangle mesh of flat pieces.
//
// Positions and Normals hold x, y, z triples, UVs holds u, v pairs; all three
// describe the same vertices. Indices holds three vertex indices per triangle.
type Buffer struct {
	Positions []float32 `json:"positions"`
	Normals   []float32 `json:"normals"`
	Indices   []uint32  `json:"indices"`
	UVs       []float32 `json:"uvs"`
}

// VertexCount returns the number of vertices in the buffer.
func (b *Buffer) VertexCount() int {
	return len(b.Positions) / 3
}

// Generate tessellates every non-empty piece and concatenates the results.
// Pieces with an empty outline contribute nothing, so an input of only empty
// pieces yields a buffer of empty, non-nil slices.
//
// Positions are in world coordinates. Every normal is (0, 0, 1). The UV of a
// vertex is its position relative to the piece origin, in millimetres and not
// normalized. Each piece's indices are offset by the number of vertices
// emitted before it.
func Generate(pieces []pattern.Piece) (Buffer, error) {
	buf := Buffer{
		Positions: []float32{},
		Normals:   []float32{},
		Indices:   []uint32{},
		UVs:       []float32{},
	}
	ts := tessellate.New()
	for i := range pieces {
		p := &pieces[i]
		if p.IsEmpty() {
			continue
		}
		tr, err := ts.Outline(p.Origin, p.Outline)
		if err != nil {
			return Buffer{}, fmt.Errorf("mesh: piece %q: %w", p.ID, err)
		}

		base := uint32(buf.VertexCount())
		ox, oy := float32(p.Origin.X), float32(p.Origin.Y)
		for v := 0; v+2 < len(tr.Vertices); v += 3 {
			x, y := tr.Vertices[v], tr.Vertices[v+1]
			buf.Positions = append(buf.Positions, x, y, tr.Vertices[v+2])
			buf.Normals = append(buf.Normals, 0, 0, 1)
			buf.UVs = append(buf.UVs, x-ox, y-oy)
		}
		for _, idx := range tr.Indices {
			buf.Indices = append(buf.Indices, base+idx)
		}
		tcad.Logger().Debug("mesh: piece tessellated",
			"id", p.ID,
			"vertices", tr.VertexCount(),
			"triangles", tr.TriangleCount())
	}
	return buf, nil
}
