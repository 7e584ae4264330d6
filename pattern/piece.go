package pattern

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/eggfriedrice24/tcad/geom"
)

// DefaultSeamAllowance is the seam allowance of new pieces, in millimetres.
const DefaultSeamAllowance = 10.0

// Metadata is free-form information about a piece that no geometric
// operation looks at.
type Metadata struct {
	FabricType  *string `json:"fabric_type"`
	CutQuantity uint32  `json:"cut_quantity"`
	Mirror      bool    `json:"mirror"`
	Notes       string  `json:"notes"`
}

// DefaultMetadata returns metadata for a piece cut once, unmirrored.
func DefaultMetadata() Metadata {
	return Metadata{CutQuantity: 1}
}

// Piece is a single pattern piece.
//
// Origin places the piece in world space. Outline, GrainLine, Notches and
// InternalLines are relative to Origin. The outline starts at the origin and is
// implicitly closed back to it; so is each internal line.
type Piece struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Origin          geom.Point     `json:"origin"`
	Outline         []Segment      `json:"outline"`
	GrainLine       *[2]geom.Point `json:"grain_line"`
	SeamAllowanceMM float64        `json:"seam_allowance_mm"`
	Notches         []geom.Point   `json:"notches"`
	InternalLines   [][]Segment    `json:"internal_lines"`
	Metadata        Metadata       `json:"metadata"`
}

// NewPiece returns an empty piece with the given name, placed at the world
// origin, with the default seam allowance and metadata.
func NewPiece(name string) Piece {
	return Piece{
		Name:            name,
		Outline:         []Segment{},
		SeamAllowanceMM: DefaultSeamAllowance,
		Notches:         []geom.Point{},
		InternalLines:   [][]Segment{},
		Metadata:        DefaultMetadata(),
	}
}

// IsEmpty reports whether the piece has no outline segments.
func (p *Piece) IsEmpty() bool {
	return len(p.Outline) == 0
}

// Check returns an error wrapping [tcad.ErrInvalidSegment] if the outline or
// any internal line contains a segment of unknown kind.
func (p *Piece) Check() error {
	if err := CheckSegments(p.Outline); err != nil {
		return fmt.Errorf("piece %q outline: %w", p.ID, err)
	}
	for i, line := range p.InternalLines {
		if err := CheckSegments(line); err != nil {
			return fmt.Errorf("piece %q internal line %d: %w", p.ID, i, err)
		}
	}
	return nil
}

// CheckPieces calls [Piece.Check] on every piece.
func CheckPieces(pieces []Piece) error {
	for i := range pieces {
		if err := pieces[i].Check(); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of p that shares no slices or pointers with it.
func (p Piece) Clone() Piece {
	var out Piece
	if err := copier.CopyWithOption(&out, &p, copier.Option{DeepCopy: true}); err != nil {
		// Piece contains only plain data; copier can't fail on it.
		panic(fmt.Sprintf("pattern: cloning piece: %v", err))
	}
	return out
}

// ClonePieces deep-copies a slice of pieces.
func ClonePieces(pieces []Piece) []Piece {
	if pieces == nil {
		return nil
	}
	out := make([]Piece, len(pieces))
	for i, p := range pieces {
		out[i] = p.Clone()
	}
	return out
}
