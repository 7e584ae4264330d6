// Package store keeps the pattern pieces of an open project in memory, with
// bounded undo and redo, project files and crash recovery.
package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/eggfriedrice24/tcad"
	"github.com/eggfriedrice24/tcad/pattern"
)

// Store is an in-memory collection of pieces keyed by ID. Pieces keep their
// insertion order.
//
// Every mutation records the previous state in the undo history. Pieces
// passed in and handed out are deep copies, so callers never share memory
// with the store. A Store is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	pieces  []pattern.Piece
	history *History
}

// New returns an empty store with an undo history of [MaxUndo] snapshots.
func New() *Store {
	return &Store{history: NewHistory(MaxUndo)}
}

func notFound(id string) error {
	return fmt.Errorf("store: piece %q: %w", id, tcad.ErrNotFound)
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.pieces, func(p pattern.Piece) bool { return p.ID == id })
}

// record pushes the current state onto the undo stack. s.mu must be held.
func (s *Store) record() {
	s.history.Push(Snapshot(pattern.ClonePieces(s.pieces)))
}

// Create adds piece under a new random ID, which it returns. Any ID already
// set on piece is replaced.
func (s *Store) Create(piece pattern.Piece) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("store: generating id: %w", err)
	}
	piece = piece.Clone()
	piece.ID = id.String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.record()
	s.pieces = append(s.pieces, piece)
	tcad.Logger().Debug("store: piece created", "id", piece.ID, "name", piece.Name)
	return piece.ID, nil
}

// Update replaces the piece with the given ID, keeping its position. The
// stored piece always carries id, whatever piece.ID says.
func (s *Store) Update(id string, piece pattern.Piece) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return notFound(id)
	}
	s.record()
	piece = piece.Clone()
	piece.ID = id
	s.pieces[i] = piece
	return nil
}

// Delete removes the piece with the given ID.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return notFound(id)
	}
	s.record()
	s.pieces = slices.Delete(s.pieces, i, i+1)
	tcad.Logger().Debug("store: piece deleted", "id", id)
	return nil
}

// Get returns a copy of the piece with the given ID.
func (s *Store) Get(id string) (pattern.Piece, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return pattern.Piece{}, notFound(id)
	}
	return s.pieces[i].Clone(), nil
}

// All returns copies of all pieces in insertion order. The result is never
// nil.
func (s *Store) All() []pattern.Piece {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := pattern.ClonePieces(s.pieces)
	if out == nil {
		out = []pattern.Piece{}
	}
	return out
}

// Pieces returns copies of the pieces with the given IDs, in the order the
// IDs are given. Without IDs it behaves like [Store.All].
func (s *Store) Pieces(ids ...string) ([]pattern.Piece, error) {
	if len(ids) == 0 {
		return s.All(), nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]pattern.Piece, 0, len(ids))
	for _, id := range ids {
		i := s.index(id)
		if i < 0 {
			return nil, notFound(id)
		}
		out = append(out, s.pieces[i].Clone())
	}
	return out, nil
}

// Len returns the number of pieces.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pieces)
}

// ReplaceAll swaps the whole set of pieces for copies of pieces. The
// previous set can be restored with [Store.Undo].
func (s *Store) ReplaceAll(pieces []pattern.Piece) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record()
	s.pieces = pattern.ClonePieces(pieces)
}

// reset replaces all pieces and forgets the history. s.mu must be held.
func (s *Store) reset(pieces []pattern.Piece) {
	s.pieces = pattern.ClonePieces(pieces)
	s.history.Clear()
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot(s.All())
}

// Undo restores the state before the most recent mutation. It returns
// [tcad.ErrNothingToUndo] if there is none.
func (s *Store) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.history.PopUndo()
	if !ok {
		return tcad.ErrNothingToUndo
	}
	s.history.PushRedo(Snapshot(s.pieces))
	s.pieces = prev
	return nil
}

// Redo reapplies the most recently undone mutation. It returns
// [tcad.ErrNothingToRedo] if there is none.
func (s *Store) Redo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := s.history.PopRedo()
	if !ok {
		return tcad.ErrNothingToRedo
	}
	s.history.PushUndoOnly(Snapshot(s.pieces))
	s.pieces = next
	return nil
}

// CanUndo reports whether [Store.Undo] would succeed.
func (s *Store) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanUndo()
}

// CanRedo reports whether [Store.Redo] would succeed.
func (s *Store) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanRedo()
}
