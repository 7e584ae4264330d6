package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggfriedrice24/tcad"
	"github.com/eggfriedrice24/tcad/geom"
	"github.com/eggfriedrice24/tcad/pattern"
)

func square(name string) pattern.Piece {
	p := pattern.NewPiece(name)
	p.Outline = []pattern.Segment{
		pattern.Line(geom.Pt(10, 0)),
		pattern.Line(geom.Pt(10, 10)),
		pattern.Line(geom.Pt(0, 10)),
	}
	return p
}

func names(pieces []pattern.Piece) []string {
	out := make([]string, len(pieces))
	for i, p := range pieces {
		out[i] = p.Name
	}
	return out
}

func TestCreateGet(t *testing.T) {
	s := New()
	p := square("Front")
	p.ID = "ignored"

	id, err := s.Create(p)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, "ignored", id)

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Front", got.Name)
	assert.Len(t, got.Outline, 3)
	assert.Equal(t, 1, s.Len())
}

func TestCopies(t *testing.T) {
	s := New()
	p := square("Front")
	id, err := s.Create(p)
	require.NoError(t, err)

	// Changing the caller's piece doesn't reach the store.
	p.Outline[0] = pattern.Line(geom.Pt(99, 99))

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(10, 0), got.Outline[0].End)

	// Nor does changing a piece handed out by the store.
	got.Outline[0] = pattern.Line(geom.Pt(-1, -1))
	all := s.All()
	assert.Equal(t, geom.Pt(10, 0), all[0].Outline[0].End)
}

func TestUpdateDelete(t *testing.T) {
	s := New()
	a, err := s.Create(square("A"))
	require.NoError(t, err)
	b, err := s.Create(square("B"))
	require.NoError(t, err)
	c, err := s.Create(square("C"))
	require.NoError(t, err)

	upd := square("B2")
	upd.ID = "something else"
	require.NoError(t, s.Update(b, upd))
	got, err := s.Get(b)
	require.NoError(t, err)
	assert.Equal(t, b, got.ID)
	assert.Equal(t, []string{"A", "B2", "C"}, names(s.All()))

	require.NoError(t, s.Delete(a))
	assert.Equal(t, []string{"B2", "C"}, names(s.All()))

	ps, err := s.Pieces(c, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B2"}, names(ps))
}

func TestNotFound(t *testing.T) {
	s := New()
	_, err := s.Get("nope")
	assert.ErrorIs(t, err, tcad.ErrNotFound)
	assert.ErrorIs(t, s.Update("nope", square("x")), tcad.ErrNotFound)
	assert.ErrorIs(t, s.Delete("nope"), tcad.ErrNotFound)
	_, err = s.Pieces("nope")
	assert.ErrorIs(t, err, tcad.ErrNotFound)
	assert.False(t, s.CanUndo(), "failed mutations must not record history")
}

func TestAllEmpty(t *testing.T) {
	s := New()
	assert.NotNil(t, s.All())
	assert.Empty(t, s.All())
	ps, err := s.Pieces()
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestUndoRedo(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.Undo(), tcad.ErrNothingToUndo)
	assert.ErrorIs(t, s.Redo(), tcad.ErrNothingToRedo)

	a, err := s.Create(square("A"))
	require.NoError(t, err)
	_, err = s.Create(square("B"))
	require.NoError(t, err)
	upd := square("A2")
	require.NoError(t, s.Update(a, upd))
	assert.Equal(t, []string{"A2", "B"}, names(s.All()))

	require.NoError(t, s.Undo())
	assert.Equal(t, []string{"A", "B"}, names(s.All()))
	require.NoError(t, s.Undo())
	assert.Equal(t, []string{"A"}, names(s.All()))
	assert.True(t, s.CanRedo())

	require.NoError(t, s.Redo())
	assert.Equal(t, []string{"A", "B"}, names(s.All()))
	require.NoError(t, s.Redo())
	assert.Equal(t, []string{"A2", "B"}, names(s.All()))
	assert.ErrorIs(t, s.Redo(), tcad.ErrNothingToRedo)

	// A new mutation after undo discards the redo stack.
	require.NoError(t, s.Undo())
	require.NoError(t, s.Delete(a))
	assert.False(t, s.CanRedo())
	assert.Equal(t, []string{"B"}, names(s.All()))

	require.NoError(t, s.Undo())
	require.NoError(t, s.Undo())
	require.NoError(t, s.Undo())
	assert.Empty(t, s.All())
	assert.False(t, s.CanUndo())
}

func TestUndoRestoresContent(t *testing.T) {
	s := New()
	id, err := s.Create(square("A"))
	require.NoError(t, err)
	before, err := s.Get(id)
	require.NoError(t, err)

	changed := before.Clone()
	changed.Outline = append(changed.Outline, pattern.Arc(geom.Pt(0, 5), 5, 0, 1))
	changed.GrainLine = &[2]geom.Point{geom.Pt(1, 1), geom.Pt(1, 9)}
	require.NoError(t, s.Update(id, changed))

	require.NoError(t, s.Undo())
	after, err := s.Get(id)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(before, after, cmpopts.EquateEmpty()))
}

func TestReplaceAll(t *testing.T) {
	s := New()
	_, err := s.Create(square("A"))
	require.NoError(t, err)

	s.ReplaceAll([]pattern.Piece{square("X"), square("Y")})
	assert.Equal(t, []string{"X", "Y"}, names(s.All()))
	require.NoError(t, s.Undo())
	assert.Equal(t, []string{"A"}, names(s.All()))
	assert.Equal(t, []string{"A"}, names(s.Snapshot()))
}

func TestHistoryCap(t *testing.T) {
	s := New()
	for i := range MaxUndo + 20 {
		_, err := s.Create(square(fmt.Sprint(i)))
		require.NoError(t, err)
	}
	undos := 0
	for s.Undo() == nil {
		undos++
	}
	assert.Equal(t, MaxUndo, undos)
	assert.Equal(t, 20, s.Len())
}

func TestConcurrent(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 10 {
				id, err := s.Create(square(fmt.Sprintf("%d-%d", i, j)))
				if err != nil {
					t.Error(err)
					return
				}
				if _, err := s.Get(id); err != nil {
					t.Error(err)
				}
				s.All()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 80, s.Len())
}
