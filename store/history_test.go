package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggfriedrice24/tcad/pattern"
)

func snap(name string) Snapshot {
	return Snapshot{pattern.NewPiece(name)}
}

func TestHistoryPushPop(t *testing.T) {
	h := NewHistory(0)
	assert.False(t, h.CanUndo())
	_, ok := h.PopUndo()
	assert.False(t, ok)

	h.Push(snap("a"))
	h.Push(snap("b"))
	assert.Equal(t, 2, h.UndoLen())

	s, ok := h.PopUndo()
	require.True(t, ok)
	assert.Equal(t, "b", s[0].Name)
	h.PushRedo(s)
	assert.True(t, h.CanRedo())

	// PushUndoOnly keeps the redo stack, Push clears it.
	h.PushUndoOnly(snap("c"))
	assert.Equal(t, 1, h.RedoLen())
	h.Push(snap("d"))
	assert.Equal(t, 0, h.RedoLen())
	assert.Equal(t, 3, h.UndoLen())

	h.Clear()
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestHistoryDropsOldest(t *testing.T) {
	h := NewHistory(3)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		h.Push(snap(name))
	}
	assert.Equal(t, 3, h.UndoLen())

	var got []string
	for {
		s, ok := h.PopUndo()
		if !ok {
			break
		}
		got = append(got, s[0].Name)
	}
	assert.Equal(t, []string{"e", "d", "c"}, got)
}
