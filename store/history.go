package store

import "github.com/eggfriedrice24/tcad/pattern"

// MaxUndo is the number of undo snapshots kept by default.
const MaxUndo = 100

// Snapshot is the complete, ordered set of pieces at one point in time.
type Snapshot []pattern.Piece

// History holds bounded undo and redo stacks of snapshots.
//
// History does no locking of its own; the [Store] owning it serializes
// access.
type History struct {
	undo []Snapshot
	redo []Snapshot
	max  int
}

// NewHistory returns an empty history keeping at most max undo snapshots.
// A max below one means [MaxUndo].
func NewHistory(max int) *History {
	if max < 1 {
		max = MaxUndo
	}
	return &History{max: max}
}

// Push records s as the most recent undo snapshot and clears the redo stack.
// At capacity, the oldest snapshot is dropped.
func (h *History) Push(s Snapshot) {
	h.PushUndoOnly(s)
	clear(h.redo)
	h.redo = h.redo[:0]
}

// PushUndoOnly records s like [History.Push] but keeps the redo stack.
func (h *History) PushUndoOnly(s Snapshot) {
	if len(h.undo) >= h.max {
		h.undo = append(h.undo[:0], h.undo[len(h.undo)-h.max+1:]...)
	}
	h.undo = append(h.undo, s)
}

// PopUndo removes and returns the most recent undo snapshot.
func (h *History) PopUndo() (Snapshot, bool) {
	return pop(&h.undo)
}

// PushRedo records s on the redo stack.
func (h *History) PushRedo(s Snapshot) {
	h.redo = append(h.redo, s)
}

// PopRedo removes and returns the most recent redo snapshot.
func (h *History) PopRedo() (Snapshot, bool) {
	return pop(&h.redo)
}

// Clear empties both stacks.
func (h *History) Clear() {
	clear(h.undo)
	clear(h.redo)
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoLen returns the number of undo snapshots.
func (h *History) UndoLen() int { return len(h.undo) }

// RedoLen returns the number of redo snapshots.
func (h *History) RedoLen() int { return len(h.redo) }

func pop(stack *[]Snapshot) (Snapshot, bool) {
	n := len(*stack)
	if n == 0 {
		return nil, false
	}
	s := (*stack)[n-1]
	(*stack)[n-1] = nil
	*stack = (*stack)[:n-1]
	return s, true
}
