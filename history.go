package whiteboard

// HistoryDepth is the maximum number of snapshots kept on either history
// stack. Pushing beyond the bound evicts the oldest entry.
const HistoryDepth = 40

// history is a page's bounded undo/redo stack of full-raster snapshots,
// most-recent-last. Snapshot-based undo trades memory for correctness:
// erasing is just another raster state, so nothing needs inverting.
type history struct {
	undo []*Pixmap
	redo []*Pixmap
}

// Push captures the canvas's current raster and appends it to the undo
// stack. A non-baseline push clears the redo stack: a fresh action
// invalidates any previously undone future. Baseline pushes (initial or
// loaded state) leave redo untouched.
func (h *history) Push(c *Canvas, baseline bool) {
	h.undo = appendBounded(h.undo, c.Snapshot())
	if !baseline {
		h.redo = h.redo[:0]
	}
}

// Undo moves the buffer one snapshot back: the current raster goes onto
// the redo stack, the most recent undo entry is restored. Reports whether
// anything changed; an empty undo stack is a no-op.
func (h *history) Undo(c *Canvas) bool {
	if len(h.undo) == 0 {
		return false
	}
	h.redo = appendBounded(h.redo, c.Snapshot())
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	c.restore(top)
	return true
}

// Redo is the symmetric inverse of Undo.
func (h *history) Redo(c *Canvas) bool {
	if len(h.redo) == 0 {
		return false
	}
	h.undo = appendBounded(h.undo, c.Snapshot())
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	c.restore(top)
	return true
}

// Rebaseline drops both stacks and pushes a single baseline snapshot of
// the current raster. Used when a page's bitmap is replaced wholesale
// (creation, session load) and on buffer dimension changes, so stale
// snapshots captured at old dimensions can never be restored.
func (h *history) Rebaseline(c *Canvas) {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
	h.Push(c, true)
}

// CanUndo reports whether the undo stack is non-empty.
func (h *history) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (h *history) CanRedo() bool { return len(h.redo) > 0 }

// appendBounded appends a snapshot, evicting the oldest entry when the
// stack would exceed HistoryDepth.
func appendBounded(stack []*Pixmap, snap *Pixmap) []*Pixmap {
	stack = append(stack, snap)
	if len(stack) > HistoryDepth {
		copy(stack, stack[1:])
		stack = stack[:HistoryDepth]
	}
	return stack
}
