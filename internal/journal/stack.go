package journal

// History is a LIFO undo/redo stack of Commands. It is not safe for
// concurrent use; the façade that owns a History is expected to
// serialize access the same way it serializes access to the table the
// commands mutate.
type History struct {
	undo       []Command
	redo       []Command
	maxEntries int
}

// NewHistory returns a History that retains at most maxEntries
// commands on its undo stack. A non-positive maxEntries means
// unlimited.
func NewHistory(maxEntries int) *History {
	return &History{maxEntries: maxEntries}
}

// Push records cmd as the most recent command and clears the redo
// stack, per the standard editor convention that any new edit
// invalidates previously undone history.
func (h *History) Push(cmd Command) {
	h.undo = append(h.undo, cmd)
	h.redo = h.redo[:0]
	if h.maxEntries > 0 && len(h.undo) > h.maxEntries {
		drop := len(h.undo) - h.maxEntries
		h.undo = h.undo[drop:]
	}
}

// Undo pops the most recent command, applies its inverse to m, and
// moves it to the redo stack. If Undo fails to apply, the command is
// left off both stacks rather than risk replaying it against a table
// it no longer matches.
func (h *History) Undo(m Mutator) error {
	if len(h.undo) == 0 {
		return ErrNothingToUndo
	}
	last := len(h.undo) - 1
	cmd := h.undo[last]
	h.undo = h.undo[:last]

	if err := cmd.Undo(m); err != nil {
		return err
	}
	h.redo = append(h.redo, cmd)
	return nil
}

// Redo pops the most recently undone command, re-applies it to m, and
// moves it back to the undo stack.
func (h *History) Redo(m Mutator) error {
	if len(h.redo) == 0 {
		return ErrNothingToRedo
	}
	last := len(h.redo) - 1
	cmd := h.redo[last]
	h.redo = h.redo[:last]

	if err := cmd.Redo(m); err != nil {
		return err
	}
	h.undo = append(h.undo, cmd)
	return nil
}

// CanUndo reports whether Undo would currently succeed.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would currently succeed.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoCount returns the number of commands available to Undo.
func (h *History) UndoCount() int { return len(h.undo) }

// RedoCount returns the number of commands available to Redo.
func (h *History) RedoCount() int { return len(h.redo) }

// Clear discards all undo and redo history.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

// UndoRecords returns a snapshot of the undo stack, ordered oldest
// first, for diagnostic dumps.
func (h *History) UndoRecords() []RecordInfo {
	return recordInfos(h.undo)
}

// RedoRecords returns a snapshot of the redo stack, ordered oldest
// first, for diagnostic dumps.
func (h *History) RedoRecords() []RecordInfo {
	return recordInfos(h.redo)
}

func recordInfos(cmds []Command) []RecordInfo {
	out := make([]RecordInfo, 0, len(cmds))
	for _, cmd := range cmds {
		out = append(out, cmd.Info())
	}
	return out
}
