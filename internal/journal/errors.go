package journal

import "errors"

// Sentinel errors returned by History operations.
var (
	// ErrNothingToUndo is returned by Undo when the undo stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo is returned by Redo when the redo stack is empty.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrSessionActive is returned when an edit, Undo, Redo, or a second
	// session is attempted while a micro-insert session is open. History
	// itself never returns it; the pietable.Buffer façade enforces the
	// single-session rule.
	ErrSessionActive = errors.New("micro-insert session already active")

	// ErrNoSession is returned by session operations called without a
	// prior, still-open SessionBegin.
	ErrNoSession = errors.New("no micro-insert session active")
)
