// Package pietable implements an in-memory piece-table text buffer: a
// mutable document built from two append-only content buffers (an
// immutable ORIGINAL and a growing ADD) plus a singly-linked chain of
// piece view descriptors whose concatenation is the logical document.
//
// # Architecture
//
// Buffer is the top-level façade. It owns an internal/piece.Table
// (content buffers, piece chain, position resolution, queries, and
// the raw edit operations) and an internal/journal.History (the
// undo/redo command stack), and coordinates the two: every mutating
// call on Buffer performs the edit against the table and then
// journals a command capturing its exact inverse.
//
// # Thread Safety
//
// Buffer guards all state with a sync.RWMutex. Read operations
// (CharAt, Slice, Line, ToBytes, Length) take the read lock; mutating
// operations (Insert, Remove, Replace, Undo, Redo, and the Session*
// family) take the write lock. A Buffer value must not be copied
// after first use.
//
// # Basic Usage
//
//	buf := pietable.FromBytes([]byte("hello world"))
//	if err := buf.Insert(5, []byte(",")); err != nil {
//		// handle err
//	}
//	text, err := buf.ToBytes()
//
// # Undo/Redo
//
//	if err := buf.Undo(); err != nil {
//		// ErrNothingToUndo if the history is empty
//	}
//	if err := buf.Redo(); err != nil {
//		// ErrNothingToRedo if nothing was undone
//	}
//
// Any new mutation after an Undo discards the redo stack, matching
// standard editor behavior.
//
// # Micro-insert Sessions
//
// A session batches many small appends — as from fast keystroke
// input — into a single undo/redo record:
//
//	if err := buf.SessionBegin(5); err != nil {
//		// handle err
//	}
//	buf.SessionAppend([]byte("w"))
//	buf.SessionAppend([]byte("o"))
//	buf.SessionAppend([]byte("w"))
//	if err := buf.SessionEnd(); err != nil {
//		// handle err
//	}
//	// Undo now removes "wow" in a single step.
//
// SessionAbort cancels a session without journaling anything; the
// document is left exactly as it was before SessionBegin.
//
// # Diagnostics
//
// Dump renders the buffer's internal state — the document text, the
// piece chain, the content buffer sizes, and the undo/redo stacks —
// as formatted JSON for debugging. Its field set is unspecified and
// may change between versions; callers that need a stable field
// should use DumpField with a gjson path and treat a missing field as
// informational, not an error condition to build logic around.
package pietable
