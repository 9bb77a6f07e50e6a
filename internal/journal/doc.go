// Package journal implements the undo/redo history for a piece table:
// a LIFO stack of inverse-capable command records plus the stack
// bookkeeping (push, undo, redo, redo-stack clearing) to drive them.
//
// A command records both the forward edit (for Redo) and everything
// needed to reverse it (for Undo) at the moment it was applied — an
// Insert records its own inserted text so Undo can remove exactly
// that range; a Remove records the bytes it deleted so Undo can
// reinsert them verbatim; a Replace records both and undoes/redoes as
// one atomic step rather than as a paired remove+insert.
package journal
