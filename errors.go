package pietable

import (
	"github.com/textcraft/pietable/internal/journal"
	"github.com/textcraft/pietable/internal/piece"
)

// Sentinel errors returned by Buffer methods. These alias the
// internal package errors directly rather than wrapping them, so
// errors.Is checks work the same way whether a caller imports
// pietable or (for advanced use) the internal packages directly.
var (
	ErrOutOfBounds       = piece.ErrOutOfBounds
	ErrEmptyInput        = piece.ErrEmptyInput
	ErrAllocationFailure = piece.ErrAllocationFailure

	ErrNothingToUndo = journal.ErrNothingToUndo
	ErrNothingToRedo = journal.ErrNothingToRedo
	ErrSessionActive = journal.ErrSessionActive
	ErrNoSession     = journal.ErrNoSession
)
