package pietable

import (
	"sync"

	"github.com/textcraft/pietable/internal/journal"
	"github.com/textcraft/pietable/internal/piece"
)

// Buffer is the top-level piece-table text buffer façade. The zero
// value is not usable; construct one with New or FromBytes.
type Buffer struct {
	mu      sync.RWMutex
	table   *piece.Table
	history *journal.History

	maxHistory int

	session      *piece.Anchor
	sessionStart int
}

// New returns an empty Buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{table: piece.New()}
	for _, opt := range opts {
		opt(b)
	}
	b.history = journal.NewHistory(b.maxHistory)
	return b
}

// FromBytes returns a Buffer whose initial document is initial.
func FromBytes(initial []byte, opts ...Option) *Buffer {
	b := &Buffer{table: piece.FromBytes(initial)}
	for _, opt := range opts {
		opt(b)
	}
	b.history = journal.NewHistory(b.maxHistory)
	return b
}

// Insert inserts text at pos, journaling the edit so it can be
// undone.
func (b *Buffer) Insert(pos int, text []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.insertLocked(pos, text)
}

func (b *Buffer) insertLocked(pos int, text []byte) error {
	if b.session != nil {
		return ErrSessionActive
	}
	if err := b.table.Insert(pos, text); err != nil {
		return err
	}
	b.history.Push(&journal.InsertCommand{Position: pos, Text: append([]byte(nil), text...)})
	return nil
}

// Remove deletes length bytes at pos, returning the bytes removed,
// and journals the edit.
func (b *Buffer) Remove(pos, length int) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session != nil {
		return nil, ErrSessionActive
	}
	removed, err := b.table.Remove(pos, length)
	if err != nil {
		return nil, err
	}
	b.history.Push(&journal.RemoveCommand{Position: pos, Text: removed})
	return removed, nil
}

// Replace removes length bytes at pos and inserts text in their
// place, returning the bytes removed. The whole operation journals as
// a single atomic command.
func (b *Buffer) Replace(pos, length int, text []byte) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session != nil {
		return nil, ErrSessionActive
	}
	removed, err := b.table.Replace(pos, length, text)
	if err != nil {
		return removed, err
	}
	b.history.Push(&journal.ReplaceCommand{
		Position: pos,
		Removed:  removed,
		Inserted: append([]byte(nil), text...),
	})
	return removed, nil
}

// SessionBegin opens a micro-insert session at pos. Only one session
// may be open at a time; mutating methods and a second SessionBegin
// fail with ErrSessionActive until the open session is ended or
// aborted.
func (b *Buffer) SessionBegin(pos int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session != nil {
		return ErrSessionActive
	}
	a, err := b.table.BeginAnchor(pos)
	if err != nil {
		return err
	}
	b.session = &a
	b.sessionStart = pos
	return nil
}

// SessionAppend appends text to the open session.
func (b *Buffer) SessionAppend(text []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session == nil {
		return ErrNoSession
	}
	b.table.ExtendAnchor(*b.session, text)
	return nil
}

// SessionEnd closes the open session, journaling everything it
// accumulated as a single Insert command.
func (b *Buffer) SessionEnd() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session == nil {
		return ErrNoSession
	}
	final := b.table.CloseAnchor(*b.session)
	pos := b.sessionStart
	b.session = nil
	if len(final) > 0 {
		b.history.Push(&journal.InsertCommand{Position: pos, Text: append([]byte(nil), final...)})
	}
	return nil
}

// SessionAbort cancels the open session without journaling anything,
// leaving the document exactly as it was before SessionBegin.
func (b *Buffer) SessionAbort() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session == nil {
		return ErrNoSession
	}
	b.table.AbortAnchor(*b.session)
	b.session = nil
	return nil
}

// Undo reverses the most recent command.
func (b *Buffer) Undo() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session != nil {
		return ErrSessionActive
	}
	return b.history.Undo(b.table)
}

// Redo re-applies the most recently undone command.
func (b *Buffer) Redo() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session != nil {
		return ErrSessionActive
	}
	return b.history.Redo(b.table)
}

// Length returns the total byte length of the document.
func (b *Buffer) Length() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.table.Len()
}

// CharAt returns the byte at logical offset pos.
func (b *Buffer) CharAt(pos int) (byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.table.CharAt(pos)
}

// Slice returns a copy of the n bytes starting at pos.
func (b *Buffer) Slice(pos, n int) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.table.Slice(pos, n)
}

// Line returns the text of the k-th line (1-indexed), excluding its
// terminating newline.
func (b *Buffer) Line(k int) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.table.Line(k)
}

// ToBytes materializes the entire document.
func (b *Buffer) ToBytes() ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.table.ToBytes()
}

// CanUndo reports whether Undo would currently succeed.
func (b *Buffer) CanUndo() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.history.CanUndo()
}

// CanRedo reports whether Redo would currently succeed.
func (b *Buffer) CanRedo() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.history.CanRedo()
}

// IsSessionActive reports whether a micro-insert session is open.
func (b *Buffer) IsSessionActive() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.session != nil
}
