package journal

// Mutator is the subset of piece.Table that a command needs in order
// to apply or invert itself. It is defined here, rather than imported
// from the piece package, so this package stays agnostic of the
// concrete table implementation and is easy to exercise with fakes in
// tests.
type Mutator interface {
	Insert(pos int, text []byte) error
	Remove(pos, length int) ([]byte, error)
	Replace(pos, length int, text []byte) ([]byte, error)
}

// Command is one journaled, invertible mutation.
type Command interface {
	// Redo re-applies the command's forward effect to m.
	Redo(m Mutator) error
	// Undo reverses the command's effect on m.
	Undo(m Mutator) error
	// Description names the command for diagnostic output.
	Description() string
	// Info returns a read-only snapshot of the command for diagnostic
	// dumps.
	Info() RecordInfo
}

// RecordInfo is a read-only snapshot of one journaled command: its
// kind, the position it applies at, and the bytes it removed and/or
// inserted. Removed and Inserted are nil when not applicable to the
// command's kind.
type RecordInfo struct {
	Description string
	Position    int
	Removed     []byte
	Inserted    []byte
}

// InsertCommand records an insertion of Text at Position.
type InsertCommand struct {
	Position int
	Text     []byte
}

func (c *InsertCommand) Redo(m Mutator) error {
	return m.Insert(c.Position, c.Text)
}

func (c *InsertCommand) Undo(m Mutator) error {
	_, err := m.Remove(c.Position, len(c.Text))
	return err
}

func (c *InsertCommand) Description() string { return "insert" }

func (c *InsertCommand) Info() RecordInfo {
	return RecordInfo{Description: c.Description(), Position: c.Position, Inserted: c.Text}
}

// RemoveCommand records a deletion of Text (captured before removal)
// from Position.
type RemoveCommand struct {
	Position int
	Text     []byte
}

func (c *RemoveCommand) Redo(m Mutator) error {
	_, err := m.Remove(c.Position, len(c.Text))
	return err
}

func (c *RemoveCommand) Undo(m Mutator) error {
	return m.Insert(c.Position, c.Text)
}

func (c *RemoveCommand) Description() string { return "remove" }

func (c *RemoveCommand) Info() RecordInfo {
	return RecordInfo{Description: c.Description(), Position: c.Position, Removed: c.Text}
}

// ReplaceCommand records a single atomic replace: Removed bytes
// (captured before the mutation) swapped for Inserted bytes, both at
// Position. Undo and Redo apply as one Replace call each, not as a
// paired remove+insert, so a Replace always journals as exactly one
// record.
type ReplaceCommand struct {
	Position int
	Removed  []byte
	Inserted []byte
}

func (c *ReplaceCommand) Redo(m Mutator) error {
	_, err := m.Replace(c.Position, len(c.Removed), c.Inserted)
	return err
}

func (c *ReplaceCommand) Undo(m Mutator) error {
	_, err := m.Replace(c.Position, len(c.Inserted), c.Removed)
	return err
}

func (c *ReplaceCommand) Description() string { return "replace" }

func (c *ReplaceCommand) Info() RecordInfo {
	return RecordInfo{
		Description: c.Description(),
		Position:    c.Position,
		Removed:     c.Removed,
		Inserted:    c.Inserted,
	}
}
