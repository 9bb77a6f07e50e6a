package pietable

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/textcraft/pietable/internal/journal"
)

// recordDump is the JSON shape of one journaled command in Dump's
// output: the applied position plus the removed/inserted text it
// carries, mirroring the fields a command needs to invert itself.
type recordDump struct {
	Kind     string `json:"kind"`
	Position int    `json:"position"`
	Removed  string `json:"removed,omitempty"`
	Inserted string `json:"inserted,omitempty"`
}

func toRecordDump(r journal.RecordInfo) recordDump {
	return recordDump{
		Kind:     r.Description,
		Position: r.Position,
		Removed:  string(r.Removed),
		Inserted: string(r.Inserted),
	}
}

// Dump renders a diagnostic snapshot of the buffer as formatted JSON:
// the document text, the piece chain (buffer/start/length per piece),
// the two content buffers' sizes, and the undo/redo stacks (kind,
// position, and payload per command). This is the structural dump
// the original piece table's piece_table_log produced, extended to
// also cover the history this implementation adds. The field set is
// unspecified and exists only for debugging; do not parse it for
// program logic beyond DumpField.
func (b *Buffer) Dump() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	document, _ := b.table.ToBytes()

	raw := "{}"
	raw, _ = sjson.Set(raw, "length", b.table.Len())
	raw, _ = sjson.Set(raw, "document", string(document))
	raw, _ = sjson.Set(raw, "originalLen", b.table.OriginalLen())
	raw, _ = sjson.Set(raw, "addLen", b.table.AddLen())
	raw, _ = sjson.Set(raw, "pieces", b.table.Pieces())
	raw, _ = sjson.Set(raw, "undoCount", b.history.UndoCount())
	raw, _ = sjson.Set(raw, "redoCount", b.history.RedoCount())
	raw, _ = sjson.Set(raw, "canUndo", b.history.CanUndo())
	raw, _ = sjson.Set(raw, "canRedo", b.history.CanRedo())
	raw, _ = sjson.Set(raw, "sessionActive", b.session != nil)

	undo := make([]recordDump, 0, b.history.UndoCount())
	for _, r := range b.history.UndoRecords() {
		undo = append(undo, toRecordDump(r))
	}
	raw, _ = sjson.Set(raw, "undo", undo)

	redo := make([]recordDump, 0, b.history.RedoCount())
	for _, r := range b.history.RedoRecords() {
		redo = append(redo, toRecordDump(r))
	}
	raw, _ = sjson.Set(raw, "redo", redo)

	return string(pretty.Pretty([]byte(raw)))
}

// DumpField extracts one field from Dump's output by gjson path,
// returning its raw JSON text. It returns ok=false if the path does
// not resolve, which callers should treat as "nothing to show" rather
// than an error: Dump's schema may grow or reshape between versions.
func (b *Buffer) DumpField(path string) (value string, ok bool) {
	result := gjson.Get(b.Dump(), path)
	if !result.Exists() {
		return "", false
	}
	return result.Raw, true
}
