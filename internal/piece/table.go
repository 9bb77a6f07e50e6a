package piece

// bufferKind names one of the two content buffers a piece can view.
type bufferKind uint8

const (
	bufferOriginal bufferKind = iota
	bufferAdd
)

// piece is a view descriptor: a contiguous byte range in one of the two
// content buffers. Pieces are nodes of a singly-linked, head-rooted
// chain; a piece of length zero is legal only transiently during
// editing or as a micro-insert session anchor.
type piece struct {
	buf    bufferKind
	start  int
	length int
	next   *piece
}

// Table is a piece-table: two append-only content buffers plus the
// piece chain whose concatenation yields the logical document. Table
// is a plain mutable value type (not safe for concurrent use); callers
// external to this package must serialize access, matching the
// single-threaded scheduling model of the engine this package backs.
type Table struct {
	original []byte
	add      []byte
	head     *piece
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// FromBytes returns a table whose logical document is initial. The
// bytes are copied into the table's immutable ORIGINAL buffer.
func FromBytes(initial []byte) *Table {
	t := &Table{
		original: append([]byte(nil), initial...),
	}
	if len(initial) > 0 {
		t.head = &piece{buf: bufferOriginal, start: 0, length: len(initial)}
	}
	return t
}

// Len returns the total byte length of the logical document.
func (t *Table) Len() int {
	total := 0
	for cur := t.head; cur != nil; cur = cur.next {
		total += cur.length
	}
	return total
}

// bufferBytes returns the content buffer named by kind.
func (t *Table) bufferBytes(kind bufferKind) []byte {
	if kind == bufferOriginal {
		return t.original
	}
	return t.add
}

// linkPrevTo relinks prev's successor to node. A nil prev means node
// becomes the new chain head.
func (t *Table) linkPrevTo(prev, node *piece) {
	if prev == nil {
		t.head = node
		return
	}
	prev.next = node
}

// splitAt splits p in place at local offset off (0 < off < p.length)
// into p (now covering [0,off)) and a new piece covering [off,p.length)
// linked immediately after p. Both halves keep referencing the same
// underlying buffer bytes; no content is copied or moved.
func (t *Table) splitAt(p *piece, off int) {
	right := &piece{
		buf:    p.buf,
		start:  p.start + off,
		length: p.length - off,
		next:   p.next,
	}
	p.length = off
	p.next = right
}
