package piece

// Anchor is an opaque handle to an in-progress micro-insert session: a
// zero-length piece already linked into the chain at the session's
// start position, extended in place as text streams in. Only one
// Anchor may be open against a Table at a time; callers are
// responsible for enforcing that (see pietable.Buffer.SessionBegin,
// which rejects a second session while one is outstanding).
type Anchor struct {
	prev *piece
	node *piece
}

// BeginAnchor opens a micro-insert session at pos, linking a
// zero-length piece into the chain at that position. The anchor views
// the tail of the ADD buffer; ExtendAnchor grows it in place as long
// as nothing else is appended to ADD in between.
func (t *Table) BeginAnchor(pos int) (Anchor, error) {
	total := t.Len()
	if pos < 0 || pos > total {
		return Anchor{}, ErrOutOfBounds
	}

	prev, at, local, err := t.resolveBoundary(pos)
	if err != nil {
		return Anchor{}, err
	}

	n := &piece{buf: bufferAdd, start: len(t.add), length: 0}

	switch {
	case at == nil:
		t.head = n
	case local == 0 && prev == nil:
		n.next = at
		t.head = n
	case local == 0:
		n.next = at
		prev.next = n
	case local == at.length:
		n.next = at.next
		at.next = n
		prev = at
	default:
		t.splitAt(at, local)
		n.next = at.next
		at.next = n
		prev = at
	}

	return Anchor{prev: prev, node: n}, nil
}

// ExtendAnchor appends text to the ADD buffer and grows a's piece to
// cover it. It panics if a's piece no longer sits at the tail of ADD,
// which would indicate a's Table was mutated by something other than
// this anchor since BeginAnchor — a programmer error in the caller.
func (t *Table) ExtendAnchor(a Anchor, text []byte) {
	if len(text) == 0 {
		return
	}
	if a.node.start+a.node.length != len(t.add) {
		panic("piece: ExtendAnchor called on a stale anchor")
	}
	t.add = append(t.add, text...)
	a.node.length += len(text)
}

// CloseAnchor finalizes a session, returning the bytes it inserted in
// total. The anchor's piece remains in the chain as an ordinary piece.
// Closing an anchor that never received any text removes the
// now-permanently-empty piece from the chain and returns an empty
// slice.
func (t *Table) CloseAnchor(a Anchor) []byte {
	if a.node.length == 0 {
		t.linkPrevTo(a.prev, a.node.next)
		return []byte{}
	}
	return t.add[a.node.start : a.node.start+a.node.length]
}

// AbortAnchor cancels a session, unlinking its piece from the chain.
// Any bytes already appended to ADD during the session remain there,
// unreclaimed, per the append-only buffer invariant.
func (t *Table) AbortAnchor(a Anchor) {
	t.linkPrevTo(a.prev, a.node.next)
}
