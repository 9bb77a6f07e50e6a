package piece

// resolveBoundary walks the chain looking for the piece straddling the
// zero-width position offset, for use by operations that split or
// relink the chain (Insert, Remove, BeginAnchor). It returns the
// predecessor of the found piece (nil if the found piece is the head),
// the found piece itself, and the local offset within it.
//
// local may equal at.length: that denotes the boundary just after at,
// which is distinct from local == 0 of at.next even though both name
// the same logical position. Callers that split on insertion rely on
// this distinction (see Insert).
//
// When the chain is empty and offset is 0, at is nil and err is nil —
// callers must treat a nil at as "there is nothing to split, attach
// directly to the (empty) chain".
func (t *Table) resolveBoundary(offset int) (prev, at *piece, local int, err error) {
	if offset < 0 {
		return nil, nil, 0, ErrOutOfBounds
	}
	if t.head == nil {
		if offset == 0 {
			return nil, nil, 0, nil
		}
		return nil, nil, 0, ErrOutOfBounds
	}

	running := 0
	var before *piece
	for cur := t.head; cur != nil; cur = cur.next {
		if offset <= running+cur.length {
			return before, cur, offset - running, nil
		}
		running += cur.length
		before = cur
	}
	return nil, nil, 0, ErrOutOfBounds
}

// locatePiece walks the chain looking for the piece containing the
// byte at offset (0 <= offset < Len()), skipping zero-length pieces.
// Unlike resolveBoundary, the returned local offset is always strictly
// less than the piece's length — there is always an actual byte there.
func (t *Table) locatePiece(offset int) (at *piece, local int, err error) {
	if offset < 0 {
		return nil, 0, ErrOutOfBounds
	}
	running := 0
	for cur := t.head; cur != nil; cur = cur.next {
		if cur.length == 0 {
			continue
		}
		if offset < running+cur.length {
			return cur, offset - running, nil
		}
		running += cur.length
	}
	return nil, 0, ErrOutOfBounds
}
