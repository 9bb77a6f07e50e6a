package piece

// Insert splices text into the document at pos, appending it to the
// ADD buffer and linking a new piece over the appended range.
func (t *Table) Insert(pos int, text []byte) error {
	if len(text) == 0 {
		return ErrEmptyInput
	}
	total := t.Len()
	if pos < 0 || pos > total {
		return ErrOutOfBounds
	}

	prev, at, local, err := t.resolveBoundary(pos)
	if err != nil {
		return err
	}

	start := len(t.add)
	t.add = append(t.add, text...)
	n := &piece{buf: bufferAdd, start: start, length: len(text)}

	switch {
	case at == nil:
		// Empty chain: the new piece is the whole document.
		t.head = n
	case local == 0 && prev == nil:
		// Inserting before the current head.
		n.next = at
		t.head = n
	case local == 0:
		// Inserting between prev and at.
		n.next = at
		prev.next = n
	case local == at.length:
		// Inserting right after at; no split needed.
		n.next = at.next
		at.next = n
	default:
		// Inserting mid-piece: split, then link after the left half.
		t.splitAt(at, local)
		n.next = at.next
		at.next = n
	}
	return nil
}

// Remove deletes the length bytes starting at pos and returns the
// literal bytes that were removed, captured before any mutation.
func (t *Table) Remove(pos, length int) ([]byte, error) {
	if length < 1 {
		return nil, ErrOutOfBounds
	}
	total := t.Len()
	if pos < 0 || pos+length > total {
		return nil, ErrOutOfBounds
	}

	removed, err := t.Slice(pos, length)
	if err != nil {
		return nil, err
	}

	prevSp, sp, so, err := t.resolveBoundary(pos)
	if err != nil {
		return nil, err
	}
	_, ep, eo, err := t.resolveBoundary(pos + length)
	if err != nil {
		return nil, err
	}

	if sp == ep {
		switch {
		case so == 0 && eo == sp.length:
			// The whole piece is removed.
			t.linkPrevTo(prevSp, sp.next)
		case so == 0:
			// Removing a prefix: shift the view forward.
			sp.start += length
			sp.length -= length
		case eo == sp.length:
			// Removing a suffix: just shrink.
			sp.length = so
		default:
			// Removing an interior span: split off the surviving
			// suffix, then shrink the piece to its surviving prefix.
			t.splitAt(sp, eo)
			sp.length = so
		}
		return removed, nil
	}

	// The removed range spans multiple pieces. Drop everything
	// strictly between sp and ep first...
	sp.next = ep

	spSurvives := so > 0
	if spSurvives {
		sp.length = so
	}

	epSurvives := eo < ep.length
	if epSurvives {
		ep.start += eo
		ep.length -= eo
	}

	afterSp := ep
	if !epSurvives {
		afterSp = ep.next
	}
	if spSurvives {
		sp.next = afterSp
	} else {
		t.linkPrevTo(prevSp, afterSp)
	}

	return removed, nil
}

// Replace removes length bytes at pos and inserts text in their place,
// returning the bytes that were removed.
func (t *Table) Replace(pos, length int, text []byte) ([]byte, error) {
	total := t.Len()
	if pos < 0 || length < 0 || pos+length > total {
		return nil, ErrOutOfBounds
	}

	var removed []byte
	if length == 0 {
		removed = []byte{}
	} else {
		var err error
		removed, err = t.Remove(pos, length)
		if err != nil {
			return nil, err
		}
	}

	if len(text) > 0 {
		if err := t.Insert(pos, text); err != nil {
			return removed, err
		}
	}
	return removed, nil
}
