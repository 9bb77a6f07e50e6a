package piece

// CharAt returns the byte at logical offset pos.
func (t *Table) CharAt(pos int) (byte, error) {
	total := t.Len()
	if pos < 0 || pos >= total {
		return 0, ErrOutOfBounds
	}
	at, local, err := t.locatePiece(pos)
	if err != nil {
		return 0, err
	}
	return t.bufferBytes(at.buf)[at.start+local], nil
}

// Slice returns a freshly allocated copy of the n bytes starting at
// pos. Slice(pos, 0) returns an empty, non-nil slice.
func (t *Table) Slice(pos, n int) ([]byte, error) {
	total := t.Len()
	if pos < 0 || n < 0 || pos+n > total {
		return nil, ErrOutOfBounds
	}
	if n == 0 {
		return []byte{}, nil
	}

	out, err := safeAlloc(n)
	if err != nil {
		return nil, err
	}

	at, local, err := t.locatePiece(pos)
	if err != nil {
		return nil, err
	}

	remaining := n
	destOff := 0
	cur := at
	curLocal := local
	for remaining > 0 {
		for cur != nil && cur.length == 0 {
			cur = cur.next
		}
		if cur == nil {
			return nil, ErrOutOfBounds
		}
		avail := cur.length - curLocal
		take := avail
		if take > remaining {
			take = remaining
		}
		src := t.bufferBytes(cur.buf)
		copy(out[destOff:destOff+take], src[cur.start+curLocal:cur.start+curLocal+take])
		destOff += take
		remaining -= take
		cur = cur.next
		curLocal = 0
	}
	return out, nil
}

// ToBytes materializes the entire logical document.
func (t *Table) ToBytes() ([]byte, error) {
	return t.Slice(0, t.Len())
}

// Line returns the text of the k-th line (1-indexed), excluding its
// terminating newline.
func (t *Table) Line(k int) ([]byte, error) {
	if k < 1 {
		return nil, ErrOutOfBounds
	}

	total := t.Len()
	if total == 0 {
		if k == 1 {
			return []byte{}, nil
		}
		return nil, ErrOutOfBounds
	}

	startOff, endOff := -1, -1
	newlineCount := 0
	globalPos := 0
	found := false

outer:
	for cur := t.head; cur != nil; cur = cur.next {
		src := t.bufferBytes(cur.buf)
		for i := 0; i < cur.length; i++ {
			if newlineCount == k-1 && startOff == -1 {
				startOff = globalPos
			}
			if src[cur.start+i] == '\n' {
				newlineCount++
				if newlineCount == k {
					endOff = globalPos
					found = true
					break outer
				}
			}
			globalPos++
		}
	}

	if !found {
		if startOff == -1 {
			// The walk never reached line k's first byte. The one
			// legitimate case is the phantom empty final line after a
			// trailing newline: the document ends exactly on the
			// (k-1)-th '\n', so line k exists but is empty.
			if newlineCount == k-1 {
				return []byte{}, nil
			}
			return nil, ErrOutOfBounds
		}
		endOff = total
	}

	return t.Slice(startOff, endOff-startOff)
}

// safeAlloc allocates an n-byte slice, converting a runtime allocation
// panic (len out of range for the current memory budget) into
// ErrAllocationFailure rather than letting it cross the package
// boundary. Called before any chain mutation so a failure here never
// leaves a half-applied edit.
func safeAlloc(n int) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, ErrAllocationFailure
		}
	}()
	return make([]byte, n), nil
}
