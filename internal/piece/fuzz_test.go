package piece

import (
	"bytes"
	"testing"
)

// FuzzInsert checks that Table.Insert always agrees with inserting
// into a plain byte slice at the same position.
func FuzzInsert(f *testing.F) {
	f.Add("hello world", 5, "XYZ")
	f.Add("", 0, "abc")
	f.Add("a", 1, "")

	f.Fuzz(func(t *testing.T, base string, pos int, text string) {
		ref := []byte(base)
		tb := FromBytes([]byte(base))

		if pos < 0 || pos > len(ref) || len(text) == 0 {
			return
		}

		if err := tb.Insert(pos, []byte(text)); err != nil {
			t.Fatalf("Insert(%d,%q) on %q: %v", pos, text, base, err)
		}
		want := append(append(append([]byte(nil), ref[:pos]...), text...), ref[pos:]...)

		got, err := tb.ToBytes()
		if err != nil {
			t.Fatalf("ToBytes: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("Insert(%d,%q) on %q: got %q, want %q", pos, text, base, got, want)
		}
	})
}

// FuzzRemove checks that Table.Remove always agrees with slicing a
// plain byte slice at the same range.
func FuzzRemove(f *testing.F) {
	f.Add("hello world", 2, 5)
	f.Add("abc", 0, 3)

	f.Fuzz(func(t *testing.T, base string, pos, n int) {
		ref := []byte(base)

		if pos < 0 || n < 1 || pos+n > len(ref) {
			return
		}

		tb := FromBytes([]byte(base))
		removed, err := tb.Remove(pos, n)
		if err != nil {
			t.Fatalf("Remove(%d,%d) on %q: %v", pos, n, base, err)
		}
		wantRemoved := ref[pos : pos+n]
		if !bytes.Equal(removed, wantRemoved) {
			t.Fatalf("Remove(%d,%d) on %q: removed %q, want %q", pos, n, base, removed, wantRemoved)
		}
		want := append(append([]byte(nil), ref[:pos]...), ref[pos+n:]...)
		got, err := tb.ToBytes()
		if err != nil {
			t.Fatalf("ToBytes: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("Remove(%d,%d) on %q: got %q, want %q", pos, n, base, got, want)
		}
	})
}
