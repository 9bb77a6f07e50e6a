package piece

import (
	"bytes"
	"testing"
)

func mustToBytes(t *testing.T, tb *Table) []byte {
	t.Helper()
	b, err := tb.ToBytes()
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	return b
}

func TestInsertAtStartMiddleEnd(t *testing.T) {
	cases := []struct {
		name string
		pos  int
		text string
		want string
	}{
		{"start", 0, "XX", "XXhello"},
		{"middle", 2, "XX", "heXXllo"},
		{"end", 5, "XX", "helloXX"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tb := FromBytes([]byte("hello"))
			if err := tb.Insert(c.pos, []byte(c.text)); err != nil {
				t.Fatalf("Insert: %v", err)
			}
			if got := string(mustToBytes(t, tb)); got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestInsertIntoEmptyTable(t *testing.T) {
	tb := New()
	if err := tb.Insert(0, []byte("abc")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := string(mustToBytes(t, tb)); got != "abc" {
		t.Errorf("got %q, want abc", got)
	}
}

func TestInsertEmptyTextRejected(t *testing.T) {
	tb := FromBytes([]byte("hello"))
	if err := tb.Insert(0, nil); err != ErrEmptyInput {
		t.Fatalf("got %v, want ErrEmptyInput", err)
	}
}

func TestInsertOutOfBounds(t *testing.T) {
	tb := FromBytes([]byte("hello"))
	if err := tb.Insert(6, []byte("x")); err != ErrOutOfBounds {
		t.Fatalf("got %v, want ErrOutOfBounds", err)
	}
	if err := tb.Insert(-1, []byte("x")); err != ErrOutOfBounds {
		t.Fatalf("got %v, want ErrOutOfBounds", err)
	}
}

func TestRemoveWholePrefixSuffixInterior(t *testing.T) {
	cases := []struct {
		name   string
		pos, n int
		want   string
	}{
		{"prefix", 0, 2, "llo"},
		{"suffix", 3, 2, "hel"},
		{"interior", 1, 3, "ho"},
		{"whole", 0, 5, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tb := FromBytes([]byte("hello"))
			removed, err := tb.Remove(c.pos, c.n)
			if err != nil {
				t.Fatalf("Remove: %v", err)
			}
			if len(removed) != c.n {
				t.Errorf("removed len = %d, want %d", len(removed), c.n)
			}
			if got := string(mustToBytes(t, tb)); got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestRemoveAcrossPieceBoundary(t *testing.T) {
	tb := FromBytes([]byte("hello"))
	if err := tb.Insert(5, []byte(" world")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	// Now two pieces: "hello" (original) + " world" (add).
	removed, err := tb.Remove(3, 5) // "lo wo"
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if string(removed) != "lo wo" {
		t.Errorf("removed = %q, want %q", removed, "lo wo")
	}
	if got := string(mustToBytes(t, tb)); got != "helrld" {
		t.Errorf("got %q, want helrld", got)
	}
}

func TestRemoveOutOfBounds(t *testing.T) {
	tb := FromBytes([]byte("hello"))
	if _, err := tb.Remove(4, 5); err != ErrOutOfBounds {
		t.Fatalf("got %v, want ErrOutOfBounds", err)
	}
	if _, err := tb.Remove(0, 0); err != ErrOutOfBounds {
		t.Fatalf("got %v, want ErrOutOfBounds for zero length", err)
	}
}

func TestReplaceRoundTrip(t *testing.T) {
	tb := FromBytes([]byte("hello world"))
	removed, err := tb.Replace(6, 5, []byte("there"))
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if string(removed) != "world" {
		t.Errorf("removed = %q, want world", removed)
	}
	if got := string(mustToBytes(t, tb)); got != "hello there" {
		t.Errorf("got %q, want %q", got, "hello there")
	}
}

func TestReplaceZeroLengthIsPureInsert(t *testing.T) {
	tb := FromBytes([]byte("ab"))
	removed, err := tb.Replace(1, 0, []byte("X"))
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if len(removed) != 0 {
		t.Errorf("removed = %q, want empty", removed)
	}
	if got := string(mustToBytes(t, tb)); got != "aXb" {
		t.Errorf("got %q, want aXb", got)
	}
}

func TestManySmallEditsAgainstReferenceString(t *testing.T) {
	ref := []byte("the quick brown fox")
	tb := FromBytes(append([]byte(nil), ref...))

	replace := func(pos, n int, text string) {
		tb2, err := tb.Replace(pos, n, []byte(text))
		if err != nil {
			t.Fatalf("Replace(%d,%d,%q): %v", pos, n, text, err)
		}
		_ = tb2
		ref = append(append(append([]byte(nil), ref[:pos]...), text...), ref[pos+n:]...)
		if got := mustToBytes(t, tb); !bytes.Equal(got, ref) {
			t.Fatalf("after Replace(%d,%d,%q): got %q, want %q", pos, n, text, got, ref)
		}
	}

	// "the quick brown fox" -> "the slow brown fox"
	replace(4, 5, "slow")
	// -> "Once: the slow brown fox"
	replace(0, 0, "Once: ")
	// -> "Once: the slow brown fox!"
	replace(len(ref), 0, "!")
	// -> "Once: the slow fox!" (removes " brown")
	replace(14, 6, "")
}
