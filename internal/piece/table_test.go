package piece

import "testing"

func TestFromBytesLen(t *testing.T) {
	tb := FromBytes([]byte("hello"))
	if got := tb.Len(); got != 5 {
		t.Fatalf("Len() = %d, want 5", got)
	}
}

func TestNewIsEmpty(t *testing.T) {
	tb := New()
	if got := tb.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
	if tb.head != nil {
		t.Fatalf("expected nil head for empty table")
	}
}

func TestFromBytesEmpty(t *testing.T) {
	tb := FromBytes(nil)
	if tb.head != nil {
		t.Fatalf("expected nil head for empty initial content")
	}
}
