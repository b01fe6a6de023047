package source

import "testing"

func TestSpanEmptyAndLen(t *testing.T) {
	s := Span{File: 0, Start: 3, End: 3}
	if !s.Empty() {
		t.Error("zero-length span must be empty")
	}
	s.End = 8
	if s.Empty() {
		t.Error("non-zero span must not be empty")
	}
	if s.Len() != 5 {
		t.Errorf("expected Len 5, got %d", s.Len())
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 1, Start: 2, End: 7}
	c := a.Cover(b)
	if c.Start != 2 || c.End != 10 {
		t.Errorf("expected 2-10, got %d-%d", c.Start, c.End)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Error("cover across files must be a no-op")
	}
}
