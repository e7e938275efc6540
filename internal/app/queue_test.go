package app

import "testing"

func TestQueue_Navigation(t *testing.T) {
	q := NewQueue([]string{"a.mp3", "b.mp3", "c.mp3"})

	if p, ok := q.Current(); !ok || p != "a.mp3" {
		t.Fatalf("Current() = %q, %v, want a.mp3", p, ok)
	}
	if _, ok := q.Prev(); ok {
		t.Error("Prev() at start should report false")
	}

	q.Next()
	if p, _ := q.Next(); p != "c.mp3" {
		t.Errorf("Next() = %q, want c.mp3", p)
	}
	if _, ok := q.Next(); ok {
		t.Error("Next() at end should report false")
	}
	if q.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex() = %d, want 2", q.CurrentIndex())
	}

	if p, _ := q.Prev(); p != "b.mp3" {
		t.Errorf("Prev() = %q, want b.mp3", p)
	}
}

func TestQueue_Empty(t *testing.T) {
	q := NewQueue(nil)

	if _, ok := q.Current(); ok {
		t.Error("Current() on empty queue should report false")
	}
	if _, ok := q.Next(); ok {
		t.Error("Next() on empty queue should report false")
	}
	if _, ok := q.Prev(); ok {
		t.Error("Prev() on empty queue should report false")
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
}
