package history

import (
	"fmt"
	"testing"
)

func TestNewStackIsEmpty(t *testing.T) {
	s := New(0)
	if s.Capacity() != DefaultCapacity {
		t.Fatalf("expected default capacity %d, got %d", DefaultCapacity, s.Capacity())
	}
	if s.Len() != 0 || s.Cursor() != -1 {
		t.Fatalf("expected empty stack, got len=%d cursor=%d", s.Len(), s.Cursor())
	}
	if s.CanUndo() || s.CanRedo() {
		t.Fatal("expected empty stack to have nothing to undo or redo")
	}
	if _, ok := s.Current(); ok {
		t.Fatal("expected no current snapshot on empty stack")
	}
	if _, ok := s.Undo(); ok {
		t.Fatal("expected undo on empty stack to be a no-op")
	}
	if _, ok := s.Redo(); ok {
		t.Fatal("expected redo on empty stack to be a no-op")
	}
}

func TestPushDistinctValuesTracksLatest(t *testing.T) {
	s := New(100)
	values := []string{"a", "ab", "abc", "abcd", "abc"}
	for i, v := range values {
		s.Push(v)
		got, ok := s.Current()
		if !ok || got != v {
			t.Fatalf("push %d: expected current %q, got %q (ok=%v)", i, v, got, ok)
		}
		if i > 0 && !s.CanUndo() {
			t.Fatalf("push %d: expected CanUndo after %d pushes", i, i+1)
		}
		if s.CanRedo() {
			t.Fatalf("push %d: expected no redo after push", i)
		}
	}
}

func TestPushDuplicateIsNoop(t *testing.T) {
	s := New(10)
	s.Push("a")
	s.Push("b")
	s.Push("b")

	if s.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", s.Len())
	}
	if s.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", s.Cursor())
	}
}

func TestPushDuplicateAfterUndoKeepsRedo(t *testing.T) {
	s := New(10)
	s.Push("a")
	s.Push("b")
	s.Undo()
	s.Push("a")

	if !s.CanRedo() {
		t.Fatal("expected redo to survive pushing the current snapshot")
	}
	if got, _ := s.Redo(); got != "b" {
		t.Fatalf("expected redo to return %q, got %q", "b", got)
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	s := New(10)
	for _, v := range []string{"one", "two", "three"} {
		s.Push(v)
	}

	before, _ := s.Current()
	if _, ok := s.Undo(); !ok {
		t.Fatal("expected undo to succeed")
	}
	got, ok := s.Redo()
	if !ok {
		t.Fatal("expected redo to succeed")
	}
	if got != before {
		t.Fatalf("expected redo to return %q, got %q", before, got)
	}
}

func TestPushAfterUndoDropsRedoTail(t *testing.T) {
	s := New(10)
	s.Push("a")
	s.Push("b")
	s.Push("c")
	s.Undo()
	s.Undo()
	if !s.CanRedo() {
		t.Fatal("expected redo to be available after undo")
	}

	s.Push("z")
	if s.CanRedo() {
		t.Fatal("expected redo to be cleared after fresh push")
	}
	if s.Len() != 2 {
		t.Fatalf("expected entries [a z], got len %d", s.Len())
	}
	if got, _ := s.Undo(); got != "a" {
		t.Fatalf("expected undo to reach %q, got %q", "a", got)
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	const capacity = 5
	s := New(capacity)
	for i := 0; i <= capacity; i++ {
		s.Push(fmt.Sprintf("v%d", i))
	}

	if s.Len() != capacity {
		t.Fatalf("expected %d entries, got %d", capacity, s.Len())
	}
	if got, _ := s.Current(); got != "v5" {
		t.Fatalf("expected current %q, got %q", "v5", got)
	}

	// Walk back to the oldest retained snapshot; v0 must be gone.
	var oldest string
	for s.CanUndo() {
		oldest, _ = s.Undo()
	}
	if oldest != "v1" {
		t.Fatalf("expected oldest retained snapshot %q, got %q", "v1", oldest)
	}
}

func TestEvictionKeepsCursorOnSameSnapshot(t *testing.T) {
	s := New(3)
	s.Push("a")
	s.Push("b")
	s.Push("c")
	s.Push("d")

	if s.Cursor() != 2 {
		t.Fatalf("expected cursor 2 after eviction, got %d", s.Cursor())
	}
	if got, _ := s.Current(); got != "d" {
		t.Fatalf("expected current %q, got %q", "d", got)
	}
}

func TestClearResetsToEmpty(t *testing.T) {
	s := New(10)
	s.Push("a")
	s.Push("b")
	s.Clear()

	if s.Len() != 0 || s.Cursor() != -1 {
		t.Fatalf("expected empty stack after clear, got len=%d cursor=%d", s.Len(), s.Cursor())
	}
	s.Push("c")
	if got, _ := s.Current(); got != "c" {
		t.Fatalf("expected %q after push on cleared stack, got %q", "c", got)
	}
	if s.CanUndo() {
		t.Fatal("expected single entry stack to have nothing to undo")
	}
}

func TestEditorScenario(t *testing.T) {
	s := New(1000)
	s.Push("a")
	s.Push("b")
	s.Push("c")

	steps := []struct {
		name   string
		action func() (string, bool)
		want   string
		wantOK bool
	}{
		{name: "undo to b", action: s.Undo, want: "b", wantOK: true},
		{name: "undo to a", action: s.Undo, want: "a", wantOK: true},
		{name: "undo at start", action: s.Undo, want: "", wantOK: false},
		{name: "redo to b", action: s.Redo, want: "b", wantOK: true},
	}
	for _, step := range steps {
		got, ok := step.action()
		if got != step.want || ok != step.wantOK {
			t.Fatalf("%s: got (%q, %v), want (%q, %v)", step.name, got, ok, step.want, step.wantOK)
		}
	}
	if current, _ := s.Current(); current != "b" {
		t.Fatalf("expected cursor on %q, got %q", "b", current)
	}

	s.Push("d")
	if s.CanRedo() {
		t.Fatal("expected redo to be unavailable after pushing d")
	}
}
