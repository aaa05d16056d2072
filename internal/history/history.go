// Package history keeps a bounded, linear undo/redo log of editor snapshots.
//
// Every snapshot is a full copy of the document text. The stack tracks the
// active snapshot with a cursor; undo and redo only move the cursor, while a
// fresh push drops everything after it. Once the log grows past its capacity
// the oldest snapshot is evicted and the cursor shifts with it, so it keeps
// pointing at the same logical snapshot.
//
// A Stack is not safe for concurrent use. The editor's update loop is the
// only writer.
package history

// DefaultCapacity is the number of snapshots retained when no explicit
// capacity is configured.
const DefaultCapacity = 50

// Stack is the undo/redo log for a single editing session.
type Stack struct {
	entries  []string
	cursor   int
	capacity int
}

// New returns an empty stack. A non-positive capacity selects DefaultCapacity.
func New(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{
		entries:  make([]string, 0, min(capacity, DefaultCapacity)),
		cursor:   -1,
		capacity: capacity,
	}
}

// Push records snapshot as the newest state.
//
// Pushing the snapshot that is already current does nothing. When the cursor
// is behind the newest entry, the redo tail is discarded first.
func (s *Stack) Push(snapshot string) {
	if s.cursor >= 0 && s.entries[s.cursor] == snapshot {
		return
	}
	if s.cursor < len(s.entries)-1 {
		// Any forward mutation invalidates the redo chain.
		clear(s.entries[s.cursor+1:])
		s.entries = s.entries[:s.cursor+1]
	}
	s.entries = append(s.entries, snapshot)
	s.cursor++

	if len(s.entries) > s.capacity {
		excess := len(s.entries) - s.capacity
		s.entries = append(s.entries[:0], s.entries[excess:]...)
		s.cursor -= excess
	}
}

// Undo steps back one snapshot and returns it. ok is false when there is
// nothing earlier; the stack is left untouched in that case.
func (s *Stack) Undo() (snapshot string, ok bool) {
	if !s.CanUndo() {
		return "", false
	}
	s.cursor--
	return s.entries[s.cursor], true
}

// Redo steps forward one snapshot and returns it. ok is false when the
// cursor already sits on the newest snapshot.
func (s *Stack) Redo() (snapshot string, ok bool) {
	if !s.CanRedo() {
		return "", false
	}
	s.cursor++
	return s.entries[s.cursor], true
}

// CanUndo reports whether an earlier snapshot exists.
func (s *Stack) CanUndo() bool {
	return s.cursor > 0
}

// CanRedo reports whether a later snapshot exists.
func (s *Stack) CanRedo() bool {
	return s.cursor < len(s.entries)-1
}

// Clear drops every snapshot.
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
	s.cursor = -1
}

// Current returns the active snapshot, if any.
func (s *Stack) Current() (string, bool) {
	if s.cursor < 0 {
		return "", false
	}
	return s.entries[s.cursor], true
}

// Len returns the number of retained snapshots.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Cursor returns the index of the active snapshot, or -1 when empty.
func (s *Stack) Cursor() int {
	return s.cursor
}

// Capacity returns the maximum number of retained snapshots.
func (s *Stack) Capacity() int {
	return s.capacity
}
