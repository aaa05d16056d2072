// Package editor holds the Markdown buffer behind the TUI: the text, a rune
// cursor, the undo/redo history, and the formatting operations that rewrite
// the buffer.
//
// A Session knows nothing about the textarea widget. The UI reads Text and
// Cursor after each operation and pushes them back into the widget.
package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/treykane/md-cards/internal/history"
)

// FormatResult describes what ToggleFormat did to the buffer.
type FormatResult int

const (
	// FormatInserted means empty markers were inserted at the cursor.
	FormatInserted FormatResult = iota
	// FormatApplied means markers were added around the target.
	FormatApplied
	// FormatRemoved means existing markers around the target were removed.
	FormatRemoved
)

const linkPlaceholder = "url)"

// Session is the editable document. It is owned by the update loop and is
// not safe for concurrent use.
type Session struct {
	text    string
	cursor  int
	history *history.Stack
}

// NewSession returns an empty session whose history keeps at most capacity
// snapshots. The empty buffer is recorded as the first snapshot.
func NewSession(capacity int) *Session {
	s := &Session{history: history.New(capacity)}
	s.history.Push("")
	return s
}

// Text returns the current buffer.
func (s *Session) Text() string { return s.text }

// Cursor returns the cursor as a rune offset into Text.
func (s *Session) Cursor() int { return s.cursor }

// CanUndo reports whether Undo would change the buffer.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether Redo would change the buffer.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// HistoryLen returns the number of retained snapshots.
func (s *Session) HistoryLen() int { return s.history.Len() }

// Record stores text and cursor as the current state and pushes a snapshot.
// Recording unchanged text only moves the cursor.
func (s *Session) Record(text string, cursor int) {
	s.text = text
	s.cursor = clamp(cursor, 0, utf8.RuneCountInString(text))
	s.history.Push(text)
}

// Load replaces the buffer with text, as when opening a file or restoring a
// draft. The cursor moves to the end.
func (s *Session) Load(text string) {
	s.Record(text, utf8.RuneCountInString(text))
}

// InsertAtCursor inserts text at the cursor and moves the cursor after it.
func (s *Session) InsertAtCursor(text string) {
	s.Replace(Range{Start: s.cursor, End: s.cursor}, text)
}

// Replace swaps the runes in r for text. An empty range inserts at r.Start.
func (s *Session) Replace(r Range, text string) {
	updated, cursor := replace(s.text, r, text)
	s.Record(updated, cursor)
}

// InsertSnippet inserts the template for kind at the cursor. It reports
// false for unknown kinds and leaves the buffer untouched.
func (s *Session) InsertSnippet(kind SnippetKind) bool {
	snippet, ok := LookupSnippet(kind)
	if !ok {
		return false
	}
	s.InsertAtCursor(snippet.Text)
	return true
}

// ToggleFormat wraps or unwraps sel with open/close. With an empty sel it
// targets the word at the cursor, and with no word there it inserts empty
// markers and leaves the cursor between them.
func (s *Session) ToggleFormat(sel Range, open, close string) FormatResult {
	target := sel.Normalize(utf8.RuneCountInString(s.text))
	if target.Empty() {
		start, end, ok := WordBounds(s.text, s.cursor)
		if !ok {
			updated, cursor := replace(s.text, Range{Start: s.cursor, End: s.cursor}, open+close)
			s.Record(updated, cursor-utf8.RuneCountInString(close))
			return FormatInserted
		}
		target = Range{Start: start, End: end}
	}

	updated, cursor, removed := toggleWrap(s.text, target, open, close)
	s.Record(updated, cursor)
	if removed {
		return FormatRemoved
	}
	return FormatApplied
}

// InsertLink turns sel, or the word at the cursor, into the text of a
// Markdown link. Without either it inserts a "[text](url)" template. The
// cursor lands on the url placeholder.
func (s *Session) InsertLink(sel Range) {
	target := sel.Normalize(utf8.RuneCountInString(s.text))
	if target.Empty() {
		if start, end, ok := WordBounds(s.text, s.cursor); ok {
			target = Range{Start: start, End: end}
		}
	}

	var updated string
	var cursor int
	if target.Empty() {
		updated, cursor = replace(s.text, target, "[text](url)")
	} else {
		updated, cursor = wrap([]rune(s.text), target, "[", "](url)")
	}
	s.Record(updated, cursor-utf8.RuneCountInString(linkPlaceholder))
}

// ToggleHeading toggles a level-N heading marker on the cursor line,
// replacing a heading of another level and keeping indentation. Levels
// outside 1-6 are ignored. removed reports whether the marker was taken off.
func (s *Session) ToggleHeading(level int) (removed bool, ok bool) {
	if level < 1 || level > 6 {
		return false, false
	}
	runes := []rune(s.text)
	cursor := s.cursor
	start, end := LineBounds(runes, cursor)
	line := runes[start:end]

	indentLen := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		indentLen++
	}
	rest := line[indentLen:]
	existingLen := headingPrefixLen(rest)
	marker := strings.Repeat("#", level) + " "

	updatedLine := append([]rune(nil), line[:indentLen]...)
	if existingLen > 0 && string(rest[:existingLen]) == marker {
		updatedLine = append(updatedLine, rest[existingLen:]...)
		removed = true
	} else {
		updatedLine = append(updatedLine, []rune(marker)...)
		updatedLine = append(updatedLine, rest[existingLen:]...)
	}

	updated := make([]rune, 0, len(runes)-len(line)+len(updatedLine))
	updated = append(updated, runes[:start]...)
	updated = append(updated, updatedLine...)
	updated = append(updated, runes[end:]...)

	if cursor > start {
		cursor += len(updatedLine) - len(line)
	}
	s.Record(string(updated), max(cursor, start))
	return removed, true
}

// Undo restores the previous snapshot and moves the cursor to the end. It
// reports false when there is nothing to undo.
func (s *Session) Undo() bool {
	text, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.text = text
	s.cursor = utf8.RuneCountInString(text)
	return true
}

// Redo re-applies the next snapshot and moves the cursor to the end.
func (s *Session) Redo() bool {
	text, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.text = text
	s.cursor = utf8.RuneCountInString(text)
	return true
}

// Reset empties the buffer and starts a fresh history.
func (s *Session) Reset() {
	s.history.Clear()
	s.text = ""
	s.cursor = 0
	s.history.Push("")
}

// Stats summarizes a buffer for the footer.
type Stats struct {
	Words int
	Chars int
	Lines int
}

// String formats the stats as "W:x C:y L:z".
func (st Stats) String() string {
	return fmt.Sprintf("W:%d C:%d L:%d", st.Words, st.Chars, st.Lines)
}

// Stats counts the current buffer.
func (s *Session) Stats() Stats {
	return ComputeStats(s.text)
}

// ComputeStats counts words, characters (runes), and lines in content. A
// trailing newline does not start a new line.
func ComputeStats(content string) Stats {
	if content == "" {
		return Stats{}
	}
	lines := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		lines++
	}
	return Stats{
		Words: len(strings.Fields(content)),
		Chars: utf8.RuneCountInString(content),
		Lines: lines,
	}
}
