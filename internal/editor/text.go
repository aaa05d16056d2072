package editor

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Range is a half-open rune range [Start, End) within the buffer.
type Range struct {
	Start int
	End   int
}

// Normalize returns the range clamped to [0, n] with Start <= End.
func (r Range) Normalize(n int) Range {
	start := clamp(r.Start, 0, n)
	end := clamp(r.End, 0, n)
	if start > end {
		start, end = end, start
	}
	return Range{Start: start, End: end}
}

// Empty reports whether the range selects nothing.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// CursorOffset converts a (row, column) position into a rune offset from the
// start of value. Rows and columns outside the text are clamped.
func CursorOffset(value string, row, col int) int {
	lines := SplitLines(value)
	row = clamp(row, 0, max(0, len(lines)-1))
	col = clamp(col, 0, len(lines[row]))

	offset := 0
	for i := 0; i < row; i++ {
		offset += len(lines[i]) + 1
	}
	return clamp(offset+col, 0, utf8.RuneCountInString(value))
}

// SplitLines splits value into logical lines of runes. A trailing newline
// produces an empty final line.
func SplitLines(value string) [][]rune {
	lines := make([][]rune, 1)
	for _, r := range value {
		if r == '\n' {
			lines = append(lines, nil)
			continue
		}
		last := len(lines) - 1
		lines[last] = append(lines[last], r)
	}
	return lines
}

// WordBounds finds the word touching cursor: the cursor may sit on a word
// rune or directly after one. ok is false when no word is adjacent.
func WordBounds(value string, cursor int) (start, end int, ok bool) {
	runes := []rune(value)
	if len(runes) == 0 {
		return 0, 0, false
	}

	cursor = clamp(cursor, 0, len(runes))
	idx := cursor
	if idx < len(runes) && isWordRune(runes[idx]) {
		// on a word rune
	} else if idx > 0 && isWordRune(runes[idx-1]) {
		idx--
	} else {
		return 0, 0, false
	}

	start = idx
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	end = idx + 1
	for end < len(runes) && isWordRune(runes[end]) {
		end++
	}
	return start, end, start < end
}

// LineBounds returns the rune range of the line containing offset, without
// the surrounding newlines.
func LineBounds(runes []rune, offset int) (start, end int) {
	offset = clamp(offset, 0, len(runes))

	start = offset
	for start > 0 && runes[start-1] != '\n' {
		start--
	}
	end = offset
	for end < len(runes) && runes[end] != '\n' {
		end++
	}
	return start, end
}

// headingPrefixLen returns the rune length of a leading "#... " marker (one
// to six hashes plus a space), or 0 when the line has none.
func headingPrefixLen(line []rune) int {
	if len(line) == 0 {
		return 0
	}
	i := 0
	for i < len(line) && i < 6 && line[i] == '#' {
		i++
	}
	if i == 0 || i >= len(line) || line[i] != ' ' {
		return 0
	}
	return i + 1
}

// toggleWrap removes open/close when they directly surround r, otherwise
// adds them. It returns the new text, the new cursor offset, and whether the
// markers were removed.
func toggleWrap(value string, r Range, open, close string) (string, int, bool) {
	runes := []rune(value)
	r = r.Normalize(len(runes))
	openRunes := []rune(open)
	closeRunes := []rune(close)

	openStart := r.Start - len(openRunes)
	closeEnd := r.End + len(closeRunes)
	if openStart >= 0 &&
		closeEnd <= len(runes) &&
		runesEqual(runes[openStart:r.Start], openRunes) &&
		runesEqual(runes[r.End:closeEnd], closeRunes) {
		updated := make([]rune, 0, len(runes)-len(openRunes)-len(closeRunes))
		updated = append(updated, runes[:openStart]...)
		updated = append(updated, runes[r.Start:r.End]...)
		updated = append(updated, runes[closeEnd:]...)
		return string(updated), r.End - len(openRunes), true
	}

	text, cursor := wrap(runes, r, open, close)
	return text, cursor, false
}

// wrap inserts open and close around r and places the cursor after close.
func wrap(runes []rune, r Range, open, close string) (string, int) {
	r = r.Normalize(len(runes))
	openRunes := []rune(open)
	closeRunes := []rune(close)

	updated := make([]rune, 0, len(runes)+len(openRunes)+len(closeRunes))
	updated = append(updated, runes[:r.Start]...)
	updated = append(updated, openRunes...)
	updated = append(updated, runes[r.Start:r.End]...)
	updated = append(updated, closeRunes...)
	updated = append(updated, runes[r.End:]...)
	return string(updated), r.End + len(openRunes) + len(closeRunes)
}

// replace swaps r for text and places the cursor after the inserted text.
func replace(value string, r Range, text string) (string, int) {
	runes := []rune(value)
	r = r.Normalize(len(runes))
	var b strings.Builder
	b.WriteString(string(runes[:r.Start]))
	b.WriteString(text)
	b.WriteString(string(runes[r.End:]))
	return b.String(), r.Start + utf8.RuneCountInString(text)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
