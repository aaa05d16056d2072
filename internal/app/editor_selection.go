package app

import (
	"fmt"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/md-cards/internal/editor"
)

// noEditorSelectionAnchor is the sentinel value for editorSelectionAnchor,
// indicating that no selection anchor is currently set.
const noEditorSelectionAnchor = -1

// clearEditorSelection resets the editor selection state entirely.
func (m *Model) clearEditorSelection() {
	m.editorSelectionAnchor = noEditorSelectionAnchor
	m.editorSelectionActive = false
	m.editorMouseSelecting = false
	applyEditorSelectionVisual(&m.editor, false)
}

// hasEditorSelectionAnchor reports whether a selection anchor is currently
// active. When true, cursor movement extends the selection.
func (m *Model) hasEditorSelectionAnchor() bool {
	return m.editorSelectionActive
}

// currentEditorCursorOffset converts the textarea's (row, column) cursor into
// a rune offset from the start of the buffer.
func (m *Model) currentEditorCursorOffset() int {
	return editor.CursorOffset(m.editor.Value(), m.editor.Line(), m.editor.LineInfo().CharOffset)
}

// editorSelectionRange returns the normalized [start, end) rune range
// between the anchor and the cursor. ok is false without an anchor or when
// the range is empty.
func (m *Model) editorSelectionRange() (start, end int, ok bool) {
	if !m.hasEditorSelectionAnchor() {
		return 0, 0, false
	}
	r := editor.Range{Start: m.editorSelectionAnchor, End: m.currentEditorCursorOffset()}.
		Normalize(utf8.RuneCountInString(m.editor.Value()))
	if r.Empty() {
		return 0, 0, false
	}
	return r.Start, r.End, true
}

// currentSelection returns the selection as an editor.Range; an empty range
// means "no selection".
func (m *Model) currentSelection() editor.Range {
	start, end, ok := m.editorSelectionRange()
	if !ok {
		return editor.Range{}
	}
	return editor.Range{Start: start, End: end}
}

// selectedText returns the selected runes, or "" without a selection.
func (m *Model) selectedText() string {
	start, end, ok := m.editorSelectionRange()
	if !ok {
		return ""
	}
	runes := []rune(m.editor.Value())
	return string(runes[start:end])
}

// toggleEditorSelectionAnchor sets or clears the selection anchor at the
// current cursor position.
func (m *Model) toggleEditorSelectionAnchor() {
	if m.hasEditorSelectionAnchor() {
		m.clearEditorSelection()
		m.status = "Selection cleared"
		return
	}
	m.editorSelectionAnchor = m.currentEditorCursorOffset()
	m.editorSelectionActive = true
	applyEditorSelectionVisual(&m.editor, true)
	m.updateEditorSelectionStatus()
}

// handleEditorShiftSelectionMove intercepts Shift+Arrow and Shift+Home/End
// to extend the selection while moving the cursor. The first shifted move
// drops an anchor at the cursor. It reports whether the key was consumed.
func (m *Model) handleEditorShiftSelectionMove(keyMsg tea.KeyMsg) bool {
	msg, ok := selectionMovementKeyMsg(keyMsg)
	if !ok {
		return false
	}
	if !m.hasEditorSelectionAnchor() {
		m.editorSelectionAnchor = m.currentEditorCursorOffset()
		m.editorSelectionActive = true
		applyEditorSelectionVisual(&m.editor, true)
	}
	m.editor, _ = m.editor.Update(msg)
	m.updateEditorSelectionStatus()
	return true
}

// selectionMovementKeyMsg maps a shifted movement key to its un-shifted
// equivalent. Both the typed constants and string forms are checked because
// terminals report shifted keys differently.
func selectionMovementKeyMsg(keyMsg tea.KeyMsg) (tea.KeyMsg, bool) {
	switch keyMsg.Type {
	case tea.KeyShiftLeft:
		return tea.KeyMsg{Type: tea.KeyLeft}, true
	case tea.KeyShiftRight:
		return tea.KeyMsg{Type: tea.KeyRight}, true
	case tea.KeyShiftUp:
		return tea.KeyMsg{Type: tea.KeyUp}, true
	case tea.KeyShiftDown:
		return tea.KeyMsg{Type: tea.KeyDown}, true
	case tea.KeyShiftHome:
		return tea.KeyMsg{Type: tea.KeyHome}, true
	case tea.KeyShiftEnd:
		return tea.KeyMsg{Type: tea.KeyEnd}, true
	}

	switch keyMsg.String() {
	case "shift+left":
		return tea.KeyMsg{Type: tea.KeyLeft}, true
	case "shift+right":
		return tea.KeyMsg{Type: tea.KeyRight}, true
	case "shift+up":
		return tea.KeyMsg{Type: tea.KeyUp}, true
	case "shift+down":
		return tea.KeyMsg{Type: tea.KeyDown}, true
	case "shift+home":
		return tea.KeyMsg{Type: tea.KeyHome}, true
	case "shift+end":
		return tea.KeyMsg{Type: tea.KeyEnd}, true
	default:
		return tea.KeyMsg{}, false
	}
}

// updateEditorSelectionStatus shows the selection size, or a hint while only
// the anchor is set.
func (m *Model) updateEditorSelectionStatus() {
	if start, end, ok := m.editorSelectionRange(); ok {
		m.status = fmt.Sprintf("Selected %d chars (%s to clear)", end-start, m.primaryActionKey(actionSelectAnchor))
		return
	}
	if m.hasEditorSelectionAnchor() {
		m.status = fmt.Sprintf("Selection anchor set (move cursor to select, %s to clear)", m.primaryActionKey(actionSelectAnchor))
	}
}

// applyEditorFormat toggles open/close markers around the selection, the
// word under the cursor, or inserts empty markers. label names the format in
// the status line.
func (m *Model) applyEditorFormat(open, close, label string) {
	sel := m.currentSelection()
	m.syncSessionCursor()
	result := m.session.ToggleFormat(sel, open, close)
	m.syncEditorFromSession()
	m.clearEditorSelection()
	m.markDirty()

	target := "word"
	if !sel.Empty() {
		target = "selection"
	}
	switch result {
	case editor.FormatRemoved:
		m.status = "Removed " + label + " formatting from " + target
	case editor.FormatApplied:
		m.status = "Applied " + label + " formatting to " + target
	default:
		m.status = "Inserted " + label + " markers"
	}
}

// insertMarkdownLinkTemplate wraps the selection or word as link text, or
// inserts "[text](url)". The cursor lands on the url placeholder.
func (m *Model) insertMarkdownLinkTemplate() {
	sel := m.currentSelection()
	m.syncSessionCursor()
	m.session.InsertLink(sel)
	m.syncEditorFromSession()
	m.clearEditorSelection()
	m.markDirty()
	m.status = "Inserted markdown link"
}

// toggleHeading toggles a level heading on the cursor line.
func (m *Model) toggleHeading(level int) {
	m.syncSessionCursor()
	removed, ok := m.session.ToggleHeading(level)
	if !ok {
		return
	}
	m.syncEditorFromSession()
	m.clearEditorSelection()
	m.markDirty()
	if removed {
		m.status = fmt.Sprintf("Removed H%d heading", level)
		return
	}
	m.status = fmt.Sprintf("Applied H%d heading", level)
}

// insertSnippet inserts a template at the cursor, replacing the selection
// when one is active.
func (m *Model) insertSnippet(kind editor.SnippetKind) {
	snippet, ok := editor.LookupSnippet(kind)
	if !ok {
		return
	}
	sel := m.currentSelection()
	m.syncSessionCursor()
	if sel.Empty() {
		m.session.InsertSnippet(kind)
	} else {
		m.session.Replace(sel, snippet.Text)
	}
	m.syncEditorFromSession()
	m.clearEditorSelection()
	m.markDirty()
	m.status = "Inserted " + snippet.Label
}

// setEditorValueAndCursorOffset replaces the textarea content and positions
// the cursor at the given rune offset.
//
// The textarea has no "set cursor offset" API, so the value is set (cursor
// at the end) and the cursor is walked back with left-arrow events. This
// only runs on explicit actions, not on every keystroke.
func (m *Model) setEditorValueAndCursorOffset(value string, cursorOffset int) {
	total := utf8.RuneCountInString(value)
	cursorOffset = clamp(cursorOffset, 0, total)

	m.editor.SetValue(value)
	m.editor.Focus()

	for i := 0; i < total-cursorOffset; i++ {
		m.editor, _ = m.editor.Update(tea.KeyMsg{Type: tea.KeyLeft})
	}
}
