package app

import "fmt"

// recordEditorChange pushes the textarea state into the session after the
// widget changed the text. Every change becomes one undo step.
func (m *Model) recordEditorChange() {
	m.session.Record(m.editor.Value(), m.currentEditorCursorOffset())
	m.markDirty()
}

// syncSessionCursor moves the session cursor to the textarea cursor. The
// text is already recorded, so this never adds a history entry.
func (m *Model) syncSessionCursor() {
	m.session.Record(m.editor.Value(), m.currentEditorCursorOffset())
}

// syncEditorFromSession pushes the session text and cursor into the
// textarea.
func (m *Model) syncEditorFromSession() {
	m.setEditorValueAndCursorOffset(m.session.Text(), m.session.Cursor())
}

func (m *Model) markDirty() {
	m.dirty = true
}

func (m *Model) undoEditorChange() {
	if !m.session.Undo() {
		m.status = "Nothing to undo"
		return
	}
	m.syncEditorFromSession()
	m.clearEditorSelection()
	m.markDirty()
	m.status = "Undid edit"
}

func (m *Model) redoEditorChange() {
	if !m.session.Redo() {
		m.status = "Nothing to redo"
		return
	}
	m.syncEditorFromSession()
	m.clearEditorSelection()
	m.markDirty()
	m.status = "Redid edit"
}

// historySummary describes undo/redo availability for the footer.
func (m *Model) historySummary() string {
	undo, redo := "-", "-"
	if m.session.CanUndo() {
		undo = "undo"
	}
	if m.session.CanRedo() {
		redo = "redo"
	}
	return fmt.Sprintf("%s/%s (%d)", undo, redo, m.session.HistoryLen())
}

// resetEditor empties the buffer, drops the history, and removes the saved
// draft.
func (m *Model) resetEditor() {
	m.session.Reset()
	m.syncEditorFromSession()
	m.clearEditorSelection()
	m.sourcePath = ""
	m.dirty = false
	if err := m.drafts.Clear(); err != nil {
		m.setStatusError("Reset editor, but clearing the draft failed", err)
		return
	}
	m.status = "Editor reset"
}
