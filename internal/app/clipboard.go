package app

import (
	"fmt"
	"unicode/utf8"

	"github.com/atotto/clipboard"
)

// Clipboard access goes through these so tests can run without a system
// clipboard.
var (
	clipboardRead  = clipboard.ReadAll
	clipboardWrite = clipboard.WriteAll
)

// copyToClipboard copies the selection, or the whole buffer when nothing is
// selected, to the system clipboard.
func (m *Model) copyToClipboard() {
	content := m.selectedText()
	what := "selection"
	if content == "" {
		content = m.session.Text()
		what = "document"
	}
	if content == "" {
		m.status = "Nothing to copy"
		return
	}
	if err := clipboardWrite(content); err != nil {
		m.setStatusError("Clipboard copy failed", err)
		return
	}
	m.status = fmt.Sprintf("Copied %s (%d chars)", what, utf8.RuneCountInString(content))
}

// pasteFromClipboardIntoEditor inserts clipboard text at the cursor,
// replacing the selection when one is active.
func (m *Model) pasteFromClipboardIntoEditor() {
	value, err := clipboardRead()
	if err != nil {
		m.setStatusError("Clipboard paste failed", err)
		return
	}
	if value == "" {
		m.status = "Clipboard is empty"
		return
	}
	sel := m.currentSelection()
	m.syncSessionCursor()
	if sel.Empty() {
		m.session.InsertAtCursor(value)
	} else {
		m.session.Replace(sel, value)
	}
	m.syncEditorFromSession()
	m.clearEditorSelection()
	m.markDirty()
	m.status = "Pasted from clipboard"
}
