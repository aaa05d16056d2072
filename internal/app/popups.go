package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/md-cards/internal/editor"
)

func (m *Model) openSnippetPopup() {
	m.openOverlay(overlaySnippets)
	m.snippetCursor = clamp(m.snippetCursor, 0, len(editor.Snippets)-1)
	m.status = "Snippets: Enter to insert, Esc to close"
}

func (m *Model) handleSnippetPopupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, selected, closed, handled := handlePopupListNav(msg, m.snippetCursor, len(editor.Snippets))
	if !handled {
		return m, nil
	}
	m.snippetCursor = next
	switch {
	case closed:
		m.closeOverlay()
		m.status = "Snippet picker closed"
		return m, nil
	case selected:
		m.closeOverlay()
		m.insertSnippet(editor.Snippets[m.snippetCursor].Kind)
		return m, m.requestRender()
	}
	return m, nil
}

// openFilePrompt asks for a Markdown file path to load into the editor.
func (m *Model) openFilePrompt() {
	m.openOverlay(overlayOpenFile)
	m.input.SetValue("")
	m.input.Focus()
	m.status = "Open: type a path to a .md file"
}

func (m *Model) handleOpenFileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeOverlay()
		m.status = "Open cancelled"
		return m, nil
	case "enter":
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			m.status = "Enter a file path"
			return m, nil
		}
		m.closeOverlay()
		if err := m.openFile(path); err != nil {
			m.setStatusError("Open failed: "+err.Error(), err, "path", path)
			return m, nil
		}
		m.clearEditorSelection()
		return m, m.requestRender()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
