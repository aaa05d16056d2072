package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/md-cards/internal/editor"
)

// handleEditorKey handles a key press while no popup is open. Bound actions
// run first; everything else goes to the textarea, and a resulting text
// change is recorded as one history step.
func (m *Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleEditorShiftSelectionMove(msg) {
		return m, nil
	}

	if action := m.actionForKey(msg.String()); action != "" {
		return m.runEditorAction(action)
	}

	if msg.Type == tea.KeyEsc {
		if m.hasEditorSelectionAnchor() {
			m.clearEditorSelection()
			m.status = "Selection cleared"
		}
		return m, nil
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if before == m.editor.Value() {
		if m.hasEditorSelectionAnchor() {
			m.updateEditorSelectionStatus()
		}
		return m, cmd
	}
	m.clearEditorSelection()
	m.recordEditorChange()
	return m, tea.Batch(cmd, m.requestRender())
}

// runEditorAction dispatches one keybinding action.
func (m *Model) runEditorAction(action string) (tea.Model, tea.Cmd) {
	switch action {
	case actionQuit:
		m.saveDraftIfDirty()
		return m, tea.Quit
	case actionHelp:
		m.openOverlay(overlayHelp)
		return m, nil
	case actionSaveDraft:
		m.saveDraft()
		return m, nil
	case actionUndo:
		m.undoEditorChange()
	case actionRedo:
		m.redoEditorChange()
	case actionBold:
		m.applyEditorFormat("**", "**", "bold")
	case actionItalic:
		m.applyEditorFormat("*", "*", "italic")
	case actionStrike:
		m.applyEditorFormat("~~", "~~", "strikethrough")
	case actionCode:
		m.applyEditorFormat("`", "`", "code")
	case actionHeading1:
		m.toggleHeading(1)
	case actionHeading2:
		m.toggleHeading(2)
	case actionHeading3:
		m.toggleHeading(3)
	case actionLink:
		m.insertMarkdownLinkTemplate()
	case actionTable:
		m.insertSnippet(editor.SnippetTable)
	case actionSelectAnchor:
		m.toggleEditorSelectionAnchor()
		return m, nil
	case actionCopy:
		m.copyToClipboard()
		return m, nil
	case actionPaste:
		m.pasteFromClipboardIntoEditor()
	case actionOpen:
		m.openFilePrompt()
		return m, nil
	case actionExport:
		m.openExportPopup()
		return m, nil
	case actionSnippets:
		m.openSnippetPopup()
		return m, nil
	case actionReset:
		m.openOverlay(overlayConfirmReset)
		m.status = "Reset editor? y to confirm, n to cancel"
		return m, nil
	case actionPreviewScrollPageUp:
		m.preview.ViewUp()
		return m, nil
	case actionPreviewScrollPageDown:
		m.preview.ViewDown()
		return m, nil
	default:
		return m, nil
	}
	return m, m.requestRender()
}

// handleConfirmResetKey answers the reset confirmation prompt.
func (m *Model) handleConfirmResetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "shift+y", "Y", "enter":
		m.closeOverlay()
		m.resetEditor()
		return m, m.requestRender()
	case "n", "N", "esc":
		m.closeOverlay()
		m.status = "Reset cancelled"
	}
	return m, nil
}

// handleHelpKey closes the help overlay; its own toggle key works too.
func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "esc", m.actionForKey(msg.String()) == actionHelp:
		m.closeOverlay()
	case m.actionForKey(msg.String()) == actionQuit:
		m.saveDraftIfDirty()
		return m, tea.Quit
	}
	return m, nil
}
