package app

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View draws the full UI (editor + preview + status footer).
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	footerHeight := m.footerHeightForWidth(m.width)
	layout := m.calculateLayout()
	row := m.renderEditorPane(layout.EditorWidth, layout.ContentHeight)
	if layout.PreviewWidth > 0 {
		row = lipgloss.JoinHorizontal(lipgloss.Top, row, m.renderPreviewPane(layout.PreviewWidth, layout.ContentHeight))
	}
	if m.overlay != overlayNone {
		row = m.renderActiveOverlay(m.width, layout.ContentHeight)
	}
	row = padBlock(row, m.width, layout.ContentHeight)

	view := row + "\n" + m.renderStatus(m.width, footerHeight)
	return padBlock(view, m.width, m.height)
}

func (m *Model) renderEditorPane(width, height int) string {
	innerWidth := max(0, width-editPane.GetHorizontalFrameSize())
	innerHeight := max(0, height-editPane.GetVerticalFrameSize())
	contentHeight := max(0, innerHeight-1)

	label := m.documentLabel()
	if m.dirty {
		label += " *"
	}
	header := editHeader.Width(innerWidth).Render(" " + truncate(label, max(0, innerWidth-1)))
	body := padBlock(m.editorViewWithSelectionHighlight(m.editor.View()), innerWidth, contentHeight)
	return renderFramed(editPane, width, height, header+"\n"+body)
}

func (m *Model) renderPreviewPane(width, height int) string {
	innerWidth := max(0, width-previewPane.GetHorizontalFrameSize())
	innerHeight := max(0, height-previewPane.GetVerticalFrameSize())
	contentHeight := max(0, innerHeight-1)

	label := "Preview"
	if m.rendering {
		label = m.spinner.View() + " Rendering..."
	}
	header := previewHeader.Width(innerWidth).Render(" " + truncate(label, max(0, innerWidth-1)))
	body := padBlock(m.preview.View(), innerWidth, contentHeight)
	return renderFramed(previewPane, width, height, header+"\n"+body)
}

// documentLabel names the buffer in the editor header.
func (m *Model) documentLabel() string {
	if m.sourcePath == "" {
		return "Untitled draft"
	}
	return filepath.Base(m.sourcePath)
}

func (m *Model) renderExportPopup(width, height int) string {
	innerWidth := max(0, width-popupStyle.GetHorizontalFrameSize())
	innerHeight := max(0, height-popupStyle.GetVerticalFrameSize())
	state := m.exportPopup

	var title string
	var items []string
	var cursor int
	switch state.stage {
	case exportStageTheme:
		title, cursor = "Card Theme", state.themeCursor
		items = exportThemeRows()
	case exportStageDevice:
		title, cursor = "Card Device", state.deviceCursor
		items = exportDeviceRows()
	default:
		title, cursor = "Export", state.formatCursor
		items = exportFormatRows()
	}

	lines := []string{titleStyle.Render(title), ""}
	for i, item := range items {
		line := truncate(item, innerWidth)
		if i == cursor {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "")
	help := "Enter: select  Esc: cancel"
	if state.stage > exportStageFormat {
		help = "Enter: select  Backspace: back  Esc: cancel"
	}
	lines = append(lines, mutedStyle.Render(help))
	content := padBlock(strings.Join(lines, "\n"), innerWidth, innerHeight)
	return renderFramed(popupStyle, width, height, content)
}

func (m *Model) renderSnippetPopup(width, height int) string {
	innerWidth := max(0, width-popupStyle.GetHorizontalFrameSize())
	innerHeight := max(0, height-popupStyle.GetVerticalFrameSize())
	lines := []string{titleStyle.Render("Insert Snippet"), ""}
	rows := snippetRows()
	visible := max(1, innerHeight-4)
	start := max(0, m.snippetCursor-visible+1)
	for i := start; i < len(rows) && i < start+visible; i++ {
		line := truncate(rows[i], innerWidth)
		if i == m.snippetCursor {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", mutedStyle.Render("Enter: insert  Esc: close"))
	content := padBlock(strings.Join(lines, "\n"), innerWidth, innerHeight)
	return renderFramed(popupStyle, width, height, content)
}

func (m *Model) renderOpenFilePopup(width, height int) string {
	innerWidth := max(0, width-popupStyle.GetHorizontalFrameSize())
	innerHeight := max(0, height-popupStyle.GetVerticalFrameSize())
	m.input.Width = max(1, innerWidth-2)
	lines := []string{
		titleStyle.Render("Open Markdown File"),
		"",
		m.input.View(),
		"",
		mutedStyle.Render("Enter: open  Esc: cancel"),
	}
	content := padBlock(strings.Join(lines, "\n"), innerWidth, innerHeight)
	return renderFramed(popupStyle, width, height, content)
}

func (m *Model) renderConfirmResetPopup(width, height int) string {
	innerWidth := max(0, width-popupStyle.GetHorizontalFrameSize())
	innerHeight := max(0, height-popupStyle.GetVerticalFrameSize())
	lines := []string{
		titleStyle.Render("Reset Editor"),
		"",
		"Clear the buffer, undo history, and saved draft?",
		warnStyle.Render("This cannot be undone."),
		"",
		mutedStyle.Render("y: reset  n/Esc: cancel"),
	}
	content := padBlock(strings.Join(lines, "\n"), innerWidth, innerHeight)
	return renderFramed(popupStyle, width, height, content)
}
