package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// handleMouse drives drag selection in the editor and wheel scrolling in
// the preview. Popups swallow mouse input.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.overlay != overlayNone {
		return m, nil
	}
	layout := m.calculateLayout()
	if layout.PreviewWidth > 0 && msg.X >= layout.EditorWidth {
		return m.handlePreviewMouse(msg)
	}
	return m.handleEditMouse(msg)
}

func (m *Model) handlePreviewMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.preview.LineUp(3)
	case tea.MouseButtonWheelDown:
		m.preview.LineDown(3)
	}
	return m, nil
}

func (m *Model) handleEditMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		offset, ok := m.editorOffsetFromMouse(msg)
		if !ok {
			return m, nil
		}
		m.setEditorValueAndCursorOffset(m.editor.Value(), offset)
		m.editorSelectionAnchor = offset
		m.editorSelectionActive = true
		m.editorMouseSelecting = true
		applyEditorSelectionVisual(&m.editor, true)
		m.updateEditorSelectionStatus()
	case tea.MouseActionMotion:
		if !m.editorMouseSelecting {
			return m, nil
		}
		offset, ok := m.editorOffsetFromMouse(msg)
		if !ok {
			return m, nil
		}
		m.setEditorValueAndCursorOffset(m.editor.Value(), offset)
		m.updateEditorSelectionStatus()
	case tea.MouseActionRelease:
		if !m.editorMouseSelecting {
			return m, nil
		}
		m.editorMouseSelecting = false
		if offset, ok := m.editorOffsetFromMouse(msg); ok {
			m.setEditorValueAndCursorOffset(m.editor.Value(), offset)
		}
		if _, _, ok := m.editorSelectionRange(); !ok {
			m.clearEditorSelection()
			return m, nil
		}
		m.updateEditorSelectionStatus()
	}
	return m, nil
}

// editPaneContentOrigin is the screen cell of the first textarea cell.
func (m *Model) editPaneContentOrigin() (x, y int) {
	x = editPane.GetBorderLeftSize() + editPane.GetPaddingLeft()
	y = editPane.GetBorderTopSize() + editPane.GetPaddingTop() + 1 // +1 for header line
	return x, y
}

func (m *Model) editorOffsetFromMouse(msg tea.MouseMsg) (int, bool) {
	layout := m.calculateLayout()
	contentOriginX, contentOriginY := m.editPaneContentOrigin()
	if msg.X < contentOriginX || msg.X >= layout.EditorWidth {
		return 0, false
	}
	if msg.Y < contentOriginY || msg.Y >= contentOriginY+layout.TextareaHeight {
		return 0, false
	}

	gutterWidth := lipgloss.Width(m.editor.Prompt)
	if m.editor.ShowLineNumbers {
		gutterWidth += len(fmt.Sprintf("%3v ", max(1, m.editor.LineCount())))
	}
	col := max(0, msg.X-contentOriginX-gutterWidth)
	row := msg.Y - contentOriginY

	return m.editorOffsetFromVisualPosition(row, col), true
}

// editorOffsetFromVisualPosition maps a wrapped (row, col) cell to a rune
// offset in the buffer.
func (m *Model) editorOffsetFromVisualPosition(row, col int) int {
	value := m.editor.Value()
	lines := strings.Split(value, "\n")
	total := utf8.RuneCountInString(value)
	width := max(1, m.editor.Width())
	row = max(0, row)
	col = max(0, col)

	offset := 0
	for i, line := range lines {
		lineLen := utf8.RuneCountInString(line)
		visualRows := visualRowsForLine(lineLen, width)
		if row < visualRows {
			lineCol := clamp(row*width+col, 0, lineLen)
			return clamp(offset+lineCol, 0, total)
		}

		row -= visualRows
		offset += lineLen
		if i < len(lines)-1 {
			offset++
		}
	}
	return clamp(offset, 0, total)
}

func visualRowsForLine(lineLen, width int) int {
	if width <= 0 {
		width = 1
	}
	if lineLen <= 0 {
		return 1
	}
	return 1 + (lineLen / width)
}
