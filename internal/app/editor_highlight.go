package app

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// highlightFencedCodeInEditorView styles fenced code blocks in the rendered
// textarea view. Delimiter lines get editorFenceLine, lines between them get
// editorCodeLine, and prose is left alone. It only touches the view string,
// never the buffer.
func highlightFencedCodeInEditorView(view string) string {
	if strings.TrimSpace(view) == "" {
		return view
	}
	lines := strings.Split(view, "\n")
	inFence := false
	for i, line := range lines {
		if strings.Contains(line, "```") || strings.Contains(line, "~~~") {
			lines[i] = editorFenceLine.Render(line)
			inFence = !inFence
			continue
		}
		if inFence {
			lines[i] = editorCodeLine.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// editorViewWithSelectionHighlight renders the textarea and marks the
// selected span. Multi-line selections are reported in the footer only.
func (m *Model) editorViewWithSelectionHighlight(view string) string {
	view = highlightFencedCodeInEditorView(view)
	selected := m.selectedText()
	if selected == "" || strings.Contains(selected, "\n") {
		return view
	}
	idx := strings.Index(view, selected)
	if idx < 0 {
		return view
	}
	return view[:idx] + selectionText.Render(selected) + view[idx+len(selected):]
}

// selectionSummary returns "Sel:N" while a selection is active.
func (m *Model) selectionSummary() string {
	selected := m.selectedText()
	if selected == "" {
		return ""
	}
	return "Sel:" + strconv.Itoa(utf8.RuneCountInString(selected))
}
