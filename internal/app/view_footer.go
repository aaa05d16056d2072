package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) renderStatus(width, rows int) string {
	statusRows, _ := m.buildStatusRows(width, rows)
	for len(statusRows) < rows {
		statusRows = append(statusRows, "")
	}

	rendered := make([]string, 0, len(statusRows))
	for _, line := range statusRows {
		line = " " + truncate(line, max(0, width-1))
		rendered = append(rendered, statusStyle.Width(width).Render(line))
	}
	return strings.Join(rendered, "\n")
}

// buildStatusRows packs the help, context, and status segments into at most
// rowLimit rows joined by " | ". The second result is false when segments
// had to be dropped.
func (m *Model) buildStatusRows(width, rowLimit int) ([]string, bool) {
	if width <= 0 || rowLimit <= 0 {
		return nil, true
	}

	help := m.statusHelpSegments()
	context := m.statusContextSegments()
	status := m.statusMessageSegment()

	segments := make([]string, 0, len(help)+len(context)+2)
	if len(help) > 0 {
		segments = append(segments, "Keys: "+help[0])
		segments = append(segments, help[1:]...)
	}
	if len(context) > 0 {
		segments = append(segments, "Doc: "+context[0])
		segments = append(segments, context[1:]...)
	}
	if status != "" {
		segments = append(segments, "Status: "+status)
	}

	rows := make([]string, 1, rowLimit)
	rowIndex := 0
	fit := true
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segment := seg
		if lipgloss.Width(segment) > width {
			segment = truncateWithEllipsis(segment, width)
		}

		candidate := segment
		if rows[rowIndex] != "" {
			candidate = rows[rowIndex] + " | " + segment
		}
		if lipgloss.Width(candidate) <= width {
			rows[rowIndex] = candidate
			continue
		}
		if rowIndex+1 < rowLimit {
			rowIndex++
			rows = append(rows, segment)
			continue
		}

		fit = false
		if rows[rowIndex] == "" {
			rows[rowIndex] = truncateWithEllipsis(segment, width)
		} else {
			rows[rowIndex] = truncateWithEllipsis(rows[rowIndex]+" | "+segment, width)
		}
		break
	}
	return rows, fit
}

func (m *Model) statusHelpSegments() []string {
	key := func(action, label string) string {
		return m.primaryActionKey(action) + " " + label
	}
	switch m.overlay {
	case overlayExport:
		return []string{"Export popup", "↑/↓ move", "Enter select", "Backspace back", "Esc cancel"}
	case overlaySnippets:
		return []string{"Snippet popup", "↑/↓ move", "Enter insert", "Esc close"}
	case overlayOpenFile:
		return []string{"Open file", "Enter open", "Esc cancel"}
	case overlayConfirmReset:
		return []string{"y confirm reset", "n/Esc cancel"}
	case overlayHelp:
		return []string{"Help", "Esc close", key(actionQuit, "quit")}
	}
	return []string{
		key(actionSaveDraft, "save draft"),
		key(actionUndo, "undo"),
		key(actionRedo, "redo"),
		key(actionBold, "bold"),
		key(actionItalic, "italic"),
		key(actionLink, "link"),
		key(actionSnippets, "snippets"),
		key(actionOpen, "open"),
		key(actionExport, "export"),
		key(actionCopy, "copy"),
		key(actionReset, "reset"),
		key(actionHelp, "help"),
		key(actionQuit, "quit"),
	}
}

func (m *Model) statusContextSegments() []string {
	parts := []string{m.session.Stats().String(), m.historySummary()}
	if sel := m.selectionSummary(); sel != "" {
		parts = append(parts, sel)
	}
	return parts
}

func (m *Model) statusMessageSegment() string {
	return strings.TrimSpace(m.status)
}

// helpSections groups actions for the help overlay.
var helpSections = []struct {
	title   string
	actions []string
}{
	{"Editing", []string{actionUndo, actionRedo, actionSelectAnchor, actionCopy, actionPaste, actionReset}},
	{"Formatting", []string{actionBold, actionItalic, actionStrike, actionCode, actionHeading1, actionHeading2, actionHeading3, actionLink, actionTable}},
	{"Files", []string{actionSaveDraft, actionOpen, actionExport, actionSnippets}},
	{"View", []string{actionPreviewScrollPageUp, actionPreviewScrollPageDown, actionHelp, actionQuit}},
}

var actionDescriptions = map[string]string{
	actionUndo:                  "Undo last edit",
	actionRedo:                  "Redo",
	actionSelectAnchor:          "Set/clear selection anchor",
	actionCopy:                  "Copy selection or document",
	actionPaste:                 "Paste clipboard text",
	actionReset:                 "Clear buffer, history, and draft",
	actionBold:                  "Toggle **bold**",
	actionItalic:                "Toggle *italic*",
	actionStrike:                "Toggle ~~strikethrough~~",
	actionCode:                  "Toggle `code`",
	actionHeading1:              "Toggle # heading",
	actionHeading2:              "Toggle ## heading",
	actionHeading3:              "Toggle ### heading",
	actionLink:                  "Insert [text](url) link",
	actionTable:                 "Insert table",
	actionSaveDraft:             "Save draft now",
	actionOpen:                  "Open a Markdown file",
	actionExport:                "Export HTML, card, PDF, or PNG",
	actionSnippets:              "Insert a snippet",
	actionPreviewScrollPageUp:   "Scroll preview up",
	actionPreviewScrollPageDown: "Scroll preview down",
	actionHelp:                  "Toggle help",
	actionQuit:                  "Quit (saves draft)",
}

func (m *Model) renderHelp(width, height int) string {
	lines := []string{titleStyle.Render("Keyboard Shortcuts"), ""}
	for _, section := range helpSections {
		lines = append(lines, section.title)
		for _, action := range section.actions {
			lines = append(lines, fmt.Sprintf("  %s %s", padRight(m.allActionKeys(action), 22), actionDescriptions[action]))
		}
		lines = append(lines, "")
	}
	lines = append(lines,
		"Selection",
		"  "+padRight("Shift+Arrows", 22)+" Extend selection",
		"  "+padRight("Mouse drag", 22)+" Select text",
		"  "+padRight("Esc", 22)+" Clear selection",
		"",
		mutedStyle.Render("Keys can be changed in ~/.mdcards/config.json."),
	)

	visible := min(height, len(lines))
	out := make([]string, 0, visible)
	for i := 0; i < visible; i++ {
		out = append(out, truncate(lines[i], width))
	}
	return strings.Join(out, "\n")
}
