package app

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"
)

var (
	paneStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	popupStyle      = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1)
	previewPane     = paneStyle.Copy().BorderForeground(lipgloss.Color("62"))
	editPane        = paneStyle.Copy().BorderForeground(lipgloss.Color("204"))
	previewHeader   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	editHeader      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("204"))
	selectedStyle   = lipgloss.NewStyle().Reverse(true)
	selectionText   = lipgloss.NewStyle().Background(lipgloss.Color("24")).Foreground(lipgloss.Color("231"))
	titleStyle      = lipgloss.NewStyle().Bold(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("211"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	warnStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	okStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	editorFenceLine = lipgloss.NewStyle().Foreground(lipgloss.Color("215"))
	editorCodeLine  = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
)

func applyEditorTheme(editor *textarea.Model) {
	focused, blurred := textarea.DefaultStyles()

	base := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cursorLine := lipgloss.NewStyle().Background(lipgloss.Color("53")).Foreground(lipgloss.Color("252"))
	lineNumber := lipgloss.NewStyle().Foreground(lipgloss.Color("218"))
	prompt := lipgloss.NewStyle().Foreground(lipgloss.Color("204"))

	focused.Base = base
	focused.Text = base
	focused.CursorLine = cursorLine
	focused.CursorLineNumber = lineNumber.Bold(true)
	focused.LineNumber = lineNumber
	focused.Prompt = prompt
	focused.Placeholder = mutedStyle

	blurred.Base = base
	blurred.Text = mutedStyle
	blurred.CursorLine = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	blurred.CursorLineNumber = lineNumber
	blurred.LineNumber = lineNumber
	blurred.Prompt = prompt
	blurred.Placeholder = mutedStyle

	editor.FocusedStyle = focused
	editor.BlurredStyle = blurred
	editor.Prompt = "│ "
	editor.EndOfBufferCharacter = ' '
	editor.ShowLineNumbers = true
}

// applyEditorSelectionVisual drops the cursor-line highlight while a
// selection is active so the selected span stands out.
func applyEditorSelectionVisual(editor *textarea.Model, selecting bool) {
	if selecting {
		editor.FocusedStyle.CursorLine = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		return
	}
	editor.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(lipgloss.Color("53")).Foreground(lipgloss.Color("252"))
}

// swatch renders a two-cell color sample for the theme picker.
func swatch(background, text string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color(text)).
		Render("Aa")
}

// renderFramed renders content inside style so the result, borders
// included, is exactly width by height cells.
func renderFramed(style lipgloss.Style, width, height int, content string) string {
	return style.
		Width(max(0, width-style.GetHorizontalBorderSize())).
		Height(max(0, height-style.GetVerticalBorderSize())).
		Render(content)
}
