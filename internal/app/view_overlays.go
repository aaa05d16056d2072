package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/md-cards/internal/editor"
	"github.com/treykane/md-cards/internal/export"
)

var overlayRenderers = map[overlayMode]func(*Model, int, int) string{
	overlayExport:       (*Model).renderExportPopupOverlay,
	overlaySnippets:     (*Model).renderSnippetPopupOverlay,
	overlayOpenFile:     (*Model).renderOpenFilePopupOverlay,
	overlayConfirmReset: (*Model).renderConfirmResetPopupOverlay,
	overlayHelp:         (*Model).renderHelpOverlay,
}

func (m *Model) renderActiveOverlay(width, height int) string {
	if render, ok := overlayRenderers[m.overlay]; ok {
		return render(m, width, height)
	}
	return ""
}

func (m *Model) renderExportPopupOverlay(width, height int) string {
	popupWidth := min(60, max(44, width-PopupPadding))
	popupHeight := min(ExportPopupHeight, max(8, height-4))
	popup := m.renderExportPopup(popupWidth, popupHeight)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
}

func (m *Model) renderSnippetPopupOverlay(width, height int) string {
	popupWidth := min(60, max(40, width-PopupPadding))
	popupHeight := min(SnippetPopupHeight, max(8, height-4))
	popup := m.renderSnippetPopup(popupWidth, popupHeight)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
}

func (m *Model) renderOpenFilePopupOverlay(width, height int) string {
	popupWidth := min(80, max(40, width-PopupPadding))
	popup := m.renderOpenFilePopup(popupWidth, PromptPopupHeight)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
}

func (m *Model) renderConfirmResetPopupOverlay(width, height int) string {
	popupWidth := min(60, max(40, width-PopupPadding))
	popup := m.renderConfirmResetPopup(popupWidth, PromptPopupHeight)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
}

func (m *Model) renderHelpOverlay(width, height int) string {
	popupWidth := min(72, max(40, width-PopupPadding))
	popupHeight := max(6, height-2)
	innerWidth := max(0, popupWidth-popupStyle.GetHorizontalFrameSize())
	innerHeight := max(0, popupHeight-popupStyle.GetVerticalFrameSize())
	content := m.renderHelp(innerWidth, innerHeight)
	popup := renderFramed(popupStyle, popupWidth, popupHeight, padBlock(content, innerWidth, innerHeight))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
}

// exportFormatRows lists the export formats with the extension they write.
func exportFormatRows() []string {
	rows := make([]string, 0, len(export.Formats))
	for _, format := range export.Formats {
		rows = append(rows, fmt.Sprintf("%s  %s", padRight(format.Label(), 14), mutedStyle.Render("."+formatExtension(format))))
	}
	return rows
}

func formatExtension(format export.Format) string {
	if format == export.FormatCard {
		return "html"
	}
	return string(format)
}

// exportThemeRows shows each theme with a color sample and its contrast
// ratio after correction.
func exportThemeRows() []string {
	rows := make([]string, 0, len(export.Themes))
	for _, theme := range export.Themes {
		resolved := theme.Resolve()
		note := okStyle.Render(fmt.Sprintf("%.1f:1", resolved.Ratio))
		if resolved.Adjusted {
			note += " " + warnStyle.Render("adjusted")
		}
		rows = append(rows, fmt.Sprintf("%s %s  %s",
			padRight(theme.Label, 10),
			swatch(resolved.BackgroundColor.Hex(), resolved.TextColor.Hex()),
			note,
		))
	}
	return rows
}

func exportDeviceRows() []string {
	rows := make([]string, 0, len(export.Devices))
	for _, device := range export.Devices {
		rows = append(rows, fmt.Sprintf("%s %s", padRight(device.Label, 10), mutedStyle.Render(fmt.Sprintf("%dpx", device.Width))))
	}
	return rows
}

func snippetRows() []string {
	rows := make([]string, 0, len(editor.Snippets))
	for _, snippet := range editor.Snippets {
		preview := strings.ReplaceAll(strings.TrimSpace(snippet.Text), "\n", " ⏎ ")
		rows = append(rows, padRight(snippet.Label, 16)+" "+mutedStyle.Render(preview))
	}
	return rows
}
