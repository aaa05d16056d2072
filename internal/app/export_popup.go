package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/md-cards/internal/export"
)

type exportStage int

const (
	exportStageFormat exportStage = iota
	exportStageTheme
	exportStageDevice
)

// exportPopupState tracks the three-step export picker. HTML and PDF
// documents stop after the format step; cards also pick a theme and a
// device.
type exportPopupState struct {
	stage        exportStage
	formatCursor int
	themeCursor  int
	deviceCursor int
	running      bool
}

// exportResultMsg reports a finished export.
type exportResultMsg struct {
	format export.Format
	path   string
	err    error
}

// openExportPopup shows the format picker with the configured theme and
// device preselected for the later steps.
func (m *Model) openExportPopup() {
	if m.exportPopup.running {
		m.status = "Export already running"
		return
	}
	if strings.TrimSpace(m.session.Text()) == "" {
		m.status = "Nothing to export"
		return
	}
	m.openOverlay(overlayExport)
	m.exportPopup.stage = exportStageFormat
	m.exportPopup.themeCursor = themeIndex(m.cfg.Theme)
	m.exportPopup.deviceCursor = deviceIndex(m.cfg.Device)
	m.status = "Export: choose a format"
}

func (m *Model) handleExportPopupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := &m.exportPopup
	var cursor *int
	var count int
	switch state.stage {
	case exportStageTheme:
		cursor, count = &state.themeCursor, len(export.Themes)
	case exportStageDevice:
		cursor, count = &state.deviceCursor, len(export.Devices)
	default:
		cursor, count = &state.formatCursor, len(export.Formats)
	}

	next, selected, closed, handled := handlePopupListNav(msg, *cursor, count)
	if !handled {
		if msg.String() == "backspace" && state.stage > exportStageFormat {
			state.stage--
		}
		return m, nil
	}
	*cursor = next
	switch {
	case closed:
		m.closeOverlay()
		m.status = "Export cancelled"
		return m, nil
	case !selected:
		return m, nil
	}

	format := export.Formats[state.formatCursor]
	if state.stage == exportStageFormat && isCardFormat(format) {
		state.stage = exportStageTheme
		m.status = "Export: choose a theme"
		return m, nil
	}
	if state.stage == exportStageTheme {
		state.stage = exportStageDevice
		m.status = "Export: choose a device"
		return m, nil
	}

	m.closeOverlay()
	return m, m.startExport(format)
}

// startExport runs the export in the background with the buffer as it is
// now.
func (m *Model) startExport(format export.Format) tea.Cmd {
	m.exportPopup.running = true
	m.status = "Exporting " + format.Label() + "..."
	exporter := m.exporter
	source := m.session.Text()
	opts := m.exportOptions()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ExportTimeout)
		defer cancel()
		path, err := exporter.Export(ctx, source, format, opts)
		return exportResultMsg{format: format, path: path, err: err}
	}
}

// exportOptions builds export options from the picker state and config.
func (m *Model) exportOptions() export.Options {
	return export.Options{
		Theme:  export.Themes[clamp(m.exportPopup.themeCursor, 0, len(export.Themes)-1)],
		Device: export.Devices[clamp(m.exportPopup.deviceCursor, 0, len(export.Devices)-1)],
		Author: m.cfg.Author,
		Style: export.Style{
			FontFamily: m.cfg.FontFamily,
			FontSize:   m.cfg.FontSize,
			FontWeight: m.cfg.FontWeight,
		},
	}
}

func (m *Model) handleExportResult(msg exportResultMsg) (tea.Model, tea.Cmd) {
	m.exportPopup.running = false
	if msg.err != nil {
		status := msg.format.Label() + " export failed"
		if errors.Is(msg.err, export.ErrRendererUnavailable) {
			status = msg.format.Label() + " export unavailable: install " + rendererHint(msg.format)
		}
		m.setStatusError(status, msg.err, "format", string(msg.format))
		return m, nil
	}
	m.status = fmt.Sprintf("Exported %s: %s", msg.format.Label(), msg.path)
	return m, nil
}

func rendererHint(format export.Format) string {
	if format == export.FormatPNG {
		return "wkhtmltoimage"
	}
	return "pandoc or wkhtmltopdf"
}

func isCardFormat(format export.Format) bool {
	return format == export.FormatCard || format == export.FormatPNG
}

func themeIndex(name string) int {
	for i, theme := range export.Themes {
		if theme.Name == name {
			return i
		}
	}
	return 0
}

func deviceIndex(name string) int {
	for i, device := range export.Devices {
		if device.Name == name {
			return i
		}
	}
	return 0
}
