package app

import tea "github.com/charmbracelet/bubbletea"

// openOverlay activates one overlay and ensures any previous overlay state is cleaned up.
func (m *Model) openOverlay(mode overlayMode) {
	if m.overlay == mode {
		return
	}
	m.closeOverlay()
	m.overlay = mode
	if mode != overlayNone {
		m.editor.Blur()
	}
}

// closeOverlay dismisses the active overlay, resets overlay-specific state,
// and hands focus back to the editor.
func (m *Model) closeOverlay() {
	switch m.overlay {
	case overlayOpenFile:
		m.input.Blur()
		m.input.SetValue("")
	case overlayExport:
		m.exportPopup.stage = exportStageFormat
	}
	m.overlay = overlayNone
	m.editor.Focus()
}

// handlePopupListNav handles the shared up/down/select/close key patterns used by list popups.
// It returns (nextCursor, selectPressed, closePressed, handled).
func handlePopupListNav(msg tea.KeyMsg, cursor, count int) (int, bool, bool, bool) {
	key := msg.String()
	switch key {
	case "esc":
		return cursor, false, true, true
	case "up", "k", "ctrl+p":
		if count <= 0 {
			return 0, false, false, true
		}
		return clamp(cursor-1, 0, count-1), false, false, true
	case "down", "j", "ctrl+n":
		if count <= 0 {
			return 0, false, false, true
		}
		return clamp(cursor+1, 0, count-1), false, false, true
	case "enter":
		return cursor, true, false, true
	default:
		return cursor, false, false, false
	}
}
