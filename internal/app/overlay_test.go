package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func allConcreteOverlayModesForTest() []overlayMode {
	return []overlayMode{
		overlayExport,
		overlaySnippets,
		overlayOpenFile,
		overlayConfirmReset,
		overlayHelp,
	}
}

func TestOverlayModeCoverageGuard(t *testing.T) {
	modes := allConcreteOverlayModesForTest()
	if want := int(overlayHelp); len(modes) != want {
		t.Fatalf("overlay coverage list out of date: got %d overlays, expected %d", len(modes), want)
	}
	for _, mode := range modes {
		if _, ok := overlayRenderers[mode]; !ok {
			t.Fatalf("overlay %v has no renderer", mode)
		}
	}
}

func TestOpenOverlayBlursEditorAndCloseRestoresFocus(t *testing.T) {
	for _, mode := range allConcreteOverlayModesForTest() {
		t.Run(mode.String(), func(t *testing.T) {
			m := newFocusedEditModel(t, "")
			m.openOverlay(mode)
			if m.overlay != mode {
				t.Fatalf("expected overlay %v, got %v", mode, m.overlay)
			}
			if m.editor.Focused() {
				t.Fatal("expected editor blurred while overlay is open")
			}

			m.closeOverlay()
			if m.overlay != overlayNone {
				t.Fatalf("expected overlayNone after close, got %v", m.overlay)
			}
			if !m.editor.Focused() {
				t.Fatal("expected editor focused after close")
			}
		})
	}
}

func TestCloseOverlayClearsOpenFilePrompt(t *testing.T) {
	m := newFocusedEditModel(t, "")
	m.openFilePrompt()
	m.input.SetValue("draft.md")

	m.openOverlay(overlayHelp)

	if m.input.Value() != "" || m.input.Focused() {
		t.Fatalf("expected prompt reset when switching overlays, value=%q focused=%v", m.input.Value(), m.input.Focused())
	}
}

func TestHandlePopupListNav(t *testing.T) {
	cases := []struct {
		key                     tea.KeyMsg
		cursor, count           int
		next                    int
		selected, closed, valid bool
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, 0, 3, 1, false, false, true},
		{tea.KeyMsg{Type: tea.KeyDown}, 2, 3, 2, false, false, true},
		{tea.KeyMsg{Type: tea.KeyUp}, 0, 3, 0, false, false, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, 1, 3, 2, false, false, true},
		{tea.KeyMsg{Type: tea.KeyEnter}, 1, 3, 1, true, false, true},
		{tea.KeyMsg{Type: tea.KeyEsc}, 1, 3, 1, false, true, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, 1, 3, 1, false, false, false},
	}
	for _, tc := range cases {
		next, selected, closed, handled := handlePopupListNav(tc.key, tc.cursor, tc.count)
		if next != tc.next || selected != tc.selected || closed != tc.closed || handled != tc.valid {
			t.Fatalf("%s from %d: got (%d,%v,%v,%v)", tc.key.String(), tc.cursor, next, selected, closed, handled)
		}
	}
}

func (m overlayMode) String() string {
	switch m {
	case overlayNone:
		return "none"
	case overlayExport:
		return "export"
	case overlaySnippets:
		return "snippets"
	case overlayOpenFile:
		return "open_file"
	case overlayConfirmReset:
		return "confirm_reset"
	case overlayHelp:
		return "help"
	default:
		return "unknown"
	}
}
