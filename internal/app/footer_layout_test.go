package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFooterHeightForWidthPrefersTwoRowsWhenFit(t *testing.T) {
	m := newFocusedEditModel(t, "")

	if got := m.footerHeightForWidth(400); got != FooterMinRows {
		t.Fatalf("expected %d footer rows at wide width, got %d", FooterMinRows, got)
	}
}

func TestFooterHeightForWidthExpandsToThreeRowsWhenNeeded(t *testing.T) {
	m := newFocusedEditModel(t, "")
	m.status = "Exported PNG card: /home/user/mdcards/card-20260101-120000.png"

	if got := m.footerHeightForWidth(72); got != FooterMaxRows {
		t.Fatalf("expected %d footer rows at narrow width, got %d", FooterMaxRows, got)
	}
}

func TestBuildStatusRowsTruncatesWithEllipsisWhenOverCapacity(t *testing.T) {
	m := newFocusedEditModel(t, "")
	m.status = strings.Repeat("status ", 30)

	rows, fit := m.buildStatusRows(28, FooterMaxRows)
	if fit {
		t.Fatal("expected rows to overflow and require truncation")
	}
	if len(rows) != FooterMaxRows {
		t.Fatalf("expected %d rows, got %d", FooterMaxRows, len(rows))
	}
	if !strings.Contains(rows[len(rows)-1], "…") {
		t.Fatalf("expected ellipsis in final row, got %q", rows[len(rows)-1])
	}
}

func TestStatusHelpSegmentsByOverlay(t *testing.T) {
	t.Run("editor", func(t *testing.T) {
		m := newFocusedEditModel(t, "")
		joined := strings.Join(m.statusHelpSegments(), " | ")
		for _, want := range []string{"Ctrl+S save draft", "Ctrl+Z undo", "Ctrl+E export", "F1 help", "Ctrl+C quit"} {
			if !strings.Contains(joined, want) {
				t.Fatalf("expected editor help to include %q, got %q", want, joined)
			}
		}
	})

	t.Run("export", func(t *testing.T) {
		m := newFocusedEditModel(t, "")
		m.overlay = overlayExport
		joined := strings.Join(m.statusHelpSegments(), " | ")
		if !strings.Contains(joined, "Export popup") {
			t.Fatalf("expected popup help to include popup context, got %q", joined)
		}
	})
}

func TestStatusContextShowsStatsHistoryAndSelection(t *testing.T) {
	m := newFocusedEditModel(t, "one two")
	_, _ = m.handleEditorKey(shiftLeftKey())

	joined := strings.Join(m.statusContextSegments(), " | ")
	for _, want := range []string{"W:2 C:7 L:1", "undo/-", "Sel:1"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected context to include %q, got %q", want, joined)
		}
	}
}

func TestCalculateLayoutReservesFooterRowsAndStaysNonNegative(t *testing.T) {
	m := newFocusedEditModel(t, "")
	m.width = 70
	m.height = 2
	layout := m.calculateLayout()
	if layout.ContentHeight < 0 || layout.TextareaHeight < 0 || layout.ViewportHeight < 0 {
		t.Fatalf("expected non-negative heights, got %+v", layout)
	}

	m.width = 400
	m.height = 24
	layout = m.calculateLayout()
	expected := 24 - FooterMinRows
	if layout.ContentHeight != expected {
		t.Fatalf("expected content height %d, got %d", expected, layout.ContentHeight)
	}
	if layout.EditorWidth+layout.PreviewWidth != m.width {
		t.Fatalf("expected panes to fill width, got %d+%d", layout.EditorWidth, layout.PreviewWidth)
	}
}

func TestCalculateLayoutHidesPreviewWhenNarrow(t *testing.T) {
	m := newFocusedEditModel(t, "")
	m.width = 40
	m.height = 20

	layout := m.calculateLayout()
	if layout.PreviewWidth != 0 || layout.EditorWidth != 40 {
		t.Fatalf("expected editor-only layout, got %+v", layout)
	}
}

func TestViewPadsToTerminalSizeWithAdaptiveFooter(t *testing.T) {
	for _, size := range [][2]int{{90, 20}, {40, 12}, {200, 50}} {
		m := newFocusedEditModel(t, "# Title\n\nbody")
		m.width, m.height = size[0], size[1]
		m.updateLayout()

		out := m.View()
		lines := strings.Split(out, "\n")
		if len(lines) != m.height {
			t.Fatalf("%dx%d: expected %d lines, got %d", m.width, m.height, m.height, len(lines))
		}
		for i, line := range lines {
			if w := lipgloss.Width(line); w != m.width {
				t.Fatalf("%dx%d: line %d width mismatch: expected %d, got %d", m.width, m.height, i+1, m.width, w)
			}
		}
	}
}

func TestViewShowsDocumentLabel(t *testing.T) {
	m := newFocusedEditModel(t, "")
	m.width, m.height = 100, 20
	m.updateLayout()
	if !strings.Contains(m.View(), "Untitled draft") {
		t.Fatal("expected untitled label for a new buffer")
	}

	m.sourcePath = "/tmp/cards/launch.md"
	m.dirty = true
	if !strings.Contains(m.View(), "launch.md *") {
		t.Fatal("expected file name with dirty marker")
	}
}
