package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/md-cards/internal/drafts"
	"github.com/treykane/md-cards/internal/editor"
)

func lineBlock(count int) string {
	lines := make([]string, count)
	for i := range lines {
		lines[i] = "line"
	}
	return strings.Join(lines, "\n")
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestPreviewPageKeysScrollViewport(t *testing.T) {
	m := newFocusedEditModel(t, "")
	m.preview.Width = 40
	m.preview.Height = 5
	m.preview.SetContent(lineBlock(30))

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyPgDown})
	if m.preview.YOffset != 5 {
		t.Fatalf("expected page down to offset 5, got %d", m.preview.YOffset)
	}
	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyPgUp})
	if m.preview.YOffset != 0 {
		t.Fatalf("expected page up back to 0, got %d", m.preview.YOffset)
	}
	if m.session.Text() != "" {
		t.Fatalf("expected preview keys not to edit, got %q", m.session.Text())
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	m := newFocusedEditModel(t, "draft text")

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.overlay != overlayConfirmReset {
		t.Fatalf("expected reset confirmation overlay, got %v", m.overlay)
	}

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if m.overlay != overlayNone || m.session.Text() != "draft text" {
		t.Fatalf("expected cancel to keep text, overlay=%v text=%q", m.overlay, m.session.Text())
	}

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlR})
	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if m.session.Text() != "" {
		t.Fatalf("expected confirm to clear text, got %q", m.session.Text())
	}
	if m.overlay != overlayNone {
		t.Fatalf("expected overlay closed after reset, got %v", m.overlay)
	}
}

func TestHelpOverlayTogglesWithF1AndEsc(t *testing.T) {
	m := newFocusedEditModel(t, "abc")

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyF1})
	if m.overlay != overlayHelp {
		t.Fatalf("expected help overlay, got %v", m.overlay)
	}
	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}})
	if m.session.Text() != "abc" {
		t.Fatalf("expected help overlay to swallow typing, got %q", m.session.Text())
	}
	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if m.overlay != overlayNone {
		t.Fatalf("expected help closed, got %v", m.overlay)
	}
}

func TestQuitSavesDirtyDraft(t *testing.T) {
	m := newFocusedEditModel(t, "")
	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	_, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}

	record, err := m.drafts.Load()
	if err != nil {
		t.Fatalf("expected draft saved on quit: %v", err)
	}
	if record.Content != "q" {
		t.Fatalf("expected draft content %q, got %q", "q", record.Content)
	}
}

func TestQuitWithCleanBufferDoesNotWriteDraft(t *testing.T) {
	m := newFocusedEditModel(t, "")

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlC})

	if _, err := m.drafts.Load(); !errors.Is(err, drafts.ErrNoDraft) {
		t.Fatalf("expected no draft, got %v", err)
	}
}

func TestSnippetPopupInsertsSelectedSnippet(t *testing.T) {
	m := newFocusedEditModel(t, "")

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlP})
	if m.overlay != overlaySnippets {
		t.Fatalf("expected snippet overlay, got %v", m.overlay)
	}
	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyDown})
	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})

	want := editor.Snippets[1]
	if m.session.Text() != want.Text {
		t.Fatalf("expected %q inserted, got %q", want.Text, m.session.Text())
	}
	if m.overlay != overlayNone {
		t.Fatalf("expected popup closed, got %v", m.overlay)
	}
	if m.status != "Inserted "+want.Label {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestSnippetReplacesSelection(t *testing.T) {
	m := newFocusedEditModel(t, "abc")
	for i := 0; i < 3; i++ {
		_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyShiftLeft})
	}

	m.insertSnippet(editor.SnippetHorizontal)

	if got := m.session.Text(); got != "\n---\n" {
		t.Fatalf("expected selection replaced by rule, got %q", got)
	}
}

func TestTableActionInsertsTable(t *testing.T) {
	m := newFocusedEditModel(t, "")

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}, Alt: true})

	if !strings.Contains(m.session.Text(), "| Column 1 | Column 2 | Column 3 |") {
		t.Fatalf("expected table snippet, got %q", m.session.Text())
	}
}

func TestOpenFilePromptLoadsMarkdown(t *testing.T) {
	m := newFocusedEditModel(t, "old")
	path := filepath.Join(t.TempDir(), "card.md")
	mustWriteFile(t, path, "# From disk\n")

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlO})
	if m.overlay != overlayOpenFile {
		t.Fatalf("expected open-file overlay, got %v", m.overlay)
	}
	m.input.SetValue(path)
	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})

	if m.session.Text() != "# From disk\n" {
		t.Fatalf("expected file content loaded, got %q", m.session.Text())
	}
	if m.sourcePath != path {
		t.Fatalf("expected source path %q, got %q", path, m.sourcePath)
	}
	if !m.session.CanUndo() {
		t.Fatal("expected loading a file to be undoable")
	}
}

func TestOpenFilePromptRejectsNonMarkdown(t *testing.T) {
	m := newFocusedEditModel(t, "keep")
	path := filepath.Join(t.TempDir(), "notes.txt")
	mustWriteFile(t, path, "plain")

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlO})
	m.input.SetValue(path)
	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})

	if m.session.Text() != "keep" {
		t.Fatalf("expected buffer unchanged, got %q", m.session.Text())
	}
	if !strings.Contains(m.status, "Markdown file") {
		t.Fatalf("expected unsupported-file status, got %q", m.status)
	}
}

func TestOpenFileEscCancels(t *testing.T) {
	m := newFocusedEditModel(t, "")

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlO})
	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})

	if m.overlay != overlayNone {
		t.Fatalf("expected prompt closed, got %v", m.overlay)
	}
	if m.input.Value() != "" {
		t.Fatalf("expected prompt cleared, got %q", m.input.Value())
	}
	if m.session.Text() != "" {
		t.Fatalf("expected prompt typing to stay out of the buffer, got %q", m.session.Text())
	}
}
