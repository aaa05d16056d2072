package app

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/md-cards/internal/drafts"
)

func TestEditUndoRedoDiscreteFormatting(t *testing.T) {
	m := newFocusedEditModel(t, "hello world")

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlB})
	if got := m.editor.Value(); got != "hello **world**" {
		t.Fatalf("expected formatted value, got %q", got)
	}

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.editor.Value(); got != "hello world" {
		t.Fatalf("expected undo to restore original value, got %q", got)
	}

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.editor.Value(); got != "hello **world**" {
		t.Fatalf("expected redo to reapply format, got %q", got)
	}
}

func TestEachTypedCharacterIsOneUndoStep(t *testing.T) {
	m := newFocusedEditModel(t, "x")

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.editor.Value(); got != "xa" {
		t.Fatalf("expected single character undone, got %q", got)
	}
	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.editor.Value(); got != "x" {
		t.Fatalf("expected second character undone, got %q", got)
	}
}

func TestRedoClearsAfterFreshEdit(t *testing.T) {
	m := newFocusedEditModel(t, "x")

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if !m.session.CanRedo() {
		t.Fatal("expected redo to be available after undo")
	}

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	if m.session.CanRedo() {
		t.Fatal("expected fresh edit to clear redo")
	}
	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlY})
	if m.status != "Nothing to redo" {
		t.Fatalf("expected nothing-to-redo status, got %q", m.status)
	}
}

func TestUndoAtOldestSnapshotReportsNothingToUndo(t *testing.T) {
	m := newFocusedEditModel(t, "")

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlZ})

	if m.status != "Nothing to undo" {
		t.Fatalf("expected nothing-to-undo status, got %q", m.status)
	}
}

func TestHistorySummaryReflectsAvailability(t *testing.T) {
	m := newFocusedEditModel(t, "")
	if got := m.historySummary(); got != "-/- (1)" {
		t.Fatalf("expected empty summary, got %q", got)
	}

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if got := m.historySummary(); got != "undo/- (2)" {
		t.Fatalf("expected undo available, got %q", got)
	}

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.historySummary(); got != "-/redo (2)" {
		t.Fatalf("expected redo available, got %q", got)
	}
}

func TestResetEditorClearsBufferHistoryAndDraft(t *testing.T) {
	m := newFocusedEditModel(t, "keep me")
	if _, err := m.drafts.Save("keep me", ""); err != nil {
		t.Fatalf("save draft: %v", err)
	}

	m.resetEditor()

	if m.editor.Value() != "" || m.session.Text() != "" {
		t.Fatalf("expected empty buffer, got %q / %q", m.editor.Value(), m.session.Text())
	}
	if m.session.CanUndo() {
		t.Fatal("expected history cleared")
	}
	if _, err := m.drafts.Load(); !errors.Is(err, drafts.ErrNoDraft) {
		t.Fatalf("expected draft removed, got %v", err)
	}
	if m.status != "Editor reset" {
		t.Fatalf("expected reset status, got %q", m.status)
	}
}
