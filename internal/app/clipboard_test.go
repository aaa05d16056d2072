package app

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func stubClipboard(t *testing.T, read func() (string, error), write func(string) error) {
	t.Helper()
	oldRead, oldWrite := clipboardRead, clipboardWrite
	clipboardRead, clipboardWrite = read, write
	t.Cleanup(func() {
		clipboardRead, clipboardWrite = oldRead, oldWrite
	})
}

func TestCopyToClipboardCopiesSelectionOrDocument(t *testing.T) {
	var copied string
	stubClipboard(t, nil, func(s string) error {
		copied = s
		return nil
	})

	m := newFocusedEditModel(t, "hello world")
	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}, Alt: true})
	if copied != "hello world" || m.status != "Copied document (11 chars)" {
		t.Fatalf("expected whole document copied, got %q / %q", copied, m.status)
	}

	for i := 0; i < 5; i++ {
		_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyShiftLeft})
	}
	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}, Alt: true})
	if copied != "world" || m.status != "Copied selection (5 chars)" {
		t.Fatalf("expected selection copied, got %q / %q", copied, m.status)
	}
}

func TestCopyToClipboardEmptyBuffer(t *testing.T) {
	stubClipboard(t, nil, func(string) error {
		t.Fatal("clipboard should not be written")
		return nil
	})
	m := newFocusedEditModel(t, "")

	m.copyToClipboard()

	if m.status != "Nothing to copy" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestPasteFromClipboardReplacesSelection(t *testing.T) {
	stubClipboard(t, func() (string, error) { return "there", nil }, nil)
	m := newFocusedEditModel(t, "hello world")
	for i := 0; i < 5; i++ {
		_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyShiftLeft})
	}

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlV})

	if got := m.session.Text(); got != "hello there" {
		t.Fatalf("expected selection replaced, got %q", got)
	}
	if m.editor.Value() != m.session.Text() {
		t.Fatalf("editor out of sync: %q", m.editor.Value())
	}
	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.session.Text(); got != "hello world" {
		t.Fatalf("expected paste to be undoable, got %q", got)
	}
}

func TestPasteFromClipboardErrors(t *testing.T) {
	stubClipboard(t, func() (string, error) { return "", errors.New("no xclip") }, nil)
	m := newFocusedEditModel(t, "abc")

	m.pasteFromClipboardIntoEditor()

	if m.status != "Clipboard paste failed" || m.session.Text() != "abc" {
		t.Fatalf("unexpected state: %q / %q", m.status, m.session.Text())
	}
}

func TestPasteFromEmptyClipboard(t *testing.T) {
	stubClipboard(t, func() (string, error) { return "", nil }, nil)
	m := newFocusedEditModel(t, "abc")

	m.pasteFromClipboardIntoEditor()

	if m.status != "Clipboard is empty" {
		t.Fatalf("unexpected status %q", m.status)
	}
}
