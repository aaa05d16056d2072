package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/md-cards/internal/drafts"
)

// draftAutoSaveTickMsg is emitted by the periodic autosave timer.
type draftAutoSaveTickMsg struct{}

// scheduleDraftAutosave returns a command that emits a draftAutoSaveTickMsg
// after DraftAutoSaveInterval. The tick handler reschedules it, so the loop
// runs for the lifetime of the program.
func (m *Model) scheduleDraftAutosave() tea.Cmd {
	return tea.Tick(DraftAutoSaveInterval, func(time.Time) tea.Msg {
		return draftAutoSaveTickMsg{}
	})
}

// handleDraftAutoSaveTick writes the buffer when it changed since the last
// save. Failures are logged and do not interrupt editing.
func (m *Model) handleDraftAutoSaveTick(_ draftAutoSaveTickMsg) (tea.Model, tea.Cmd) {
	if m.dirty {
		if _, err := m.drafts.Save(m.session.Text(), m.sourcePath); err != nil {
			appLog.Warn("auto-save draft", "path", m.drafts.Path(), "error", err)
		} else {
			m.dirty = false
		}
	}
	return m, m.scheduleDraftAutosave()
}

// saveDraft writes the buffer to the draft store on request.
func (m *Model) saveDraft() {
	record, err := m.drafts.Save(m.session.Text(), m.sourcePath)
	if err != nil {
		m.setStatusError("Saving draft failed", err, "path", m.drafts.Path())
		return
	}
	m.dirty = false
	m.status = "Draft saved at " + record.UpdatedAt.Format("15:04:05")
}

// saveDraftIfDirty is the quit-time save.
func (m *Model) saveDraftIfDirty() {
	if !m.dirty {
		return
	}
	if _, err := m.drafts.Save(m.session.Text(), m.sourcePath); err != nil {
		appLog.Error("save draft on quit", "path", m.drafts.Path(), "error", err)
		return
	}
	m.dirty = false
}

// restoreDraft loads the saved draft into the editor, if there is one. A
// restored draft is recorded as a history entry like any other load.
func (m *Model) restoreDraft() {
	record, err := m.drafts.Load()
	if err != nil {
		if !errors.Is(err, drafts.ErrNoDraft) {
			m.setStatusError("Could not restore draft", err, "path", m.drafts.Path())
		}
		return
	}
	m.session.Load(record.Content)
	m.syncEditorFromSession()
	m.sourcePath = record.SourcePath
	m.status = "Restored draft from " + record.UpdatedAt.Local().Format("2006-01-02 15:04")
}
