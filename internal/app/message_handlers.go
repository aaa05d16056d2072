package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// handleSpinnerTick updates the spinner animation state.
func (m *Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// handleWindowResize updates layout dimensions after terminal resize and
// re-renders the preview for the new width.
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.updateLayout()
	return m, m.requestRender()
}

// handleRenderRequest dispatches a render when the debounce timer that sent
// msg is still the newest one.
func (m *Model) handleRenderRequest(msg renderRequestMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.renderSeq || msg.width != m.pendingWidth {
		return m, nil
	}
	return m, renderMarkdownCmd(m.session.Text(), m.glamourStyle(), msg.width, msg.seq)
}

// handleRenderResult stores a finished render and shows it if it is still
// current.
//
// Results from superseded requests still refresh the cache, since the text
// they rendered may come back (undo). Only the newest sequence number for
// the current width reaches the viewport, so a slow render never overwrites
// a newer one.
func (m *Model) handleRenderResult(msg renderResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		appLog.Error("render markdown", "seq", msg.seq, "width", msg.width, "error", msg.err)
		if msg.seq == m.renderSeq {
			m.preview.SetContent(msg.content)
			m.status = "Preview render failed"
			m.rendering = false
		}
		return m, nil
	}

	if msg.seq == m.renderSeq || m.renderCache.content == "" {
		m.renderCache = renderCacheEntry{
			source:  msg.source,
			width:   msg.width,
			content: msg.content,
		}
	}

	if msg.seq != m.renderSeq {
		return m, nil
	}
	if msg.width == roundWidthToNearestBucket(m.preview.Width) {
		m.preview.SetContent(msg.content)
		m.rendering = false
	}
	return m, nil
}
