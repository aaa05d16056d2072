// Package app implements the md-cards terminal editor: a Markdown textarea
// on the left, a live glamour preview on the right, and popups for export,
// snippets, and opening files.
//
// The textarea is only the input widget. The document of record is an
// editor.Session; every change typed into the textarea is recorded into the
// session, and every session operation (formatting, undo, paste) is pushed
// back into the textarea.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/md-cards/internal/config"
	"github.com/treykane/md-cards/internal/drafts"
	"github.com/treykane/md-cards/internal/editor"
	"github.com/treykane/md-cards/internal/export"
)

// overlayMode identifies which popup, if any, owns keyboard input.
type overlayMode int

const (
	overlayNone overlayMode = iota
	overlayExport
	overlaySnippets
	overlayOpenFile
	overlayConfirmReset
	overlayHelp
)

// Options configures a new Model.
type Options struct {
	Config config.Config
	// Path is a Markdown file to open at startup. When empty the saved draft
	// is restored instead.
	Path string
}

// Model holds the Bubble Tea state for the editor.
type Model struct {
	cfg config.Config

	// Document state
	session    *editor.Session
	drafts     *drafts.Store
	exporter   *export.Exporter
	sourcePath string
	dirty      bool

	// UI widgets
	editor     textarea.Model
	preview    viewport.Model
	input      textinput.Model
	spinner    spinner.Model
	overlay    overlayMode
	status     string
	debugInput bool

	// Layout sizing
	width  int
	height int

	// Selection
	editorSelectionAnchor int
	editorSelectionActive bool
	editorMouseSelecting  bool

	// Keybindings
	keyForAction map[string][]string
	keyToAction  map[string]string

	// Popups
	exportPopup   exportPopupState
	snippetCursor int

	// Debounced render bookkeeping
	rendering    bool
	renderSeq    int
	pendingWidth int
	renderCache  renderCacheEntry
}

// New prepares the editor model. It opens opts.Path when given, otherwise
// it restores the saved draft if one exists.
func New(opts Options) (*Model, error) {
	cfg, err := config.Normalize(opts.Config)
	if err != nil {
		return nil, err
	}

	input := textinput.New()
	input.Placeholder = "path/to/file.md"
	input.CharLimit = InputCharLimit

	ed := textarea.New()
	ed.Placeholder = "Write Markdown here..."
	ed.CharLimit = 0
	ed.MaxHeight = 0
	applyEditorTheme(&ed)
	ed.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Line

	m := &Model{
		cfg:                   cfg,
		session:               editor.NewSession(cfg.HistoryLimit),
		drafts:                drafts.NewStore(cfg.DraftsDir),
		exporter:              export.NewExporter(export.NewConverter(), cfg.ExportDir),
		editor:                ed,
		preview:               viewport.New(0, 0),
		input:                 input,
		spinner:               spin,
		status:                "Ready",
		editorSelectionAnchor: noEditorSelectionAnchor,
		debugInput:            os.Getenv("MDCARDS_DEBUG_INPUT") != "",
	}
	m.loadKeybindings(cfg)

	if strings.TrimSpace(opts.Path) != "" {
		if err := m.openFile(opts.Path); err != nil {
			return nil, err
		}
		return m, nil
	}
	m.restoreDraft()
	return m, nil
}

// Init starts the spinner, the draft autosave loop, and the first preview
// render.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		textarea.Blink,
		m.scheduleDraftAutosave(),
		m.requestRender(),
	)
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case renderRequestMsg:
		return m.handleRenderRequest(msg)
	case renderResultMsg:
		return m.handleRenderResult(msg)
	case draftAutoSaveTickMsg:
		return m.handleDraftAutoSaveTick(msg)
	case exportResultMsg:
		return m.handleExportResult(msg)
	case statusMsg:
		m.status = msg.Text
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// handleKey routes key presses to the active overlay or the editor.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.shouldIgnoreInput(msg) {
		return m, nil
	}
	switch m.overlay {
	case overlayExport:
		return m.handleExportPopupKey(msg)
	case overlaySnippets:
		return m.handleSnippetPopupKey(msg)
	case overlayOpenFile:
		return m.handleOpenFileKey(msg)
	case overlayConfirmReset:
		return m.handleConfirmResetKey(msg)
	case overlayHelp:
		return m.handleHelpKey(msg)
	}
	return m.handleEditorKey(msg)
}

// statusMsg carries a status line from a background command.
type statusMsg struct {
	Text string
}

// Session exposes the document for the CLI and tests.
func (m *Model) Session() *editor.Session {
	return m.session
}

// openFile loads a .md or .markdown file into the editor as a new history
// entry.
func (m *Model) openFile(path string) error {
	expanded, err := config.ExpandHome(strings.TrimSpace(path))
	if err != nil {
		return err
	}
	if !isMarkdownPath(expanded) {
		return fmt.Errorf("%w: %s", errUnsupportedFile, filepath.Base(expanded))
	}
	content, err := os.ReadFile(expanded)
	if err != nil {
		return fmt.Errorf("read %s: %w", expanded, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		abs = expanded
	}

	m.session.Load(string(content))
	m.syncEditorFromSession()
	m.sourcePath = abs
	m.dirty = true
	m.status = "Opened " + filepath.Base(abs)
	appLog.Info("opened file", "path", abs)
	return nil
}

var errUnsupportedFile = errors.New("choose a Markdown file (.md or .markdown)")

func isMarkdownPath(path string) bool {
	return stringsHasSuffixFold(path, ".md") || stringsHasSuffixFold(path, ".markdown")
}
