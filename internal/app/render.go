// render.go implements debounced, cached markdown rendering for the preview
// pane.
//
// Rendering through Glamour is relatively expensive, so this module applies
// two optimizations to keep typing responsive:
//
// # Debouncing
//
// Every edit calls requestRender, which increments a sequence number and
// schedules a renderRequestMsg after RenderDebounce. If another edit lands
// before the timer fires, the sequence number changes and the stale request
// is dropped. Only the last request renders, using the buffer as it is at
// that moment.
//
// # Caching
//
// The last completed render is kept with the source text and width bucket
// that produced it. Width bucketing rounds the viewport width down to a
// multiple of RenderWidthBucket so small resizes reuse renders.
//
// # Glamour Renderers
//
// TermRenderer instances are cached per (style, width bucket) in a global
// LRU protected by a mutex, because renders run on background goroutines.
// The style comes from MDCARDS_GLAMOUR_STYLE, then the config's
// glamour_style, then "dark".
package app

import (
	"container/list"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/treykane/md-cards/internal/export"
)

// renderCacheEntry stores a completed render alongside the inputs that
// produced it.
type renderCacheEntry struct {
	source  string // raw markdown that was rendered
	width   int    // width bucket used for word wrapping
	content string // ANSI-formatted output ready for the viewport
}

// renderRequestMsg is emitted by the debounce timer.
type renderRequestMsg struct {
	width int
	seq   int
}

// renderResultMsg carries a finished render back to Update.
type renderResultMsg struct {
	source  string
	width   int
	seq     int
	content string
	err     error
}

type rendererKey struct {
	style string
	width int
}

var (
	// maxRendererCacheEntries bounds the number of Glamour renderers kept
	// in memory.
	maxRendererCacheEntries = 8

	rendererCacheMu    sync.Mutex
	rendererCache      = map[rendererKey]*glamour.TermRenderer{}
	rendererCacheOrder = list.New() // front = least recently used
	rendererCacheNodes = map[rendererKey]*list.Element{}
)

// requestRender schedules a debounced preview render of the current buffer.
// A cache hit updates the preview immediately and returns nil.
func (m *Model) requestRender() tea.Cmd {
	width := roundWidthToNearestBucket(m.preview.Width)
	source := m.session.Text()
	if m.renderCache.width == width && m.renderCache.source == source && m.renderCache.content != "" {
		m.preview.SetContent(m.renderCache.content)
		m.rendering = false
		return nil
	}
	m.rendering = true
	m.renderSeq++
	seq := m.renderSeq
	m.pendingWidth = width
	return tea.Tick(RenderDebounce, func(time.Time) tea.Msg {
		return renderRequestMsg{width: width, seq: seq}
	})
}

// renderMarkdownCmd renders source on a background goroutine.
func renderMarkdownCmd(source, style string, width, seq int) tea.Cmd {
	return func() tea.Msg {
		content, err := renderMarkdown(source, style, width)
		return renderResultMsg{
			source:  source,
			width:   width,
			seq:     seq,
			content: content,
			err:     err,
		}
	}
}

// renderMarkdown converts markdown to ANSI output for the viewport. Front
// matter is stripped first, since it only configures exports. On failure
// the raw markdown is returned with the error so the user still sees text.
func renderMarkdown(source, style string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	_, body := export.ParseFrontMatter(source)
	if strings.TrimSpace(body) == "" {
		return mutedStyle.Render("Nothing to preview yet."), nil
	}
	renderer, err := getRenderer(style, width)
	if err != nil {
		return body, err
	}
	out, err := renderer.Render(body)
	if err != nil {
		return body, err
	}
	return out, nil
}

// getRenderer returns a cached Glamour TermRenderer for style and width,
// creating one if needed.
func getRenderer(style string, width int) (*glamour.TermRenderer, error) {
	key := rendererKey{style: style, width: width}
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	if renderer, ok := rendererCache[key]; ok {
		if node, ok := rendererCacheNodes[key]; ok {
			rendererCacheOrder.MoveToBack(node)
		}
		return renderer, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamourStyleOption(style),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, err
	}
	rendererCache[key] = renderer
	rendererCacheNodes[key] = rendererCacheOrder.PushBack(key)
	evictOldestRendererIfNeeded()
	return renderer, nil
}

func evictOldestRendererIfNeeded() {
	for len(rendererCache) > maxRendererCacheEntries && rendererCacheOrder.Len() > 0 {
		oldest := rendererCacheOrder.Front()
		key, _ := oldest.Value.(rendererKey)
		rendererCacheOrder.Remove(oldest)
		delete(rendererCache, key)
		delete(rendererCacheNodes, key)
	}
}

func resetRendererCacheForTests() {
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	rendererCache = map[rendererKey]*glamour.TermRenderer{}
	rendererCacheOrder = list.New()
	rendererCacheNodes = map[rendererKey]*list.Element{}
}

// glamourStyle resolves the preview style name. MDCARDS_GLAMOUR_STYLE wins
// over the config value; unknown names fall back to "dark", which also
// avoids the OSC background query that "auto" would trigger.
func (m *Model) glamourStyle() string {
	style := strings.ToLower(strings.TrimSpace(os.Getenv("MDCARDS_GLAMOUR_STYLE")))
	if style == "" {
		style = m.cfg.GlamourStyle
	}
	switch style {
	case "auto", "dark", "light", "notty", "dracula", "tokyo-night", "pink", "ascii":
		return style
	default:
		return "dark"
	}
}

func glamourStyleOption(style string) glamour.TermRendererOption {
	if style == "auto" {
		return glamour.WithAutoStyle()
	}
	return glamour.WithStandardStyle(style)
}
