package app

import (
	"slices"
	"strings"

	"github.com/treykane/md-cards/internal/config"
)

// ---------------------------------------------------------------------------
// Action constants
// ---------------------------------------------------------------------------
//
// Each constant identifies a user-triggerable editor action. A key press is
// looked up in keyToAction and the resulting action is dispatched in
// handleEditorKey; unbound keys go to the textarea.
//
// Default keys are declared in defaultActionKeys. Users override any of them
// through the "keybindings" object in ~/.mdcards/config.json.
// ---------------------------------------------------------------------------

const (
	actionUndo      = "edit.undo"
	actionRedo      = "edit.redo"
	actionSaveDraft = "draft.save"

	// Formatting toggles wrap the selection or the word at the cursor.
	actionBold     = "format.bold"
	actionItalic   = "format.italic"
	actionStrike   = "format.strike"
	actionCode     = "format.code"
	actionHeading1 = "format.heading1"
	actionHeading2 = "format.heading2"
	actionHeading3 = "format.heading3"

	actionLink  = "insert.link"
	actionTable = "insert.table"

	// actionSelectAnchor sets or clears the selection anchor at the cursor.
	actionSelectAnchor = "selection.anchor"

	actionOpen     = "file.open"
	actionExport   = "export.open"
	actionSnippets = "snippets.open"

	actionCopy  = "clipboard.copy"
	actionPaste = "clipboard.paste"

	// actionReset clears the buffer, history, and saved draft after a
	// confirmation prompt.
	actionReset = "editor.reset"

	actionPreviewScrollPageUp   = "preview.scroll.page_up"
	actionPreviewScrollPageDown = "preview.scroll.page_down"

	actionHelp = "help.toggle"
	actionQuit = "app.quit"
)

// defaultActionKeys maps each action to its factory-default key bindings.
//
// Key strings use the Bubble Tea notation:
//   - Modifier keys: "ctrl+", "alt+", "shift+"
//   - Special keys: "enter", "esc", "tab", "pgup", "pgdown", "f1"
var defaultActionKeys = map[string][]string{
	actionUndo:                  {"ctrl+z"},
	actionRedo:                  {"ctrl+y"},
	actionSaveDraft:             {"ctrl+s"},
	actionBold:                  {"ctrl+b"},
	actionItalic:                {"alt+i"},
	actionStrike:                {"alt+x"},
	actionCode:                  {"alt+c"},
	actionHeading1:              {"alt+1"},
	actionHeading2:              {"alt+2"},
	actionHeading3:              {"alt+3"},
	actionLink:                  {"alt+k"},
	actionTable:                 {"alt+t"},
	actionSelectAnchor:          {"alt+s"},
	actionOpen:                  {"ctrl+o"},
	actionExport:                {"ctrl+e"},
	actionSnippets:              {"ctrl+p"},
	actionCopy:                  {"alt+y"},
	actionPaste:                 {"ctrl+v"},
	actionReset:                 {"ctrl+r"},
	actionPreviewScrollPageUp:   {"pgup"},
	actionPreviewScrollPageDown: {"pgdown"},
	actionHelp:                  {"f1"},
	actionQuit:                  {"ctrl+c", "ctrl+q"},
}

// loadKeybindings initializes the bidirectional key↔action maps from the
// factory defaults and then the cfg.Keybindings overrides.
//
// Unknown action names in overrides are logged and ignored. An override
// replaces the action's full default key set. When two actions claim the
// same key the first one wins and the conflict is logged.
func (m *Model) loadKeybindings(cfg config.Config) {
	m.keyForAction = map[string][]string{}
	for action, keys := range defaultActionKeys {
		m.keyForAction[action] = append([]string(nil), keys...)
	}
	for action, key := range cfg.Keybindings {
		m.applyKeybindingOverride(action, key)
	}
	m.rebuildActionKeyIndex()
}

// applyKeybindingOverride replaces one action's keys.
func (m *Model) applyKeybindingOverride(action, key string) {
	action = strings.TrimSpace(action)
	key = normalizeKeyString(key)
	if action == "" || key == "" {
		return
	}
	if _, ok := defaultActionKeys[action]; !ok {
		appLog.Warn("ignore unknown keybinding action", "action", action)
		return
	}
	m.keyForAction[action] = []string{key}
}

// rebuildActionKeyIndex builds keyToAction from keyForAction. Actions are
// visited in sorted order so conflict resolution does not depend on map
// iteration.
func (m *Model) rebuildActionKeyIndex() {
	m.keyToAction = map[string]string{}
	actions := make([]string, 0, len(m.keyForAction))
	for action := range m.keyForAction {
		actions = append(actions, action)
	}
	slices.Sort(actions)
	for _, action := range actions {
		for _, key := range m.keyForAction[action] {
			if key == "" {
				continue
			}
			if existing, ok := m.keyToAction[key]; ok && existing != action {
				appLog.Warn("keybinding conflict ignored", "key", key, "action", action, "existing_action", existing)
				continue
			}
			m.keyToAction[key] = action
		}
	}
}

// normalizeKeyString converts a user-provided key string into the canonical
// lowercase form used internally by Bubble Tea and the keybinding maps.
//
// A single uppercase letter (e.g. "Y") becomes "shift+y" because Bubble Tea
// may report shifted letters as uppercase runes.
//
//	normalizeKeyString("Ctrl+P")  → "ctrl+p"
//	normalizeKeyString(" Y ")     → "shift+y"
//	normalizeKeyString("")        → ""
func normalizeKeyString(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if len([]rune(key)) == 1 && strings.ToUpper(key) == key && strings.ToLower(key) != key {
		return "shift+" + strings.ToLower(key)
	}
	return strings.ToLower(key)
}

// actionForKey looks up the action bound to key, or "".
func (m *Model) actionForKey(key string) string {
	if m.keyToAction == nil {
		return ""
	}
	return m.keyToAction[normalizeKeyString(key)]
}

func (m *Model) actionKeyLabels(action string) []string {
	keys, ok := m.keyForAction[action]
	if !ok || len(keys) == 0 {
		keys = defaultActionKeys[action]
	}
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		label := humanizeKeyLabel(key)
		if label == "" || slices.Contains(labels, label) {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

// primaryActionKey returns the first key label bound to action for hints.
func (m *Model) primaryActionKey(action string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return "unbound"
	}
	return keys[0]
}

func (m *Model) allActionKeys(action string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return "unbound"
	}
	return strings.Join(keys, ", ")
}

func humanizeKeyLabel(key string) string {
	normalized := normalizeKeyString(key)
	if normalized == "" {
		return ""
	}
	special := map[string]string{
		"up":        "↑",
		"down":      "↓",
		"left":      "←",
		"right":     "→",
		"enter":     "Enter",
		"esc":       "Esc",
		"tab":       "Tab",
		"home":      "Home",
		"end":       "End",
		"pgup":      "PgUp",
		"pgdown":    "PgDn",
		"space":     "Space",
		"backspace": "Backspace",
	}
	parts := strings.Split(normalized, "+")
	for i, part := range parts {
		switch part {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		default:
			if label, ok := special[part]; ok {
				parts[i] = label
				continue
			}
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "+")
}
