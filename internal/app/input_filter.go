package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Terminals answer background-color queries (OSC 11) on stdin. Bubble Tea
// can surface those replies as rune input, which would otherwise be typed
// into the document.

func isOSCBackgroundResponse(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes {
		return false
	}
	sequence := msg.String()
	if sequence == "" {
		return false
	}
	sequence = trimOSCSequenceSuffix(sequence)
	if !strings.Contains(sequence, "rgb:") {
		return false
	}
	if !strings.Contains(sequence, "\x1b") &&
		!strings.Contains(sequence, "11;rgb:") &&
		!strings.Contains(sequence, "1;rgb:") {
		return false
	}
	return hasRGBTriple(sequence)
}

func (m *Model) shouldIgnoreInput(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || msg.Paste {
		return false
	}
	if isOSCBackgroundResponse(msg) || containsControlRunes(msg.String()) {
		if m.debugInput {
			m.status = fmt.Sprintf("Ignored input: %q", msg.String())
		}
		return true
	}
	return false
}

func trimOSCSequenceSuffix(sequence string) string {
	for _, suffix := range []string{"\x1b\\", "\a", "\\", "\x1b"} {
		if strings.HasSuffix(sequence, suffix) {
			return strings.TrimSuffix(sequence, suffix)
		}
	}
	return sequence
}

func containsControlRunes(sequence string) bool {
	for _, r := range sequence {
		switch {
		case r == '\n' || r == '\t':
			continue
		case r < 32 || r == 127:
			return true
		}
	}
	return false
}

func isHex(value string) bool {
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func hasRGBTriple(sequence string) bool {
	index := strings.Index(sequence, "rgb:")
	if index == -1 {
		return false
	}
	tail := sequence[index+len("rgb:"):]
	for i := 0; i < 3; i++ {
		component, rest, ok := readHexComponent(tail)
		if !ok {
			return false
		}
		if len(component) < 4 || !isHex(component[:4]) {
			return false
		}
		if i < 2 {
			if rest == "" || rest[0] != '/' {
				return false
			}
			tail = rest[1:]
		} else {
			tail = rest
		}
	}
	return true
}

func readHexComponent(sequence string) (string, string, bool) {
	end := 0
	for end < len(sequence) && isHex(sequence[end:end+1]) {
		end++
	}
	if end == 0 {
		return "", "", false
	}
	return sequence[:end], sequence[end:], true
}
