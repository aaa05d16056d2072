package export

import (
	"strings"

	"github.com/treykane/md-cards/internal/contrast"
)

const (
	fallbackBackground = "#ffffff"
	fallbackText       = "#333333"
)

// Theme is a named card color scheme. Colors are kept as written so a
// malformed palette entry degrades to the fallback instead of failing.
type Theme struct {
	Name       string
	Label      string
	Background string
	Text       string
}

// ResolvedTheme is a theme after parsing and contrast correction.
type ResolvedTheme struct {
	Theme
	BackgroundColor contrast.Color
	TextColor       contrast.Color
	// Adjusted is true when the background was moved to improve contrast.
	Adjusted bool
	// Ratio is the contrast ratio of the final background and text.
	Ratio float64
}

// Themes lists the built-in palettes in picker order. The first entry is the
// default.
var Themes = []Theme{
	{Name: "classic", Label: "Classic", Background: "#ffffff", Text: "#333333"},
	{Name: "paper", Label: "Paper", Background: "#f5f0e6", Text: "#4a4036"},
	{Name: "mint", Label: "Mint", Background: "#e0f2e9", Text: "#2f4f3f"},
	{Name: "sky", Label: "Sky", Background: "#88aaff", Text: "#ffffff"},
	{Name: "rose", Label: "Rose", Background: "#f4c2c2", Text: "#ffffff"},
	{Name: "slate", Label: "Slate", Background: "#2e3440", Text: "#d8dee9"},
	{Name: "night", Label: "Night", Background: "#1e1e2e", Text: "#cdd6f4"},
	{Name: "forest", Label: "Forest", Background: "#2d4a3e", Text: "#e8f0e8"},
}

// LookupTheme finds a theme by case-insensitive name. Unknown names return
// the default theme and false.
func LookupTheme(name string) (Theme, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, theme := range Themes {
		if theme.Name == name {
			return theme, true
		}
	}
	return Themes[0], false
}

// Resolve parses the theme colors and corrects the background once with
// contrast.AdjustBackground when the pair is not accessible.
func (t Theme) Resolve() ResolvedTheme {
	bg, ok := contrast.ParseColor(t.Background)
	if !ok {
		log.Warn("invalid theme background, using fallback", "theme", t.Name, "value", t.Background)
		bg = contrast.MustParse(fallbackBackground)
	}
	text, ok := contrast.ParseColor(t.Text)
	if !ok {
		log.Warn("invalid theme text color, using fallback", "theme", t.Name, "value", t.Text)
		text = contrast.MustParse(fallbackText)
	}

	adjusted := contrast.AdjustBackground(bg, text)
	return ResolvedTheme{
		Theme:           t,
		BackgroundColor: adjusted,
		TextColor:       text,
		Adjusted:        adjusted != bg,
		Ratio:           contrast.ContrastRatio(adjusted, text),
	}
}

// Accessible reports whether the resolved pair meets the WCAG AA ratio.
func (r ResolvedTheme) Accessible() bool {
	return contrast.IsAccessible(r.BackgroundColor, r.TextColor)
}

// MutedText returns the secondary text color used for card footers.
func (r ResolvedTheme) MutedText() string {
	return contrast.TextColorFor(r.BackgroundColor.Hex())
}
