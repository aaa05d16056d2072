// Package contrast implements the WCAG contrast checks used when picking card
// color themes, plus a single-step background correction for themes that
// fall short.
//
// Two luminance formulas live here on purpose. RelativeLuminance is the WCAG
// definition and drives every ratio check. PerceivedLuminance is the cheaper
// weighted sum that only decides which direction AdjustBackground moves the
// background lightness.
package contrast

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// AccessibleRatio is the WCAG AA threshold for normal body text.
const AccessibleRatio = 4.5

const (
	lightnessStep = 15
	minLightness  = 10
	maxLightness  = 90
)

// Color is a 24-bit sRGB color.
type Color struct {
	R, G, B uint8
}

// HSL is a color in hue/saturation/lightness form, rounded to whole degrees
// and whole percentage points.
type HSL struct {
	H int // degrees, [0, 360)
	S int // percent, [0, 100]
	L int // percent, [0, 100]
}

// ParseColor parses "#RGB" or "#RRGGBB". The leading hash is optional and hex
// digits are case-insensitive. ok is false for any other shape, including
// alpha forms and named colors, so callers can tell malformed input apart
// from black.
func ParseColor(value string) (c Color, ok bool) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if !isHex(hex) {
		return Color{}, false
	}
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, false
	}
	parsed, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return Color{}, false
	}
	r, g, b := parsed.RGB255()
	return Color{R: r, G: g, B: b}, true
}

// MustParse is ParseColor for package-level palettes; it panics on bad input.
func MustParse(value string) Color {
	c, ok := ParseColor(value)
	if !ok {
		panic(fmt.Sprintf("contrast: invalid color %q", value))
	}
	return c
}

// Hex formats the color as lowercase "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// HSL converts the color to rounded hue/saturation/lightness.
func (c Color) HSL() HSL {
	h, s, l := c.toColorful().Hsl()
	hue := int(math.Round(h)) % 360
	if hue < 0 {
		hue += 360
	}
	return HSL{
		H: hue,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// FromHSL converts rounded hue/saturation/lightness back to a Color.
func FromHSL(v HSL) Color {
	rgb := colorful.Hsl(float64(v.H), float64(v.S)/100, float64(v.L)/100).Clamped()
	r, g, b := rgb.RGB255()
	return Color{R: r, G: g, B: b}
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// RelativeLuminance returns the WCAG relative luminance of c in [0, 1].
func RelativeLuminance(c Color) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(channel uint8) float64 {
	v := float64(channel) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// PerceivedLuminance returns the weighted brightness (0.299R + 0.587G +
// 0.114B) / 255. It is not the WCAG luminance.
func PerceivedLuminance(c Color) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// ContrastRatio returns the WCAG contrast ratio between two colors. The
// result is symmetric and always >= 1.
func ContrastRatio(a, b Color) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	return (math.Max(la, lb) + 0.05) / (math.Min(la, lb) + 0.05)
}

// IsAccessible reports whether text on background meets AccessibleRatio.
func IsAccessible(background, text Color) bool {
	return ContrastRatio(background, text) >= AccessibleRatio
}

// AdjustBackground moves the background lightness one step toward better
// contrast with text, keeping hue and saturation. Accessible pairs are
// returned unchanged. The result is not guaranteed to reach AccessibleRatio.
func AdjustBackground(background, text Color) Color {
	if IsAccessible(background, text) {
		return background
	}
	hsl := background.HSL()
	if PerceivedLuminance(text) > 0.5 {
		// Light text: darken the background.
		hsl.L = max(minLightness, hsl.L-lightnessStep)
	} else {
		hsl.L = min(maxLightness, hsl.L+lightnessStep)
	}
	return FromHSL(hsl)
}

// TextColorFor returns a muted text color that reads on the given
// background: dark gray on light backgrounds, light gray on dark ones, and a
// neutral gray when the background cannot be parsed.
func TextColorFor(background string) string {
	c, ok := ParseColor(background)
	if !ok {
		return "#999999"
	}
	if PerceivedLuminance(c) > 0.5 {
		return "#666666"
	}
	return "#CCCCCC"
}

func isHex(value string) bool {
	if value == "" {
		return false
	}
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
