package display

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	defaultBackground = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	defaultText       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// ParseColor converts a hex string such as "#1a1a1a" to a color. Invalid
// input yields fallback; the string itself is left untouched in settings.
func ParseColor(hex string, fallback color.Color) color.Color {
	parsed, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	r, g, b := parsed.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// HexString formats a color as "#rrggbb".
func HexString(value color.Color) string {
	converted, ok := colorful.MakeColor(value)
	if !ok {
		return "#000000"
	}
	return converted.Hex()
}

// BackgroundColor parses a background setting.
func BackgroundColor(hex string) color.Color {
	return ParseColor(hex, defaultBackground)
}

// TextColor parses a text color setting.
func TextColor(hex string) color.Color {
	return ParseColor(hex, defaultText)
}
