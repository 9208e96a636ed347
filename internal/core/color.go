package core

import "strings"

// Color represents a foreground color for a screen cell.
// The terminal host maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorOlive
	ColorLavender
	ColorAqua
	ColorGray
)

var colorNames = map[string]Color{
	"default":  ColorDefault,
	"red":      ColorRed,
	"green":    ColorGreen,
	"yellow":   ColorYellow,
	"blue":     ColorBlue,
	"magenta":  ColorMagenta,
	"cyan":     ColorCyan,
	"white":    ColorWhite,
	"orange":   ColorOrange,
	"olive":    ColorOlive,
	"lavender": ColorLavender,
	"aqua":     ColorAqua,
	"gray":     ColorGray,
	"grey":     ColorGray,
}

// ParseColor converts a color name from a level file into a Color.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// String returns the canonical name of the color.
func (c Color) String() string {
	for name, v := range colorNames {
		if v == c && name != "grey" {
			return name
		}
	}
	return "default"
}
