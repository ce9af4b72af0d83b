package ui

import (
	"github.com/fatih/color"

	"hueshift/internal/colorspace"
)

// FormatSwatch paints text on a truecolor background of c, picking black
// or white foreground by perceived brightness. Plain text is returned when
// color output is disabled.
func FormatSwatch(c colorspace.RGB, text string) string {
	if !IsRich() {
		return text
	}

	fg := color.FgWhite
	if perceivedBrightness(c) > 0.6 {
		fg = color.FgBlack
	}
	return color.BgRGB(c.R, c.G, c.B).Add(fg).Sprint(text)
}

// perceivedBrightness is the Rec. 601 luma of c in [0, 1].
func perceivedBrightness(c colorspace.RGB) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}
