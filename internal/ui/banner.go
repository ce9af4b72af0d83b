package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"hueshift/internal/colorspace"
)

const bannerWord = "HUESHIFT"

// five-row block glyphs for the banner word
var glyphs = map[rune][5]string{
	'H': {"█  █", "█  █", "████", "█  █", "█  █"},
	'U': {"█  █", "█  █", "█  █", "█  █", "████"},
	'E': {"████", "█   ", "███ ", "█   ", "████"},
	'S': {"████", "█   ", "████", "   █", "████"},
	'I': {"███", " █ ", " █ ", " █ ", "███"},
	'F': {"████", "█   ", "███ ", "█   ", "█   "},
	'T': {"█████", "  █  ", "  █  ", "  █  ", "  █  "},
}

var bannerEmitted = false

// FormatBannerArt renders the banner word, cycling each letter through
// accents. Without accents or rich output the art is plain.
func FormatBannerArt(accents []colorspace.RGB) string {
	rich := IsRich() && len(accents) > 0

	var rows [5]strings.Builder
	for i, ch := range bannerWord {
		g := glyphs[ch]
		var paint *color.Color
		if rich {
			c := accents[i%len(accents)]
			paint = color.RGB(c.R, c.G, c.B).Add(color.Bold)
		}
		for r := range rows {
			if i > 0 {
				rows[r].WriteString(" ")
			}
			if paint != nil {
				rows[r].WriteString(paint.Sprint(g[r]))
			} else {
				rows[r].WriteString(g[r])
			}
		}
	}

	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}

// FormatBannerLine returns the version/tagline line
func FormatBannerLine(version, tagline string) string {
	title := "◆ HUESHIFT"
	if IsRich() {
		return fmt.Sprintf("%s %s %s %s",
			Heading("%s", title),
			Muted("%s", version),
			Muted("—"),
			Subtle("%s", tagline))
	}
	return fmt.Sprintf("%s %s — %s", title, version, tagline)
}

// EmitBanner displays the banner once when stdout is a terminal.
func EmitBanner(version, tagline string, accents []colorspace.RGB) {
	if bannerEmitted || !isTTY() {
		return
	}

	emit("\n%s\n\n%s\n\n", FormatBannerArt(accents), FormatBannerLine(version, tagline))
	bannerEmitted = true
}

// isTTY checks if stdout is a terminal
func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
