package ui

import (
	"fmt"
	"strings"
)

// Note prints message inside a titled box, one box row per line.
func Note(message, title string) {
	lines := strings.Split(message, "\n")

	width := VisibleWidth(title) + 4
	for _, line := range lines {
		if w := VisibleWidth(line) + 2; w > width {
			width = w
		}
	}

	styledTitle := title
	if IsRich() {
		styledTitle = Heading("%s", title)
	}

	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s%s %s %s%s\n",
		Muted(boxTopLeft),
		Muted("%s", strings.Repeat(boxHorizontal, 2)),
		styledTitle,
		Muted("%s", strings.Repeat(boxHorizontal, width-4-VisibleWidth(title))),
		Muted(boxTopRight))
	for _, line := range lines {
		fmt.Fprintf(&b, "%s %s%s %s\n",
			Muted(boxVertical),
			line,
			spaces(width-VisibleWidth(line)-2),
			Muted(boxVertical))
	}
	fmt.Fprintf(&b, "%s\n\n", Muted("%s", boxBottomLeft+strings.Repeat(boxHorizontal, width)+boxBottomRight))

	emit("%s", b.String())
}

// ErrorNote displays an error-styled note
func ErrorNote(message string) {
	Note(message, "✗ Error")
}
