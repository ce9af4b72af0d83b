package ui

import (
	"fmt"
	"strings"
)

// Align type for table column alignment
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// TableColumn defines a column in a table
type TableColumn struct {
	Header string
	Align  Align
}

type boxChars struct {
	tl, tr, bl, br  string
	h, v            string
	t, ml, m, mr, b string
}

var (
	unicodeBox = boxChars{
		tl: "┌", tr: "┐", bl: "└", br: "┘",
		h: "─", v: "│",
		t: "┬", ml: "├", m: "┼", mr: "┤", b: "┴",
	}
	asciiBox = boxChars{
		tl: "+", tr: "+", bl: "+", br: "+",
		h: "-", v: "|",
		t: "+", ml: "+", m: "+", mr: "+", b: "+",
	}
)

// RenderTable renders rows under columns with one space of padding. Cells
// may carry ANSI styling; widths are measured on visible runes. ASCII
// borders are used when color output is off.
func RenderTable(columns []TableColumn, rows [][]string) string {
	box := unicodeBox
	if !IsRich() {
		box = asciiBox
	}

	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = VisibleWidth(col.Header)
		for _, row := range rows {
			if i < len(row) && VisibleWidth(row[i]) > widths[i] {
				widths[i] = VisibleWidth(row[i])
			}
		}
	}

	rule := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat(box.h, w+2)
		}
		return left + strings.Join(parts, mid) + right
	}

	line := func(cells []string) string {
		parts := make([]string, len(columns))
		for i, col := range columns {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := spaces(widths[i] - VisibleWidth(cell))
			if col.Align == AlignRight {
				cell = pad + cell
			} else {
				cell += pad
			}
			parts[i] = " " + cell + " "
		}
		return box.v + strings.Join(parts, box.v) + box.v
	}

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}

	lines := []string{rule(box.tl, box.t, box.tr), line(headers), rule(box.ml, box.m, box.mr)}
	for _, row := range rows {
		lines = append(lines, line(row))
	}
	lines = append(lines, rule(box.bl, box.b, box.br))

	return strings.Join(lines, "\n") + "\n"
}

// KV is one row of a key/value table.
type KV struct {
	Key   string
	Value string
}

// RenderSimpleTable renders aligned key/value rows in the given order.
func RenderSimpleTable(rows []KV) string {
	maxKey := 0
	for _, kv := range rows {
		if len(kv.Key) > maxKey {
			maxKey = len(kv.Key)
		}
	}

	lines := make([]string, 0, len(rows))
	for _, kv := range rows {
		lines = append(lines, fmt.Sprintf("  %s  %s",
			Muted("%s", PadRight(kv.Key+":", maxKey+1)),
			Subtle("%s", kv.Value)))
	}

	return strings.Join(lines, "\n")
}
