package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hueshift/internal/colorspace"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })
	return &buf
}

func withoutColor(t *testing.T) {
	t.Helper()
	prev, prevNo := color.NoColor, noColor
	color.NoColor, noColor = true, true
	t.Cleanup(func() { color.NoColor, noColor = prev, prevNo })
}

func TestLogStatusRespectsLevel(t *testing.T) {
	withoutColor(t)
	buf := captureOutput(t)
	t.Cleanup(func() { SetLevel("info") })

	SetLevel("warn")
	LogStatus("info", "hidden")
	LogStatus("debug", "hidden too")
	LogStatus("error", "palette render failed")
	LogStatus("warn", "rate limited")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "✖  palette render failed")
	assert.Contains(t, out, "⚠  rate limited")

	buf.Reset()
	SetLevel("debug")
	LogStatus("debug", "drawn #A1B2C3")
	assert.Contains(t, buf.String(), "drawn #A1B2C3")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}

func TestLogRequest(t *testing.T) {
	withoutColor(t)
	buf := captureOutput(t)

	LogRequest("GET", "/api/palette", 200, 1500*time.Microsecond, "req-1")
	line := buf.String()
	assert.Contains(t, line, "GET")
	assert.Contains(t, line, "/api/palette")
	assert.Contains(t, line, "200")
	assert.Contains(t, line, "req-1")
}

func TestRenderTable(t *testing.T) {
	withoutColor(t)

	out := RenderTable(
		[]TableColumn{{Header: "Role"}, {Header: "Hex", Align: AlignRight}},
		[][]string{{"primary", "#ff0000"}, {"secondary", "#00ff00"}},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)

	for _, l := range lines {
		assert.Equal(t, VisibleWidth(lines[0]), VisibleWidth(l), "ragged line %q", l)
	}
	assert.Equal(t, "| secondary | #00ff00 |", lines[4])
}

func TestRenderSimpleTableKeepsOrder(t *testing.T) {
	withoutColor(t)

	out := RenderSimpleTable([]KV{{"hex", "#ff0000"}, {"rgb", "255, 0, 0"}, {"hsl", "0, 1, 0.5"}})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[0]), "hex:"))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[2]), "hsl:"))
}

func TestFormatSwatchPlain(t *testing.T) {
	withoutColor(t)
	assert.Equal(t, " #ff0000 ", FormatSwatch(colorspace.RGB{R: 255}, " #ff0000 "))
}

func TestPerceivedBrightness(t *testing.T) {
	assert.InDelta(t, 1, perceivedBrightness(colorspace.RGB{R: 255, G: 255, B: 255}), 1e-9)
	assert.InDelta(t, 0, perceivedBrightness(colorspace.RGB{}), 1e-9)
	assert.Less(t, perceivedBrightness(colorspace.RGB{B: 255}), 0.6)
}

func TestFormatBannerArtPlain(t *testing.T) {
	withoutColor(t)

	art := FormatBannerArt([]colorspace.RGB{{R: 255}})
	rows := strings.Split(art, "\n")
	require.Len(t, rows, 5)
	for _, r := range rows {
		assert.Equal(t, VisibleWidth(rows[0]), VisibleWidth(r))
	}
	assert.Equal(t, art, StripAnsi(art))
}

func TestStripAnsi(t *testing.T) {
	assert.Equal(t, "hello", StripAnsi("\x1b[31mhello\x1b[0m"))
	assert.Equal(t, 5, VisibleWidth("\x1b[1;32mhello\x1b[0m"))
	assert.Equal(t, "ab   ", PadRight("ab", 5))
}

func TestNoteBoxIsRectangular(t *testing.T) {
	withoutColor(t)
	buf := captureOutput(t)

	ErrorNote("config validation failed:\n  - listen address is required")
	lines := strings.Split(strings.Trim(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	for _, l := range lines {
		assert.Equal(t, VisibleWidth(lines[0]), VisibleWidth(l), "ragged line %q", l)
	}
}
