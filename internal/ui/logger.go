package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	clrDim    = color.New(color.FgHiBlack)
	clrSubtle = color.New(color.FgWhite)

	clrPrimary   = color.New(color.FgMagenta, color.Bold)
	clrSecondary = color.New(color.FgCyan)
	clrAccent    = color.New(color.FgCyan, color.Bold)

	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrWarning = color.New(color.FgYellow)
	clrInfo    = color.New(color.FgBlue)
)

// Box-drawing characters
const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

// Level orders log categories; lines below the configured level are dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	outMu sync.Mutex
	out   io.Writer = os.Stdout
	level           = LevelInfo
)

// SetOutput redirects all log lines. Tests use it to capture output.
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	out = w
}

// SetLevel sets the minimum level from a LOG_LEVEL string
// (debug, info, warn, error). Unknown values select info.
func SetLevel(name string) {
	outMu.Lock()
	defer outMu.Unlock()
	level = ParseLevel(name)
}

// ParseLevel maps a LOG_LEVEL string to a Level.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	}
	return LevelInfo
}

func categoryLevel(category string) Level {
	switch category {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	}
	return LevelInfo
}

func emit(format string, a ...interface{}) {
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(out, format, a...)
}

func enabled(l Level) bool {
	outMu.Lock()
	defer outMu.Unlock()
	return l >= level
}

func timestamp() string {
	return clrDim.Sprint(time.Now().Format("15:04:05"))
}

// LogStatus displays a status message with appropriate styling
func LogStatus(category, message string) {
	if !enabled(categoryLevel(category)) {
		return
	}

	var icon string
	var styledMsg string

	switch category {
	case "success":
		icon = clrSuccess.Sprint("✔")
		styledMsg = clrSuccess.Sprint(message)
	case "error":
		icon = clrError.Sprint("✖")
		styledMsg = clrError.Sprint(message)
	case "warn", "warning":
		icon = clrWarning.Sprint("⚠")
		styledMsg = clrWarning.Sprint(message)
	case "info":
		icon = clrInfo.Sprint("ℹ")
		styledMsg = clrSubtle.Sprint(message)
	case "debug":
		icon = clrDim.Sprint("·")
		styledMsg = clrDim.Sprint(message)
	default:
		icon = clrDim.Sprint("●")
		styledMsg = clrSubtle.Sprint(message)
	}

	emit("%s  %s  %s\n", timestamp(), icon, styledMsg)
}

// LogRequest prints one access-log line for an HTTP request.
func LogRequest(method, path string, status int, elapsed time.Duration, requestID string) {
	if !enabled(LevelInfo) {
		return
	}

	statusClr := clrSuccess
	switch {
	case status >= 500:
		statusClr = clrError
	case status >= 400:
		statusClr = clrWarning
	}

	emit("%s  %s  %s %s  %s  %s  %s\n",
		timestamp(),
		clrSecondary.Sprint("→"),
		clrAccent.Sprintf("%-6s", method),
		clrSubtle.Sprintf("%-24s", path),
		statusClr.Sprintf("%d", status),
		clrDim.Sprintf("%8s", elapsed.Round(time.Microsecond)),
		clrDim.Sprint(requestID))
}

// LogSection creates a section header
func LogSection(title string) {
	pad := 50 - len(title)
	if pad < 0 {
		pad = 0
	}
	emit("\n%s %s %s\n",
		clrDim.Sprint("──"),
		clrAccent.Sprint(title),
		clrDim.Sprint(strings.Repeat("─", pad)))
}

// LogGroupItem logs a label/value pair
func LogGroupItem(label, value string) {
	emit("%s  %s %s\n",
		clrDim.Sprint(boxVertical),
		clrDim.Sprint(label+":"),
		clrAccent.Sprint(value))
}

// LogGracefulShutdown announces that servers are stopping.
func LogGracefulShutdown() {
	LogStatus("warn", "Shutdown signal received, stopping servers...")
}
