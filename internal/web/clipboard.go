package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"hueshift/internal/metrics"
	"hueshift/internal/ui"
)

// ErrClipboardUnavailable marks a copy the browser refused or could not
// perform. It is logged and counted, never shown to the user.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

const maxClipboardReport = 4 << 10

// ClipboardReport is what the page posts after each copy attempt.
type ClipboardReport struct {
	Text  string `json:"text"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Err returns nil for a successful copy.
func (c ClipboardReport) Err() error {
	if c.OK {
		return nil
	}
	reason := c.Error
	if reason == "" {
		reason = "unknown reason"
	}
	return fmt.Errorf("%w: copying %q: %s", ErrClipboardUnavailable, c.Text, reason)
}

func (s *Server) handleClipboard(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxClipboardReport)

	var report ClipboardReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		s.fail(w, "bad_request", http.StatusBadRequest, fmt.Errorf("malformed clipboard report: %w", err))
		return
	}

	if err := report.Err(); err != nil {
		metrics.ClipboardFailures.Inc()
		s.stats.RecordClipboardFailure()
		ui.LogStatus("warn", err.Error()+" ["+RequestID(r.Context())+"]")
	} else {
		ui.LogStatus("debug", "Copied "+report.Text)
	}
	w.WriteHeader(http.StatusNoContent)
}
