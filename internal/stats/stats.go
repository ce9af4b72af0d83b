// Package stats keeps process-lifetime counters for the /api/stats endpoint.
package stats

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// Tracker tracks server statistics. The zero value is not usable; call
// NewTracker.
type Tracker struct {
	startTime time.Time

	palettes          atomic.Int64
	conversions       atomic.Int64
	errors            atomic.Int64
	clipboardFailures atomic.Int64
	rateLimited       atomic.Int64
}

// Snapshot is the JSON response for /api/stats
type Snapshot struct {
	UptimeSeconds     int64   `json:"uptimeSeconds"`
	Palettes          int64   `json:"palettes"`
	Conversions       int64   `json:"conversions"`
	Errors            int64   `json:"errors"`
	ClipboardFailures int64   `json:"clipboardFailures"`
	RateLimited       int64   `json:"rateLimited"`
	SuccessRate       float64 `json:"successRate"`
}

// NewTracker starts the uptime clock now.
func NewTracker() *Tracker {
	return &Tracker{startTime: time.Now()}
}

func (s *Tracker) RecordPalette()          { s.palettes.Add(1) }
func (s *Tracker) RecordConversion()       { s.conversions.Add(1) }
func (s *Tracker) RecordError()            { s.errors.Add(1) }
func (s *Tracker) RecordClipboardFailure() { s.clipboardFailures.Add(1) }
func (s *Tracker) RecordRateLimited()      { s.rateLimited.Add(1) }

// SuccessRate is the percentage of palette and conversion requests that
// did not end in an error.
func (s *Tracker) SuccessRate() float64 {
	ok := s.palettes.Load() + s.conversions.Load()
	failed := s.errors.Load()

	total := ok + failed
	if total == 0 {
		return 100.0
	}
	return float64(ok) / float64(total) * 100.0
}

// Snapshot returns the current counters.
func (s *Tracker) Snapshot() Snapshot {
	return Snapshot{
		UptimeSeconds:     int64(time.Since(s.startTime).Seconds()),
		Palettes:          s.palettes.Load(),
		Conversions:       s.conversions.Load(),
		Errors:            s.errors.Load(),
		ClipboardFailures: s.clipboardFailures.Load(),
		RateLimited:       s.rateLimited.Load(),
		SuccessRate:       s.SuccessRate(),
	}
}

// Handler serves the snapshot as JSON.
func (s *Tracker) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		json.NewEncoder(w).Encode(s.Snapshot())
	}
}
