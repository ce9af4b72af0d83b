// Package metrics defines the Prometheus collectors and the listener that
// exposes them.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hueshift/internal/ui"
)

var (
	// PalettesTotal counts generated palettes by scheme and warmth
	PalettesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hueshift_palettes_total",
		Help: "Total palettes generated by scheme and warmth",
	}, []string{"scheme", "warmth"})

	// ConversionsTotal counts /api/convert calls by outcome
	ConversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hueshift_conversions_total",
		Help: "Total color conversions by outcome",
	}, []string{"outcome"})

	// ErrorsTotal counts errors by type
	ErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hueshift_errors_total",
		Help: "Total errors by type",
	}, []string{"type"})

	// ClipboardFailures counts copy-to-clipboard failures reported by pages
	ClipboardFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hueshift_clipboard_failures_total",
		Help: "Copy-to-clipboard failures reported by browsers",
	})

	// RateLimited counts requests rejected by the per-client limiter
	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hueshift_rate_limited_total",
		Help: "Total requests rejected by the rate limiter",
	})

	// RequestDuration tracks HTTP handler latency by route and status class
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hueshift_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5},
	}, []string{"route", "code"})
)

// Server wraps the HTTP server for prometheus metrics
type Server struct {
	server *http.Server
}

// NewServer creates a metrics server on addr. guard, when non-nil, wraps
// the /metrics handler (basic auth).
func NewServer(addr string, guard func(http.Handler) http.Handler) *Server {
	var h http.Handler = promhttp.Handler()
	if guard != nil {
		h = guard(h)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", h)

	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler returns the server's mux (used by tests).
func (m *Server) Handler() http.Handler {
	return m.server.Handler
}

// Start begins serving metrics (non-blocking)
func (m *Server) Start() {
	go func() {
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			ui.LogStatus("error", "Metrics server error: "+err.Error())
		}
	}()
}

// Shutdown gracefully stops the metrics server
func (m *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.server.Shutdown(shutdownCtx)
}
