// Package web serves the palette page and its JSON API.
package web

import (
	"context"
	"errors"
	"html/template"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"hueshift/internal/auth"
	"hueshift/internal/colorspace"
	"hueshift/internal/config"
	"hueshift/internal/palette"
	"hueshift/internal/stats"
	"hueshift/internal/ui"
)

// Server owns the HTTP listener and the palette generator.
type Server struct {
	cfg     *config.Config
	stats   *stats.Tracker
	limiter *auth.RateLimiter
	page    *template.Template

	// the generator's random source is not goroutine-safe
	genMu sync.Mutex
	gen   *palette.Generator

	defaultBoldness palette.Boldness

	mu  sync.Mutex
	srv *http.Server
	ln  net.Listener
}

// NewServer builds a server drawing randomness from rng.
func NewServer(cfg *config.Config, rng colorspace.Rand, tracker *stats.Tracker) (*Server, error) {
	boldness, err := palette.ParseBoldness(cfg.DefaultBoldness)
	if err != nil {
		return nil, err
	}

	page, err := parsePage()
	if err != nil {
		return nil, err
	}

	if tracker == nil {
		tracker = stats.NewTracker()
	}

	return &Server{
		cfg:             cfg,
		stats:           tracker,
		limiter:         auth.NewRateLimiter(cfg.RateLimitRPM, cfg.RateLimitBurst),
		page:            page,
		gen:             palette.NewGenerator(rng),
		defaultBoldness: boldness,
	}, nil
}

// Handler returns the full middleware-wrapped router.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", assetHandler()))
	mux.HandleFunc("GET /api/palette", s.handlePalette)
	mux.HandleFunc("GET /api/convert", s.handleConvert)
	mux.HandleFunc("POST /api/clipboard", s.handleClipboard)
	mux.HandleFunc("GET /api/stats", s.stats.Handler())
	mux.HandleFunc("GET /healthz", s.handleHealth)

	var h http.Handler = mux
	h = s.rateLimit(h)
	h = s.cors(h)
	h = s.accessLog(h)
	h = requestID(h)
	return h
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: time.Duration(s.cfg.ReadTimeoutSec) * time.Second,
		ReadTimeout:       time.Duration(s.cfg.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(s.cfg.WriteTimeoutSec) * time.Second,
	}

	s.mu.Lock()
	s.srv, s.ln = srv, ln
	s.mu.Unlock()

	go s.pruneLimiter(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	ui.LogStatus("success", "Serving palettes on http://"+displayAddr(ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := time.Duration(s.cfg.ShutdownTimeoutSec) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		ui.LogStatus("warn", "Drain timeout reached. Forcing shutdown.")
		return srv.Close()
	}
	ui.LogStatus("success", "Web server stopped. Goodbye.")
	return nil
}

// Addr returns the bound listener address, or "" before Serve.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

func (s *Server) pruneLimiter(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := s.limiter.Prune(now); n > 0 {
				ui.LogStatus("debug", "Pruned idle rate limit buckets: "+strconv.Itoa(n))
			}
		}
	}
}

// initialPalette runs the page-load path under the generator lock.
func (s *Server) initialPalette() (palette.Palette, error) {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	return s.gen.Initial()
}

func (s *Server) generatePalette(p palette.Params) (palette.Palette, error) {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	return s.gen.Generate(p)
}

func displayAddr(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "::" || host == "0.0.0.0" {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}
