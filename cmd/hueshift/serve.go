package main

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"hueshift/internal/auth"
	"hueshift/internal/colorspace"
	"hueshift/internal/config"
	"hueshift/internal/metrics"
	"hueshift/internal/palette"
	"hueshift/internal/stats"
	"hueshift/internal/ui"
	"hueshift/internal/web"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the palette page and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default ./hueshift.yaml, .yml or .json if present)")
	return cmd
}

func runServe(parent context.Context, configPath string) error {
	// a missing .env is normal when the environment is set by the host
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	ui.SetLevel(cfg.Env.LogLevel)

	ui.EmitBanner(version, tagline, bannerAccents(cfg.Seed))

	if cfg.Env.IsDevelopment() {
		ui.LogStatus("info", "Environment: "+ui.Warn("DEVELOPMENT"))
	} else {
		ui.LogStatus("info", "Environment: "+ui.Success("PRODUCTION"))
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	logConfig(cfg)

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tracker := stats.NewTracker()
	srv, err := web.NewServer(cfg, newRand(cfg.Seed), tracker)
	if err != nil {
		return err
	}

	if cfg.MetricsEnabled() {
		var guard func(http.Handler) http.Handler
		if cfg.Env.MetricsAuthEnabled() {
			guard = auth.NewBasicAuth("hueshift metrics", cfg.Env.MetricsUser, cfg.Env.MetricsPasswordHash).Wrap
		}
		ms := metrics.NewServer(cfg.MetricsListen, guard)
		ms.Start()
		ui.LogStatus("info", "Metrics: "+metricsURL(cfg.MetricsListen))

		go func() {
			<-ctx.Done()
			ui.LogGracefulShutdown()
			if err := ms.Shutdown(context.Background()); err != nil {
				ui.LogStatus("warn", "Metrics shutdown: "+err.Error())
			}
		}()
	}

	return srv.Start(ctx)
}

func logConfig(cfg *config.Config) {
	source := cfg.Source
	if source == "" {
		source = "defaults"
	}
	rateLimit := "off"
	if cfg.RateLimitRPM > 0 {
		rateLimit = strconv.Itoa(cfg.RateLimitRPM) + "/min, burst " + strconv.Itoa(cfg.RateLimitBurst)
	}
	metricsAddr := "off"
	if cfg.MetricsEnabled() {
		metricsAddr = cfg.MetricsListen
		if cfg.Env.MetricsAuthEnabled() {
			metricsAddr += " (basic auth)"
		}
	}

	ui.LogSection("Configuration")
	ui.LogGroupItem("Source", source)
	ui.LogGroupItem("Listen", cfg.Listen)
	ui.LogGroupItem("Metrics", metricsAddr)
	ui.LogGroupItem("Rate limit", rateLimit)
	ui.LogGroupItem("Default boldness", cfg.DefaultBoldness)
	if cfg.Env.AllowedOrigin != "" {
		ui.LogGroupItem("CORS origin", cfg.Env.AllowedOrigin)
	}
	if cfg.Seed != 0 {
		ui.LogGroupItem("Seed", strconv.FormatInt(cfg.Seed, 10))
	}
}

// metricsURL turns a listen address into a browsable URL; wildcard and
// empty hosts become localhost.
func metricsURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr + "/metrics"
	}
	if host == "" || host == "::" || host == "0.0.0.0" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port) + "/metrics"
}

// bannerAccents colors the banner with a palette of its own.
func bannerAccents(seed int64) []colorspace.RGB {
	p, err := palette.NewGenerator(newRand(seed)).Initial()
	if err != nil {
		return nil
	}
	swatches, err := p.Swatches()
	if err != nil {
		return nil
	}
	accents := make([]colorspace.RGB, 0, len(swatches))
	for _, sw := range swatches {
		if rgb, err := colorspace.HexToRGB(sw.Hex); err == nil {
			accents = append(accents, rgb)
		}
	}
	return accents
}
