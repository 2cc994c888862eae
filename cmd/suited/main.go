package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"suited/internal/config"
	"suited/internal/coordinator"
	"suited/internal/httpapi"
	"suited/internal/loader"
)

func main() {
	// Flags with environment variable defaults. An empty addr lets a config
	// file supply it; the fallback is :8080.
	addr := flag.String("addr", os.Getenv("SUITED_ADDR"), "HTTP listen address, e.g. :8080")
	configPath := flag.String("config", os.Getenv("SUITED_CONFIG"), "Optional config file (.yaml/.json/.toml); flags override it")
	manifestPath := flag.String("manifest", "", "Suite manifest file registered at startup")
	budgetMB := flag.Int("memory-budget-mb", 0, "Memory budget in MB for all suites (0=unlimited)")
	cacheCapacity := flag.Int("cache-capacity", 0, "Max concurrently-active suites (0=default)")
	logLevel := flag.String("log-level", "", "Log level: debug|info|warn|error (default info)")
	corsEnabled := flag.Bool("cors-enabled", false, "Enable CORS middleware")
	corsOrigins := flag.String("cors-origins", "*", "Comma-separated allowed CORS origins")
	flag.Parse()

	cfg := config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			boot := zerolog.New(os.Stderr)
			boot.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
		}
		cfg = loaded
	}
	applyFlagOverrides(&cfg, *addr, *manifestPath, *budgetMB, *cacheCapacity, *logLevel)

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Str("service", "suited").Logger()

	fs := loader.NewFS(log.With().Str("component", "loader").Logger())
	coord := coordinator.NewWithConfig(coordinator.Config{
		Loader:        fs,
		Estimator:     loader.NewWeightedEstimator(nil),
		Scorer:        loader.AffinityScorer{},
		BudgetBytes:   uint64(cfg.MemoryBudgetMB) * 1024 * 1024,
		CacheCapacity: cfg.CacheCapacity,
		Logger:        &log,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.ManifestPath != "" {
		suites, err := config.LoadManifest(cfg.ManifestPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.ManifestPath).Msg("failed to load suite manifest")
		}
		for _, s := range suites {
			if err := coord.RegisterSuite(ctx, s); err != nil {
				log.Fatal().Err(err).Str("suite", s.Name).Msg("manifest suite rejected")
			}
		}
		log.Info().Int("suites", len(suites)).Msg("manifest suites registered")
	}

	httpapi.SetLogger(log.With().Str("component", "httpapi").Logger())
	httpapi.SetBaseContext(ctx)
	httpapi.SetCORSOptions(*corsEnabled, splitCSV(*corsOrigins), []string{"GET", "POST", "OPTIONS"}, []string{"Accept", "Content-Type"})

	mux := httpapi.NewMux(coord)
	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("suited listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cancel() // cancels in-flight loads through the base context
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown error")
	}
	if _, err := coord.Cleanup(context.Background()); err != nil {
		log.Warn().Err(err).Msg("cleanup on shutdown failed")
	}
}

// applyFlagOverrides layers non-zero flag values over the file config and
// fills remaining defaults.
func applyFlagOverrides(cfg *config.Config, addr, manifest string, budgetMB, capacity int, logLevel string) {
	if addr != "" {
		cfg.Addr = addr
	}
	if manifest != "" {
		cfg.ManifestPath = manifest
	}
	if budgetMB > 0 {
		cfg.MemoryBudgetMB = budgetMB
	}
	if capacity > 0 {
		cfg.CacheCapacity = capacity
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// splitCSV splits a comma-separated flag value, trimming whitespace and
// dropping empty entries.
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
