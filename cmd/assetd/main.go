package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"assetd/internal/assets"
	"assetd/internal/bundle"
	"assetd/internal/config"
	"assetd/internal/frontend"
	"assetd/internal/httpapi"
	"assetd/internal/registry"
	"assetd/internal/watch"
)

func main() {
	// Flags with environment variable defaults
	defaultAddr := ":8080"
	if v := os.Getenv("ASSETD_ADDR"); v != "" {
		defaultAddr = v
	}
	defaultBundles := "~/assets/bundles"
	if v := os.Getenv("ASSETD_BUNDLES_DIR"); v != "" {
		defaultBundles = v
	}
	addr := pflag.String("addr", defaultAddr, "HTTP listen address, e.g. :8080")
	bundlesDir := pflag.String("bundles-dir", defaultBundles, "Directory to scan for bundle subdirectories")
	cfgPath := pflag.String("config", "", "Optional config file (yaml/json/toml); flags override it")
	logLevel := pflag.String("log-level", "info", "Log level: debug|info|warn|error")
	watchDir := pflag.Bool("watch", false, "Reload bundles when the bundles directory changes")
	corsOrigins := pflag.String("cors-origins", "", "Comma-separated allowed CORS origins (empty disables CORS)")
	pflag.Parse()

	var cfg config.Config
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			l := zerolog.New(os.Stderr)
			l.Fatal().Err(err).Msg("failed to load config")
		}
	}
	// Explicitly-set flags (and flag defaults over an absent file) win.
	if cfg.Addr == "" || pflag.CommandLine.Changed("addr") {
		cfg.Addr = *addr
	}
	if cfg.BundlesDir == "" || pflag.CommandLine.Changed("bundles-dir") {
		cfg.BundlesDir = *bundlesDir
	}
	if cfg.LogLevel == "" || pflag.CommandLine.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}
	if pflag.CommandLine.Changed("watch") {
		cfg.Watch = *watchDir
	}
	if pflag.CommandLine.Changed("cors-origins") {
		cfg.CORSEnabled = *corsOrigins != ""
		cfg.CORSOrigins = splitCSV(*corsOrigins)
	}

	log := newLogger(cfg.LogLevel)

	// Discover and load bundles in deterministic order; scan order is
	// resolution priority.
	infos, err := registry.LoadDir(cfg.BundlesDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.BundlesDir).Msg("failed to scan bundles dir")
	}
	fe := frontend.New()
	mgr := assets.New(fe, &log)
	for _, info := range infos {
		if mgr.LoadBundle(bundle.NewFolder(info.Path), 0) {
			log.Info().Str("bundle", info.ID).Str("path", info.Path).Msg("bundle loaded")
		} else {
			log.Warn().Str("bundle", info.ID).Str("path", info.Path).Msg("bundle rejected")
		}
	}
	mgr.Activate(fe, &log)
	svc := assets.Guard(mgr)

	var watcher *watch.Watcher
	if cfg.Watch {
		w, err := watch.New(cfg.BundlesDir, svc, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start watcher")
		}
		w.Start()
		watcher = w
	}

	httpapi.SetLogger(log)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins)
	mux := httpapi.NewMux(svc)
	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	go func() {
		log.Info().Str("addr", cfg.Addr).Str("bundles_dir", cfg.BundlesDir).Int("bundles", mgr.BundleCount()).Msg("assetd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
	// The watcher drives the manager through svc; it must be fully stopped
	// before Close mutates the bundle chain underneath it.
	if watcher != nil {
		watcher.Stop()
	}
	_ = mgr.Close()
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}

// splitCSV splits a comma-separated list, trimming blanks.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
