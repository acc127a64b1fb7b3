// Package main provides the entry point for hookfeed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/hookfeed/hookfeed/internal/api"
	"github.com/hookfeed/hookfeed/internal/app"
	"github.com/hookfeed/hookfeed/internal/appinfo"
	"github.com/hookfeed/hookfeed/internal/config"
	"github.com/hookfeed/hookfeed/internal/ingest"
	"github.com/hookfeed/hookfeed/internal/store"
	"github.com/hookfeed/hookfeed/internal/version"
)

func main() {
	// 1. Load configuration (corrupt config falls back to defaults with warning)
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	cfg = config.ApplyEnvOverrides(cfg)

	// 2. Parse flags (can override config)
	port := flag.Int("port", cfg.Port, "HTTP server port")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// 3. Open SQLite store. Failure here aborts startup; running without
	// a store would silently drop every notification.
	path := *dbPath
	if path == "" {
		dataDir, err := config.EnsureDataDir()
		if err != nil {
			log.Fatalf("Failed to ensure data directory: %v", err)
		}
		path = filepath.Join(dataDir, appinfo.DatabaseFileName)
	}
	db, err := store.Open(path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// 4. Build the pipeline and use cases
	processor := ingest.New(db, ingest.WithLogger(slog.Default()))
	health := app.HealthService{Version: version.String()}
	feed := &app.FeedService{Store: db}

	limiter := api.NewRateLimiter(api.DefaultRateLimiterConfig())
	defer limiter.Stop()

	serverOpts := []api.ServerOption{
		api.WithProcessor(processor),
		api.WithFeedUsecase(feed),
		api.WithRateLimiter(limiter),
	}
	if cfg.FeedUsername != "" && cfg.FeedPassword != "" {
		serverOpts = append(serverOpts, api.WithBasicAuth(cfg.FeedUsername, cfg.FeedPassword))
		log.Println("Basic Auth enabled for the feed endpoint")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, *port)
	server := api.NewServer(addr, health, serverOpts...)

	// 5. Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)

	go func() {
		log.Printf("Starting %s v%s on %s", appinfo.AppName, version.String(), addr)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case sig := <-done:
		log.Printf("Received signal %v, shutting down", sig)
	case err := <-errCh:
		log.Printf("Server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
