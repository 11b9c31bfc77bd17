package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	sqliteadapter "github.com/trentschlar/DigitalAccessibility/internal/adapter/driven/sqlite"
	httphandler "github.com/trentschlar/DigitalAccessibility/internal/adapter/driving/http"
	webhandler "github.com/trentschlar/DigitalAccessibility/internal/adapter/driving/web"
	"github.com/trentschlar/DigitalAccessibility/internal/application"
	"github.com/trentschlar/DigitalAccessibility/internal/catalog"
	"github.com/trentschlar/DigitalAccessibility/internal/config"
	"github.com/trentschlar/DigitalAccessibility/internal/domain/model"
	"github.com/trentschlar/DigitalAccessibility/internal/ingest"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration.
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"watch_dir", cfg.WatchDir,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open database (dual reader/writer with WAL mode).
	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	slog.Info("database opened", "path", cfg.DBPath)

	// 4. Run migrations on writer connection.
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}
	slog.Info("migrations complete")

	// 5. Wire persistence and seed the trackers.
	snapshots := sqliteadapter.NewSnapshotRepo(db)

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	tracker := application.NewTrackerService(snapshots, slog.Default())
	if err := tracker.Init(ctx, cat); err != nil {
		return err
	}

	baselineStore, err := tracker.Store(model.ToolBaseline)
	if err != nil {
		return err
	}
	remediationStore, err := tracker.Store(model.ToolRemediation)
	if err != nil {
		return err
	}
	stats := application.NewStatsService(baselineStore, remediationStore)

	// 6. Optional extractor drop-directory watcher.
	if cfg.WatchDir != "" {
		watcher := ingest.NewWatcher(cfg.WatchDir, func(path string) {
			n, err := tracker.IngestExtractFile(path)
			if err != nil {
				slog.Error("extractor ingest failed", "path", path, "error", err)
				return
			}
			slog.Info("extractor csv ingested", "path", path, "records", n)
		}, slog.Default())

		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("csv watcher stopped", "error", err)
			}
		}()
	}

	// 7. Create HTTP handler and register API routes.
	apiHandler := httphandler.NewHandler(tracker, stats, slog.Default())
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, apiHandler)

	// 7b. Create web handler and register GUI routes.
	webHandler := webhandler.NewHandler(tracker, stats, slog.Default())
	webhandler.RegisterRoutes(mux, webHandler)

	// Apply middleware.
	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	// 8. Log startup complete.
	slog.Info("layeraudit started", "listen_addr", cfg.ListenAddr)

	// 9. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	// 10. Graceful shutdown with 10s timeout to drain the HTTP server.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
