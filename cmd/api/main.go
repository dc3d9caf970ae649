package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"knowgent/internal/config"
	"knowgent/internal/http"
	"knowgent/internal/service"
	"knowgent/internal/storage"
	"knowgent/internal/workspace"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API manages notebooks, notes and tags. Notes are markdown files under
// a base directory, one subdirectory per notebook; their metadata and tags
// live in SQLite.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Knowgent API
//   description: |
//     Notebook, note and tag management over a SQLite index and a directory of markdown files.
//   version: 1.0.0
// schemes:
//   - http
// consumes:
//   - application/json
// produces:
//   - application/json

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "repository", cfg.Repository, "path", cfg.DBPath)

	// Create repository instances
	store := storage.NewStore(db)
	notebookRepo := storage.NewNotebookRepo(store)
	noteRepo := storage.NewNoteRepo(store)
	tagRepo := storage.NewTagRepo(store)
	noteTagRepo := storage.NewNoteTagRepo(store)

	// Initialize the notebook directory
	fs, err := workspace.NewManager(cfg.BasePath)
	if err != nil {
		log.Fatalf("Failed to initialize base path: %v", err)
	}
	slog.Info("Base path ready", "path", fs.BasePath())

	// Create services
	deps := &http.Deps{
		Notebooks:   service.NewNotebookService(store, notebookRepo, noteRepo, fs),
		Notes:       service.NewNoteService(store, notebookRepo, noteRepo, fs),
		Tags:        service.NewTagService(tagRepo),
		NoteTags:    service.NewNoteTagService(store, notebookRepo, noteRepo, tagRepo, noteTagRepo, fs),
		Consistency: service.NewConsistencyChecker(store, notebookRepo, noteRepo, fs),
		DB:          store,
		BasePath:    fs.BasePath(),
	}

	// Report drift between the store and the base path
	report, err := deps.Consistency.Check(context.Background())
	if err != nil {
		slog.Warn("Startup consistency check failed", "error", err)
	} else if !report.Consistent() {
		slog.Warn("Store and base path disagree; see GET /api/consistency",
			"missing_dirs", report.MissingDirs,
			"orphan_dirs", report.OrphanDirs,
			"missing_files", len(report.MissingFiles),
			"orphan_files", len(report.OrphanFiles),
		)
	}

	server := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           http.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Starting API server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			slog.Error("API server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
