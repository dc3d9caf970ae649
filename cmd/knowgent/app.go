package main

import (
	"database/sql"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"knowgent/internal/config"
	"knowgent/internal/service"
	"knowgent/internal/storage"
	"knowgent/internal/workspace"
)

// app holds the services shared by every subcommand. It is filled in by the
// root command's PersistentPreRunE.
type app struct {
	verbose bool

	db        *sql.DB
	notebooks service.NotebookService
	notes     service.NoteService
	tags      service.TagService
	noteTags  service.NoteTagService
	checker   service.ConsistencyChecker
}

func (a *app) open(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return &setupError{err: err}
	}

	if !a.verbose && cfg.LogLevel < slog.LevelWarn {
		cfg.LogLevel = slog.LevelWarn
	}
	slog.SetDefault(cfg.NewLogger(cmd.ErrOrStderr()))

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		return &setupError{err: err}
	}
	a.db = db
	if err := storage.Migrate(db); err != nil {
		return &setupError{err: err}
	}

	fs, err := workspace.NewManager(cfg.BasePath)
	if err != nil {
		return &setupError{err: err}
	}

	store := storage.NewStore(db)
	notebookRepo := storage.NewNotebookRepo(store)
	noteRepo := storage.NewNoteRepo(store)
	tagRepo := storage.NewTagRepo(store)
	noteTagRepo := storage.NewNoteTagRepo(store)

	a.notebooks = service.NewNotebookService(store, notebookRepo, noteRepo, fs)
	a.notes = service.NewNoteService(store, notebookRepo, noteRepo, fs)
	a.tags = service.NewTagService(tagRepo)
	a.noteTags = service.NewNoteTagService(store, notebookRepo, noteRepo, tagRepo, noteTagRepo, fs)
	a.checker = service.NewConsistencyChecker(store, notebookRepo, noteRepo, fs)

	slog.Debug("knowgent ready", "repository", cfg.Repository, "db", cfg.DBPath, "base_path", fs.BasePath())
	return nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

// readInput returns the --content flag value if set, else all of stdin.
func readInput(cmd *cobra.Command, flag string) (string, error) {
	if cmd.Flags().Changed(flag) {
		return cmd.Flags().GetString(flag)
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}
