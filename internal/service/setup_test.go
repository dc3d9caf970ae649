package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"knowgent/internal/service"
	"knowgent/internal/storage"
	"knowgent/internal/workspace"
)

func init() {
	// Disable logging during tests
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var errInjected = &storage.DatabaseError{Op: "exec", Err: errors.New("injected failure")}

type testEnv struct {
	store     *storage.Store
	notebooks storage.NotebookStore
	notes     storage.NoteStore
	tags      storage.TagStore
	noteTags  storage.NoteTagStore
	fs        *workspace.Manager

	notebookSvc service.NotebookService
	noteSvc     service.NoteService
	tagSvc      service.TagService
	noteTagSvc  service.NoteTagService
	checker     service.ConsistencyChecker
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tmp := t.TempDir()
	db, err := storage.New(filepath.Join(tmp, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	require.NoError(t, storage.Migrate(db))

	fs, err := workspace.NewManager(filepath.Join(tmp, "MyNotebooks"))
	require.NoError(t, err)

	store := storage.NewStore(db)
	env := &testEnv{
		store:     store,
		notebooks: storage.NewNotebookRepo(store),
		notes:     storage.NewNoteRepo(store),
		tags:      storage.NewTagRepo(store),
		noteTags:  storage.NewNoteTagRepo(store),
		fs:        fs,
	}
	env.wire()
	return env
}

// wire (re)builds the services from the env's current stores.
func (e *testEnv) wire() {
	e.notebookSvc = service.NewNotebookService(e.store, e.notebooks, e.notes, e.fs)
	e.noteSvc = service.NewNoteService(e.store, e.notebooks, e.notes, e.fs)
	e.tagSvc = service.NewTagService(e.tags)
	e.noteTagSvc = service.NewNoteTagService(e.store, e.notebooks, e.notes, e.tags, e.noteTags, e.fs)
	e.checker = service.NewConsistencyChecker(e.store, e.notebooks, e.notes, e.fs)
}

func (e *testEnv) dir(name string) string {
	return filepath.Join(e.fs.BasePath(), name)
}

func (e *testEnv) file(notebook, title string) string {
	return filepath.Join(e.fs.BasePath(), notebook, title+".md")
}

func (e *testEnv) count(t *testing.T, table string) int64 {
	t.Helper()
	row, err := e.store.FetchOne(context.Background(), "SELECT COUNT(*) AS n FROM "+table)
	require.NoError(t, err)
	n, err := row.Int64("n")
	require.NoError(t, err)
	return n
}

// entries lists the names directly under dir, hidden ones included.
func entries(t *testing.T, dir string) []string {
	t.Helper()
	list, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, e := range list {
		names = append(names, e.Name())
	}
	return names
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// failingNotebooks fails selected NotebookStore calls.
type failingNotebooks struct {
	storage.NotebookStore
	createErr error
	updateErr error
	deleteErr error
}

func (f failingNotebooks) Create(ctx context.Context, name string, description *string) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	return f.NotebookStore.Create(ctx, name, description)
}

func (f failingNotebooks) Update(ctx context.Context, id int64, upd storage.NotebookUpdate) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	return f.NotebookStore.Update(ctx, id, upd)
}

func (f failingNotebooks) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.NotebookStore.Delete(ctx, id)
}

// failingNotes fails selected NoteStore calls.
type failingNotes struct {
	storage.NoteStore
	createErr error
	updateErr error
	touchErr  error
	deleteErr error
}

func (f failingNotes) Create(ctx context.Context, title string, notebookID int64) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	return f.NoteStore.Create(ctx, title, notebookID)
}

func (f failingNotes) Update(ctx context.Context, id int64, upd storage.NoteUpdate) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	return f.NoteStore.Update(ctx, id, upd)
}

func (f failingNotes) Touch(ctx context.Context, id int64) error {
	if f.touchErr != nil {
		return f.touchErr
	}
	return f.NoteStore.Touch(ctx, id)
}

func (f failingNotes) TouchByNotebook(ctx context.Context, notebookID int64) (int64, error) {
	if f.touchErr != nil {
		return 0, f.touchErr
	}
	return f.NoteStore.TouchByNotebook(ctx, notebookID)
}

func (f failingNotes) Delete(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.NoteStore.Delete(ctx, id)
}

func ptr[T any](v T) *T {
	return &v
}
