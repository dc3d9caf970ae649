package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_notebook_service.go -package=mocks knowgent/internal/service NotebookService

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"knowgent/internal/contextutil"
	"knowgent/internal/saga"
	"knowgent/internal/storage"
	"knowgent/internal/workspace"
)

// NotebookService manages notebooks and their directories.
type NotebookService interface {
	// Create adds a notebook and its directory.
	Create(ctx context.Context, name, description string) (Notebook, error)
	// Get returns a notebook by name.
	Get(ctx context.Context, name string) (Notebook, error)
	// List returns all notebooks ordered by name.
	List(ctx context.Context) ([]Notebook, error)
	// Update renames a notebook and/or changes its description.
	Update(ctx context.Context, name string, upd NotebookUpdate) (Notebook, error)
	// Delete removes a notebook, its notes and its directory.
	Delete(ctx context.Context, name string) error
	// Tree returns every notebook with its notes.
	Tree(ctx context.Context) ([]NotebookTree, error)
}

// notebookService implements NotebookService.
type notebookService struct {
	tx        storage.Transactor
	notebooks storage.NotebookStore
	notes     storage.NoteStore
	fs        FileSystem
}

// NewNotebookService creates a new NotebookService.
func NewNotebookService(tx storage.Transactor, notebooks storage.NotebookStore, notes storage.NoteStore, fs FileSystem) NotebookService {
	return &notebookService{
		tx:        tx,
		notebooks: notebooks,
		notes:     notes,
		fs:        fs,
	}
}

func (s *notebookService) fail(ctx context.Context, op, name string, err error) error {
	logger := contextutil.LoggerFromContext(ctx)
	if KindOf(err) == KindValidation {
		logger.WarnContext(ctx, "notebook request rejected", "op", op, "notebook", name, "error", err)
	} else {
		logger.ErrorContext(ctx, "notebook operation failed", "op", op, "notebook", name, "error", err)
	}
	return newError(EntityNotebook, op, name, err)
}

// Create adds a notebook and its directory. If the directory already exists
// it is adopted and left in place should the insert fail.
func (s *notebookService) Create(ctx context.Context, name, description string) (Notebook, error) {
	if err := validateName("notebook_name", name); err != nil {
		return Notebook{}, s.fail(ctx, "create", name, err)
	}

	dir, err := s.fs.NotebookDir(name)
	if err != nil {
		return Notebook{}, s.fail(ctx, "create", name, err)
	}

	var desc *string
	if description != "" {
		desc = &description
	}

	var id int64
	err = saga.Run(ctx, "create notebook", func(ctx context.Context, sg *saga.Saga) error {
		return s.tx.Transaction(ctx, func(ctx context.Context) error {
			// Checked up front so a duplicate never touches the existing directory.
			if _, err := s.notebooks.GetByName(ctx, name); err == nil {
				return storage.ErrDuplicateNotebook
			} else if !errors.Is(err, storage.ErrNotFound) {
				return err
			}

			created := false
			err := sg.Do(ctx, "create directory",
				func(context.Context) error {
					var err error
					created, err = s.fs.EnsureDir(dir)
					return err
				},
				func(context.Context) error {
					if !created {
						return nil
					}
					return s.fs.Remove(dir)
				},
			)
			if err != nil {
				return err
			}

			id, err = s.notebooks.Create(ctx, name, desc)
			return err
		})
	})
	if err != nil {
		return Notebook{}, s.fail(ctx, "create", name, err)
	}

	rec, err := s.notebooks.GetByID(ctx, id)
	if err != nil {
		return Notebook{}, s.fail(ctx, "create", name, err)
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "notebook created", "notebook", name, "id", id)
	return toNotebook(*rec, dir), nil
}

// Get returns a notebook by name.
func (s *notebookService) Get(ctx context.Context, name string) (Notebook, error) {
	if err := validateName("notebook_name", name); err != nil {
		return Notebook{}, s.fail(ctx, "get", name, err)
	}

	rec, err := s.notebooks.GetByName(ctx, name)
	if err != nil {
		return Notebook{}, s.fail(ctx, "get", name, err)
	}
	return s.notebook(*rec)
}

func (s *notebookService) notebook(rec storage.NotebookRecord) (Notebook, error) {
	dir, err := s.fs.NotebookDir(rec.Name)
	if err != nil {
		return Notebook{}, newError(EntityNotebook, "resolve", rec.Name, err)
	}
	return toNotebook(rec, dir), nil
}

// List returns all notebooks ordered by name.
func (s *notebookService) List(ctx context.Context) ([]Notebook, error) {
	recs, err := s.notebooks.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list", "", err)
	}

	notebooks := make([]Notebook, 0, len(recs))
	for _, rec := range recs {
		nb, err := s.notebook(rec)
		if err != nil {
			return nil, err
		}
		notebooks = append(notebooks, nb)
	}
	return notebooks, nil
}

// Update renames a notebook and/or changes its description. A rename moves
// the directory first and puts it back if the store update fails; the notes
// of the notebook are touched in the same transaction.
func (s *notebookService) Update(ctx context.Context, name string, upd NotebookUpdate) (Notebook, error) {
	if err := validateName("notebook_name", name); err != nil {
		return Notebook{}, s.fail(ctx, "update", name, err)
	}
	if upd.NewName == nil && upd.NewDescription == nil {
		return Notebook{}, s.fail(ctx, "update", name,
			&ValidationError{Field: "update", Message: "at least one field must change"})
	}

	newName := name
	if upd.NewName != nil {
		if err := validateName("new_name", *upd.NewName); err != nil {
			return Notebook{}, s.fail(ctx, "update", name, err)
		}
		newName = *upd.NewName
	}
	renaming := newName != name

	oldDir, err := s.fs.NotebookDir(name)
	if err != nil {
		return Notebook{}, s.fail(ctx, "update", name, err)
	}
	newDir, err := s.fs.NotebookDir(newName)
	if err != nil {
		return Notebook{}, s.fail(ctx, "update", name, err)
	}

	var touched int64
	err = saga.Run(ctx, "update notebook", func(ctx context.Context, sg *saga.Saga) error {
		return s.tx.Transaction(ctx, func(ctx context.Context) error {
			rec, err := s.notebooks.GetByName(ctx, name)
			if err != nil {
				return err
			}

			change := storage.NotebookUpdate{Description: upd.NewDescription}
			if renaming {
				change.Name = &newName
				if err := s.checkRenameTarget(ctx, newName, newDir); err != nil {
					return err
				}
				if err := s.moveDir(ctx, sg, oldDir, newDir); err != nil {
					return err
				}
			}

			if change.Name == nil && change.Description == nil {
				return &ValidationError{Field: "update", Message: "at least one field must change"}
			}
			if err := s.notebooks.Update(ctx, rec.ID, change); err != nil {
				return err
			}

			if renaming {
				// Note paths derive from the notebook name, so every note moved with the directory.
				touched, err = s.notes.TouchByNotebook(ctx, rec.ID)
				return err
			}
			return nil
		})
	})
	if err != nil {
		return Notebook{}, s.fail(ctx, "update", name, err)
	}

	rec, err := s.notebooks.GetByName(ctx, newName)
	if err != nil {
		return Notebook{}, s.fail(ctx, "update", name, err)
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "notebook updated",
		"notebook", name, "new_name", newName, "notes_touched", touched)
	return toNotebook(*rec, newDir), nil
}

func (s *notebookService) checkRenameTarget(ctx context.Context, newName, newDir string) error {
	if _, err := s.notebooks.GetByName(ctx, newName); err == nil {
		return storage.ErrDuplicateNotebook
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if s.fs.Exists(newDir) {
		return &workspace.FileSystemError{Op: "rename", Path: newDir, Err: fs.ErrExist}
	}
	return nil
}

// moveDir renames the notebook directory, or creates the target when the
// old directory is missing.
func (s *notebookService) moveDir(ctx context.Context, sg *saga.Saga, oldDir, newDir string) error {
	if !s.fs.Exists(oldDir) {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "notebook directory missing, creating it under the new name",
			"path", oldDir)
		return sg.Do(ctx, "create directory",
			func(context.Context) error {
				_, err := s.fs.EnsureDir(newDir)
				return err
			},
			func(context.Context) error { return s.fs.Remove(newDir) },
		)
	}

	return sg.Do(ctx, "rename directory",
		func(context.Context) error { return s.fs.Rename(oldDir, newDir) },
		func(context.Context) error { return s.fs.Rename(newDir, oldDir) },
	)
}

// Delete removes a notebook. Its directory is parked in a trash path while
// the row is deleted and removed for good once the delete has committed.
func (s *notebookService) Delete(ctx context.Context, name string) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateName("notebook_name", name); err != nil {
		return s.fail(ctx, "delete", name, err)
	}
	dir, err := s.fs.NotebookDir(name)
	if err != nil {
		return s.fail(ctx, "delete", name, err)
	}

	var notes []storage.NoteRecord
	var trash string
	err = saga.Run(ctx, "delete notebook", func(ctx context.Context, sg *saga.Saga) error {
		return s.tx.Transaction(ctx, func(ctx context.Context) error {
			rec, err := s.notebooks.GetByName(ctx, name)
			if err != nil {
				return err
			}
			if notes, err = s.notes.ListByNotebook(ctx, rec.ID); err != nil {
				return err
			}

			if s.fs.Exists(dir) {
				if trash, err = s.fs.TrashPath(dir); err != nil {
					return err
				}
				err := sg.Do(ctx, "move directory to trash",
					func(context.Context) error { return s.fs.Rename(dir, trash) },
					func(context.Context) error { return s.fs.Rename(trash, dir) },
				)
				if err != nil {
					return err
				}
			} else {
				logger.WarnContext(ctx, "notebook directory missing, deleting row only", "path", dir)
			}

			// Notes and their tag links cascade.
			return s.notebooks.Delete(ctx, rec.ID)
		})
	})
	if err != nil {
		return s.fail(ctx, "delete", name, err)
	}

	if trash != "" {
		if err := s.purge(ctx, name, trash, notes); err != nil {
			return s.fail(ctx, "delete", name, err)
		}
	}

	logger.InfoContext(ctx, "notebook deleted", "notebook", name, "notes", len(notes))
	return nil
}

// purge unlinks the note files of a deleted notebook from its trash
// directory, then removes whatever is left.
func (s *notebookService) purge(ctx context.Context, name, trash string, notes []storage.NoteRecord) error {
	for _, note := range notes {
		path, err := s.fs.NotePath(name, note.Title)
		if err != nil {
			return err
		}
		inTrash := filepath.Join(trash, filepath.Base(path))
		if !s.fs.Exists(inTrash) {
			contextutil.LoggerFromContext(ctx).WarnContext(ctx, "note file missing during notebook delete",
				"note", note.Title, "path", path)
			continue
		}
		if err := s.fs.Remove(inTrash); err != nil {
			return err
		}
	}
	return s.fs.RemoveTree(trash)
}

// Tree returns every notebook with its notes, both ordered by name.
func (s *notebookService) Tree(ctx context.Context) ([]NotebookTree, error) {
	var (
		notebooks []storage.NotebookRecord
		notes     []storage.NoteRecord
	)
	// One transaction so both lists see the same snapshot.
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		if notebooks, err = s.notebooks.List(ctx); err != nil {
			return err
		}
		notes, err = s.notes.List(ctx)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "list tree", "", err)
	}

	byNotebook := make(map[int64][]Note, len(notebooks))
	for _, rec := range notes {
		path, err := s.fs.NotePath(rec.NotebookName, rec.Title)
		if err != nil {
			return nil, newError(EntityNote, "resolve", rec.Title, err)
		}
		byNotebook[rec.NotebookID] = append(byNotebook[rec.NotebookID], toNote(rec, path))
	}

	tree := make([]NotebookTree, 0, len(notebooks))
	for _, rec := range notebooks {
		nb, err := s.notebook(rec)
		if err != nil {
			return nil, err
		}
		children := byNotebook[rec.ID]
		if children == nil {
			children = []Note{}
		}
		tree = append(tree, NotebookTree{Notebook: nb, Notes: children})
	}
	return tree, nil
}
