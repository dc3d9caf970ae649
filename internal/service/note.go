package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_note_service.go -package=mocks knowgent/internal/service NoteService

import (
	"context"
	"errors"
	"io/fs"

	"knowgent/internal/contextutil"
	"knowgent/internal/saga"
	"knowgent/internal/storage"
	"knowgent/internal/textproc"
	"knowgent/internal/workspace"
)

// NoteService manages notes and their files.
type NoteService interface {
	// Create adds an empty note and its file.
	Create(ctx context.Context, title, notebook string) (Note, error)
	// SaveAs adds a note and writes its content in one step.
	SaveAs(ctx context.Context, title, notebook, content string) (Note, error)
	// Get returns a note by title within a notebook.
	Get(ctx context.Context, title, notebook string) (Note, error)
	// ListInNotebook returns the notes of a notebook ordered by title.
	ListInNotebook(ctx context.Context, notebook string) ([]Note, error)
	// FilePath returns the path of an existing note's file.
	FilePath(ctx context.Context, title, notebook string) (string, error)
	// Update renames a note and/or moves it to another notebook.
	Update(ctx context.Context, title, notebook string, upd NoteUpdate) (Note, error)
	// Delete removes a note, its tag links and its file.
	Delete(ctx context.Context, title, notebook string) error
	// Content reads a note's file.
	Content(ctx context.Context, title, notebook string) (string, error)
	// SaveContent replaces a note's file content and bumps its updated_at.
	SaveContent(ctx context.Context, title, notebook, content string) error
	// Find returns the byte spans of every occurrence of term in a note.
	Find(ctx context.Context, title, notebook, term string) ([]Span, error)
	// Replace replaces every occurrence of old in a note and saves it when
	// anything changed. It returns the number of replacements.
	Replace(ctx context.Context, title, notebook, old, new string) (int, error)
}

// noteService implements NoteService.
type noteService struct {
	tx        storage.Transactor
	notebooks storage.NotebookStore
	notes     storage.NoteStore
	fs        FileSystem
}

// NewNoteService creates a new NoteService.
func NewNoteService(tx storage.Transactor, notebooks storage.NotebookStore, notes storage.NoteStore, fs FileSystem) NoteService {
	return &noteService{
		tx:        tx,
		notebooks: notebooks,
		notes:     notes,
		fs:        fs,
	}
}

func (s *noteService) fail(ctx context.Context, op, title, notebook string, err error) error {
	logger := contextutil.LoggerFromContext(ctx)
	if KindOf(err) == KindValidation {
		logger.WarnContext(ctx, "note request rejected", "op", op, "note", title, "notebook", notebook, "error", err)
	} else {
		logger.ErrorContext(ctx, "note operation failed", "op", op, "note", title, "notebook", notebook, "error", err)
	}
	return newError(EntityNote, op, title, err)
}

func validateNoteArgs(title, notebook string) error {
	if err := validateName("title", title); err != nil {
		return err
	}
	return validateName("notebook_name", notebook)
}

// lookup resolves a note and its file path.
func (s *noteService) lookup(ctx context.Context, title, notebook string) (*storage.NoteRecord, string, error) {
	nb, err := s.notebooks.GetByName(ctx, notebook)
	if err != nil {
		return nil, "", err
	}
	rec, err := s.notes.Get(ctx, title, nb.ID)
	if err != nil {
		return nil, "", err
	}
	path, err := s.fs.NotePath(notebook, title)
	if err != nil {
		return nil, "", err
	}
	return rec, path, nil
}

// Create adds an empty note and its file.
func (s *noteService) Create(ctx context.Context, title, notebook string) (Note, error) {
	return s.create(ctx, "create", title, notebook, nil)
}

// SaveAs adds a note and writes its content in one step.
func (s *noteService) SaveAs(ctx context.Context, title, notebook, content string) (Note, error) {
	return s.create(ctx, "save as", title, notebook, &content)
}

// create makes the file first and removes it again if the insert fails.
func (s *noteService) create(ctx context.Context, op, title, notebook string, content *string) (Note, error) {
	if err := validateNoteArgs(title, notebook); err != nil {
		return Note{}, s.fail(ctx, op, title, notebook, err)
	}
	if content != nil {
		if err := validateContent(*content); err != nil {
			return Note{}, s.fail(ctx, op, title, notebook, err)
		}
	}
	path, err := s.fs.NotePath(notebook, title)
	if err != nil {
		return Note{}, s.fail(ctx, op, title, notebook, err)
	}

	var id int64
	err = saga.Run(ctx, op+" note", func(ctx context.Context, sg *saga.Saga) error {
		return s.tx.Transaction(ctx, func(ctx context.Context) error {
			nb, err := s.notebooks.GetByName(ctx, notebook)
			if err != nil {
				return err
			}
			// Checked up front so a duplicate never touches the existing file.
			if _, err := s.notes.Get(ctx, title, nb.ID); err == nil {
				return storage.ErrDuplicateNote
			} else if !errors.Is(err, storage.ErrNotFound) {
				return err
			}

			if err := s.ensureNotebookDir(ctx, sg, notebook); err != nil {
				return err
			}
			err = sg.Do(ctx, "create file",
				func(context.Context) error { return s.fs.CreateExclusive(path) },
				func(context.Context) error { return s.fs.Remove(path) },
			)
			if err != nil {
				return err
			}
			if content != nil {
				// The create undo already removes the file.
				if err := sg.Do(ctx, "write content",
					func(context.Context) error { return s.fs.WriteContent(path, *content) }, nil); err != nil {
					return err
				}
			}

			id, err = s.notes.Create(ctx, title, nb.ID)
			return err
		})
	})
	if err != nil {
		return Note{}, s.fail(ctx, op, title, notebook, err)
	}

	rec, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return Note{}, s.fail(ctx, op, title, notebook, err)
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "note created", "note", title, "notebook", notebook, "id", id)
	return toNote(*rec, path), nil
}

// Get returns a note by title within a notebook.
func (s *noteService) Get(ctx context.Context, title, notebook string) (Note, error) {
	if err := validateNoteArgs(title, notebook); err != nil {
		return Note{}, s.fail(ctx, "get", title, notebook, err)
	}
	rec, path, err := s.lookup(ctx, title, notebook)
	if err != nil {
		return Note{}, s.fail(ctx, "get", title, notebook, err)
	}
	return toNote(*rec, path), nil
}

// ListInNotebook returns the notes of a notebook ordered by title.
func (s *noteService) ListInNotebook(ctx context.Context, notebook string) ([]Note, error) {
	if err := validateName("notebook_name", notebook); err != nil {
		return nil, s.fail(ctx, "list", "", notebook, err)
	}

	nb, err := s.notebooks.GetByName(ctx, notebook)
	if err != nil {
		return nil, s.fail(ctx, "list", "", notebook, err)
	}
	recs, err := s.notes.ListByNotebook(ctx, nb.ID)
	if err != nil {
		return nil, s.fail(ctx, "list", "", notebook, err)
	}

	notes := make([]Note, 0, len(recs))
	for _, rec := range recs {
		path, err := s.fs.NotePath(notebook, rec.Title)
		if err != nil {
			return nil, s.fail(ctx, "list", rec.Title, notebook, err)
		}
		notes = append(notes, toNote(rec, path))
	}
	return notes, nil
}

// FilePath returns the path of an existing note's file.
func (s *noteService) FilePath(ctx context.Context, title, notebook string) (string, error) {
	note, err := s.Get(ctx, title, notebook)
	if err != nil {
		return "", err
	}
	return note.Path, nil
}

// Update renames a note and/or moves it to another notebook. The file is
// moved first and moved back if the store update fails.
func (s *noteService) Update(ctx context.Context, title, notebook string, upd NoteUpdate) (Note, error) {
	if err := validateNoteArgs(title, notebook); err != nil {
		return Note{}, s.fail(ctx, "update", title, notebook, err)
	}
	if upd.NewTitle == nil && upd.NewNotebookName == nil {
		return Note{}, s.fail(ctx, "update", title, notebook,
			&ValidationError{Field: "update", Message: "at least one field must change"})
	}

	newTitle, newNotebook := title, notebook
	if upd.NewTitle != nil {
		if err := validateName("new_title", *upd.NewTitle); err != nil {
			return Note{}, s.fail(ctx, "update", title, notebook, err)
		}
		newTitle = *upd.NewTitle
	}
	if upd.NewNotebookName != nil {
		if err := validateName("new_notebook_name", *upd.NewNotebookName); err != nil {
			return Note{}, s.fail(ctx, "update", title, notebook, err)
		}
		newNotebook = *upd.NewNotebookName
	}
	if newTitle == title && newNotebook == notebook {
		return Note{}, s.fail(ctx, "update", title, notebook,
			&ValidationError{Field: "update", Message: "at least one field must change"})
	}

	dstPath, err := s.fs.NotePath(newNotebook, newTitle)
	if err != nil {
		return Note{}, s.fail(ctx, "update", title, notebook, err)
	}

	var id int64
	err = saga.Run(ctx, "update note", func(ctx context.Context, sg *saga.Saga) error {
		return s.tx.Transaction(ctx, func(ctx context.Context) error {
			rec, srcPath, err := s.lookup(ctx, title, notebook)
			if err != nil {
				return err
			}
			id = rec.ID

			change := storage.NoteUpdate{}
			dstNotebookID := rec.NotebookID
			if newNotebook != notebook {
				dst, err := s.notebooks.GetByName(ctx, newNotebook)
				if err != nil {
					return err
				}
				dstNotebookID = dst.ID
				change.NotebookID = &dst.ID
			}
			if newTitle != title {
				change.Title = &newTitle
			}

			if _, err := s.notes.Get(ctx, newTitle, dstNotebookID); err == nil {
				return storage.ErrDuplicateNote
			} else if !errors.Is(err, storage.ErrNotFound) {
				return err
			}
			if s.fs.Exists(dstPath) {
				return &workspace.FileSystemError{Op: "move", Path: dstPath, Err: fs.ErrExist}
			}

			if newNotebook != notebook {
				if err := s.ensureNotebookDir(ctx, sg, newNotebook); err != nil {
					return err
				}
			}

			if s.fs.Exists(srcPath) {
				err := sg.Do(ctx, "move file",
					func(context.Context) error { return s.fs.Rename(srcPath, dstPath) },
					func(context.Context) error { return s.fs.Rename(dstPath, srcPath) },
				)
				if err != nil {
					return err
				}
			} else {
				contextutil.LoggerFromContext(ctx).WarnContext(ctx, "note file missing, updating row only", "path", srcPath)
			}

			return s.notes.Update(ctx, rec.ID, change)
		})
	})
	if err != nil {
		return Note{}, s.fail(ctx, "update", title, notebook, err)
	}

	rec, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return Note{}, s.fail(ctx, "update", title, notebook, err)
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "note updated",
		"note", title, "notebook", notebook, "new_title", newTitle, "new_notebook", newNotebook)
	return toNote(*rec, dstPath), nil
}

func (s *noteService) ensureNotebookDir(ctx context.Context, sg *saga.Saga, notebook string) error {
	dir, err := s.fs.NotebookDir(notebook)
	if err != nil {
		return err
	}
	created := false
	return sg.Do(ctx, "create notebook directory",
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
}

// Delete removes a note and its tag links, then its file. A missing file is
// logged and skipped.
func (s *noteService) Delete(ctx context.Context, title, notebook string) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateNoteArgs(title, notebook); err != nil {
		return s.fail(ctx, "delete", title, notebook, err)
	}

	var trash string
	err := saga.Run(ctx, "delete note", func(ctx context.Context, sg *saga.Saga) error {
		return s.tx.Transaction(ctx, func(ctx context.Context) error {
			rec, path, err := s.lookup(ctx, title, notebook)
			if err != nil {
				return err
			}
			if err := s.notes.Delete(ctx, rec.ID); err != nil {
				return err
			}

			if !s.fs.Exists(path) {
				logger.WarnContext(ctx, "note file missing, deleting row only", "path", path)
				return nil
			}
			if trash, err = s.fs.TrashPath(path); err != nil {
				return err
			}
			return sg.Do(ctx, "move file to trash",
				func(context.Context) error { return s.fs.Rename(path, trash) },
				func(context.Context) error { return s.fs.Rename(trash, path) },
			)
		})
	})
	if err != nil {
		return s.fail(ctx, "delete", title, notebook, err)
	}

	if trash != "" {
		if err := s.fs.Remove(trash); err != nil {
			return s.fail(ctx, "delete", title, notebook, err)
		}
	}

	logger.InfoContext(ctx, "note deleted", "note", title, "notebook", notebook)
	return nil
}

// Content reads a note's file.
func (s *noteService) Content(ctx context.Context, title, notebook string) (string, error) {
	if err := validateNoteArgs(title, notebook); err != nil {
		return "", s.fail(ctx, "read", title, notebook, err)
	}
	_, path, err := s.lookup(ctx, title, notebook)
	if err != nil {
		return "", s.fail(ctx, "read", title, notebook, err)
	}

	content, err := s.fs.ReadContent(path)
	if err != nil {
		return "", s.fail(ctx, "read", title, notebook, err)
	}
	return content, nil
}

// SaveContent replaces a note's file content and bumps its updated_at.
// If the commit fails the previous bytes are restored.
func (s *noteService) SaveContent(ctx context.Context, title, notebook, content string) error {
	if err := validateNoteArgs(title, notebook); err != nil {
		return s.fail(ctx, "save", title, notebook, err)
	}
	if err := validateContent(content); err != nil {
		return s.fail(ctx, "save", title, notebook, err)
	}

	err := saga.Run(ctx, "save note", func(ctx context.Context, sg *saga.Saga) error {
		return s.tx.Transaction(ctx, func(ctx context.Context) error {
			rec, path, err := s.lookup(ctx, title, notebook)
			if err != nil {
				return err
			}
			return s.write(ctx, sg, rec.ID, path, content)
		})
	})
	if err != nil {
		return s.fail(ctx, "save", title, notebook, err)
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "note saved", "note", title, "notebook", notebook, "bytes", len(content))
	return nil
}

// write replaces the file content, then touches the row. It must run inside
// a transaction; the undo puts the exact previous bytes back.
func (s *noteService) write(ctx context.Context, sg *saga.Saga, id int64, path, content string) error {
	existed := s.fs.Exists(path)
	var previous []byte
	if existed {
		var err error
		if previous, err = s.fs.ReadRaw(path); err != nil {
			return err
		}
	}

	err := sg.Do(ctx, "write content",
		func(context.Context) error { return s.fs.WriteContent(path, content) },
		func(context.Context) error {
			if !existed {
				return s.fs.Remove(path)
			}
			return s.fs.WriteRaw(path, previous)
		},
	)
	if err != nil {
		return err
	}
	return s.notes.Touch(ctx, id)
}

// Find returns the byte spans of every occurrence of term in a note.
func (s *noteService) Find(ctx context.Context, title, notebook, term string) ([]Span, error) {
	if term == "" {
		return nil, s.fail(ctx, "find", title, notebook, &ValidationError{Field: "term", Message: "cannot be empty"})
	}
	content, err := s.Content(ctx, title, notebook)
	if err != nil {
		return nil, err
	}
	return textproc.FindAll(content, term), nil
}

// Replace replaces every occurrence of old in a note and saves it when
// anything changed. The read and the write share one transaction.
func (s *noteService) Replace(ctx context.Context, title, notebook, old, new string) (int, error) {
	if err := validateNoteArgs(title, notebook); err != nil {
		return 0, s.fail(ctx, "replace", title, notebook, err)
	}
	if old == "" {
		return 0, s.fail(ctx, "replace", title, notebook, &ValidationError{Field: "old", Message: "cannot be empty"})
	}
	if err := validateContent(new); err != nil {
		return 0, s.fail(ctx, "replace", title, notebook, err)
	}

	var n int
	err := saga.Run(ctx, "replace in note", func(ctx context.Context, sg *saga.Saga) error {
		return s.tx.Transaction(ctx, func(ctx context.Context) error {
			rec, path, err := s.lookup(ctx, title, notebook)
			if err != nil {
				return err
			}
			content, err := s.fs.ReadContent(path)
			if err != nil {
				return err
			}

			replaced, count := textproc.ReplaceAll(content, old, new)
			if count == 0 {
				return nil
			}
			if err := s.write(ctx, sg, rec.ID, path, replaced); err != nil {
				return err
			}
			n = count
			return nil
		})
	})
	if err != nil {
		return 0, s.fail(ctx, "replace", title, notebook, err)
	}

	if n > 0 {
		contextutil.LoggerFromContext(ctx).InfoContext(ctx, "note replaced", "note", title, "notebook", notebook, "count", n)
	}
	return n, nil
}
