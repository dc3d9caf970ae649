package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const noteSelect = `SELECT n.id AS id, n.title AS title, n.notebook_id AS notebook_id,
	b.notebook_name AS notebook_name, n.created_at AS created_at, n.updated_at AS updated_at
	FROM notes n JOIN notebooks b ON b.id = n.notebook_id`

// NoteStore defines the interface for note storage operations.
type NoteStore interface {
	// Create inserts a note into a notebook and returns its ID.
	// Returns ErrNotebookNotFound if the notebook does not exist and
	// ErrDuplicateNote if the title is taken within the notebook.
	Create(ctx context.Context, title string, notebookID int64) (int64, error)
	// GetByID gets a note by ID. Returns ErrNoteNotFound if not found.
	GetByID(ctx context.Context, id int64) (*NoteRecord, error)
	// Get gets a note by title within a notebook. Returns ErrNoteNotFound if not found.
	Get(ctx context.Context, title string, notebookID int64) (*NoteRecord, error)
	// Update changes the given fields and bumps updated_at.
	Update(ctx context.Context, id int64, upd NoteUpdate) error
	// Touch bumps updated_at.
	Touch(ctx context.Context, id int64) error
	// TouchByNotebook bumps updated_at on every note of a notebook and
	// returns how many notes were touched.
	TouchByNotebook(ctx context.Context, notebookID int64) (int64, error)
	// Delete removes a note; its tag links cascade.
	Delete(ctx context.Context, id int64) error
	// ListByNotebook returns the notes of a notebook ordered by title.
	ListByNotebook(ctx context.Context, notebookID int64) ([]NoteRecord, error)
	// List returns all notes ordered by notebook name then title.
	List(ctx context.Context) ([]NoteRecord, error)
}

// NoteRepo provides methods for note operations.
// It implements the NoteStore interface.
type NoteRepo struct {
	store *Store
}

// NewNoteRepo creates a new NoteRepo.
func NewNoteRepo(store *Store) *NoteRepo {
	return &NoteRepo{store: store}
}

// Create inserts a note into a notebook and returns its ID.
func (r *NoteRepo) Create(ctx context.Context, title string, notebookID int64) (int64, error) {
	if err := validateName("title", title); err != nil {
		return 0, err
	}
	if err := validateID("notebook_id", notebookID); err != nil {
		return 0, err
	}

	var id int64
	err := r.store.Transaction(ctx, func(ctx context.Context) error {
		if err := r.checkNotebook(ctx, notebookID); err != nil {
			return err
		}
		res, err := r.store.Exec(ctx,
			"INSERT INTO notes (title, notebook_id) VALUES (?, ?)",
			title, notebookID,
		)
		if err != nil {
			return classify(err, ErrDuplicateNote, ErrNotebookNotFound)
		}
		id = res.LastInsertID
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create note %q: %w", title, err)
	}
	return id, nil
}

// checkNotebook verifies the notebook a note points at exists, so callers
// get ErrNotebookNotFound instead of a bare foreign key failure.
func (r *NoteRepo) checkNotebook(ctx context.Context, notebookID int64) error {
	_, err := r.store.FetchOne(ctx, "SELECT 1 FROM notebooks WHERE id = ?", notebookID)
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("notebook %d: %w", notebookID, ErrNotebookNotFound)
	}
	return err
}

// GetByID gets a note by ID.
func (r *NoteRepo) GetByID(ctx context.Context, id int64) (*NoteRecord, error) {
	if err := validateID("note_id", id); err != nil {
		return nil, err
	}
	return r.getOne(ctx, noteSelect+" WHERE n.id = ?", id)
}

// Get gets a note by title within a notebook.
func (r *NoteRepo) Get(ctx context.Context, title string, notebookID int64) (*NoteRecord, error) {
	if err := validateName("title", title); err != nil {
		return nil, err
	}
	if err := validateID("notebook_id", notebookID); err != nil {
		return nil, err
	}
	return r.getOne(ctx, noteSelect+" WHERE n.title = ? AND n.notebook_id = ?", title, notebookID)
}

func (r *NoteRepo) getOne(ctx context.Context, query string, args ...any) (*NoteRecord, error) {
	row, err := r.store.FetchOne(ctx, query, args...)
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("note %v: %w", args[0], ErrNoteNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query note: %w", err)
	}

	note, err := noteFromRow(row)
	if err != nil {
		return nil, &DatabaseError{Op: "map note", Err: err}
	}
	return &note, nil
}

// Update changes the given fields and bumps updated_at.
// At least one field must be set.
func (r *NoteRepo) Update(ctx context.Context, id int64, upd NoteUpdate) error {
	if err := validateID("note_id", id); err != nil {
		return err
	}
	if upd.Title == nil && upd.NotebookID == nil {
		return &ValidationError{Field: "update", Message: "at least one field must change"}
	}

	var sets []string
	var args []any
	if upd.Title != nil {
		if err := validateName("title", *upd.Title); err != nil {
			return err
		}
		sets = append(sets, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.NotebookID != nil {
		if err := validateID("notebook_id", *upd.NotebookID); err != nil {
			return err
		}
		sets = append(sets, "notebook_id = ?")
		args = append(args, *upd.NotebookID)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	err := r.store.Transaction(ctx, func(ctx context.Context) error {
		if upd.NotebookID != nil {
			if err := r.checkNotebook(ctx, *upd.NotebookID); err != nil {
				return err
			}
		}
		res, err := r.store.Exec(ctx,
			"UPDATE notes SET "+strings.Join(sets, ", ")+" WHERE id = ?",
			args...,
		)
		if err != nil {
			return classify(err, ErrDuplicateNote, ErrNotebookNotFound)
		}
		if res.RowsAffected == 0 {
			return ErrNoteNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update note %d: %w", id, err)
	}
	return nil
}

// Touch bumps updated_at.
func (r *NoteRepo) Touch(ctx context.Context, id int64) error {
	if err := validateID("note_id", id); err != nil {
		return err
	}

	err := r.store.Transaction(ctx, func(ctx context.Context) error {
		res, err := r.store.Exec(ctx, "UPDATE notes SET updated_at = CURRENT_TIMESTAMP WHERE id = ?", id)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return ErrNoteNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to touch note %d: %w", id, err)
	}
	return nil
}

// TouchByNotebook bumps updated_at on every note of a notebook.
func (r *NoteRepo) TouchByNotebook(ctx context.Context, notebookID int64) (int64, error) {
	if err := validateID("notebook_id", notebookID); err != nil {
		return 0, err
	}

	var touched int64
	err := r.store.Transaction(ctx, func(ctx context.Context) error {
		res, err := r.store.Exec(ctx,
			"UPDATE notes SET updated_at = CURRENT_TIMESTAMP WHERE notebook_id = ?",
			notebookID,
		)
		if err != nil {
			return err
		}
		touched = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to touch notes of notebook %d: %w", notebookID, err)
	}
	return touched, nil
}

// Delete removes a note; its tag links cascade.
func (r *NoteRepo) Delete(ctx context.Context, id int64) error {
	if err := validateID("note_id", id); err != nil {
		return err
	}

	err := r.store.Transaction(ctx, func(ctx context.Context) error {
		res, err := r.store.Exec(ctx, "DELETE FROM notes WHERE id = ?", id)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return ErrNoteNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete note %d: %w", id, err)
	}
	return nil
}

// ListByNotebook returns the notes of a notebook ordered by title.
// Returns an empty slice if the notebook has no notes (not an error).
func (r *NoteRepo) ListByNotebook(ctx context.Context, notebookID int64) ([]NoteRecord, error) {
	if err := validateID("notebook_id", notebookID); err != nil {
		return nil, err
	}
	return r.list(ctx, noteSelect+" WHERE n.notebook_id = ? ORDER BY n.title", notebookID)
}

// List returns all notes ordered by notebook name then title.
func (r *NoteRepo) List(ctx context.Context) ([]NoteRecord, error) {
	return r.list(ctx, noteSelect+" ORDER BY b.notebook_name, n.title")
}

func (r *NoteRepo) list(ctx context.Context, query string, args ...any) ([]NoteRecord, error) {
	rows, err := r.store.FetchAll(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notesFromRows(rows)
}

func notesFromRows(rows []Row) ([]NoteRecord, error) {
	notes := make([]NoteRecord, 0, len(rows))
	for _, row := range rows {
		note, err := noteFromRow(row)
		if err != nil {
			return nil, &DatabaseError{Op: "map note", Err: err}
		}
		notes = append(notes, note)
	}
	return notes, nil
}
