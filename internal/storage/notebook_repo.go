package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const notebookColumns = "id, notebook_name, description, created_at, updated_at"

// NotebookStore defines the interface for notebook storage operations.
type NotebookStore interface {
	// Create inserts a notebook and returns its ID.
	// Returns ErrDuplicateNotebook if the name is taken.
	Create(ctx context.Context, name string, description *string) (int64, error)
	// GetByID gets a notebook by ID. Returns ErrNotebookNotFound if not found.
	GetByID(ctx context.Context, id int64) (*NotebookRecord, error)
	// GetByName gets a notebook by name. Returns ErrNotebookNotFound if not found.
	GetByName(ctx context.Context, name string) (*NotebookRecord, error)
	// Update changes the given fields and bumps updated_at.
	Update(ctx context.Context, id int64, upd NotebookUpdate) error
	// Delete removes a notebook; notes and their tag links cascade.
	Delete(ctx context.Context, id int64) error
	// List returns all notebooks ordered by name.
	List(ctx context.Context) ([]NotebookRecord, error)
}

// NotebookRepo provides methods for notebook operations.
// It implements the NotebookStore interface.
type NotebookRepo struct {
	store *Store
}

// NewNotebookRepo creates a new NotebookRepo.
func NewNotebookRepo(store *Store) *NotebookRepo {
	return &NotebookRepo{store: store}
}

// Create inserts a notebook and returns its ID.
func (r *NotebookRepo) Create(ctx context.Context, name string, description *string) (int64, error) {
	if err := validateName("notebook_name", name); err != nil {
		return 0, err
	}

	var desc any
	if description != nil {
		desc = nullable(*description)
	}

	var id int64
	err := r.store.Transaction(ctx, func(ctx context.Context) error {
		res, err := r.store.Exec(ctx,
			"INSERT INTO notebooks (notebook_name, description) VALUES (?, ?)",
			name, desc,
		)
		if err != nil {
			return classify(err, ErrDuplicateNotebook, nil)
		}
		id = res.LastInsertID
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create notebook %q: %w", name, err)
	}
	return id, nil
}

// GetByID gets a notebook by ID.
func (r *NotebookRepo) GetByID(ctx context.Context, id int64) (*NotebookRecord, error) {
	if err := validateID("notebook_id", id); err != nil {
		return nil, err
	}
	return r.getOne(ctx, "SELECT "+notebookColumns+" FROM notebooks WHERE id = ?", id)
}

// GetByName gets a notebook by name.
func (r *NotebookRepo) GetByName(ctx context.Context, name string) (*NotebookRecord, error) {
	if err := validateName("notebook_name", name); err != nil {
		return nil, err
	}
	return r.getOne(ctx, "SELECT "+notebookColumns+" FROM notebooks WHERE notebook_name = ?", name)
}

func (r *NotebookRepo) getOne(ctx context.Context, query string, arg any) (*NotebookRecord, error) {
	row, err := r.store.FetchOne(ctx, query, arg)
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("notebook %v: %w", arg, ErrNotebookNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query notebook: %w", err)
	}

	nb, err := notebookFromRow(row)
	if err != nil {
		return nil, &DatabaseError{Op: "map notebook", Err: err}
	}
	return &nb, nil
}

// Update changes the given fields and bumps updated_at.
// At least one field must be set.
func (r *NotebookRepo) Update(ctx context.Context, id int64, upd NotebookUpdate) error {
	if err := validateID("notebook_id", id); err != nil {
		return err
	}
	if upd.Name == nil && upd.Description == nil {
		return &ValidationError{Field: "update", Message: "at least one field must change"}
	}

	var sets []string
	var args []any
	if upd.Name != nil {
		if err := validateName("notebook_name", *upd.Name); err != nil {
			return err
		}
		sets = append(sets, "notebook_name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, nullable(*upd.Description))
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	err := r.store.Transaction(ctx, func(ctx context.Context) error {
		res, err := r.store.Exec(ctx,
			"UPDATE notebooks SET "+strings.Join(sets, ", ")+" WHERE id = ?",
			args...,
		)
		if err != nil {
			return classify(err, ErrDuplicateNotebook, nil)
		}
		if res.RowsAffected == 0 {
			return ErrNotebookNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update notebook %d: %w", id, err)
	}
	return nil
}

// Delete removes a notebook; notes and their tag links cascade.
func (r *NotebookRepo) Delete(ctx context.Context, id int64) error {
	if err := validateID("notebook_id", id); err != nil {
		return err
	}

	err := r.store.Transaction(ctx, func(ctx context.Context) error {
		res, err := r.store.Exec(ctx, "DELETE FROM notebooks WHERE id = ?", id)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return ErrNotebookNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete notebook %d: %w", id, err)
	}
	return nil
}

// List returns all notebooks ordered by name.
func (r *NotebookRepo) List(ctx context.Context) ([]NotebookRecord, error) {
	rows, err := r.store.FetchAll(ctx, "SELECT "+notebookColumns+" FROM notebooks ORDER BY notebook_name")
	if err != nil {
		return nil, fmt.Errorf("failed to list notebooks: %w", err)
	}

	notebooks := make([]NotebookRecord, 0, len(rows))
	for _, row := range rows {
		nb, err := notebookFromRow(row)
		if err != nil {
			return nil, &DatabaseError{Op: "map notebook", Err: err}
		}
		notebooks = append(notebooks, nb)
	}
	return notebooks, nil
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
