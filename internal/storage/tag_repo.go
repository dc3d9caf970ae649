package storage

import (
	"context"
	"errors"
	"fmt"
)

// TagStore defines the interface for tag storage operations.
type TagStore interface {
	// Create inserts a tag and returns its ID. Returns ErrDuplicateTag if the name is taken.
	Create(ctx context.Context, name string) (int64, error)
	// GetByID gets a tag by ID. Returns ErrTagNotFound if not found.
	GetByID(ctx context.Context, id int64) (*TagRecord, error)
	// GetByName gets a tag by name. Returns ErrTagNotFound if not found.
	GetByName(ctx context.Context, name string) (*TagRecord, error)
	// Rename changes a tag's name.
	Rename(ctx context.Context, id int64, newName string) error
	// Delete removes a tag; its note links cascade.
	Delete(ctx context.Context, id int64) error
	// List returns all tags ordered by name.
	List(ctx context.Context) ([]TagRecord, error)
}

// TagRepo provides methods for tag operations.
type TagRepo struct {
	store *Store
}

// NewTagRepo creates a new TagRepo.
func NewTagRepo(store *Store) *TagRepo {
	return &TagRepo{store: store}
}

// Create inserts a tag and returns its ID.
func (r *TagRepo) Create(ctx context.Context, name string) (int64, error) {
	if err := validateName("tag_name", name); err != nil {
		return 0, err
	}

	var id int64
	err := r.store.Transaction(ctx, func(ctx context.Context) error {
		res, err := r.store.Exec(ctx, "INSERT INTO tags (tag_name) VALUES (?)", name)
		if err != nil {
			return classify(err, ErrDuplicateTag, nil)
		}
		id = res.LastInsertID
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create tag %q: %w", name, err)
	}
	return id, nil
}

// GetByID gets a tag by ID.
func (r *TagRepo) GetByID(ctx context.Context, id int64) (*TagRecord, error) {
	if err := validateID("tag_id", id); err != nil {
		return nil, err
	}
	return r.getOne(ctx, "SELECT id, tag_name FROM tags WHERE id = ?", id)
}

// GetByName gets a tag by name.
func (r *TagRepo) GetByName(ctx context.Context, name string) (*TagRecord, error) {
	if err := validateName("tag_name", name); err != nil {
		return nil, err
	}
	return r.getOne(ctx, "SELECT id, tag_name FROM tags WHERE tag_name = ?", name)
}

func (r *TagRepo) getOne(ctx context.Context, query string, arg any) (*TagRecord, error) {
	row, err := r.store.FetchOne(ctx, query, arg)
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("tag %v: %w", arg, ErrTagNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query tag: %w", err)
	}

	tag, err := tagFromRow(row)
	if err != nil {
		return nil, &DatabaseError{Op: "map tag", Err: err}
	}
	return &tag, nil
}

// Rename changes a tag's name.
func (r *TagRepo) Rename(ctx context.Context, id int64, newName string) error {
	if err := validateID("tag_id", id); err != nil {
		return err
	}
	if err := validateName("tag_name", newName); err != nil {
		return err
	}

	err := r.store.Transaction(ctx, func(ctx context.Context) error {
		res, err := r.store.Exec(ctx, "UPDATE tags SET tag_name = ? WHERE id = ?", newName, id)
		if err != nil {
			return classify(err, ErrDuplicateTag, nil)
		}
		if res.RowsAffected == 0 {
			return ErrTagNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to rename tag %d: %w", id, err)
	}
	return nil
}

// Delete removes a tag; its note links cascade.
func (r *TagRepo) Delete(ctx context.Context, id int64) error {
	if err := validateID("tag_id", id); err != nil {
		return err
	}

	err := r.store.Transaction(ctx, func(ctx context.Context) error {
		res, err := r.store.Exec(ctx, "DELETE FROM tags WHERE id = ?", id)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return ErrTagNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete tag %d: %w", id, err)
	}
	return nil
}

// List returns all tags ordered by name.
func (r *TagRepo) List(ctx context.Context) ([]TagRecord, error) {
	rows, err := r.store.FetchAll(ctx, "SELECT id, tag_name FROM tags ORDER BY tag_name")
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tagsFromRows(rows)
}

func tagsFromRows(rows []Row) ([]TagRecord, error) {
	tags := make([]TagRecord, 0, len(rows))
	for _, row := range rows {
		tag, err := tagFromRow(row)
		if err != nil {
			return nil, &DatabaseError{Op: "map tag", Err: err}
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
