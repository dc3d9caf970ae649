package storage

import (
	"context"
	"errors"
	"fmt"
)

// NoteTagStore defines the interface for the note <-> tag association.
type NoteTagStore interface {
	// Add links a tag to a note. Returns ErrNoteNotFound or ErrTagNotFound
	// when either side is missing and ErrDuplicateNoteTag if already linked.
	Add(ctx context.Context, noteID, tagID int64) error
	// Remove unlinks a tag from a note. Returns ErrNotFound if no link existed.
	Remove(ctx context.Context, noteID, tagID int64) error
	// TagsForNote returns the note's tags ordered by name.
	TagsForNote(ctx context.Context, noteID int64) ([]TagRecord, error)
	// NotesForTag returns the notes carrying a tag ordered by notebook name then title.
	NotesForTag(ctx context.Context, tagID int64) ([]NoteRecord, error)
	// RemoveAllForNote unlinks every tag from a note and returns how many links were removed.
	RemoveAllForNote(ctx context.Context, noteID int64) (int64, error)
	// RemoveAllForTag unlinks a tag from every note and returns how many links were removed.
	RemoveAllForTag(ctx context.Context, tagID int64) (int64, error)
}

// NoteTagRepo provides methods for note tag operations.
type NoteTagRepo struct {
	store *Store
}

// NewNoteTagRepo creates a new NoteTagRepo.
func NewNoteTagRepo(store *Store) *NoteTagRepo {
	return &NoteTagRepo{store: store}
}

// Add links a tag to a note.
func (r *NoteTagRepo) Add(ctx context.Context, noteID, tagID int64) error {
	if err := validateID("note_id", noteID); err != nil {
		return err
	}
	if err := validateID("tag_id", tagID); err != nil {
		return err
	}

	err := r.store.Transaction(ctx, func(ctx context.Context) error {
		if err := r.exists(ctx, "SELECT 1 FROM notes WHERE id = ?", noteID, ErrNoteNotFound); err != nil {
			return err
		}
		if err := r.exists(ctx, "SELECT 1 FROM tags WHERE id = ?", tagID, ErrTagNotFound); err != nil {
			return err
		}
		_, err := r.store.Exec(ctx, "INSERT INTO note_tags (note_id, tag_id) VALUES (?, ?)", noteID, tagID)
		return classify(err, ErrDuplicateNoteTag, nil)
	})
	if err != nil {
		return fmt.Errorf("failed to tag note %d with tag %d: %w", noteID, tagID, err)
	}
	return nil
}

func (r *NoteTagRepo) exists(ctx context.Context, query string, id int64, missing error) error {
	_, err := r.store.FetchOne(ctx, query, id)
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%d: %w", id, missing)
	}
	return err
}

// Remove unlinks a tag from a note.
func (r *NoteTagRepo) Remove(ctx context.Context, noteID, tagID int64) error {
	if err := validateID("note_id", noteID); err != nil {
		return err
	}
	if err := validateID("tag_id", tagID); err != nil {
		return err
	}

	err := r.store.Transaction(ctx, func(ctx context.Context) error {
		res, err := r.store.Exec(ctx, "DELETE FROM note_tags WHERE note_id = ? AND tag_id = ?", noteID, tagID)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to untag note %d from tag %d: %w", noteID, tagID, err)
	}
	return nil
}

// TagsForNote returns the note's tags ordered by name.
func (r *NoteTagRepo) TagsForNote(ctx context.Context, noteID int64) ([]TagRecord, error) {
	if err := validateID("note_id", noteID); err != nil {
		return nil, err
	}

	rows, err := r.store.FetchAll(ctx, `SELECT t.id AS id, t.tag_name AS tag_name
		FROM tags t JOIN note_tags nt ON nt.tag_id = t.id
		WHERE nt.note_id = ? ORDER BY t.tag_name`, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags for note %d: %w", noteID, err)
	}
	return tagsFromRows(rows)
}

// NotesForTag returns the notes carrying a tag.
func (r *NoteTagRepo) NotesForTag(ctx context.Context, tagID int64) ([]NoteRecord, error) {
	if err := validateID("tag_id", tagID); err != nil {
		return nil, err
	}

	rows, err := r.store.FetchAll(ctx, noteSelect+`
		JOIN note_tags nt ON nt.note_id = n.id
		WHERE nt.tag_id = ? ORDER BY b.notebook_name, n.title`, tagID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes for tag %d: %w", tagID, err)
	}
	return notesFromRows(rows)
}

// RemoveAllForNote unlinks every tag from a note.
func (r *NoteTagRepo) RemoveAllForNote(ctx context.Context, noteID int64) (int64, error) {
	if err := validateID("note_id", noteID); err != nil {
		return 0, err
	}
	return r.removeAll(ctx, "DELETE FROM note_tags WHERE note_id = ?", noteID)
}

// RemoveAllForTag unlinks a tag from every note.
func (r *NoteTagRepo) RemoveAllForTag(ctx context.Context, tagID int64) (int64, error) {
	if err := validateID("tag_id", tagID); err != nil {
		return 0, err
	}
	return r.removeAll(ctx, "DELETE FROM note_tags WHERE tag_id = ?", tagID)
}

func (r *NoteTagRepo) removeAll(ctx context.Context, query string, id int64) (int64, error) {
	var removed int64
	err := r.store.Transaction(ctx, func(ctx context.Context) error {
		res, err := r.store.Exec(ctx, query, id)
		if err != nil {
			return err
		}
		removed = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to remove note tags: %w", err)
	}
	return removed, nil
}
