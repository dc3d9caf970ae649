package storage

import "time"

// NotebookRecord represents a notebook row.
type NotebookRecord struct {
	ID          int64
	Name        string
	Description *string // nil when no description was given
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NoteRecord represents a note row joined with its notebook's name.
// The note's file path is derived from NotebookName and Title, never stored.
type NoteRecord struct {
	ID           int64
	Title        string
	NotebookID   int64 // Foreign key to notebooks.id
	NotebookName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TagRecord represents a tag row.
type TagRecord struct {
	ID   int64
	Name string
}

// NotebookUpdate lists the notebook fields to change. Nil fields are left as is.
type NotebookUpdate struct {
	Name        *string
	Description *string
}

// NoteUpdate lists the note fields to change. Nil fields are left as is.
type NoteUpdate struct {
	Title      *string
	NotebookID *int64
}

func notebookFromRow(row Row) (NotebookRecord, error) {
	var nb NotebookRecord
	var err error
	if nb.ID, err = row.Int64("id"); err != nil {
		return NotebookRecord{}, err
	}
	if nb.Name, err = row.String("notebook_name"); err != nil {
		return NotebookRecord{}, err
	}
	if nb.Description, err = row.NullString("description"); err != nil {
		return NotebookRecord{}, err
	}
	if nb.CreatedAt, err = row.Time("created_at"); err != nil {
		return NotebookRecord{}, err
	}
	if nb.UpdatedAt, err = row.Time("updated_at"); err != nil {
		return NotebookRecord{}, err
	}
	return nb, nil
}

func noteFromRow(row Row) (NoteRecord, error) {
	var note NoteRecord
	var err error
	if note.ID, err = row.Int64("id"); err != nil {
		return NoteRecord{}, err
	}
	if note.Title, err = row.String("title"); err != nil {
		return NoteRecord{}, err
	}
	if note.NotebookID, err = row.Int64("notebook_id"); err != nil {
		return NoteRecord{}, err
	}
	if note.NotebookName, err = row.String("notebook_name"); err != nil {
		return NoteRecord{}, err
	}
	if note.CreatedAt, err = row.Time("created_at"); err != nil {
		return NoteRecord{}, err
	}
	if note.UpdatedAt, err = row.Time("updated_at"); err != nil {
		return NoteRecord{}, err
	}
	return note, nil
}

func tagFromRow(row Row) (TagRecord, error) {
	var tag TagRecord
	var err error
	if tag.ID, err = row.Int64("id"); err != nil {
		return TagRecord{}, err
	}
	if tag.Name, err = row.String("tag_name"); err != nil {
		return TagRecord{}, err
	}
	return tag, nil
}
