package service

import (
	"time"

	"knowgent/internal/storage"
	"knowgent/internal/textproc"
)

// Notebook is a notebook as seen by callers, with its directory on disk.
type Notebook struct {
	ID          int64
	Name        string
	Description string
	Path        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Note is a note as seen by callers, with its file on disk.
type Note struct {
	ID           int64
	Title        string
	NotebookID   int64
	NotebookName string
	Path         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NotebookTree is a notebook together with its notes.
type NotebookTree struct {
	Notebook Notebook
	Notes    []Note
}

// NotebookUpdate lists the changes to apply to a notebook. Nil fields are left as is.
type NotebookUpdate struct {
	NewName        *string
	NewDescription *string
}

// NoteUpdate lists the changes to apply to a note. Nil fields are left as is.
type NoteUpdate struct {
	NewTitle        *string
	NewNotebookName *string
}

// Span is a byte range of a match in note content.
type Span = textproc.Span

// NoteRef identifies a note by notebook name and title.
type NoteRef struct {
	Notebook string
	Title    string
}

// ConsistencyReport lists where the store and the filesystem disagree.
type ConsistencyReport struct {
	MissingDirs  []string  // notebooks with no directory
	OrphanDirs   []string  // directories with no notebook
	MissingFiles []NoteRef // notes with no file
	OrphanFiles  []NoteRef // .md files with no note
}

// Consistent reports whether nothing diverged.
func (r ConsistencyReport) Consistent() bool {
	return len(r.MissingDirs) == 0 && len(r.OrphanDirs) == 0 &&
		len(r.MissingFiles) == 0 && len(r.OrphanFiles) == 0
}

func toNotebook(rec storage.NotebookRecord, path string) Notebook {
	nb := Notebook{
		ID:        rec.ID,
		Name:      rec.Name,
		Path:      path,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if rec.Description != nil {
		nb.Description = *rec.Description
	}
	return nb
}

func toNote(rec storage.NoteRecord, path string) Note {
	return Note{
		ID:           rec.ID,
		Title:        rec.Title,
		NotebookID:   rec.NotebookID,
		NotebookName: rec.NotebookName,
		Path:         path,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}
