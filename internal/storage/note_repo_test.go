package storage

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoteRepo_Create(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	notebooks := NewNotebookRepo(s)
	repo := NewNoteRepo(s)

	nbID, err := notebooks.Create(ctx, "Research", nil)
	if err != nil {
		t.Fatalf("Create notebook error = %v", err)
	}
	otherID, _ := notebooks.Create(ctx, "Other", nil)

	tests := []struct {
		name       string
		title      string
		notebookID int64
		wantErr    error
		wantValid  bool
	}{
		{name: "valid", title: "Intro", notebookID: nbID},
		{name: "same title other notebook", title: "Intro", notebookID: otherID},
		{name: "duplicate title", title: "Intro", notebookID: nbID, wantErr: ErrDuplicateNote},
		{name: "missing notebook", title: "Orphan", notebookID: 999, wantErr: ErrNotebookNotFound},
		{name: "empty title", title: "", notebookID: nbID, wantValid: true},
		{name: "bad notebook id", title: "X", notebookID: -1, wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := repo.Create(ctx, tt.title, tt.notebookID)

			if tt.wantValid {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("Create() error = %v, want ValidationError", err)
				}
				return
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create() unexpected error: %v", err)
			}

			note, err := repo.GetByID(ctx, id)
			if err != nil {
				t.Fatalf("GetByID() error = %v", err)
			}
			if note.Title != tt.title || note.NotebookID != tt.notebookID {
				t.Errorf("GetByID() = %+v", note)
			}
			if note.NotebookName == "" {
				t.Error("NotebookName not joined")
			}
		})
	}
}

func TestNoteRepo_GetByTitle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	nbID, _ := NewNotebookRepo(s).Create(ctx, "Research", nil)
	repo := NewNoteRepo(s)
	id, _ := repo.Create(ctx, "Intro", nbID)

	note, err := repo.Get(ctx, "Intro", nbID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if note.ID != id || note.NotebookName != "Research" {
		t.Errorf("Get() = %+v", note)
	}

	if _, err := repo.Get(ctx, "Missing", nbID); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNoteNotFound", err)
	}
}

func TestNoteRepo_Update(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	notebooks := NewNotebookRepo(s)
	repo := NewNoteRepo(s)

	nbID, _ := notebooks.Create(ctx, "Research", nil)
	archiveID, _ := notebooks.Create(ctx, "Archive", nil)
	id, _ := repo.Create(ctx, "Intro", nbID)
	_, _ = repo.Create(ctx, "Taken", nbID)

	var vErr *ValidationError
	if err := repo.Update(ctx, id, NoteUpdate{}); !errors.As(err, &vErr) {
		t.Errorf("Update(empty) error = %v, want ValidationError", err)
	}
	if err := repo.Update(ctx, id, NoteUpdate{Title: strPtr("Taken")}); !errors.Is(err, ErrDuplicateNote) {
		t.Errorf("Update(dup) error = %v, want ErrDuplicateNote", err)
	}
	missing := int64(999)
	if err := repo.Update(ctx, id, NoteUpdate{NotebookID: &missing}); !errors.Is(err, ErrNotebookNotFound) {
		t.Errorf("Update(missing notebook) error = %v, want ErrNotebookNotFound", err)
	}
	if err := repo.Update(ctx, 999, NoteUpdate{Title: strPtr("X")}); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("Update(missing note) error = %v, want ErrNoteNotFound", err)
	}

	if err := repo.Update(ctx, id, NoteUpdate{Title: strPtr("Overview"), NotebookID: &archiveID}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	note, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if note.Title != "Overview" || note.NotebookName != "Archive" {
		t.Errorf("after Update() = %+v", note)
	}
}

func TestNoteRepo_Touch(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	nbID, _ := NewNotebookRepo(s).Create(ctx, "Research", nil)
	repo := NewNoteRepo(s)
	a, _ := repo.Create(ctx, "A", nbID)
	_, _ = repo.Create(ctx, "B", nbID)

	old := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := s.Exec(ctx, "UPDATE notes SET updated_at = '2000-01-01 00:00:00'"); err != nil {
		t.Fatalf("reset updated_at: %v", err)
	}

	if err := repo.Touch(ctx, a); err != nil {
		t.Fatalf("Touch() error = %v", err)
	}
	note, _ := repo.GetByID(ctx, a)
	if !note.UpdatedAt.After(old) {
		t.Errorf("Touch() UpdatedAt = %v, want after %v", note.UpdatedAt, old)
	}
	if err := repo.Touch(ctx, 999); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("Touch(missing) error = %v, want ErrNoteNotFound", err)
	}

	touched, err := repo.TouchByNotebook(ctx, nbID)
	if err != nil {
		t.Fatalf("TouchByNotebook() error = %v", err)
	}
	if touched != 2 {
		t.Errorf("TouchByNotebook() = %d, want 2", touched)
	}
}

func TestNoteRepo_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	notebooks := NewNotebookRepo(s)
	repo := NewNoteRepo(s)

	research, _ := notebooks.Create(ctx, "Research", nil)
	archive, _ := notebooks.Create(ctx, "Archive", nil)
	b, _ := repo.Create(ctx, "B", research)
	_, _ = repo.Create(ctx, "A", research)
	_, _ = repo.Create(ctx, "Z", archive)

	inResearch, err := repo.ListByNotebook(ctx, research)
	if err != nil {
		t.Fatalf("ListByNotebook() error = %v", err)
	}
	if len(inResearch) != 2 || inResearch[0].Title != "A" || inResearch[1].Title != "B" {
		t.Errorf("ListByNotebook() = %+v", inResearch)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 || all[0].NotebookName != "Archive" {
		t.Errorf("List() = %+v, want Archive notes first", all)
	}

	if err := repo.Delete(ctx, b); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, b); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNoteNotFound", err)
	}
	if got := countRows(t, s, "notes"); got != 2 {
		t.Errorf("notes rows = %d, want 2", got)
	}
}
