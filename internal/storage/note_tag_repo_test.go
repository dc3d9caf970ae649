package storage

import (
	"context"
	"errors"
	"testing"
)

func TestNoteTagRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	nbID, _ := NewNotebookRepo(s).Create(ctx, "Research", nil)
	notes := NewNoteRepo(s)
	intro, _ := notes.Create(ctx, "Intro", nbID)
	outro, _ := notes.Create(ctx, "Outro", nbID)
	tags := NewTagRepo(s)
	draft, _ := tags.Create(ctx, "draft")
	review, _ := tags.Create(ctx, "review")
	repo := NewNoteTagRepo(s)

	tests := []struct {
		name    string
		noteID  int64
		tagID   int64
		wantErr error
	}{
		{name: "link", noteID: intro, tagID: draft},
		{name: "second tag", noteID: intro, tagID: review},
		{name: "other note", noteID: outro, tagID: draft},
		{name: "duplicate", noteID: intro, tagID: draft, wantErr: ErrDuplicateNoteTag},
		{name: "missing note", noteID: 999, tagID: draft, wantErr: ErrNoteNotFound},
		{name: "missing tag", noteID: intro, tagID: 999, wantErr: ErrTagNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Add(ctx, tt.noteID, tt.tagID)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Add() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	got, err := repo.TagsForNote(ctx, intro)
	if err != nil {
		t.Fatalf("TagsForNote() error = %v", err)
	}
	if len(got) != 2 || got[0].Name != "draft" || got[1].Name != "review" {
		t.Errorf("TagsForNote() = %+v", got)
	}

	tagged, err := repo.NotesForTag(ctx, draft)
	if err != nil {
		t.Fatalf("NotesForTag() error = %v", err)
	}
	if len(tagged) != 2 || tagged[0].Title != "Intro" || tagged[0].NotebookName != "Research" {
		t.Errorf("NotesForTag() = %+v", tagged)
	}

	if err := repo.Remove(ctx, outro, review); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove(unlinked) error = %v, want ErrNotFound", err)
	}
	if err := repo.Remove(ctx, outro, draft); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	removed, err := repo.RemoveAllForNote(ctx, intro)
	if err != nil || removed != 2 {
		t.Errorf("RemoveAllForNote() = %d, %v; want 2", removed, err)
	}
	if got := countRows(t, s, "note_tags"); got != 0 {
		t.Errorf("note_tags rows = %d, want 0", got)
	}

	_ = repo.Add(ctx, intro, draft)
	_ = repo.Add(ctx, outro, draft)
	removed, err = repo.RemoveAllForTag(ctx, draft)
	if err != nil || removed != 2 {
		t.Errorf("RemoveAllForTag() = %d, %v; want 2", removed, err)
	}
}

func TestNoteTagRepo_CascadeOnNoteDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	nbID, _ := NewNotebookRepo(s).Create(ctx, "Research", nil)
	notes := NewNoteRepo(s)
	noteID, _ := notes.Create(ctx, "Intro", nbID)
	tagID, _ := NewTagRepo(s).Create(ctx, "draft")
	repo := NewNoteTagRepo(s)
	if err := repo.Add(ctx, noteID, tagID); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := notes.Delete(ctx, noteID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got := countRows(t, s, "note_tags"); got != 0 {
		t.Errorf("note_tags rows = %d, want 0", got)
	}
	if got := countRows(t, s, "tags"); got != 1 {
		t.Errorf("tags rows = %d, want 1", got)
	}
}
