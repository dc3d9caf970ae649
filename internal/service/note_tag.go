package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_note_tag_service.go -package=mocks knowgent/internal/service NoteTagService

import (
	"context"
	"errors"

	"knowgent/internal/contextutil"
	"knowgent/internal/storage"
)

// NoteTagService links tags to notes.
type NoteTagService interface {
	// AddTagToNote tags a note, creating the tag if it does not exist yet.
	AddTagToNote(ctx context.Context, title, notebook, tag string) error
	RemoveTagFromNote(ctx context.Context, title, notebook, tag string) error
	// TagsForNote returns the note's tag names in order.
	TagsForNote(ctx context.Context, title, notebook string) ([]string, error)
	// NotesForTag returns the notes carrying a tag.
	NotesForTag(ctx context.Context, tag string) ([]Note, error)
	// RemoveAllTagsForNote untags a note and returns how many links were removed.
	RemoveAllTagsForNote(ctx context.Context, title, notebook string) (int64, error)
	// RemoveAllNotesForTag removes a tag from every note and returns how many links were removed.
	RemoveAllNotesForTag(ctx context.Context, tag string) (int64, error)
}

// noteTagService implements NoteTagService.
type noteTagService struct {
	tx        storage.Transactor
	notebooks storage.NotebookStore
	notes     storage.NoteStore
	tags      storage.TagStore
	noteTags  storage.NoteTagStore
	fs        FileSystem
}

// NewNoteTagService creates a new NoteTagService.
func NewNoteTagService(
	tx storage.Transactor,
	notebooks storage.NotebookStore,
	notes storage.NoteStore,
	tags storage.TagStore,
	noteTags storage.NoteTagStore,
	fs FileSystem,
) NoteTagService {
	return &noteTagService{
		tx:        tx,
		notebooks: notebooks,
		notes:     notes,
		tags:      tags,
		noteTags:  noteTags,
		fs:        fs,
	}
}

func (s *noteTagService) fail(ctx context.Context, op, subject string, err error) error {
	logger := contextutil.LoggerFromContext(ctx)
	if KindOf(err) == KindValidation {
		logger.WarnContext(ctx, "note tag request rejected", "op", op, "subject", subject, "error", err)
	} else {
		logger.ErrorContext(ctx, "note tag operation failed", "op", op, "subject", subject, "error", err)
	}
	return newError(EntityNoteTag, op, subject, err)
}

func (s *noteTagService) note(ctx context.Context, title, notebook string) (*storage.NoteRecord, error) {
	if err := validateNoteArgs(title, notebook); err != nil {
		return nil, err
	}
	nb, err := s.notebooks.GetByName(ctx, notebook)
	if err != nil {
		return nil, err
	}
	return s.notes.Get(ctx, title, nb.ID)
}

func (s *noteTagService) AddTagToNote(ctx context.Context, title, notebook, tag string) error {
	if err := validateText("tag_name", tag); err != nil {
		return s.fail(ctx, "add tag", title, err)
	}

	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		note, err := s.note(ctx, title, notebook)
		if err != nil {
			return err
		}

		var tagID int64
		rec, err := s.tags.GetByName(ctx, tag)
		switch {
		case err == nil:
			tagID = rec.ID
		case errors.Is(err, storage.ErrNotFound):
			if tagID, err = s.tags.Create(ctx, tag); err != nil {
				return err
			}
		default:
			return err
		}

		return s.noteTags.Add(ctx, note.ID, tagID)
	})
	if err != nil {
		return s.fail(ctx, "add tag", title, err)
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "note tagged", "note", title, "notebook", notebook, "tag", tag)
	return nil
}

func (s *noteTagService) RemoveTagFromNote(ctx context.Context, title, notebook, tag string) error {
	if err := validateText("tag_name", tag); err != nil {
		return s.fail(ctx, "remove tag", title, err)
	}

	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		note, err := s.note(ctx, title, notebook)
		if err != nil {
			return err
		}
		rec, err := s.tags.GetByName(ctx, tag)
		if err != nil {
			return err
		}
		return s.noteTags.Remove(ctx, note.ID, rec.ID)
	})
	if err != nil {
		return s.fail(ctx, "remove tag", title, err)
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "note untagged", "note", title, "notebook", notebook, "tag", tag)
	return nil
}

func (s *noteTagService) TagsForNote(ctx context.Context, title, notebook string) ([]string, error) {
	note, err := s.note(ctx, title, notebook)
	if err != nil {
		return nil, s.fail(ctx, "list tags", title, err)
	}
	tags, err := s.noteTags.TagsForNote(ctx, note.ID)
	if err != nil {
		return nil, s.fail(ctx, "list tags", title, err)
	}
	return tagNames(tags), nil
}

func (s *noteTagService) NotesForTag(ctx context.Context, tag string) ([]Note, error) {
	if err := validateText("tag_name", tag); err != nil {
		return nil, s.fail(ctx, "list notes", tag, err)
	}

	rec, err := s.tags.GetByName(ctx, tag)
	if err != nil {
		return nil, s.fail(ctx, "list notes", tag, err)
	}
	recs, err := s.noteTags.NotesForTag(ctx, rec.ID)
	if err != nil {
		return nil, s.fail(ctx, "list notes", tag, err)
	}

	notes := make([]Note, 0, len(recs))
	for _, n := range recs {
		path, err := s.fs.NotePath(n.NotebookName, n.Title)
		if err != nil {
			return nil, s.fail(ctx, "list notes", tag, err)
		}
		notes = append(notes, toNote(n, path))
	}
	return notes, nil
}

func (s *noteTagService) RemoveAllTagsForNote(ctx context.Context, title, notebook string) (int64, error) {
	var removed int64
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		note, err := s.note(ctx, title, notebook)
		if err != nil {
			return err
		}
		removed, err = s.noteTags.RemoveAllForNote(ctx, note.ID)
		return err
	})
	if err != nil {
		return 0, s.fail(ctx, "clear tags", title, err)
	}
	return removed, nil
}

func (s *noteTagService) RemoveAllNotesForTag(ctx context.Context, tag string) (int64, error) {
	if err := validateText("tag_name", tag); err != nil {
		return 0, s.fail(ctx, "clear notes", tag, err)
	}

	var removed int64
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		rec, err := s.tags.GetByName(ctx, tag)
		if err != nil {
			return err
		}
		removed, err = s.noteTags.RemoveAllForTag(ctx, rec.ID)
		return err
	})
	if err != nil {
		return 0, s.fail(ctx, "clear notes", tag, err)
	}
	return removed, nil
}
