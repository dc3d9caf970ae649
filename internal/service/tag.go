package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_tag_service.go -package=mocks knowgent/internal/service TagService

import (
	"context"

	"knowgent/internal/contextutil"
	"knowgent/internal/storage"
)

// TagService manages tags. Tags live only in the store.
type TagService interface {
	Create(ctx context.Context, name string) error
	// Get returns the tag name if it exists.
	Get(ctx context.Context, name string) (string, error)
	Rename(ctx context.Context, name, newName string) error
	// Delete removes a tag and its note links.
	Delete(ctx context.Context, name string) error
	// List returns all tag names in order.
	List(ctx context.Context) ([]string, error)
}

// tagService implements TagService.
type tagService struct {
	tags storage.TagStore
}

// NewTagService creates a new TagService.
func NewTagService(tags storage.TagStore) TagService {
	return &tagService{tags: tags}
}

func (s *tagService) fail(ctx context.Context, op, name string, err error) error {
	logger := contextutil.LoggerFromContext(ctx)
	if KindOf(err) == KindValidation {
		logger.WarnContext(ctx, "tag request rejected", "op", op, "tag", name, "error", err)
	} else {
		logger.ErrorContext(ctx, "tag operation failed", "op", op, "tag", name, "error", err)
	}
	return newError(EntityTag, op, name, err)
}

func (s *tagService) Create(ctx context.Context, name string) error {
	if err := validateText("tag_name", name); err != nil {
		return s.fail(ctx, "create", name, err)
	}
	id, err := s.tags.Create(ctx, name)
	if err != nil {
		return s.fail(ctx, "create", name, err)
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "tag created", "tag", name, "id", id)
	return nil
}

func (s *tagService) Get(ctx context.Context, name string) (string, error) {
	if err := validateText("tag_name", name); err != nil {
		return "", s.fail(ctx, "get", name, err)
	}
	tag, err := s.tags.GetByName(ctx, name)
	if err != nil {
		return "", s.fail(ctx, "get", name, err)
	}
	return tag.Name, nil
}

func (s *tagService) Rename(ctx context.Context, name, newName string) error {
	if err := validateText("tag_name", name); err != nil {
		return s.fail(ctx, "rename", name, err)
	}
	if err := validateText("new_name", newName); err != nil {
		return s.fail(ctx, "rename", name, err)
	}

	tag, err := s.tags.GetByName(ctx, name)
	if err != nil {
		return s.fail(ctx, "rename", name, err)
	}
	if err := s.tags.Rename(ctx, tag.ID, newName); err != nil {
		return s.fail(ctx, "rename", name, err)
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "tag renamed", "tag", name, "new_name", newName)
	return nil
}

func (s *tagService) Delete(ctx context.Context, name string) error {
	if err := validateText("tag_name", name); err != nil {
		return s.fail(ctx, "delete", name, err)
	}

	tag, err := s.tags.GetByName(ctx, name)
	if err != nil {
		return s.fail(ctx, "delete", name, err)
	}
	if err := s.tags.Delete(ctx, tag.ID); err != nil {
		return s.fail(ctx, "delete", name, err)
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "tag deleted", "tag", name)
	return nil
}

func (s *tagService) List(ctx context.Context) ([]string, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list", "", err)
	}
	return tagNames(tags), nil
}

func tagNames(tags []storage.TagRecord) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}
