package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"knowgent/internal/storage"
	"knowgent/internal/workspace"
)

// ValidationError represents a validation error with a field name.
type ValidationError = storage.ValidationError

// Entity names the kind of object a service error is about.
type Entity string

const (
	EntityNotebook Entity = "notebook"
	EntityNote     Entity = "note"
	EntityTag      Entity = "tag"
	EntityNoteTag  Entity = "note tag"
)

// Kind classifies the root cause of a failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindDuplicate
	KindFileSystem
	KindDatabase
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindDuplicate:
		return "duplicate"
	case KindFileSystem:
		return "filesystem"
	case KindDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by services. Entity says which
// service failed, Subject is the name or title the call was about, and Err is
// the underlying cause.
type Error struct {
	Entity  Entity
	Op      string
	Subject string
	Err     error
}

func (e *Error) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("%s error: failed to %s: %v", e.Entity, e.Op, e.Err)
	}
	return fmt.Sprintf("%s error: failed to %s %q: %v", e.Entity, e.Op, e.Subject, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Kind returns the kind of the wrapped cause.
func (e *Error) Kind() Kind {
	return KindOf(e.Err)
}

func newError(entity Entity, op, subject string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Entity: entity, Op: op, Subject: subject, Err: err}
}

// IsEntityError reports whether err is a service error about entity.
func IsEntityError(err error, entity Entity) bool {
	var svcErr *Error
	return errors.As(err, &svcErr) && svcErr.Entity == entity
}

// KindOf classifies err by walking its chain.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var validationErr *ValidationError
	var fsErr *workspace.FileSystemError
	var dbErr *storage.DatabaseError

	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, workspace.ErrInvalidName),
		errors.Is(err, workspace.ErrPathEscape):
		return KindValidation
	case errors.Is(err, storage.ErrNotFound):
		return KindNotFound
	case errors.Is(err, storage.ErrDuplicate):
		return KindDuplicate
	case errors.As(err, &fsErr):
		return KindFileSystem
	case errors.As(err, &dbErr):
		return KindDatabase
	default:
		return KindUnknown
	}
}

// validateContent rejects text that would not read back byte for byte.
func validateContent(content string) error {
	if !utf8.ValidString(content) {
		return &ValidationError{Field: "content", Message: "must be valid UTF-8"}
	}
	return nil
}

// validateName checks a notebook name or note title. Both become path
// segments, so the filesystem rules apply.
func validateName(field, value string) error {
	if err := workspace.ValidateName(value); err != nil {
		return &ValidationError{Field: field, Message: err.Error()}
	}
	return nil
}

func validateText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "cannot be empty"}
	}
	return nil
}
