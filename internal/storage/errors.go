package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrNotConnected is returned when the store has no open connection.
	ErrNotConnected = errors.New("store is not connected")

	ErrNotebookNotFound = fmt.Errorf("notebook %w", ErrNotFound)
	ErrNoteNotFound     = fmt.Errorf("note %w", ErrNotFound)
	ErrTagNotFound      = fmt.Errorf("tag %w", ErrNotFound)

	ErrDuplicateNotebook = fmt.Errorf("notebook: %w", ErrDuplicate)
	ErrDuplicateNote     = fmt.Errorf("note: %w", ErrDuplicate)
	ErrDuplicateTag      = fmt.Errorf("tag: %w", ErrDuplicate)
	ErrDuplicateNoteTag  = fmt.Errorf("note tag: %w", ErrDuplicate)
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// DatabaseError wraps a store failure that is neither a missing row nor a
// uniqueness violation.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database error during %s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// isUniqueViolation reports whether err carries a SQLite UNIQUE or PRIMARY KEY
// constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

// isForeignKeyViolation reports whether err carries a SQLite FOREIGN KEY
// constraint failure.
func isForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}

// classify reclassifies a store failure. Uniqueness violations become dup,
// foreign key violations become missing (when set), and anything else is
// returned unchanged.
func classify(err, dup, missing error) error {
	switch {
	case err == nil:
		return nil
	case dup != nil && isUniqueViolation(err):
		return dup
	case missing != nil && isForeignKeyViolation(err):
		return missing
	default:
		return err
	}
}

func validateName(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "cannot be empty"}
	}
	return nil
}

func validateID(field string, id int64) error {
	if id <= 0 {
		return &ValidationError{Field: field, Message: "must be a positive integer"}
	}
	return nil
}
