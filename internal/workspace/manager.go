// Package workspace mirrors notebooks and notes on disk: one directory per
// notebook under the base path and one Markdown file per note.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// NoteExt is the file extension of note files.
const NoteExt = ".md"

const maxNameBytes = 255

var (
	// ErrInvalidName is returned when a notebook or note name cannot be used
	// as a single path segment.
	ErrInvalidName = errors.New("invalid name")
	// ErrPathEscape is returned when a path resolves outside the base path.
	ErrPathEscape = errors.New("path escapes base path")
)

// FileSystemError wraps a failed filesystem operation.
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("filesystem error during %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error {
	return e.Err
}

// Manager owns the base path and every file operation below it.
type Manager struct {
	basePath string
}

// NewManager creates a manager rooted at basePath, creating the directory if needed.
func NewManager(basePath string) (*Manager, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("base path cannot be empty")
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base path: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, &FileSystemError{Op: "mkdir", Path: abs, Err: err}
	}
	return &Manager{basePath: abs}, nil
}

// BasePath returns the absolute base path.
func (m *Manager) BasePath() string {
	return m.basePath
}

// ValidateName checks that name is usable as one path segment.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: cannot be empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: cannot start with a dot", ErrInvalidName)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: cannot contain path separators", ErrInvalidName)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: cannot contain NUL", ErrInvalidName)
	case len(name) > maxNameBytes:
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidName, maxNameBytes)
	}
	return nil
}

// NotebookDir returns the directory of a notebook.
func (m *Manager) NotebookDir(notebook string) (string, error) {
	if err := ValidateName(notebook); err != nil {
		return "", err
	}
	return m.safePath(notebook)
}

// NotePath returns the file path of a note: <base>/<notebook>/<title>.md.
func (m *Manager) NotePath(notebook, title string) (string, error) {
	if err := ValidateName(notebook); err != nil {
		return "", err
	}
	if err := ValidateName(title + NoteExt); err != nil {
		return "", err
	}
	return m.safePath(filepath.Join(notebook, title+NoteExt))
}

// safePath resolves rel against the base path and checks it stays inside.
func (m *Manager) safePath(rel string) (string, error) {
	return m.within(filepath.Join(m.basePath, rel))
}

func (m *Manager) within(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	if !strings.HasPrefix(abs, m.basePath+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscape, path)
	}
	return abs, nil
}

// Exists reports whether path exists.
func (m *Manager) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// EnsureDir creates path if missing. It reports whether this call created it.
func (m *Manager) EnsureDir(path string) (bool, error) {
	path, err := m.within(path)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return false, &FileSystemError{Op: "mkdir", Path: path, Err: fmt.Errorf("not a directory")}
		}
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, &FileSystemError{Op: "stat", Path: path, Err: err}
	}

	if err := os.Mkdir(path, 0o755); err != nil {
		return false, &FileSystemError{Op: "mkdir", Path: path, Err: err}
	}
	return true, nil
}

// Rename moves from to to. It fails if to already exists.
func (m *Manager) Rename(from, to string) error {
	from, err := m.within(from)
	if err != nil {
		return err
	}
	to, err = m.within(to)
	if err != nil {
		return err
	}

	if m.Exists(to) {
		return &FileSystemError{Op: "rename", Path: to, Err: fs.ErrExist}
	}
	if err := os.Rename(from, to); err != nil {
		return &FileSystemError{Op: "rename", Path: from, Err: err}
	}
	return nil
}

// CreateExclusive creates an empty file, failing if it already exists.
func (m *Manager) CreateExclusive(path string) error {
	path, err := m.within(path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return &FileSystemError{Op: "create", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FileSystemError{Op: "create", Path: path, Err: err}
	}
	return nil
}

// Remove deletes a single file or empty directory.
func (m *Manager) Remove(path string) error {
	path, err := m.within(path)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return &FileSystemError{Op: "remove", Path: path, Err: err}
	}
	return nil
}

// RemoveTree deletes a directory and everything below it: files are unlinked,
// subdirectories handled recursively, then the emptied directory is removed.
func (m *Manager) RemoveTree(path string) error {
	path, err := m.within(path)
	if err != nil {
		return err
	}
	return removeTree(path)
}

func removeTree(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &FileSystemError{Op: "read dir", Path: dir, Err: err}
	}

	for _, entry := range entries {
		p := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := removeTree(p); err != nil {
				return err
			}
			continue
		}
		if err := os.Remove(p); err != nil {
			return &FileSystemError{Op: "remove", Path: p, Err: err}
		}
	}

	if err := os.Remove(dir); err != nil {
		return &FileSystemError{Op: "remove", Path: dir, Err: err}
	}
	return nil
}

// TrashPath returns a hidden sibling of path to park it in until the
// surrounding operation commits. Hidden entries are skipped by Scan.
func (m *Manager) TrashPath(path string) (string, error) {
	path, err := m.within(path)
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(path), ".trash-"+uuid.NewString()), nil
}
