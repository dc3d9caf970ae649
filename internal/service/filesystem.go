package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_filesystem.go -package=mocks knowgent/internal/service FileSystem

import (
	"context"

	"knowgent/internal/workspace"
)

// FileSystem is the on-disk mirror the services keep in step with the store.
// It is implemented by *workspace.Manager.
type FileSystem interface {
	NotebookDir(notebook string) (string, error)
	NotePath(notebook, title string) (string, error)
	Exists(path string) bool
	// EnsureDir creates path if missing and reports whether it did.
	EnsureDir(path string) (bool, error)
	// Rename fails if the target exists.
	Rename(from, to string) error
	CreateExclusive(path string) error
	Remove(path string) error
	RemoveTree(path string) error
	ReadContent(path string) (string, error)
	WriteContent(path, content string) error
	// ReadRaw and WriteRaw move bytes without decoding, for exact restores.
	ReadRaw(path string) ([]byte, error)
	WriteRaw(path string, data []byte) error
	TrashPath(path string) (string, error)
	Scan(ctx context.Context) (workspace.ScanResult, error)
}

var _ FileSystem = (*workspace.Manager)(nil)
