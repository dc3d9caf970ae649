package workspace

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// ScannedNote is a note file found during a scan.
type ScannedNote struct {
	Notebook string // Directory name under the base path
	Title    string // File name without the .md extension
	AbsPath  string
}

// ScanResult lists what is on disk under the base path.
type ScanResult struct {
	Notebooks []string // Notebook directory names
	Notes     []ScannedNote
}

// Scan lists the notebook directories under the base path and the note files
// directly inside each one. Hidden entries (trash, temp files) are skipped.
func (m *Manager) Scan(ctx context.Context) (ScanResult, error) {
	var result ScanResult

	dirs, err := os.ReadDir(m.basePath)
	if err != nil {
		return result, &FileSystemError{Op: "scan", Path: m.basePath, Err: err}
	}

	for _, dir := range dirs {
		// Check for context cancellation
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if !dir.IsDir() || strings.HasPrefix(dir.Name(), ".") {
			continue
		}
		result.Notebooks = append(result.Notebooks, dir.Name())

		dirPath := filepath.Join(m.basePath, dir.Name())
		files, err := os.ReadDir(dirPath)
		if err != nil {
			return result, &FileSystemError{Op: "scan", Path: dirPath, Err: err}
		}

		for _, file := range files {
			name := file.Name()
			if file.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != NoteExt {
				continue
			}
			result.Notes = append(result.Notes, ScannedNote{
				Notebook: dir.Name(),
				Title:    strings.TrimSuffix(name, NoteExt),
				AbsPath:  filepath.Join(dirPath, name),
			})
		}
	}

	return result, nil
}
