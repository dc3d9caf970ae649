package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_consistency_checker.go -package=mocks knowgent/internal/service ConsistencyChecker

import (
	"context"
	"sort"

	"knowgent/internal/contextutil"
	"knowgent/internal/storage"
)

// ConsistencyChecker compares the store with the files under the base path.
type ConsistencyChecker interface {
	Check(ctx context.Context) (ConsistencyReport, error)
}

// consistencyChecker implements ConsistencyChecker.
type consistencyChecker struct {
	tx        storage.Transactor
	notebooks storage.NotebookStore
	notes     storage.NoteStore
	fs        FileSystem
}

// NewConsistencyChecker creates a new ConsistencyChecker.
func NewConsistencyChecker(tx storage.Transactor, notebooks storage.NotebookStore, notes storage.NoteStore, fs FileSystem) ConsistencyChecker {
	return &consistencyChecker{
		tx:        tx,
		notebooks: notebooks,
		notes:     notes,
		fs:        fs,
	}
}

// Check reports notebooks without a directory, directories without a
// notebook, notes without a file and note files without a note.
func (c *consistencyChecker) Check(ctx context.Context) (ConsistencyReport, error) {
	logger := contextutil.LoggerFromContext(ctx)

	var (
		notebooks []storage.NotebookRecord
		notes     []storage.NoteRecord
	)
	err := c.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		if notebooks, err = c.notebooks.List(ctx); err != nil {
			return err
		}
		notes, err = c.notes.List(ctx)
		return err
	})
	if err != nil {
		logger.ErrorContext(ctx, "consistency check failed", "error", err)
		return ConsistencyReport{}, newError(EntityNotebook, "check consistency", "", err)
	}

	scan, err := c.fs.Scan(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "consistency check failed", "error", err)
		return ConsistencyReport{}, newError(EntityNotebook, "check consistency", "", err)
	}

	onDiskDirs := make(map[string]bool, len(scan.Notebooks))
	for _, name := range scan.Notebooks {
		onDiskDirs[name] = true
	}
	onDiskFiles := make(map[NoteRef]bool, len(scan.Notes))
	for _, n := range scan.Notes {
		onDiskFiles[NoteRef{Notebook: n.Notebook, Title: n.Title}] = true
	}

	report := ConsistencyReport{
		MissingDirs:  []string{},
		OrphanDirs:   []string{},
		MissingFiles: []NoteRef{},
		OrphanFiles:  []NoteRef{},
	}

	known := make(map[string]bool, len(notebooks))
	for _, nb := range notebooks {
		known[nb.Name] = true
		if !onDiskDirs[nb.Name] {
			report.MissingDirs = append(report.MissingDirs, nb.Name)
		}
	}
	for _, name := range scan.Notebooks {
		if !known[name] {
			report.OrphanDirs = append(report.OrphanDirs, name)
		}
	}

	knownNotes := make(map[NoteRef]bool, len(notes))
	for _, n := range notes {
		ref := NoteRef{Notebook: n.NotebookName, Title: n.Title}
		knownNotes[ref] = true
		if !onDiskFiles[ref] {
			report.MissingFiles = append(report.MissingFiles, ref)
		}
	}
	for _, n := range scan.Notes {
		ref := NoteRef{Notebook: n.Notebook, Title: n.Title}
		if !knownNotes[ref] {
			report.OrphanFiles = append(report.OrphanFiles, ref)
		}
	}

	sort.Strings(report.OrphanDirs)
	sort.Slice(report.OrphanFiles, func(i, j int) bool {
		a, b := report.OrphanFiles[i], report.OrphanFiles[j]
		if a.Notebook != b.Notebook {
			return a.Notebook < b.Notebook
		}
		return a.Title < b.Title
	})

	logger.InfoContext(ctx, "consistency check finished",
		"consistent", report.Consistent(),
		"missing_dirs", len(report.MissingDirs),
		"orphan_dirs", len(report.OrphanDirs),
		"missing_files", len(report.MissingFiles),
		"orphan_files", len(report.OrphanFiles),
	)
	return report, nil
}
