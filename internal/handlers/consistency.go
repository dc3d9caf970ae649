package handlers

import (
	"net/http"

	"knowgent/internal/service"
)

// ConsistencyHandler reports drift between the store and the base path.
type ConsistencyHandler struct {
	checker service.ConsistencyChecker
}

// NewConsistencyHandler creates a new ConsistencyHandler.
func NewConsistencyHandler(checker service.ConsistencyChecker) *ConsistencyHandler {
	return &ConsistencyHandler{checker: checker}
}

// NoteRefResponse identifies a note by notebook and title.
//
// swagger:model NoteRefResponse
type NoteRefResponse struct {
	Notebook string `json:"notebook"`
	Title    string `json:"title"`
}

// ConsistencyResponse lists where the store and the filesystem disagree.
//
// swagger:model ConsistencyResponse
type ConsistencyResponse struct {
	Consistent   bool              `json:"consistent"`
	MissingDirs  []string          `json:"missing_dirs"`
	OrphanDirs   []string          `json:"orphan_dirs"`
	MissingFiles []NoteRefResponse `json:"missing_files"`
	OrphanFiles  []NoteRefResponse `json:"orphan_files"`
}

func toNoteRefs(refs []service.NoteRef) []NoteRefResponse {
	out := make([]NoteRefResponse, 0, len(refs))
	for _, ref := range refs {
		out = append(out, NoteRefResponse{Notebook: ref.Notebook, Title: ref.Title})
	}
	return out
}

// ServeHTTP handles GET /api/consistency.
func (h *ConsistencyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	report, err := h.checker.Check(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to check consistency")
		return
	}

	missingDirs, orphanDirs := report.MissingDirs, report.OrphanDirs
	if missingDirs == nil {
		missingDirs = []string{}
	}
	if orphanDirs == nil {
		orphanDirs = []string{}
	}
	writeJSON(ctx, w, http.StatusOK, ConsistencyResponse{
		Consistent:   report.Consistent(),
		MissingDirs:  missingDirs,
		OrphanDirs:   orphanDirs,
		MissingFiles: toNoteRefs(report.MissingFiles),
		OrphanFiles:  toNoteRefs(report.OrphanFiles),
	})
}
