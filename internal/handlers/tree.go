package handlers

import (
	"net/http"

	"knowgent/internal/service"
)

// TreeHandler serves every notebook with its notes.
type TreeHandler struct {
	notebooks service.NotebookService
}

// NewTreeHandler creates a new TreeHandler.
func NewTreeHandler(notebooks service.NotebookService) *TreeHandler {
	return &TreeHandler{notebooks: notebooks}
}

// TreeNotebookResponse is one notebook of the tree.
//
// swagger:model TreeNotebookResponse
type TreeNotebookResponse struct {
	NotebookResponse
	Notes []NoteResponse `json:"notes"`
}

// ServeHTTP handles GET /api/tree.
func (h *TreeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tree, err := h.notebooks.Tree(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load notebook tree")
		return
	}

	resp := make([]TreeNotebookResponse, 0, len(tree))
	for _, t := range tree {
		resp = append(resp, TreeNotebookResponse{
			NotebookResponse: toNotebookResponse(t.Notebook),
			Notes:            toNoteResponses(t.Notes),
		})
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}
