package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"knowgent/internal/service"
)

// NotebookHandler handles HTTP requests for notebooks.
type NotebookHandler struct {
	notebooks service.NotebookService
}

// NewNotebookHandler creates a new NotebookHandler.
func NewNotebookHandler(notebooks service.NotebookService) *NotebookHandler {
	return &NotebookHandler{notebooks: notebooks}
}

// NotebookResponse represents a notebook in HTTP responses.
//
// swagger:model NotebookResponse
type NotebookResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Path        string    `json:"path"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateNotebookRequest represents the payload for creating a notebook.
//
// swagger:model CreateNotebookRequest
type CreateNotebookRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateNotebookRequest represents the payload for renaming or re-describing
// a notebook. Omitted fields are left unchanged.
//
// swagger:model UpdateNotebookRequest
type UpdateNotebookRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func toNotebookResponse(nb service.Notebook) NotebookResponse {
	return NotebookResponse{
		ID:          nb.ID,
		Name:        nb.Name,
		Description: nb.Description,
		Path:        nb.Path,
		CreatedAt:   nb.CreatedAt,
		UpdatedAt:   nb.UpdatedAt,
	}
}

// urlParam returns a decoded chi path parameter. chi matches on the raw path
// when it holds escapes such as %2F, so those values arrive still encoded.
func urlParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if decoded, err := url.PathUnescape(v); err == nil {
		return decoded
	}
	return v
}

// List handles GET /api/notebooks.
func (h *NotebookHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	notebooks, err := h.notebooks.List(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list notebooks")
		return
	}

	resp := make([]NotebookResponse, 0, len(notebooks))
	for _, nb := range notebooks {
		resp = append(resp, toNotebookResponse(nb))
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// Create handles POST /api/notebooks.
func (h *NotebookHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateNotebookRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	nb, err := h.notebooks.Create(ctx, req.Name, req.Description)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create notebook")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, toNotebookResponse(nb))
}

// Get handles GET /api/notebooks/{notebook}.
func (h *NotebookHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	nb, err := h.notebooks.Get(ctx, urlParam(r, "notebook"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get notebook")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toNotebookResponse(nb))
}

// Update handles PATCH /api/notebooks/{notebook}.
func (h *NotebookHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req UpdateNotebookRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	nb, err := h.notebooks.Update(ctx, urlParam(r, "notebook"), service.NotebookUpdate{
		NewName:        req.Name,
		NewDescription: req.Description,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update notebook")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toNotebookResponse(nb))
}

// Delete handles DELETE /api/notebooks/{notebook}.
func (h *NotebookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.notebooks.Delete(ctx, urlParam(r, "notebook")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete notebook")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
