package handlers

import (
	"net/http"

	"knowgent/internal/service"
)

// TagHandler handles HTTP requests for tags.
type TagHandler struct {
	tags     service.TagService
	noteTags service.NoteTagService
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tags service.TagService, noteTags service.NoteTagService) *TagHandler {
	return &TagHandler{
		tags:     tags,
		noteTags: noteTags,
	}
}

// TagResponse represents a tag in HTTP responses.
//
// swagger:model TagResponse
type TagResponse struct {
	Name string `json:"name"`
}

// CreateTagRequest represents the payload for creating a tag.
//
// swagger:model CreateTagRequest
type CreateTagRequest struct {
	Name string `json:"name"`
}

// RenameTagRequest represents the payload for renaming a tag.
//
// swagger:model RenameTagRequest
type RenameTagRequest struct {
	Name string `json:"name"`
}

// RemovedResponse reports how many links were removed.
//
// swagger:model RemovedResponse
type RemovedResponse struct {
	Removed int64 `json:"removed"`
}

// List handles GET /api/tags.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	names, err := h.tags.List(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list tags")
		return
	}
	writeJSON(ctx, w, http.StatusOK, TagsResponse{Tags: names})
}

// Create handles POST /api/tags.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateTagRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.tags.Create(ctx, req.Name); err != nil {
		handleServiceError(w, ctx, err, "Failed to create tag")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, TagResponse{Name: req.Name})
}

// Get handles GET /api/tags/{tag}.
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name, err := h.tags.Get(ctx, urlParam(r, "tag"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get tag")
		return
	}
	writeJSON(ctx, w, http.StatusOK, TagResponse{Name: name})
}

// Rename handles PATCH /api/tags/{tag}.
func (h *TagHandler) Rename(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req RenameTagRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.tags.Rename(ctx, urlParam(r, "tag"), req.Name); err != nil {
		handleServiceError(w, ctx, err, "Failed to rename tag")
		return
	}
	writeJSON(ctx, w, http.StatusOK, TagResponse{Name: req.Name})
}

// Delete handles DELETE /api/tags/{tag}.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.tags.Delete(ctx, urlParam(r, "tag")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete tag")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Notes handles GET /api/tags/{tag}/notes.
func (h *TagHandler) Notes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	notes, err := h.noteTags.NotesForTag(ctx, urlParam(r, "tag"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list tagged notes")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toNoteResponses(notes))
}

// ClearNotes handles DELETE /api/tags/{tag}/notes.
func (h *TagHandler) ClearNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	n, err := h.noteTags.RemoveAllNotesForTag(ctx, urlParam(r, "tag"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to untag notes")
		return
	}
	writeJSON(ctx, w, http.StatusOK, RemovedResponse{Removed: n})
}
