package handlers

import (
	"net/http"
	"time"

	"knowgent/internal/service"
)

// NoteHandler handles HTTP requests for notes, their content and their tags.
type NoteHandler struct {
	notes    service.NoteService
	noteTags service.NoteTagService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(notes service.NoteService, noteTags service.NoteTagService) *NoteHandler {
	return &NoteHandler{
		notes:    notes,
		noteTags: noteTags,
	}
}

// NoteResponse represents a note in HTTP responses.
//
// swagger:model NoteResponse
type NoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Notebook  string    `json:"notebook"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateNoteRequest represents the payload for creating a note. When Content
// is present the note is created with it.
//
// swagger:model CreateNoteRequest
type CreateNoteRequest struct {
	Title   string  `json:"title"`
	Content *string `json:"content,omitempty"`
}

// UpdateNoteRequest represents the payload for renaming a note or moving it
// to another notebook.
//
// swagger:model UpdateNoteRequest
type UpdateNoteRequest struct {
	Title    *string `json:"title,omitempty"`
	Notebook *string `json:"notebook,omitempty"`
}

// ContentResponse carries a note's text.
//
// swagger:model ContentResponse
type ContentResponse struct {
	Content string `json:"content"`
}

// ContentRequest is the payload for replacing a note's text.
//
// swagger:model ContentRequest
type ContentRequest struct {
	Content *string `json:"content"`
}

// FindResponse lists the byte spans of every match.
//
// swagger:model FindResponse
type FindResponse struct {
	Term    string         `json:"term"`
	Count   int            `json:"count"`
	Matches []service.Span `json:"matches"`
}

// ReplaceRequest is the payload for a find-and-replace.
//
// swagger:model ReplaceRequest
type ReplaceRequest struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// ReplaceResponse reports how many occurrences were replaced.
//
// swagger:model ReplaceResponse
type ReplaceResponse struct {
	Replaced int `json:"replaced"`
}

// TagRequest names a tag to attach.
//
// swagger:model TagRequest
type TagRequest struct {
	Tag string `json:"tag"`
}

// TagsResponse lists tag names.
//
// swagger:model TagsResponse
type TagsResponse struct {
	Tags []string `json:"tags"`
}

func toNoteResponse(n service.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Notebook:  n.NotebookName,
		Path:      n.Path,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func toNoteResponses(notes []service.Note) []NoteResponse {
	resp := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, toNoteResponse(n))
	}
	return resp
}

// List handles GET /api/notebooks/{notebook}/notes.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	notes, err := h.notes.ListInNotebook(ctx, urlParam(r, "notebook"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list notes")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toNoteResponses(notes))
}

// Create handles POST /api/notebooks/{notebook}/notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	notebook := urlParam(r, "notebook")
	var (
		note service.Note
		err  error
	)
	if req.Content != nil {
		note, err = h.notes.SaveAs(ctx, req.Title, notebook, *req.Content)
	} else {
		note, err = h.notes.Create(ctx, req.Title, notebook)
	}
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create note")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, toNoteResponse(note))
}

// Get handles GET /api/notebooks/{notebook}/notes/{title}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	note, err := h.notes.Get(ctx, urlParam(r, "title"), urlParam(r, "notebook"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to get note")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toNoteResponse(note))
}

// Update handles PATCH /api/notebooks/{notebook}/notes/{title}.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req UpdateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := h.notes.Update(ctx, urlParam(r, "title"), urlParam(r, "notebook"), service.NoteUpdate{
		NewTitle:        req.Title,
		NewNotebookName: req.Notebook,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update note")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toNoteResponse(note))
}

// Delete handles DELETE /api/notebooks/{notebook}/notes/{title}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.notes.Delete(ctx, urlParam(r, "title"), urlParam(r, "notebook")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete note")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetContent handles GET /api/notebooks/{notebook}/notes/{title}/content.
func (h *NoteHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	content, err := h.notes.Content(ctx, urlParam(r, "title"), urlParam(r, "notebook"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to read note")
		return
	}
	writeJSON(ctx, w, http.StatusOK, ContentResponse{Content: content})
}

// PutContent handles PUT /api/notebooks/{notebook}/notes/{title}/content.
func (h *NoteHandler) PutContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req ContentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Content == nil {
		writeError(w, http.StatusBadRequest, "content is required", service.KindValidation.String())
		return
	}

	if err := h.notes.SaveContent(ctx, urlParam(r, "title"), urlParam(r, "notebook"), *req.Content); err != nil {
		handleServiceError(w, ctx, err, "Failed to save note")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Find handles GET /api/notebooks/{notebook}/notes/{title}/find?term=.
func (h *NoteHandler) Find(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	term := r.URL.Query().Get("term")
	spans, err := h.notes.Find(ctx, urlParam(r, "title"), urlParam(r, "notebook"), term)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to search note")
		return
	}
	writeJSON(ctx, w, http.StatusOK, FindResponse{Term: term, Count: len(spans), Matches: spans})
}

// Replace handles POST /api/notebooks/{notebook}/notes/{title}/replace.
func (h *NoteHandler) Replace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req ReplaceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	n, err := h.notes.Replace(ctx, urlParam(r, "title"), urlParam(r, "notebook"), req.Old, req.New)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to replace in note")
		return
	}
	writeJSON(ctx, w, http.StatusOK, ReplaceResponse{Replaced: n})
}

// ListTags handles GET /api/notebooks/{notebook}/notes/{title}/tags.
func (h *NoteHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tags, err := h.noteTags.TagsForNote(ctx, urlParam(r, "title"), urlParam(r, "notebook"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list note tags")
		return
	}
	writeJSON(ctx, w, http.StatusOK, TagsResponse{Tags: tags})
}

// AddTag handles POST /api/notebooks/{notebook}/notes/{title}/tags.
func (h *NoteHandler) AddTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req TagRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	title, notebook := urlParam(r, "title"), urlParam(r, "notebook")
	if err := h.noteTags.AddTagToNote(ctx, title, notebook, req.Tag); err != nil {
		handleServiceError(w, ctx, err, "Failed to tag note")
		return
	}
	tags, err := h.noteTags.TagsForNote(ctx, title, notebook)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list note tags")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, TagsResponse{Tags: tags})
}

// RemoveTag handles DELETE /api/notebooks/{notebook}/notes/{title}/tags/{tag}.
func (h *NoteHandler) RemoveTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.noteTags.RemoveTagFromNote(ctx, urlParam(r, "title"), urlParam(r, "notebook"), urlParam(r, "tag")); err != nil {
		handleServiceError(w, ctx, err, "Failed to untag note")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearTags handles DELETE /api/notebooks/{notebook}/notes/{title}/tags.
func (h *NoteHandler) ClearTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	n, err := h.noteTags.RemoveAllTagsForNote(ctx, urlParam(r, "title"), urlParam(r, "notebook"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to untag note")
		return
	}
	writeJSON(ctx, w, http.StatusOK, RemovedResponse{Removed: n})
}
