package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"knowgent/internal/contextutil"
	"knowgent/internal/service"
)

// ErrorResponse represents an error response.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
	// Kind is the error class: validation, not_found, duplicate, filesystem, database or unknown.
	Kind string `json:"kind,omitempty"`
}

// maxBodyBytes caps request bodies. Note content is the largest payload.
const maxBodyBytes = 8 << 20

// writeJSON writes v as a JSON response with the given status.
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message, kind string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
		Kind:  kind,
	})
}

// decodeJSON reads a JSON request body into v. Unknown fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	ctx := r.Context()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		msg := "Invalid request body"
		if errors.Is(err, io.EOF) {
			msg = "Request body is required"
		}
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, msg, service.KindValidation.String())
		return false
	}
	return true
}

// statusFor maps a service error kind to an HTTP status code.
func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindDuplicate:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
// Server-side failures get a generic message; client errors echo the cause.
func handleServiceError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)
	kind := service.KindOf(err)
	status := statusFor(kind)

	if status == http.StatusInternalServerError {
		logger.ErrorContext(ctx, "service error", "error", err, "kind", kind.String())
		writeError(w, status, defaultMsg, kind.String())
		return
	}

	logger.WarnContext(ctx, "request failed", "error", err, "kind", kind.String())
	writeError(w, status, err.Error(), kind.String())
}
