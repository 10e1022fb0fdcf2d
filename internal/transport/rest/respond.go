package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/folioview/backend/internal/domain"
	"github.com/folioview/backend/pkg/ctxutil"
)

// ErrorResponse is the JSON error envelope for every non-2xx response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine-readable code, a human message, and optional
// per-field details for validation failures.
type ErrorBody struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Fields  []FieldErrorBody `json:"fields,omitempty"`
}

// FieldErrorBody is one field-level validation problem.
type FieldErrorBody struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondError maps domain errors to HTTP status codes and writes the error
// envelope. Unrecognized errors become 500 with a generic message; the cause
// is logged, not leaked.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		fields := make([]FieldErrorBody, len(vErr.Errors))
		for i, fe := range vErr.Errors {
			fields[i] = FieldErrorBody{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
			Code:    "validation_failed",
			Message: "request validation failed",
			Fields:  fields,
		}})
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
			Code:    "validation_failed",
			Message: err.Error(),
		}})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: ErrorBody{
			Code:    "not_found",
			Message: "resource not found",
		}})
	case errors.Is(err, domain.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: ErrorBody{
			Code:    "already_exists",
			Message: "resource already exists",
		}})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: ErrorBody{
			Code:    "unauthorized",
			Message: "unauthorized",
		}})
	default:
		log.Error("request failed",
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorBody{
			Code:    "internal",
			Message: "internal server error",
		}})
	}
}

// respondBadRequest writes a 400 with a fixed code for malformed payloads.
func respondBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
		Code:    "bad_request",
		Message: message,
	}})
}
