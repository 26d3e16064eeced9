// Package httputil centralizes JSON response writing and request decoding so
// handlers stay thin and error envelopes stay consistent across endpoints.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	dErrors "abgs/pkg/domain-errors"
)

// ErrorResponse is the JSON envelope for all error responses.
// Kind is present only for validation errors; ErrorDescription is omitted
// for internal errors so infrastructure detail never reaches clients.
type ErrorResponse struct {
	Error            string `json:"error"`
	Kind             string `json:"kind,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into an HTTP response. Errors that are
// not coded domain errors are treated as internal failures.
func WriteError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Error: string(dErrors.CodeInternal)}
	status := http.StatusInternalServerError

	var dErr *dErrors.Error
	if errors.As(err, &dErr) {
		status = dErrors.ToHTTPStatus(dErr.Code)
		resp.Error = string(dErr.Code)
		resp.Kind = dErr.Kind
		if dErr.Code != dErrors.CodeInternal {
			resp.ErrorDescription = dErr.Description
		}
	}

	WriteJSON(w, status, resp)
}

// Validatable is implemented by request DTOs that validate and normalize
// themselves after decoding.
type Validatable interface {
	Validate() error
}

type validatablePtr[T any] interface {
	*T
	Validatable
}

// DecodeAndPrepare decodes the request body into T and runs its Validate
// method. On failure it writes the error response and returns ok=false; the
// handler should simply return.
func DecodeAndPrepare[T any, PT validatablePtr[T]](w http.ResponseWriter, r *http.Request, logger *slog.Logger, ctx context.Context, requestID string) (PT, bool) {
	var zero PT
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "failed to decode request body",
			"request_id", requestID,
			"error", err,
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "request body must be valid JSON"))
		return zero, false
	}

	pt := PT(&req)
	if err := pt.Validate(); err != nil {
		WriteError(w, err)
		return zero, false
	}
	return pt, true
}
