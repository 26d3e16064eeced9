// Package domainerrors defines the coded error taxonomy shared by services
// and the HTTP layer. Services return these errors; httputil translates them
// to status codes and JSON envelopes without leaking internal detail.
package domainerrors

import "net/http"

// Code identifies the class of a domain error.
type Code string

const (
	// CodeValidation marks caller-supplied data that violates a domain
	// invariant. Recoverable by correcting the input; never retried.
	CodeValidation Code = "validation_error"
	// CodeBadRequest marks malformed or incomplete requests (transport-level
	// problems, as opposed to domain validation).
	CodeBadRequest Code = "bad_request"
	// CodeNotFound marks requests for entities that do not exist.
	CodeNotFound Code = "not_found"
	// CodeUnsupportedMedia marks request bodies in a format the API does not
	// accept.
	CodeUnsupportedMedia Code = "unsupported_media_type"
	// CodeInternal marks infrastructure failures (storage I/O, connectivity).
	// Descriptions for internal errors are never echoed to clients.
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error. Kind is set only for validation errors and
// names the specific invariant that was violated (e.g. "invalid_status") so
// clients can react programmatically.
type Error struct {
	Code        Code
	Kind        string
	Description string
}

func (e *Error) Error() string {
	if e.Kind != "" {
		return string(e.Code) + " (" + e.Kind + "): " + e.Description
	}
	return string(e.Code) + ": " + e.Description
}

// New constructs a coded error.
func New(code Code, description string) *Error {
	return &Error{Code: code, Description: description}
}

// NewValidation constructs a validation error carrying its kind.
func NewValidation(kind, description string) *Error {
	return &Error{Code: CodeValidation, Kind: kind, Description: description}
}

// ToHTTPStatus maps an error code to its HTTP status class.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
