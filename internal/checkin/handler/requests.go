package handler

import (
	"strings"
	"time"

	dErrors "abgs/pkg/domain-errors"
)

// SubmitRequest is the HTTP request body for POST /checkins.
//
// Only transport-level concerns are checked here (required fields, size
// caps). Goal-name emptiness and the closed status set are domain invariants
// and stay with the service, so they are enforced on every caller, not just
// this endpoint.
type SubmitRequest struct {
	UserID    string     `json:"user_id"`
	GoalName  string     `json:"goal_name"`
	Status    string     `json:"status"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Validate validates and normalizes the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *SubmitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	// Size validation (fail fast)
	if len(r.UserID) > 100 {
		return dErrors.New(dErrors.CodeBadRequest, "user_id must be at most 100 characters")
	}
	if len(r.GoalName) > 200 {
		return dErrors.New(dErrors.CodeBadRequest, "goal_name must be at most 200 characters")
	}

	// Required fields
	r.UserID = strings.TrimSpace(r.UserID)
	if r.UserID == "" {
		return dErrors.New(dErrors.CodeBadRequest, "user_id is required")
	}

	return nil
}
