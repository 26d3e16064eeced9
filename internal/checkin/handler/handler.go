package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"abgs/internal/checkin"
	"abgs/internal/checkin/metrics"
	dErrors "abgs/pkg/domain-errors"
	"abgs/pkg/platform/httputil"
	"abgs/pkg/requestcontext"
)

// Service defines the interface for check-in operations.
type Service interface {
	Submit(ctx context.Context, in checkin.SubmitInput) (*checkin.CheckIn, error)
	History(ctx context.Context, userID string) ([]*checkin.CheckIn, error)
	CompletionRatio(ctx context.Context, goalName string) (*checkin.Adherence, error)
}

// Handler wires check-in endpoints to the check-in service.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs a check-in handler with its dependencies.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

// Register mounts check-in endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/checkins", h.HandleSubmit)
	r.Get("/users/{userID}/checkins", h.HandleHistory)
	r.Get("/goals/{goalName}/completion", h.HandleCompletion)
}

// HandleSubmit handles POST /checkins requests.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[SubmitRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	record, err := h.service.Submit(ctx, checkin.SubmitInput{
		UserID:    req.UserID,
		GoalName:  req.GoalName,
		Status:    req.Status,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		var dErr *dErrors.Error
		if errors.As(err, &dErr) && dErr.Code == dErrors.CodeValidation {
			h.metrics.ObserveValidationFailure(dErr.Kind)
			h.logger.WarnContext(ctx, "check-in rejected",
				"request_id", requestID,
				"user_id", req.UserID,
				"kind", dErr.Kind,
			)
		} else {
			h.logger.ErrorContext(ctx, "check-in submission failed",
				"request_id", requestID,
				"user_id", req.UserID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	h.metrics.ObserveSubmitted(string(record.Status))
	h.metrics.SubmitDuration.Observe(time.Since(start).Seconds())
	h.logger.InfoContext(ctx, "check-in recorded",
		"request_id", requestID,
		"user_id", record.UserID,
		"goal_name", record.GoalName,
		"status", record.Status,
		"checkin_id", record.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusCreated, FromCheckIn(record))
}

// HandleHistory handles GET /users/{userID}/checkins requests.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	userID := pathParam(r, "userID")

	records, err := h.service.History(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "history query failed",
			"request_id", requestID,
			"user_id", userID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromCheckIns(records))
}

// HandleCompletion handles GET /goals/{goalName}/completion requests.
func (h *Handler) HandleCompletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	goalName := pathParam(r, "goalName")

	adherence, err := h.service.CompletionRatio(ctx, goalName)
	if err != nil {
		h.logger.ErrorContext(ctx, "completion query failed",
			"request_id", requestID,
			"goal_name", goalName,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromAdherence(adherence))
}

// pathParam returns the decoded URL parameter. Goal names are free text and
// may arrive percent-encoded.
func pathParam(r *http.Request, key string) string {
	value := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}
