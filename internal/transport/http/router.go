// Package httptransport wires the HTTP surface: domain routes, probes, and
// metrics. It delegates to domain handlers without embedding business logic
// so transport concerns remain isolated.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkinhandler "abgs/internal/checkin/handler"
	dErrors "abgs/pkg/domain-errors"
	"abgs/pkg/platform/httputil"
	"abgs/pkg/platform/middleware/contenttype"
	"abgs/pkg/platform/middleware/logging"
	"abgs/pkg/platform/middleware/recovery"
	"abgs/pkg/platform/middleware/requestid"
	"abgs/pkg/platform/middleware/requesttime"
)

// ReadyCheck reports whether the configured storage backend is reachable.
// Backends without external infrastructure return nil.
type ReadyCheck func(ctx context.Context) error

// NewRouter wires all public endpoints.
func NewRouter(h *checkinhandler.Handler, logger *slog.Logger, ready ReadyCheck) http.Handler {
	r := chi.NewRouter()
	r.Use(recovery.Middleware(logger))
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(logging.Middleware(logger))
	r.Use(contenttype.RequireJSON)

	r.Get("/", handleRoot)
	r.Get("/healthz", handleHealth)
	r.Get("/readyz", handleReady(ready))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	h.Register(r)
	return r
}

func handleRoot(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "ABGS running",
	})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func handleReady(ready ReadyCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ready != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := ready(ctx); err != nil {
				httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "storage backend unreachable"))
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "ready",
		})
	}
}
