// Package recovery converts handler panics into clean 500 responses instead
// of dropped connections.
package recovery

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	dErrors "abgs/pkg/domain-errors"
	"abgs/pkg/platform/httputil"
	"abgs/pkg/requestcontext"
)

// Middleware recovers from panics in downstream handlers, logs the stack,
// and answers with the standard internal error envelope.
func Middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.ErrorContext(r.Context(), "panic recovered",
						"request_id", requestcontext.RequestID(r.Context()),
						"method", r.Method,
						"path", r.URL.Path,
						"panic", rec,
						"stack", string(debug.Stack()),
					)
					httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "internal server error"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
