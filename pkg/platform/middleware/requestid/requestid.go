// Package requestid assigns each request a unique identifier for log
// correlation. Inbound X-Request-ID headers are honored so ids survive
// proxies; otherwise a fresh UUID is generated.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"abgs/pkg/requestcontext"
)

// Header is the request id header read from and echoed to clients.
const Header = "X-Request-ID"

// Middleware stores the request id in the context and echoes it on the
// response so clients can correlate failures with server logs.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(Header, requestID)

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
