// Package contenttype rejects request bodies in formats the API does not
// accept before any decoder sees them.
package contenttype

import (
	"mime"
	"net/http"

	dErrors "abgs/pkg/domain-errors"
	"abgs/pkg/platform/httputil"
)

// RequireJSON rejects POST, PUT, and PATCH requests whose Content-Type is
// not application/json with 415. Media type parameters such as charset are
// accepted; read requests pass through untouched.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || mediaType != "application/json" {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnsupportedMedia, "Content-Type must be application/json"))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
