// Package httpserver constructs the process HTTP server.
package httpserver

import (
	"net/http"
	"time"
)

// New builds the API server. Timeouts are sized for small JSON request and
// response bodies; there are no streaming or long-poll endpoints.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
