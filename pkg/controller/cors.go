package controller

import (
	"net/http"
	"strings"
)

var (
	corsHeaders = strings.Join([]string{ //nolint: gochecknoglobals
		"Accept", "Accept-Encoding", "Authorization", "Cache-Control",
		"Content-Length", "Content-Type", "Origin", "X-Request-Id",
	}, ", ")
	corsMethods = strings.Join([]string{ //nolint: gochecknoglobals
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodOptions,
	}, ", ")
)

// WithCORS returns a middleware that allows cross-origin calls from origin
// and answers OPTIONS preflight requests with 204 No Content. Credentials are
// only allowed for a specific origin, never for "*".
func WithCORS(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "*"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			if origin != "*" {
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Add("Vary", "Origin")
			}
			h.Set("Access-Control-Allow-Headers", corsHeaders)
			h.Set("Access-Control-Allow-Methods", corsMethods)
			h.Set("Access-Control-Expose-Headers", "X-Request-Id")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
