package http

import (
	"net/http"

	"anagram-shuffle/internal/handler/http/respond"
)

const (
	// MaxPathLength bounds the URL path.
	MaxPathLength = 2048
	// MaxQueryLength bounds the raw query string, which carries the shuffle input.
	MaxQueryLength = 8192
)

// InputValidation returns middleware that rejects oversized URLs with 414
// and an empty body before any routing or parsing happens.
func InputValidation() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > MaxPathLength || len(r.URL.RawQuery) > MaxQueryLength {
				respond.Status(w, http.StatusRequestURITooLong)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
