package http

import (
	"net/http"
	"sync/atomic"

	"anagram-shuffle/internal/handler/http/respond"
)

// Stats holds the request and error counters reported by /status.
// The zero value is ready to use and safe for concurrent use.
type Stats struct {
	requests atomic.Int64
	errors   atomic.Int64
}

// Requests returns the number of requests received so far.
func (s *Stats) Requests() int64 { return s.requests.Load() }

// Errors returns the number of requests that ended in 404.
func (s *Stats) Errors() int64 { return s.errors.Load() }

// IncRequests records one received request.
func (s *Stats) IncRequests() { s.requests.Add(1) }

// IncErrors records one failed request.
func (s *Stats) IncErrors() { s.errors.Add(1) }

// CountRequests returns middleware that counts every request before routing.
func (s *Stats) CountRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.IncRequests()
		next.ServeHTTP(w, r)
	})
}

// NotFoundHandler answers 404 with an empty body and counts the error.
type NotFoundHandler struct{ Stats *Stats }

func (h NotFoundHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	h.Stats.IncErrors()
	respond.Status(w, http.StatusNotFound)
}
