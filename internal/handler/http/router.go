package http

import (
	"net/http"
)

// RouterDeps are the shared pieces the API routes need.
type RouterDeps struct {
	Stats      *Stats
	SecretPath string
}

// NewRouter returns a mux with the fixed routes registered and every other
// path or method answered by NotFoundHandler. Feature packages add their
// routes through the returned mux before it starts serving.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /status", StatusHandler{Stats: deps.Stats})
	mux.Handle("GET /ping", PingHandler{})
	mux.Handle("GET /secret", NewSecretHandler(deps.SecretPath, deps.Stats))

	// "/" matches anything the method-qualified patterns do not, including
	// POST /ping, so unsupported methods fall through to 404 rather than 405.
	mux.Handle("/", NotFoundHandler{Stats: deps.Stats})
	return mux
}
