package http

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"anagram-shuffle/internal/handler/http/respond"
	"anagram-shuffle/internal/observability/logging"
)

// SecretHandler serves the contents of a file on disk. The file is checked
// on every request: a missing or unreadable file answers 404 and counts an
// error. The last read is kept and reused while the file's size and
// modification time are unchanged.
type SecretHandler struct {
	path  string
	stats *Stats

	mu      sync.RWMutex
	cached  []byte
	modTime time.Time
	size    int64
	loaded  bool
}

// NewSecretHandler returns a handler for the file at path. The path is
// registered with the error sanitizer so it never shows up in logs.
func NewSecretHandler(path string, stats *Stats) *SecretHandler {
	respond.RegisterSecret(path)
	return &SecretHandler{path: path, stats: stats}
}

func (h *SecretHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := h.load()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.FromContext(r.Context()).Warn("secret file unreadable",
				slog.String("error", respond.SanitizeError(err)))
		}
		h.stats.IncErrors()
		respond.Status(w, http.StatusNotFound)
		return
	}
	respond.Text(w, http.StatusOK, body)
}

func (h *SecretHandler) load() ([]byte, error) {
	info, err := os.Stat(h.path)
	if err != nil {
		return nil, err
	}

	h.mu.RLock()
	if h.loaded && h.size == info.Size() && h.modTime.Equal(info.ModTime()) {
		body := h.cached
		h.mu.RUnlock()
		return body, nil
	}
	h.mu.RUnlock()

	// #nosec G304 -- path comes from server configuration
	body, err := os.ReadFile(h.path)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	h.cached = body
	h.size = info.Size()
	h.modTime = info.ModTime()
	h.loaded = true
	h.mu.Unlock()
	return body, nil
}
