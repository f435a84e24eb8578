package http

import (
	"net/http"
	"time"

	"anagram-shuffle/internal/handler/http/respond"
)

// statusTimeLayout is RFC 3339 with seconds precision and a numeric UTC
// offset, so UTC is written as +00:00 rather than Z.
const statusTimeLayout = "2006-01-02T15:04:05-07:00"

// StatusDTO is the /status response body.
type StatusDTO struct {
	Time string `json:"time"`
	Req  int64  `json:"req"`
	Err  int64  `json:"err"`
}

// StatusHandler reports the server's local time and its counters.
// Now defaults to time.Now.
type StatusHandler struct {
	Stats *Stats
	Now   func() time.Time
}

func (h StatusHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	respond.JSON(w, http.StatusOK, StatusDTO{
		Time: formatStatusTime(now().Local()),
		Req:  h.Stats.Requests(),
		Err:  h.Stats.Errors(),
	})
}

// PingHandler answers 204 with no body.
type PingHandler struct{}

func (PingHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.Status(w, http.StatusNoContent)
}

func formatStatusTime(t time.Time) string {
	return t.Format(statusTimeLayout)
}
