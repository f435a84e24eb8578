package shuffle

import (
	"errors"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"anagram-shuffle/internal/common/pagination"
	"anagram-shuffle/internal/domain/anagram"
	"anagram-shuffle/internal/handler/http/requestid"
	"anagram-shuffle/internal/handler/http/respond"
	"anagram-shuffle/internal/observability/logging"
	shuffleUC "anagram-shuffle/internal/usecase/shuffle"
)

// Handler answers GET /shuffle?p=<letters>&limit=<n>.
//
// A missing p, a malformed limit or an input with non-letters all answer 400
// with an empty body. Success is 200 with {"p","total","page"}.
type Handler struct {
	Svc  *shuffleUC.Service
	Page pagination.Config
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()
	logger := logging.FromContext(ctx)
	reqID := requestid.FromContext(ctx)

	query := r.URL.Query()
	if !query.Has("p") {
		pagination.RecordError("missing_input")
		pagination.LogError(logger, reqID, errors.New("query parameter p is required"), "missing_input")
		respond.Status(w, http.StatusBadRequest)
		return
	}
	p := query.Get("p")

	limit, err := pagination.ParseLimit(r, h.Page)
	if err != nil {
		pagination.RecordError("invalid_limit")
		pagination.LogError(logger, reqID, err, "invalid_limit")
		respond.Status(w, http.StatusBadRequest)
		return
	}
	pagination.RecordRequest(limit)
	pagination.LogRequest(logger, reqID, utf8.RuneCountInString(p), limit)

	res, err := h.Svc.Shuffle(ctx, p, limit)
	if err != nil {
		if errors.Is(err, anagram.ErrInvalidInput) {
			pagination.RecordError("invalid_input")
			pagination.LogError(logger, reqID, err, "invalid_input")
			respond.Status(w, http.StatusBadRequest)
			return
		}
		logger.Error("shuffle failed", slog.String("error", respond.SanitizeError(err)))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, res)
	pagination.LogResponse(logger, reqID, limit, len(res.Page), time.Since(start), http.StatusOK)
}
