package v1handler

import (
	"idverify/pkg/serrors"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
)

// DefaultUsageDays is the window returned when from is omitted.
const DefaultUsageDays = 30

func dateParam(r *http.Request, name string, fallback time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be a YYYY-MM-DD date", name)
	}

	return t, nil
}

// Usage returns daily provider call counters between from and to.
func (h *Handler) Usage(w http.ResponseWriter, r *http.Request) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	to, err := dateParam(r, "to", today)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	from, err := dateParam(r, "from", to.AddDate(0, 0, -(DefaultUsageDays-1)))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	rows, err := h.deps.Verifier.Usage(r.Context(), from, to)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeUsage(e, rows) })
}

// RateLimitStatus reports the state of every provider limiter.
func (h *Handler) RateLimitStatus(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(h.deps.Limiters))
	for name := range h.deps.Limiters {
		names = append(names, name)
	}
	slices.Sort(names)

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		for _, name := range names {
			e.FieldStart(name)
			encodeLimiterStatus(e, h.deps.Limiters[name].Status())
		}
		e.ObjEnd()
	})
}

// ResetRateLimit refills the named limiter.
func (h *Handler) ResetRateLimit(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	l, ok := h.deps.Limiters[name]
	if !ok {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "unknown rate limiter %q", name))

		return
	}

	l.Reset()
	w.WriteHeader(http.StatusNoContent)
}
