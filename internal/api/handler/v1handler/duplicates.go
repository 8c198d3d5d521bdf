package v1handler

import (
	"idverify/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
)

// CheckDuplicate reports whether one identity was already verified.
func (h *Handler) CheckDuplicate(w http.ResponseWriter, r *http.Request) {
	d, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	item, err := decodeCheckItem(d)
	if err != nil {
		h.writeError(w, r, badBody(err))

		return
	}

	verdict := h.deps.Detector.CheckDuplicate(r.Context(), item.Type, item.Value)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeVerdict(e, verdict) })
}

// BatchCheckDuplicates checks many identities with a single record scan.
func (h *Handler) BatchCheckDuplicates(w http.ResponseWriter, r *http.Request) {
	d, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	items, err := decodeCheckItems(d)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if len(items) == 0 {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "items must not be empty"))

		return
	}

	verdicts := h.deps.Detector.BatchCheckDuplicates(r.Context(), items)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("results")
		e.ObjStart()
		for _, item := range items {
			e.FieldStart(item.EntryID.String())
			encodeVerdict(e, verdicts[item.EntryID])
		}
		e.ObjEnd()
		e.ObjEnd()
	})
}

// CacheStats reports the duplicate cache occupancy.
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	stats := h.deps.Detector.CacheStats()
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeStats(e, stats) })
}

// ClearCache drops every cached duplicate verdict.
func (h *Handler) ClearCache(w http.ResponseWriter, _ *http.Request) {
	h.deps.Detector.ClearCache()
	w.WriteHeader(http.StatusNoContent)
}
