package v1handler

import (
	"idverify/pkg/domain"
	"idverify/pkg/serrors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return id, nil
}

func limitParam(r *http.Request) (uint, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return DefaultLimit, nil
	}

	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "limit must be a positive integer")
	}

	return uint(min(n, MaxLimit)), nil
}

// SubmitEntries stores a batch of entries and queues them for verification.
func (h *Handler) SubmitEntries(w http.ResponseWriter, r *http.Request) {
	listID, err := uuidParam(r, "listID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	d, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	subs, err := decodeSubmissions(d)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	entries, err := h.deps.Verifier.Submit(r.Context(), GetUserIDFromContext(r.Context()), domain.ListID(listID), subs)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusAccepted, func(e *jx.Encoder) { encodeEntries(e, entries, nil) })
}

// ListEntries returns a page of a list's entries, newest first.
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	listID, err := uuidParam(r, "listID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	limit, err := limitParam(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var status domain.EntryStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = domain.EntryStatus(strings.ToUpper(raw))
		switch status {
		case domain.EntryStatusPending, domain.EntryStatusVerified, domain.EntryStatusFailed, domain.EntryStatusDuplicate:
		default:
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "invalid status %q", raw))

			return
		}
	}

	entries, next, err := h.deps.Verifier.ListEntries(r.Context(),
		domain.ListID(listID), status, r.URL.Query().Get("cursor"), limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeEntries(e, entries, &next) })
}

// GetEntry returns a single entry.
func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	entryID, err := uuidParam(r, "entryID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	entry, err := h.deps.Verifier.Entry(r.Context(), domain.EntryID(entryID))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeEntry(e, entry) })
}
