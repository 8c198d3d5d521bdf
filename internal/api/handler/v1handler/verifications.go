package v1handler

import (
	"idverify/internal/verifier"
	"idverify/pkg/domain"
	"idverify/pkg/serrors"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
)

// Verify verifies one identity of the type named in the path (nin or cac).
// Submitted data, when present, is compared with the provider record and a
// mismatch is answered with 422 and the per-field details.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "type")
	t, ok := domain.ParseIdentityType(param)
	if !ok || !slices.Contains(verifier.VerifiableTypes, t) {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "unknown verification type %q", param))

		return
	}

	d, err := readBody(w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	req, err := decodeVerifyRequest(d, t.Field())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	out, err := h.deps.Verifier.Verify(r.Context(), t, req.identity, req.data)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if out.Mismatch != nil {
		res := h.NewError(r.Context(), out.Mismatch)
		res.Response.Match = out.Match
		writeJSON(w, res.StatusCode, func(e *jx.Encoder) { encodeError(e, res.Response) })

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeOutcome(e, out) })
}
