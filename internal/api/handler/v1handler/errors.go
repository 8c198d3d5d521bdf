package v1handler

import (
	"context"
	"errors"
	"idverify/pkg/logger"
	"idverify/pkg/matcher"
	"idverify/pkg/serrors"
	"idverify/pkg/verification"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Error is the JSON error body returned by every v1 endpoint.
type Error struct {
	Code    string
	Message string
	// FailedFields and Match are set for FIELD_MISMATCH responses.
	FailedFields []string
	Match        *matcher.Result
}

// ErrorStatusCode pairs an Error body with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

type kindInfo struct {
	status  int
	message string
}

//nolint: gochecknoglobals
var kinds = map[serrors.Kind]kindInfo{
	serrors.ErrBadRequest:    {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized:  {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:     {http.StatusForbidden, "forbidden"},
	serrors.ErrNotFound:      {http.StatusNotFound, "resource not found"},
	serrors.ErrConflict:      {http.StatusConflict, "conflict"},
	serrors.ErrUnprocessable: {http.StatusUnprocessableEntity, "unprocessable request"},
	serrors.ErrRateLimited:   {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrTimeout:       {http.StatusGatewayTimeout, "upstream timed out"},
	serrors.ErrUnavailable:   {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrInternal:      {http.StatusInternalServerError, "internal error"},
}

// NewError maps err onto an HTTP status and error body. Provider errors keep
// their verification code and user-facing message; semantic errors expose
// their message unless they are internal.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	info, ok := kinds[kind]
	if !ok {
		kind, info = serrors.ErrInternal, kinds[serrors.ErrInternal]
	}

	res := &ErrorStatusCode{
		StatusCode: info.status,
		Response:   Error{Code: kind.Error(), Message: info.message},
	}

	var verr *verification.Error
	var serr *serrors.Error
	switch {
	case errors.As(err, &verr):
		res.Response.Code = string(verr.Code)
		if verr.Message != "" {
			res.Response.Message = verr.Message
		}
		res.Response.FailedFields = verr.FailedFields
	case kind != serrors.ErrInternal && errors.As(err, &serr) && serr.Message() != "":
		res.Response.Message = serr.Message()
	}

	if info.status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return res
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) { encodeError(e, res.Response) })
}
