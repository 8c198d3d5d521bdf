package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"idverify/internal/api/handler/v1handler"
	"idverify/pkg/logger"
	"idverify/pkg/serrors"
	"idverify/pkg/verification"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), errors.New("boom"))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := serrors.With(serrors.ErrBadRequest, "invalid payload: missing nin")
	res := h.NewError(context.Background(), err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "invalid payload: missing nin", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := serrors.Wrap(serrors.ErrUnauthorized, errors.New("bad token"), "unauthorized")
	res := h.NewError(context.Background(), err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// the message, never the cause
	require.Equal(t, "unauthorized", res.Response.Message)
}

func TestNewError_InternalKind_HidesMessage(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.With(serrors.ErrInternal, "pg: relation missing"))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_VerificationErrors(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", &verification.Error{Code: verification.CodeNINNotFound, Message: "NIN not found"}, 404, "NIN_NOT_FOUND"},
		{"rate limited", &verification.Error{Code: verification.CodeRateLimitExceeded}, 429, "RATE_LIMIT_EXCEEDED"},
		{"invalid format", &verification.Error{Code: verification.CodeInvalidFormat}, 400, "INVALID_FORMAT"},
		{"timeout", &verification.Error{Code: verification.CodeNetworkError, IsTimeout: true}, 504, "NETWORK_ERROR"},
		{"balance", &verification.Error{Code: verification.CodeInsufficientBalance}, 503, "INSUFFICIENT_BALANCE"},
		{"mismatch", &verification.Error{Code: verification.CodeFieldMismatch, FailedFields: []string{"Gender"}}, 422, "FIELD_MISMATCH"},
		{"parse", &verification.Error{Code: verification.CodeParseError}, 500, "PARSE_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.NewError(context.Background(), fmt.Errorf("wrapped: %w", tt.err))
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, tt.code, res.Response.Code)
			require.NotEmpty(t, res.Response.Message)
		})
	}
}
