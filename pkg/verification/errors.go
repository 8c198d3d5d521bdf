package verification

import (
	"errors"
	"idverify/pkg/jsonsafe"
	"idverify/pkg/serrors"
	"strconv"
	"strings"
)

// Code is a stable verification error code surfaced to callers and stored
// with failed entries.
type Code string

// Error codes. Input, configuration, provider and parsing codes are terminal;
// NETWORK_ERROR and SERVER_ERROR are retried.
const (
	CodeInvalidInput        Code = "INVALID_INPUT"
	CodeInvalidFormat       Code = "INVALID_FORMAT"
	CodeNotConfigured       Code = "NOT_CONFIGURED"
	CodeRateLimitExceeded   Code = "RATE_LIMIT_EXCEEDED"
	CodeBadRequest          Code = "BAD_REQUEST"
	CodeUnauthorized        Code = "UNAUTHORIZED"
	CodeInvalidServiceID    Code = "INVALID_SERVICE_ID"
	CodeInvalidSecretKey    Code = "INVALID_SECRET_KEY"
	CodeInsufficientBalance Code = "INSUFFICIENT_BALANCE"
	CodeContactAdmin        Code = "CONTACT_ADMINISTRATOR"
	CodeNoActiveService     Code = "NO_ACTIVE_SERVICE"
	CodeNINNotFound         Code = "NIN_NOT_FOUND"
	CodeCACNotFound         Code = "CAC_NOT_FOUND"
	CodeNetworkError        Code = "NETWORK_ERROR"
	CodeServerError         Code = "SERVER_ERROR"
	CodeUnexpectedStatus    Code = "UNEXPECTED_STATUS"
	CodeEmptyResponse       Code = "EMPTY_RESPONSE"
	CodeParseError          Code = "PARSE_ERROR"
	CodeInvalidResponse     Code = "INVALID_RESPONSE"
	CodeMaxRetriesExceeded  Code = "MAX_RETRIES_EXCEEDED"
	CodeFieldMismatch       Code = "FIELD_MISMATCH"
)

// GenericMessage is shown for codes missing from a provider's message table.
const GenericMessage = "An error occurred during verification. Please contact support."

// Messages maps error codes to user-facing messages.
type Messages map[Code]string

// For returns the message for code, or GenericMessage.
func (m Messages) For(code Code) string {
	if msg, ok := m[code]; ok {
		return msg
	}

	return GenericMessage
}

// Error is a classified verification failure.
type Error struct {
	Code     Code
	Provider string
	// Message is the user-facing text from the provider's message table.
	Message string

	StatusCode int
	// ProviderCode is the provider's own status or response code, e.g. "FF".
	ProviderCode string
	// RawMessage is the provider or transport message, kept for staff.
	RawMessage   string
	Attempt      int
	FailedFields []string
	IsTimeout    bool
	Retryable    bool
	// Details carries parse diagnostics such as the response preview.
	Details map[string]any

	cause error
}

// Error returns the technical description.
func (e *Error) Error() string {
	if e.Provider == "" {
		return e.Technical()
	}

	return e.Provider + ": " + e.Technical()
}

// Unwrap returns the underlying transport or limiter error, if any.
func (e *Error) Unwrap() error { return e.cause }

// Technical assembles the staff-facing description from the fields present.
func (e *Error) Technical() string {
	var b strings.Builder
	b.WriteString("Error Code: ")
	b.WriteString(string(e.Code))
	if e.StatusCode != 0 {
		b.WriteString(" | Status Code: " + strconv.Itoa(e.StatusCode))
	}
	if e.ProviderCode != "" {
		b.WriteString(" | Response Status Code: " + e.ProviderCode)
	}
	if e.RawMessage != "" {
		b.WriteString(" | Message: " + e.RawMessage)
	}
	if e.Attempt > 0 {
		b.WriteString(" | Attempt: " + strconv.Itoa(e.Attempt))
	}
	if len(e.FailedFields) > 0 {
		b.WriteString(" | Failed Fields: " + strings.Join(e.FailedFields, ", "))
	}

	return b.String()
}

// Kind maps the code onto a semantic error kind.
func (e *Error) Kind() serrors.Kind {
	switch e.Code {
	case CodeInvalidInput, CodeInvalidFormat, CodeBadRequest:
		return serrors.ErrBadRequest
	case CodeNINNotFound, CodeCACNotFound:
		return serrors.ErrNotFound
	case CodeRateLimitExceeded:
		return serrors.ErrRateLimited
	case CodeFieldMismatch:
		return serrors.ErrUnprocessable
	case CodeNetworkError:
		if e.IsTimeout {
			return serrors.ErrTimeout
		}

		return serrors.ErrUnavailable
	case CodeNotConfigured, CodeUnauthorized, CodeInvalidServiceID, CodeInvalidSecretKey,
		CodeInsufficientBalance, CodeContactAdmin, CodeNoActiveService,
		CodeServerError, CodeMaxRetriesExceeded:
		return serrors.ErrUnavailable
	default:
		return serrors.ErrInternal
	}
}

// Is matches the semantic kind, so errors.Is(err, serrors.ErrNotFound) works.
func (e *Error) Is(target error) bool {
	k, ok := target.(serrors.Kind)

	return ok && k == e.Kind()
}

// ParseFailure converts a jsonsafe error into an EMPTY_RESPONSE or
// PARSE_ERROR verification error, keeping its diagnostic details.
func ParseFailure(err error) *Error {
	var pe *jsonsafe.Error
	if errors.As(err, &pe) {
		return &Error{Code: Code(pe.Code), RawMessage: pe.Message, Details: pe.Details, cause: err}
	}

	return &Error{Code: CodeParseError, RawMessage: err.Error(), cause: err}
}
