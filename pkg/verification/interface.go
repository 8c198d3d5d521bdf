// Package verification implements the retry engine shared by the identity
// verification providers. A provider describes how to validate input, how to
// build the HTTP request and how to classify each response status; the
// engine owns rate limiting, per-attempt timeouts, exponential backoff,
// logging with masked identities, tracing and metrics.
package verification

import (
	"context"
	"net/http"
)

// Verifier verifies a single identity number.
//
//go:generate mockgen -package mockverification -source=interface.go -destination=mock/mockverification.go *
type Verifier interface {
	// Name identifies the provider, e.g. "datapro".
	Name() string
	// Verify checks identity against the provider. Failures are *Error values.
	Verify(ctx context.Context, identity string) (*Result, error)
	// FieldMismatch builds the FIELD_MISMATCH error for the given field labels.
	FieldMismatch(failedFields []string) *Error
}

// Limiter gates outgoing provider calls. Acquire is called once per Verify.
type Limiter interface {
	Acquire(ctx context.Context) error
}

// Provider is the provider specific part of a verification client.
type Provider interface {
	Name() string
	Messages() Messages
	// Configured reports whether the provider credential is set.
	Configured() bool
	// Validate checks the raw input and returns the value to send.
	Validate(identity string) (string, *Error)
	NewRequest(ctx context.Context, identity string) (*http.Request, error)
	Policies() PolicyTable
}
