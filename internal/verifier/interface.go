package verifier

import (
	"context"
	"idverify/pkg/domain"
	"time"
)

//go:generate mockgen -package mockverifier -source=interface.go -destination=mock/mockverifier.go *
type Verifier interface {
	Submit(ctx context.Context,
		userID domain.UserID,
		listID domain.ListID,
		submissions []Submission) ([]domain.IdentityEntry, error)
	Process(ctx context.Context, entryID domain.EntryID) (*domain.IdentityEntry, error)
	Fail(ctx context.Context, entryID domain.EntryID, cause error) (*domain.IdentityEntry, error)
	Verify(ctx context.Context,
		identityType domain.IdentityType,
		identity string,
		submitted map[string]string) (*Outcome, error)
	Entry(ctx context.Context, entryID domain.EntryID) (*domain.IdentityEntry, error)
	ListEntries(ctx context.Context,
		listID domain.ListID,
		status domain.EntryStatus,
		cursor string,
		limit uint) ([]domain.IdentityEntry, string, error)
	Usage(ctx context.Context, from, to time.Time) ([]domain.UsageRecord, error)
}

// Sealer protects identity values at rest.
type Sealer interface {
	Seal(v domain.IdentityValue) (domain.IdentityValue, error)
	Reveal(v domain.IdentityValue) (string, error)
}
