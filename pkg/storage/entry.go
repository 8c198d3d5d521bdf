package storage

import (
	"context"
	"encoding/json"
	"idverify/pkg/domain"
	"time"
)

// EntryUpdates describes the fields applied to an entry by UpdateEntryByID.
// Nil fields are left untouched.
type EntryUpdates struct {
	Status domain.EntryStatus
	// VerifiedAt and VerifiedBy are written together when VerifiedAt is set.
	VerifiedAt         *time.Time
	VerifiedBy         string
	VerificationResult json.RawMessage
	Duplicate          *domain.DuplicateVerdict
	// LastError sets the last error text; an empty string clears it.
	LastError *string
}

// EntryPage is a page of entries with an optional cursor for the next one.
type EntryPage struct {
	Entries    []domain.IdentityEntry
	NextCursor *time.Time
}

// EntryStorage persists identity entries.
type EntryStorage interface {
	// StoreEntries inserts entries and returns them with generated fields set.
	StoreEntries(ctx context.Context, entries ...domain.IdentityEntry) ([]domain.IdentityEntry, error)
	// EntryByID returns nil when the entry does not exist.
	EntryByID(ctx context.Context, ID domain.EntryID) (*domain.IdentityEntry, error)
	// ListEntries returns entries of a list created before cursor, newest
	// first. An empty status matches every status.
	ListEntries(ctx context.Context,
		listID domain.ListID,
		status domain.EntryStatus,
		cursor time.Time,
		limit uint) (EntryPage, error)
	// UpdateEntryByID applies updates and returns the updated row, or nil
	// when the entry does not exist.
	UpdateEntryByID(ctx context.Context, ID domain.EntryID, updates EntryUpdates) (*domain.IdentityEntry, error)
	// QueryVerified returns every VERIFIED entry, most recently verified first.
	QueryVerified(ctx context.Context) ([]domain.IdentityEntry, error)
}

// UsageStorage keeps per provider, per day call counters.
type UsageStorage interface {
	// RecordUsage increments the counters of provider for the day of at.
	RecordUsage(ctx context.Context, provider string, at time.Time, success bool) error
	// Usage returns the rows between from and to (inclusive days), ordered by
	// day then provider.
	Usage(ctx context.Context, from, to time.Time) ([]domain.UsageRecord, error)
}
