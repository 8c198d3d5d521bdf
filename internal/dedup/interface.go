package dedup

import (
	"context"
	"idverify/pkg/domain"
)

//go:generate mockgen -package mockdedup -source=interface.go -destination=mock/mockdedup.go *
type Detector interface {
	// CheckDuplicate reports whether value was already verified in any entry.
	// It never fails: internal errors resolve to a non-duplicate verdict.
	CheckDuplicate(ctx context.Context, t domain.IdentityType, value domain.IdentityValue) domain.DuplicateVerdict
	// BatchCheckDuplicates resolves every item with at most one record scan.
	BatchCheckDuplicates(ctx context.Context, items []Item) map[domain.EntryID]domain.DuplicateVerdict
	// CheckEntries checks every identity of every entry with at most one
	// record scan. An entry is a duplicate when any of its identities is; the
	// first in domain.IdentityTypes order is reported.
	CheckEntries(ctx context.Context, entries []domain.IdentityEntry) map[domain.EntryID]domain.DuplicateVerdict
	ClearCache()
	CacheStats() Stats
}

// Decryptor reveals encrypted identity values.
type Decryptor interface {
	IsEncrypted(value domain.IdentityValue) bool
	Decrypt(ciphertext, iv string) (string, error)
}

// RecordStore lists entries with the VERIFIED status.
type RecordStore interface {
	QueryVerified(ctx context.Context) ([]domain.IdentityEntry, error)
}
