// Package storage defines the persistence interfaces for identity entries,
// provider usage counters and background jobs, plus transaction handling.
// pkg/storage/postgres is the only backend.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage groups every storage capability the application uses.
type AllStorage interface {
	EntryStorage
	UsageStorage
	JobStorage
}

// TxStorage is an AllStorage bound to an open transaction. Exactly one of
// Commit or Rollback ends it; the handle is unusable afterwards.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root storage handle. It can start transactions.
type Storage interface {
	AllStorage

	Close() error

	Begin(ctx context.Context) (TxStorage, error)
	// WithTx commits when cb returns nil and rolls back otherwise. Entries
	// and their verification jobs are stored through it so a job never
	// exists without its entry.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
