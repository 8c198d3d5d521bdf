package storage

import "github.com/go-faster/errors"

// Transaction misuse. Both indicate a programming error in the caller.
var (
	// ErrAlreadyInTx is returned by Begin and Ping on a transactional handle.
	ErrAlreadyInTx = errors.New("storage: already in a transaction")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = errors.New("storage: not in a transaction")
)
