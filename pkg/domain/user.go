package domain

import "github.com/google/uuid"

// UserID identifies the authenticated caller; it is the bearer token subject
// and is recorded as the submitter of new entries.
type UserID uuid.UUID

func (id UserID) String() string { return uuid.UUID(id).String() }

// ParseUserID parses a token subject.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)

	return UserID(id), err //nolint: wrapcheck
}
