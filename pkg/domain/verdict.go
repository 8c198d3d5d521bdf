package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DuplicateVerdict describes whether an identity was already verified in
// another entry. The zero value is the non-duplicate verdict.
type DuplicateVerdict struct {
	IsDuplicate bool `json:"isDuplicate"`

	OriginalListID           *ListID         `json:"originalListId"`
	OriginalEntryID          *EntryID        `json:"originalEntryId"`
	OriginalVerificationDate *time.Time      `json:"originalVerificationDate"`
	OriginalBroker           string          `json:"originalBroker,omitempty"`
	OriginalResult           json.RawMessage `json:"originalResult,omitempty"`
}

// NotDuplicate is the verdict returned whenever no earlier verification is
// known, including every fail-open path.
func NotDuplicate() DuplicateVerdict { return DuplicateVerdict{} }

// VerdictFrom builds a duplicate verdict pointing at the given verified entry.
// The verification date falls back to UpdatedAt and the broker to the
// submitting user when the entry does not record them.
func VerdictFrom(e IdentityEntry) DuplicateVerdict {
	listID, entryID := e.ListID, e.ID
	v := DuplicateVerdict{
		IsDuplicate:     true,
		OriginalListID:  &listID,
		OriginalEntryID: &entryID,
		OriginalBroker:  e.VerifiedBy,
		OriginalResult:  e.VerificationResult,
	}

	at := e.VerifiedAt
	if at.IsZero() {
		at = e.UpdatedAt
	}
	if !at.IsZero() {
		v.OriginalVerificationDate = &at
	}
	if v.OriginalBroker == "" && e.SubmittedBy != (UserID{}) {
		v.OriginalBroker = uuid.UUID(e.SubmittedBy).String()
	}

	return v
}
