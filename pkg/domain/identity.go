package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IdentityType names the kind of identity number carried by an entry.
type IdentityType string

const (
	// IdentityTypeNIN is the 11 digit National Identification Number.
	IdentityTypeNIN IdentityType = "NIN"
	// IdentityTypeBVN is the 11 digit Bank Verification Number.
	IdentityTypeBVN IdentityType = "BVN"
	// IdentityTypeCAC is the corporate registration (RC) number.
	IdentityTypeCAC IdentityType = "CAC"
)

// IdentityTypes lists every supported type in a stable order.
var IdentityTypes = []IdentityType{IdentityTypeNIN, IdentityTypeBVN, IdentityTypeCAC} //nolint: gochecknoglobals

// Field returns the record field the identity is stored under.
func (t IdentityType) Field() string { return strings.ToLower(string(t)) }

// Valid reports whether t is one of the supported identity types.
func (t IdentityType) Valid() bool {
	switch t {
	case IdentityTypeNIN, IdentityTypeBVN, IdentityTypeCAC:
		return true
	default:
		return false
	}
}

// ParseIdentityType accepts either the upper case type or its field name.
func ParseIdentityType(s string) (IdentityType, bool) {
	t := IdentityType(strings.ToUpper(strings.TrimSpace(s)))

	return t, t.Valid()
}

// EncryptedValue is an AES-GCM ciphertext (tag appended) and its IV, both
// base64 encoded.
type EncryptedValue struct {
	Encrypted string `json:"encrypted"`
	IV        string `json:"iv"`
}

// IdentityValue is either a plaintext identity number or an encrypted
// container. Its JSON form is a string or an EncryptedValue object.
type IdentityValue struct {
	Plain     string
	Encrypted *EncryptedValue
}

// PlainValue wraps a plaintext identity number.
func PlainValue(s string) IdentityValue { return IdentityValue{Plain: s} }

// EncryptedIdentity wraps an encrypted container.
func EncryptedIdentity(ev EncryptedValue) IdentityValue { return IdentityValue{Encrypted: &ev} }

// IsZero reports whether the value carries neither plaintext nor ciphertext.
func (v IdentityValue) IsZero() bool {
	return v.Encrypted == nil && strings.TrimSpace(v.Plain) == ""
}

// MarshalJSON implements json.Marshaler.
func (v IdentityValue) MarshalJSON() ([]byte, error) {
	if v.Encrypted != nil {
		return json.Marshal(v.Encrypted)
	}

	return json.Marshal(v.Plain)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *IdentityValue) UnmarshalJSON(b []byte) error {
	*v = IdentityValue{}
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		return json.Unmarshal(b, &v.Plain)
	}

	var ev EncryptedValue
	if err := json.Unmarshal(b, &ev); err != nil {
		return err
	}
	if ev.Encrypted == "" || ev.IV == "" {
		return errors.New("encrypted identity requires encrypted and iv")
	}
	v.Encrypted = &ev

	return nil
}

// EntryID uniquely identifies a submitted identity entry.
type EntryID uuid.UUID

// String returns the canonical uuid form.
func (id EntryID) String() string { return uuid.UUID(id).String() }

// ListID identifies the bulk submission an entry belongs to.
type ListID uuid.UUID

// String returns the canonical uuid form.
func (id ListID) String() string { return uuid.UUID(id).String() }

// EntryStatus represents the lifecycle state of an identity entry.
type EntryStatus string

const (
	// EntryStatusPending means the entry is queued for verification.
	EntryStatusPending EntryStatus = "PENDING"
	// EntryStatusVerified means the provider confirmed the identity and the submitted data matched.
	EntryStatusVerified EntryStatus = "VERIFIED"
	// EntryStatusFailed means verification ended with a terminal error; see LastError.
	EntryStatusFailed EntryStatus = "FAILED"
	// EntryStatusDuplicate means the identity was already verified in another entry.
	EntryStatusDuplicate EntryStatus = "DUPLICATE"
)

// IdentityEntry is one row of a bulk submission.
type IdentityEntry struct {
	ID          EntryID `json:"id"`
	ListID      ListID  `json:"listId"`
	SubmittedBy UserID  `json:"submittedBy"`

	Status EntryStatus `json:"status"`
	// Identities holds the identity numbers of the entry, usually encrypted at rest.
	Identities map[IdentityType]IdentityValue `json:"identities"`
	// Data is the submitted personal or company data compared with the provider record.
	Data map[string]string `json:"data,omitempty"`

	VerifiedAt time.Time `json:"verifiedAt,omitzero"`
	// VerifiedBy names the broker or provider that verified the entry.
	VerifiedBy         string            `json:"verifiedBy,omitempty"`
	VerificationResult json.RawMessage   `json:"verificationResult,omitempty"`
	Duplicate          *DuplicateVerdict `json:"duplicate,omitempty"`

	LastError string `json:"lastError,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Identity returns the value stored for t, if any.
func (e *IdentityEntry) Identity(t IdentityType) (IdentityValue, bool) {
	v, ok := e.Identities[t]
	if !ok || v.IsZero() {
		return IdentityValue{}, false
	}

	return v, true
}
