package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"idverify/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgEntry struct {
	ID          uuid.UUID `db:"id"           goqu:"skipinsert"`
	ListID      uuid.UUID `db:"list_id"`
	SubmittedBy uuid.UUID `db:"submitted_by"`

	Status     string          `db:"status"`
	Identities json.RawMessage `db:"identities"`
	Data       json.RawMessage `db:"data"`

	VerifiedAt         sql.NullTime    `db:"verified_at"         goqu:"skipinsert"`
	VerifiedBy         sql.NullString  `db:"verified_by"         goqu:"skipinsert"`
	VerificationResult json.RawMessage `db:"verification_result" goqu:"skipinsert"`
	Duplicate          json.RawMessage `db:"duplicate"           goqu:"skipinsert"`
	LastError          sql.NullString  `db:"last_error"          goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgEntry) ToDomain() (*domain.IdentityEntry, error) {
	e := &domain.IdentityEntry{
		ID:                 domain.EntryID(p.ID),
		ListID:             domain.ListID(p.ListID),
		SubmittedBy:        domain.UserID(p.SubmittedBy),
		Status:             domain.EntryStatus(p.Status),
		VerifiedAt:         p.VerifiedAt.Time,
		VerifiedBy:         p.VerifiedBy.String,
		VerificationResult: nullJSON(p.VerificationResult),
		LastError:          p.LastError.String,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt.Time,
	}
	if err := unmarshalJSON(p.Identities, &e.Identities); err != nil {
		return nil, fmt.Errorf("could not unmarshal identities: %w", err)
	}
	if err := unmarshalJSON(p.Data, &e.Data); err != nil {
		return nil, fmt.Errorf("could not unmarshal entry data: %w", err)
	}
	if raw := nullJSON(p.Duplicate); raw != nil {
		var v domain.DuplicateVerdict
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("could not unmarshal duplicate verdict: %w", err)
		}
		e.Duplicate = &v
	}

	return e, nil
}

func (p *PgEntry) FromDomain(e domain.IdentityEntry) error {
	identities, err := json.Marshal(e.Identities)
	if err != nil {
		return fmt.Errorf("could not marshal identities: %w", err)
	}
	data, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("could not marshal entry data: %w", err)
	}
	status := e.Status
	if status == "" {
		status = domain.EntryStatusPending
	}

	*p = PgEntry{
		ID:          uuid.UUID(e.ID),
		ListID:      uuid.UUID(e.ListID),
		SubmittedBy: uuid.UUID(e.SubmittedBy),
		Status:      string(status),
		Identities:  identities,
		Data:        data,
		CreatedAt:   e.CreatedAt,
	}

	return nil
}

// nullJSON maps SQL NULL and JSON null to nil.
func nullJSON(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	return raw
}

func unmarshalJSON(raw json.RawMessage, v any) error {
	if nullJSON(raw) == nil {
		return nil
	}

	return json.Unmarshal(raw, v)
}

func domainEntriesToPg(entries []domain.IdentityEntry) ([]PgEntry, error) {
	out := make([]PgEntry, len(entries))
	for i := range out {
		if err := out[i].FromDomain(entries[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgEntriesToDomain(entries []PgEntry) ([]domain.IdentityEntry, error) {
	out := make([]domain.IdentityEntry, 0, len(entries))
	for _, entry := range entries {
		d, err := entry.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgUsage struct {
	Provider string    `db:"provider"`
	Day      time.Time `db:"day"`
	Total    int64     `db:"total"`
	Success  int64     `db:"success"`
	Failed   int64     `db:"failed"`
}

func (p *PgUsage) ToDomain() domain.UsageRecord {
	return domain.UsageRecord{
		Provider: p.Provider,
		Day:      p.Day.UTC(),
		Total:    p.Total,
		Success:  p.Success,
		Failed:   p.Failed,
	}
}
