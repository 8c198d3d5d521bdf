package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"idverify/pkg/domain"
	"idverify/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	entriesTable = "identity_entries"
)

func (p *PgSQL) StoreEntries(ctx context.Context, entries ...domain.IdentityEntry) ([]domain.IdentityEntry, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	rows, err := domainEntriesToPg(entries)
	if err != nil {
		return nil, err
	}

	var result []PgEntry
	if err := p.Builder.Insert(entriesTable).
		Rows(rows).
		Returning(&PgEntry{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store entries into pg: %w", err)
	}

	return pgEntriesToDomain(result)
}

func (p *PgSQL) EntryByID(ctx context.Context, id domain.EntryID) (*domain.IdentityEntry, error) {
	var row PgEntry
	found, err := p.Builder.From(entriesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch entry by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// ListEntries orders by created_at DESC, id DESC and fetches one extra row to
// decide whether a next page exists.
func (p *PgSQL) ListEntries(ctx context.Context,
	listID domain.ListID,
	status domain.EntryStatus,
	cursor time.Time,
	limit uint) (storage.EntryPage, error) {
	w := []goqu.Expression{
		goqu.I("list_id").Eq(uuid.UUID(listID)),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	var rows []PgEntry
	if err := p.Builder.From(entriesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.EntryPage{}, fmt.Errorf("could not fetch list entries from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			nextCursor = &rows[len(rows)-1].CreatedAt
		}
	}

	entries, err := pgEntriesToDomain(rows)
	if err != nil {
		return storage.EntryPage{}, err
	}

	return storage.EntryPage{
		Entries:    entries,
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) UpdateEntryByID(ctx context.Context,
	id domain.EntryID,
	updates storage.EntryUpdates) (*domain.IdentityEntry, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.VerifiedAt != nil {
		rec["verified_at"] = *updates.VerifiedAt
		rec["verified_by"] = updates.VerifiedBy
	}
	if updates.VerificationResult != nil {
		rec["verification_result"] = []byte(updates.VerificationResult)
	}
	if updates.Duplicate != nil {
		b, err := json.Marshal(updates.Duplicate)
		if err != nil {
			return nil, fmt.Errorf("could not marshal duplicate verdict: %w", err)
		}
		rec["duplicate"] = b
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgEntry
	found, err := p.Builder.Update(entriesTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgEntry{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update entry in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) QueryVerified(ctx context.Context) ([]domain.IdentityEntry, error) {
	var rows []PgEntry
	if err := p.Builder.From(entriesTable).
		Where(goqu.I("status").Eq(string(domain.EntryStatusVerified))).
		Order(goqu.I("verified_at").Desc().NullsLast(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not query verified entries from pg: %w", err)
	}

	return pgEntriesToDomain(rows)
}
