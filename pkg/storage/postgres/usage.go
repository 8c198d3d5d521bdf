package postgres

import (
	"context"
	"fmt"
	"idverify/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const (
	usageTable = "api_usage"
)

func usageDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RecordUsage upserts the daily row of provider, incrementing total and
// either success or failed.
func (p *PgSQL) RecordUsage(ctx context.Context, provider string, at time.Time, success bool) error {
	row := goqu.Record{
		"provider": provider,
		"day":      usageDay(at).Format(time.DateOnly),
		"total":    1,
		"success":  0,
		"failed":   0,
	}
	update := goqu.Record{
		"total":      goqu.L(usageTable + ".total + 1"),
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if success {
		row["success"] = 1
		update["success"] = goqu.L(usageTable + ".success + 1")
	} else {
		row["failed"] = 1
		update["failed"] = goqu.L(usageTable + ".failed + 1")
	}

	if _, err := p.Builder.Insert(usageTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("provider, day", update)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not record api usage in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) Usage(ctx context.Context, from, to time.Time) ([]domain.UsageRecord, error) {
	var rows []PgUsage
	if err := p.Builder.From(usageTable).
		Select("provider", "day", "total", "success", "failed").
		Where(
			goqu.I("day").Gte(usageDay(from).Format(time.DateOnly)),
			goqu.I("day").Lte(usageDay(to).Format(time.DateOnly)),
		).
		Order(goqu.I("day").Asc(), goqu.I("provider").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch api usage from pg: %w", err)
	}

	out := make([]domain.UsageRecord, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}
