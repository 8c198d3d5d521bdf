package postgres_test

import (
	"context"
	"idverify/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_RecordUsage(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	day1 := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	day2 := day1.Add(2 * time.Minute)

	require.NoError(t, pg.RecordUsage(ctx, "datapro", day1, true))
	require.NoError(t, pg.RecordUsage(ctx, "datapro", day1, false))
	require.NoError(t, pg.RecordUsage(ctx, "datapro", day1, true))
	require.NoError(t, pg.RecordUsage(ctx, "verifydata", day1, false))
	require.NoError(t, pg.RecordUsage(ctx, "datapro", day2, true))

	rows, err := pg.Usage(ctx, day1, day2)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, domain.UsageRecord{
		Provider: "datapro",
		Day:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Total:    3,
		Success:  2,
		Failed:   1,
	}, rows[0])
	require.Equal(t, "verifydata", rows[1].Provider)
	require.Equal(t, int64(1), rows[1].Failed)
	require.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), rows[2].Day)

	only, err := pg.Usage(ctx, day2, day2)
	require.NoError(t, err)
	require.Len(t, only, 1)
}
