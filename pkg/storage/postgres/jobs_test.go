package postgres_test

import (
	"context"
	"database/sql"
	"idverify/internal/verifier"
	"idverify/pkg/domain"
	"idverify/pkg/storage"
	"idverify/pkg/storage/postgres"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

func migrateRiver(t *testing.T, pg *postgres.PgSQL) {
	t.Helper()
	migrator, err := rivermigrate.New(riverdatabasesql.New(pg.DB.(*sql.DB)), nil)
	require.NoError(t, err)
	versions := migrator.AllVersions()
	_, err = migrator.Migrate(t.Context(), rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: versions[len(versions)-1].Version,
	})
	require.NoError(t, err)
}

func verifyJob() verifier.JobArgs {
	return verifier.NewJobArgs(domain.EntryID(uuid.New()), 3)
}

func TestPgSQL_AddJob_InTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)
	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	args := verifyJob()
	added, err := tx.AddJob(ctx, args, nil)
	require.NoError(t, err)
	require.True(t, added)

	job := rivertest.RequireInsertedTx[*riverdatabasesql.Driver](ctx, t,
		tx.(*postgres.PgSQL).DB.(*sql.Tx), &verifier.JobArgs{}, nil)
	require.Equal(t, args.EntryID, job.Args.EntryID)
	require.Equal(t, 3, job.MaxAttempts)
}

func TestPgSQL_AddJob_UniquePerEntry(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)
	ctx := context.Background()

	args := verifyJob()
	added, err := pg.AddJob(ctx, args, nil)
	require.NoError(t, err)
	require.True(t, added)

	added, err = pg.AddJob(ctx, args, nil)
	require.NoError(t, err)
	require.False(t, added, "a second job for the same entry is skipped")

	rivertest.RequireInserted[*riverdatabasesql.Driver](ctx, t,
		riverdatabasesql.New(pg.DB.(*sql.DB)), &verifier.JobArgs{}, nil)
}

func TestPgSQL_AddJobs_CountsInsertedOnly(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)
	ctx := context.Background()

	n, err := pg.AddJobs(ctx, nil)
	require.NoError(t, err)
	require.Zero(t, n)

	a, b, c := verifyJob(), verifyJob(), verifyJob()
	n, err = pg.AddJobs(ctx, []river.InsertManyParams{{Args: a}, {Args: b}})
	require.NoError(t, err)
	require.Equal(t, 2, n)

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		n, err = s.AddJobs(ctx, []river.InsertManyParams{{Args: a}, {Args: c}})

		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, n, "the job for a is already queued")
}
