package postgres_test

import (
	"context"
	"database/sql"
	"idverify/pkg/domain"
	"idverify/pkg/storage"
	"idverify/pkg/storage/postgres"
	"testing"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func storeInTx(ctx context.Context, t *testing.T, s storage.AllStorage, nin string) domain.EntryID {
	t.Helper()
	stored, err := s.StoreEntries(ctx, newEntry(domain.ListID(uuid.New()), domain.PlainValue(nin)))
	require.NoError(t, err)
	require.Len(t, stored, 1)

	return stored[0].ID
}

func TestPgSQL_OutsideTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Begin(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	inner, ok := tx.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	require.ErrorIs(t, inner.Ping(ctx), storage.ErrAlreadyInTx)
}

func TestPgSQL_CommitPersistsEntries(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	id := storeInTx(ctx, t, tx, "12345678901")

	// not visible to other connections until commit
	outside, err := pg.EntryByID(ctx, id)
	require.NoError(t, err)
	require.Nil(t, outside)

	require.NoError(t, tx.Commit())

	got, err := pg.EntryByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, domain.EntryStatusPending, got.Status)
}

func TestPgSQL_RollbackDiscardsEntries(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	id := storeInTx(ctx, t, tx, "10987654321")
	require.NoError(t, tx.Rollback())

	got, err := pg.EntryByID(ctx, id)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		var id domain.EntryID
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			id = storeInTx(ctx, t, s, "11111111111")

			return nil
		})
		require.NoError(t, err)

		got, err := pg.EntryByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
	})

	t.Run("callback error", func(t *testing.T) {
		boom := errors.New("boom")
		var id domain.EntryID
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			id = storeInTx(ctx, t, s, "22222222222")

			return boom
		})
		require.ErrorIs(t, err, boom)

		got, err := pg.EntryByID(ctx, id)
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("panic", func(t *testing.T) {
		var id domain.EntryID
		require.Panics(t, func() {
			_ = pg.WithTx(ctx, func(s storage.AllStorage) error {
				id = storeInTx(ctx, t, s, "33333333333")
				panic("boom")
			})
		})

		got, err := pg.EntryByID(ctx, id)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}
