package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"recap/pkg/domain"
	"recap/pkg/storage"
	"recap/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func statusNotification(title string) domain.Notification {
	return domain.Notification{Kind: domain.NotificationKindStatus, Title: title, Message: "RECAP is active."}
}

func activeTitles(t *testing.T, s storage.NotificationStorage) []string {
	t.Helper()

	list, err := s.Notifications(context.Background(), time.Time{}, 100)
	require.NoError(t, err)
	titles := make([]string, 0, len(list))
	for _, n := range list {
		titles = append(titles, n.Title)
	}

	return titles
}

func TestPgSQL_Begin(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)
	require.Nil(t, inner.Pool)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	require.ErrorIs(t, inner.Migrate(ctx), storage.ErrAlreadyInTx)
	require.NoError(t, inner.Close())
}

func TestPgSQL_CommitAndRollback_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Commit(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreNotifications(ctx, statusNotification("committed"))
	require.NoError(t, err)
	require.NoError(t, txStorage.SetOption(ctx, domain.OptionRecapDisabled, true))

	// uncommitted writes are only visible inside the tx
	require.Empty(t, activeTitles(t, pg))
	require.Equal(t, []string{"committed"}, activeTitles(t, txStorage))

	require.NoError(t, txStorage.Commit())

	require.Equal(t, []string{"committed"}, activeTitles(t, pg))
	opts, err := pg.Options(ctx)
	require.NoError(t, err)
	require.True(t, opts.RecapDisabled)
}

func TestPgSQL_Rollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreNotifications(ctx, statusNotification("discarded"))
	require.NoError(t, err)
	_, err = txStorage.AddJob(ctx, pingJobArgs{Title: "discarded"}, nil)
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())
	require.Empty(t, activeTitles(t, pg))

	var jobs int
	require.NoError(t, pg.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM river_job`).Scan(&jobs))
	require.Zero(t, jobs)
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.StoreNotifications(ctx, statusNotification("kept"))

		return err
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.StoreNotifications(ctx, statusNotification("dropped"))
		require.NoError(t, err)

		return boom
	})
	require.ErrorIs(t, err, boom)

	require.Equal(t, []string{"kept"}, activeTitles(t, pg))
}
