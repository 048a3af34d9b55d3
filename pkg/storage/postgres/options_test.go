package postgres_test

import (
	"context"
	"recap/pkg/domain"
	"recap/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Options(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	t.Run("defaults when nothing is stored", func(t *testing.T) {
		opts, err := pgSQL.Options(ctx)
		require.NoError(t, err)
		require.Equal(t, domain.DefaultOptions(), opts)
	})

	t.Run("stored values override defaults", func(t *testing.T) {
		require.NoError(t, pgSQL.SetOption(ctx, domain.OptionRecapDisabled, true))
		require.NoError(t, pgSQL.SetOption(ctx, domain.OptionUploadNotifications, false))

		opts, err := pgSQL.Options(ctx)
		require.NoError(t, err)
		require.True(t, opts.RecapDisabled)
		require.False(t, opts.UploadNotifications)
		require.True(t, opts.StatusNotifications)
	})

	t.Run("set is an upsert", func(t *testing.T) {
		require.NoError(t, pgSQL.SetOption(ctx, domain.OptionRecapDisabled, false))

		opts, err := pgSQL.Options(ctx)
		require.NoError(t, err)
		require.False(t, opts.RecapDisabled)
	})

	t.Run("unknown key", func(t *testing.T) {
		err := pgSQL.SetOption(ctx, domain.OptionKey("dark_mode"), true)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestPgSQL_Options_WithinTransaction(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	tx, err := pgSQL.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.SetOption(ctx, domain.OptionStatusNotifications, false))
	require.NoError(t, tx.Rollback())

	opts, err := pgSQL.Options(ctx)
	require.NoError(t, err)
	require.True(t, opts.StatusNotifications)
}
