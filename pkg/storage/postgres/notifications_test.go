package postgres_test

import (
	"context"
	"recap/pkg/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreNotifications(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	t.Run("store empty", func(t *testing.T) {
		res, err := pgSQL.StoreNotifications(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})

	t.Run("store generates id and timestamp", func(t *testing.T) {
		res, err := pgSQL.StoreNotifications(ctx,
			domain.Notification{Kind: domain.NotificationKindStatus, Title: "Logged in to PACER", Message: "RECAP is active."},
			domain.Notification{Kind: domain.NotificationKindUpload, Title: "Upload", Message: "Docket sent"},
		)
		require.NoError(t, err)
		require.Len(t, res, 2)
		for _, n := range res {
			require.NotEqual(t, uuid.Nil, uuid.UUID(n.ID))
			require.False(t, n.CreatedAt.IsZero())
			require.True(t, n.DismissedAt.IsZero())
		}
		require.Equal(t, "Logged in to PACER", res[0].Title)
	})
}

func TestPgSQL_NotificationsAndDismiss(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	var stored []domain.Notification
	for _, title := range []string{"first", "second", "third"} {
		res, err := pgSQL.StoreNotifications(ctx, domain.Notification{
			Kind:    domain.NotificationKindStatus,
			Title:   title,
			Message: title,
		})
		require.NoError(t, err)
		stored = append(stored, res...)
		// created_at comes from the database clock
		time.Sleep(5 * time.Millisecond)
	}

	list, err := pgSQL.Notifications(ctx, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "third", list[0].Title)
	require.Equal(t, "first", list[2].Title)

	list, err = pgSQL.Notifications(ctx, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)

	list, err = pgSQL.Notifications(ctx, stored[0].CreatedAt, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)

	ok, err := pgSQL.DismissNotification(ctx, stored[1].ID)
	require.NoError(t, err)
	require.True(t, ok)

	// second dismissal finds nothing visible
	ok, err = pgSQL.DismissNotification(ctx, stored[1].ID)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = pgSQL.DismissNotification(ctx, domain.NotificationID(uuid.New()))
	require.NoError(t, err)
	require.False(t, ok)

	list, err = pgSQL.Notifications(ctx, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, n := range list {
		require.NotEqual(t, stored[1].ID, n.ID)
	}
}
