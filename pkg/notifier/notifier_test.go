package notifier_test

import (
	"context"
	"errors"
	"recap/pkg/domain"
	"recap/pkg/notifier"
	mocknotifier "recap/pkg/notifier/mock"
	"recap/pkg/serrors"
	mockstorage "recap/pkg/storage/mock"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStore_Notify(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mockstorage.NewMockNotificationStorage(ctrl)

		in := domain.Notification{Kind: domain.NotificationKindStatus, Title: "Logged in to PACER"}
		stored := in
		stored.ID = domain.NotificationID(uuid.New())
		stored.CreatedAt = time.Now()
		st.EXPECT().StoreNotifications(gomock.Any(), in).Return([]domain.Notification{stored}, nil)

		got, err := notifier.NewStore(st).Notify(ctx, in)
		require.NoError(t, err)
		require.Equal(t, stored, *got)
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mockstorage.NewMockNotificationStorage(ctrl)
		st.EXPECT().StoreNotifications(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := notifier.NewStore(st).Notify(ctx, domain.Notification{Kind: domain.NotificationKindUpload})
		require.ErrorContains(t, err, "db down")
	})

	t.Run("no row returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := mockstorage.NewMockNotificationStorage(ctrl)
		st.EXPECT().StoreNotifications(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := notifier.NewStore(st).Notify(ctx, domain.Notification{Kind: domain.NotificationKindUpload})
		require.Error(t, err)
	})
}

func TestGated_Notify(t *testing.T) {
	ctx := context.Background()
	status := domain.Notification{Kind: domain.NotificationKindStatus, Title: "Logged out of PACER"}
	upload := domain.Notification{Kind: domain.NotificationKindUpload, Title: "Docket uploaded"}

	cases := []struct {
		name      string
		opts      domain.Options
		in        domain.Notification
		delivered bool
	}{
		{name: "status on", opts: domain.DefaultOptions(), in: status, delivered: true},
		{name: "upload on", opts: domain.DefaultOptions(), in: upload, delivered: true},
		{
			name:      "status off",
			opts:      domain.DefaultOptions().With(domain.OptionStatusNotifications, false),
			in:        status,
			delivered: false,
		},
		{
			name:      "upload off does not affect status",
			opts:      domain.DefaultOptions().With(domain.OptionUploadNotifications, false),
			in:        status,
			delivered: true,
		},
		{
			name:      "upload off",
			opts:      domain.DefaultOptions().With(domain.OptionUploadNotifications, false),
			in:        upload,
			delivered: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			src := mocknotifier.NewMockOptionsSource(ctrl)
			next := mocknotifier.NewMockNotifier(ctrl)

			src.EXPECT().Options(gomock.Any()).Return(tc.opts, nil)
			if tc.delivered {
				next.EXPECT().Notify(gomock.Any(), tc.in).Return(&tc.in, nil)
			}

			got, err := notifier.NewGated(src, next).Notify(ctx, tc.in)
			require.NoError(t, err)
			if tc.delivered {
				require.NotNil(t, got)
			} else {
				require.Nil(t, got)
			}
		})
	}
}

func TestGated_Errors(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	src := mocknotifier.NewMockOptionsSource(ctrl)
	next := mocknotifier.NewMockNotifier(ctrl)
	g := notifier.NewGated(src, next)

	_, err := g.Notify(ctx, domain.Notification{Kind: "sms"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	src.EXPECT().Options(gomock.Any()).Return(domain.Options{}, errors.New("timeout"))
	_, err = g.Notify(ctx, domain.Notification{Kind: domain.NotificationKindStatus})
	require.ErrorContains(t, err, "timeout")
}
