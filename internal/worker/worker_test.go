package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"recap/internal/worker"
	"recap/pkg/domain"
	"recap/pkg/logger"
	mocknotifier "recap/pkg/notifier/mock"
	"recap/pkg/serrors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, args worker.NotifyJobArgs) *river.Job[worker.NotifyJobArgs] {
	return &river.Job[worker.NotifyJobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   args,
	}
}

func statusJob() worker.NotifyJobArgs {
	return worker.NewNotifyJob(domain.Notification{
		Kind:    domain.NotificationKindStatus,
		Title:   "Logged in to PACER",
		Message: "RECAP is active.",
	}, worker.JobOptions{MaxAttempts: 3})
}

func TestNotificationWorker_Work_Delivered(t *testing.T) {
	ctrl := gomock.NewController(t)
	n := mocknotifier.NewMockNotifier(ctrl)
	w := worker.NewNotificationWorker(n)

	args := statusJob()
	n.EXPECT().Notify(gomock.Any(), args.Notification()).
		Return(&domain.Notification{ID: domain.NotificationID(uuid.New())}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, args)))
}

func TestNotificationWorker_Work_Suppressed(t *testing.T) {
	ctrl := gomock.NewController(t)
	n := mocknotifier.NewMockNotifier(ctrl)
	w := worker.NewNotificationWorker(n)

	n.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(2, statusJob())))
}

func TestNotificationWorker_Work_BadRequestCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	n := mocknotifier.NewMockNotifier(ctrl)
	w := worker.NewNotificationWorker(n)

	n.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil, serrors.With(serrors.ErrBadRequest, "unknown kind"))

	err := w.Work(context.Background(), makeJob(3, worker.NotifyJobArgs{NotificationKind: "sms"}))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestNotificationWorker_Work_RetriesOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	n := mocknotifier.NewMockNotifier(ctrl)
	w := worker.NewNotificationWorker(n)

	n.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	err := w.Work(context.Background(), makeJob(4, statusJob()))
	require.ErrorContains(t, err, "db down")
	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
}

func TestNotificationWorker_Timeout(t *testing.T) {
	w := worker.NewNotificationWorker(nil)
	require.Equal(t, 30*time.Second, w.Timeout(makeJob(5, statusJob())))
}

func TestNotifyJobArgs_InsertOpts(t *testing.T) {
	n := domain.Notification{Kind: domain.NotificationKindUpload, Title: "t", Message: "m"}

	opts := worker.NewNotifyJob(n, worker.JobOptions{MaxAttempts: 4}).InsertOpts()
	require.Equal(t, 4, opts.MaxAttempts)
	require.False(t, opts.UniqueOpts.ByArgs)

	opts = worker.NewNotifyJob(n, worker.JobOptions{MaxAttempts: 4, DedupePeriod: time.Minute}).InsertOpts()
	require.True(t, opts.UniqueOpts.ByArgs)
	require.Equal(t, time.Minute, opts.UniqueOpts.ByPeriod)

	args := worker.NewNotifyJob(n, worker.JobOptions{})
	require.Equal(t, "NotifyJob", args.Kind())
	require.Equal(t, n, args.Notification())
}

func TestNotifyJobArgs_EncodesKind(t *testing.T) {
	args := worker.NewNotifyJob(domain.Notification{
		Kind:    domain.NotificationKindUpload,
		Title:   "t",
		Message: "m",
	}, worker.JobOptions{MaxAttempts: 2})

	raw, err := json.Marshal(args)
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"upload","title":"t","message":"m"}`, string(raw))

	var decoded worker.NotifyJobArgs
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, domain.NotificationKindUpload, decoded.NotificationKind)
	require.Equal(t, args.Notification(), decoded.Notification())
}

func TestWorkers_Registers(t *testing.T) {
	require.NotNil(t, worker.Workers(mocknotifier.NewMockNotifier(gomock.NewController(t))))
}
