package worker

import (
	"context"
	"errors"
	"fmt"
	"recap/pkg/logger"
	"recap/pkg/notifier"
	"recap/pkg/serrors"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const notifyTimeout = 30 * time.Second

// NotificationWorker delivers queued notifications. Failed deliveries are
// retried by River up to the job's MaxAttempts; malformed jobs are cancelled.
type NotificationWorker struct {
	river.WorkerDefaults[NotifyJobArgs]

	notifier notifier.Notifier
}

// NewNotificationWorker returns a worker delivering through n, which is
// usually a notifier.Gated so the user's options are honored at delivery time.
func NewNotificationWorker(n notifier.Notifier) *NotificationWorker {
	return &NotificationWorker{notifier: n}
}

func (w *NotificationWorker) Timeout(*river.Job[NotifyJobArgs]) time.Duration {
	return notifyTimeout
}

func (w *NotificationWorker) Work(ctx context.Context, job *river.Job[NotifyJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("kind", string(job.Args.NotificationKind)),
		zap.Int("attempt", job.Attempt))

	created, err := w.notifier.Notify(ctx, job.Args.Notification())
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			logger.Warn(ctx, "dropping malformed notification job", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error delivering notification", zap.Error(err))

		return fmt.Errorf("could not deliver notification: %w", err)
	}

	if created == nil {
		logger.Debug(ctx, "notification switched off by user")

		return nil
	}

	logger.Info(ctx, "notification delivered", zap.Stringer("notificationID", created.ID))

	return nil
}
