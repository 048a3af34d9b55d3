package storage

import (
	"context"
	"recap/pkg/domain"
	"time"
)

// NotificationStorage keeps delivered notifications until the user dismisses them.
type NotificationStorage interface {
	// StoreNotifications inserts notifications and returns the stored rows
	// including generated ids and timestamps.
	StoreNotifications(ctx context.Context, notifications ...domain.Notification) ([]domain.Notification, error)
	// Notifications returns visible notifications created after since, newest
	// first, at most limit of them. A zero since returns the latest ones.
	Notifications(ctx context.Context, since time.Time, limit uint) ([]domain.Notification, error)
	// DismissNotification hides a notification. It returns false when no
	// visible notification with the id exists.
	DismissNotification(ctx context.Context, id domain.NotificationID) (bool, error)
}
