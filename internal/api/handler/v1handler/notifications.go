package v1handler

import (
	"context"
	"recap/internal/api/specs/v1specs"
	"recap/pkg/domain"
	"recap/pkg/serrors"
)

// ListNotifications returns visible notifications, newest first. The client
// polls with since set to the createdAt of the newest one it has seen.
func (h Handler) ListNotifications(ctx context.Context, params v1specs.ListNotificationsParams) (*v1specs.NotificationList, error) {
	limit := h.options.DefaultLimit
	if n, ok := params.Limit.Get(); ok {
		limit = uint(n) //nolint: gosec
	}

	list, err := h.deps.Storage.Notifications(ctx, params.Since.Value, limit)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	items := make([]v1specs.Notification, 0, len(list))
	for _, n := range list {
		items = append(items, DomainNotificationToV1Specs(n))
	}

	return &v1specs.NotificationList{Items: items}, nil
}

// DismissNotification hides a notification from later listings.
func (h Handler) DismissNotification(ctx context.Context, params v1specs.DismissNotificationParams) error {
	found, err := h.deps.Storage.DismissNotification(ctx, domain.NotificationID(params.ID))
	if err != nil {
		return err //nolint: wrapcheck
	}
	if !found {
		return serrors.With(serrors.ErrNotFound, "notification not found")
	}

	return nil
}
