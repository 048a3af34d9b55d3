package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationID uniquely identifies a notification.
// It wraps uuid.UUID to provide type safety at the domain layer.
type NotificationID uuid.UUID

// String returns the canonical textual form of the id.
func (id NotificationID) String() string { return uuid.UUID(id).String() }

// NotificationKind selects which user option gates a notification.
type NotificationKind string

const (
	// NotificationKindStatus is a login/logout notice, gated by status_notifications.
	NotificationKindStatus NotificationKind = "status"
	// NotificationKindUpload is an upload notice, gated by upload_notifications.
	NotificationKindUpload NotificationKind = "upload"
)

// OptionKey returns the option that must be enabled for the kind to be shown.
func (k NotificationKind) OptionKey() (OptionKey, bool) {
	switch k {
	case NotificationKindStatus:
		return OptionStatusNotifications, true
	case NotificationKindUpload:
		return OptionUploadNotifications, true
	default:
		return "", false
	}
}

// Notification is a transient alert shown to the user.
type Notification struct {
	ID      NotificationID   `json:"id"`
	Kind    NotificationKind `json:"kind"`
	Title   string           `json:"title"`
	Message string           `json:"message"`

	// CreatedAt is the time the notification was stored.
	CreatedAt time.Time `json:"createdAt"`
	// DismissedAt is set once the user dismissed it; zero value means visible.
	DismissedAt time.Time `json:"-"`
}
