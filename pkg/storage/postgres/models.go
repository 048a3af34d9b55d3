package postgres

import (
	"database/sql"
	"recap/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// PgOption is a row of the options table.
type PgOption struct {
	Key       string    `db:"key"`
	Value     bool      `db:"value"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

// PgNotification is a row of the notifications table.
type PgNotification struct {
	ID      uuid.UUID `db:"id"      goqu:"skipinsert"`
	Kind    string    `db:"kind"`
	Title   string    `db:"title"`
	Message string    `db:"message"`

	CreatedAt   time.Time    `db:"created_at"   goqu:"skipinsert"`
	DismissedAt sql.NullTime `db:"dismissed_at" goqu:"skipinsert"`
}

func (p *PgNotification) ToDomain() domain.Notification {
	return domain.Notification{
		ID:          domain.NotificationID(p.ID),
		Kind:        domain.NotificationKind(p.Kind),
		Title:       p.Title,
		Message:     p.Message,
		CreatedAt:   p.CreatedAt,
		DismissedAt: p.DismissedAt.Time,
	}
}

func (p *PgNotification) FromDomain(n domain.Notification) {
	*p = PgNotification{
		ID:        uuid.UUID(n.ID),
		Kind:      string(n.Kind),
		Title:     n.Title,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
		DismissedAt: sql.NullTime{
			Time:  n.DismissedAt,
			Valid: !n.DismissedAt.IsZero(),
		},
	}
}

func domainNotificationsToPg(notifications []domain.Notification) []PgNotification {
	out := make([]PgNotification, len(notifications))
	for i := range out {
		out[i].FromDomain(notifications[i])
	}

	return out
}

func pgNotificationsToDomain(rows []PgNotification) []domain.Notification {
	out := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}

	return out
}
