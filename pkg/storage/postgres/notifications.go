package postgres

import (
	"context"
	"fmt"
	"recap/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	notificationsTable = "notifications"
)

func (p *PgSQL) StoreNotifications(ctx context.Context,
	notifications ...domain.Notification) ([]domain.Notification, error) {
	if len(notifications) == 0 {
		return nil, nil
	}

	var result []PgNotification
	if err := p.Builder.Insert(notificationsTable).
		Rows(domainNotificationsToPg(notifications)).
		Returning(&PgNotification{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store notifications into pg: %w", err)
	}

	return pgNotificationsToDomain(result), nil
}

// Notifications returns undismissed notifications ordered by created_at DESC, id DESC.
func (p *PgSQL) Notifications(ctx context.Context, since time.Time, limit uint) ([]domain.Notification, error) {
	w := []goqu.Expression{
		goqu.I("dismissed_at").IsNull(),
	}
	if !since.IsZero() {
		w = append(w, goqu.I("created_at").Gt(since))
	}

	var rows []PgNotification
	if err := p.Builder.From(notificationsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch notifications from pg: %w", err)
	}

	return pgNotificationsToDomain(rows), nil
}

// DismissNotification sets dismissed_at on a visible notification.
func (p *PgSQL) DismissNotification(ctx context.Context, id domain.NotificationID) (bool, error) {
	res, err := p.Builder.Update(notificationsTable).
		Set(goqu.Record{
			"dismissed_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("dismissed_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not dismiss notification in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}
