// Package notifier delivers user notifications. Store keeps them for clients
// to poll; Gated drops the kinds the user switched off.
package notifier

import (
	"context"
	"errors"
	"fmt"
	"recap/pkg/domain"
	"recap/pkg/logger"
	"recap/pkg/serrors"
	"recap/pkg/storage"

	"go.uber.org/zap"
)

//go:generate mockgen -package mocknotifier -source=notifier.go -destination=mock/mocknotifier.go *

// Notifier shows a notification to the user.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) (*domain.Notification, error)
}

// OptionsSource provides the current option snapshot.
type OptionsSource interface {
	Options(ctx context.Context) (domain.Options, error)
}

// Store persists notifications so API clients can fetch and dismiss them.
type Store struct {
	storage storage.NotificationStorage
}

// NewStore returns a Notifier writing into s.
func NewStore(s storage.NotificationStorage) *Store {
	return &Store{storage: s}
}

func (s *Store) Notify(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	res, err := s.storage.StoreNotifications(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("could not store notification: %w", err)
	}
	if len(res) == 0 {
		return nil, errors.New("could not store notification: no row returned")
	}
	stored := res[0]

	logger.Info(ctx, "notification created",
		zap.Stringer("id", stored.ID),
		zap.String("kind", string(stored.Kind)),
		zap.String("title", stored.Title))

	return &stored, nil
}

// Gated forwards a notification only when the option bound to its kind is on.
// Suppressed notifications return (nil, nil).
type Gated struct {
	options OptionsSource
	next    Notifier
}

// NewGated wraps next with the option check.
func NewGated(options OptionsSource, next Notifier) *Gated {
	return &Gated{options: options, next: next}
}

func (g *Gated) Notify(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	key, ok := n.Kind.OptionKey()
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown notification kind %q", n.Kind)
	}

	opts, err := g.options.Options(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load options: %w", err)
	}

	if enabled, _ := opts.Get(key); !enabled {
		logger.Debug(ctx, "notification suppressed",
			zap.String("kind", string(n.Kind)),
			zap.String("option", string(key)))

		return nil, nil //nolint: nilnil
	}

	return g.next.Notify(ctx, n)
}
