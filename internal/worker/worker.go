// Package worker runs the background job queue that delivers notifications.
package worker

import (
	"context"
	"fmt"
	"recap/internal/config"
	"recap/pkg/logger"
	"recap/pkg/notifier"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the queue client.
type Options struct {
	// Workers is the number of jobs processed concurrently.
	Workers int
	// JobOptions are applied to every notification job enqueued by the app.
	JobOptions JobOptions
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Workers: cfg.Notifications.Workers,
		JobOptions: JobOptions{
			MaxAttempts:  cfg.Notifications.MaxAttempts,
			DedupePeriod: cfg.Notifications.DedupePeriod,
		},
	}
}

// Workers returns the registry of every worker in this package.
func Workers(n notifier.Notifier) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewNotificationWorker(n))

	return workers
}

// Start boots a River client on dbPool and begins working jobs.
func Start(ctx context.Context, dbPool *pgxpool.Pool, n notifier.Notifier, options Options) (*river.Client[pgx.Tx], error) {
	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.Workers},
		},
		Workers: Workers(n),
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
