package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs into the queue tables that live next to
// the application data, so a job and the rows it depends on can be written in
// one transaction.
//
//	_, err := store.AddJob(ctx, worker.NotifyJobArgs{Title: "Logged in to PACER"}, nil)
type JobStorage interface {
	// AddJob enqueues a job with the given arguments and reports whether it
	// was inserted (false means a unique job already existed). Inside a
	// transaction the job only becomes visible after commit.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
