package worker

import (
	"recap/pkg/domain"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// NotifyJobArgs is a queued notification. Identical notifications enqueued
// within the dedupe window collapse into one job.
type NotifyJobArgs struct {
	NotificationKind domain.NotificationKind `json:"kind"    river:"unique"`
	Title            string                  `json:"title"   river:"unique"`
	Message          string                  `json:"message" river:"unique"`

	// maxAttempts caps delivery retries.
	maxAttempts int
	// dedupePeriod is the window in which identical jobs are skipped; zero disables it.
	dedupePeriod time.Duration
}

// JobOptions tune how notification jobs are inserted.
type JobOptions struct {
	MaxAttempts  int
	DedupePeriod time.Duration
}

// NewNotifyJob builds the job for n.
func NewNotifyJob(n domain.Notification, opts JobOptions) NotifyJobArgs {
	return NotifyJobArgs{
		NotificationKind: n.Kind,
		Title:            n.Title,
		Message:          n.Message,
		maxAttempts:      opts.MaxAttempts,
		dedupePeriod:     opts.DedupePeriod,
	}
}

// Kind returns the River job kind the notification worker is registered under.
func (args NotifyJobArgs) Kind() string { return "NotifyJob" }

// InsertOpts applies the retry cap and, when set, deduplication.
func (args NotifyJobArgs) InsertOpts() river.InsertOpts {
	opts := river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
	if args.dedupePeriod > 0 {
		opts.UniqueOpts = river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.dedupePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		}
	}

	return opts
}

// Notification converts the job back into the notification to deliver.
func (args NotifyJobArgs) Notification() domain.Notification {
	return domain.Notification{
		Kind:    args.NotificationKind,
		Title:   args.Title,
		Message: args.Message,
	}
}
