package postgres

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job. On a transactional handle the job is written
// through the open transaction and becomes visible to workers on commit.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)
	if tx, txErr := p.tx(); txErr == nil {
		res, err = p.queue.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = p.queue.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
