package postgres_test

import (
	"context"
	"database/sql"
	"recap/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

type pingJobArgs struct {
	Title string `json:"title"`
}

func (pingJobArgs) Kind() string { return "ping" }

func TestPgSQL_AddJob_InTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	inserted, err := txStorage.AddJob(ctx, pingJobArgs{Title: "in tx"}, nil)
	require.NoError(t, err)
	require.True(t, inserted)

	job := rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&pingJobArgs{},
		nil,
	)
	require.Equal(t, "in tx", job.Args.Title)

	// not visible before commit
	rivertest.RequireNotInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&pingJobArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_NoTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	_, err := pg.AddJob(ctx, pingJobArgs{Title: "direct"}, &river.InsertOpts{MaxAttempts: 3})
	require.NoError(t, err)
	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&pingJobArgs{},
		&rivertest.RequireInsertedOpts{MaxAttempts: 3},
	)
}

func TestPgSQL_AddJob_Unique(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	opts := &river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true, ByPeriod: time.Minute}}

	inserted, err := pg.AddJob(ctx, pingJobArgs{Title: "once"}, opts)
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = pg.AddJob(ctx, pingJobArgs{Title: "once"}, opts)
	require.NoError(t, err)
	require.False(t, inserted)

	inserted, err = pg.AddJob(ctx, pingJobArgs{Title: "twice"}, opts)
	require.NoError(t, err)
	require.True(t, inserted)
}
