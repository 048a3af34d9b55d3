package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"recap"
	"recap/pkg/logger"
	"recap/pkg/storage"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"go.uber.org/zap"
)

// Migrate applies the embedded application migrations and then brings the
// River queue tables to the version expected by the linked river module.
// Both steps are idempotent.
func (p *PgSQL) Migrate(ctx context.Context) error {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return storage.ErrAlreadyInTx
	}

	if err := migrateSchema(ctx, db); err != nil {
		return err
	}

	return migrateQueue(ctx, db)
}

func migrateSchema(ctx context.Context, db *sql.DB) error {
	migrations, err := fs.Sub(recap.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("could not create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("could not migrate schema: %w", err)
	}
	for _, res := range results {
		logger.Info(ctx, "applied migration",
			zap.Int64("version", res.Source.Version),
			zap.Duration("took", res.Duration))
	}

	return nil
}

func migrateQueue(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("could not migrate river queue: %w", err)
	}
	for _, version := range res.Versions {
		logger.Info(ctx, "applied river queue migration", zap.Int("version", version.Version))
	}

	return nil
}
