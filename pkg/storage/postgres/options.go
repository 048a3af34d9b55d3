package postgres

import (
	"context"
	"fmt"
	"recap/pkg/domain"
	"recap/pkg/serrors"

	"github.com/doug-martin/goqu/v9"
)

const (
	optionsTable = "options"
)

// Options reads every stored option on top of domain.DefaultOptions.
// Rows with keys this version does not know are ignored.
func (p *PgSQL) Options(ctx context.Context) (domain.Options, error) {
	var rows []PgOption
	if err := p.Builder.From(optionsTable).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return domain.Options{}, fmt.Errorf("could not fetch options from pg: %w", err)
	}

	opts := domain.DefaultOptions()
	for _, row := range rows {
		opts = opts.With(domain.OptionKey(row.Key), row.Value)
	}

	return opts, nil
}

// SetOption upserts a single option.
func (p *PgSQL) SetOption(ctx context.Context, key domain.OptionKey, value bool) error {
	if !key.IsValid() {
		return serrors.With(serrors.ErrBadRequest, "unknown option %q", key)
	}

	_, err := p.Builder.Insert(optionsTable).
		Rows(PgOption{Key: string(key), Value: value}).
		OnConflict(goqu.DoUpdate("key", goqu.Record{
			"value":      goqu.L("EXCLUDED.value"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store option in pg: %w", err)
	}

	return nil
}
