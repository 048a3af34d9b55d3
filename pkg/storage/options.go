package storage

import (
	"context"
	"recap/pkg/domain"
)

// OptionStorage persists the user options that gate RECAP behavior.
type OptionStorage interface {
	// Options returns a snapshot of all options. Keys that were never set
	// take the value of domain.DefaultOptions.
	Options(ctx context.Context) (domain.Options, error)
	// SetOption stores value under key. Unknown keys are rejected with an
	// serrors.ErrBadRequest error.
	SetOption(ctx context.Context, key domain.OptionKey, value bool) error
}
