// Package v1handler implements the generated /v1 API server interfaces.
package v1handler

import (
	"recap/internal/api/specs/v1specs"
	"recap/internal/config"
	"recap/internal/tracker"
	"recap/pkg/storage"
)

const (
	// DefaultLimit is the notification page size when the client sends none.
	DefaultLimit = 50
	// MaxLimit caps the notification page size.
	MaxLimit = 500
)

// Deps are the services the handlers call into.
type Deps struct {
	Tracker tracker.Tracker
	Storage storage.AllStorage
}

// Options tune handler behavior.
type Options struct {
	DefaultLimit uint
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	limit := DefaultLimit
	if cfg.Notifications.DefaultLimit > 0 && cfg.Notifications.DefaultLimit <= MaxLimit {
		limit = cfg.Notifications.DefaultLimit
	}

	return Options{DefaultLimit: uint(limit)} //nolint: gosec
}

type Handler struct {
	deps    Deps
	options Options
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps, options Options) *Handler {
	if options.DefaultLimit == 0 {
		options.DefaultLimit = DefaultLimit
	}

	return &Handler{deps: deps, options: options}
}
