package v1handler

import (
	"context"
	"recap/internal/api/specs/v1specs"
	"recap/pkg/domain"
	"recap/pkg/serrors"
)

func (h Handler) GetOptions(ctx context.Context) (*v1specs.OptionSet, error) {
	opts, err := h.deps.Storage.Options(ctx)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainOptionsToV1Specs(opts), nil
}

// SetOption stores the value under the key in the path and returns the
// resulting options.
func (h Handler) SetOption(ctx context.Context, req *v1specs.OptionValue, params v1specs.SetOptionParams) (*v1specs.OptionSet, error) {
	key := domain.OptionKey(params.Key)
	if !key.IsValid() {
		return nil, serrors.With(serrors.ErrNotFound, "unknown option %q", key)
	}

	if err := h.deps.Storage.SetOption(ctx, key, req.Value); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return h.GetOptions(ctx)
}
