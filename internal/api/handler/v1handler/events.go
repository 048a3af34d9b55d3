package v1handler

import (
	"context"
	"recap/internal/api/specs/v1specs"
	"recap/internal/tracker"
	"recap/pkg/domain"
)

// ChangeCookies reports the cookies of a domain after a change.
func (h Handler) ChangeCookies(ctx context.Context, req *v1specs.CookieChange) (*v1specs.LoginStatus, error) {
	state, err := h.deps.Tracker.HandleCookieChange(ctx, tracker.CookieChange{
		Domain:  req.Domain,
		Cookies: req.Cookies.Value,
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainLoginStateToV1Specs(state), nil
}

// ReportUpload queues the notification for a finished upload.
func (h Handler) ReportUpload(ctx context.Context, req *v1specs.Upload) error {
	err := h.deps.Tracker.ReportUpload(ctx, tracker.Upload{
		TabID:       domain.TabID(req.TabId.Value),
		Court:       req.Court.Value,
		Description: req.Description,
	})

	return err //nolint: wrapcheck
}
