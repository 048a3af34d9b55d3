package v1handler

import (
	"context"
	"recap/internal/api/specs/v1specs"
	"recap/internal/tracker"
	"recap/pkg/domain"
	"recap/pkg/pacer"
	"recap/pkg/pacer/htmldoc"
	"recap/pkg/serrors"
	"strings"
)

// Classify classifies a URL without touching any tab state.
func (h Handler) Classify(_ context.Context, req *v1specs.PageRequest) (*v1specs.Page, error) {
	var doc pacer.InputSource
	if html, ok := req.Document.Get(); ok && html != "" {
		parsed, err := htmldoc.ParseString(html)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid page HTML")
		}
		doc = parsed
	}

	var referrers []string
	if ref, ok := req.Referrer.Get(); ok && ref != "" {
		referrers = append(referrers, ref)
	}

	page := pacer.Classify(req.URL, doc, referrers...)

	return DomainPageToV1Specs(&page), nil
}

// ListCourts lists supported courts, optionally only courts of appeals.
func (h Handler) ListCourts(_ context.Context, params v1specs.ListCourtsParams) (*v1specs.CourtList, error) {
	appellateOnly := params.Appellate.Or(false)

	items := make([]v1specs.Court, 0)
	for _, c := range pacer.Courts() {
		if appellateOnly && !pacer.IsAppellateCourt(c) {
			continue
		}
		items = append(items, CourtToV1Specs(c))
	}

	return &v1specs.CourtList{Items: items}, nil
}

// GetCourt describes one court. Alias codes such as nysb-mega resolve too.
func (h Handler) GetCourt(_ context.Context, params v1specs.GetCourtParams) (*v1specs.Court, error) {
	code := strings.ToLower(params.Code)
	if !pacer.IsValidCourtCode(code) {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid court code")
	}

	_, known := pacer.CourtAbbreviation(code)
	known = known || pacer.IsAppellateCourt(code) || pacer.CanonicalCourt(code) != code
	if !known {
		return nil, serrors.With(serrors.ErrNotFound, "court not found")
	}

	court := CourtToV1Specs(code)

	return &court, nil
}

// Navigate reports that a tab loaded a page and returns its classification.
func (h Handler) Navigate(ctx context.Context, req *v1specs.PageRequest, params v1specs.NavigateParams) (*v1specs.Page, error) {
	page, err := h.deps.Tracker.HandleNavigation(ctx, tracker.Navigation{
		TabID:    domain.TabID(params.ID),
		URL:      req.URL,
		Referrer: req.Referrer.Value,
		HTML:     req.Document.Value,
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainPageToV1Specs(page), nil
}

// GetToolbar returns the toolbar state of a tab.
func (h Handler) GetToolbar(ctx context.Context, params v1specs.GetToolbarParams) (*v1specs.Toolbar, error) {
	st, err := h.deps.Tracker.Toolbar(ctx, domain.TabID(params.ID))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainToolbarToV1Specs(st), nil
}

// CloseTab forgets a closed tab.
func (h Handler) CloseTab(ctx context.Context, params v1specs.CloseTabParams) error {
	return h.deps.Tracker.CloseTab(ctx, domain.TabID(params.ID)) //nolint: wrapcheck
}
