// Package tracker follows browser tabs through PACER. It classifies every
// navigation, keeps the toolbar state of each tab current, and queues login
// and upload notifications.
package tracker

import (
	"context"
	"fmt"
	"recap/internal/worker"
	"recap/pkg/domain"
	"recap/pkg/logger"
	"recap/pkg/metrics"
	"recap/pkg/pacer"
	"recap/pkg/pacer/htmldoc"
	"recap/pkg/serrors"
	"recap/pkg/storage"
	"recap/pkg/toolbar"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "recap/internal/tracker"

// pacerCookieDomain is the registrable domain whose cookies carry the PACER session.
const pacerCookieDomain = "uscourts.gov"

// Options configure the tracker.
type Options struct {
	// JobOptions are applied to every notification job the tracker enqueues.
	JobOptions worker.JobOptions
}

type instruments struct {
	navigations metric.Int64Counter
	classify    metric.Float64Histogram
	logins      metric.Int64Counter
}

func newInstruments() (instruments, error) {
	meter := otel.Meter(instrumentationName)

	navigations, err := meter.Int64Counter("recap_navigations",
		metric.WithDescription("Navigations classified, by page kind."))
	if err != nil {
		return instruments{}, fmt.Errorf("could not create navigations counter: %w", err)
	}

	classify, err := meter.Float64Histogram("recap_classify_duration_seconds",
		metric.WithDescription("Time spent classifying a navigation."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return instruments{}, fmt.Errorf("could not create classify histogram: %w", err)
	}

	logins, err := meter.Int64Counter("recap_login_transitions",
		metric.WithDescription("PACER login state changes, by new state."))
	if err != nil {
		return instruments{}, fmt.Errorf("could not create login counter: %w", err)
	}

	return instruments{navigations: navigations, classify: classify, logins: logins}, nil
}

type tracker struct {
	options  Options
	storage  storage.AllStorage
	registry *toolbar.Registry
	tracer   trace.Tracer
	metrics  instruments

	mu    sync.Mutex
	login domain.LoginState
}

// New creates a Tracker that reads options from and enqueues jobs into s and
// publishes toolbar states to registry.
func New(s storage.AllStorage, registry *toolbar.Registry, options Options) (Tracker, error) {
	inst, err := newInstruments()
	if err != nil {
		return nil, err
	}

	return &tracker{
		options:  options,
		storage:  s,
		registry: registry,
		tracer:   otel.Tracer(instrumentationName),
		metrics:  inst,
	}, nil
}

func (t *tracker) loginState() domain.LoginState {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.login
}

// setLoginState stores next if the state is still prev.
func (t *tracker) setLoginState(prev, next domain.LoginState) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.login != prev {
		return false
	}
	t.login = next

	return true
}

// HandleNavigation classifies the page a tab moved to and updates its toolbar.
func (t *tracker) HandleNavigation(ctx context.Context, nav Navigation) (*domain.Page, error) {
	ctx, span := t.tracer.Start(ctx, "tracker.HandleNavigation",
		trace.WithAttributes(attribute.String("tab", string(nav.TabID))))
	defer span.End()

	if nav.TabID == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "tab id is required")
	}
	rawURL, err := NormalizeURL(nav.URL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid URL")
	}

	opts, err := t.storage.Options(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "options unavailable")

		return nil, fmt.Errorf("could not load options: %w", err)
	}

	var doc pacer.InputSource
	if nav.HTML != "" {
		parsed, err := htmldoc.ParseString(nav.HTML)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid page HTML")
		}
		doc = parsed
	}

	var referrers []string
	if nav.Referrer != "" {
		referrers = append(referrers, nav.Referrer)
	}

	start := time.Now()
	page := pacer.Classify(rawURL, doc, referrers...)
	t.metrics.classify.Record(ctx, time.Since(start).Seconds())
	t.metrics.navigations.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(page.Kind))))

	state := toolbar.Select(opts, page, t.loginState())
	t.registry.Set(nav.TabID, page, state)

	span.SetAttributes(attribute.String("kind", string(page.Kind)), attribute.String("court", page.Court))
	logger.Debug(ctx, "navigation classified",
		zap.String("tab", string(nav.TabID)),
		zap.String("kind", string(page.Kind)),
		zap.String("court", page.Court),
		zap.String("toolbar", state.Title))

	return &page, nil
}

// HandleCookieChange recomputes the login state from PACER cookies. Changes on
// other domains are ignored. A transition to logged in, or from logged in to
// logged out, queues a status notification and refreshes every PACER tab.
func (t *tracker) HandleCookieChange(ctx context.Context, change CookieChange) (domain.LoginState, error) {
	ctx, span := t.tracer.Start(ctx, "tracker.HandleCookieChange")
	defer span.End()

	cookieDomain := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(change.Domain)), ".")
	if cookieDomain != pacerCookieDomain && !strings.HasSuffix(cookieDomain, "."+pacerCookieDomain) {
		return t.loginState(), nil
	}

	next := domain.LoginStateLoggedOut
	if pacer.HasPacerCookie(change.Cookies) {
		next = domain.LoginStateLoggedIn
	}

	prev := t.loginState()
	if prev == next {
		return next, nil
	}
	if prev == domain.LoginStateUnknown && next == domain.LoginStateLoggedOut {
		t.setLoginState(prev, next)

		return next, nil
	}

	n := domain.Notification{
		Kind:    domain.NotificationKindStatus,
		Title:   "Logged out of PACER",
		Message: "You are no longer logged in to PACER. RECAP is inactive.",
	}
	if next.LoggedIn() {
		n.Title = "Logged in to PACER"
		n.Message = "Pages you view in PACER will be added to the RECAP archive."
	}

	// The state is committed only after the notification is queued.
	opts, err := t.storage.Options(ctx)
	if err != nil {
		return prev, fmt.Errorf("could not load options: %w", err)
	}

	if _, err := t.storage.AddJob(ctx, worker.NewNotifyJob(n, t.options.JobOptions), nil); err != nil {
		return prev, fmt.Errorf("could not queue status notification: %w", err)
	}

	if !t.setLoginState(prev, next) {
		return t.loginState(), nil
	}

	t.metrics.logins.Add(ctx, 1, metric.WithAttributes(attribute.String("state", string(next))))
	span.SetAttributes(attribute.String("login", string(next)))

	refreshed := t.registry.Refresh(opts, next)
	logger.Info(ctx, "PACER login state changed",
		zap.String("from", string(prev)),
		zap.String("to", string(next)),
		zap.Int("tabsRefreshed", refreshed))

	return next, nil
}

// ReportUpload queues an upload notification describing what was sent.
func (t *tracker) ReportUpload(ctx context.Context, upload Upload) error {
	ctx, span := t.tracer.Start(ctx, "tracker.ReportUpload")
	defer span.End()

	description := strings.TrimSpace(upload.Description)
	if description == "" {
		return serrors.With(serrors.ErrBadRequest, "description is required")
	}

	message := description
	if upload.Court != "" {
		court := strings.ToLower(upload.Court)
		if !pacer.IsValidCourtCode(court) {
			return serrors.With(serrors.ErrBadRequest, "invalid court code %q", upload.Court)
		}
		if abbr, ok := pacer.CourtAbbreviation(pacer.CanonicalCourt(court)); ok {
			message = fmt.Sprintf("%s (%s)", description, abbr)
		}
	}

	n := domain.Notification{
		Kind:    domain.NotificationKindUpload,
		Title:   "Page uploaded to RECAP",
		Message: message,
	}
	if _, err := t.storage.AddJob(ctx, worker.NewNotifyJob(n, t.options.JobOptions), nil); err != nil {
		return fmt.Errorf("could not queue upload notification: %w", err)
	}

	logger.Info(ctx, "upload reported", zap.String("tab", string(upload.TabID)), zap.String("court", upload.Court))

	return nil
}

// Toolbar returns what the toolbar of tabID shows.
func (t *tracker) Toolbar(_ context.Context, tabID domain.TabID) (domain.ToolbarState, error) {
	st, ok := t.registry.Get(tabID)
	if !ok {
		return domain.ToolbarState{}, serrors.With(serrors.ErrNotFound, "tab not found")
	}

	return st, nil
}

// CloseTab forgets tabID.
func (t *tracker) CloseTab(ctx context.Context, tabID domain.TabID) error {
	if !t.registry.Remove(tabID) {
		return serrors.With(serrors.ErrNotFound, "tab not found")
	}
	logger.Debug(ctx, "tab closed", zap.String("tab", string(tabID)))

	return nil
}
