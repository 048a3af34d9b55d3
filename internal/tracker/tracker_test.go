package tracker_test

import (
	"context"
	"errors"
	"recap/internal/tracker"
	"recap/internal/worker"
	"recap/pkg/domain"
	"recap/pkg/serrors"
	mockstorage "recap/pkg/storage/mock"
	"recap/pkg/toolbar"
	"testing"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	docketQuery  = "https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?123456"
	appellateURL = "https://ecf.ca9.uscourts.gov/n/beam/servlet/TransportRoom"
	docURL       = "https://ecf.nysb.uscourts.gov/doc1/127014543210"
	loggedIn     = "PacerUser=jdoe123; PacerPref=receipt=Y"
	loggedOut    = "PacerPref=receipt=Y"
)

type testTracker struct {
	tracker  tracker.Tracker
	storage  *mockstorage.MockAllStorage
	registry *toolbar.Registry
}

func newTestTracker(t *testing.T) testTracker {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockAllStorage(ctrl)
	registry := toolbar.NewRegistry()
	tr, err := tracker.New(st, registry, tracker.Options{JobOptions: worker.JobOptions{MaxAttempts: 3}})
	require.NoError(t, err)

	return testTracker{tracker: tr, storage: st, registry: registry}
}

func (tt testTracker) expectOptions(opts domain.Options) {
	tt.storage.EXPECT().Options(gomock.Any()).Return(opts, nil).AnyTimes()
}

// expectJob captures the notification of the next enqueued job.
func (tt testTracker) expectJob(out *domain.Notification) {
	tt.storage.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			*out = args.(worker.NotifyJobArgs).Notification()

			return true, nil
		})
}

func TestTracker_HandleNavigation(t *testing.T) {
	ctx := context.Background()

	t.Run("not pacer", func(t *testing.T) {
		tt := newTestTracker(t)
		tt.expectOptions(domain.DefaultOptions())

		page, err := tt.tracker.HandleNavigation(ctx, tracker.Navigation{TabID: "1", URL: "https://example.com/"})
		require.NoError(t, err)
		require.Equal(t, domain.PageKindNotPacer, page.Kind)

		st, err := tt.tracker.Toolbar(ctx, "1")
		require.NoError(t, err)
		require.Equal(t, toolbar.NotPacer(), st)
	})

	t.Run("pacer logged out", func(t *testing.T) {
		tt := newTestTracker(t)
		tt.expectOptions(domain.DefaultOptions())

		page, err := tt.tracker.HandleNavigation(ctx, tracker.Navigation{TabID: "1", URL: docketQuery})
		require.NoError(t, err)
		require.Equal(t, domain.PageKindDocketQuery, page.Kind)
		require.Equal(t, "123456", page.CaseNumber)

		st, _ := tt.tracker.Toolbar(ctx, "1")
		require.Equal(t, toolbar.LoggedOut(), st)
	})

	t.Run("disabled", func(t *testing.T) {
		tt := newTestTracker(t)
		tt.expectOptions(domain.DefaultOptions().With(domain.OptionRecapDisabled, true))

		_, err := tt.tracker.HandleNavigation(ctx, tracker.Navigation{TabID: "1", URL: docketQuery})
		require.NoError(t, err)

		st, _ := tt.tracker.Toolbar(ctx, "1")
		require.Equal(t, toolbar.Disabled(), st)
	})

	t.Run("appellate", func(t *testing.T) {
		tt := newTestTracker(t)
		tt.expectOptions(domain.DefaultOptions())

		page, err := tt.tracker.HandleNavigation(ctx, tracker.Navigation{TabID: "1", URL: appellateURL})
		require.NoError(t, err)
		require.True(t, page.Appellate)

		st, _ := tt.tracker.Toolbar(ctx, "1")
		require.Equal(t, toolbar.Unsupported(), st)
	})

	t.Run("html decides the document page kind", func(t *testing.T) {
		tt := newTestTracker(t)
		tt.expectOptions(domain.DefaultOptions())

		page, err := tt.tracker.HandleNavigation(ctx, tracker.Navigation{
			TabID: "1",
			URL:   docURL,
			HTML:  `<form><input type="submit" value="Download All"></form>`,
		})
		require.NoError(t, err)
		require.Equal(t, domain.PageKindAttachmentMenu, page.Kind)
		require.Equal(t, "127014543210", page.DocumentID)

		page, err = tt.tracker.HandleNavigation(ctx, tracker.Navigation{TabID: "1", URL: docURL})
		require.NoError(t, err)
		require.Equal(t, domain.PageKindDocument, page.Kind)
	})

	t.Run("case number from referrer", func(t *testing.T) {
		tt := newTestTracker(t)
		tt.expectOptions(domain.DefaultOptions())

		page, err := tt.tracker.HandleNavigation(ctx, tracker.Navigation{
			TabID:    "1",
			URL:      "https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?987-L_1_0-1",
			Referrer: "https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?987",
		})
		require.NoError(t, err)
		require.Equal(t, domain.PageKindDocketDisplay, page.Kind)
		require.Equal(t, "987", page.CaseNumber)
	})

	t.Run("bad input", func(t *testing.T) {
		tt := newTestTracker(t)

		_, err := tt.tracker.HandleNavigation(ctx, tracker.Navigation{URL: docketQuery})
		require.ErrorIs(t, err, serrors.ErrBadRequest)

		_, err = tt.tracker.HandleNavigation(ctx, tracker.Navigation{TabID: "1", URL: "not a url"})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("options error", func(t *testing.T) {
		tt := newTestTracker(t)
		tt.storage.EXPECT().Options(gomock.Any()).Return(domain.Options{}, errors.New("db down"))

		_, err := tt.tracker.HandleNavigation(ctx, tracker.Navigation{TabID: "1", URL: docketQuery})
		require.ErrorContains(t, err, "db down")
	})
}

func TestTracker_HandleCookieChange(t *testing.T) {
	ctx := context.Background()

	t.Run("ignores other domains", func(t *testing.T) {
		tt := newTestTracker(t)

		state, err := tt.tracker.HandleCookieChange(ctx, tracker.CookieChange{Domain: "example.com", Cookies: loggedIn})
		require.NoError(t, err)
		require.Equal(t, domain.LoginStateUnknown, state)
	})

	t.Run("first logged out is silent", func(t *testing.T) {
		tt := newTestTracker(t)

		state, err := tt.tracker.HandleCookieChange(ctx, tracker.CookieChange{Domain: ".uscourts.gov", Cookies: loggedOut})
		require.NoError(t, err)
		require.Equal(t, domain.LoginStateLoggedOut, state)
	})

	t.Run("login and logout notify and refresh tabs", func(t *testing.T) {
		tt := newTestTracker(t)
		tt.expectOptions(domain.DefaultOptions())

		_, err := tt.tracker.HandleNavigation(ctx, tracker.Navigation{TabID: "pacer", URL: docketQuery})
		require.NoError(t, err)
		_, err = tt.tracker.HandleNavigation(ctx, tracker.Navigation{TabID: "other", URL: "https://example.com/"})
		require.NoError(t, err)

		var n domain.Notification
		tt.expectJob(&n)
		state, err := tt.tracker.HandleCookieChange(ctx, tracker.CookieChange{Domain: ".uscourts.gov", Cookies: loggedIn})
		require.NoError(t, err)
		require.Equal(t, domain.LoginStateLoggedIn, state)
		require.Equal(t, domain.NotificationKindStatus, n.Kind)
		require.Equal(t, "Logged in to PACER", n.Title)

		st, _ := tt.tracker.Toolbar(ctx, "pacer")
		require.Equal(t, toolbar.Active(), st)
		st, _ = tt.tracker.Toolbar(ctx, "other")
		require.Equal(t, toolbar.NotPacer(), st)

		// same state again: no job
		_, err = tt.tracker.HandleCookieChange(ctx, tracker.CookieChange{Domain: "ecf.cand.uscourts.gov", Cookies: loggedIn})
		require.NoError(t, err)

		tt.expectJob(&n)
		state, err = tt.tracker.HandleCookieChange(ctx, tracker.CookieChange{
			Domain:  ".uscourts.gov",
			Cookies: "PacerUser=unvalidated",
		})
		require.NoError(t, err)
		require.Equal(t, domain.LoginStateLoggedOut, state)
		require.Equal(t, "Logged out of PACER", n.Title)

		st, _ = tt.tracker.Toolbar(ctx, "pacer")
		require.Equal(t, toolbar.LoggedOut(), st)
	})

	t.Run("lookalike domains are ignored", func(t *testing.T) {
		tt := newTestTracker(t)

		for _, d := range []string{"evilTuscourts.gov", ".notuscourts.gov", "uscourts.gov.example.com"} {
			state, err := tt.tracker.HandleCookieChange(ctx, tracker.CookieChange{Domain: d, Cookies: loggedIn})
			require.NoError(t, err, d)
			require.Equal(t, domain.LoginStateUnknown, state, d)
		}
	})

	t.Run("bare domain is accepted", func(t *testing.T) {
		tt := newTestTracker(t)
		tt.expectOptions(domain.DefaultOptions())
		var n domain.Notification
		tt.expectJob(&n)

		state, err := tt.tracker.HandleCookieChange(ctx, tracker.CookieChange{Domain: "USCOURTS.GOV", Cookies: loggedIn})
		require.NoError(t, err)
		require.Equal(t, domain.LoginStateLoggedIn, state)
		require.Equal(t, "Logged in to PACER", n.Title)
	})

	t.Run("queue error is retried on the next change", func(t *testing.T) {
		tt := newTestTracker(t)
		tt.expectOptions(domain.DefaultOptions())

		_, err := tt.tracker.HandleNavigation(ctx, tracker.Navigation{TabID: "pacer", URL: docketQuery})
		require.NoError(t, err)
		before, _ := tt.tracker.Toolbar(ctx, "pacer")

		tt.storage.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("queue full"))
		state, err := tt.tracker.HandleCookieChange(ctx, tracker.CookieChange{Domain: ".uscourts.gov", Cookies: loggedIn})
		require.ErrorContains(t, err, "queue full")
		require.Equal(t, domain.LoginStateUnknown, state)

		st, _ := tt.tracker.Toolbar(ctx, "pacer")
		require.Equal(t, before, st)

		var n domain.Notification
		tt.expectJob(&n)
		state, err = tt.tracker.HandleCookieChange(ctx, tracker.CookieChange{Domain: ".uscourts.gov", Cookies: loggedIn})
		require.NoError(t, err)
		require.Equal(t, domain.LoginStateLoggedIn, state)
		require.Equal(t, "Logged in to PACER", n.Title)

		st, _ = tt.tracker.Toolbar(ctx, "pacer")
		require.Equal(t, toolbar.Active(), st)
	})
}

func TestTracker_ReportUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("with court", func(t *testing.T) {
		tt := newTestTracker(t)
		var n domain.Notification
		tt.expectJob(&n)

		require.NoError(t, tt.tracker.ReportUpload(ctx, tracker.Upload{TabID: "1", Court: "NYSB", Description: "Docket"}))
		require.Equal(t, domain.NotificationKindUpload, n.Kind)
		require.Equal(t, "Docket (Bankr.S.D.N.Y.)", n.Message)
	})

	t.Run("without court", func(t *testing.T) {
		tt := newTestTracker(t)
		var n domain.Notification
		tt.expectJob(&n)

		require.NoError(t, tt.tracker.ReportUpload(ctx, tracker.Upload{Description: "  PDF  "}))
		require.Equal(t, "PDF", n.Message)
	})

	t.Run("validation", func(t *testing.T) {
		tt := newTestTracker(t)

		require.ErrorIs(t, tt.tracker.ReportUpload(ctx, tracker.Upload{}), serrors.ErrBadRequest)
		require.ErrorIs(t, tt.tracker.ReportUpload(ctx, tracker.Upload{Court: "n y", Description: "x"}), serrors.ErrBadRequest)
	})
}

func TestTracker_ToolbarAndCloseTab(t *testing.T) {
	ctx := context.Background()
	tt := newTestTracker(t)
	tt.expectOptions(domain.DefaultOptions())

	_, err := tt.tracker.Toolbar(ctx, "missing")
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.ErrorIs(t, tt.tracker.CloseTab(ctx, "missing"), serrors.ErrNotFound)

	_, err = tt.tracker.HandleNavigation(ctx, tracker.Navigation{TabID: "1", URL: docketQuery})
	require.NoError(t, err)
	require.NoError(t, tt.tracker.CloseTab(ctx, "1"))

	_, err = tt.tracker.Toolbar(ctx, "1")
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.Zero(t, tt.registry.Len())
}
