package v1handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"recap/internal/api/handler/v1handler"
	"recap/internal/api/specs/v1specs"
	"recap/internal/tracker"
	mocktracker "recap/internal/tracker/mock"
	"recap/pkg/domain"
	"recap/pkg/logger"
	"recap/pkg/serrors"
	mockstorage "recap/pkg/storage/mock"
	"recap/pkg/toolbar"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type testHandler struct {
	handler *v1handler.Handler
	tracker *mocktracker.MockTracker
	storage *mockstorage.MockAllStorage
}

func newTestHandler(t *testing.T) testHandler {
	t.Helper()

	ctrl := gomock.NewController(t)
	tr := mocktracker.NewMockTracker(ctrl)
	st := mockstorage.NewMockAllStorage(ctrl)
	h := v1handler.New(v1handler.Deps{Tracker: tr, Storage: st}, v1handler.Options{DefaultLimit: 20})

	return testHandler{handler: h, tracker: tr, storage: st}
}

func TestNewError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})
	ctx := context.Background()

	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{name: "plain error", err: errors.New("boom"), status: 500, code: "INTERNAL", message: "internal error"},
		{name: "kind sentinel", err: serrors.ErrNotFound, status: 404, code: "NOT_FOUND", message: "resource not found"},
		{
			name:    "bad request message",
			err:     serrors.With(serrors.ErrBadRequest, "invalid payload: missing url"),
			status:  400,
			code:    "BAD_REQUEST",
			message: "invalid payload: missing url",
		},
		{
			name:    "wrapped unauthorized keeps message not cause",
			err:     serrors.Wrap(serrors.ErrUnauthorized, errors.New("bad token"), "unauthorized"),
			status:  401,
			code:    "UNAUTHORIZED",
			message: "unauthorized",
		},
		{
			name:    "internal hides message",
			err:     serrors.With(serrors.ErrInternal, "pq: relation missing"),
			status:  500,
			code:    "INTERNAL",
			message: "internal error",
		},
		{name: "unavailable", err: serrors.KindOnly(serrors.ErrUnavailable), status: 503, code: "UNAVAILABLE", message: "service unavailable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := h.NewError(ctx, tc.err)
			require.Equal(t, tc.status, res.StatusCode)
			require.Equal(t, tc.code, res.Response.Code)
			require.Equal(t, tc.message, res.Response.Message)
		})
	}
}

func TestErrorHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	v1handler.ErrorHandler(context.Background(), rec, httptest.NewRequest(http.MethodGet, "/v1/courts", nil),
		&ogenerrors.SecurityError{OperationContext: ogenerrors.OperationContext{Name: "ListCourts"}, Security: "BearerAuth", Err: errors.New("expired")})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"invalid bearer token"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	v1handler.ErrorHandler(context.Background(), rec, httptest.NewRequest(http.MethodGet, "/v1/courts", nil),
		&ogenerrors.DecodeParamsError{OperationContext: ogenerrors.OperationContext{Name: "ListCourts"}, Err: errors.New("bad limit")})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"code":"BAD_REQUEST"`)
	require.Contains(t, rec.Body.String(), "bad limit")
}

func TestClassify(t *testing.T) {
	h := newTestHandler(t).handler
	ctx := context.Background()

	page, err := h.Classify(ctx, &v1specs.PageRequest{
		URL:      "https://ecf.nysb.uscourts.gov/doc1/127114543210",
		Referrer: v1specs.NewOptString("https://ecf.nysb.uscourts.gov/cgi-bin/DktRpt.pl?555"),
		Document: v1specs.NewOptString(`<input value="View Document">`),
	})
	require.NoError(t, err)
	require.Equal(t, &v1specs.Page{
		URL:               "https://ecf.nysb.uscourts.gov/doc1/127114543210",
		Kind:              v1specs.PageKind(domain.PageKindSingleDocument),
		Pacer:             true,
		Court:             v1specs.NewOptString("nysb"),
		CanonicalCourt:    v1specs.NewOptString("nysb"),
		CourtAbbreviation: v1specs.NewOptString("Bankr.S.D.N.Y."),
		CaseNumber:        v1specs.NewOptString("555"),
		DocumentId:        v1specs.NewOptString("127014543210"),
		BaseName:          v1specs.NewOptString("127114543210"),
	}, page)

	page, err = h.Classify(ctx, &v1specs.PageRequest{URL: "https://example.com/a?1"})
	require.NoError(t, err)
	require.Equal(t, v1specs.PageKind(domain.PageKindNotPacer), page.Kind)
	require.False(t, page.Pacer)
	require.False(t, page.Court.IsSet())
	require.False(t, page.CaseNumber.IsSet())
	require.Equal(t, "a", page.BaseName.Value)
}

func TestCourts(t *testing.T) {
	h := newTestHandler(t).handler
	ctx := context.Background()

	court, err := h.GetCourt(ctx, v1specs.GetCourtParams{Code: "NYSB"})
	require.NoError(t, err)
	require.Equal(t, &v1specs.Court{
		Code:         "nysb",
		Abbreviation: v1specs.NewOptString("Bankr.S.D.N.Y."),
		Canonical:    "nysb",
	}, court)

	court, err = h.GetCourt(ctx, v1specs.GetCourtParams{Code: "nysb-mega"})
	require.NoError(t, err)
	require.False(t, court.Abbreviation.IsSet())
	require.Equal(t, "nysb", court.Canonical)

	_, err = h.GetCourt(ctx, v1specs.GetCourtParams{Code: "zzz"})
	require.ErrorIs(t, err, serrors.ErrNotFound)

	_, err = h.GetCourt(ctx, v1specs.GetCourtParams{Code: "a_b"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	all, err := h.ListCourts(ctx, v1specs.ListCourtsParams{})
	require.NoError(t, err)
	require.Contains(t, codes(all), "cand")

	appellate, err := h.ListCourts(ctx, v1specs.ListCourtsParams{Appellate: v1specs.NewOptBool(true)})
	require.NoError(t, err)
	require.Contains(t, codes(appellate), "ca9")
	require.NotContains(t, codes(appellate), "cand")
	for _, c := range appellate.Items {
		require.True(t, c.Appellate, c.Code)
	}
}

func codes(list *v1specs.CourtList) []string {
	out := make([]string, 0, len(list.Items))
	for _, c := range list.Items {
		out = append(out, c.Code)
	}

	return out
}

func TestTabs(t *testing.T) {
	th := newTestHandler(t)
	ctx := context.Background()

	page := domain.Page{URL: "https://ecf.cand.uscourts.gov/cgi-bin/DktRpt.pl?1", Kind: domain.PageKindDocketQuery, Court: "cand"}
	th.tracker.EXPECT().HandleNavigation(gomock.Any(), tracker.Navigation{TabID: "7", URL: page.URL, HTML: "<p>"}).Return(&page, nil)

	res, err := th.handler.Navigate(ctx, &v1specs.PageRequest{URL: page.URL, Document: v1specs.NewOptString("<p>")}, v1specs.NavigateParams{ID: "7"})
	require.NoError(t, err)
	require.Equal(t, v1specs.PageKind(domain.PageKindDocketQuery), res.Kind)
	require.Equal(t, "cand", res.Court.Value)

	th.tracker.EXPECT().Toolbar(gomock.Any(), domain.TabID("7")).Return(toolbar.Active(), nil)
	st, err := th.handler.GetToolbar(ctx, v1specs.GetToolbarParams{ID: "7"})
	require.NoError(t, err)
	require.Equal(t, "Logged in to PACER. RECAP is active.", st.Title)
	require.Equal(t, v1specs.IconSet{"19": "assets/images/icon-19.png", "38": "assets/images/icon-38.png"}, st.Icons)

	th.tracker.EXPECT().Toolbar(gomock.Any(), domain.TabID("8")).Return(domain.ToolbarState{}, serrors.With(serrors.ErrNotFound, "tab not found"))
	_, err = th.handler.GetToolbar(ctx, v1specs.GetToolbarParams{ID: "8"})
	require.ErrorIs(t, err, serrors.ErrNotFound)

	th.tracker.EXPECT().CloseTab(gomock.Any(), domain.TabID("7")).Return(nil)
	require.NoError(t, th.handler.CloseTab(ctx, v1specs.CloseTabParams{ID: "7"}))
}

func TestCookiesAndUploads(t *testing.T) {
	th := newTestHandler(t)
	ctx := context.Background()

	change := tracker.CookieChange{Domain: ".uscourts.gov", Cookies: "PacerUser=abc"}
	th.tracker.EXPECT().HandleCookieChange(gomock.Any(), change).Return(domain.LoginStateLoggedIn, nil)
	status, err := th.handler.ChangeCookies(ctx, &v1specs.CookieChange{Domain: ".uscourts.gov", Cookies: v1specs.NewOptString("PacerUser=abc")})
	require.NoError(t, err)
	require.Equal(t, &v1specs.LoginStatus{LoggedIn: true, State: v1specs.NewOptLoginState(v1specs.LoginState("logged_in"))}, status)

	th.tracker.EXPECT().HandleCookieChange(gomock.Any(), tracker.CookieChange{Domain: "example.com"}).Return(domain.LoginStateUnknown, nil)
	status, err = th.handler.ChangeCookies(ctx, &v1specs.CookieChange{Domain: "example.com"})
	require.NoError(t, err)
	require.False(t, status.LoggedIn)
	require.False(t, status.State.IsSet())

	upload := tracker.Upload{TabID: "3", Court: "cand", Description: "Docket"}
	th.tracker.EXPECT().ReportUpload(gomock.Any(), upload).Return(nil)
	require.NoError(t, th.handler.ReportUpload(ctx, &v1specs.Upload{
		TabId:       v1specs.NewOptString("3"),
		Court:       v1specs.NewOptString("cand"),
		Description: "Docket",
	}))

	th.tracker.EXPECT().ReportUpload(gomock.Any(), tracker.Upload{}).Return(serrors.With(serrors.ErrBadRequest, "description is required"))
	err = th.handler.ReportUpload(ctx, &v1specs.Upload{})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestNotifications(t *testing.T) {
	th := newTestHandler(t)
	ctx := context.Background()

	id := uuid.MustParse("6f1c2d4e-8a55-4c1b-9a55-0b5f4c2d1e3a")
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	th.storage.EXPECT().Notifications(gomock.Any(), time.Time{}, uint(20)).Return([]domain.Notification{{
		ID:        domain.NotificationID(id),
		Kind:      domain.NotificationKindStatus,
		Title:     "Logged in to PACER",
		Message:   "hi",
		CreatedAt: created,
	}}, nil)

	list, err := th.handler.ListNotifications(ctx, v1specs.ListNotificationsParams{})
	require.NoError(t, err)
	require.Equal(t, []v1specs.Notification{{
		ID:        id,
		Kind:      v1specs.NotificationKind("status"),
		Title:     "Logged in to PACER",
		Message:   "hi",
		CreatedAt: created,
	}}, list.Items)

	th.storage.EXPECT().Notifications(gomock.Any(), created, uint(5)).Return(nil, nil)
	list, err = th.handler.ListNotifications(ctx, v1specs.ListNotificationsParams{
		Limit: v1specs.NewOptInt(5),
		Since: v1specs.NewOptDateTime(created),
	})
	require.NoError(t, err)
	require.NotNil(t, list.Items)
	require.Empty(t, list.Items)

	th.storage.EXPECT().Notifications(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	_, err = th.handler.ListNotifications(ctx, v1specs.ListNotificationsParams{})
	require.Equal(t, http.StatusInternalServerError, th.handler.NewError(ctx, err).StatusCode)

	th.storage.EXPECT().DismissNotification(gomock.Any(), domain.NotificationID(id)).Return(true, nil)
	require.NoError(t, th.handler.DismissNotification(ctx, v1specs.DismissNotificationParams{ID: id}))

	th.storage.EXPECT().DismissNotification(gomock.Any(), domain.NotificationID(id)).Return(false, nil)
	err = th.handler.DismissNotification(ctx, v1specs.DismissNotificationParams{ID: id})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestOptions(t *testing.T) {
	th := newTestHandler(t)
	ctx := context.Background()

	th.storage.EXPECT().Options(gomock.Any()).Return(domain.DefaultOptions(), nil)
	opts, err := th.handler.GetOptions(ctx)
	require.NoError(t, err)
	require.Equal(t, &v1specs.OptionSet{UploadNotifications: true, StatusNotifications: true}, opts)

	gomock.InOrder(
		th.storage.EXPECT().SetOption(gomock.Any(), domain.OptionRecapDisabled, true).Return(nil),
		th.storage.EXPECT().Options(gomock.Any()).Return(domain.DefaultOptions().With(domain.OptionRecapDisabled, true), nil),
	)
	opts, err = th.handler.SetOption(ctx, &v1specs.OptionValue{Value: true}, v1specs.SetOptionParams{Key: "recap_disabled"})
	require.NoError(t, err)
	require.True(t, opts.RecapDisabled)

	_, err = th.handler.SetOption(ctx, &v1specs.OptionValue{Value: true}, v1specs.SetOptionParams{Key: "dark_mode"})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
