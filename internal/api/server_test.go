package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"recap/internal/api"
	"recap/internal/api/handler/v1handler"
	mocktracker "recap/internal/tracker/mock"
	"recap/pkg/domain"
	"recap/pkg/logger"
	mockstorage "recap/pkg/storage/mock"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func testOptions() api.Options {
	return api.Options{
		MetricsPath:    "/metrics",
		DocsPath:       "/docs",
		RequestTimeout: 5 * time.Second,
	}
}

func newHandler(t *testing.T, deps api.Deps, opts api.Options) http.Handler {
	t.Helper()
	h, err := api.NewHandler(deps, opts)
	require.NoError(t, err)

	return h
}

func serve(h http.Handler, method, path, token string) *httptest.ResponseRecorder {
	return serveBody(h, method, path, token, "")
}

func serveBody(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestNewHandler_Routes(t *testing.T) {
	h := newHandler(t, api.Deps{}, testOptions())

	rec := serve(h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodGet, "/specs/v1.yaml", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "/classify")

	rec = serve(h, http.MethodGet, "/docs/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// courts need no backing services
	rec = serve(h, http.MethodGet, "/v1/courts/cand", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = serve(h, http.MethodGet, "/debug/pprof/", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewHandler_Pprof(t *testing.T) {
	opts := testOptions()
	opts.Pprof = true
	h := newHandler(t, api.Deps{}, opts)

	rec := serve(h, http.MethodGet, "/debug/pprof/", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func publicKeyPEM(t *testing.T, key *rsa.PrivateKey) string {
	t.Helper()
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func TestNewHandler_BearerAuth(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	opts := testOptions()
	opts.SecHandlerOptions = &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t, key)}
	h := newHandler(t, api.Deps{}, opts)

	rec := serve(h, http.MethodGet, "/v1/courts/cand", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"missing bearer token"}`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/v1/courts/cand", "garbage")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"invalid bearer token"}`, rec.Body.String())

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   "extension",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(key)
	require.NoError(t, err)

	rec = serve(h, http.MethodGet, "/v1/courts/cand", token)
	require.Equal(t, http.StatusOK, rec.Code)

	// docs and metrics stay public
	rec = serve(h, http.MethodGet, "/specs/v1.yaml", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewHandler_InvalidPublicKey(t *testing.T) {
	opts := testOptions()
	opts.SecHandlerOptions = &v1handler.SecHandlerOptions{PublicKey: "not a pem"}
	_, err := api.NewHandler(api.Deps{}, opts)
	require.Error(t, err)
}

func TestNewHandler_V1(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := mocktracker.NewMockTracker(ctrl)
	st := mockstorage.NewMockAllStorage(ctrl)
	h := newHandler(t, api.Deps{Deps: v1handler.Deps{Tracker: tr, Storage: st}}, testOptions())

	rec := serveBody(h, http.MethodPost, "/v1/classify", "", `{"url":"https://ecf.nysb.uscourts.gov/cgi-bin/DktRpt.pl?123456"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"url": "https://ecf.nysb.uscourts.gov/cgi-bin/DktRpt.pl?123456",
		"kind": "docket_query",
		"pacer": true,
		"court": "nysb",
		"canonicalCourt": "nysb",
		"courtAbbreviation": "Bankr.S.D.N.Y.",
		"appellate": false,
		"caseNumber": "123456",
		"baseName": "DktRpt.pl"
	}`, rec.Body.String())

	rec = serveBody(h, http.MethodPost, "/v1/classify", "", `not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `"code":"BAD_REQUEST"`)

	rec = serve(h, http.MethodGet, "/v1/courts/zzz", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"code":"NOT_FOUND","message":"court not found"}`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/v1/notifications?limit=0", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	st.EXPECT().Options(gomock.Any()).Return(domain.DefaultOptions(), nil)
	rec = serve(h, http.MethodGet, "/v1/options", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"recap_disabled":false,"upload_notifications":true,"status_notifications":true}`, rec.Body.String())

	rec = serveBody(h, http.MethodPut, "/v1/options/dark_mode", "", `{"value":true}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	tr.EXPECT().CloseTab(gomock.Any(), domain.TabID("7")).Return(nil)
	rec = serve(h, http.MethodDelete, "/v1/tabs/7", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestNewServer(t *testing.T) {
	opts := testOptions()
	opts.Addr = ":0"
	opts.HandlerOptions = v1handler.Options{DefaultLimit: 10}
	srv, err := api.NewServer(api.Deps{}, opts)
	require.NoError(t, err)
	require.Equal(t, ":0", srv.Addr)
	require.NotNil(t, srv.Handler)
}
