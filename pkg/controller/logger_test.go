package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"recap/pkg/controller"
	"recap/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	require.Equal(t, "1.2.3.4", controller.GetClientIP(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "9.8.7.6")
	require.Equal(t, "9.8.7.6", controller.GetClientIP(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	require.Equal(t, "10.0.0.1", controller.GetClientIP(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "not-an-addr"
	require.Equal(t, "not-an-addr", controller.GetClientIP(req))
}

func TestWithLogger_RequestIDAndAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := logger.WithLogger(context.Background(), zap.New(core))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Echo-Request-Id", controller.RequestID(r.Context()))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/courts", nil).WithContext(base)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, "abc-123", res.Header.Get("X-Echo-Request-Id"))
	require.Equal(t, "abc-123", res.Header.Get("X-Request-Id"))

	entries := logs.FilterMessage("Access log").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, int64(http.StatusCreated), fields["status_code"])
	require.Equal(t, int64(2), fields["bytes"])
	require.Equal(t, "abc-123", fields[string(controller.RequestIDKey)])

	// without a header a fresh id is generated
	req = httptest.NewRequest(http.MethodGet, "/", nil).WithContext(base)
	rec = httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)
	require.NotEmpty(t, rec.Result().Header.Get("X-Echo-Request-Id"))
}
