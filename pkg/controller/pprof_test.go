package controller_test

import (
	"net/http"
	"net/http/httptest"
	"recap/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPprofMux(t *testing.T) {
	mux := controller.PprofMux("/debug/pprof")

	for _, path := range []string{"/debug/pprof/", "/debug/pprof/cmdline", "/debug/pprof/goroutine?debug=1"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.NotEmpty(t, rec.Header().Get("Content-Type"), path)
	}
}
