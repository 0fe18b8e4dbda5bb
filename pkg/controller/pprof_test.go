package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"enricher/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestPprofMux(t *testing.T) {
	mux := controller.PprofMux("/debug/pprof")

	for path, status := range map[string]int{
		"/debug/pprof/":        http.StatusOK,
		"/debug/pprof/cmdline": http.StatusOK,
		"/debug/pprof/heap":    http.StatusOK,
		"/debug/pprof/missing": http.StatusNotFound,
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, status, rec.Code, path)
		if status == http.StatusOK {
			require.NotEmpty(t, rec.Header().Get("Content-Type"), path)
		}
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/debug/pprof/cmdline", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
