package api_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"enricher/internal/api"
	"enricher/internal/api/handler/v1handler"
	mockenricher "enricher/internal/enricher/mock"
	"enricher/pkg/logger"
	"enricher/pkg/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func TestNewHandler_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := mockenricher.NewMockEnricher(ctrl)
	e.EXPECT().Domains(gomock.Any(), uint(v1handler.DefaultLimit), uint(0)).Return(storage.DomainPage{}, nil)

	mux, err := api.NewHandler(api.Deps{Deps: v1handler.Deps{Enricher: e, Environment: "test"}}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{},
		MetricsPath:       "/metrics",
	})
	require.NoError(t, err)

	for path, contentType := range map[string]string{
		"/healthz":       "application/json",
		"/specs/v1.yaml": "application/yaml",
		"/v1/domains":    "application/json",
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.Equal(t, contentType, rec.Header().Get("Content-Type"), path)
	}

	for _, path := range []string{"/debug/pprof/", "/debug/pprof/cmdline"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "enricher_api_requests")
}

func TestNewServer_InvalidPublicKey(t *testing.T) {
	_, err := api.NewServer(api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: "garbage"},
	})
	require.Error(t, err)
}
