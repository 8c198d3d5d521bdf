package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"idverify/internal/api"
	"idverify/internal/api/handler/v1handler"
	"idverify/pkg/logger"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func publicKeyPEM(t *testing.T) string {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func TestNewServer_MissingPublicKey(t *testing.T) {
	_, err := api.NewServer(api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{},
		MetricsPath:       "/metrics",
	})
	require.Error(t, err)
}

func TestNewServer_Routes(t *testing.T) {
	srv, err := api.NewServer(api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		Addr:              ":0",
		RequestTimeout:    time.Minute,
		MetricsPath:       "/metrics",
		CORSOrigin:        "*",
	})
	require.NoError(t, err)
	require.Equal(t, ":0", srv.Addr)

	serve := func(method, path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

		return rec
	}

	t.Run("specs", func(t *testing.T) {
		rec := serve(http.MethodGet, "/specs/v1.yaml")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
		require.Contains(t, rec.Body.String(), "openapi: 3.0.3")
	})

	t.Run("metrics", func(t *testing.T) {
		rec := serve(http.MethodGet, "/metrics")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "go_goroutines")
	})

	t.Run("docs", func(t *testing.T) {
		rec := serve(http.MethodGet, "/v1/docs/")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("api requires a token", func(t *testing.T) {
		rec := serve(http.MethodGet, "/v1/duplicates/cache")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})

	t.Run("preflight", func(t *testing.T) {
		rec := serve(http.MethodOptions, "/v1/lists/x/entries")
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("pprof", func(t *testing.T) {
		rec := serve(http.MethodGet, "/debug/pprof/cmdline")
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
