package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-campaign-api/internal/config"
	"github.com/vfg2006/creator-campaign-api/pkg/middleware"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{
		Server: config.Server{Host: "127.0.0.1", Port: "3002"},
		Cors:   config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	srv, err := New(cfg, nil, nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:3002", srv.httpServer.Addr)

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationHeader))

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNew_PreflightByOrigin(t *testing.T) {
	cfg := &config.Config{
		Server: config.Server{Host: "127.0.0.1", Port: "3002"},
		Cors:   config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	srv, err := New(cfg, nil, nil, nil, nil)
	require.NoError(t, err)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/v1/campaigns", nil)
		req.Header.Set("Origin", origin)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		return rec
	}

	allowed := preflight("http://localhost:3000")
	assert.Equal(t, http.StatusNoContent, allowed.Code)
	assert.Equal(t, "http://localhost:3000", allowed.Header().Get("Access-Control-Allow-Origin"))

	rejected := preflight("http://evil.test")
	assert.Equal(t, http.StatusMethodNotAllowed, rejected.Code)
	assert.Empty(t, rejected.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rejected.Body.String(), "RES_002")
}
