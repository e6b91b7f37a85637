package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err error
}

func (s stubChecker) CheckHealth(ctx context.Context) error {
	return s.err
}

func doHealthRequest(t *testing.T, e *echo.Echo, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPingEndpoint(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "rides-service", nil)

	rec := doHealthRequest(t, e, "/ping")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rides-service")
	assert.Contains(t, rec.Body.String(), "go_version")
}

func TestLivenessEndpoints(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "rides-service", nil)

	for _, path := range []string{"/health", "/healthz"} {
		rec := doHealthRequest(t, e, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "OK", rec.Body.String(), path)
	}
}

func TestReadyEndpoint_AllHealthy(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "rides-service", map[string]Checker{
		"postgres": stubChecker{},
		"redis":    stubChecker{},
	})

	rec := doHealthRequest(t, e, "/ready")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ready"`)
}

func TestReadyEndpoint_UnhealthyDependency(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "rides-service", map[string]Checker{
		"postgres": stubChecker{},
		"redis":    stubChecker{err: errors.New("connection refused")},
	})

	rec := doHealthRequest(t, e, "/ready")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, rec.Body.String(), `"unhealthy"`)
}
