package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/deppfellow/pokemon-api/internal/config"
	"github.com/deppfellow/pokemon-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisServer(t *testing.T, checks ...string) (*server.Server, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	obs := config.DefaultObservabilityConfig()
	obs.HealthChecks.Checks = checks

	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Observability: obs,
		},
		Logger: &logger,
		Redis:  client,
	}, mr
}

func checkHealth(t *testing.T, s *server.Server) (int, map[string]interface{}) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)

	require.NoError(t, NewHealthHandler(s).CheckHealth(c))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestCheckHealthRedis(t *testing.T) {
	s, _ := newRedisServer(t, "redis")

	status, body := checkHealth(t, s)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["environment"])

	checks := body["checks"].(map[string]interface{})
	assert.Equal(t, "healthy", checks["redis"].(map[string]interface{})["status"])
}

func TestCheckHealthRedisDown(t *testing.T) {
	s, mr := newRedisServer(t, "redis")
	mr.Close()

	status, body := checkHealth(t, s)

	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "unhealthy", body["status"])

	redisCheck := body["checks"].(map[string]interface{})["redis"].(map[string]interface{})
	assert.Equal(t, "unhealthy", redisCheck["status"])
	assert.NotEmpty(t, redisCheck["error"])
}

func TestCheckHealthSkipsUnconfigured(t *testing.T) {
	s, mr := newRedisServer(t)
	mr.Close()

	status, body := checkHealth(t, s)

	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["checks"])
}

func TestServeOpenAPIUI(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "openapi.html"), []byte("<html>docs</html>"), 0o600))

	h := &OpenAPIHandler{uiPath: filepath.Join(dir, "openapi.html")}

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/docs", nil), rec)

	require.NoError(t, h.ServeOpenAPIUI(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "docs")
}

func TestServeOpenAPIUIMissingFile(t *testing.T) {
	h := &OpenAPIHandler{uiPath: filepath.Join(t.TempDir(), "missing.html")}

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/docs", nil), httptest.NewRecorder())

	assert.Error(t, h.ServeOpenAPIUI(c))
}
