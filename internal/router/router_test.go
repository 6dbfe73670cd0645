package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"coboard-api/internal/client"
	"coboard-api/internal/database"
	"coboard-api/internal/metrics"
)

// setupTestRouter creates a test router config with an in-memory database
func setupTestRouter(t *testing.T, basePath string, m *metrics.Metrics) Config {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	return Config{
		DB:             db,
		Logger:         zap.NewNop(),
		Metrics:        m,
		Storage:        client.NewMockObjectStorage(),
		Mailer:         &client.MockMailer{},
		BasePath:       basePath,
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

func newTestMetrics(t *testing.T) *metrics.Metrics {
	t.Helper()
	return metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

func TestHealthEndpoint(t *testing.T) {
	router := Setup(setupTestRouter(t, "", newTestMetrics(t)))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestMetricsEndpoint(t *testing.T) {
	router := Setup(setupTestRouter(t, "", newTestMetrics(t)))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")

	body := w.Body.String()
	assert.Contains(t, body, "# HELP", "Response should contain Prometheus HELP comments")
	assert.Contains(t, body, "# TYPE", "Response should contain Prometheus TYPE comments")
}

func TestMetricsRegistry_ContainsExpectedMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	_ = metrics.NewWithRegistry(registry, zap.NewNop())

	metricFamilies, err := registry.Gather()
	require.NoError(t, err)

	metricNames := make(map[string]bool)
	for _, mf := range metricFamilies {
		metricNames[mf.GetName()] = true
	}

	// Gauges and counters are registered at initialization, histograms only
	// appear once observed
	expected := []string{
		"coboard_api_db_connections_open",
		"coboard_api_db_connections_in_use",
		"coboard_api_db_connections_idle",
		"coboard_api_db_connections_max",
		"coboard_api_forums_total",
		"coboard_api_posts_total",
		"coboard_api_forum_created_total",
		"coboard_api_post_created_total",
		"coboard_api_mail_sent_total",
	}
	for _, name := range expected {
		assert.True(t, metricNames[name], "Registry should contain metric: %s", name)
	}
}

func TestRoutes_Registered(t *testing.T) {
	router := Setup(setupTestRouter(t, "", newTestMetrics(t)))

	routes := make(map[string]bool)
	for _, route := range router.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /",
		"POST /signup",
		"GET /user/:id",
		"PUT /user/:id",
		"DELETE /user/:sid/:forum_id",
		"POST /file",
		"GET /file/:file_id",
		"POST /sendmail",
		"GET /coboard/:board",
		"POST /coboard/:board",
		"GET /coboard/:board/:forum_slug",
		"POST /coboard/:board/:forum_slug",
		"DELETE /coboard/:board/:forum_slug",
		"PUT /coboard/:board/:forum_slug/setting",
		"POST /coboard/:board/:forum_slug/setting",
		"DELETE /coboard/:board/:forum_slug/setting",
		"POST /coboard/:board/:forum_slug/topic",
		"POST /coboard/:board/:forum_slug/post",
		"POST /coboard/:board/:forum_slug/comment",
		"PUT /coboard/:board/:forum_slug/like",
	}
	for _, route := range expected {
		assert.True(t, routes[route], "Route should be registered: %s", route)
	}
}

func TestRoutes_WithBasePath(t *testing.T) {
	router := Setup(setupTestRouter(t, "/api/v1", newTestMetrics(t)))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/coboard/coboard", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetBoard_EmptyBoard(t *testing.T) {
	router := Setup(setupTestRouter(t, "", newTestMetrics(t)))

	req := httptest.NewRequest(http.MethodGet, "/coboard/coboard", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"success":true`)
	assert.Contains(t, body, `"forums":[]`)
}

func TestSignup_InvalidBody(t *testing.T) {
	router := Setup(setupTestRouter(t, "", newTestMetrics(t)))

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"aid":""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestCORS_Preflight(t *testing.T) {
	router := Setup(setupTestRouter(t, "", newTestMetrics(t)))

	req := httptest.NewRequest(http.MethodOptions, "/signup", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	router := Setup(setupTestRouter(t, "", newTestMetrics(t)))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
