package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/siamsupply/shop-api/internal/auth"
	"github.com/siamsupply/shop-api/internal/config"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/http/handler"
	"github.com/siamsupply/shop-api/internal/http/middleware"
	"github.com/siamsupply/shop-api/internal/http/router"
	"github.com/siamsupply/shop-api/internal/metrics"
	"github.com/siamsupply/shop-api/internal/repository"
	"github.com/siamsupply/shop-api/internal/service"
	"github.com/siamsupply/shop-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		App:       config.AppConfig{Name: "shop-api", Environment: "test"},
		Auth:      config.AuthConfig{JWTSecret: "router-secret", Issuer: "siamsupply", APIKey: "backoffice-key"},
		Server:    config.ServerConfig{RequestTimeout: 10, EnableMetrics: true},
		Security:  config.SecurityConfig{ContentTypeNosniff: true, FrameOptions: "DENY"},
		RateLimit: config.RateLimitConfig{Enabled: false},
		WMS:       config.WMSConfig{Mode: "disabled"},
	}
}

// newServer mounts the activity handler only; other routes are reached for
// their middleware behaviour and never call a handler.
func newServer(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	db := testutil.SetupTestDB(t)

	activities := service.NewActivityService(repository.NewActivityRepository(db), logger)
	rt := router.NewRouter(cfg, logger, db, metrics.New(),
		auth.NewMiddleware(&cfg.Auth, logger),
		middleware.NewRateLimiter(&cfg.RateLimit, logger),
		router.Handlers{Activity: handler.NewActivityHandler(activities, logger)},
	)
	return rt.Setup()
}

func get(h http.Handler, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	h := newServer(t, testConfig())

	w := get(h, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))

	w = get(h, "/health/ready", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	h := newServer(t, testConfig())

	w := get(h, "/api/nothing-here", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, domain.ErrorTypeNotFound, body.Error)
	assert.Equal(t, "ไม่พบหน้าที่ต้องการ", body.Message)

	req := httptest.NewRequest(http.MethodDelete, "/health", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestBackOfficeRequiresAdmin(t *testing.T) {
	cfg := testConfig()
	h := newServer(t, cfg)

	w := get(h, "/api/admin/activities", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(h, "/api/quotations", map[string]string{"Authorization": "Bearer not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	customerToken, err := auth.IssueToken(&cfg.Auth, uuid.New().String(), "ลูกค้า", auth.RoleCustomer, time.Hour)
	require.NoError(t, err)
	w = get(h, "/api/admin/activities", map[string]string{"Authorization": "Bearer " + customerToken})
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, err := auth.IssueToken(&cfg.Auth, "staff-7", "พนักงานขาย", auth.RoleAdmin, time.Hour)
	require.NoError(t, err)
	w = get(h, "/api/admin/activities", map[string]string{"Authorization": "Bearer " + adminToken})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = get(h, "/api/admin/activities", map[string]string{"x-api-key": "backoffice-key"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = get(h, "/api/admin/activities", map[string]string{"x-api-key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRequiresCustomer(t *testing.T) {
	cfg := testConfig()
	h := newServer(t, cfg)

	assert.Equal(t, http.StatusUnauthorized, get(h, "/api/profile", nil).Code)

	w := get(h, "/api/profile/orders", map[string]string{"x-api-key": "backoffice-key"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	cfg := testConfig()
	h := newServer(t, cfg)

	get(h, "/health", nil)
	w := get(h, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "http_requests_total"))

	cfg = testConfig()
	cfg.Server.EnableMetrics = false
	h = newServer(t, cfg)
	assert.Equal(t, http.StatusNotFound, get(h, "/metrics", nil).Code)
	assert.Equal(t, http.StatusNotFound, get(h, "/swagger/index.html", nil).Code)
}
