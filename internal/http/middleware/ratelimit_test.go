package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/siamsupply/shop-api/internal/auth"
	"github.com/siamsupply/shop-api/internal/config"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sendFrom(h http.Handler, remoteAddr, path string, user *auth.UserContext) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	if user != nil {
		req = req.WithContext(auth.WithUserContext(req.Context(), user))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{Enabled: false, RequestsPerMinute: 1}, zap.NewNop())
	h := rl.LimitByIP(okHandler())

	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, sendFrom(h, "10.0.0.1:1234", "/api/products", nil).Code)
	}
}

func TestRateLimiter_LimitExceeded(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{Enabled: true, RequestsPerMinute: 3}, zap.NewNop())
	h := rl.LimitByIP(okHandler())

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, sendFrom(h, "10.0.0.2:1234", "/api/products", nil).Code)
	}

	w := sendFrom(h, "10.0.0.2:1234", "/api/products", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "rate_limited", body.Error)
	assert.NotEmpty(t, body.Message)

	// another client keeps its own budget
	assert.Equal(t, http.StatusOK, sendFrom(h, "10.0.0.3:1234", "/api/products", nil).Code)
}

func TestRateLimiter_Whitelist(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 1,
		WhitelistIPs:      []string{"127.0.0.1"},
		WhitelistPaths:    []string{"/health", "/health/*"},
	}, zap.NewNop())
	h := rl.LimitByIP(okHandler())

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, sendFrom(h, "127.0.0.1:1234", "/api/products", nil).Code)
		assert.Equal(t, http.StatusOK, sendFrom(h, "10.0.0.4:1234", "/health", nil).Code)
		assert.Equal(t, http.StatusOK, sendFrom(h, "10.0.0.4:1234", "/health/db", nil).Code)
	}
}

func TestRateLimiter_KeysAuthenticatedCallersBySubject(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{Enabled: true, RequestsPerMinute: 100, RequestsPerMinuteAuth: 2}, zap.NewNop())
	h := rl.Limit(okHandler())
	staff := &auth.UserContext{Subject: "staff-1", Role: auth.RoleAdmin}

	// the same subject from different addresses shares one budget
	assert.Equal(t, http.StatusOK, sendFrom(h, "10.0.1.1:1", "/api/admin/orders", staff).Code)
	assert.Equal(t, http.StatusOK, sendFrom(h, "10.0.1.2:1", "/api/admin/orders", staff).Code)
	assert.Equal(t, http.StatusTooManyRequests, sendFrom(h, "10.0.1.3:1", "/api/admin/orders", staff).Code)

	other := &auth.UserContext{Subject: "staff-2", Role: auth.RoleAdmin}
	assert.Equal(t, http.StatusOK, sendFrom(h, "10.0.1.1:1", "/api/admin/orders", other).Code)
}

func TestRateLimiter_CheckoutLimit(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{Enabled: true, RequestsPerMinute: 100, CheckoutPerMinute: 1}, zap.NewNop())
	h := rl.LimitCheckout(okHandler())

	assert.Equal(t, http.StatusOK, sendFrom(h, "10.0.2.1:1", "/api/shop/checkout", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, sendFrom(h, "10.0.2.1:1", "/api/shop/checkout", nil).Code)
}

func TestRateLimiter_ForwardedFor(t *testing.T) {
	rl := middleware.NewRateLimiter(&config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1}, zap.NewNop())
	h := rl.LimitByIP(okHandler())

	send := func(xff string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.RemoteAddr = "172.16.0.1:443"
		req.Header.Set("X-Forwarded-For", xff)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.7, 172.16.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.7"))
	assert.Equal(t, http.StatusOK, send("203.0.113.8"))
}
